package entities

import "time"

// Turn is the input of one fulfillment call.
type Turn struct {
	Action         Action
	Scene          Scene   // scene the conversation is in
	Locale         string  // locale the quiz data is read for
	Session        Session // state at the start of the turn, never modified
	CapturedAnswer *string // answer slot value if the platform captured one
	User           User
}

// TurnResult is the output of one fulfillment call.
type TurnResult struct {
	Speech      SpeechUnit
	Suggestions []string // prompt references of the chips offered to the player
	NextScene   Scene    // empty when the scene does not change
	Session     Session  // state to keep for the next turn
}

// Conversation is the state a channel keeps for a player between turns.
type Conversation struct {
	ID        string    `json:"id"`
	Locale    string    `json:"locale"`
	Scene     Scene     `json:"scene"`
	Session   Session   `json:"session"`
	UpdatedAt time.Time `json:"updatedAt"`
}
