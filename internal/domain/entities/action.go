package entities

// Action names the handler that processes a turn.
type Action string

const (
	ActionLoadSettings          Action = "LOAD_SETTINGS"
	ActionSetupQuiz             Action = "SETUP_QUIZ"
	ActionStartConfirmation     Action = "START_CONFIRMATION"
	ActionStartYes              Action = "START_YES"
	ActionStartNo               Action = "START_NO"
	ActionStartSkipConfirmation Action = "START_SKIP_CONFIRMATION"
	ActionAnswer                Action = "ANSWER"
	ActionAnswerNoMatch         Action = "ANSWER_NO_MATCH_1"
	ActionWrongAnswer           Action = "WRONG_ANSWER"
	ActionAnswerHint            Action = "ANSWER_HINT"
	ActionAnswerTryAgain        Action = "ANSWER_TRY_AGAIN"
	ActionAnswerDontKnow        Action = "ANSWER_DONT_KNOW"
	ActionAnswerSkip            Action = "ANSWER_SKIP"
	ActionAnswerHelp            Action = "ANSWER_HELP"
	ActionQuestionRepeat        Action = "QUESTION_REPEAT"
	ActionContinueYes           Action = "CONTINUE_YES"
	ActionContinueNo            Action = "CONTINUE_NO"
	ActionPlayAgainYes          Action = "PLAY_AGAIN_YES"
	ActionPlayAgainNo           Action = "PLAY_AGAIN_NO"
	ActionQuit                  Action = "QUIT"
)

// Intents the platform reports for the system events of a conversation.
const (
	IntentMain     = "actions.intent.MAIN"
	IntentPlayGame = "actions.intent.PLAY_GAME"
	IntentNoMatch  = "actions.intent.NO_MATCH"
	IntentNoInput  = "actions.intent.NO_INPUT"
	IntentCancel   = "actions.intent.CANCEL"
)

// IsNewConversation reports whether intent opens a conversation.
func IsNewConversation(intent string) bool {
	return intent == IntentMain || intent == IntentPlayGame
}
