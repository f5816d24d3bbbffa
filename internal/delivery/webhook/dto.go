package webhook

import "github.com/aliskhannn/flash-cards-bot/internal/domain/entities"

// Request is the body the conversational platform posts for every turn.
type Request struct {
	Handler RequestHandler `json:"handler"`
	Intent  Intent         `json:"intent"`
	Scene   Scene          `json:"scene"`
	Session RequestSession `json:"session"`
	User    User           `json:"user"`
}

type RequestHandler struct {
	Name string `json:"name" binding:"required"`
}

type Intent struct {
	Name   string                 `json:"name"`
	Params map[string]IntentParam `json:"params,omitempty"`
	Query  string                 `json:"query,omitempty"`
}

type IntentParam struct {
	Original string `json:"original"`
	Resolved any    `json:"resolved"`
}

type Scene struct {
	Name string `json:"name"`
}

type RequestSession struct {
	ID            string                  `json:"id"`
	Params        entities.Session        `json:"params"`
	TypeOverrides []entities.TypeOverride `json:"typeOverrides,omitempty"`
	LanguageCode  string                  `json:"languageCode,omitempty"`
}

type User struct {
	Locale             string `json:"locale"`
	VerificationStatus string `json:"verificationStatus"`
	LastSeenTime       string `json:"lastSeenTime,omitempty"`
}

// Response is written back to the platform after the turn.
type Response struct {
	Session  ResponseSession `json:"session"`
	Prompt   Prompt          `json:"prompt"`
	Scene    *NextScene      `json:"scene,omitempty"`
	Expected *Expected       `json:"expected,omitempty"`
}

type ResponseSession struct {
	ID            string                  `json:"id"`
	Params        entities.Session        `json:"params"`
	TypeOverrides []entities.TypeOverride `json:"typeOverrides,omitempty"`
	LanguageCode  string                  `json:"languageCode,omitempty"`
}

type Prompt struct {
	Override    bool         `json:"override"`
	FirstSimple *Simple      `json:"firstSimple,omitempty"`
	Suggestions []Suggestion `json:"suggestions,omitempty"`
}

type Simple struct {
	Speech string `json:"speech"`
	Text   string `json:"text,omitempty"`
}

type Suggestion struct {
	Title string `json:"title"`
}

type NextScene struct {
	Name string `json:"name"`
	Next Next   `json:"next"`
}

type Next struct {
	Name string `json:"name"`
}

type Expected struct {
	Speech   []string `json:"speech"`
	Language string   `json:"languageCode,omitempty"`
}

// ErrorResponse is returned for requests that cannot be fulfilled.
type ErrorResponse struct {
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}
