package entities

// Scene is a conversation state of the platform.
// The empty scene means the current one does not change.
type Scene string

const (
	SceneWelcome           Scene = "Welcome"
	SceneStartQuiz         Scene = "StartQuiz"
	SceneAskStart          Scene = "AskStart"
	SceneAskQuestion       Scene = "AskQuestion"
	SceneProcessAnswer     Scene = "ProcessAnswer"
	SceneAskHintOrTryAgain Scene = "AskHintOrTryAgain"
	SceneAskContinue       Scene = "AskContinue"
	SceneAskPlayAgain      Scene = "AskPlayAgain"
	SceneEndConversation   Scene = "actions.scene.END_CONVERSATION"
)
