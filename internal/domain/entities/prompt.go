package entities

import "strings"

// PromptPrefix marks a speech fragment that names a localized resource string
// instead of carrying literal text.
const PromptPrefix = "$resources.strings.main."

const (
	PromptGreeting1              = PromptPrefix + "GREETING_1"
	PromptGreeting2              = PromptPrefix + "GREETING_2"
	PromptIntroduction           = PromptPrefix + "INTRODUCTION"
	PromptInstruction            = PromptPrefix + "INSTRUCTION"
	PromptLetsPlay               = PromptPrefix + "LETS_PLAY"
	PromptFirstRound             = PromptPrefix + "FIRST_ROUND"
	PromptNextQuestion           = PromptPrefix + "NEXT_QUESTION"
	PromptFinalRound             = PromptPrefix + "FINAL_ROUND"
	PromptRightAnswer            = PromptPrefix + "RIGHT_ANSWER"
	PromptWrongAnswer1           = PromptPrefix + "WRONG_ANSWER_1"
	PromptWrongAnswer2           = PromptPrefix + "WRONG_ANSWER_2"
	PromptWrongAnswerForQuestion = PromptPrefix + "WRONG_ANSWER_FOR_QUESTION"
	PromptIDontKnow              = PromptPrefix + "I_DONT_KNOW"
	PromptConfirmation           = PromptPrefix + "CONFIRMATION"
	PromptHint                   = PromptPrefix + "HINT"
	PromptHintQuestion           = PromptPrefix + "HINT_QUESTION"
	PromptAgainHint              = PromptPrefix + "AGAIN_HINT"
	PromptNoHint                 = PromptPrefix + "NO_HINT"
	PromptNoMoreHint             = PromptPrefix + "NO_MORE_HINT"
	PromptTryOrHint              = PromptPrefix + "TRY_OR_HINT"
	PromptRepeat                 = PromptPrefix + "REPEAT"
	PromptSkip                   = PromptPrefix + "SKIP"
	PromptRe                     = PromptPrefix + "RE"
	PromptHelp                   = PromptPrefix + "HELP"
	PromptQuit                   = PromptPrefix + "QUIT"
	PromptEnd                    = PromptPrefix + "END"
	PromptNoneCorrect            = PromptPrefix + "NONE_CORRECT"
	PromptSomeCorrect            = PromptPrefix + "SOME_CORRECT"
	PromptAllCorrect             = PromptPrefix + "ALL_CORRECT"
	PromptPlayAgainQuestion      = PromptPrefix + "PLAY_AGAIN_QUESTION"
	PromptNoMatch1               = PromptPrefix + "NO_MATCH_1"
	PromptFallback               = PromptPrefix + "FALLBACK"

	PromptYesChip      = PromptPrefix + "YES_CHIP"
	PromptNoChip       = PromptPrefix + "NO_CHIP"
	PromptHintChip     = PromptPrefix + "HINT_CHIP"
	PromptTryAgainChip = PromptPrefix + "TRY_AGAIN_CHIP"
)

// PromptKey returns the resource key named by fragment and whether fragment is a prompt reference.
func PromptKey(fragment string) (string, bool) {
	return strings.CutPrefix(fragment, PromptPrefix)
}
