package telegram

import (
	"strings"

	"github.com/aliskhannn/flash-cards-bot/internal/domain/entities"
)

// route is what a message means in the current scene: either an action to
// run or a prompt to repeat without touching the game.
type route struct {
	action      entities.Action
	captured    *string
	reprompt    []string
	suggestions []string
}

var questionCommands = map[string]entities.Action{
	"hint":     entities.ActionAnswerHint,
	"skip":     entities.ActionAnswerSkip,
	"repeat":   entities.ActionQuestionRepeat,
	"dontknow": entities.ActionAnswerDontKnow,
}

// routeMessage maps a command or free text to a route for scene.
// command is empty for plain messages.
func routeMessage(c Catalog, scene entities.Scene, locale, command, text string) route {
	switch command {
	case "quit":
		return route{action: entities.ActionQuit}
	case "help":
		return route{action: entities.ActionAnswerHelp}
	}

	switch scene {
	case entities.SceneAskStart:
		return yesNoRoute(c, locale, text, entities.ActionStartYes, entities.ActionStartNo, entities.PromptLetsPlay)

	case entities.SceneAskContinue:
		return yesNoRoute(c, locale, text, entities.ActionContinueYes, entities.ActionContinueNo, entities.PromptHelp)

	case entities.SceneAskPlayAgain:
		return yesNoRoute(c, locale, text, entities.ActionPlayAgainYes, entities.ActionPlayAgainNo, entities.PromptPlayAgainQuestion)

	case entities.SceneAskHintOrTryAgain:
		if command == "" {
			switch chip, _ := c.MatchLabel(locale, text, entities.PromptHintChip, entities.PromptTryAgainChip); chip {
			case entities.PromptHintChip:
				return route{action: entities.ActionAnswerHint}
			case entities.PromptTryAgainChip:
				return route{action: entities.ActionAnswerTryAgain}
			}
		}
		return questionRoute(c, locale, command, text)

	default:
		return questionRoute(c, locale, command, text)
	}
}

func questionRoute(c Catalog, locale, command, text string) route {
	if command != "" {
		if action, ok := questionCommands[command]; ok {
			return route{action: action}
		}
		return route{reprompt: []string{entities.PromptFallback}}
	}

	if chip, ok := c.MatchLabel(locale, text, entities.PromptHintChip); ok && chip == entities.PromptHintChip {
		return route{action: entities.ActionAnswerHint}
	}

	answer := strings.TrimSpace(text)
	if answer == "" {
		return route{action: entities.ActionAnswerNoMatch}
	}
	return route{action: entities.ActionAnswer, captured: &answer}
}

func yesNoRoute(c Catalog, locale, text string, yes, no entities.Action, question string) route {
	chip, _ := c.MatchLabel(locale, text, entities.PromptYesChip, entities.PromptNoChip)
	switch chip {
	case entities.PromptYesChip:
		return route{action: yes}
	case entities.PromptNoChip:
		return route{action: no}
	}
	return route{
		reprompt:    []string{entities.PromptNoMatch1, question},
		suggestions: []string{entities.PromptYesChip, entities.PromptNoChip},
	}
}
