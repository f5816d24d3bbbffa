package telegram

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// buildReplyKeyboard turns suggestion labels into a one-row keyboard.
// Without labels the previous keyboard is removed.
func buildReplyKeyboard(labels []string) any {
	if len(labels) == 0 {
		return tgbotapi.NewRemoveKeyboard(true)
	}

	row := make([]tgbotapi.KeyboardButton, 0, len(labels))
	for _, l := range labels {
		row = append(row, tgbotapi.NewKeyboardButton(l))
	}

	kb := tgbotapi.NewReplyKeyboard(row)
	kb.OneTimeKeyboard = true
	kb.ResizeKeyboard = true
	return kb
}
