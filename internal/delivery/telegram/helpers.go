package telegram

import (
	"strconv"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// conversationID keys the stored conversation of a chat.
func conversationID(chatID int64) string {
	return "tg:" + strconv.FormatInt(chatID, 10)
}

func newPlainMessage(chatID int64, text string) tgbotapi.MessageConfig {
	return tgbotapi.NewMessage(chatID, text)
}
