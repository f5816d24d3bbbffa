package telegram

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/aliskhannn/flash-cards-bot/internal/domain/entities"
	"github.com/aliskhannn/flash-cards-bot/internal/service"
)

// Bot is the part of *tgbotapi.BotAPI the handler uses.
type Bot interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	GetUpdatesChan(config tgbotapi.UpdateConfig) tgbotapi.UpdatesChannel
}

type Dialogue interface {
	Start(ctx context.Context, id string, user entities.User) (service.Reply, error)
	Turn(ctx context.Context, id string, action entities.Action, captured *string) (service.Reply, error)
	Scene(ctx context.Context, id string) (entities.Scene, string, error)
}

type Catalog interface {
	Locale(requested string) string
	Labels(locale string, fragments []string) []string
	MatchLabel(locale, text string, fragments ...string) (string, bool)
	Render(locale string, speech entities.SpeechUnit, sess entities.Session) string
}

// Locales reports which locales have quiz data.
type Locales interface {
	Has(locale string) bool
}
