package telegram

import (
	"context"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/aliskhannn/flash-cards-bot/internal/domain/entities"
	"github.com/aliskhannn/flash-cards-bot/internal/metrics"
	"github.com/aliskhannn/flash-cards-bot/internal/service"
)

const channel = "telegram"

type Handler struct {
	bot           Bot
	logger        *zap.Logger
	dialogue      Dialogue
	catalog       Catalog
	locales       Locales
	defaultLocale string
}

func NewHandler(
	bot Bot,
	logger *zap.Logger,
	dialogue Dialogue,
	catalog Catalog,
	locales Locales,
	defaultLocale string,
) *Handler {
	return &Handler{
		bot:           bot,
		logger:        logger,
		dialogue:      dialogue,
		catalog:       catalog,
		locales:       locales,
		defaultLocale: defaultLocale,
	}
}

func (h *Handler) Run(ctx context.Context) error {
	h.logger.Info("telegram handler started")
	defer h.logger.Info("telegram handler stopped")

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := h.bot.GetUpdatesChan(u)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			h.handleUpdate(ctx, update)
		}
	}
}

func (h *Handler) handleUpdate(ctx context.Context, update tgbotapi.Update) {
	if update.Message == nil {
		h.logger.Debug("update without message")
		return
	}

	h.logger.Debug("update received",
		zap.Int64("chat_id", update.Message.Chat.ID),
		zap.String("text", update.Message.Text),
	)

	chatID := update.Message.Chat.ID
	from := update.Message.From

	var command string
	if update.Message.IsCommand() {
		command = update.Message.Command()
	}

	if command == "start" {
		_ = h.withErrorHandling(h.startHandler(from))(ctx, chatID)
		return
	}

	_ = h.withErrorHandling(h.messageHandler(from, command, update.Message.Text))(ctx, chatID)
}

// startHandler opens a new game for the sender.
func (h *Handler) startHandler(from *tgbotapi.User) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		user := entities.User{Locale: h.defaultLocale}
		if from != nil {
			user.ID = conversationID(from.ID)
			user.Locale = h.locale(from.LanguageCode)
		}

		started := time.Now()
		reply, err := h.dialogue.Start(ctx, conversationID(chatID), user)
		metrics.ObserveTurn(channel, "START", started, err)
		if err != nil {
			return err
		}
		metrics.ConversationStarted(channel)

		return h.sendReply(chatID, user.Locale, reply)
	}
}

// messageHandler routes a message within the running game.
func (h *Handler) messageHandler(from *tgbotapi.User, command, text string) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		id := conversationID(chatID)

		scene, locale, err := h.dialogue.Scene(ctx, id)
		if err != nil {
			return err
		}

		if scene == entities.SceneWelcome {
			if command != "" {
				h.sendUnknownOrIdle(chatID, command)
				return nil
			}
			return h.startHandler(from)(ctx, chatID)
		}

		r := routeMessage(h.catalog, scene, locale, command, text)
		if r.action == "" {
			return h.sendReply(chatID, locale, service.Reply{
				Speech:      entities.SpeechUnit{Fragments: r.reprompt},
				Suggestions: r.suggestions,
				Scene:       scene,
			})
		}

		started := time.Now()
		reply, err := h.dialogue.Turn(ctx, id, r.action, r.captured)
		metrics.ObserveTurn(channel, string(r.action), started, err)
		if err != nil {
			return err
		}

		if reply.Scene == entities.SceneAskPlayAgain && scene != entities.SceneAskPlayAgain {
			metrics.GameFinished()
		}

		return h.sendReply(chatID, locale, reply)
	}
}

func (h *Handler) sendUnknownOrIdle(chatID int64, command string) {
	if _, ok := questionCommands[command]; ok || command == "quit" || command == "help" {
		h.sendText(chatID, msgNoConversation)
		return
	}
	h.sendText(chatID, msgUnknownCommand)
}

// locale picks the quiz locale for a Telegram language code.
func (h *Handler) locale(languageCode string) string {
	if languageCode == "" {
		return h.defaultLocale
	}
	locale := h.catalog.Locale(languageCode)
	if !h.locales.Has(locale) {
		return h.defaultLocale
	}
	return locale
}

func (h *Handler) sendReply(chatID int64, locale string, reply service.Reply) error {
	text := h.catalog.Render(locale, reply.Speech, reply.Session)
	if text == "" {
		return nil
	}

	msg := newPlainMessage(chatID, text)
	msg.ReplyMarkup = buildReplyKeyboard(h.catalog.Labels(locale, reply.Suggestions))
	_, err := h.bot.Send(msg)
	return err
}

func (h *Handler) sendText(chatID int64, text string) {
	msg := newPlainMessage(chatID, text)
	h.send(msg)
}

func (h *Handler) send(c tgbotapi.Chattable) {
	if _, err := h.bot.Send(c); err != nil {
		h.logger.Error("failed to send telegram message",
			zap.Error(err),
		)
	}
}
