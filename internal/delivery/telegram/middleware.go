package telegram

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/aliskhannn/flash-cards-bot/internal/service"
)

type HandlerFunc func(ctx context.Context, chatID int64) error

func (h *Handler) withErrorHandling(fn HandlerFunc) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		if err := fn(ctx, chatID); err != nil {
			if errors.Is(err, service.ErrNoConversation) || errors.Is(err, service.ErrNoActiveQuestion) {
				h.sendText(chatID, msgNoConversation)
				return nil
			}

			h.logger.Error("handle error",
				zap.Int64("chat_id", chatID),
				zap.Error(err),
			)
			h.sendText(chatID, msgInternalError)
			return nil
		}
		return nil
	}
}
