package webhook

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/aliskhannn/flash-cards-bot/internal/domain/entities"
	"github.com/aliskhannn/flash-cards-bot/internal/metrics"
	"github.com/aliskhannn/flash-cards-bot/internal/service"
)

const (
	channel     = "webhook"
	answerParam = "answer"
)

// Engine runs turns for the platform.
type Engine interface {
	Supports(action entities.Action) bool
	Handle(ctx context.Context, in entities.Turn) (entities.TurnResult, error)
}

// Renderer turns speech into display text.
type Renderer interface {
	Locale(requested string) string
	Render(locale string, speech entities.SpeechUnit, sess entities.Session) string
}

// Handler serves the fulfillment endpoint.
type Handler struct {
	engine        Engine
	renderer      Renderer
	breakTime     time.Duration
	defaultLocale string
	logger        *zap.Logger
}

func NewHandler(engine Engine, renderer Renderer, breakTime time.Duration, defaultLocale string, logger *zap.Logger) *Handler {
	return &Handler{
		engine:        engine,
		renderer:      renderer,
		breakTime:     breakTime,
		defaultLocale: defaultLocale,
		logger:        logger.Named("webhook"),
	}
}

// Fulfill handles POST /fulfillment.
func (h *Handler) Fulfill(c *gin.Context) {
	started := time.Now()

	var req Request
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: "invalid request body", Code: "bad_request"})
		return
	}

	action := entities.Action(req.Handler.Name)
	if !h.engine.Supports(action) {
		h.logger.Warn("unknown handler", zap.String("handler", req.Handler.Name))
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: "unknown handler " + req.Handler.Name, Code: "unknown_handler"})
		return
	}

	if req.Session.ID == "" {
		req.Session.ID = uuid.NewString()
	}

	if entities.IsNewConversation(req.Intent.Name) {
		metrics.ConversationStarted(channel)
		h.logger.Info("new conversation",
			zap.String("session_id", req.Session.ID),
			zap.String("intent", req.Intent.Name),
		)
	}

	locale := h.locale(req)
	turn := entities.Turn{
		Action:         action,
		Scene:          entities.Scene(req.Scene.Name),
		Locale:         locale,
		Session:        req.Session.Params,
		CapturedAnswer: capturedAnswer(req.Intent),
		User: entities.User{
			ID:                 req.Session.ID,
			Locale:             locale,
			VerificationStatus: req.User.VerificationStatus,
			LastSeen:           parseLastSeen(req.User.LastSeenTime),
		},
	}
	turn.Session.TypeOverrides = req.Session.TypeOverrides

	res, err := h.engine.Handle(c.Request.Context(), turn)
	metrics.ObserveTurn(channel, string(action), started, err)
	if err != nil {
		h.logger.Error("fulfillment failed",
			zap.String("session_id", req.Session.ID),
			zap.String("handler", req.Handler.Name),
			zap.Error(err),
		)
		_ = c.Error(err)
		c.JSON(statusFor(err), ErrorResponse{Message: err.Error(), Code: "fulfillment_failed"})
		return
	}

	if res.NextScene == entities.SceneAskPlayAgain {
		metrics.GameFinished()
	}

	c.JSON(http.StatusOK, h.response(req, locale, res))
}

// Health handles GET /healthz.
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *Handler) response(req Request, locale string, res entities.TurnResult) Response {
	params := res.Session.Clone()
	overrides := params.TypeOverrides
	params.TypeOverrides = nil

	resp := Response{
		Session: ResponseSession{
			ID:            req.Session.ID,
			Params:        params,
			TypeOverrides: overrides,
			LanguageCode:  req.Session.LanguageCode,
		},
	}

	if !res.Speech.IsEmpty() {
		resp.Prompt.FirstSimple = &Simple{
			Speech: res.Speech.SSML(h.breakTime),
			Text:   h.renderer.Render(locale, res.Speech, res.Session),
		}
	}

	for _, s := range res.Suggestions {
		resp.Prompt.Suggestions = append(resp.Prompt.Suggestions, Suggestion{Title: s})
	}

	if res.NextScene != "" {
		resp.Scene = &NextScene{Name: req.Scene.Name, Next: Next{Name: string(res.NextScene)}}
	}

	if len(res.Session.ExpectedSpeech) > 0 {
		resp.Expected = &Expected{Speech: res.Session.ExpectedSpeech, Language: locale}
	}

	return resp
}

func (h *Handler) locale(req Request) string {
	for _, l := range []string{req.User.Locale, req.Session.LanguageCode} {
		if l != "" {
			return h.renderer.Locale(l)
		}
	}
	return h.defaultLocale
}

// capturedAnswer reads the answer intent parameter, preferring the resolved value.
func capturedAnswer(intent Intent) *string {
	p, ok := intent.Params[answerParam]
	if !ok {
		return nil
	}
	if s, ok := p.Resolved.(string); ok && strings.TrimSpace(s) != "" {
		return &s
	}
	if p.Original != "" {
		original := p.Original
		return &original
	}
	return nil
}

func parseLastSeen(value string) time.Time {
	if value == "" {
		return time.Time{}
	}
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}
	}
	return t
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, service.ErrNoActiveQuestion):
		return http.StatusConflict
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
