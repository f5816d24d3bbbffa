package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/aliskhannn/flash-cards-bot/internal/domain/entities"
	"github.com/aliskhannn/flash-cards-bot/internal/repository"
)

var ErrNoConversation = errors.New("no active conversation")

// ConversationStore persists conversations between turns.
// Get returns repository.ErrConversationNotFound for unknown or expired IDs.
type ConversationStore interface {
	Get(ctx context.Context, id string) (*entities.Conversation, error)
	Save(ctx context.Context, conv *entities.Conversation) error
	Delete(ctx context.Context, id string) error
}

// PlayerTracker remembers when a player was last seen.
type PlayerTracker interface {
	Touch(ctx context.Context, id string) (time.Time, error)
}

// TurnHandler runs one action against a session.
type TurnHandler interface {
	Handle(ctx context.Context, in entities.Turn) (entities.TurnResult, error)
}

// Reply is what a channel shows the player after a turn.
type Reply struct {
	Speech      entities.SpeechUnit
	Suggestions []string
	Scene       entities.Scene
	Session     entities.Session
}

// Ended reports whether the conversation is over.
func (r Reply) Ended() bool {
	return r.Scene == entities.SceneEndConversation
}

// Dialogue drives stored conversations for channels that do not keep
// session state themselves.
type Dialogue struct {
	engine  TurnHandler
	store   ConversationStore
	players PlayerTracker
	logger  *zap.Logger
}

func NewDialogue(engine TurnHandler, store ConversationStore, players PlayerTracker, logger *zap.Logger) *Dialogue {
	return &Dialogue{
		engine:  engine,
		store:   store,
		players: players,
		logger:  logger,
	}
}

// Start opens a new conversation for user, replacing any previous one.
func (d *Dialogue) Start(ctx context.Context, id string, user entities.User) (Reply, error) {
	lastSeen, err := d.players.Touch(ctx, user.ID)
	if err != nil {
		return Reply{}, fmt.Errorf("touch player: %w", err)
	}
	user.LastSeen = lastSeen

	conv := &entities.Conversation{
		ID:     id,
		Locale: user.Locale,
		Scene:  entities.SceneWelcome,
	}

	var speech entities.SpeechUnit
	for _, action := range []entities.Action{entities.ActionLoadSettings, entities.ActionSetupQuiz} {
		res, err := d.run(ctx, conv, action, user, nil)
		if err != nil {
			return Reply{}, err
		}
		speech.Append(res.Speech.Fragments...)
	}

	action := entities.ActionStartSkipConfirmation
	if conv.Session.IsNewUser {
		action = entities.ActionStartConfirmation
	}

	res, err := d.run(ctx, conv, action, user, nil)
	if err != nil {
		return Reply{}, err
	}
	speech.Append(res.Speech.Fragments...)

	d.logger.Info("conversation started",
		zap.String("conversation_id", id),
		zap.String("locale", conv.Locale),
		zap.Bool("new_user", conv.Session.IsNewUser),
	)

	return d.finish(ctx, conv, speech, res.Suggestions)
}

// Turn runs action in the stored conversation id.
func (d *Dialogue) Turn(ctx context.Context, id string, action entities.Action, captured *string) (Reply, error) {
	conv, err := d.store.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrConversationNotFound) {
			return Reply{}, ErrNoConversation
		}
		return Reply{}, fmt.Errorf("load conversation: %w", err)
	}

	res, err := d.run(ctx, conv, action, entities.User{Locale: conv.Locale}, captured)
	if err != nil {
		return Reply{}, err
	}

	return d.finish(ctx, conv, res.Speech, res.Suggestions)
}

// Scene returns the scene of the stored conversation, or SceneWelcome when there is none.
func (d *Dialogue) Scene(ctx context.Context, id string) (entities.Scene, string, error) {
	conv, err := d.store.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrConversationNotFound) {
			return entities.SceneWelcome, "", nil
		}
		return "", "", fmt.Errorf("load conversation: %w", err)
	}
	return conv.Scene, conv.Locale, nil
}

func (d *Dialogue) run(
	ctx context.Context,
	conv *entities.Conversation,
	action entities.Action,
	user entities.User,
	captured *string,
) (entities.TurnResult, error) {
	res, err := d.engine.Handle(ctx, entities.Turn{
		Action:         action,
		Scene:          conv.Scene,
		Locale:         conv.Locale,
		Session:        conv.Session,
		CapturedAnswer: captured,
		User:           user,
	})
	if err != nil {
		return entities.TurnResult{}, err
	}

	conv.Session = res.Session
	conv.Scene = NextScene(action, conv.Scene, res.NextScene)
	return res, nil
}

func (d *Dialogue) finish(ctx context.Context, conv *entities.Conversation, speech entities.SpeechUnit, suggestions []string) (Reply, error) {
	reply := Reply{
		Speech:      speech,
		Suggestions: suggestions,
		Scene:       conv.Scene,
		Session:     conv.Session,
	}

	if reply.Ended() {
		if err := d.store.Delete(ctx, conv.ID); err != nil {
			return Reply{}, fmt.Errorf("delete conversation: %w", err)
		}
		return reply, nil
	}

	if err := d.store.Save(ctx, conv); err != nil {
		return Reply{}, fmt.Errorf("save conversation: %w", err)
	}
	return reply, nil
}

// NextScene resolves the scene after action ran in current. Handlers that
// leave next empty fall back to the transition the scene itself defines.
// Help only detours through AskContinue while a question is being asked.
func NextScene(action entities.Action, current, next entities.Scene) entities.Scene {
	if next != "" {
		return next
	}

	switch action {
	case entities.ActionStartConfirmation:
		return entities.SceneAskStart
	case entities.ActionAnswerHelp:
		if current == entities.SceneAskQuestion || current == entities.SceneAskHintOrTryAgain {
			return entities.SceneAskContinue
		}
		return current
	case entities.ActionAnswerHint, entities.ActionAnswerTryAgain, entities.ActionContinueYes:
		return entities.SceneAskQuestion
	}
	return current
}
