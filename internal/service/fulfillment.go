package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/aliskhannn/flash-cards-bot/internal/domain/entities"
)

var (
	ErrUnknownAction    = errors.New("unknown action")
	ErrNoActiveQuestion = errors.New("no active question")
	ErrNoQuestions      = errors.New("no questions available")
)

// turn is the working state of a single handler call.
type turn struct {
	locale      string
	user        entities.User
	captured    *string
	session     entities.Session
	speech      entities.SpeechUnit
	suggestions []string
	next        entities.Scene
}

type handlerFunc func(t *turn) error

// Fulfillment dispatches turns to the quiz handlers.
type Fulfillment struct {
	loader       QuizLoader
	composer     *SpeechComposer
	rng          Random
	defaults     entities.QuizSettings
	maxQuestions int
	logger       *zap.Logger

	handlers map[entities.Action]handlerFunc
}

// NewFulfillment creates the turn engine. maxQuestions caps the questions of one game.
func NewFulfillment(
	loader QuizLoader,
	composer *SpeechComposer,
	rng Random,
	defaults entities.QuizSettings,
	maxQuestions int,
	logger *zap.Logger,
) *Fulfillment {
	f := &Fulfillment{
		loader:       loader,
		composer:     composer,
		rng:          rng,
		defaults:     defaults.Clone(),
		maxQuestions: maxQuestions,
		logger:       logger,
	}

	f.handlers = map[entities.Action]handlerFunc{
		entities.ActionLoadSettings:          f.loadSettings,
		entities.ActionSetupQuiz:             f.setupQuiz,
		entities.ActionStartConfirmation:     f.startConfirmation,
		entities.ActionStartYes:              f.startYes,
		entities.ActionStartNo:               f.startNo,
		entities.ActionStartSkipConfirmation: f.startSkipConfirmation,
		entities.ActionAnswer:                f.answer,
		entities.ActionAnswerNoMatch:         f.wrongAnswer,
		entities.ActionWrongAnswer:           f.wrongAnswer,
		entities.ActionAnswerHint:            f.answerHint,
		entities.ActionAnswerTryAgain:        f.repeatQuestion,
		entities.ActionAnswerDontKnow:        f.giveUp,
		entities.ActionAnswerSkip:            f.giveUp,
		entities.ActionAnswerHelp:            f.answerHelp,
		entities.ActionQuestionRepeat:        f.repeatQuestion,
		entities.ActionContinueYes:           f.repeatQuestion,
		entities.ActionContinueNo:            f.startNo,
		entities.ActionPlayAgainYes:          f.playAgainYes,
		entities.ActionPlayAgainNo:           f.startNo,
		entities.ActionQuit:                  f.quit,
	}

	return f
}

// Supports reports whether action has a handler.
func (f *Fulfillment) Supports(action entities.Action) bool {
	_, ok := f.handlers[action]
	return ok
}

// Handle runs the handler of in.Action against a copy of in.Session.
func (f *Fulfillment) Handle(ctx context.Context, in entities.Turn) (entities.TurnResult, error) {
	if err := ctx.Err(); err != nil {
		return entities.TurnResult{}, err
	}

	handler, ok := f.handlers[in.Action]
	if !ok {
		return entities.TurnResult{}, fmt.Errorf("%w: %q", ErrUnknownAction, in.Action)
	}

	t := &turn{
		locale:   in.Locale,
		user:     in.User,
		captured: in.CapturedAnswer,
		session:  in.Session.Clone(),
	}

	if err := handler(t); err != nil {
		f.logger.Error("turn failed",
			zap.String("action", string(in.Action)),
			zap.String("locale", in.Locale),
			zap.Error(err),
		)
		return entities.TurnResult{}, fmt.Errorf("handle %s: %w", in.Action, err)
	}

	f.logger.Debug("turn handled",
		zap.String("action", string(in.Action)),
		zap.String("next_scene", string(t.next)),
		zap.Int("count", t.session.Count),
		zap.Int("score", t.session.Score),
	)

	return entities.TurnResult{
		Speech:      t.speech,
		Suggestions: t.suggestions,
		NextScene:   t.next,
		Session:     t.session,
	}, nil
}

func (f *Fulfillment) loadSettings(t *turn) error {
	prev := t.session
	t.session = NewSession(f.defaults)
	t.session.UserAnswer = prev.UserAnswer
	t.session.TypeOverrides = prev.TypeOverrides
	t.session.IsNewUser = t.user.IsNew()

	settings, err := f.loader.QuizSettings(t.locale)
	if err != nil {
		return err
	}
	t.session.QuizSettings = settings
	return nil
}

func (f *Fulfillment) setupQuiz(t *turn) error {
	questions, err := f.loader.AllQuizQuestions(t.locale)
	if err != nil {
		return err
	}

	if t.session.RandomizeQuestions {
		f.rng.Shuffle(len(questions), func(i, j int) {
			questions[i], questions[j] = questions[j], questions[i]
		})
	}

	limit := max(min(t.session.QuestionsPerGame, len(questions), f.maxQuestions), 0)
	if limit == 0 {
		return ErrNoQuestions
	}

	s := &t.session
	s.Questions = questions[:limit:limit]
	s.CurrentQuestion = entities.Question{}
	s.PreviousAnswer = ""
	s.Limit = limit
	s.Count = 0
	s.Score = 0
	s.Attempts = 0
	s.Hinted = false
	return nil
}

func (f *Fulfillment) startConfirmation(t *turn) error {
	t.speech = f.composer.Merge(
		f.composer.RandomAudio(t.session.AudioGameIntro),
		entities.PromptGreeting1,
		entities.PromptInstruction,
		entities.PromptLetsPlay,
	)
	t.suggestions = yesNo()
	return nil
}

func (f *Fulfillment) startYes(t *turn) error {
	ResetCurrentQuestion(&t.session)
	t.next = entities.SceneAskQuestion
	return f.question(t, RoundTransitionPrompt(t.session))
}

func (f *Fulfillment) startNo(t *turn) error {
	quit := t.session.QuitPrompt
	if quit == "" {
		quit = entities.PromptQuit
	}
	t.speech = f.composer.Merge(quit, f.composer.RandomAudio(t.session.AudioGameOutro))
	t.next = entities.SceneEndConversation
	return nil
}

func (f *Fulfillment) startSkipConfirmation(t *turn) error {
	ResetCurrentQuestion(&t.session)
	t.next = entities.SceneAskQuestion
	return f.question(t,
		f.composer.RandomAudio(t.session.AudioGameIntro),
		entities.PromptGreeting2,
		entities.PromptIntroduction,
		entities.PromptInstruction,
		RoundTransitionPrompt(t.session),
	)
}

func (f *Fulfillment) answer(t *turn) error {
	cq := t.session.CurrentQuestion
	if cq.IsZero() {
		return ErrNoActiveQuestion
	}

	answer := t.session.TakeUserAnswer()
	if t.captured != nil {
		answer = *t.captured
	}

	if !cq.Match(answer) {
		return f.wrongAnswer(t)
	}

	t.session.Score++
	return f.nextQuestion(t,
		f.composer.RandomAudio(t.session.AudioCorrect),
		entities.PromptRightAnswer,
		cq.FollowUp,
	)
}

func (f *Fulfillment) wrongAnswer(t *turn) error {
	cq := t.session.CurrentQuestion
	if cq.IsZero() {
		return ErrNoActiveQuestion
	}

	// The captured slot belongs to this turn only.
	t.session.UserAnswer = nil
	t.session.Attempts++

	if t.session.Attempts > 1 {
		return f.nextQuestion(t, entities.PromptWrongAnswer1, entities.PromptWrongAnswer2)
	}

	if cq.HasHint() && !t.session.Hinted {
		t.next = entities.SceneAskHintOrTryAgain
		t.speech = f.composer.Merge(entities.PromptWrongAnswer1, entities.PromptAgainHint)
		t.suggestions = []string{entities.PromptHintChip, entities.PromptTryAgainChip}
		return nil
	}

	t.next = entities.SceneAskQuestion
	t.speech = f.composer.Merge(entities.PromptWrongAnswer1, entities.PromptHintQuestion)
	return nil
}

func (f *Fulfillment) answerHint(t *turn) error {
	cq := t.session.CurrentQuestion
	if cq.IsZero() {
		return ErrNoActiveQuestion
	}

	switch {
	case !cq.HasHint():
		return f.question(t, entities.PromptNoHint)
	case t.session.Hinted:
		return f.question(t, entities.PromptNoMoreHint)
	default:
		t.session.Hinted = true
		t.speech = f.composer.Merge(entities.PromptConfirmation, entities.PromptHint, entities.PromptHintQuestion)
		return nil
	}
}

func (f *Fulfillment) repeatQuestion(t *turn) error {
	return f.question(t, entities.PromptRepeat)
}

func (f *Fulfillment) giveUp(t *turn) error {
	return f.nextQuestion(t, entities.PromptIDontKnow, entities.PromptWrongAnswer2)
}

func (f *Fulfillment) answerHelp(t *turn) error {
	t.speech = f.composer.Merge(entities.PromptHelp)
	t.suggestions = yesNo()
	return nil
}

func (f *Fulfillment) playAgainYes(t *turn) error {
	if err := f.setupQuiz(t); err != nil {
		return err
	}
	ResetCurrentQuestion(&t.session)
	t.next = entities.SceneAskQuestion
	return f.question(t, entities.PromptRe)
}

func (f *Fulfillment) quit(t *turn) error {
	t.speech = f.composer.Merge(entities.PromptEnd, f.composer.RandomAudio(t.session.AudioGameOutro))
	t.next = entities.SceneEndConversation
	return nil
}

// nextQuestion finishes the current question and either asks the next one
// or closes the game.
func (f *Fulfillment) nextQuestion(t *turn, speeches ...string) error {
	s := &t.session
	if s.CurrentQuestion.IsZero() {
		return ErrNoActiveQuestion
	}

	s.PreviousAnswer = s.CurrentQuestion.CanonicalAnswer()
	if s.Count < s.Limit {
		s.Count++
	}

	if s.Count < s.Limit {
		ResetCurrentQuestion(s)
		t.next = entities.SceneAskQuestion
		return f.question(t, append(speeches, RoundTransitionPrompt(*s))...)
	}

	s.CurrentQuestion = entities.Question{}
	s.Attempts = 0
	s.Hinted = false
	t.next = entities.SceneAskPlayAgain
	t.speech = f.composer.Merge(append(speeches,
		f.composer.RandomAudio(s.AudioRoundEnd),
		OutcomePrompt(*s),
		entities.PromptPlayAgainQuestion,
	)...)
	t.suggestions = yesNo()
	return nil
}

// question installs speech biasing for the current question and asks it.
func (f *Fulfillment) question(t *turn, speeches ...string) error {
	cq := t.session.CurrentQuestion
	if cq.IsZero() {
		return ErrNoActiveQuestion
	}

	SetupSpeechBiasing(&t.session)
	t.speech = f.composer.Merge(append(speeches, cq.Question)...)
	return nil
}

func yesNo() []string {
	return []string{entities.PromptYesChip, entities.PromptNoChip}
}
