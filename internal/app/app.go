package app

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/aliskhannn/flash-cards-bot/internal/config"
	"github.com/aliskhannn/flash-cards-bot/internal/infra/postgres"
	"github.com/aliskhannn/flash-cards-bot/internal/infra/redis"
	"github.com/aliskhannn/flash-cards-bot/internal/repository"
	"github.com/aliskhannn/flash-cards-bot/internal/resources"
	"github.com/aliskhannn/flash-cards-bot/internal/schema"
	"github.com/aliskhannn/flash-cards-bot/internal/service"
	"github.com/aliskhannn/flash-cards-bot/internal/storage"
)

// App holds the components shared by the webhook and the Telegram bot.
type App struct {
	Config    *config.Config
	Logger    *zap.Logger
	Documents *repository.DocumentStore
	Catalog   *resources.Catalog
	Engine    *service.Fulfillment

	purger  service.ExpiredPurger
	closers []func()
}

// New loads quiz data and prompt catalogs and builds the turn engine.
func New(cfg *config.Config, logger *zap.Logger) (*App, error) {
	documents, err := repository.LoadDocumentStore(cfg.DataDir)
	if err != nil {
		return nil, fmt.Errorf("load quiz data: %w", err)
	}

	rng := service.NewRandom()

	catalog, err := resources.LoadCatalog(cfg.ResourcesDir, cfg.DefaultLocale, rng)
	if err != nil {
		return nil, fmt.Errorf("load resources: %w", err)
	}

	defaults := service.DefaultQuizSettings(cfg.Quiz)
	resolver := service.NewSettingsResolver(documents, schema.NewValidator(), defaults)

	engine := service.NewFulfillment(
		resolver,
		service.NewSpeechComposer(rng),
		rng,
		defaults,
		cfg.Quiz.MaxQuestionsPerGame,
		logger.Named("fulfillment"),
	)

	logger.Info("quiz data loaded",
		zap.Strings("locales", documents.Locales()),
		zap.String("default_locale", cfg.DefaultLocale),
	)

	return &App{
		Config:    cfg,
		Logger:    logger,
		Documents: documents,
		Catalog:   catalog,
		Engine:    engine,
	}, nil
}

// Dialogue builds the stored-conversation driver on the configured session backend.
func (a *App) Dialogue(ctx context.Context) (*service.Dialogue, error) {
	var (
		conversations service.ConversationStore
		players       service.PlayerTracker
	)

	switch a.Config.Session.Backend {
	case config.BackendPostgres:
		pool, err := postgres.NewPool(ctx, a.Config.DB)
		if err != nil {
			return nil, fmt.Errorf("connect postgres: %w", err)
		}
		a.closers = append(a.closers, pool.Close)

		if err := postgres.Migrate(ctx, postgres.NewTransactor(pool)); err != nil {
			return nil, err
		}

		repo := repository.NewConversationRepository(pool, a.Config.Session.TTL)
		conversations, a.purger = repo, repo
		players = repository.NewPlayerRepository(pool)

	case config.BackendRedis:
		client, err := redis.NewClient(ctx, a.Config.Redis)
		if err != nil {
			return nil, fmt.Errorf("connect redis: %w", err)
		}
		a.closers = append(a.closers, func() { _ = client.Close() })

		conversations = redis.NewConversationStore(client, a.Config.Session.TTL, a.Logger)
		players = redis.NewPlayerStore(client)

	default:
		store := storage.NewConversationStorage(a.Config.Session.TTL)
		conversations, a.purger = store, store
		players = storage.NewPlayerStorage()
	}

	a.Logger.Info("session backend ready", zap.String("backend", a.Config.Session.Backend))

	return service.NewDialogue(a.Engine, conversations, players, a.Logger.Named("dialogue")), nil
}

// Sweeper returns the expired conversation sweep for the backend chosen by Dialogue,
// or nil when the backend expires conversations itself.
func (a *App) Sweeper() *service.SessionSweeper {
	if a.purger == nil || a.Config.Session.TTL <= 0 {
		return nil
	}
	return service.NewSessionSweeper(a.purger, a.Config.Session.SweepSchedule, a.Logger.Named("sweeper"))
}

// Close releases the connections opened by Dialogue.
func (a *App) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
	a.closers = nil
}
