package service

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// ExpiredPurger removes conversations that outlived their ttl.
type ExpiredPurger interface {
	PurgeExpired(ctx context.Context) (int64, error)
}

// SessionSweeper periodically purges expired conversations from a store
// that does not expire them on its own.
type SessionSweeper struct {
	purger   ExpiredPurger
	schedule string
	logger   *zap.Logger
}

func NewSessionSweeper(purger ExpiredPurger, schedule string, logger *zap.Logger) *SessionSweeper {
	return &SessionSweeper{
		purger:   purger,
		schedule: schedule,
		logger:   logger,
	}
}

// Start runs the sweep on its schedule until ctx is done.
func (s *SessionSweeper) Start(ctx context.Context) error {
	c := cron.New(cron.WithLocation(time.UTC))

	_, err := c.AddFunc(s.schedule, func() {
		if _, err := s.Sweep(ctx); err != nil {
			s.logger.Error("failed to sweep conversations", zap.Error(err))
		}
	})
	if err != nil {
		return fmt.Errorf("add sweep job %q: %w", s.schedule, err)
	}

	c.Start()
	s.logger.Info("session sweeper started", zap.String("schedule", s.schedule))

	<-ctx.Done()

	<-c.Stop().Done()
	s.logger.Info("session sweeper stopped")
	return nil
}

// Sweep purges expired conversations once.
func (s *SessionSweeper) Sweep(ctx context.Context) (int64, error) {
	n, err := s.purger.PurgeExpired(ctx)
	if err != nil {
		return 0, fmt.Errorf("purge expired: %w", err)
	}
	if n > 0 {
		s.logger.Info("expired conversations purged", zap.Int64("count", n))
	}
	return n, nil
}
