package logger

import (
	"go.uber.org/zap"

	"github.com/aliskhannn/flash-cards-bot/internal/config"
)

const service = "flash-cards"

// New builds the application logger. Production uses JSON output at info level,
// every other environment the console encoder at debug level.
func New(cfg *config.Config) (*zap.Logger, error) {
	zcfg := zap.NewDevelopmentConfig()
	if cfg.Env == "production" {
		zcfg = zap.NewProductionConfig()
	}

	zcfg.InitialFields = map[string]any{
		"service": service,
		"env":     cfg.Env,
	}

	return zcfg.Build()
}
