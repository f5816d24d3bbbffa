package main

import (
	"context"
	"errors"
	"log"
	"os/signal"
	"syscall"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/aliskhannn/flash-cards-bot/internal/app"
	"github.com/aliskhannn/flash-cards-bot/internal/config"
	"github.com/aliskhannn/flash-cards-bot/internal/delivery/telegram"
	"github.com/aliskhannn/flash-cards-bot/internal/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	if err := cfg.RequireTelegram(); err != nil {
		log.Fatal(err)
	}

	lg, err := logger.New(cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = lg.Sync() }()

	bot, err := tgbotapi.NewBotAPI(cfg.TelegramAPIToken)
	if err != nil {
		lg.Fatal("failed to create bot", zap.Error(err))
	}

	commands := []tgbotapi.BotCommand{
		{Command: "start", Description: "Start a new game"},
		{Command: "hint", Description: "Get a hint"},
		{Command: "repeat", Description: "Repeat the question"},
		{Command: "skip", Description: "Skip the question"},
		{Command: "dontknow", Description: "Reveal the answer"},
		{Command: "help", Description: "How to play"},
		{Command: "quit", Description: "Stop playing"},
	}

	if _, err = bot.Request(tgbotapi.NewSetMyCommands(commands...)); err != nil {
		lg.Warn("failed to set bot commands", zap.Error(err))
	}

	bot.Debug = cfg.Env != "production"
	lg.Info("authorized on account", zap.String("username", bot.Self.UserName))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a, err := app.New(cfg, lg)
	if err != nil {
		lg.Fatal("failed to initialize", zap.Error(err))
	}
	defer a.Close()

	dialogue, err := a.Dialogue(ctx)
	if err != nil {
		lg.Fatal("failed to set up sessions", zap.Error(err))
	}

	if sweeper := a.Sweeper(); sweeper != nil {
		go func() {
			if err := sweeper.Start(ctx); err != nil {
				lg.Error("session sweeper failed", zap.Error(err))
			}
		}()
	}

	handler := telegram.NewHandler(
		bot,
		lg.Named("telegram"),
		dialogue,
		a.Catalog,
		a.Documents,
		cfg.DefaultLocale,
	)
	if err := handler.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		lg.Error("telegram handler stopped", zap.Error(err))
	}

	bot.StopReceivingUpdates()
	lg.Info("shutdown signal received")
}
