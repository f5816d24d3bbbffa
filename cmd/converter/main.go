package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/aliskhannn/flash-cards-bot/internal/config"
	"github.com/aliskhannn/flash-cards-bot/internal/converter"
	"github.com/aliskhannn/flash-cards-bot/internal/logger"
)

func main() {
	flags := pflag.NewFlagSet("converter", pflag.ExitOnError)
	flags.StringP("input", "i", "", "path to the .xlsx workbook")
	flags.StringP("locale", "l", "en", "locale of the workbook")
	flags.StringP("out", "o", "", "output directory (defaults to data_dir)")
	_ = flags.Parse(os.Args[1:])

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	v := viper.New()
	if err := v.BindPFlags(flags); err != nil {
		log.Fatal(err)
	}
	v.SetDefault("out", cfg.DataDir)

	lg, err := logger.New(cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = lg.Sync() }()

	if err := run(lg, v.GetString("input"), v.GetString("locale"), v.GetString("out")); err != nil {
		lg.Fatal("conversion failed", zap.Error(err))
	}
}

func run(lg *zap.Logger, input, locale, out string) error {
	if input == "" {
		return fmt.Errorf("--input is required")
	}

	in, err := os.Open(input)
	if err != nil {
		return err
	}
	defer func() { _ = in.Close() }()

	doc, err := converter.New(converter.QuizTabs(), lg).Convert(in)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(out, 0o755); err != nil {
		return err
	}

	path := filepath.Join(out, locale+".json")
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()

	if err := converter.WriteDocument(f, doc); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}

	lg.Info("document written", zap.String("path", path), zap.String("locale", locale))
	return nil
}
