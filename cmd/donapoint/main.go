package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/lmittmann/tint"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/donapoint/donapoint/internal/buildinfo"
	"github.com/donapoint/donapoint/internal/cli"
	"github.com/donapoint/donapoint/internal/config"
	"github.com/donapoint/donapoint/internal/logging"
)

func main() {
	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("%v", err)
	}

	logger, err := newLogger(cfg)
	if err != nil {
		log.Fatalf("%v", err)
	}

	app, err := cli.NewApp(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
	}

	if err := app.Run(ctx); err != nil {
		log.Fatalf("%v", err)
	}
}

// newLogger builds the configured logger: colorized text on stderr for
// interactive use, zap's JSON encoder when logs are collected.
func newLogger(cfg *config.Config) (logging.Logger, error) {
	if cfg.LogFormat == "json" {
		zcfg := zap.NewProductionConfig()
		zcfg.Level = zap.NewAtomicLevelAt(zapLevel(cfg.LogLevel))
		zl, err := zcfg.Build()
		if err != nil {
			return nil, err
		}
		return logging.NewZapLogger(zl.Sugar()), nil
	}

	handler := tint.NewHandler(os.Stderr, &tint.Options{
		Level:      slogLevel(cfg.LogLevel),
		TimeFormat: time.Kitchen,
	})
	return logging.NewSlogLogger(slog.New(handler)), nil
}

func slogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func zapLevel(level string) zapcore.Level {
	switch level {
	case "debug":
		return zapcore.DebugLevel
	case "warn":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}
