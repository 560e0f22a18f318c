package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/abrshewube/Google-Flights-Clone/internal/airports"
	"github.com/abrshewube/Google-Flights-Clone/internal/clients/pricing"
	"github.com/abrshewube/Google-Flights-Clone/internal/config"
	"github.com/abrshewube/Google-Flights-Clone/internal/console"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func main() {
	_ = godotenv.Load(".env")

	cfg := config.MustLoadCalendar()
	log := setupLogger(cfg.Log.Level, cfg.Log.File)
	defer func() {
		_ = log.Sync()
	}()

	log.Info("price-calendar starting", zap.String("pricing_base_url", cfg.Pricing.BaseURL))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	session := console.NewSession(
		log,
		os.Stdin,
		os.Stdout,
		airports.Default(),
		pricing.NewClient(cfg.Pricing.BaseURL, cfg.Pricing.Timeout),
		console.WithPlainOutput(cfg.Plain),
	)
	if err := session.Run(ctx); err != nil && ctx.Err() == nil {
		log.Error("session stopped", zap.Error(err))
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// setupLogger writes to file so log lines stay out of the rendered calendar.
func setupLogger(level, file string) *zap.Logger {
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(parseLogLevel(level))
	if file = strings.TrimSpace(file); file != "" {
		cfg.OutputPaths = []string{file}
	}

	log, err := cfg.Build()
	if err != nil {
		panic(err)
	}

	return log
}

func parseLogLevel(level string) zapcore.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return zapcore.DebugLevel
	case "warn", "warning":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}
