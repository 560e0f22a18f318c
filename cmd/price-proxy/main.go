package main

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/abrshewube/Google-Flights-Clone/internal/airports"
	"github.com/abrshewube/Google-Flights-Clone/internal/api/http/handlers"
	"github.com/abrshewube/Google-Flights-Clone/internal/api/http/router"
	"github.com/abrshewube/Google-Flights-Clone/internal/app/grpcapp"
	"github.com/abrshewube/Google-Flights-Clone/internal/app/httpapp"
	"github.com/abrshewube/Google-Flights-Clone/internal/application/service"
	"github.com/abrshewube/Google-Flights-Clone/internal/config"
	skyclient "github.com/abrshewube/Google-Flights-Clone/internal/infrastructures/skyscrapper/http/client"
	"github.com/abrshewube/Google-Flights-Clone/internal/infrastructures/tracing"
	"github.com/abrshewube/Google-Flights-Clone/internal/metrics"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func main() {
	_ = godotenv.Load(".env")

	cfg := config.MustLoadProxy()
	log := setupLogger(cfg.Log.Level)
	defer func() {
		_ = log.Sync()
	}()

	if cfg.Env != "local" {
		gin.SetMode(gin.ReleaseMode)
	}

	tp, err := tracing.InitTracer("price-proxy", cfg.Jaeger)
	if err != nil {
		log.Fatal("failed to init tracer", zap.Error(err))
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := tp.Shutdown(shutdownCtx); err != nil {
			log.Warn("failed to shutdown tracer provider", zap.Error(err))
		}
	}()

	if strings.TrimSpace(cfg.Skyscrapper.APIKey) == "" {
		log.Warn("SKYSCRAPPER_API_KEY is empty, every price request will fail")
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.NewMetrics("price_proxy", reg)

	registry := airports.Default()
	source := skyclient.NewClient(
		cfg.Skyscrapper.BaseURL,
		cfg.Skyscrapper.APIKey,
		cfg.Skyscrapper.Host,
		cfg.Skyscrapper.Timeout,
	)
	priceService := service.NewPriceService(log, source, m)

	engine := router.New(router.Deps{
		Log:            log,
		Metrics:        m,
		Gatherer:       reg,
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		Airports:       handlers.NewAirportHandler(registry),
		Calendar:       handlers.NewCalendarHandler(log, priceService, registry, m),
	})

	httpApp := httpapp.New(log, cfg.HTTP.Host, cfg.HTTP.Port, engine, cfg.HTTP.ReadTimeout, cfg.HTTP.WriteTimeout)
	grpcApp := grpcapp.New(log, cfg.GRPC.Host, cfg.GRPC.Port)

	log.Info("price-proxy starting",
		zap.String("env", cfg.Env),
		zap.Int("http_port", cfg.HTTP.Port),
		zap.Int("grpc_port", cfg.GRPC.Port),
	)

	errCh := make(chan error, 2)
	go func() {
		errCh <- httpApp.Run()
	}()
	go func() {
		errCh <- grpcApp.Run()
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	select {
	case <-ctx.Done():
		log.Info("shutdown signal received")
	case err := <-errCh:
		if err != nil {
			log.Error("server stopped", zap.Error(err))
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()
	if err := httpApp.Stop(shutdownCtx); err != nil {
		log.Error("http shutdown error", zap.Error(err))
	}
	grpcApp.Stop()
}

func setupLogger(level string) *zap.Logger {
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(parseLogLevel(level))

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
