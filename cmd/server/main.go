package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"finwise-tips/internal/config"
	"finwise-tips/internal/handlers"
	"finwise-tips/internal/server"
	"finwise-tips/internal/services"
	"finwise-tips/internal/validation"

	"github.com/prometheus/client_golang/prometheus"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		if errors.Is(err, config.ErrMissingAPIKey) {
			slog.Error("LLM provider credential is not configured", "error", err)
		} else {
			slog.Error("Failed to load configuration", "error", err)
		}
		os.Exit(1)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level:     cfg.LogLevel,
		AddSource: cfg.IsDevelopment(),
	}))
	slog.SetDefault(logger)

	metrics := services.NewPrometheusMetrics(prometheus.DefaultRegisterer)

	advisor := services.NewTipAdvisor(
		services.NewPromptComposer(),
		services.NewGeminiClient(&cfg.LLM, metrics, logger),
		services.NewResponseNormalizer(validation.GetValidator()),
		metrics,
		logger,
	)

	srv := server.New(cfg, server.Dependencies{
		Tips:     handlers.NewTipsHandler(services.NewFinancialHealthAssessor(), advisor, services.NewTipsLogger(logger), metrics),
		Health:   handlers.NewHealthCheckHandler(),
		Gatherer: prometheus.DefaultGatherer,
	}, logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	select {
	case err := <-errCh:
		if err != nil {
			logger.Error("Server failed", "error", err)
			os.Exit(1)
		}
		return
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Graceful shutdown failed", "error", err)
		os.Exit(1)
	}
}
