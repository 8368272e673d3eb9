// Command camerad runs the camera acquisition service: it periodically pulls
// camera records from the authoritative feed (falling back through the relay
// pool and finally the static dataset), serves the latest snapshot over HTTP,
// and optionally publishes each cycle to Kafka.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/lukeponga-dev/Smart-cameras/internal/acquire"
	httpadapter "github.com/lukeponga-dev/Smart-cameras/internal/adapter/http"
	kafkaadapter "github.com/lukeponga-dev/Smart-cameras/internal/adapter/kafka"
	"github.com/lukeponga-dev/Smart-cameras/internal/config"
	"github.com/lukeponga-dev/Smart-cameras/internal/domain"
	"github.com/lukeponga-dev/Smart-cameras/internal/observability"
	"github.com/lukeponga-dev/Smart-cameras/internal/pipeline"
	"github.com/lukeponga-dev/Smart-cameras/internal/relay"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := observability.NewLogger(cfg)
	metrics := observability.NewMetrics()

	acquirer := acquire.New(
		cfg.AuthoritativeURL,
		cfg.LegacyFeedURL,
		relay.DefaultPool(),
		cfg.RequestTimeout,
		domain.NewSampler(),
		logger,
		metrics,
	)

	var loader pipeline.BatchLoader
	var writer *kafkaadapter.Writer
	if cfg.KafkaEnabled {
		writer = kafkaadapter.NewWriter(cfg, logger)
		loader = writer
		logger.Info("kafka publishing enabled", "brokers", cfg.KafkaBrokers, "topic", cfg.KafkaSinkTopic)
	} else {
		logger.Info("kafka publishing disabled")
	}

	refresher := pipeline.New(acquirer, loader, logger, metrics, cfg.RefreshInterval)

	srv := httpadapter.NewServer(cfg.HTTPAddr, refresher, refresher, logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server error", "error", err)
		}
	}()

	go func() {
		if err := refresher.Run(ctx); err != nil {
			logger.Error("refresh loop error", "error", err)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown error", "error", err)
	}
	if writer != nil {
		if err := writer.Close(); err != nil {
			logger.Error("kafka writer close error", "error", err)
		}
	}

	logger.Info("shutdown complete")
}
