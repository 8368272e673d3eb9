package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"
)

// Default upstream endpoints. Both can be overridden for local development
// against cmd/mockfeeds.
const (
	defaultAuthoritativeURL = "https://services.arcgis.com/CXBb7LAjgIIdcsPt/arcgis/rest/services/TrafficCameras/FeatureServer/0/query?where=1%3D1&outFields=*&f=geojson"
	defaultLegacyFeedURL    = "https://www.trafficnz.info/service/traffic/rest/4/cameras/all"
)

// Config holds all service settings, populated from environment variables.
type Config struct {
	AuthoritativeURL string
	LegacyFeedURL    string

	// RequestTimeout bounds each individual upstream request; the cancellation
	// actually aborts the transport, not just the wait.
	RequestTimeout  time.Duration
	RefreshInterval time.Duration

	HTTPAddr        string
	LogLevel        string
	LogFormat       string
	ShutdownTimeout time.Duration

	// Kafka publishing is optional; it is enabled when brokers are configured.
	KafkaBrokers   []string
	KafkaSinkTopic string
	KafkaEnabled   bool
}

// Load reads configuration from environment variables, applying defaults where unset.
func Load() (*Config, error) {
	requestTimeout, err := durationEnv("REQUEST_TIMEOUT", 12*time.Second)
	if err != nil {
		return nil, err
	}
	refreshInterval, err := durationEnv("REFRESH_INTERVAL", 60*time.Second)
	if err != nil {
		return nil, err
	}
	shutdownTimeout, err := durationEnv("SHUTDOWN_TIMEOUT", 10*time.Second)
	if err != nil {
		return nil, err
	}

	brokers := parseBrokers(os.Getenv("KAFKA_BROKERS"))
	kafkaEnabled := len(brokers) > 0
	if v := os.Getenv("KAFKA_ENABLED"); v != "" {
		kafkaEnabled = v == "true"
	}

	cfg := &Config{
		AuthoritativeURL: envOrDefault("AUTHORITATIVE_URL", defaultAuthoritativeURL),
		LegacyFeedURL:    envOrDefault("LEGACY_FEED_URL", defaultLegacyFeedURL),
		RequestTimeout:   requestTimeout,
		RefreshInterval:  refreshInterval,
		HTTPAddr:         envOrDefault("HTTP_ADDR", ":8080"),
		LogLevel:         envOrDefault("LOG_LEVEL", "info"),
		LogFormat:        envOrDefault("LOG_FORMAT", "json"),
		ShutdownTimeout:  shutdownTimeout,
		KafkaBrokers:     brokers,
		KafkaSinkTopic:   envOrDefault("KAFKA_SINK_TOPIC", "camera-records"),
		KafkaEnabled:     kafkaEnabled,
	}

	if cfg.AuthoritativeURL == "" {
		return nil, errors.New("AUTHORITATIVE_URL is required")
	}
	if cfg.LegacyFeedURL == "" {
		return nil, errors.New("LEGACY_FEED_URL is required")
	}
	if cfg.KafkaEnabled && len(cfg.KafkaBrokers) == 0 {
		return nil, errors.New("KAFKA_ENABLED is true but KAFKA_BROKERS is not set")
	}
	if cfg.KafkaEnabled && cfg.KafkaSinkTopic == "" {
		return nil, errors.New("KAFKA_SINK_TOPIC is required when Kafka publishing is enabled")
	}

	return cfg, nil
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func durationEnv(key string, fallback time.Duration) (time.Duration, error) {
	s := os.Getenv(key)
	if s == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(s)
	if err != nil || d <= 0 {
		return 0, fmt.Errorf("invalid %s: %q", key, s)
	}
	return d, nil
}

func parseBrokers(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	brokers := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			brokers = append(brokers, p)
		}
	}
	return brokers
}
