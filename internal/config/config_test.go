package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, defaultAuthoritativeURL, cfg.AuthoritativeURL)
	assert.Equal(t, defaultLegacyFeedURL, cfg.LegacyFeedURL)
	assert.Equal(t, 12*time.Second, cfg.RequestTimeout)
	assert.Equal(t, 60*time.Second, cfg.RefreshInterval)
	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
	assert.False(t, cfg.KafkaEnabled)
	assert.Empty(t, cfg.KafkaBrokers)
	assert.Equal(t, "camera-records", cfg.KafkaSinkTopic)
}

func TestLoad_CustomEnv(t *testing.T) {
	t.Setenv("AUTHORITATIVE_URL", "http://localhost:9901/arcgis")
	t.Setenv("LEGACY_FEED_URL", "http://localhost:9901/legacy")
	t.Setenv("REQUEST_TIMEOUT", "3s")
	t.Setenv("REFRESH_INTERVAL", "15s")
	t.Setenv("HTTP_ADDR", ":9090")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "text")
	t.Setenv("SHUTDOWN_TIMEOUT", "30s")
	t.Setenv("KAFKA_BROKERS", "broker1:9092, broker2:9092")
	t.Setenv("KAFKA_SINK_TOPIC", "custom-records")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:9901/arcgis", cfg.AuthoritativeURL)
	assert.Equal(t, "http://localhost:9901/legacy", cfg.LegacyFeedURL)
	assert.Equal(t, 3*time.Second, cfg.RequestTimeout)
	assert.Equal(t, 15*time.Second, cfg.RefreshInterval)
	assert.Equal(t, ":9090", cfg.HTTPAddr)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, 30*time.Second, cfg.ShutdownTimeout)
	assert.True(t, cfg.KafkaEnabled)
	assert.Equal(t, []string{"broker1:9092", "broker2:9092"}, cfg.KafkaBrokers)
	assert.Equal(t, "custom-records", cfg.KafkaSinkTopic)
}

func TestLoad_KafkaDisabledOverride(t *testing.T) {
	t.Setenv("KAFKA_BROKERS", "broker1:9092")
	t.Setenv("KAFKA_ENABLED", "false")

	cfg, err := Load()
	require.NoError(t, err)
	assert.False(t, cfg.KafkaEnabled)
}

func TestLoad_InvalidValues(t *testing.T) {
	t.Run("bad timeout", func(t *testing.T) {
		t.Setenv("REQUEST_TIMEOUT", "soon")
		_, err := Load()
		require.Error(t, err)
	})

	t.Run("negative interval", func(t *testing.T) {
		t.Setenv("REFRESH_INTERVAL", "-5s")
		_, err := Load()
		require.Error(t, err)
	})

	t.Run("kafka enabled without brokers", func(t *testing.T) {
		t.Setenv("KAFKA_ENABLED", "true")
		_, err := Load()
		require.Error(t, err)
	})
}
