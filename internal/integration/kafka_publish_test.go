//go:build integration

package integration_test

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tckafka "github.com/testcontainers/testcontainers-go/modules/kafka"

	"github.com/lukeponga-dev/Smart-cameras/internal/acquire"
	kafkaadapter "github.com/lukeponga-dev/Smart-cameras/internal/adapter/kafka"
	"github.com/lukeponga-dev/Smart-cameras/internal/config"
	"github.com/lukeponga-dev/Smart-cameras/internal/domain"
	"github.com/lukeponga-dev/Smart-cameras/internal/observability"
	"github.com/lukeponga-dev/Smart-cameras/internal/relay"
)

const testSinkTopic = "test-camera-records"

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// startKafka launches a single-broker Kafka container and returns its
// bootstrap address.
func startKafka(ctx context.Context, t *testing.T) string {
	t.Helper()

	container, err := tckafka.Run(ctx, "confluentinc/confluent-local:7.5.0")
	require.NoError(t, err, "start kafka container")
	t.Cleanup(func() {
		_ = container.Terminate(context.Background())
	})

	brokers, err := container.Brokers(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, brokers)
	return brokers[0]
}

func createTopic(t *testing.T, broker, topic string) {
	t.Helper()

	conn, err := kafkago.Dial("tcp", broker)
	require.NoError(t, err)
	defer conn.Close()

	controller, err := conn.Controller()
	require.NoError(t, err)

	controllerConn, err := kafkago.Dial("tcp", net.JoinHostPort(controller.Host, strconv.Itoa(controller.Port)))
	require.NoError(t, err)
	defer controllerConn.Close()

	require.NoError(t, controllerConn.CreateTopics(kafkago.TopicConfig{
		Topic:             topic,
		NumPartitions:     1,
		ReplicationFactor: 1,
	}))
}

// TestAcquireAndPublish runs a real acquisition pass against a mock
// authoritative upstream and verifies the records land on the sink topic with
// the expected keys and headers.
func TestAcquireAndPublish(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 120*time.Second)
	defer cancel()

	broker := startKafka(ctx, t)
	createTopic(t, broker, testSinkTopic)

	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"features":[
			{"geometry":{"coordinates":[174.7445,-36.8324]},"properties":{"id":"100","name":"Harbour Bridge","region":"Auckland"}},
			{"geometry":{"coordinates":[174.7756,-41.2787]},"properties":{"id":"517","name":"Terrace Tunnel","region":"Wellington"}}
		]}`))
	}))
	t.Cleanup(upstream.Close)

	acquirer := acquire.New(upstream.URL, "http://legacy.invalid/feed", relay.DefaultPool(),
		5*time.Second, domain.NewSampler(), discardLogger(), observability.NewMetricsForTesting())
	cams := acquirer.Acquire(ctx)
	require.Len(t, cams, 2)

	cfg := &config.Config{
		KafkaBrokers:   []string{broker},
		KafkaSinkTopic: testSinkTopic,
	}
	writer := kafkaadapter.NewWriter(cfg, discardLogger())
	t.Cleanup(func() { _ = writer.Close() })

	require.NoError(t, writer.LoadBatch(ctx, cams))

	consumer := kafkago.NewReader(kafkago.ReaderConfig{
		Brokers:     []string{broker},
		Topic:       testSinkTopic,
		GroupID:     fmt.Sprintf("test-consumer-%d", time.Now().UnixNano()),
		StartOffset: kafkago.FirstOffset,
	})
	t.Cleanup(func() { _ = consumer.Close() })

	seen := map[string]domain.Camera{}
	for range cams {
		readCtx, readCancel := context.WithTimeout(ctx, 30*time.Second)
		msg, err := consumer.ReadMessage(readCtx)
		readCancel()
		require.NoError(t, err, "read from sink topic")

		var cam domain.Camera
		require.NoError(t, json.Unmarshal(msg.Value, &cam))
		assert.Equal(t, cam.ID, string(msg.Key))

		headers := map[string]string{}
		for _, h := range msg.Headers {
			headers[h.Key] = string(h.Value)
		}
		assert.Equal(t, domain.SourceAuthoritative, headers["source"])
		seen[cam.ID] = cam
	}

	require.Contains(t, seen, "nzta-100")
	require.Contains(t, seen, "nzta-517")
	assert.Equal(t, "Auckland", seen["nzta-100"].Region)
	assert.Equal(t, "Wellington", seen["nzta-517"].Region)
}
