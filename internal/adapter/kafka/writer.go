// Package kafka publishes camera record batches to the sink topic for
// downstream consumers.
package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	kafkago "github.com/segmentio/kafka-go"

	"github.com/lukeponga-dev/Smart-cameras/internal/config"
	"github.com/lukeponga-dev/Smart-cameras/internal/domain"
)

// Writer produces messages to the sink topic. It implements
// pipeline.BatchLoader.
type Writer struct {
	writer *kafkago.Writer
	logger *slog.Logger
}

// NewWriter creates a Kafka producer for the configured sink topic.
func NewWriter(cfg *config.Config, logger *slog.Logger) *Writer {
	w := &kafkago.Writer{
		Addr:         kafkago.TCP(cfg.KafkaBrokers...),
		Topic:        cfg.KafkaSinkTopic,
		Balancer:     &kafkago.LeastBytes{},
		RequiredAcks: kafkago.RequireAll,
	}
	return &Writer{writer: w, logger: logger}
}

// LoadBatch serializes and publishes one refresh cycle's records in a single
// WriteMessages call.
func (w *Writer) LoadBatch(ctx context.Context, cams []domain.Camera) error {
	if len(cams) == 0 {
		return nil
	}
	msgs := make([]kafkago.Message, len(cams))
	for i := range cams {
		msg, err := serializeToMessage(cams[i])
		if err != nil {
			return err
		}
		msgs[i] = msg
	}
	return w.writer.WriteMessages(ctx, msgs...)
}

func (w *Writer) Close() error {
	return w.writer.Close()
}

// serializeToMessage marshals a Camera into a Kafka message keyed by record
// identifier, so downstream compacted topics keep one entry per camera.
func serializeToMessage(cam domain.Camera) (kafkago.Message, error) {
	data, err := json.Marshal(cam)
	if err != nil {
		return kafkago.Message{}, fmt.Errorf("serialize camera record: %w", err)
	}
	return kafkago.Message{
		Key:   []byte(cam.ID),
		Value: data,
		Headers: []kafkago.Header{
			{Key: "source", Value: []byte(cam.Source)},
			{Key: "region", Value: []byte(cam.Region)},
		},
	}, nil
}
