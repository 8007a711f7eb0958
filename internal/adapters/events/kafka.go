// Package events publishes category change events.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/jsamuelsen11/devflix-admin/internal/platform/breaker"
	"github.com/jsamuelsen11/devflix-admin/internal/platform/config"
	"github.com/jsamuelsen11/devflix-admin/internal/platform/logging"
	"github.com/jsamuelsen11/devflix-admin/internal/ports"
)

var _ ports.EventPublisher = (*Kafka)(nil)

// Kafka writes each CategoryEvent as a JSON message keyed by category ID,
// so all events for one category land on the same partition.
type Kafka struct {
	writer  *kafka.Writer
	breaker *breaker.Breaker
	logger  *slog.Logger
}

// NewKafka creates a publisher for cfg.Topic on cfg.Brokers.
func NewKafka(cfg config.KafkaConfig, b *breaker.Breaker, logger *slog.Logger) *Kafka {
	logger = logging.OrDiscard(logger)

	writeTimeout := cfg.WriteTimeout
	if writeTimeout <= 0 {
		writeTimeout = 10 * time.Second
	}

	writer := &kafka.Writer{
		Addr:                   kafka.TCP(cfg.Brokers...),
		Topic:                  cfg.Topic,
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireOne,
		BatchTimeout:           10 * time.Millisecond,
		WriteTimeout:           writeTimeout,
		AllowAutoTopicCreation: true,
	}

	return &Kafka{
		writer:  writer,
		breaker: b,
		logger:  logger,
	}
}

// Publish writes event synchronously.
func (k *Kafka) Publish(ctx context.Context, event ports.CategoryEvent) error {
	msg, err := encode(event)
	if err != nil {
		return err
	}

	err = k.breaker.Execute(ctx, "publish", func(ctx context.Context) error {
		return k.writer.WriteMessages(ctx, msg)
	})
	if err != nil {
		return fmt.Errorf("publishing %s: %w", event.Type, err)
	}

	k.logger.DebugContext(ctx, "category event published",
		slog.String("event", event.Type),
		slog.String("category_id", event.Category.ID.String()),
		slog.String("topic", k.writer.Topic),
	)
	return nil
}

// Close flushes pending messages and closes the writer.
func (k *Kafka) Close() error {
	return k.writer.Close()
}

// Name returns "kafka".
func (k *Kafka) Name() string { return "kafka" }

// HealthCheck reports the publish breaker's state.
func (k *Kafka) HealthCheck(ctx context.Context) error {
	return k.breaker.HealthCheck(ctx)
}

func encode(event ports.CategoryEvent) (kafka.Message, error) {
	value, err := json.Marshal(event)
	if err != nil {
		return kafka.Message{}, fmt.Errorf("encoding %s: %w", event.Type, err)
	}
	return kafka.Message{
		Key:   []byte(event.Category.ID.String()),
		Value: value,
		Time:  event.OccurredAt,
		Headers: []kafka.Header{
			{Key: "event-type", Value: []byte(event.Type)},
		},
	}, nil
}
