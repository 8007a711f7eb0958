package events

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/devflix-admin/internal/platform/breaker"
	"github.com/jsamuelsen11/devflix-admin/internal/platform/config"
	"github.com/jsamuelsen11/devflix-admin/internal/ports"
)

func sampleEvent() ports.CategoryEvent {
	return ports.CategoryEvent{
		Type: ports.EventCategoryCreated,
		Category: ports.CategoryResponse{
			ID:          uuid.MustParse("0b1e6f0e-5d1c-4c2b-9f57-3f3c2b0a9d11"),
			Name:        "Documentary",
			Description: "Non-fiction films",
			IsActive:    true,
			CreatedAt:   time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
		},
		OccurredAt: time.Date(2026, 3, 1, 12, 0, 1, 0, time.UTC),
	}
}

func TestEncode(t *testing.T) {
	t.Parallel()

	event := sampleEvent()

	msg, err := encode(event)
	require.NoError(t, err)

	assert.Equal(t, event.Category.ID.String(), string(msg.Key))
	assert.Equal(t, event.OccurredAt, msg.Time)
	require.Len(t, msg.Headers, 1)
	assert.Equal(t, "event-type", msg.Headers[0].Key)
	assert.Equal(t, ports.EventCategoryCreated, string(msg.Headers[0].Value))

	var body map[string]any
	require.NoError(t, json.Unmarshal(msg.Value, &body))
	assert.Equal(t, "category.created", body["type"])
	category, ok := body["category"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Documentary", category["name"])
	assert.Equal(t, true, category["is_active"])
}

func TestKafka_PublishFailsWithoutBroker(t *testing.T) {
	t.Parallel()

	b := breaker.New("kafka", config.CircuitBreakerConfig{
		MaxFailures:   5,
		Timeout:       time.Second,
		HalfOpenLimit: 1,
	}, nil, nil)
	k := NewKafka(config.KafkaConfig{
		Brokers:      []string{"127.0.0.1:1"},
		Topic:        "catalog.categories",
		WriteTimeout: 200 * time.Millisecond,
	}, b, nil)
	t.Cleanup(func() { _ = k.Close() })

	ctx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
	defer cancel()

	err := k.Publish(ctx, sampleEvent())
	require.Error(t, err)
	assert.Contains(t, err.Error(), ports.EventCategoryCreated)
	assert.Equal(t, "kafka", k.Name())
}

func TestDiscard(t *testing.T) {
	t.Parallel()

	d := NewDiscard(nil)

	assert.NoError(t, d.Publish(context.Background(), sampleEvent()))
}
