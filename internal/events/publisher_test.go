package events_test

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kitchen-pos/internal/common/logger"
	"kitchen-pos/internal/domain"
	"kitchen-pos/internal/events"
)

type published struct {
	exchange, key string
	body          []byte
}

type fakeBroker struct {
	sent []published
	err  error
}

func (b *fakeBroker) PublishPersistent(_ context.Context, exchange, key string, body []byte) error {
	if b.err != nil {
		return b.err
	}
	b.sent = append(b.sent, published{exchange: exchange, key: key, body: body})
	return nil
}

func TestPublisher_Publish(t *testing.T) {
	broker := &fakeBroker{}
	p := events.NewPublisher(broker, "pos_events", logger.New("test", logger.WithOutput(&bytes.Buffer{})))

	err := p.Publish(context.Background(), domain.Event{
		Type:     domain.EventOrderCreated,
		EntityID: 12,
		Payload:  map[string]any{"order_table_id": 3},
	})
	require.NoError(t, err)
	require.Len(t, broker.sent, 1)

	msg := broker.sent[0]
	assert.Equal(t, "pos_events", msg.exchange)
	assert.Equal(t, "order.created", msg.key)

	var ev domain.Event
	require.NoError(t, json.Unmarshal(msg.body, &ev))
	assert.Equal(t, int64(12), ev.EntityID)
	assert.Len(t, ev.ID, 36)
	assert.False(t, ev.OccurredAt.IsZero())
	assert.Equal(t, float64(3), ev.Payload["order_table_id"])
}

func TestPublisher_BrokerFailure(t *testing.T) {
	var logs bytes.Buffer
	boom := errors.New("channel closed")
	p := events.NewPublisher(&fakeBroker{err: boom}, "pos_events", logger.New("test", logger.WithOutput(&logs)))

	err := p.Publish(context.Background(), domain.Event{Type: domain.EventTableCreated, EntityID: 1})
	require.Error(t, err)
	assert.True(t, errors.Is(err, boom))
	assert.Empty(t, logs.String())
}

func TestEmit_LogsEachFailureOnce(t *testing.T) {
	var logs bytes.Buffer
	log := logger.New("test", logger.WithOutput(&logs))
	p := events.NewPublisher(&fakeBroker{err: errors.New("channel closed")}, "pos_events", log)

	events.Emit(context.Background(), p, log,
		domain.Event{Type: domain.EventTableCreated, EntityID: 1},
		domain.Event{Type: domain.EventTableEmptyChanged, EntityID: 1},
	)

	lines := strings.Split(strings.TrimSpace(logs.String()), "\n")
	require.Len(t, lines, 2)
	for _, line := range lines {
		assert.Contains(t, line, `"action":"event_dropped"`)
	}
}
