// Package events publishes committed POS changes to RabbitMQ.
package events

import (
	"context"
	"encoding/json"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"

	"kitchen-pos/internal/common/logger"
	"kitchen-pos/internal/domain"
)

// Broker is the publishing side of mq.Client.
type Broker interface {
	PublishPersistent(ctx context.Context, exchange, key string, body []byte) error
}

type Publisher struct {
	broker   Broker
	exchange string
	timeout  time.Duration
	log      *logger.Logger
}

func NewPublisher(broker Broker, exchange string, log *logger.Logger) *Publisher {
	return &Publisher{broker: broker, exchange: exchange, timeout: 5 * time.Second, log: log}
}

// Publish sends ev with its type as routing key. Missing ids and timestamps
// are filled in. Failures are returned, not logged; Emit logs them.
func (p *Publisher) Publish(ctx context.Context, ev domain.Event) error {
	if ev.ID == "" {
		ev.ID = uuid.NewString()
	}
	if ev.OccurredAt.IsZero() {
		ev.OccurredAt = time.Now().UTC()
	}
	body, err := json.Marshal(ev)
	if err != nil {
		return errors.Wrap(err, "failed to marshal event")
	}

	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()
	if err := p.broker.PublishPersistent(ctx, p.exchange, ev.Type, body); err != nil {
		return errors.Wrapf(err, "failed to publish %s", ev.Type)
	}
	p.log.Debug("event_published", map[string]any{"event_type": ev.Type, "entity_id": ev.EntityID, "event_id": ev.ID})
	return nil
}
