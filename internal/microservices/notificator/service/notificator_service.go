package service

import (
	"context"
	"encoding/json"

	"github.com/cockroachdb/errors"
	amqp "github.com/rabbitmq/amqp091-go"

	"kitchen-pos/internal/common/logger"
	"kitchen-pos/internal/domain"
)

type NotificatorServiceInterface interface {
	Notify(ctx context.Context, deliveries <-chan amqp.Delivery) error
	Handle(body []byte) (domain.Event, error)
}

type NotificatorService struct {
	log *logger.Logger
}

func NewNotificatorService(log *logger.Logger) *NotificatorService {
	return &NotificatorService{log: log}
}

// Notify logs every POS event until ctx is done or the channel closes.
// Malformed messages are rejected without requeue.
func (ns *NotificatorService) Notify(ctx context.Context, deliveries <-chan amqp.Delivery) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case d, ok := <-deliveries:
			if !ok {
				return errors.New("delivery channel closed")
			}
			if _, err := ns.Handle(d.Body); err != nil {
				ns.log.Error("event_rejected", err, map[string]any{"routing_key": d.RoutingKey})
				_ = d.Nack(false, false)
				continue
			}
			_ = d.Ack(false)
		}
	}
}

func (ns *NotificatorService) Handle(body []byte) (domain.Event, error) {
	var ev domain.Event
	if err := json.Unmarshal(body, &ev); err != nil {
		return domain.Event{}, errors.Wrap(err, "failed to decode event")
	}
	if ev.Type == "" {
		return domain.Event{}, errors.New("event has no type")
	}
	ns.log.WithRequestID(ev.ID).Info("notification", map[string]any{
		"event_type":  ev.Type,
		"entity_id":   ev.EntityID,
		"payload":     ev.Payload,
		"occurred_at": ev.OccurredAt,
	})
	return ev, nil
}
