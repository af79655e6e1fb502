package events

import (
	"context"

	"kitchen-pos/internal/common/logger"
	"kitchen-pos/internal/domain"
)

// Emit publishes evs after a commit. A failed publish is logged and dropped;
// the committed write stands.
func Emit(ctx context.Context, pub domain.EventPublisher, log *logger.Logger, evs ...domain.Event) {
	for _, ev := range evs {
		if err := pub.Publish(ctx, ev); err != nil {
			log.Warn("event_dropped", map[string]any{
				"event_type": ev.Type,
				"entity_id":  ev.EntityID,
				"reason":     err.Error(),
			})
		}
	}
}
