package domain

import (
	"context"
	"time"
)

// Event types published after a successful write.
const (
	EventProductCreated      = "product.created"
	EventMenuGroupCreated    = "menu_group.created"
	EventMenuCreated         = "menu.created"
	EventOrderCreated        = "order.created"
	EventOrderStatusChanged  = "order.status_changed"
	EventTableCreated        = "table.created"
	EventTableEmptyChanged   = "table.empty_changed"
	EventTableGuestsChanged  = "table.guests_changed"
	EventTableGroupCreated   = "table_group.created"
	EventTableGroupUngrouped = "table_group.ungrouped"
)

// Event is the message body put on the broker.
type Event struct {
	ID         string         `json:"id"`
	Type       string         `json:"type"`
	EntityID   int64          `json:"entity_id"`
	Payload    map[string]any `json:"payload,omitempty"`
	OccurredAt time.Time      `json:"occurred_at"`
}

// NopPublisher drops every event.
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, Event) error { return nil }
