// Copyright (c) 2026 Tyrnon GmbH <hallo@tyrnon.de>
// All rights reserved. See LICENSE for details.

// events.go carries brand change notifications over Valkey pub/sub so that
// every running instance can invalidate its caches when a brand is created,
// updated, or deleted.
package cache

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// brandChannel is the pub/sub channel for brand change events.
const brandChannel = "brand-events"

// Actions published on the brand channel.
const (
	ActionCreated = "created"
	ActionUpdated = "updated"
	ActionDeleted = "deleted"
)

// BrandEvent is one published brand change.
type BrandEvent struct {
	BrandID uuid.UUID `json:"brand_id"`
	Action  string    `json:"action"`
}

// Events publishes and subscribes to brand change notifications.
type Events struct {
	client *redis.Client
}

// NewEvents creates the event bus on the given Valkey client.
func NewEvents(client *redis.Client) *Events {
	return &Events{client: client}
}

// Publish announces a brand change. Failures are logged, not returned:
// a missed invalidation degrades to a TTL-bounded stale read.
func (e *Events) Publish(ctx context.Context, brandID uuid.UUID, action string) {
	payload, err := json.Marshal(BrandEvent{BrandID: brandID, Action: action})
	if err != nil {
		slog.Warn("brand event encode error", "brand", brandID, "error", err)
		return
	}
	if err := e.client.Publish(ctx, brandChannel, payload).Err(); err != nil {
		slog.Warn("brand event publish error", "brand", brandID, "error", err)
	}
}

// Subscribe listens for brand change events until ctx is cancelled, calling
// handler for each event. It is meant to run in its own goroutine.
func (e *Events) Subscribe(ctx context.Context, handler func(BrandEvent)) {
	sub := e.client.Subscribe(ctx, brandChannel)
	defer sub.Close()

	ch := sub.Channel()
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-ch:
			if !ok {
				return
			}
			var event BrandEvent
			if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
				slog.Warn("brand event decode error", "error", err)
				continue
			}
			handler(event)
		}
	}
}
