package mq

import (
	"context"
	"encoding/json"
	"log"

	"cocina/rdx"
)

// ChangeChannel carries collection-changed notifications from mutation
// handlers to the sync worker.
const ChangeChannel = "collection-changes"

// Change is a collection-changed message. Subscribers treat it as a hint to
// re-read the whole collection; the payload never carries document content,
// so the last notification always wins.
type Change struct {
	Collection string `json:"collection"`
	Method     string `json:"method"`
	EntityID   string `json:"entity_id,omitempty"`
}

// Emit publishes a change notification to Redis. Failures are logged and
// swallowed; a missed notification only delays the next snapshot push.
func Emit(ctx context.Context, change Change) {
	data, err := json.Marshal(change)
	if err != nil {
		log.Printf("[Emit] Failed to marshal change: %v", err)
		return
	}

	if err := rdx.Conn.Publish(ctx, ChangeChannel, data).Err(); err != nil {
		log.Printf("[Emit] Failed to publish change to Redis: %v", err)
	}
}
