package sync

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"cocina/models"
	"cocina/mq"
	"cocina/rdx"
	"cocina/recipes"
	"cocina/settings"
)

// Snapshot is the wholesale state push sent to tablets. It replaces their
// in-memory collections entirely.
type Snapshot struct {
	Action     string          `json:"action"`
	Recipes    []models.Recipe `json:"recipes"`
	Categories []string        `json:"categories"`
	Timestamp  int64           `json:"timestamp"`
}

func buildSnapshot(ctx context.Context) ([]byte, error) {
	all, err := recipes.LoadAll(ctx)
	if err != nil {
		return nil, err
	}
	tags, err := settings.LoadTagList(ctx)
	if err != nil {
		return nil, err
	}
	if all == nil {
		all = []models.Recipe{}
	}

	return json.Marshal(Snapshot{
		Action:     "replace",
		Recipes:    all,
		Categories: tags,
		Timestamp:  time.Now().Unix(),
	})
}

// StartChangeWorker listens for change notifications on the Redis bus and
// broadcasts a fresh snapshot after each one. The notification payload is
// only a hint; the snapshot is always re-read from the store, so a burst of
// changes collapses into whichever push lands last.
func StartChangeWorker(hub *Hub) {
	ctx := context.Background()
	sub := rdx.Conn.Subscribe(ctx, mq.ChangeChannel)
	ch := sub.Channel()

	log.Println("[SyncWorker] Listening for collection changes...")

	for msg := range ch {
		var change mq.Change
		if err := json.Unmarshal([]byte(msg.Payload), &change); err != nil {
			log.Printf("[SyncWorker] Failed to parse change: %v", err)
			continue
		}

		data, err := buildSnapshot(ctx)
		if err != nil {
			log.Printf("[SyncWorker] Snapshot build failed after %s %s: %v", change.Method, change.Collection, err)
			continue
		}
		hub.Broadcast(data)
	}
}
