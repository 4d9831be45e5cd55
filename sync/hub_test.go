package sync

import (
	"testing"
	"time"
)

func TestHubRegisterBroadcastUnregister(t *testing.T) {
	hub := NewHub()
	go hub.Run()
	defer hub.Stop()

	client := &Client{
		Send: make(chan []byte, 10),
	}

	hub.register <- client

	data := []byte(`{"action":"replace","recipes":[],"categories":[]}`)
	hub.Broadcast(data)

	select {
	case got := <-client.Send:
		if string(got) != string(data) {
			t.Fatalf("expected %s, got %s", data, got)
		}
	case <-time.After(1 * time.Second):
		t.Fatal("timeout waiting for snapshot")
	}

	hub.unregister <- client
}

// A tablet that drops while its first snapshot is still being built must
// not crash the hub: the seed goes into Send before the hub ever sees the
// client, so the close in Run can only happen after it.
func TestInitialSnapshotSurvivesEarlyDisconnect(t *testing.T) {
	hub := NewHub()
	go hub.Run()
	defer hub.Stop()

	client := &Client{
		Send: make(chan []byte, 8),
	}

	// handler order: seed first, then register
	client.Send <- []byte(`{"action":"replace","recipes":[],"categories":[]}`)
	hub.register <- client
	hub.unregister <- client

	// the seeded snapshot is still drainable, then the channel reads closed
	select {
	case _, ok := <-client.Send:
		if !ok {
			t.Fatal("seeded snapshot was lost on disconnect")
		}
	case <-time.After(1 * time.Second):
		t.Fatal("timeout draining the seeded snapshot")
	}
	select {
	case _, ok := <-client.Send:
		if ok {
			t.Fatal("expected closed channel after unregister")
		}
	case <-time.After(1 * time.Second):
		t.Fatal("timeout waiting for the hub to close the client")
	}
}

func TestHubDropsSlowClient(t *testing.T) {
	hub := NewHub()
	go hub.Run()
	defer hub.Stop()

	slow := &Client{
		Send: make(chan []byte), // unbuffered and never read
	}
	hub.register <- slow

	hub.Broadcast([]byte("one"))

	// the client's channel is closed once the hub gives up on it
	select {
	case _, ok := <-slow.Send:
		if ok {
			t.Fatal("expected closed channel for the dropped client")
		}
	case <-time.After(1 * time.Second):
		t.Fatal("timeout waiting for the hub to drop the client")
	}
}
