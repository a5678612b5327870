package track

import (
	"errors"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	boxederr "github.com/wippyai/boxed/errors"
	"github.com/wippyai/boxed/registry"
)

func TestTracker_Counts(t *testing.T) {
	table := registry.New[int]()
	tracker := NewTracker()
	table.Subscribe(tracker)

	vals := []int{1, 2, 3}
	handles := make([]registry.Handle, 3)
	for i := range vals {
		h, err := table.Adopt(&vals[i])
		if err != nil {
			t.Fatalf("Adopt failed: %v", err)
		}
		handles[i] = h
	}

	if tracker.Live() != 3 {
		t.Fatalf("Expected 3 live, got %d", tracker.Live())
	}
	if tracker.Peak() != 3 {
		t.Fatalf("Expected peak 3, got %d", tracker.Peak())
	}

	table.Drop(handles[0])
	table.Release(handles[1])

	stats := tracker.Stats()
	if stats.Created != 3 || stats.Dropped != 1 || stats.Released != 1 || stats.Live != 1 {
		t.Fatalf("Unexpected stats: %+v", stats)
	}

	live := tracker.LiveHandles()
	if len(live) != 1 || live[0] != handles[2] {
		t.Fatalf("Expected live handle %d, got %v", handles[2], live)
	}

	// Peak does not decay.
	if tracker.Peak() != 3 {
		t.Fatalf("Expected peak to stay at 3, got %d", tracker.Peak())
	}
}

func TestTracker_Err(t *testing.T) {
	table := registry.New[int]()
	tracker := NewTracker()
	table.Subscribe(tracker)

	v := 42
	h, _ := table.Adopt(&v)

	err := tracker.Err()
	if err == nil {
		t.Fatal("Expected leak error while a referent is live")
	}
	if !errors.Is(err, boxederr.Leak(0, nil)) {
		t.Fatalf("Expected leak error, got %v", err)
	}

	var structured *boxederr.Error
	if !errors.As(err, &structured) {
		t.Fatal("Expected structured error")
	}
	if len(structured.Handles) != 1 || structured.Handles[0] != uint32(h) {
		t.Fatalf("Expected leaked handle %d, got %v", h, structured.Handles)
	}

	table.Drop(h)
	if err := tracker.Err(); err != nil {
		t.Fatalf("Expected no leak after Drop, got %v", err)
	}
}

func TestTracker_CloseDrainsLive(t *testing.T) {
	table := registry.New[int]()
	tracker := NewTracker()
	table.Subscribe(tracker)

	v := 1
	table.Adopt(&v)
	table.Close()

	// Close notifies Dropped for every slot it destroys.
	if tracker.Live() != 0 {
		t.Fatalf("Expected 0 live after Close, got %d", tracker.Live())
	}
	if tracker.Stats().Dropped != 1 {
		t.Fatal("Expected Close's drop to be counted")
	}
}

func TestTracker_Logging(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	SetLogger(zap.New(core))
	defer SetLogger(zap.NewNop())

	table := registry.New[int]()
	tracker := NewTracker()
	table.Subscribe(tracker)

	v := 42
	h, _ := table.Adopt(&v)
	table.Drop(h)

	entries := logs.FilterMessage("box event").All()
	if len(entries) != 2 {
		t.Fatalf("Expected 2 log entries, got %d", len(entries))
	}
	if got := entries[0].ContextMap()["handle"]; got != uint32(h) {
		t.Fatalf("Expected handle %d in log context, got %v", h, got)
	}
}
