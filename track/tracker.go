// Package track provides lifecycle accounting for handle tables.
//
// A Tracker subscribes to a registry table and keeps count of live
// referents, logging each transition through the package logger. At
// shutdown, Err reports any referents that were never dropped or
// released:
//
//	tracker := track.NewTracker()
//	table.Subscribe(tracker)
//
//	// ... use the table; drop or release everything you create ...
//
//	if err := tracker.Err(); err != nil {
//	    log.Fatal(err) // [track] leak: N referent(s) still live
//	}
//	table.Close()
//
// Call Err at the point where every referent should already have been
// dropped or released, before Close: Close destroys whatever is left,
// which hides exactly the slots a leak report is meant to surface.
package track

import (
	"slices"
	"sync"

	"go.uber.org/zap"

	"github.com/wippyai/boxed/errors"
	"github.com/wippyai/boxed/registry"
)

// Stats is a snapshot of a tracker's lifetime counters.
type Stats struct {
	Created  uint64
	Dropped  uint64
	Released uint64
	Live     int
}

// Tracker observes a table and accounts for every referent's
// lifecycle. Safe for concurrent use.
type Tracker struct {
	live map[registry.Handle]struct{}
	mu   sync.Mutex

	created  uint64
	dropped  uint64
	released uint64

	// peak is the high-water mark of simultaneously live referents.
	peak int
}

// NewTracker creates a tracker with no history.
func NewTracker() *Tracker {
	return &Tracker{
		live: make(map[registry.Handle]struct{}),
	}
}

// OnBoxEvent implements registry.Observer.
func (t *Tracker) OnBoxEvent(e registry.Event) {
	t.mu.Lock()
	switch e.Type {
	case registry.EventCreated:
		t.created++
		t.live[e.Handle] = struct{}{}
		if len(t.live) > t.peak {
			t.peak = len(t.live)
		}
	case registry.EventDropped:
		t.dropped++
		delete(t.live, e.Handle)
	case registry.EventReleased:
		t.released++
		delete(t.live, e.Handle)
	}
	liveNow := len(t.live)
	t.mu.Unlock()

	Logger().Debug("box event",
		zap.Uint32("handle", uint32(e.Handle)),
		zap.Uint8("type", uint8(e.Type)),
		zap.Int("live", liveNow),
	)
}

// Live returns the number of currently live referents.
func (t *Tracker) Live() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.live)
}

// LiveHandles returns the handles of currently live referents, sorted.
func (t *Tracker) LiveHandles() []registry.Handle {
	t.mu.Lock()
	defer t.mu.Unlock()

	out := make([]registry.Handle, 0, len(t.live))
	for h := range t.live {
		out = append(out, h)
	}
	slices.Sort(out)
	return out
}

// Stats returns a snapshot of the tracker's counters.
func (t *Tracker) Stats() Stats {
	t.mu.Lock()
	defer t.mu.Unlock()
	return Stats{
		Created:  t.created,
		Dropped:  t.dropped,
		Released: t.released,
		Live:     len(t.live),
	}
}

// Peak returns the high-water mark of simultaneously live referents.
func (t *Tracker) Peak() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.peak
}

// Err returns a leak error when referents are still live, nil
// otherwise. Call it once every referent should have been dropped or
// released, before closing the observed table.
func (t *Tracker) Err() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if len(t.live) == 0 {
		return nil
	}

	handles := make([]uint32, 0, len(t.live))
	for h := range t.live {
		handles = append(handles, uint32(h))
	}
	slices.Sort(handles)

	err := errors.Leak(len(t.live), handles)
	Logger().Warn("referents still live", zap.Int("count", len(t.live)))
	return err
}
