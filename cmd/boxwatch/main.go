// boxwatch churns owned referents through a handle table and reports
// lifecycle accounting. It exists to exercise the library end to end
// and to watch ownership behavior live.
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"sync/atomic"

	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/wippyai/boxed/registry"
	"github.com/wippyai/boxed/track"
)

// payload is the referent type boxwatch allocates. Its destructor hook
// counts invocations so the summary can show exactly-once release.
type payload struct {
	id   int
	data []byte
}

var destroyed atomic.Uint64

func (p *payload) Drop() { destroyed.Add(1) }

var nextID atomic.Int64

func newPayload(size int) *payload {
	return &payload{
		id:   int(nextID.Add(1)),
		data: make([]byte, size),
	}
}

func main() {
	var (
		live        = flag.Int("live", 64, "Target number of live referents")
		steps       = flag.Int("steps", 1000, "Churn steps to run in batch mode")
		size        = flag.Int("size", 1024, "Payload size in bytes")
		seed        = flag.Int64("seed", 1, "Churn RNG seed")
		verbose     = flag.Bool("v", false, "Log lifecycle events to stderr")
		interactive = flag.Bool("i", false, "Interactive mode with TUI")
	)
	flag.Parse()

	if *verbose {
		logger, err := zap.NewDevelopment()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		track.SetLogger(logger)
	}

	if *interactive {
		if !term.IsTerminal(int(os.Stdout.Fd())) {
			fmt.Fprintln(os.Stderr, "Error: interactive mode needs a terminal")
			os.Exit(1)
		}
		if err := runInteractive(*size); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := churn(*live, *steps, *size, *seed); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// churn runs a random allocate/drop/release workload against a tracked
// table and prints the accounting at the end.
func churn(live, steps, size int, seed int64) error {
	table := registry.New[payload]()
	tracker := track.NewTracker()
	table.Subscribe(tracker)

	rng := rand.New(rand.NewSource(seed))
	var handles []registry.Handle
	released := 0

	for i := 0; i < steps; i++ {
		allocate := len(handles) == 0 || (len(handles) < live && rng.Intn(2) == 0)
		switch {
		case allocate:
			h, err := table.Adopt(newPayload(size))
			if err != nil {
				return err
			}
			handles = append(handles, h)
		default:
			idx := rng.Intn(len(handles))
			h := handles[idx]
			handles = append(handles[:idx], handles[idx+1:]...)

			if rng.Intn(8) == 0 {
				// Occasionally move ownership out and dispose manually.
				p, ok := table.Release(h)
				if !ok {
					return fmt.Errorf("release of live handle %d failed", h)
				}
				p.Drop()
				released++
			} else if !table.Drop(h) {
				return fmt.Errorf("drop of live handle %d failed", h)
			}
		}
	}

	// Wind down: everything still live gets dropped.
	for _, h := range handles {
		table.Drop(h)
	}
	if err := tracker.Err(); err != nil {
		return err
	}
	if err := table.Close(); err != nil {
		return err
	}

	stats := tracker.Stats()
	fmt.Printf("steps:        %d\n", steps)
	fmt.Printf("created:      %d\n", stats.Created)
	fmt.Printf("dropped:      %d\n", stats.Dropped)
	fmt.Printf("released:     %d\n", stats.Released)
	fmt.Printf("peak live:    %d\n", tracker.Peak())
	fmt.Printf("destructors:  %d\n", destroyed.Load())

	if got, want := destroyed.Load(), stats.Created; got != want {
		return fmt.Errorf("destructor count %d does not match created %d", got, want)
	}
	return nil
}
