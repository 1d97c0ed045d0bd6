package tui

import (
	"time"

	"github.com/vovakirdan/tui-starfighter/internal/core"
)

// Releaser turns the press-only key stream of a terminal into press and
// release events. A key counts as held until no press (or auto-repeat) has
// been seen for the hold window.
type Releaser struct {
	after    time.Duration
	lastSeen map[core.Key]time.Time
}

// NewReleaser creates a releaser with the given hold window.
func NewReleaser(after time.Duration) *Releaser {
	return &Releaser{
		after:    after,
		lastSeen: make(map[core.Key]time.Time),
	}
}

// Press records a key press at now. It reports a press event only for a
// key that was not already held, so auto-repeat is swallowed.
func (r *Releaser) Press(k core.Key, now time.Time) (core.Event, bool) {
	_, held := r.lastSeen[k]
	r.lastSeen[k] = now
	if held {
		return core.Event{}, false
	}
	return core.KeyPress(k), true
}

// Expire returns release events for every key not seen within the hold
// window, in key order.
func (r *Releaser) Expire(now time.Time) []core.Event {
	var events []core.Event
	for k := core.KeyUp; k <= core.KeyFire; k++ {
		seen, held := r.lastSeen[k]
		if !held || now.Sub(seen) < r.after {
			continue
		}
		delete(r.lastSeen, k)
		events = append(events, core.KeyRelease(k))
	}
	return events
}

// Held reports whether k is currently held.
func (r *Releaser) Held(k core.Key) bool {
	_, ok := r.lastSeen[k]
	return ok
}
