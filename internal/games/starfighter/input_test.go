package starfighter

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/tui-starfighter/internal/core"
)

func reduceAll(events ...core.Event) InputState {
	s := NewInputState()
	for _, ev := range events {
		s = Reduce(s, ev)
	}
	return s
}

func TestReduce(t *testing.T) {
	tests := []struct {
		name   string
		events []core.Event
		want   InputState
	}{
		{"idle", nil, InputState{Dirs: Stop}},
		{"press right", []core.Event{core.KeyPress(core.KeyRight)}, InputState{Dirs: Right}},
		{"diagonal", []core.Event{core.KeyPress(core.KeyUp), core.KeyPress(core.KeyRight)}, InputState{Dirs: Up | Right}},
		{"opposite ignored", []core.Event{core.KeyPress(core.KeyLeft), core.KeyPress(core.KeyRight)}, InputState{Dirs: Left}},
		{"release to stop", []core.Event{core.KeyPress(core.KeyDown), core.KeyRelease(core.KeyDown)}, InputState{Dirs: Stop}},
		{"release keeps others", []core.Event{core.KeyPress(core.KeyUp), core.KeyPress(core.KeyLeft), core.KeyRelease(core.KeyUp)}, InputState{Dirs: Left}},
		{"release then opposite", []core.Event{core.KeyPress(core.KeyLeft), core.KeyRelease(core.KeyLeft), core.KeyPress(core.KeyRight)}, InputState{Dirs: Right}},
		{"fire press", []core.Event{core.KeyPress(core.KeyFire)}, InputState{Dirs: Stop, Fire: true}},
		{"fire release", []core.Event{core.KeyPress(core.KeyFire), core.KeyRelease(core.KeyFire)}, InputState{Dirs: Stop}},
		{"fire while moving", []core.Event{core.KeyPress(core.KeyRight), core.KeyPress(core.KeyFire)}, InputState{Dirs: Right, Fire: true}},
		{"mouse press is up", []core.Event{core.MousePress()}, InputState{Dirs: Up}},
		{"mouse press with down held", []core.Event{core.KeyPress(core.KeyDown), core.MousePress()}, InputState{Dirs: Down}},
		{"mouse release clears up", []core.Event{core.KeyPress(core.KeyUp), core.MouseRelease()}, InputState{Dirs: Stop}},
		{"release of unheld key", []core.Event{core.KeyRelease(core.KeyLeft)}, InputState{Dirs: Stop}},
		{"quit is ignored", []core.Event{core.KeyPress(core.KeyUp), core.Quit()}, InputState{Dirs: Up}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := reduceAll(tt.events...)
			if got != tt.want {
				t.Errorf("got %v fire=%v, want %v fire=%v", got.Dirs, got.Fire, tt.want.Dirs, tt.want.Fire)
			}
		})
	}
}

func TestReduceStopIsIdempotent(t *testing.T) {
	s := NewInputState()
	for range 5 {
		s = Reduce(s, core.KeyRelease(core.KeyUp))
		s = Reduce(s, core.MouseRelease())
	}
	if s.Dirs != Stop {
		t.Errorf("expected {stop}, got %v", s.Dirs)
	}
}

func TestReduceNeverHoldsOppositePair(t *testing.T) {
	kinds := []core.EventKind{
		core.EventKeyPress, core.EventKeyRelease,
		core.EventMousePress, core.EventMouseRelease,
	}
	keys := []core.Key{core.KeyUp, core.KeyDown, core.KeyLeft, core.KeyRight, core.KeyFire}
	rng := rand.New(rand.NewSource(7))

	s := NewInputState()
	for i := range 10000 {
		ev := core.Event{Kind: kinds[rng.Intn(len(kinds))], Key: keys[rng.Intn(len(keys))]}
		s = Reduce(s, ev)

		if s.Dirs.Has(Up|Down) || s.Dirs.Has(Left|Right) {
			t.Fatalf("event %d (%v %v): opposite pair held: %v", i, ev.Kind, ev.Key, s.Dirs)
		}
		if s.Dirs == 0 {
			t.Fatalf("event %d: empty direction set", i)
		}
		if s.Dirs.Has(Stop) && s.Dirs != Stop {
			t.Fatalf("event %d: stop held with a direction: %v", i, s.Dirs)
		}
		if _, err := Displacement(s.Dirs, 1); err != nil {
			t.Fatalf("event %d: reducer produced an unmovable set: %v", i, err)
		}
	}
}

func TestDirectionSetString(t *testing.T) {
	if got := (Up | Right).String(); got != "{up,right}" {
		t.Errorf("got %q", got)
	}
	if got := Stop.String(); got != "{stop}" {
		t.Errorf("got %q", got)
	}
}
