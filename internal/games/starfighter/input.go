// Package starfighter implements a side-scrolling shooter: the player flies
// over a starfield, fires a beam throttled by a cooldown gauge, and fights
// enemies that drift in from the right.
package starfighter

import (
	"strings"

	"github.com/vovakirdan/tui-starfighter/internal/core"
)

// DirectionSet is the set of movement intents currently held.
type DirectionSet uint8

// Directions. Stop is the ground state and never coexists with a direction.
const (
	Up DirectionSet = 1 << iota
	Down
	Left
	Right
	Stop
)

var directionNames = []struct {
	d    DirectionSet
	name string
}{
	{Up, "up"},
	{Down, "down"},
	{Left, "left"},
	{Right, "right"},
	{Stop, "stop"},
}

// Has reports whether every direction in d is in the set.
func (s DirectionSet) Has(d DirectionSet) bool {
	return s&d == d
}

// String renders the set as {up,right}.
func (s DirectionSet) String() string {
	var names []string
	for _, dn := range directionNames {
		if s.Has(dn.d) {
			names = append(names, dn.name)
		}
	}
	return "{" + strings.Join(names, ",") + "}"
}

// opposite returns the direction that cannot be held together with d.
func opposite(d DirectionSet) DirectionSet {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	case Right:
		return Left
	}
	return 0
}

// keyDirection maps a directional key to its direction, or 0.
func keyDirection(k core.Key) DirectionSet {
	switch k {
	case core.KeyUp:
		return Up
	case core.KeyDown:
		return Down
	case core.KeyLeft:
		return Left
	case core.KeyRight:
		return Right
	}
	return 0
}

// InputState is the held movement intents plus the fire flag.
type InputState struct {
	Dirs DirectionSet
	Fire bool
}

// NewInputState returns the idle state.
func NewInputState() InputState {
	return InputState{Dirs: Stop}
}

// Reduce applies one raw event and returns the new state. The result never
// holds an opposite pair and never has an empty direction set.
//
// Mouse press acts as an "up" key and mouse release clears "up". This
// mirrors the keyboard handling and is kept as-is even though it looks
// like it was meant to be something else.
func Reduce(s InputState, ev core.Event) InputState {
	switch ev.Kind {
	case core.EventKeyPress:
		s.Dirs &^= Stop
		if d := keyDirection(ev.Key); d != 0 {
			s.Dirs = hold(s.Dirs, d)
		}
		if ev.Key == core.KeyFire {
			s.Fire = true
		}
	case core.EventKeyRelease:
		s.Dirs &^= keyDirection(ev.Key)
		if ev.Key == core.KeyFire {
			s.Fire = false
		}
	case core.EventMousePress:
		s.Dirs &^= Stop
		s.Dirs = hold(s.Dirs, Up)
	case core.EventMouseRelease:
		s.Dirs &^= Up
	}

	if s.Dirs == 0 {
		s.Dirs = Stop
	}
	return s
}

// hold adds d unless its opposite is already held.
func hold(dirs, d DirectionSet) DirectionSet {
	if dirs&opposite(d) != 0 {
		return dirs
	}
	return dirs | d
}
