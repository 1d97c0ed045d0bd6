package core

// EventKind classifies a raw input event coming from the platform.
type EventKind int

const (
	EventNone EventKind = iota
	EventKeyPress
	EventKeyRelease
	EventMousePress
	EventMouseRelease
	EventQuit
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventNone:
		return "None"
	case EventKeyPress:
		return "KeyPress"
	case EventKeyRelease:
		return "KeyRelease"
	case EventMousePress:
		return "MousePress"
	case EventMouseRelease:
		return "MouseRelease"
	case EventQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Key identifies the semantic key of a keyboard event, abstracted from the
// physical binding (arrows, WASD and so on are mapped by the platform).
type Key int

const (
	KeyNone Key = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyFire
)

// String returns a human-readable name for the key.
func (k Key) String() string {
	switch k {
	case KeyNone:
		return "None"
	case KeyUp:
		return "Up"
	case KeyDown:
		return "Down"
	case KeyLeft:
		return "Left"
	case KeyRight:
		return "Right"
	case KeyFire:
		return "Fire"
	default:
		return "Unknown"
	}
}

// Event is one raw input event. Key is KeyNone for mouse and quit events.
type Event struct {
	Kind EventKind
	Key  Key
}

// KeyPress builds a key-down event.
func KeyPress(k Key) Event { return Event{Kind: EventKeyPress, Key: k} }

// KeyRelease builds a key-up event.
func KeyRelease(k Key) Event { return Event{Kind: EventKeyRelease, Key: k} }

// MousePress builds a mouse-button-down event.
func MousePress() Event { return Event{Kind: EventMousePress} }

// MouseRelease builds a mouse-button-up event.
func MouseRelease() Event { return Event{Kind: EventMouseRelease} }

// Quit builds a quit event.
func Quit() Event { return Event{Kind: EventQuit} }
