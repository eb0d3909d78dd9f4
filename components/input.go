package components

import (
	cfg "github.com/automoto/bullrun/config"
)

// EventKind identifies what an InputEvent carries
type EventKind int

const (
	EventKeyDown EventKind = iota
	EventKeyUp
	EventPointerDown
	EventPointerMove
	EventPointerUp
	EventQuit
)

// PointerButton identifies the source of a pointer event
type PointerButton int

const (
	ButtonNone PointerButton = iota
	ButtonLeft
	ButtonRight
	ButtonMiddle
	ButtonTouch // first finger
)

// InputEvent is one backend-independent input event.
// Pointer positions are pixels unless Normalized is set, in which case
// X and Y are in 0..1 and must be scaled by the viewport.
type InputEvent struct {
	Kind       EventKind
	Key        cfg.Key
	Repeat     bool
	X, Y       float64
	Normalized bool
	Button     PointerButton
}

// IsPrimaryPointer reports whether the event comes from the left mouse
// button or the first finger. Move events carry no button and always count.
func (e InputEvent) IsPrimaryPointer() bool {
	switch e.Kind {
	case EventPointerDown, EventPointerUp:
		return e.Button == ButtonLeft || e.Button == ButtonTouch
	case EventPointerMove:
		return true
	default:
		return false
	}
}

// Position returns the pointer position in viewport pixels.
func (e InputEvent) Position(vw, vh float64) (float64, float64) {
	if !e.Normalized {
		return e.X, e.Y
	}
	return e.X * max(vw, 1), e.Y * max(vh, 1)
}

// IntentData stores keyboard-owned input. Holds are tracked per physical
// key so releasing one of two keys bound to the same action keeps it held.
type IntentData struct {
	KeysHeld    map[cfg.Key]bool
	JumpPressed bool // one-shot, cleared at the end of each simulation tick
}

// Held reports whether any key bound to the action is down.
func (i *IntentData) Held(action cfg.ActionID) bool {
	for _, k := range cfg.Input.Bindings[action] {
		if i.KeysHeld[k] {
			return true
		}
	}
	return false
}

// GestureData tracks one touch or left-button drag along with the holds it
// owns. RunHeld and DuckHeld are cleared on release without touching keys.
type GestureData struct {
	Active         bool
	Swiped         bool
	StartX, StartY float64
	CurX, CurY     float64
	RunHeld        bool
	DuckHeld       bool
}

// Intents is the merged per-tick input the simulation consumes
type Intents struct {
	Left  bool
	Right bool
	Duck  bool
	Jump  bool
}
