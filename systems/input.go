package systems

import (
	"math"

	"github.com/automoto/bullrun/components"
	cfg "github.com/automoto/bullrun/config"
)

// InputUnifier folds keyboard and pointer events into one set of intents.
// Keyboard holds and gesture holds are kept apart and OR-ed on read, so
// lifting a finger never cancels a key that is still down.
type InputUnifier struct {
	Intent  components.IntentData
	Gesture components.GestureData
}

func NewInputUnifier() *InputUnifier {
	return &InputUnifier{
		Intent: components.IntentData{KeysHeld: make(map[cfg.Key]bool)},
	}
}

// HandleEvent applies one event. vw and vh are the current viewport size,
// used to scale normalized touch positions and the swipe threshold.
func (u *InputUnifier) HandleEvent(ev components.InputEvent, vw, vh float64) {
	switch ev.Kind {
	case components.EventKeyDown:
		if ev.Repeat {
			return
		}
		u.Intent.KeysHeld[ev.Key] = true
		if cfg.Input.Bound(cfg.ActionJump, ev.Key) {
			u.Intent.JumpPressed = true
		}
	case components.EventKeyUp:
		delete(u.Intent.KeysHeld, ev.Key)
	case components.EventPointerDown:
		if !ev.IsPrimaryPointer() {
			return
		}
		x, y := ev.Position(vw, vh)
		u.beginGesture(x, y)
	case components.EventPointerMove:
		if !u.Gesture.Active {
			return
		}
		x, y := ev.Position(vw, vh)
		u.trackGesture(x, y, vh)
	case components.EventPointerUp:
		if !ev.IsPrimaryPointer() {
			return
		}
		u.ResetGesture()
	}
}

// beginGesture starts tracking at (x, y). A press while a gesture is already
// active restarts tracking at the new point.
func (u *InputUnifier) beginGesture(x, y float64) {
	u.Gesture = components.GestureData{
		Active:  true,
		StartX:  x,
		StartY:  y,
		CurX:    x,
		CurY:    y,
		RunHeld: true,
	}
}

func (u *InputUnifier) trackGesture(x, y, vh float64) {
	g := &u.Gesture
	g.CurX, g.CurY = x, y
	if g.Swiped {
		return
	}

	dy := g.CurY - g.StartY
	if math.Abs(dy) < SwipeThreshold(vh) {
		return
	}
	g.Swiped = true
	if dy < 0 {
		u.Intent.JumpPressed = true
	} else {
		g.DuckHeld = true
	}
}

// ResetGesture ends the current gesture and drops only the holds it owned.
func (u *InputUnifier) ResetGesture() {
	u.Gesture = components.GestureData{}
}

// ConsumeJump clears the one-shot jump flag. The runner calls it at the end
// of every tick whether or not the jump fired.
func (u *InputUnifier) ConsumeJump() {
	u.Intent.JumpPressed = false
}

// Intents merges the keyboard and gesture sources.
func (u *InputUnifier) Intents() components.Intents {
	return components.Intents{
		Left:  u.Intent.Held(cfg.ActionMoveLeft),
		Right: u.Intent.Held(cfg.ActionMoveRight) || u.Gesture.RunHeld,
		Duck:  u.Intent.Held(cfg.ActionDuck) || u.Gesture.DuckHeld,
		Jump:  u.Intent.JumpPressed,
	}
}

// SwipeThreshold is the vertical travel that classifies a drag as a swipe.
func SwipeThreshold(vh float64) float64 {
	return math.Max(cfg.Input.SwipeMinPixels, cfg.Input.SwipeViewportFraction*vh)
}
