package platform

import (
	"github.com/automoto/bullrun/components"
	cfg "github.com/automoto/bullrun/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var keyMap = map[ebiten.Key]cfg.Key{
	ebiten.KeyArrowLeft:   cfg.KeyLeft,
	ebiten.KeyArrowRight:  cfg.KeyRight,
	ebiten.KeyArrowUp:     cfg.KeyUp,
	ebiten.KeyArrowDown:   cfg.KeyDown,
	ebiten.KeyA:           cfg.KeyA,
	ebiten.KeyD:           cfg.KeyD,
	ebiten.KeyW:           cfg.KeyW,
	ebiten.KeyS:           cfg.KeyS,
	ebiten.KeyF:           cfg.KeyF,
	ebiten.KeyR:           cfg.KeyR,
	ebiten.KeySpace:       cfg.KeySpace,
	ebiten.KeyEnter:       cfg.KeyEnter,
	ebiten.KeyNumpadEnter: cfg.KeyKPEnter,
	ebiten.KeyEscape:      cfg.KeyEscape,
}

// TranslateKey maps an ebiten key to the game's key, or KeyUnknown.
func TranslateKey(k ebiten.Key) cfg.Key {
	if key, ok := keyMap[k]; ok {
		return key
	}
	return cfg.KeyUnknown
}

func appendKeyEvents(events []components.InputEvent, kind components.EventKind, keys []ebiten.Key) []components.InputEvent {
	for _, k := range keys {
		key := TranslateKey(k)
		if key == cfg.KeyUnknown {
			continue
		}
		events = append(events, components.InputEvent{Kind: kind, Key: key})
	}
	return events
}

var pointerButtons = map[ebiten.MouseButton]components.PointerButton{
	ebiten.MouseButtonLeft:   components.ButtonLeft,
	ebiten.MouseButtonRight:  components.ButtonRight,
	ebiten.MouseButtonMiddle: components.ButtonMiddle,
}

// mouseTracker turns mouse state into pointer events. A move is reported
// only when the cursor position changed.
type mouseTracker struct {
	x, y int
	seen bool
}

func (m *mouseTracker) appendEvents(events []components.InputEvent, x, y int, pressed, released []ebiten.MouseButton) []components.InputEvent {
	if m.seen && (x != m.x || y != m.y) {
		events = append(events, components.InputEvent{Kind: components.EventPointerMove, X: float64(x), Y: float64(y)})
	}
	m.x, m.y, m.seen = x, y, true

	for _, b := range pressed {
		events = append(events, components.InputEvent{
			Kind: components.EventPointerDown, X: float64(x), Y: float64(y), Button: pointerButtons[b],
		})
	}
	for _, b := range released {
		events = append(events, components.InputEvent{
			Kind: components.EventPointerUp, X: float64(x), Y: float64(y), Button: pointerButtons[b],
		})
	}
	return events
}

// touchSource is the slice of ebiten's touch API the tracker reads.
type touchSource interface {
	justPressed(ids []ebiten.TouchID) []ebiten.TouchID
	justReleased(id ebiten.TouchID) bool
	position(id ebiten.TouchID) (x, y int)
}

// touchTracker follows the first finger down until it lifts. Other fingers
// are ignored.
type touchTracker struct {
	id     ebiten.TouchID
	active bool
	x, y   int
	ids    []ebiten.TouchID
}

func (t *touchTracker) appendEvents(events []components.InputEvent, src touchSource) []components.InputEvent {
	if t.active {
		if src.justReleased(t.id) {
			t.active = false
			return append(events, components.InputEvent{
				Kind: components.EventPointerUp, X: float64(t.x), Y: float64(t.y), Button: components.ButtonTouch,
			})
		}
		x, y := src.position(t.id)
		if x != t.x || y != t.y {
			t.x, t.y = x, y
			events = append(events, components.InputEvent{Kind: components.EventPointerMove, X: float64(x), Y: float64(y)})
		}
		return events
	}

	t.ids = src.justPressed(t.ids[:0])
	if len(t.ids) == 0 {
		return events
	}
	t.id = t.ids[0]
	t.active = true
	t.x, t.y = src.position(t.id)
	return append(events, components.InputEvent{
		Kind: components.EventPointerDown, X: float64(t.x), Y: float64(t.y), Button: components.ButtonTouch,
	})
}

type ebitenTouches struct{}

func (ebitenTouches) justPressed(ids []ebiten.TouchID) []ebiten.TouchID {
	return inpututil.AppendJustPressedTouchIDs(ids)
}

func (ebitenTouches) justReleased(id ebiten.TouchID) bool {
	return inpututil.IsTouchJustReleased(id)
}

func (ebitenTouches) position(id ebiten.TouchID) (int, int) {
	return ebiten.TouchPosition(id)
}

// EventPoller converts ebiten's polled input state into the game's event
// stream once per frame.
type EventPoller struct {
	mouse   mouseTracker
	touch   touchTracker
	touches touchSource

	// Reusable buffers to avoid allocations
	keys     []ebiten.Key
	pressed  []ebiten.MouseButton
	released []ebiten.MouseButton
	events   []components.InputEvent
}

func NewEventPoller() *EventPoller {
	return &EventPoller{touches: ebitenTouches{}}
}

// Poll returns this frame's events. The slice is reused by the next call.
func (p *EventPoller) Poll() []components.InputEvent {
	p.events = p.events[:0]

	if ebiten.IsWindowBeingClosed() {
		p.events = append(p.events, components.InputEvent{Kind: components.EventQuit})
	}

	p.keys = inpututil.AppendJustPressedKeys(p.keys[:0])
	p.events = appendKeyEvents(p.events, components.EventKeyDown, p.keys)
	p.keys = inpututil.AppendJustReleasedKeys(p.keys[:0])
	p.events = appendKeyEvents(p.events, components.EventKeyUp, p.keys)

	p.pressed, p.released = p.pressed[:0], p.released[:0]
	for b := range pointerButtons {
		if inpututil.IsMouseButtonJustPressed(b) {
			p.pressed = append(p.pressed, b)
		}
		if inpututil.IsMouseButtonJustReleased(b) {
			p.released = append(p.released, b)
		}
	}
	x, y := ebiten.CursorPosition()
	p.events = p.mouse.appendEvents(p.events, x, y, p.pressed, p.released)

	p.events = p.touch.appendEvents(p.events, p.touches)
	return p.events
}
