package scenes

import (
	"image/color"

	"github.com/automoto/bullrun/components"
	cfg "github.com/automoto/bullrun/config"
	"github.com/automoto/bullrun/systems"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

const (
	menuStart = iota
	menuOptions
	menuQuit
)

// MenuScene displays the main menu
type MenuScene struct {
	host Host

	index        int
	pointerDown  bool
	pointerIndex int

	pulse      *gween.Sequence
	pulseValue float64
}

func NewMenuScene(host Host) *MenuScene {
	half := float32(cfg.Menu.PulseSeconds)
	pulse := gween.NewSequence()
	pulse.Add(
		gween.New(0, 1, half, ease.InOutSine),
		gween.New(1, 0, half, ease.InOutSine),
	)
	return &MenuScene{host: host, pointerIndex: -1, pulse: pulse}
}

func (m *MenuScene) Selected() int { return m.index }

func (m *MenuScene) itemCount() int { return len(cfg.Menu.MenuOptions) }

func (m *MenuScene) HandleEvent(ev components.InputEvent) {
	n := m.itemCount()
	if n == 0 {
		return
	}

	if ev.Kind == components.EventKeyDown && !ev.Repeat {
		switch {
		case cfg.Input.Bound(cfg.ActionMenuUp, ev.Key):
			m.index = (m.index - 1 + n) % n
		case cfg.Input.Bound(cfg.ActionMenuDown, ev.Key):
			m.index = (m.index + 1) % n
		case cfg.Input.Bound(cfg.ActionConfirm, ev.Key):
			m.activate(m.index)
		}
		return
	}

	if !ev.IsPrimaryPointer() {
		return
	}
	vw, vh := m.host.Viewport()
	px, py := ev.Position(vw, vh)
	hit := m.hitTest(px, py, vw, vh)

	switch ev.Kind {
	case components.EventPointerDown:
		if hit >= 0 {
			m.index = hit
			m.pointerDown = true
			m.pointerIndex = hit
		} else {
			m.pointerDown = false
			m.pointerIndex = -1
		}
	case components.EventPointerMove:
		if hit >= 0 {
			m.index = hit
			if m.pointerDown {
				m.pointerIndex = hit
			}
		}
	case components.EventPointerUp:
		if m.pointerDown && hit >= 0 && hit == m.pointerIndex {
			m.activate(hit)
		}
		m.pointerDown = false
		m.pointerIndex = -1
	}
}

func (m *MenuScene) activate(i int) {
	switch i {
	case menuStart:
		m.host.RequestScene(ScenePlay)
	case menuOptions:
		m.host.RequestScene(SceneOptions)
	case menuQuit:
		m.host.RequestQuit()
	}
}

// itemRects lays the items out as a centred column.
func (m *MenuScene) itemRects(vw, vh float64) []components.Rect {
	menu := cfg.Menu
	n := m.itemCount()
	totalH := float64(n)*menu.ItemHeight + float64(max(0, n-1))*menu.ItemGap

	x := (vw - menu.ItemWidth) / 2
	y := (vh - totalH) / 2

	rects := make([]components.Rect, n)
	for i := range rects {
		rects[i] = components.Rect{X: x, Y: y + float64(i)*(menu.ItemHeight+menu.ItemGap), W: menu.ItemWidth, H: menu.ItemHeight}
	}
	return rects
}

func (m *MenuScene) hitTest(px, py, vw, vh float64) int {
	for i, r := range m.itemRects(vw, vh) {
		if r.Contains(px, py) {
			return i
		}
	}
	return -1
}

func (m *MenuScene) Update(dt float64) {
	v, _, done := m.pulse.Update(float32(dt))
	m.pulseValue = float64(v)
	if done {
		m.pulse.Reset()
	}
}

func (m *MenuScene) highlight() color.RGBA {
	menu := cfg.Menu
	c := menu.HighlightColor
	c.G = uint8(min(255, max(0, menu.PulseBase+menu.PulseRange*m.pulseValue)))
	return c
}

func (m *MenuScene) Draw(s systems.Surface) {
	menu := cfg.Menu
	vw, vh := s.Size()
	s.FillRect(components.Rect{W: vw, H: vh}, menu.BackgroundColor)

	for i, box := range m.itemRects(vw, vh) {
		fill := menu.ItemColor
		if i == m.index {
			fill = m.highlight()
		}
		s.FillRect(box, fill)
		s.StrokeRect(box, 1, menu.OutlineColor)

		inner := components.Rect{X: box.X + 4, Y: box.Y + 4, W: box.W - 8, H: box.H - 8}
		s.StrokeRect(inner, 1, systems.Translucent(menu.InnerOutlineColor, 1))

		s.DrawTextCentered(menu.MenuOptions[i], box, menu.TextColor)

		if i == m.index {
			notch := components.Rect{X: box.X + 10, Y: box.Y + box.H/2 - 6, W: 12, H: 12}
			s.FillRect(notch, systems.Translucent(menu.NotchColor, 1))
		}
	}
}

func (m *MenuScene) Reload() {}
