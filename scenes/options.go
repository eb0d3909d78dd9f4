package scenes

import (
	"fmt"

	"github.com/automoto/bullrun/components"
	cfg "github.com/automoto/bullrun/config"
	"github.com/automoto/bullrun/systems"
	"github.com/charmbracelet/log"
)

type optionsAction int

const (
	optionsNone optionsAction = iota
	optionsFullscreen
	optionsResPrev
	optionsResNext
	optionsBack
)

// OptionsScene toggles fullscreen and cycles windowed resolution presets.
// Choices are saved as they are made.
type OptionsScene struct {
	host  Host
	store *systems.SettingsStore

	resIndex      int
	pointerDown   bool
	pointerAction optionsAction
}

func NewOptionsScene(host Host, store *systems.SettingsStore) *OptionsScene {
	return &OptionsScene{
		host:     host,
		store:    store,
		resIndex: store.Load().ResolutionIndex,
	}
}

func (o *OptionsScene) ResolutionIndex() int { return o.resIndex }

func (o *OptionsScene) HandleEvent(ev components.InputEvent) {
	if ev.Kind == components.EventKeyDown && !ev.Repeat {
		switch {
		case cfg.Input.Bound(cfg.ActionToggleFullscreen, ev.Key):
			o.toggleFullscreen()
		case cfg.Input.Bound(cfg.ActionNextResolution, ev.Key):
			o.cycleResolution(1)
		case cfg.Input.Bound(cfg.ActionPrevResolution, ev.Key):
			o.cycleResolution(-1)
		case cfg.Input.Bound(cfg.ActionBack, ev.Key):
			o.host.RequestScene(SceneMenu)
		}
		return
	}

	if !ev.IsPrimaryPointer() || ev.Kind == components.EventPointerMove {
		return
	}
	vw, vh := o.host.Viewport()
	px, py := ev.Position(vw, vh)
	action := optionsHitTest(px, py, vw, vh)

	switch ev.Kind {
	case components.EventPointerDown:
		o.pointerDown = action != optionsNone
		o.pointerAction = action
	case components.EventPointerUp:
		if o.pointerDown && action == o.pointerAction {
			o.execute(action)
		}
		o.pointerDown = false
		o.pointerAction = optionsNone
	}
}

func (o *OptionsScene) execute(action optionsAction) {
	switch action {
	case optionsFullscreen:
		o.toggleFullscreen()
	case optionsResPrev:
		o.cycleResolution(-1)
	case optionsResNext:
		o.cycleResolution(1)
	case optionsBack:
		o.host.RequestScene(SceneMenu)
	}
}

func (o *OptionsScene) toggleFullscreen() {
	o.host.Display().ToggleFullscreen()
	o.save()
}

func (o *OptionsScene) cycleResolution(delta int) {
	n := len(cfg.Options.Resolutions)
	if n == 0 {
		return
	}
	o.resIndex = ((o.resIndex+delta)%n + n) % n

	res := cfg.Options.Resolutions[o.resIndex]
	o.host.Display().SetWindowedResolution(res.Width, res.Height)
	o.save()
}

func (o *OptionsScene) save() {
	saved := systems.SavedSettings{
		Fullscreen:      o.host.Display().Fullscreen(),
		ResolutionIndex: o.resIndex,
	}
	if err := o.store.Save(saved); err != nil {
		log.Warn("could not save settings", "err", err)
	}
}

type optionsLayout struct {
	panel      components.Rect
	title      components.Rect
	mode       components.Rect
	resolution components.Rect
	preset     components.Rect
	hint       components.Rect

	// Pointer targets
	fullscreen components.Rect
	resPrev    components.Rect
	resNext    components.Rect
	back       components.Rect
}

func buildOptionsLayout(vw, vh float64) optionsLayout {
	opts := cfg.Options
	panel := components.Rect{
		X: vw/2 - opts.PanelWidth/2,
		Y: vh/2 - opts.PanelHeight/2,
		W: opts.PanelWidth,
		H: opts.PanelHeight,
	}
	row := func(dy, h float64) components.Rect {
		return components.Rect{X: panel.X, Y: panel.Y + dy, W: panel.W, H: h}
	}

	l := optionsLayout{
		panel:      panel,
		title:      row(18, 44),
		mode:       row(86, 36),
		resolution: row(132, 36),
		preset:     row(176, 32),
		hint:       row(236, 80),
	}
	l.fullscreen = components.Rect{X: l.mode.X, Y: l.mode.Y - 6, W: l.mode.W, H: l.mode.H + 12}

	area := components.Rect{X: l.resolution.X, Y: l.resolution.Y - 6, W: l.resolution.W}
	area.H = l.preset.Bottom() + 6 - area.Y
	l.resPrev = components.Rect{X: area.X, Y: area.Y, W: area.W / 2, H: area.H}
	l.resNext = l.resPrev
	l.resNext.X += l.resPrev.W

	l.back = l.hint
	return l
}

// optionsHitTest checks targets top to bottom; shared edges go to the
// first match.
func optionsHitTest(px, py, vw, vh float64) optionsAction {
	l := buildOptionsLayout(vw, vh)
	switch {
	case l.fullscreen.Contains(px, py):
		return optionsFullscreen
	case l.resPrev.Contains(px, py):
		return optionsResPrev
	case l.resNext.Contains(px, py):
		return optionsResNext
	case l.back.Contains(px, py):
		return optionsBack
	}
	return optionsNone
}

func (o *OptionsScene) Update(float64) {}

func (o *OptionsScene) Draw(s systems.Surface) {
	opts := cfg.Options
	vw, vh := s.Size()
	l := buildOptionsLayout(vw, vh)

	s.FillRect(components.Rect{W: vw, H: vh}, opts.BackgroundColor)
	s.FillRect(l.panel, opts.PanelColor)
	s.StrokeRect(l.panel, 1, opts.PanelOutline)

	s.DrawTextCentered("Options", l.title, opts.TextColor)

	mode := "Fullscreen: OFF (F to toggle)"
	if o.host.Display().Fullscreen() {
		mode = "Fullscreen: ON (F to toggle)"
	}
	s.DrawTextCentered(mode, l.mode, opts.TextColor)
	s.DrawTextCentered(fmt.Sprintf("Resolution: %dx%d (R or arrow keys)", int(vw), int(vh)), l.resolution, opts.TextColor)
	s.DrawTextCentered(presetLabel(o.resIndex), l.preset, opts.TextColor)
	s.DrawTextCentered(opts.Hint, l.hint, opts.TextColor)
}

func presetLabel(i int) string {
	if i < 0 || i >= len(cfg.Options.Resolutions) {
		return ""
	}
	r := cfg.Options.Resolutions[i]
	return fmt.Sprintf("%s (%d x %d)", r.Label, r.Width, r.Height)
}

func (o *OptionsScene) Reload() {}
