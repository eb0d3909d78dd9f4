package scenes

import (
	"github.com/automoto/bullrun/components"
	cfg "github.com/automoto/bullrun/config"
	"github.com/automoto/bullrun/systems"
	"github.com/charmbracelet/log"
)

type SceneID int

const (
	SceneMenu SceneID = iota
	ScenePlay
	SceneOptions
)

func (id SceneID) String() string {
	switch id {
	case SceneMenu:
		return "menu"
	case ScenePlay:
		return "play"
	case SceneOptions:
		return "options"
	default:
		return "unknown"
	}
}

// Scene is one screen of the game. Exactly one is active at a time.
type Scene interface {
	HandleEvent(ev components.InputEvent)
	Update(dt float64)
	Draw(s systems.Surface)
	// Reload is called after the display mode changed.
	Reload()
}

// Display controls the window.
type Display interface {
	Fullscreen() bool
	ToggleFullscreen()
	SetWindowedResolution(w, h int)
}

// Host is what a scene may ask of the game that owns it.
type Host interface {
	RequestScene(id SceneID)
	RequestQuit()
	Display() Display
	Viewport() (w, h float64)
}

// Reloader is notified after display changes, e.g. a sprite atlas.
type Reloader interface {
	Reload()
}

// Builder constructs a fresh scene for id.
type Builder func(id SceneID, host Host) Scene

// Director owns the active scene, pending scene changes and the running
// flag. Scene changes requested during an update apply once it returns.
type Director struct {
	build     Builder
	current   Scene
	currentID SceneID

	pending    SceneID
	hasPending bool
	running    bool

	display   *trackedDisplay
	reloaders []Reloader

	viewportW, viewportH float64
}

func NewDirector(display Display, build Builder, first SceneID) *Director {
	d := &Director{
		build:     build,
		running:   true,
		display:   &trackedDisplay{inner: display},
		viewportW: float64(cfg.C.Width),
		viewportH: float64(cfg.C.Height),
	}
	d.setScene(first)
	return d
}

func (d *Director) setScene(id SceneID) {
	log.Debug("scene change", "from", d.currentID, "to", id)
	d.currentID = id
	d.current = d.build(id, d)
}

func (d *Director) RequestScene(id SceneID) {
	d.pending = id
	d.hasPending = true
}

func (d *Director) RequestQuit() { d.running = false }

func (d *Director) Display() Display { return d.display }

func (d *Director) Viewport() (float64, float64) { return d.viewportW, d.viewportH }

// SetViewport records the current render size in pixels.
func (d *Director) SetViewport(w, h float64) {
	d.viewportW, d.viewportH = w, h
}

func (d *Director) Running() bool { return d.running }

func (d *Director) CurrentID() SceneID { return d.currentID }

func (d *Director) Current() Scene { return d.current }

// AddReloader registers r to be notified after display changes.
func (d *Director) AddReloader(r Reloader) {
	d.reloaders = append(d.reloaders, r)
}

// HandleEvent routes one event. Quit and Escape are handled here: Escape
// returns to the menu, or quits from the menu.
func (d *Director) HandleEvent(ev components.InputEvent) {
	if ev.Kind == components.EventQuit {
		d.RequestQuit()
		return
	}
	if ev.Kind == components.EventKeyDown && !ev.Repeat && cfg.Input.Bound(cfg.ActionBack, ev.Key) {
		if d.currentID == SceneMenu {
			d.RequestQuit()
		} else {
			d.RequestScene(SceneMenu)
		}
		return
	}
	if d.current != nil {
		d.current.HandleEvent(ev)
	}
}

func (d *Director) Update(dt float64) {
	if d.current != nil {
		d.current.Update(dt)
	}
	if d.hasPending {
		d.hasPending = false
		d.setScene(d.pending)
	}
}

func (d *Director) Draw(s systems.Surface) {
	if d.current != nil {
		d.current.Draw(s)
	}
}

// ApplyDisplayChanges notifies reloaders and the active scene once after
// any display change since the last call.
func (d *Director) ApplyDisplayChanges() {
	if !d.display.dirty {
		return
	}
	d.display.dirty = false

	for _, r := range d.reloaders {
		r.Reload()
	}
	if d.current != nil {
		d.current.Reload()
	}
}

// trackedDisplay marks display changes so they can be applied between
// frames. Resolution changes are ignored while fullscreen.
type trackedDisplay struct {
	inner Display
	dirty bool
}

func (t *trackedDisplay) Fullscreen() bool {
	return t.inner != nil && t.inner.Fullscreen()
}

func (t *trackedDisplay) ToggleFullscreen() {
	if t.inner == nil {
		return
	}
	t.inner.ToggleFullscreen()
	t.dirty = true
}

func (t *trackedDisplay) SetWindowedResolution(w, h int) {
	if t.inner == nil || t.inner.Fullscreen() {
		return
	}
	t.inner.SetWindowedResolution(w, h)
	t.dirty = true
}
