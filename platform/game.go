package platform

import (
	"time"

	cfg "github.com/automoto/bullrun/config"
	"github.com/automoto/bullrun/scenes"
	"github.com/hajimehoshi/ebiten/v2"
)

// WindowDisplay controls the ebiten window.
type WindowDisplay struct {
	fullscreen bool
}

func NewWindowDisplay(fullscreen bool) *WindowDisplay {
	ebiten.SetFullscreen(fullscreen)
	return &WindowDisplay{fullscreen: fullscreen}
}

func (d *WindowDisplay) Fullscreen() bool { return d.fullscreen }

func (d *WindowDisplay) ToggleFullscreen() {
	d.fullscreen = !d.fullscreen
	ebiten.SetFullscreen(d.fullscreen)
}

func (d *WindowDisplay) SetWindowedResolution(w, h int) {
	ebiten.SetWindowSize(w, h)
}

// FrameDelta clamps a wall-clock frame time to [0, cfg.Frame.MaxDelta].
func FrameDelta(elapsed time.Duration) float64 {
	dt := elapsed.Seconds()
	if dt < 0 {
		return 0
	}
	return min(dt, cfg.Frame.MaxDelta)
}

// Game adapts the scene director to ebiten's game loop: poll events, apply
// display changes, update with the elapsed time, draw.
type Game struct {
	director *scenes.Director
	poller   *EventPoller
	surface  *Surface

	now  func() time.Time
	last time.Time
}

func NewGame(director *scenes.Director, surface *Surface) *Game {
	return &Game{
		director: director,
		poller:   NewEventPoller(),
		surface:  surface,
		now:      time.Now,
	}
}

func (g *Game) tick() float64 {
	now := g.now()
	if g.last.IsZero() {
		g.last = now
		return 0
	}
	dt := FrameDelta(now.Sub(g.last))
	g.last = now
	return dt
}

func (g *Game) Update() error {
	dt := g.tick()

	for _, ev := range g.poller.Poll() {
		g.director.HandleEvent(ev)
		if !g.director.Running() {
			return ebiten.Termination
		}
	}

	g.director.ApplyDisplayChanges()
	g.director.Update(dt)

	if !g.director.Running() {
		return ebiten.Termination
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.surface.Target = screen
	g.director.Draw(g.surface)
}

// Layout renders at the window's own size so the camera sees real pixels.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	w, h := max(1, outsideWidth), max(1, outsideHeight)
	g.director.SetViewport(float64(w), float64(h))
	return w, h
}
