package systems

import (
	"image/color"

	"github.com/automoto/bullrun/components"
	cfg "github.com/automoto/bullrun/config"
)

var (
	debugSolidColor    = color.RGBA{100, 100, 100, 255} // Grey
	debugPassableColor = color.RGBA{0, 255, 255, 255}   // Cyan
	debugPlayerColor   = color.RGBA{0, 0, 255, 255}     // Blue
	debugChaserColor   = color.RGBA{255, 0, 0, 255}     // Red
)

// drawDebug outlines every collision box on screen. Obstacles the player
// can currently pass through are drawn cyan.
func (r *LevelRunner) drawDebug(s Surface, vw, vh float64) {
	if !cfg.Debug.ShowHitboxes {
		return
	}
	view := components.Rect{W: vw, H: vh}

	for _, o := range r.Obstacles {
		box := r.Camera.ToScreen(o.Rect)
		// Cull objects outside viewport
		if !box.Intersects(view) {
			continue
		}
		c := debugPassableColor
		if o.SolidFor(r.Player.Ducking) {
			c = debugSolidColor
		}
		s.StrokeRect(box, 1, c)
	}

	s.StrokeRect(r.Camera.ToScreen(r.Chaser.Rect), 1, debugChaserColor)
	s.StrokeRect(r.Camera.ToScreen(r.Player.Rect), 1, debugPlayerColor)
}
