package systems

import (
	"math"

	"github.com/automoto/bullrun/components"
	cfg "github.com/automoto/bullrun/config"
)

// Progress is how far the player is toward the goal, in 0..1.
func (r *LevelRunner) Progress() float64 {
	return clamp(r.Player.X/math.Max(1, r.State.GoalX), 0, 1)
}

// drawHUD renders the progress bar across the top and the level label
// beneath it.
func (r *LevelRunner) drawHUD(s Surface, vw float64) {
	play := cfg.Play
	margin := play.ProgressBarMargin

	bar := components.Rect{
		X: margin,
		Y: margin,
		W: math.Max(0, vw-2*margin) * r.Progress(),
		H: play.ProgressBarHeight,
	}
	s.FillRect(bar, play.ProgressColor)

	box := components.Rect{X: play.HUDTextX, Y: play.HUDTextY, W: play.HUDTextWidth, H: play.HUDTextHeight}
	s.DrawTextCentered(r.State.HUDText, box, play.TextColor)
}
