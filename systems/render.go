package systems

import (
	"image"
	"image/color"
	"math"

	"github.com/automoto/bullrun/components"
	cfg "github.com/automoto/bullrun/config"
)

// Surface is everything the game needs from a renderer. All coordinates are
// screen pixels.
type Surface interface {
	Size() (w, h float64)
	FillRect(r components.Rect, clr color.Color)
	StrokeRect(r components.Rect, width float64, clr color.Color)
	// SpriteSize reports the pixel size of a loaded sprite; ok is false when
	// the sprite is unavailable.
	SpriteSize(id cfg.SpriteID) (w, h int, ok bool)
	DrawSprite(id cfg.SpriteID, src image.Rectangle, dst components.Rect, flipX bool)
	DrawTextCentered(text string, box components.Rect, clr color.Color)
}

// Draw renders the current frame of the level.
func (r *LevelRunner) Draw(s Surface) {
	vw, vh := s.Size()
	r.Camera.SyncViewport(vw, vh)
	play := cfg.Play

	s.FillRect(components.Rect{W: vw, H: vh}, play.BackgroundColor)
	drawBackground(s, vw, vh)

	ground := components.Rect{Y: r.Camera.Camera.GroundScreenY, W: vw, H: vh - r.Camera.Camera.GroundScreenY}
	if ground.Y < 0 {
		ground.H += ground.Y
		ground.Y = 0
	}
	ground.H = math.Max(0, ground.H)
	s.FillRect(ground, play.GroundColor)

	goal := components.Rect{
		X: r.State.GoalX,
		Y: cfg.World.GroundY - play.GoalMarkerHeight,
		W: play.GoalMarkerWidth,
		H: play.GoalMarkerHeight,
	}
	s.FillRect(r.Camera.ToScreen(goal), play.GoalColor)

	for _, o := range r.Obstacles {
		dst := r.Camera.ToScreen(o.Rect)
		if o.Kind == components.ObstacleJumpOver {
			drawSpriteOr(s, cfg.SpriteBlock, dst, play.BlockColor)
		} else {
			drawSpriteOr(s, cfg.SpriteBar, dst, play.BarColor)
		}
	}

	r.drawChaser(s)
	r.drawPlayer(s)
	r.drawDebug(s, vw, vh)
	r.drawHUD(s, vw)
	r.drawOverlay(s, vw, vh)
}

// drawBackground scales the backdrop to the viewport width and pins it to
// the bottom edge.
func drawBackground(s Surface, vw, vh float64) {
	w, h, ok := s.SpriteSize(cfg.SpriteBackground)
	if !ok || w <= 0 || h <= 0 {
		return
	}
	destH := float64(h) * vw / float64(w)
	s.DrawSprite(cfg.SpriteBackground, image.Rect(0, 0, w, h), components.Rect{Y: vh - destH, W: vw, H: destH}, false)
}

func (r *LevelRunner) drawChaser(s Surface) {
	dst := r.Camera.ToScreen(r.Chaser.Rect)
	sheet := cfg.Sprites.Chaser

	f := r.chaserAnim.Frame()
	src, ok := sheetCell(s, cfg.SpriteChaserSheet, sheet, f%sheet.Columns, f/sheet.Columns)
	if !ok {
		s.FillRect(dst, cfg.Play.ChaserColor)
		return
	}
	s.DrawSprite(cfg.SpriteChaserSheet, src, dst, false)
}

func (r *LevelRunner) drawPlayer(s Surface) {
	dst := r.Camera.ToScreen(r.Player.Rect)
	sheet := cfg.Sprites.Player

	col, row := r.playerPose()
	src, ok := sheetCell(s, cfg.SpritePlayerSheet, sheet.SheetLayout, col, row)
	if !ok {
		s.FillRect(dst, cfg.Play.PlayerColor)
		return
	}
	s.DrawSprite(cfg.SpritePlayerSheet, src, dst, r.Player.VX < 0)
}

// playerPose picks the sheet cell: jump while airborne, duck while ducking,
// otherwise the run cycle, held on its first frame when standing still.
func (r *LevelRunner) playerPose() (col, row int) {
	sheet := cfg.Sprites.Player
	switch {
	case !r.Player.OnGround:
		return sheet.JumpColumn, sheet.MiscRow
	case r.Player.Ducking:
		return sheet.DuckColumn, sheet.MiscRow
	case math.Abs(r.Player.VX) > cfg.Play.RunAnimationMinSpeed:
		return r.playerAnim.Frame(), sheet.RunRow
	default:
		return 0, sheet.RunRow
	}
}

// sheetCell returns the source rectangle of one grid cell of a sheet.
func sheetCell(s Surface, id cfg.SpriteID, layout cfg.SheetLayout, col, row int) (image.Rectangle, bool) {
	w, h, ok := s.SpriteSize(id)
	if !ok || layout.Columns < 1 || layout.Rows < 1 {
		return image.Rectangle{}, false
	}
	fw, fh := w/layout.Columns, h/layout.Rows
	if fw <= 0 || fh <= 0 {
		return image.Rectangle{}, false
	}
	return image.Rect(col*fw, row*fh, (col+1)*fw, (row+1)*fh), true
}

// drawSpriteOr stretches a whole sprite over dst, or fills dst with fallback
// when the sprite is missing.
func drawSpriteOr(s Surface, id cfg.SpriteID, dst components.Rect, fallback color.Color) {
	w, h, ok := s.SpriteSize(id)
	if !ok || w <= 0 || h <= 0 {
		s.FillRect(dst, fallback)
		return
	}
	s.DrawSprite(id, image.Rect(0, 0, w, h), dst, false)
}

func (r *LevelRunner) drawOverlay(s Surface, vw, vh float64) {
	if !r.State.WaitingForEnter {
		return
	}
	play := cfg.Play
	a := r.overlayAlpha

	s.FillRect(components.Rect{W: vw, H: vh}, Translucent(play.OverlayDimColor, a))

	panel := components.Rect{X: vw * 0.20, Y: vh * 0.35, W: vw * 0.60, H: vh * 0.30}
	s.FillRect(panel, Translucent(play.OverlayPanelColor, a))

	if r.State.OverlayText != "" {
		s.DrawTextCentered(r.State.OverlayText, panel, Translucent(play.OverlayTextColor, a))
	}
}

// Translucent treats c as straight (non-premultiplied) alpha and scales its
// opacity by k.
func Translucent(c color.RGBA, k float64) color.NRGBA {
	k = clamp(k, 0, 1)
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: uint8(math.Round(float64(c.A) * k))}
}
