package systems

import (
	"image"
	"math"

	"github.com/automoto/bullrun/components"
	cfg "github.com/automoto/bullrun/config"
)

// CameraProjector maps world space to screen space. Zoom and the ground line
// are derived from the viewport every frame; only CamX carries over.
type CameraProjector struct {
	Camera components.CameraData
}

func NewCameraProjector() *CameraProjector {
	c := &CameraProjector{}
	c.SyncViewport(float64(cfg.C.Width), float64(cfg.C.Height))
	return c
}

// SyncViewport recomputes zoom and the screen ground line for a viewport.
func (c *CameraProjector) SyncViewport(vw, vh float64) {
	cam := &c.Camera
	cam.ViewportW = math.Max(vw, 1)
	cam.ViewportH = math.Max(vh, 1)
	cam.GroundWorldY = cfg.World.GroundY

	target := cam.ViewportH * cfg.Camera.TargetHeightFraction
	cam.Zoom = clamp(target/cfg.Player.StandHeight, cfg.Camera.MinZoom, cfg.Camera.MaxZoom)

	padding := math.Max(cfg.Camera.GroundPaddingMin, cam.ViewportH*cfg.Camera.GroundPaddingFraction)
	cam.GroundScreenY = clamp(cam.ViewportH-padding, 0, cam.ViewportH)
}

// VisibleWorldWidth is how many world units fit across the viewport.
func (c *CameraProjector) VisibleWorldWidth() float64 {
	return c.Camera.ViewportW / math.Max(cfg.Camera.ZoomFloor, c.Camera.Zoom)
}

// Follow places the player at a fixed fraction of the viewport width without
// ever showing space left of 0 or right of goalX.
func (c *CameraProjector) Follow(playerX, goalX float64) {
	visible := c.VisibleWorldWidth()
	limit := math.Max(0, goalX-visible)
	c.Camera.CamX = clamp(playerX-visible*cfg.Camera.PlayerScreenFraction, 0, limit)
}

func (c *CameraProjector) Reset() {
	c.Camera.CamX = 0
}

func (c *CameraProjector) WorldXToScreen(wx float64) float64 {
	return (wx - c.Camera.CamX) * c.Camera.Zoom
}

func (c *CameraProjector) WorldYToScreen(wy float64) float64 {
	return c.Camera.GroundScreenY + (wy-c.Camera.GroundWorldY)*c.Camera.Zoom
}

// ScreenXToWorld inverts WorldXToScreen.
func (c *CameraProjector) ScreenXToWorld(sx float64) float64 {
	return sx/math.Max(cfg.Camera.ZoomFloor, c.Camera.Zoom) + c.Camera.CamX
}

// ToScreen transforms a world rectangle. Both axes share one scale.
func (c *CameraProjector) ToScreen(r components.Rect) components.Rect {
	return components.Rect{
		X: c.WorldXToScreen(r.X),
		Y: c.WorldYToScreen(r.Y),
		W: r.W * c.Camera.Zoom,
		H: r.H * c.Camera.Zoom,
	}
}

// ToScreenPixels is ToScreen rounded to whole pixels.
func (c *CameraProjector) ToScreenPixels(r components.Rect) image.Rectangle {
	s := c.ToScreen(r)
	x := int(math.Round(s.X))
	y := int(math.Round(s.Y))
	return image.Rect(x, y, x+int(math.Round(s.W)), y+int(math.Round(s.H)))
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
