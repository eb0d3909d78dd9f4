package platform

import (
	"image"
	"image/color"

	"github.com/automoto/bullrun/assets"
	"github.com/automoto/bullrun/components"
	cfg "github.com/automoto/bullrun/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// Surface draws onto an ebiten image. Target is swapped in every frame.
type Surface struct {
	Target *ebiten.Image

	atlas  *assets.Atlas
	face   font.Face
	drawOp ebiten.DrawImageOptions
}

func NewSurface(atlas *assets.Atlas, face font.Face) *Surface {
	return &Surface{atlas: atlas, face: face}
}

func (s *Surface) Size() (float64, float64) {
	b := s.Target.Bounds()
	return float64(b.Dx()), float64(b.Dy())
}

func (s *Surface) FillRect(r components.Rect, clr color.Color) {
	if r.W <= 0 || r.H <= 0 {
		return
	}
	vector.FillRect(s.Target, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), clr, false)
}

func (s *Surface) StrokeRect(r components.Rect, width float64, clr color.Color) {
	vector.StrokeRect(s.Target, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), float32(width), clr, false)
}

func (s *Surface) SpriteSize(id cfg.SpriteID) (int, int, bool) {
	if s.atlas == nil {
		return 0, 0, false
	}
	return s.atlas.Size(id)
}

// DrawSprite stretches src of the sprite over dst, mirrored horizontally
// when flipX is set.
func (s *Surface) DrawSprite(id cfg.SpriteID, src image.Rectangle, dst components.Rect, flipX bool) {
	if s.atlas == nil || src.Empty() {
		return
	}
	img, ok := s.atlas.Image(id)
	if !ok {
		return
	}
	sub := img.SubImage(src).(*ebiten.Image)

	sx := dst.W / float64(src.Dx())
	sy := dst.H / float64(src.Dy())

	s.drawOp.GeoM.Reset()
	if flipX {
		s.drawOp.GeoM.Scale(-sx, sy)
		s.drawOp.GeoM.Translate(dst.X+dst.W, dst.Y)
	} else {
		s.drawOp.GeoM.Scale(sx, sy)
		s.drawOp.GeoM.Translate(dst.X, dst.Y)
	}
	s.Target.DrawImage(sub, &s.drawOp)
}

func (s *Surface) DrawTextCentered(str string, box components.Rect, clr color.Color) {
	if s.face == nil || str == "" {
		return
	}
	b := text.BoundString(s.face, str)
	x := box.X + (box.W-float64(b.Dx()))/2 - float64(b.Min.X)
	y := box.Y + (box.H-float64(b.Dy()))/2 - float64(b.Min.Y)
	text.Draw(s.Target, str, s.face, int(x), int(y), clr)
}
