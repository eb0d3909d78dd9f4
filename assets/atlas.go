package assets

import (
	"fmt"
	"path/filepath"

	cfg "github.com/automoto/bullrun/config"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// ImageLoader reads one image file.
type ImageLoader func(path string) (*ebiten.Image, error)

// LoadImageFile decodes an image from disk.
func LoadImageFile(path string) (*ebiten.Image, error) {
	img, _, err := ebitenutil.NewImageFromFile(path)
	if err != nil {
		return nil, fmt.Errorf("load image %s: %w", path, err)
	}
	return img, nil
}

// Atlas holds the game's sprites. A sprite that fails to load is simply
// absent and callers fall back to flat colour.
type Atlas struct {
	dir    string
	load   ImageLoader
	images map[cfg.SpriteID]*ebiten.Image
}

func NewAtlas(dir string, load ImageLoader) *Atlas {
	if load == nil {
		load = LoadImageFile
	}
	return &Atlas{dir: dir, load: load}
}

// Load reads every configured sprite and reports how many loaded.
func (a *Atlas) Load() int {
	a.images = make(map[cfg.SpriteID]*ebiten.Image, int(cfg.SpriteCount))
	for id := cfg.SpriteID(0); id < cfg.SpriteCount; id++ {
		name, ok := cfg.Sprites.Files[id]
		if !ok || name == "" {
			continue
		}
		img, err := a.load(filepath.Join(a.dir, name))
		if err != nil || img == nil {
			log.Warn("sprite unavailable, drawing flat colour", "sprite", id, "err", err)
			continue
		}
		a.images[id] = img
	}
	log.Debug("sprites loaded", "count", len(a.images), "dir", a.dir)
	return len(a.images)
}

// Reload drops and reloads every sprite.
func (a *Atlas) Reload() {
	for _, img := range a.images {
		img.Deallocate()
	}
	a.Load()
}

func (a *Atlas) Image(id cfg.SpriteID) (*ebiten.Image, bool) {
	img, ok := a.images[id]
	return img, ok
}

// Size returns the pixel size of a loaded sprite.
func (a *Atlas) Size(id cfg.SpriteID) (w, h int, ok bool) {
	img, ok := a.images[id]
	if !ok {
		return 0, 0, false
	}
	b := img.Bounds()
	return b.Dx(), b.Dy(), true
}
