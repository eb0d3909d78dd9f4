package assets

import (
	"errors"
	"path/filepath"
	"sort"
	"testing"

	cfg "github.com/automoto/bullrun/config"
	"github.com/hajimehoshi/ebiten/v2"
)

func TestAtlasMissingSpritesAreAbsent(t *testing.T) {
	var requested []string
	a := NewAtlas("sprites", func(path string) (*ebiten.Image, error) {
		requested = append(requested, path)
		return nil, errors.New("no such file")
	})

	if n := a.Load(); n != 0 {
		t.Fatalf("loaded %d sprites", n)
	}
	for id := cfg.SpriteID(0); id < cfg.SpriteCount; id++ {
		if _, _, ok := a.Size(id); ok {
			t.Errorf("%s reported present", id)
		}
		if _, ok := a.Image(id); ok {
			t.Errorf("%s image present", id)
		}
	}

	sort.Strings(requested)
	want := []string{
		filepath.Join("sprites", "bar.png"),
		filepath.Join("sprites", "bg.png"),
		filepath.Join("sprites", "block.png"),
		filepath.Join("sprites", "bull_sheet.png"),
		filepath.Join("sprites", "player_sheet.png"),
	}
	if len(requested) != len(want) {
		t.Fatalf("requested %v", requested)
	}
	for i := range want {
		if requested[i] != want[i] {
			t.Errorf("requested %v, want %v", requested, want)
			break
		}
	}
}

func TestAtlasReloadRetries(t *testing.T) {
	calls := 0
	a := NewAtlas("x", func(string) (*ebiten.Image, error) {
		calls++
		return nil, errors.New("gone")
	})
	a.Load()
	a.Reload()
	if calls != 2*int(cfg.SpriteCount) {
		t.Errorf("loader called %d times", calls)
	}
}

func TestUnloadedAtlas(t *testing.T) {
	a := NewAtlas("x", nil)
	if _, _, ok := a.Size(cfg.SpriteBlock); ok {
		t.Error("sprite present before Load")
	}
}
