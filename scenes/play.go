package scenes

import (
	"github.com/automoto/bullrun/components"
	"github.com/automoto/bullrun/systems"
)

// PlayScene runs the levels.
type PlayScene struct {
	host   Host
	Runner *systems.LevelRunner
}

func NewPlayScene(host Host, levels *systems.LevelGenerator, startLevel int) *PlayScene {
	return &PlayScene{
		host:   host,
		Runner: systems.NewLevelRunner(levels, startLevel),
	}
}

func (p *PlayScene) HandleEvent(ev components.InputEvent) {
	vw, vh := p.host.Viewport()
	p.Runner.HandleEvent(ev, vw, vh)
}

func (p *PlayScene) Update(dt float64) {
	vw, vh := p.host.Viewport()
	p.Runner.Update(dt, vw, vh)
}

func (p *PlayScene) Draw(s systems.Surface) {
	p.Runner.Draw(s)
}

// Reload refits the camera to the new viewport.
func (p *PlayScene) Reload() {
	p.Runner.Camera.SyncViewport(p.host.Viewport())
}

// Catalog builds the game's scenes from shared resources.
type Catalog struct {
	Levels     *systems.LevelGenerator
	StartLevel int
	Settings   *systems.SettingsStore
}

func (c Catalog) Build(id SceneID, host Host) Scene {
	switch id {
	case ScenePlay:
		return NewPlayScene(host, c.Levels, c.StartLevel)
	case SceneOptions:
		return NewOptionsScene(host, c.Settings)
	default:
		return NewMenuScene(host)
	}
}
