package systems

import (
	"math"
	"math/rand"

	"github.com/automoto/bullrun/components"
	cfg "github.com/automoto/bullrun/config"
)

// BuildLevels returns the level catalog. Difficulty rises with the index:
// longer runs, a faster bull, more obstacles packed closer together.
func BuildLevels() []components.LevelDef {
	l := cfg.Levels
	levels := make([]components.LevelDef, cfg.LevelCount())
	for i := range levels {
		fi := float64(i)
		levels[i] = components.LevelDef{
			Length:           l.BaseLength + l.LengthStep*fi,
			ChaserSpeedBonus: l.SpeedBonusStep * fi,
			ObstacleCount:    l.BaseObstacles + l.ObstacleStep*i,
			ObstacleSpacing:  math.Max(l.MinSpacing, l.BaseSpacing-l.SpacingStep*fi),
		}
	}
	return levels
}

// LevelGenerator owns the level catalog and the random source used to lay
// out obstacles. Each call to Obstacles draws a fresh layout.
type LevelGenerator struct {
	Levels []components.LevelDef
	rng    *rand.Rand
}

func NewLevelGenerator(rng *rand.Rand) *LevelGenerator {
	return &LevelGenerator{
		Levels: BuildLevels(),
		rng:    rng,
	}
}

func (g *LevelGenerator) Count() int {
	return len(g.Levels)
}

// ClampIndex maps any index into the catalog.
func (g *LevelGenerator) ClampIndex(i int) int {
	if i < 0 {
		return 0
	}
	if i >= len(g.Levels) {
		return len(g.Levels) - 1
	}
	return i
}

func (g *LevelGenerator) Level(i int) components.LevelDef {
	return g.Levels[g.ClampIndex(i)]
}

// Obstacles lays out a new obstacle set for level i. The cursor advances by
// the level spacing plus jitter each step; obstacles too close to the goal
// are dropped so the final approach stays clear.
func (g *LevelGenerator) Obstacles(i int) []components.Obstacle {
	def := g.Level(i)
	l := cfg.Levels
	groundY := cfg.World.GroundY
	barY := groundY - cfg.Player.StandHeight + l.BarClearance
	limit := def.Length - l.GoalClearance

	obstacles := make([]components.Obstacle, 0, def.ObstacleCount)
	x := l.FirstObstacleX
	for n := 0; n < def.ObstacleCount; n++ {
		// Jitter is drawn before the kind so the sequence of draws is fixed.
		jitter := (g.rng.Float64() - 0.5) * l.SpacingJitter
		x += def.ObstacleSpacing + jitter

		var o components.Obstacle
		if g.rng.Float64() < l.DuckChance {
			o = components.Obstacle{
				Rect: components.Rect{X: x, Y: barY, W: l.BarWidth, H: l.BarHeight},
				Kind: components.ObstacleDuckUnder,
			}
		} else {
			o = components.Obstacle{
				Rect: components.Rect{X: x, Y: groundY - l.BlockHeight, W: l.BlockWidth, H: l.BlockHeight},
				Kind: components.ObstacleJumpOver,
			}
		}

		if o.X < limit {
			obstacles = append(obstacles, o)
		}
	}
	return obstacles
}
