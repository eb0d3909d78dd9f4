package systems

import (
	"fmt"

	"github.com/automoto/bullrun/assets/animations"
	"github.com/automoto/bullrun/components"
	cfg "github.com/automoto/bullrun/config"
	"github.com/charmbracelet/log"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// LevelRunner owns everything that lives for one attempt at a level and
// drives input, kinematics, camera and the catch and goal rules each frame.
type LevelRunner struct {
	Player    components.PlayerData
	Chaser    components.ChaserData
	Obstacles []components.Obstacle
	State     components.RunState
	Input     *InputUnifier
	Camera    *CameraProjector

	levels  *LevelGenerator
	physics *KinematicsResolver

	playerAnim *animations.Animation
	chaserAnim *animations.Animation

	overlayFade  *gween.Tween
	overlayAlpha float64

	starts   int
	attempts int
}

// NewLevelRunner builds a runner and starts level start.
func NewLevelRunner(levels *LevelGenerator, start int) *LevelRunner {
	ps, cs := cfg.Sprites.Player, cfg.Sprites.Chaser
	r := &LevelRunner{
		Input:      NewInputUnifier(),
		Camera:     NewCameraProjector(),
		levels:     levels,
		physics:    NewKinematicsResolver(),
		playerAnim: animations.NewAnimation(0, ps.Columns-1, 1, ps.FPS),
		chaserAnim: animations.NewAnimation(0, cs.Columns*cs.Rows-1, 1, cs.FPS),
	}
	r.StartLevel(start)
	return r
}

// StartLevel resets all per-attempt state for level i, clamped into the
// catalog. Keyboard holds survive; gesture holds do not.
func (r *LevelRunner) StartLevel(i int) {
	i = r.levels.ClampIndex(i)
	def := r.levels.Level(i)

	if r.starts > 0 && i == r.State.LevelIndex {
		r.attempts++
	} else {
		r.attempts = 1
	}
	r.starts++

	r.State = components.RunState{
		LevelIndex:  i,
		GoalX:       def.Length,
		ChaserSpeed: cfg.Chaser.BaseSpeed + def.ChaserSpeedBonus,
		HUDText:     fmt.Sprintf("Level %d / %d", i+1, r.levels.Count()),
	}

	p := cfg.Player
	r.Player = components.PlayerData{
		Rect:     components.Rect{X: p.StartX, Y: cfg.World.GroundY - p.StandHeight, W: p.Width, H: p.StandHeight},
		OnGround: true,
	}

	c := cfg.Chaser
	r.Chaser = components.ChaserData{
		Rect:  components.Rect{X: r.Player.X - c.StartOffset, Y: cfg.World.GroundY - c.Height, W: c.Width, H: c.Height},
		Speed: r.State.ChaserSpeed,
	}

	r.Camera.Reset()
	r.Obstacles = r.levels.Obstacles(i)
	r.physics.Load(r.Obstacles, def.Length+cfg.Levels.GoalClearance)

	r.playerAnim.Restart()
	r.chaserAnim.Restart()
	r.Input.ResetGesture()
	r.overlayFade = nil
	r.overlayAlpha = 0

	log.Debug("level start", "level", i+1, "attempt", r.attempts, "obstacles", len(r.Obstacles), "bullSpeed", r.State.ChaserSpeed)
}

func (r *LevelRunner) RestartLevel() {
	r.StartLevel(r.State.LevelIndex)
}

// AdvanceLevel starts the next level, wrapping to the first after the last.
func (r *LevelRunner) AdvanceLevel() {
	next := r.State.LevelIndex + 1
	if next >= r.levels.Count() {
		next = 0
	}
	r.StartLevel(next)
}

// HandleEvent routes one input event. Confirm only matters while waiting at
// the goal; everything else feeds the input unifier.
func (r *LevelRunner) HandleEvent(ev components.InputEvent, vw, vh float64) {
	if r.State.WaitingForEnter && ev.Kind == components.EventKeyDown && !ev.Repeat &&
		cfg.Input.Bound(cfg.ActionConfirm, ev.Key) {
		r.AdvanceLevel()
		return
	}
	r.Input.HandleEvent(ev, vw, vh)
}

// Update advances the simulation by dt seconds. While waiting at the goal
// the world is frozen and only the overlay animates.
func (r *LevelRunner) Update(dt, vw, vh float64) {
	r.Camera.SyncViewport(vw, vh)

	if r.State.WaitingForEnter {
		r.updateOverlay(dt)
		r.Input.ConsumeJump()
		return
	}

	r.physics.ApplyIntents(&r.Player, r.Input.Intents())
	r.playerAnim.Update(dt)
	r.chaserAnim.Update(dt)
	r.physics.Integrate(&r.Player, dt)
	r.physics.StepChaser(&r.Chaser, dt)
	r.Camera.Follow(r.Player.X, r.State.GoalX)

	r.checkCaught()
	r.checkGoal()

	r.Input.ConsumeJump()
}

func (r *LevelRunner) checkCaught() {
	if Caught(r.Chaser, r.Player) {
		log.Debug("caught", "level", r.State.LevelIndex+1, "playerX", r.Player.X, "bullRight", r.Chaser.Right())
		r.RestartLevel()
	}
}

func (r *LevelRunner) checkGoal() {
	if r.Player.X < r.State.GoalX || r.State.WaitingForEnter {
		return
	}
	r.State.WaitingForEnter = true

	next := r.State.LevelIndex + 2
	if next <= r.levels.Count() {
		r.State.OverlayText = fmt.Sprintf("Press ENTER to begin Level %d", next)
	} else {
		r.State.OverlayText = "Press ENTER to restart"
	}

	r.overlayFade = gween.New(0, 1, float32(cfg.Play.OverlayFadeSeconds), ease.OutQuad)
	r.overlayAlpha = 0

	log.Info("level complete", "level", r.State.LevelIndex+1, "attempts", r.attempts)
}

func (r *LevelRunner) updateOverlay(dt float64) {
	if r.overlayFade == nil {
		r.overlayAlpha = 1
		return
	}
	v, done := r.overlayFade.Update(float32(dt))
	r.overlayAlpha = float64(v)
	if done {
		r.overlayFade = nil
		r.overlayAlpha = 1
	}
}

// Starts counts StartLevel calls over the runner's lifetime.
func (r *LevelRunner) Starts() int { return r.starts }

// Attempts counts consecutive starts of the current level.
func (r *LevelRunner) Attempts() int { return r.attempts }

// OverlayAlpha is the goal overlay opacity in 0..1.
func (r *LevelRunner) OverlayAlpha() float64 { return r.overlayAlpha }

func (r *LevelRunner) LevelCount() int { return r.levels.Count() }

// SolidOverlaps returns indices of solid obstacles the player overlaps.
func (r *LevelRunner) SolidOverlaps() []int {
	return r.physics.SolidOverlaps(r.Player)
}
