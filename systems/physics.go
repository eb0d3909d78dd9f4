package systems

import (
	"github.com/automoto/bullrun/components"
	cfg "github.com/automoto/bullrun/config"
)

const (
	// Vertical contact tolerances, in world units.
	landTolerance = 0.5 // falling or rising contact
	restTolerance = 2.0 // contact with no vertical motion
)

// KinematicsResolver advances the player and the chaser by one variable
// timestep. The player moves and resolves on X first, then on Y, so a large
// dt cannot slip the player diagonally through an obstacle corner.
type KinematicsResolver struct {
	index *obstacleIndex
}

func NewKinematicsResolver() *KinematicsResolver {
	return &KinematicsResolver{}
}

// Load replaces the obstacle set the resolver collides against.
func (k *KinematicsResolver) Load(obstacles []components.Obstacle, worldW float64) {
	k.index = newObstacleIndex(obstacles, worldW, cfg.World.GroundY+cfg.Player.StandHeight)
}

// Step applies intents and integrates the player over dt.
func (k *KinematicsResolver) Step(p *components.PlayerData, in components.Intents, dt float64) {
	k.ApplyIntents(p, in)
	k.Integrate(p, dt)
}

// ApplyIntents sets horizontal velocity, handles the duck transition and
// starts a jump when allowed.
func (k *KinematicsResolver) ApplyIntents(p *components.PlayerData, in components.Intents) {
	p.VX = 0
	switch {
	case in.Left && !in.Right:
		p.VX = -cfg.Player.MoveSpeed
	case in.Right && !in.Left:
		p.VX = cfg.Player.MoveSpeed
	}

	if in.Duck && p.OnGround {
		duck(p)
	} else if p.Ducking {
		k.tryStandUp(p)
	}

	if in.Jump && p.OnGround && !p.Ducking {
		p.VY = cfg.Player.JumpVelocity
		p.OnGround = false
	}
}

// duck shrinks the collider keeping the feet in place.
func duck(p *components.PlayerData) {
	target := cfg.Player.DuckHeight
	p.Y += p.H - target
	p.H = target
	p.Ducking = true
}

// tryStandUp restores the standing collider when nothing solid is in the way.
// A blocked player stays ducked even with the duck input released.
func (k *KinematicsResolver) tryStandUp(p *components.PlayerData) bool {
	stand := standingBox(p)
	if k.index.blocked(stand, false) {
		return false
	}
	p.Y = stand.Y
	p.H = stand.H
	p.Ducking = false
	return true
}

func standingBox(p *components.PlayerData) components.Rect {
	h := cfg.Player.StandHeight
	return components.Rect{X: p.X, Y: p.Bottom() - h, W: p.W, H: h}
}

// Integrate applies gravity, moves and resolves the player.
func (k *KinematicsResolver) Integrate(p *components.PlayerData, dt float64) {
	p.VY += cfg.World.Gravity * dt

	prev := p.Rect

	p.X += p.VX * dt
	if p.X < cfg.World.LeftBound {
		p.X = cfg.World.LeftBound
	}
	if p.VX != 0 {
		k.resolveHorizontal(p, prev)
	}

	afterX := p.Rect
	p.Y += p.VY * dt
	p.OnGround = false
	k.resolveVertical(p, prev, afterX)

	groundTop := cfg.World.GroundY - p.H
	if p.Y >= groundTop {
		p.Y = groundTop
		p.VY = 0
		p.OnGround = true
	}
}

// sweep covers every position a resolution step can leave the player in.
func sweep(from, to components.Rect) components.Rect {
	return from.Union(to).Inflate(max(to.W, to.H))
}

// resolveHorizontal pushes the player back to the near edge of each solid
// obstacle it now overlaps, on the side it was travelling from.
func (k *KinematicsResolver) resolveHorizontal(p *components.PlayerData, prev components.Rect) {
	for _, i := range k.index.candidates(sweep(prev, p.Rect)) {
		o := k.index.obstacles[i]
		if !o.SolidFor(p.Ducking) || !o.Intersects(p.Rect) {
			continue
		}
		if p.VX > 0 {
			p.X = o.X - p.W
		} else {
			p.X = o.Right()
		}
	}
}

// resolveVertical classifies each overlap by where the player was before
// the step: landing on top, bonking the underside, or, with no vertical
// motion, snapping to whichever face it came from.
func (k *KinematicsResolver) resolveVertical(p *components.PlayerData, prev, afterX components.Rect) {
	prevTop, prevBottom := prev.Y, prev.Bottom()

	for _, i := range k.index.candidates(sweep(afterX, p.Rect)) {
		o := k.index.obstacles[i]
		if !o.SolidFor(p.Ducking) || !o.Intersects(p.Rect) {
			continue
		}
		top, bottom := o.Y, o.Bottom()

		switch {
		case p.VY > 0:
			if prevBottom <= top+landTolerance && p.Bottom() >= top {
				p.Y = top - p.H
				p.VY = 0
				p.OnGround = true
			}
		case p.VY < 0:
			if prevTop >= bottom-landTolerance && p.Y <= bottom {
				p.Y = bottom
				p.VY = 0
			}
		default:
			if prevBottom <= top+restTolerance {
				p.Y = top - p.H
				p.OnGround = true
			} else {
				p.Y = bottom
			}
		}
	}
}

// StepChaser advances the bull along the ground. It never collides.
func (k *KinematicsResolver) StepChaser(c *components.ChaserData, dt float64) {
	c.X += c.Speed * dt
	c.Y = cfg.World.GroundY - c.H
}

// Caught reports whether the chaser has reached the player, either by
// overlap or by its leading edge closing within the catch margin.
func Caught(c components.ChaserData, p components.PlayerData) bool {
	return c.Intersects(p.Rect) || c.Right() >= p.X+cfg.Chaser.CatchMargin
}

// SolidOverlaps returns indices of solid obstacles the player overlaps.
func (k *KinematicsResolver) SolidOverlaps(p components.PlayerData) []int {
	return k.index.overlapping(p.Rect, p.Ducking)
}
