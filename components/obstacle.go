package components

type ObstacleKind int

const (
	ObstacleJumpOver ObstacleKind = iota
	ObstacleDuckUnder
)

func (k ObstacleKind) String() string {
	switch k {
	case ObstacleJumpOver:
		return "jump-over"
	case ObstacleDuckUnder:
		return "duck-under"
	default:
		return "unknown"
	}
}

type Obstacle struct {
	Rect
	Kind ObstacleKind
}

// SolidFor reports whether the obstacle blocks a player in the given duck
// state. Overhead bars let a ducking player through.
func (o Obstacle) SolidFor(ducking bool) bool {
	if o.Kind == ObstacleDuckUnder {
		return !ducking
	}
	return true
}
