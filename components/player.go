package components

// PlayerData is the runner's collider and motion state. Y is the top edge;
// ducking shrinks H while keeping Bottom() fixed.
type PlayerData struct {
	Rect
	VX, VY   float64
	OnGround bool
	Ducking  bool
}
