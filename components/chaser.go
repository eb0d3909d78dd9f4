package components

// ChaserData is the bull. It only ever moves right along the ground.
type ChaserData struct {
	Rect
	Speed float64
}
