package components

type CameraData struct {
	CamX          float64 // World-x at the left edge of the viewport
	Zoom          float64
	GroundScreenY float64 // Screen-y of the ground line
	GroundWorldY  float64 // World-y mapped to GroundScreenY
	ViewportW     float64
	ViewportH     float64
}
