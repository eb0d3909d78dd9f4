package components

// Rect is an axis-aligned box in world or screen units. Y grows downward.
type Rect struct {
	X, Y, W, H float64
}

func (r Rect) Right() float64 {
	return r.X + r.W
}

func (r Rect) Bottom() float64 {
	return r.Y + r.H
}

// Intersects reports whether r and o share interior area. Boxes that only
// touch along an edge do not intersect.
func (r Rect) Intersects(o Rect) bool {
	return r.X < o.Right() && o.X < r.Right() && r.Y < o.Bottom() && o.Y < r.Bottom()
}

// Contains reports whether the point lies inside r or on its edge.
func (r Rect) Contains(px, py float64) bool {
	return px >= r.X && px <= r.Right() && py >= r.Y && py <= r.Bottom()
}

// Inflate grows r by d on every side.
func (r Rect) Inflate(d float64) Rect {
	return Rect{X: r.X - d, Y: r.Y - d, W: r.W + 2*d, H: r.H + 2*d}
}

// Union returns the smallest box covering both r and o.
func (r Rect) Union(o Rect) Rect {
	x := min(r.X, o.X)
	y := min(r.Y, o.Y)
	return Rect{X: x, Y: y, W: max(r.Right(), o.Right()) - x, H: max(r.Bottom(), o.Bottom()) - y}
}
