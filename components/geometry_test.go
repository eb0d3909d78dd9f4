package components

import "testing"

func TestRectIntersects(t *testing.T) {
	base := Rect{X: 0, Y: 0, W: 10, H: 10}
	tests := []struct {
		name  string
		other Rect
		want  bool
	}{
		{"overlap", Rect{X: 5, Y: 5, W: 10, H: 10}, true},
		{"contained", Rect{X: 2, Y: 2, W: 2, H: 2}, true},
		{"touching right edge", Rect{X: 10, Y: 0, W: 5, H: 10}, false},
		{"touching bottom edge", Rect{X: 0, Y: 10, W: 10, H: 5}, false},
		{"touching left edge", Rect{X: -5, Y: 0, W: 5, H: 10}, false},
		{"apart", Rect{X: 20, Y: 20, W: 1, H: 1}, false},
		{"sliver", Rect{X: 9.99, Y: 9.99, W: 1, H: 1}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := base.Intersects(tt.other); got != tt.want {
				t.Errorf("Intersects = %v, want %v", got, tt.want)
			}
			if got := tt.other.Intersects(base); got != tt.want {
				t.Errorf("reverse Intersects = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRectContainsIncludesEdges(t *testing.T) {
	r := Rect{X: 10, Y: 10, W: 20, H: 20}
	if !r.Contains(10, 10) || !r.Contains(30, 30) {
		t.Error("edges should be inside")
	}
	if r.Contains(30.5, 15) {
		t.Error("point right of box reported inside")
	}
}

func TestRectUnion(t *testing.T) {
	got := Rect{X: 0, Y: 5, W: 10, H: 5}.Union(Rect{X: 20, Y: 0, W: 5, H: 5})
	want := Rect{X: 0, Y: 0, W: 25, H: 10}
	if got != want {
		t.Errorf("Union = %+v, want %+v", got, want)
	}
}

func TestObstacleSolidFor(t *testing.T) {
	tests := []struct {
		kind    ObstacleKind
		ducking bool
		want    bool
	}{
		{ObstacleJumpOver, false, true},
		{ObstacleJumpOver, true, true},
		{ObstacleDuckUnder, false, true},
		{ObstacleDuckUnder, true, false},
	}
	for _, tt := range tests {
		o := Obstacle{Rect: Rect{W: 1, H: 1}, Kind: tt.kind}
		if got := o.SolidFor(tt.ducking); got != tt.want {
			t.Errorf("%s.SolidFor(%v) = %v, want %v", tt.kind, tt.ducking, got, tt.want)
		}
	}
}

func TestInputEventPosition(t *testing.T) {
	ev := InputEvent{Kind: EventPointerDown, X: 0.5, Y: 0.25, Normalized: true, Button: ButtonTouch}
	x, y := ev.Position(800, 400)
	if x != 400 || y != 100 {
		t.Errorf("Position = (%v, %v), want (400, 100)", x, y)
	}

	ev = InputEvent{Kind: EventPointerDown, X: 12, Y: 34, Button: ButtonLeft}
	x, y = ev.Position(800, 400)
	if x != 12 || y != 34 {
		t.Errorf("Position = (%v, %v), want (12, 34)", x, y)
	}
}

func TestIsPrimaryPointer(t *testing.T) {
	tests := []struct {
		ev   InputEvent
		want bool
	}{
		{InputEvent{Kind: EventPointerDown, Button: ButtonLeft}, true},
		{InputEvent{Kind: EventPointerDown, Button: ButtonTouch}, true},
		{InputEvent{Kind: EventPointerDown, Button: ButtonRight}, false},
		{InputEvent{Kind: EventPointerUp, Button: ButtonMiddle}, false},
		{InputEvent{Kind: EventPointerMove}, true},
		{InputEvent{Kind: EventKeyDown}, false},
	}
	for _, tt := range tests {
		if got := tt.ev.IsPrimaryPointer(); got != tt.want {
			t.Errorf("IsPrimaryPointer(%+v) = %v, want %v", tt.ev, got, tt.want)
		}
	}
}
