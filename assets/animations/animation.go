package animations

import "math"

// Animation steps through sprite sheet indices First..Last at a fixed rate
// driven by elapsed seconds rather than ticks.
type Animation struct {
	First   int
	Last    int
	Step    int     // how many indices do we move per frame
	FPS     float64 // frames shown per second
	elapsed float64
}

func (a *Animation) Update(dt float64) {
	if dt <= 0 {
		return
	}
	a.elapsed += dt

	// Keep the clock inside one cycle so long sessions don't lose precision.
	if period := float64(a.frames()) / a.FPS; a.FPS > 0 && a.elapsed >= period {
		a.elapsed = math.Mod(a.elapsed, period)
	}
}

func (a *Animation) Frame() int {
	if a.FPS <= 0 {
		return a.First
	}
	return a.First + (int(a.elapsed*a.FPS)%a.frames())*a.step()
}

func (a *Animation) Restart() {
	a.elapsed = 0
}

func (a *Animation) step() int {
	if a.Step < 1 {
		return 1
	}
	return a.Step
}

func (a *Animation) frames() int {
	n := (a.Last-a.First)/a.step() + 1
	if n < 1 {
		return 1
	}
	return n
}

func NewAnimation(first, last, step int, fps float64) *Animation {
	return &Animation{
		First: first,
		Last:  last,
		Step:  step,
		FPS:   fps,
	}
}
