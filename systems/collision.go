package systems

import (
	"sort"

	"github.com/automoto/bullrun/components"
	"github.com/solarlune/resolv"
)

const (
	obstacleTag   = "obstacle"
	probeTag      = "probe"
	spaceCellSize = 32

	// resolv maps an object's far edge to cells with a one-unit inset, so a
	// probe is grown a little to keep the cell query a superset of overlaps.
	probeMargin = 2.0
)

// obstacleIndex is the broad phase for obstacle queries. The obstacles of
// the current level sit in a resolv.Space; a probe object is moved over the
// query box and its cell neighbours are the candidates for an exact test.
type obstacleIndex struct {
	space     *resolv.Space
	probe     *resolv.Object
	obstacles []components.Obstacle
}

func newObstacleIndex(obstacles []components.Obstacle, worldW, worldH float64) *obstacleIndex {
	space := resolv.NewSpace(int(worldW)+spaceCellSize, int(worldH)+spaceCellSize, spaceCellSize, spaceCellSize)

	for i, o := range obstacles {
		obj := resolv.NewObject(o.X, o.Y, o.W, o.H, obstacleTag)
		obj.SetShape(resolv.NewRectangle(0, 0, o.W, o.H))
		obj.Data = i
		space.Add(obj)
	}

	probe := resolv.NewObject(0, 0, 1, 1, probeTag)
	space.Add(probe)

	return &obstacleIndex{
		space:     space,
		probe:     probe,
		obstacles: obstacles,
	}
}

// candidates returns indices of obstacles that may overlap box, in list order.
func (x *obstacleIndex) candidates(box components.Rect) []int {
	if x == nil || len(x.obstacles) == 0 {
		return nil
	}

	q := box.Inflate(probeMargin)
	x.probe.X, x.probe.Y, x.probe.W, x.probe.H = q.X, q.Y, q.W, q.H
	x.probe.Update()

	check := x.probe.Check(0, 0, obstacleTag)
	if check == nil {
		return nil
	}

	found := check.ObjectsByTags(obstacleTag)
	out := make([]int, 0, len(found))
	for _, obj := range found {
		if i, ok := obj.Data.(int); ok {
			out = append(out, i)
		}
	}
	sort.Ints(out)

	// A tall or wide probe can see one obstacle through several cells.
	unique := out[:0]
	for _, i := range out {
		if len(unique) == 0 || unique[len(unique)-1] != i {
			unique = append(unique, i)
		}
	}
	return unique
}

// overlapping returns indices of obstacles solid for the given duck state
// that strictly overlap box, in list order.
func (x *obstacleIndex) overlapping(box components.Rect, ducking bool) []int {
	var out []int
	for _, i := range x.candidates(box) {
		o := x.obstacles[i]
		if o.SolidFor(ducking) && o.Intersects(box) {
			out = append(out, i)
		}
	}
	return out
}

// blocked reports whether box overlaps any obstacle solid for ducking.
func (x *obstacleIndex) blocked(box components.Rect, ducking bool) bool {
	return len(x.overlapping(box, ducking)) > 0
}
