// Package quadrant - bounding-box bisection.
//
// Decompose assigns every city to exactly one quadrant:
//  1. Bounds: smallest closed box containing all cities.
//  2. Bisect at the box centre on both axes into four closed boxes.
//  3. Scan quadrants 1→4; a quadrant claims every still-unclaimed city that
//     lies inside its closed box. Cities on a shared edge therefore belong to
//     the lowest-numbered quadrant that touches them.
//
// Every finite city lies in the global box, hence in at least one quadrant
// box, so the result is a partition of 0..N-1. Non-finite coordinates are
// rejected with ErrNonFinite.
//
// Complexity: O(N) time, O(N) space.
package quadrant

import (
	"math"

	"github.com/golang/geo/r1"
	"github.com/golang/geo/r2"

	"github.com/katalvlaran/quadtour/geom"
)

// Decompose partitions pts into four quadrants.
func Decompose(pts []r2.Point) (Assignment, error) {
	if len(pts) == 0 {
		return Assignment{}, ErrNoPoints
	}
	for _, p := range pts {
		if !finite(p) {
			return Assignment{}, ErrNonFinite
		}
	}

	var (
		b   = geom.Bounds(pts)
		mid = b.Center()
		asg = Assignment{Bounds: b, Mid: mid}
	)
	asg.Boxes = [4]r2.Rect{
		{X: r1.Interval{Lo: b.X.Lo, Hi: mid.X}, Y: r1.Interval{Lo: b.Y.Lo, Hi: mid.Y}},
		{X: r1.Interval{Lo: mid.X, Hi: b.X.Hi}, Y: r1.Interval{Lo: b.Y.Lo, Hi: mid.Y}},
		{X: r1.Interval{Lo: mid.X, Hi: b.X.Hi}, Y: r1.Interval{Lo: mid.Y, Hi: b.Y.Hi}},
		{X: r1.Interval{Lo: b.X.Lo, Hi: mid.X}, Y: r1.Interval{Lo: mid.Y, Hi: b.Y.Hi}},
	}

	claimed := make([]bool, len(pts))

	var q, id int
	for q = 0; q < len(asg.Boxes); q++ {
		for id = range pts {
			if claimed[id] || !asg.Boxes[q].ContainsPoint(pts[id]) {
				continue
			}
			claimed[id] = true
			asg.Cities[q] = append(asg.Cities[q], id)
		}
	}

	return asg, nil
}

func finite(p r2.Point) bool {
	return !math.IsNaN(p.X) && !math.IsNaN(p.Y) && !math.IsInf(p.X, 0) && !math.IsInf(p.Y, 0)
}
