// Package tsp - crossing-guided 2-opt.
//
// UntangleCrossings runs the same first-improvement scan as TwoOpt but only
// evaluates pairs whose edge segments intersect (geom.Segment.Intersects).
// In the Euclidean plane a crossing pair can usually be uncrossed with a
// shorter result, so this prunes most non-improving candidates. A crossing
// whose reversal does not improve the length by more than Eps is left in place.
//
// CountCrossings reports how many non-adjacent edge pairs of a tour intersect.
//
// Complexity: O(L²) intersection tests per pass, O(L) per accepted move.
package tsp

import (
	"context"

	"github.com/golang/geo/r2"

	"github.com/katalvlaran/quadtour/geom"
	"github.com/katalvlaran/quadtour/matrix"
)

// UntangleCrossings refines tour like TwoOpt, restricted to crossing edge pairs.
// pts[id] are the city coordinates; len(pts) must equal the matrix order.
func UntangleCrossings(ctx context.Context, dist matrix.Matrix, pts []r2.Point, tour []int, mode Mode, opts Options) ([]int, float64, error) {
	if pts == nil {
		return nil, 0, ErrPointsRequired
	}
	out, cost, _, err := twoOpt(ctx, dist, pts, tour, mode, opts)

	return out, cost, err
}

// CountCrossings counts intersecting pairs of non-adjacent edges of tour.
// When closed is set the closing edge tour[k-1]→tour[0] is included.
// Ids outside pts are ignored (counted as 0).
//
// Complexity: O(k²).
func CountCrossings(pts []r2.Point, tour []int, closed bool) int {
	var k = len(tour)
	if k < 4 {
		return 0
	}
	for _, v := range tour {
		if v < 0 || v >= len(pts) {
			return 0
		}
	}

	var m = k - 1 // edge count of the open path
	if closed {
		m = k
	}
	segs := make([]geom.Segment, m)

	var (
		a, b  int
		count int
	)
	for a = 0; a < m; a++ {
		segs[a] = geom.NewSegment(pts[tour[a]], pts[tour[(a+1)%k]])
	}
	for a = 0; a < m; a++ {
		for b = a + 2; b < m; b++ {
			if closed && a == 0 && b == m-1 {
				continue // share tour[0]
			}
			if segs[a].Intersects(segs[b]) {
				count++
			}
		}
	}

	return count
}
