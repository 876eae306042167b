// Package quadrant - boundary anchor selection.
//
// For each of the four quadrant boundaries, FindAnchors ranks the cities of
// the hosting quadrant by their distance to the shared edge and keeps the
// policy.Shortlist nearest ones. With ExtremalTowardCorner the shortlisted
// city farthest toward the outer corner wins:
//
//	Left   (Q1, edge y = mid.Y): smallest X
//	Top    (Q1, edge x = mid.X): smallest Y
//	Right  (Q3, edge y = mid.Y): largest X
//	Bottom (Q3, edge x = mid.X): largest Y
//
// NearestBoundary simply takes the first city of the ranking. Ties in either
// ordering resolve to the lowest id, so results are deterministic.
//
// Complexity: O(N log N) per boundary.
package quadrant

import (
	"cmp"
	"slices"

	"github.com/golang/geo/r2"
)

// boundary describes one shared edge as seen from the hosting quadrant.
type boundary struct {
	host Quadrant
	// gap is the distance from p to the shared edge (≥ 0 inside the host).
	gap func(p, mid r2.Point) float64
	// toward returns a key that is smaller for points closer to the outer corner.
	toward func(p r2.Point) float64
}

var (
	leftEdge = boundary{
		host:   LowerLeft,
		gap:    func(p, mid r2.Point) float64 { return mid.Y - p.Y },
		toward: func(p r2.Point) float64 { return p.X },
	}
	topEdge = boundary{
		host:   LowerLeft,
		gap:    func(p, mid r2.Point) float64 { return mid.X - p.X },
		toward: func(p r2.Point) float64 { return p.Y },
	}
	rightEdge = boundary{
		host:   UpperRight,
		gap:    func(p, mid r2.Point) float64 { return p.Y - mid.Y },
		toward: func(p r2.Point) float64 { return -p.X },
	}
	bottomEdge = boundary{
		host:   UpperRight,
		gap:    func(p, mid r2.Point) float64 { return p.X - mid.X },
		toward: func(p r2.Point) float64 { return -p.Y },
	}
)

// FindAnchors selects the Left/Top/Right/Bottom anchors for asg.
// Returns ErrEmptyQuadrant when quadrant 1 or 3 has no cities and
// ErrBadPolicy for an invalid policy.
func FindAnchors(pts []r2.Point, asg Assignment, policy AnchorPolicy) (Anchors, error) {
	if policy.Shortlist < 1 {
		return Anchors{}, ErrBadPolicy
	}
	if policy.Rule != ExtremalTowardCorner && policy.Rule != NearestBoundary {
		return Anchors{}, ErrBadPolicy
	}
	if len(asg.Of(LowerLeft)) == 0 || len(asg.Of(UpperRight)) == 0 {
		return Anchors{}, ErrEmptyQuadrant
	}

	return Anchors{
		Left:   pick(pts, asg, leftEdge, policy),
		Top:    pick(pts, asg, topEdge, policy),
		Right:  pick(pts, asg, rightEdge, policy),
		Bottom: pick(pts, asg, bottomEdge, policy),
	}, nil
}

// pick applies policy to the cities of e.host. The host is non-empty.
func pick(pts []r2.Point, asg Assignment, e boundary, policy AnchorPolicy) int {
	ranked := slices.Clone(asg.Of(e.host))
	slices.SortFunc(ranked, func(a, b int) int {
		if c := cmp.Compare(e.gap(pts[a], asg.Mid), e.gap(pts[b], asg.Mid)); c != 0 {
			return c
		}

		return cmp.Compare(a, b)
	})

	k := min(policy.Shortlist, len(ranked))
	if policy.Rule == NearestBoundary || k == 1 {
		return ranked[0]
	}

	best := ranked[0]
	var id int
	for _, id = range ranked[1:k] {
		kb, ki := e.toward(pts[best]), e.toward(pts[id])
		if ki < kb || (ki == kb && id < best) {
			best = id
		}
	}

	return best
}
