// Package geom - line-segment intersection tester.
//
// A Segment caches the slope/intercept form of its supporting line together
// with its bounding box. Segments parallel to the Y axis carry Vertical==true
// and store their x-intercept in Intercept instead of a slope.
//
// Intersects decides whether two closed segments share at least one point:
//   - both non-vertical: the other's endpoints must not lie strictly on the
//     same side of this line (orientation test within touchTol), and the x of
//     the line intersection must fall in both x-ranges; parallel lines meet
//     only when collinear and overlapping.
//   - one vertical: solve y = m·x₀ + b at the vertical x₀ and check the
//     vertical segment's y-range.
//   - both vertical: same x and overlapping y-ranges.
//
// Touching (an endpoint on the other segment) counts as intersecting.
// Zero-length segments behave as vertical point segments; Degenerate reports them.
package geom

import (
	"math"

	"github.com/golang/geo/r1"
	"github.com/golang/geo/r2"
)

// touchTol widens range checks so that exact touches survive rounding.
const touchTol = 1e-12

// Segment is a closed line segment between A and B.
type Segment struct {
	A, B r2.Point

	// Vertical is set when A.X == B.X; Slope is then zero and meaningless.
	Vertical bool
	// Slope of the supporting line y = Slope·x + Intercept.
	Slope float64
	// Intercept is the y-intercept, or the x-intercept when Vertical.
	Intercept float64

	// Box is the closed bounding box of the segment.
	Box r2.Rect
}

// NewSegment builds the segment from a to b.
func NewSegment(a, b r2.Point) Segment {
	s := Segment{A: a, B: b, Box: r2.RectFromPoints(a, b)}
	if a.X == b.X {
		s.Vertical = true
		s.Intercept = a.X

		return s
	}
	s.Slope = (b.Y - a.Y) / (b.X - a.X)
	s.Intercept = a.Y - s.Slope*a.X

	return s
}

// Degenerate reports whether the segment has zero length.
func (s Segment) Degenerate() bool { return s.A == s.B }

// Intersects reports whether s and o share at least one point.
// The result is symmetric: s.Intersects(o) == o.Intersects(s).
//
// Complexity: O(1).
func (s Segment) Intersects(o Segment) bool {
	if less(o, s) {
		return o.intersects(s)
	}

	return s.intersects(o)
}

// intersects assumes s is not ordered after o (see less); in particular a
// vertical segment always plays the role of s when paired with a non-vertical one.
func (s Segment) intersects(o Segment) bool {
	if !s.Box.ExpandedByMargin(touchTol).Intersects(o.Box) {
		return false
	}

	switch {
	case s.Vertical && o.Vertical:
		// Boxes overlap, so the x values coincide and the y-ranges overlap.
		return true

	case s.Vertical:
		y := o.Slope*s.Intercept + o.Intercept

		return widen(s.Box.Y).Contains(y) && widen(o.Box.X).Contains(s.Intercept)

	case o.Vertical:
		// Unreachable through Intersects; kept so intersects is total.
		return o.intersects(s)
	}

	// Orientation of o's endpoints against s, scaled so touchTol is relative.
	var (
		dir  = s.B.Sub(s.A)
		o1   = dir.Cross(o.A.Sub(s.A))
		o2   = dir.Cross(o.B.Sub(s.A))
		span = dir.Norm() * (1 + o.A.Sub(s.A).Norm() + o.B.Sub(s.A).Norm())
		tol  = touchTol * (1 + span)
	)
	switch {
	case math.Abs(o1) <= tol && math.Abs(o2) <= tol:
		// Collinear; the boxes already overlap.
		return true
	case (o1 > tol && o2 > tol) || (o1 < -tol && o2 < -tol):
		return false
	}
	if cr := dir.Cross(o.B.Sub(o.A)); math.Abs(cr) <= touchTol*dir.Norm()*o.B.Sub(o.A).Norm() {
		// Parallel but not collinear.
		return false
	}

	x := (o.Intercept - s.Intercept) / (s.Slope - o.Slope)

	return widen(s.Box.X).Contains(x) && widen(o.Box.X).Contains(x)
}

func widen(iv r1.Interval) r1.Interval {
	return iv.Expanded(touchTol)
}

// less orders segments canonically: vertical first, then by endpoints.
func less(a, b Segment) bool {
	if a.Vertical != b.Vertical {
		return a.Vertical
	}
	switch {
	case a.A.X != b.A.X:
		return a.A.X < b.A.X
	case a.A.Y != b.A.Y:
		return a.A.Y < b.A.Y
	case a.B.X != b.B.X:
		return a.B.X < b.B.X
	default:
		return a.B.Y < b.B.Y
	}
}
