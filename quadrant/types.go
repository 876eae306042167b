package quadrant

import (
	"errors"
	"fmt"

	"github.com/golang/geo/r2"
)

var (
	// ErrNoPoints is returned when Decompose receives an empty city list.
	ErrNoPoints = errors.New("quadrant: no points")

	// ErrNonFinite is returned when Decompose receives a NaN or ±Inf coordinate.
	ErrNonFinite = errors.New("quadrant: non-finite coordinate")

	// ErrEmptyQuadrant is returned when a quadrant that must host anchors
	// (1 or 3) has no cities.
	ErrEmptyQuadrant = errors.New("quadrant: quadrant has no cities")

	// ErrBadPolicy is returned for an anchor policy with Shortlist < 1 or an
	// unknown Rule.
	ErrBadPolicy = errors.New("quadrant: invalid anchor policy")
)

// Quadrant identifies one of the four areas, 1..4.
type Quadrant int

const (
	LowerLeft  Quadrant = 1
	LowerRight Quadrant = 2
	UpperRight Quadrant = 3
	UpperLeft  Quadrant = 4
)

// All lists the quadrants in scan and stitching order.
var All = [4]Quadrant{LowerLeft, LowerRight, UpperRight, UpperLeft}

func (q Quadrant) String() string {
	switch q {
	case LowerLeft:
		return "lower-left"
	case LowerRight:
		return "lower-right"
	case UpperRight:
		return "upper-right"
	case UpperLeft:
		return "upper-left"
	default:
		return fmt.Sprintf("quadrant(%d)", int(q))
	}
}

// Assignment is the result of Decompose.
type Assignment struct {
	// Bounds is the bounding box of all cities.
	Bounds r2.Rect
	// Mid is the bisection point (centre of Bounds).
	Mid r2.Point
	// Boxes[q-1] is the closed box of quadrant q.
	Boxes [4]r2.Rect
	// Cities[q-1] lists the ids claimed by quadrant q, ascending.
	Cities [4][]int
}

// Of returns the cities of quadrant q. The slice is shared with the Assignment.
func (a Assignment) Of(q Quadrant) []int { return a.Cities[q-1] }

// Box returns the closed box of quadrant q.
func (a Assignment) Box(q Quadrant) r2.Rect { return a.Boxes[q-1] }

// Sizes returns the number of cities per quadrant.
func (a Assignment) Sizes() [4]int {
	var out [4]int
	for i := range a.Cities {
		out[i] = len(a.Cities[i])
	}

	return out
}

// AnchorRule picks one city from a boundary shortlist.
type AnchorRule int

const (
	// ExtremalTowardCorner picks the shortlisted city farthest toward the
	// outer corner along the shared edge.
	ExtremalTowardCorner AnchorRule = iota
	// NearestBoundary picks the city closest to the shared edge.
	NearestBoundary
)

func (r AnchorRule) String() string {
	switch r {
	case ExtremalTowardCorner:
		return "extremal"
	case NearestBoundary:
		return "nearest"
	default:
		return fmt.Sprintf("AnchorRule(%d)", int(r))
	}
}

// ParseAnchorRule maps "extremal" / "nearest" to a rule.
func ParseAnchorRule(s string) (AnchorRule, error) {
	switch s {
	case "extremal", "":
		return ExtremalTowardCorner, nil
	case "nearest":
		return NearestBoundary, nil
	default:
		return 0, ErrBadPolicy
	}
}

// AnchorPolicy configures FindAnchors.
type AnchorPolicy struct {
	// Shortlist is how many cities nearest to a shared edge are considered.
	Shortlist int
	// Rule chooses among the shortlist.
	Rule AnchorRule
}

// DefaultAnchorPolicy returns a two-candidate shortlist resolved toward the corner.
func DefaultAnchorPolicy() AnchorPolicy {
	return AnchorPolicy{Shortlist: 2, Rule: ExtremalTowardCorner}
}

// Anchors are the four cities shared between adjacent quadrant paths.
type Anchors struct {
	Left   int `yaml:"left"`
	Top    int `yaml:"top"`
	Right  int `yaml:"right"`
	Bottom int `yaml:"bottom"`
}

// Endpoints returns the start and end anchors of the path through quadrant q.
func (a Anchors) Endpoints(q Quadrant) (start, end int) {
	switch q {
	case LowerLeft:
		return a.Left, a.Top
	case LowerRight:
		return a.Top, a.Right
	case UpperRight:
		return a.Right, a.Bottom
	default:
		return a.Bottom, a.Left
	}
}
