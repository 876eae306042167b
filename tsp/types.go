package tsp

import (
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/katalvlaran/quadtour/quadrant"
)

// Sentinel errors. Wrap with fmt.Errorf("...: %w", ErrX) only at outer
// boundaries; callers match with errors.Is.
var (
	// ErrStartOutOfRange is returned when Options.StartVertex is not a city id.
	ErrStartOutOfRange = errors.New("tsp: start vertex out of range")

	// ErrDimensionMismatch signals inconsistent shapes: tour vs matrix size,
	// a city id outside [0..n-1], or points vs matrix length.
	ErrDimensionMismatch = errors.New("tsp: dimension mismatch")

	// ErrNonSquare is returned when the distance matrix is not n×n.
	ErrNonSquare = errors.New("tsp: distance matrix is not square")

	// ErrNegativeWeight is returned when a distance is negative.
	ErrNegativeWeight = errors.New("tsp: negative distance")

	// ErrIncompleteGraph is returned when a distance is NaN or ±Inf.
	ErrIncompleteGraph = errors.New("tsp: non-finite distance")

	// ErrNonZeroDiagonal is returned when dist[i][i] != 0.
	ErrNonZeroDiagonal = errors.New("tsp: non-zero diagonal")

	// ErrAsymmetry is returned when dist[i][j] != dist[j][i].
	ErrAsymmetry = errors.New("tsp: asymmetric distance matrix")

	// ErrEmptySet is returned when a constructor receives no cities.
	ErrEmptySet = errors.New("tsp: empty city set")

	// ErrCityNotInSet is returned when a required start or end city is not
	// part of the candidate set.
	ErrCityNotInSet = errors.New("tsp: city not in candidate set")

	// ErrDuplicateCity is returned when a candidate set or tour repeats a city.
	ErrDuplicateCity = errors.New("tsp: duplicate city")

	// ErrPointsRequired is returned by algorithms that need coordinates
	// (crossing-guided refinement, segmented solving) when none are given.
	ErrPointsRequired = errors.New("tsp: city coordinates required")

	// ErrTimeLimit is returned when the time budget or the context expires
	// during local search. Local search returns its best-so-far tour with it.
	ErrTimeLimit = errors.New("tsp: time limit exceeded")

	// ErrUnsupportedAlgorithm is returned for an unknown Options.Algo.
	ErrUnsupportedAlgorithm = errors.New("tsp: unsupported algorithm")

	// ErrBadOptions is returned for out-of-range option values.
	ErrBadOptions = errors.New("tsp: invalid options")
)

// Algorithm selects the solving pipeline used by SolveWithMatrix.
type Algorithm int

const (
	// Segmented decomposes the plane into quadrants (default).
	Segmented Algorithm = iota
	// Greedy runs nearest-neighbour construction only.
	Greedy
	// GreedyTwoOpt runs nearest-neighbour followed by closed 2-opt.
	GreedyTwoOpt
	// CrossingTwoOpt runs nearest-neighbour followed by crossing-guided 2-opt.
	CrossingTwoOpt
	// MultiStart runs GreedyTwoOpt from several start cities and keeps the best.
	MultiStart
	// Christofides builds a tour from an MST plus a greedy odd-vertex matching,
	// then applies closed 2-opt when GlobalPolish is set.
	Christofides
)

var algorithmNames = map[Algorithm]string{
	Segmented:      "segmented",
	Greedy:         "greedy",
	GreedyTwoOpt:   "greedy-2opt",
	CrossingTwoOpt: "crossing-2opt",
	MultiStart:     "multistart",
	Christofides:   "christofides",
}

func (a Algorithm) String() string {
	if s, ok := algorithmNames[a]; ok {
		return s
	}

	return "unknown"
}

// ParseAlgorithm maps a CLI name (see Algorithm.String) to an Algorithm.
func ParseAlgorithm(s string) (Algorithm, error) {
	for a, name := range algorithmNames {
		if name == s {
			return a, nil
		}
	}

	return 0, ErrUnsupportedAlgorithm
}

// Mode selects how TwoOpt and UntangleCrossings interpret their input.
type Mode int

const (
	// ClosedTour treats the input as a cycle: the edge from the last city back
	// to the first counts towards the length and takes part in moves, while the
	// first city stays in place.
	ClosedTour Mode = iota
	// OpenPath treats the input as a path with no closing edge.
	OpenPath
	// FixedEndpoints is OpenPath that also never evaluates the move reversing
	// the whole interior (i = 0, j+1 = last) of a path pinned at both ends.
	FixedEndpoints
)

// Defaults.
const (
	// DefaultEps is the strict-improvement threshold: a move is applied only
	// when it shortens the tour by more than Eps.
	DefaultEps = 1e-12

	// checkEvery throttles budget checks inside the 2-opt scan.
	checkEvery = 2048
)

// Options configures every solver in this package. The zero value is not
// usable; start from DefaultOptions.
type Options struct {
	// Algo selects the pipeline for SolveWithMatrix.
	Algo Algorithm

	// StartVertex is the start city of simple (non-segmented) pipelines.
	StartVertex int

	// Eps is the improvement tolerance (Δ < −Eps accepts a move). Must be ≥ 0.
	Eps float64

	// MaxIters caps accepted 2-opt moves per TwoOpt call; 0 means unlimited.
	MaxIters int

	// TimeLimit bounds each local-search call; 0 means unlimited.
	TimeLimit time.Duration

	// GlobalPolish re-runs closed 2-opt over the stitched (Segmented) or
	// shortcut (Christofides) tour.
	GlobalPolish bool

	// CrossingGuided makes per-quadrant refinement use UntangleCrossings
	// instead of the full 2-opt scan.
	CrossingGuided bool

	// Anchor configures boundary-anchor selection for Segmented.
	Anchor quadrant.AnchorPolicy

	// Workers bounds concurrent quadrant / multi-start solves; 0 means GOMAXPROCS.
	Workers int

	// Starts is the number of start cities tried by MultiStart; 0 means all.
	Starts int

	// Seed picks the sampled start cities when 0 < Starts < n (0 ⇒ fixed default).
	Seed int64

	// Logger receives debug events; nil disables logging.
	Logger *zap.Logger
}

// DefaultOptions returns the segmented pipeline with global polish and the
// two-candidate anchor shortlist.
func DefaultOptions() Options {
	return Options{
		Algo:         Segmented,
		Eps:          DefaultEps,
		GlobalPolish: true,
		Anchor:       quadrant.DefaultAnchorPolicy(),
	}
}

func (o Options) logger() *zap.Logger {
	if o.Logger == nil {
		return zap.NewNop()
	}

	return o.Logger
}

// TSResult holds the outcome of a solver.
type TSResult struct {
	// Tour is a permutation of 0..n-1; the closing edge is implicit.
	Tour []int

	// Cost is the total closed-tour length, rounded to 1e-9.
	Cost float64

	// Stats describes how the tour was obtained.
	Stats Stats
}

// Stats are diagnostics attached to a TSResult.
type Stats struct {
	// Algo is the pipeline that produced the tour.
	Algo Algorithm
	// InitialCost is the closed length of the constructed tour before refinement.
	InitialCost float64
	// Moves counts accepted 2-opt reversals across all phases.
	Moves int
	// Crossings counts intersecting non-adjacent edge pairs left in the tour;
	// -1 when coordinates were not available.
	Crossings int
	// QuadrantSizes is the number of cities per quadrant (Segmented only).
	QuadrantSizes [4]int
	// Anchors are the boundary anchors used (Segmented only).
	Anchors quadrant.Anchors
	// Fallback is set when Segmented had to fall back to the simple pipeline.
	Fallback bool
	// BestStart is the winning start city (MultiStart only).
	BestStart int
	// LowerBound is the minimum spanning tree weight, a lower bound on Cost.
	LowerBound float64
	// TimedOut is set when a local-search phase ran out of budget.
	TimedOut bool
	// Elapsed is the wall-clock solve time.
	Elapsed time.Duration
}
