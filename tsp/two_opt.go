// Package tsp - 2-opt local search engine.
//
// TwoOpt performs deterministic first-improvement 2-opt.
//
// On a working sequence s of length L, candidate pairs (i, j) are scanned with
// i = 0..L-4 and j = i+2..L-2. The move replaces edges (s_i,s_{i+1}) and
// (s_j,s_{j+1}) by (s_i,s_j) and (s_{i+1},s_{j+1}), i.e. reverses s[i+1..j]:
//
//	Δ = w(s_i,s_j) + w(s_{i+1},s_{j+1}) − w(s_i,s_{i+1}) − w(s_j,s_{j+1}).
//
// The first pair with Δ < −Eps is applied and the scan restarts from the top.
// Endpoints s_0 and s_{L-1} never move.
//
// Modes:
//   - ClosedTour: s = tour ++ [tour[0]], the closing edge takes part in moves;
//     the pair (0, L-2) shares s_0 and is skipped.
//   - OpenPath: s = path, no closing edge.
//   - FixedEndpoints: as OpenPath, plus the (0, L-2) whole-interior pair is skipped.
//
// Design:
//   - Iterative loop; termination by strict decrease of a bounded quantity.
//   - Flat weight access (weights.go); no allocations inside the scan.
//   - Budget: Options.MaxIters accepted moves, Options.TimeLimit wall clock and
//     ctx, the latter two checked every checkEvery candidate evaluations.
//     Exhausted time returns the best-so-far sequence with ErrTimeLimit.
//   - Cost stabilized to 1e−9 via round1e9.
//
// Complexity:
//   - One pass: O(L²) candidate checks; each accepted move costs O(L).
package tsp

import (
	"context"
	"time"

	"github.com/golang/geo/r2"

	"github.com/katalvlaran/quadtour/geom"
	"github.com/katalvlaran/quadtour/matrix"
)

// TwoOpt refines tour with first-improvement 2-opt under mode and returns the
// improved sequence (same shape as the input) and its cost: the closed tour
// length for ClosedTour, the path length otherwise.
//
// ClosedTour expects a permutation of distinct cities. The open modes also
// accept a path that returns to its start ([s, ..., s]).
func TwoOpt(ctx context.Context, dist matrix.Matrix, tour []int, mode Mode, opts Options) ([]int, float64, error) {
	out, cost, _, err := twoOpt(ctx, dist, nil, tour, mode, opts)

	return out, cost, err
}

// twoOpt is the shared entry point for TwoOpt and UntangleCrossings; pts
// selects crossing-guided scanning when non-nil. It also reports the number
// of accepted moves.
func twoOpt(ctx context.Context, dist matrix.Matrix, pts []r2.Point, tour []int, mode Mode, opts Options) ([]int, float64, int, error) {
	w, n, err := weights(dist)
	if err != nil {
		return nil, 0, 0, err
	}
	if len(tour) == 0 {
		return nil, 0, 0, ErrEmptySet
	}
	if err = validateCities(tour, n, mode != ClosedTour); err != nil {
		return nil, 0, 0, err
	}
	if pts != nil && len(pts) != n {
		return nil, 0, 0, ErrDimensionMismatch
	}
	if opts.Eps < 0 || opts.MaxIters < 0 || opts.TimeLimit < 0 {
		return nil, 0, 0, ErrBadOptions
	}

	// Working sequence (copy keeps the input immutable).
	var s []int
	if mode == ClosedTour {
		s = closeTour(tour)
	} else {
		s = CopyTour(tour)
	}

	sr := &searcher{
		w:        w,
		n:        n,
		s:        s,
		pts:      pts,
		eps:      opts.Eps,
		maxIters: opts.MaxIters,
		skipLast: mode != OpenPath,
		budget:   newBudget(ctx, opts.TimeLimit),
	}
	runErr := sr.run()

	// Back to the caller's shape.
	if mode == ClosedTour {
		s = s[:len(s)-1]
	}

	return s, round1e9(flatCost(w, n, sr.s)), sr.moves, runErr
}

// budget tracks the soft wall-clock deadline and ctx cancellation.
type budget struct {
	ctx         context.Context
	useDeadline bool      // whether we enforce a wall-clock time budget
	deadline    time.Time // absolute deadline if enabled
	step        int       // evaluation counter to throttle checks
}

func newBudget(ctx context.Context, limit time.Duration) *budget {
	b := &budget{ctx: ctx}
	if limit > 0 {
		b.useDeadline = true
		b.deadline = time.Now().Add(limit)
	}

	return b
}

// expired reports whether the budget is gone right now.
func (b *budget) expired() bool {
	if b.ctx != nil && b.ctx.Err() != nil {
		return true
	}

	return b.useDeadline && time.Now().After(b.deadline)
}

// tick counts one evaluation and checks the budget every checkEvery steps.
func (b *budget) tick() bool {
	b.step++
	if b.step&(checkEvery-1) != 0 {
		return false
	}

	return b.expired()
}

// searcher holds the state of one local-search run.
type searcher struct {
	w        []float64
	n        int
	s        []int          // working sequence, mutated in place
	pts      []r2.Point     // non-nil ⇒ crossing-guided
	segs     []geom.Segment // segs[k] spans s[k]→s[k+1]; rebuilt after each move
	eps      float64
	maxIters int
	skipLast bool // skip the (0, L-2) pair
	budget   *budget
	moves    int
}

// run applies improving moves until a local optimum, the iteration cap or
// the budget is reached.
func (sr *searcher) run() error {
	if sr.budget.expired() {
		return ErrTimeLimit
	}

	var (
		s          = sr.s
		L          = len(s)
		n          = sr.n
		w          = sr.w
		i, j       int
		a, b, c, d int
		delta      float64
		improved   = true
		guided     = sr.pts != nil
	)
	for improved {
		improved = false
		if guided {
			sr.buildSegments()
		}

	scan:
		for i = 0; i <= L-4; i++ {
			a, b = s[i], s[i+1]
			for j = i + 2; j <= L-2; j++ {
				if sr.budget.tick() {
					return ErrTimeLimit
				}
				if sr.skipLast && i == 0 && j == L-2 {
					continue
				}
				if guided && !sr.segs[i].Intersects(sr.segs[j]) {
					continue
				}

				c, d = s[j], s[j+1]
				delta = w[a*n+c] + w[b*n+d] - w[a*n+b] - w[c*n+d]
				if delta >= -sr.eps {
					continue
				}

				reverseInPlace(s, i+1, j)
				sr.moves++
				improved = true
				if sr.maxIters > 0 && sr.moves >= sr.maxIters {
					return nil
				}

				break scan
			}
		}
	}

	return nil
}

// buildSegments refreshes the per-edge segments of the working sequence.
//
// Complexity: O(L).
func (sr *searcher) buildSegments() {
	var L = len(sr.s)
	if cap(sr.segs) < L-1 {
		sr.segs = make([]geom.Segment, L-1)
	}
	sr.segs = sr.segs[:L-1]

	var k int
	for k = 0; k+1 < L; k++ {
		sr.segs[k] = geom.NewSegment(sr.pts[sr.s[k]], sr.pts[sr.s[k+1]])
	}
}
