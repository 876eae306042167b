// Package tsp - unified dispatcher for the tour solvers.
//
// This file provides the canonical entry points:
//
//   - Solve: accept city coordinates, build the Euclidean distance matrix
//     (matrix.NewEuclidean), then delegate to SolveWithMatrix.
//   - SolveWithMatrix: accept a distance matrix + optional coordinates and
//     route to the requested pipeline (Segmented / Greedy / GreedyTwoOpt /
//     CrossingTwoOpt / MultiStart / Christofides), applying strict validation first.
//
// Design principles:
//   - Deterministic: seeded start sampling; no time-based randomness.
//   - Strict sentinels: only errors from types.go (and quadrant's) are returned.
//   - Soft budget: ErrTimeLimit from local search keeps the best-so-far tour
//     and sets Stats.TimedOut instead of failing the solve.
//   - Stable cost: all returned costs are rounded to 1e−9 to prevent FP drift.
package tsp

import (
	"context"
	"errors"
	"time"

	"github.com/golang/geo/r2"
	"go.uber.org/zap"

	"github.com/katalvlaran/quadtour/matrix"
)

// Solve builds the Euclidean distance matrix of pts and delegates to
// SolveWithMatrix.
//
// Errors: ErrEmptySet for no cities, ErrIncompleteGraph for NaN/±Inf
// coordinates, plus everything SolveWithMatrix returns.
//
// Complexity: O(n²) for the matrix plus the chosen pipeline.
func Solve(ctx context.Context, pts []r2.Point, opts Options) (TSResult, error) {
	dist, err := matrix.NewEuclidean(pts)
	switch {
	case errors.Is(err, matrix.ErrInvalidDimensions):
		return TSResult{}, ErrEmptySet
	case errors.Is(err, matrix.ErrNaNInf):
		return TSResult{}, ErrIncompleteGraph
	case err != nil:
		return TSResult{}, err
	}

	return SolveWithMatrix(ctx, dist, pts, opts)
}

// SolveWithMatrix validates inputs and routes to the chosen pipeline.
// pts may be nil for Greedy, GreedyTwoOpt, MultiStart and Christofides.
//
// The result always carries a closed tour over every city, its cost, and
// Stats: the MST lower bound, the remaining crossings (-1 without pts) and
// the elapsed time.
//
// Errors: validation sentinels (see validate.go) and ErrUnsupportedAlgorithm.
// An expired budget or ctx is reported through Stats.TimedOut instead.
//
// Complexity: O(n²) validation + pipeline cost.
func SolveWithMatrix(ctx context.Context, dist matrix.Matrix, pts []r2.Point, opts Options) (TSResult, error) {
	var began = time.Now()

	n, err := validateAll(dist, pts, opts)
	if err != nil {
		return TSResult{}, err
	}

	var res TSResult
	switch opts.Algo {
	case Greedy:
		res, err = solveGreedy(ctx, dist, pts, n, opts, false)
	case GreedyTwoOpt, CrossingTwoOpt:
		res, err = solveGreedy(ctx, dist, pts, n, opts, true)
	case MultiStart:
		res, err = solveMultiStart(ctx, dist, n, opts)
	case Segmented:
		res, err = solveSegmented(ctx, dist, pts, opts)
	case Christofides:
		res, err = solveChristofides(ctx, dist, n, opts)
	default:
		return TSResult{}, ErrUnsupportedAlgorithm
	}
	if err != nil {
		return TSResult{}, err
	}

	return finish(dist, pts, res, opts, began)
}

// solveGreedy is the simple pipeline: nearest neighbour from StartVertex,
// optionally refined by closed 2-opt (crossing-guided for CrossingTwoOpt).
func solveGreedy(ctx context.Context, dist matrix.Matrix, pts []r2.Point, n int, opts Options, refine bool) (TSResult, error) {
	path, err := NearestNeighborFrom(dist, identity(n), opts.StartVertex)
	if err != nil {
		return TSResult{}, err
	}
	initial, err := TourCost(dist, path)
	if err != nil {
		return TSResult{}, err
	}
	res := TSResult{Tour: path, Stats: Stats{InitialCost: initial}}
	if !refine {
		return res, nil
	}

	var guided []r2.Point
	if opts.Algo == CrossingTwoOpt {
		guided = pts
	}
	tour, _, moves, err := twoOpt(ctx, dist, guided, path, ClosedTour, opts)
	if err != nil && !errors.Is(err, ErrTimeLimit) {
		return TSResult{}, err
	}
	res.Tour = tour
	res.Stats.Moves = moves
	res.Stats.TimedOut = err != nil

	return res, nil
}

// finish computes the final cost and the shared diagnostics.
func finish(dist matrix.Matrix, pts []r2.Point, res TSResult, opts Options, began time.Time) (TSResult, error) {
	var err error
	if res.Cost, err = TourCost(dist, res.Tour); err != nil {
		return TSResult{}, err
	}
	if res.Stats.LowerBound, err = MSTLowerBound(dist); err != nil {
		return TSResult{}, err
	}
	res.Stats.Crossings = -1
	if pts != nil {
		res.Stats.Crossings = CountCrossings(pts, res.Tour, true)
	}
	res.Stats.Algo = opts.Algo
	res.Stats.Elapsed = time.Since(began)

	opts.logger().Debug("tour solved",
		zap.Stringer("algo", opts.Algo),
		zap.Int("cities", len(res.Tour)),
		zap.Float64("cost", res.Cost),
		zap.Float64("initial_cost", res.Stats.InitialCost),
		zap.Float64("lower_bound", res.Stats.LowerBound),
		zap.Int("moves", res.Stats.Moves),
		zap.Int("crossings", res.Stats.Crossings),
		zap.Bool("timed_out", res.Stats.TimedOut),
		zap.Duration("elapsed", res.Stats.Elapsed),
	)

	return res, nil
}
