// Package tsp - quadrant decomposition and tour stitching.
//
// solveSegmented splits the plane at the bounding-box centre (quadrant.Decompose),
// picks four boundary anchors (quadrant.FindAnchors) and builds one open path
// per quadrant between its two anchors:
//
//	Q1 Left→Top, Q2 Top→Right, Q3 Right→Bottom, Q4 Bottom→Left.
//
// Each path is a fixed-both-endpoints nearest-neighbour construction refined
// by FixedEndpoints 2-opt (or the crossing-guided variant). Paths are solved
// concurrently and concatenated in quadrant order, dropping the trailing
// anchor of every path since it opens the next one. An optional closed 2-opt
// pass repairs seams the per-quadrant searches could not see.
//
// Inputs too small to split (fewer than minSegmented cities) or missing an
// anchor quadrant fall back to greedy + closed 2-opt.
//
// Complexity: O(Σ k_q²) for the quadrant phase plus one global 2-opt.
package tsp

import (
	"context"
	"errors"

	"github.com/golang/geo/r2"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/quadtour/matrix"
	"github.com/katalvlaran/quadtour/quadrant"
)

// minSegmented is the smallest instance worth decomposing.
const minSegmented = 8

// SolveSegmented runs the quadrant pipeline regardless of opts.Algo.
func SolveSegmented(ctx context.Context, dist matrix.Matrix, pts []r2.Point, opts Options) (TSResult, error) {
	opts.Algo = Segmented

	return SolveWithMatrix(ctx, dist, pts, opts)
}

// quadPath is the refined path of one quadrant.
type quadPath struct {
	path     []int
	moves    int
	timedOut bool
}

func solveSegmented(ctx context.Context, dist matrix.Matrix, pts []r2.Point, opts Options) (TSResult, error) {
	var (
		log = opts.logger()
		n   = len(pts)
	)
	if n < minSegmented {
		log.Warn("too few cities for quadrant decomposition, using greedy 2-opt",
			zap.Int("cities", n))

		return fallback(ctx, dist, n, opts)
	}

	asg, err := quadrant.Decompose(pts)
	if err != nil {
		return TSResult{}, err
	}
	sizes := asg.Sizes()
	anchors, err := quadrant.FindAnchors(pts, asg, opts.Anchor)
	if errors.Is(err, quadrant.ErrEmptyQuadrant) {
		log.Warn("anchor quadrant is empty, using greedy 2-opt",
			zap.Ints("quadrant_sizes", sizes[:]))

		res, ferr := fallback(ctx, dist, n, opts)
		res.Stats.QuadrantSizes = sizes

		return res, ferr
	}
	if err != nil {
		return TSResult{}, err
	}
	log.Debug("quadrants decomposed",
		zap.Ints("quadrant_sizes", sizes[:]),
		zap.Int("left", anchors.Left),
		zap.Int("top", anchors.Top),
		zap.Int("right", anchors.Right),
		zap.Int("bottom", anchors.Bottom),
	)

	// Per-quadrant paths; each goroutine writes only its own slot.
	var paths [4]quadPath
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workerLimit(opts.Workers))
	for qi, q := range quadrant.All {
		g.Go(func() error {
			qp, err := solveQuadrant(gctx, dist, pts, asg.Of(q), anchors, q, opts)
			if err != nil {
				return err
			}
			paths[qi] = qp

			return nil
		})
	}
	if err = g.Wait(); err != nil {
		return TSResult{}, err
	}

	tour, initial := stitch(dist, n, paths)
	res := TSResult{
		Tour: tour,
		Stats: Stats{
			InitialCost:   initial,
			QuadrantSizes: sizes,
			Anchors:       anchors,
		},
	}
	for _, qp := range paths {
		res.Stats.Moves += qp.moves
		res.Stats.TimedOut = res.Stats.TimedOut || qp.timedOut
	}

	if opts.GlobalPolish {
		polished, _, moves, perr := twoOpt(ctx, dist, nil, tour, ClosedTour, opts)
		if perr != nil && !errors.Is(perr, ErrTimeLimit) {
			return TSResult{}, perr
		}
		res.Tour = polished
		res.Stats.Moves += moves
		res.Stats.TimedOut = res.Stats.TimedOut || perr != nil
	}

	return res, nil
}

// solveQuadrant builds and refines the anchored path through quadrant q.
// The returned path ends just before q's end anchor.
func solveQuadrant(ctx context.Context, dist matrix.Matrix, pts []r2.Point, own []int, anchors quadrant.Anchors, q quadrant.Quadrant, opts Options) (quadPath, error) {
	start, end := anchors.Endpoints(q)

	// Candidate set: start, the quadrant's own cities, end; each once.
	cities := make([]int, 0, len(own)+2)
	cities = append(cities, start)
	for _, c := range own {
		if c != start && c != end {
			cities = append(cities, c)
		}
	}
	if end != start {
		cities = append(cities, end)
	}

	path, err := NearestNeighborBetween(dist, cities, start, end)
	if err != nil {
		return quadPath{}, err
	}

	var guided []r2.Point
	if opts.CrossingGuided {
		guided = pts
	}
	refined, _, moves, err := twoOpt(ctx, dist, guided, path, FixedEndpoints, opts)
	timedOut := errors.Is(err, ErrTimeLimit)
	if err != nil && !timedOut {
		return quadPath{}, err
	}

	return quadPath{path: refined[:len(refined)-1], moves: moves, timedOut: timedOut}, nil
}

// stitch concatenates the quadrant paths in order. A city already placed is
// skipped, which only happens when a quadrant's two anchors coincide.
// It also returns the closed cost of the stitched tour.
func stitch(dist matrix.Matrix, n int, paths [4]quadPath) ([]int, float64) {
	var (
		tour   = make([]int, 0, n)
		placed = make([]bool, n)
	)
	for _, qp := range paths {
		for _, c := range qp.path {
			if placed[c] {
				continue
			}
			placed[c] = true
			tour = append(tour, c)
		}
	}
	cost, _ := TourCost(dist, tour)

	return tour, cost
}

// fallback is the simple pipeline used when decomposition does not apply.
func fallback(ctx context.Context, dist matrix.Matrix, n int, opts Options) (TSResult, error) {
	path, err := NearestNeighborFrom(dist, identity(n), opts.StartVertex)
	if err != nil {
		return TSResult{}, err
	}
	initial, err := TourCost(dist, path)
	if err != nil {
		return TSResult{}, err
	}
	tour, _, moves, err := twoOpt(ctx, dist, nil, path, ClosedTour, opts)
	if err != nil && !errors.Is(err, ErrTimeLimit) {
		return TSResult{}, err
	}

	return TSResult{
		Tour: tour,
		Stats: Stats{
			InitialCost: initial,
			Moves:       moves,
			Fallback:    true,
			TimedOut:    err != nil,
		},
	}, nil
}
