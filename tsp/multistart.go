// Package tsp - multi-start greedy + 2-opt.
//
// Greedy construction is sensitive to its start city. solveMultiStart builds
// a nearest-neighbour tour from each of several start cities, refines every
// one with closed 2-opt, and keeps the shortest. Start cities are all cities
// when Options.Starts is 0, else a seeded sample of Options.Starts cities.
//
// Runs are independent and execute on an errgroup worker pool bounded by
// Options.Workers; each run owns its tour, the matrix is shared read-only.
// The best tour wins; equal costs resolve to the lowest start city.
//
// Complexity: O(s · (n² + 2-opt)) time for s starts, O(s · n) space.
package tsp

import (
	"context"
	"errors"
	"runtime"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/quadtour/matrix"
)

// SolveMultiStart runs the multi-start pipeline regardless of opts.Algo.
func SolveMultiStart(ctx context.Context, dist matrix.Matrix, opts Options) (TSResult, error) {
	opts.Algo = MultiStart

	return SolveWithMatrix(ctx, dist, nil, opts)
}

// startRun is the outcome of one start city.
type startRun struct {
	start    int
	tour     []int
	initial  float64
	cost     float64
	moves    int
	timedOut bool
}

func solveMultiStart(ctx context.Context, dist matrix.Matrix, n int, opts Options) (TSResult, error) {
	var (
		starts = sampleStarts(n, opts.Starts, opts.Seed)
		runs   = make([]startRun, len(starts))
		all    = identity(n)
		log    = opts.logger()
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workerLimit(opts.Workers))
	for idx, start := range starts {
		g.Go(func() error {
			path, err := NearestNeighborFrom(dist, all, start)
			if err != nil {
				return err
			}
			initial, err := TourCost(dist, path)
			if err != nil {
				return err
			}
			tour, cost, moves, err := twoOpt(gctx, dist, nil, path, ClosedTour, opts)
			timedOut := errors.Is(err, ErrTimeLimit)
			if err != nil && !timedOut {
				return err
			}
			runs[idx] = startRun{start: start, tour: tour, initial: initial, cost: cost, moves: moves, timedOut: timedOut}

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return TSResult{}, err
	}

	// starts are ascending, so strict < keeps the lowest start on ties.
	best := 0
	var (
		i        int
		moves    int
		timedOut bool
	)
	for i = range runs {
		moves += runs[i].moves
		timedOut = timedOut || runs[i].timedOut
		if runs[i].cost < runs[best].cost {
			best = i
		}
	}
	log.Debug("multi-start finished",
		zap.Int("starts", len(starts)),
		zap.Int("best_start", runs[best].start),
		zap.Float64("best_cost", runs[best].cost),
	)

	return TSResult{
		Tour: runs[best].tour,
		Cost: runs[best].cost,
		Stats: Stats{
			InitialCost: runs[best].initial,
			Moves:       moves,
			BestStart:   runs[best].start,
			TimedOut:    timedOut,
		},
	}, nil
}

// identity returns [0, 1, ..., n-1].
func identity(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}

	return out
}

// workerLimit maps Options.Workers to an errgroup limit.
func workerLimit(workers int) int {
	if workers <= 0 {
		return runtime.GOMAXPROCS(0)
	}

	return workers
}
