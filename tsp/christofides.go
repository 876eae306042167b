// Package tsp - Christofides-style construction.
//
// Pipeline (symmetric metric instances; every Euclidean matrix qualifies):
//  1. Minimum spanning tree (Prim, O(n²)).
//  2. Odd-degree vertices of the tree.
//  3. Greedy matching of the odd vertices (cheapest pair first), added as
//     extra edges. The matching is not minimum-weight, so the classic 3/2
//     bound does not apply.
//  4. Eulerian circuit of the multigraph from Options.StartVertex (Hierholzer).
//  5. Shortcut repeated visits into a tour.
//  6. Closed 2-opt polish when Options.GlobalPolish is set.
//
// Complexity: O(n²) construction plus the 2-opt polish.
package tsp

import (
	"context"
	"errors"
	"sort"

	"github.com/katalvlaran/quadtour/matrix"
)

func solveChristofides(ctx context.Context, dist matrix.Matrix, n int, opts Options) (TSResult, error) {
	w, _, err := weights(dist)
	if err != nil {
		return TSResult{}, err
	}

	// 1) Minimum spanning tree with adjacency lists.
	_, adj, err := minimumSpanningTree(w, n, true)
	if err != nil {
		return TSResult{}, err
	}

	// 2) Collect odd-degree vertices of the MST.
	odd := make([]int, 0, n/2+1)
	var v int
	for v = 0; v < n; v++ {
		if (len(adj[v]) & 1) == 1 {
			odd = append(odd, v)
		}
	}

	// 3) Matching edges make every degree even.
	greedyMatch(odd, w, n, adj)

	// 4-5) Euler circuit, then shortcut.
	tour, err := shortcutCircuit(eulerianCircuit(adj, opts.StartVertex), n)
	if err != nil {
		return TSResult{}, err
	}
	initial, err := TourCost(dist, tour)
	if err != nil {
		return TSResult{}, err
	}
	res := TSResult{Tour: tour, Stats: Stats{InitialCost: initial}}
	if !opts.GlobalPolish {
		return res, nil
	}

	// 6) Polish.
	polished, _, moves, err := twoOpt(ctx, dist, nil, tour, ClosedTour, opts)
	if err != nil && !errors.Is(err, ErrTimeLimit) {
		return TSResult{}, err
	}
	res.Tour = polished
	res.Stats.Moves = moves
	res.Stats.TimedOut = err != nil

	return res, nil
}

// greedyMatch adds a perfect matching of odd to adj: candidate pairs are
// taken cheapest first (ties by lower ids) while both ends are still free.
// len(odd) is even for any tree.
//
// Complexity: O(k² log k), where k = len(odd).
func greedyMatch(odd []int, w []float64, n int, adj [][]int) {
	type pair struct {
		a, b int
		d    float64
	}
	var (
		i, j  int
		pairs = make([]pair, 0, len(odd)*(len(odd)-1)/2)
	)
	for i = 0; i < len(odd); i++ {
		for j = i + 1; j < len(odd); j++ {
			pairs = append(pairs, pair{a: odd[i], b: odd[j], d: w[odd[i]*n+odd[j]]})
		}
	}
	sort.SliceStable(pairs, func(x, y int) bool { return pairs[x].d < pairs[y].d })

	matched := make(map[int]bool, len(odd))
	for _, p := range pairs {
		if matched[p.a] || matched[p.b] {
			continue
		}
		matched[p.a], matched[p.b] = true, true
		adj[p.a] = append(adj[p.a], p.b)
		adj[p.b] = append(adj[p.b], p.a)
	}
}
