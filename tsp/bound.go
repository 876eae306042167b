package tsp

import (
	"math"

	"github.com/katalvlaran/quadtour/matrix"
)

// MSTLowerBound returns the weight of a minimum spanning tree over the
// complete graph given by dist. Removing one edge from any closed tour leaves
// a spanning path, so every tour costs at least this much.
//
// dist must be square with finite, non-negative entries (ErrNonSquare,
// ErrIncompleteGraph otherwise).
//
// Time:  O(n²) using Prim's algorithm on the dense matrix.
// Space: O(n).
func MSTLowerBound(dist matrix.Matrix) (float64, error) {
	w, n, err := weights(dist)
	if err != nil {
		return 0, err
	}
	total, _, err := minimumSpanningTree(w, n, false)
	if err != nil {
		return 0, err
	}

	return round1e9(total), nil
}

// minimumSpanningTree runs Prim from vertex 0 over the flat matrix w. It
// returns the tree weight and, when withAdj is set, the tree as adjacency
// lists (each edge recorded in both directions).
//
// Time:  O(n²).
// Space: O(n) plus O(n) for the adjacency lists.
func minimumSpanningTree(w []float64, n int, withAdj bool) (float64, [][]int, error) {
	var (
		inTree = make([]bool, n)
		link   = make([]float64, n) // cheapest known edge into the tree
		parent = make([]int, n)
		adj    [][]int
	)
	if withAdj {
		adj = make([][]int, n)
	}
	for v := range link {
		link[v] = math.Inf(1)
		parent[v] = -1
	}
	link[0] = 0

	var (
		step, u, v int
		best, sum  float64
	)
	for step = 0; step < n; step++ {
		u, best = -1, math.Inf(1)
		for v = 0; v < n; v++ {
			if !inTree[v] && link[v] < best {
				u, best = v, link[v]
			}
		}
		if u < 0 {
			return 0, nil, ErrIncompleteGraph // remaining links are +Inf or NaN
		}
		inTree[u] = true
		sum += best
		if withAdj && parent[u] >= 0 {
			adj[u] = append(adj[u], parent[u])
			adj[parent[u]] = append(adj[parent[u]], u)
		}

		row := w[u*n : (u+1)*n]
		for v = 0; v < n; v++ {
			if !inTree[v] && row[v] < link[v] {
				link[v], parent[v] = row[v], u
			}
		}
	}

	return sum, adj, nil
}
