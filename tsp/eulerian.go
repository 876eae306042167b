package tsp

import "slices"

// eulerianCircuit walks every edge of the connected multigraph adj exactly
// once (Hierholzer), beginning and ending at start. adj lists each undirected
// edge at both of its ends; parallel edges appear once per copy.
//
// Complexity: O(V + E).
func eulerianCircuit(adj [][]int, start int) []int {
	type edge struct{ a, b int }
	var (
		edges []edge
		inc   = make([][]int, len(adj)) // edge ids touching each vertex
	)
	for u := range adj {
		for _, v := range adj[u] {
			if u < v {
				inc[u] = append(inc[u], len(edges))
				inc[v] = append(inc[v], len(edges))
				edges = append(edges, edge{u, v})
			}
		}
	}

	var (
		used    = make([]bool, len(edges))
		cursor  = make([]int, len(adj)) // first possibly unused slot of inc[u]
		stack   = []int{start}
		circuit = make([]int, 0, len(edges)+1)
	)
	for len(stack) > 0 {
		u := stack[len(stack)-1]
		for cursor[u] < len(inc[u]) && used[inc[u][cursor[u]]] {
			cursor[u]++
		}
		if cursor[u] == len(inc[u]) {
			circuit = append(circuit, u)
			stack = stack[:len(stack)-1]
			continue
		}

		id := inc[u][cursor[u]]
		used[id] = true
		next := edges[id].a
		if next == u {
			next = edges[id].b
		}
		stack = append(stack, next)
	}
	// Vertices are emitted as the walk unwinds.
	slices.Reverse(circuit)

	return circuit
}

// shortcutCircuit keeps the first visit of every city in walk, turning an
// Eulerian circuit into a tour. It fails with ErrDimensionMismatch when walk
// misses a city or leaves [0..n-1].
//
// Complexity: O(len(walk) + n).
func shortcutCircuit(walk []int, n int) ([]int, error) {
	var (
		seen = make([]bool, n)
		tour = make([]int, 0, n)
	)
	for _, v := range walk {
		if v < 0 || v >= n {
			return nil, ErrDimensionMismatch
		}
		if !seen[v] {
			seen[v] = true
			tour = append(tour, v)
		}
	}
	if len(tour) != n {
		return nil, ErrDimensionMismatch
	}

	return tour, nil
}
