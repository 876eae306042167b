// Package tsp - nearest-neighbour construction.
//
// Three variants share one engine:
//   - NearestNeighbor:        start at cities[0].
//   - NearestNeighborFrom:    start forced to a given city.
//   - NearestNeighborBetween: start forced first, end forced last regardless
//     of its distance to the previous city.
//
// At every step the engine moves to the closest unvisited candidate; ties
// resolve to the lowest city id so results are reproducible.
//
// Contracts:
//   - cities is non-empty, duplicate-free and every id is a row of dist.
//   - The caller's slice is never mutated; the engine owns a working copy.
//
// Complexity: O(k²) time, O(k) space for k candidate cities.
package tsp

import (
	"math"

	"github.com/katalvlaran/quadtour/matrix"
)

// noCity marks an absent end constraint.
const noCity = -1

// NearestNeighbor builds an open path over cities starting at cities[0].
func NearestNeighbor(dist matrix.Matrix, cities []int) ([]int, error) {
	if len(cities) == 0 {
		return nil, ErrEmptySet
	}

	return NearestNeighborFrom(dist, cities, cities[0])
}

// NearestNeighborFrom builds an open path over cities beginning at start.
// start must be a member of cities (ErrCityNotInSet otherwise).
func NearestNeighborFrom(dist matrix.Matrix, cities []int, start int) ([]int, error) {
	return nearestNeighbor(dist, cities, start, noCity)
}

// NearestNeighborBetween builds a path over cities that begins at start and
// ends at end. Both must be members of cities. When start == end the result
// returns to start: [start, ..., start], one element longer than cities.
func NearestNeighborBetween(dist matrix.Matrix, cities []int, start, end int) ([]int, error) {
	if end < 0 {
		return nil, ErrCityNotInSet
	}

	return nearestNeighbor(dist, cities, start, end)
}

func nearestNeighbor(dist matrix.Matrix, cities []int, start, end int) ([]int, error) {
	if len(cities) == 0 {
		return nil, ErrEmptySet
	}
	w, n, err := weights(dist)
	if err != nil {
		return nil, err
	}
	if err = validateCities(cities, n, false); err != nil {
		return nil, err
	}

	// Working pool without the forced endpoints.
	var (
		pool     = make([]int, 0, len(cities))
		hasStart bool
		hasEnd   = end == noCity || end == start
		c        int
	)
	for _, c = range cities {
		switch c {
		case start:
			hasStart = true
		case end:
			hasEnd = true
		default:
			pool = append(pool, c)
		}
	}
	if !hasStart || !hasEnd {
		return nil, ErrCityNotInSet
	}

	path := make([]int, 0, len(cities)+1)
	path = append(path, start)

	var (
		cur      = start
		best     int
		bestCity int
		bestD    float64
		d        float64
		i        int
		row      int
	)
	for len(pool) > 0 {
		row = cur * n
		best, bestCity, bestD = -1, math.MaxInt, math.Inf(1)
		for i = 0; i < len(pool); i++ {
			c = pool[i]
			d = w[row+c]
			if d < bestD || (d == bestD && c < bestCity) {
				best, bestCity, bestD = i, c, d
			}
		}
		if best < 0 {
			return nil, ErrIncompleteGraph
		}
		// Swap-remove: ties are broken by id, never by pool position.
		pool[best] = pool[len(pool)-1]
		pool = pool[:len(pool)-1]
		path = append(path, bestCity)
		cur = bestCity
	}
	if end != noCity {
		path = append(path, end)
	}

	return path, nil
}
