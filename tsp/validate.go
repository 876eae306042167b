// Package tsp - input checks run before any pipeline.
//
// Options, the distance matrix, the start vertex, coordinates and candidate
// city sets are checked here; every failure maps to a sentinel from types.go.
package tsp

import (
	"math"

	"github.com/golang/geo/r2"

	"github.com/katalvlaran/quadtour/matrix"
)

// symTol is a structural tolerance for symmetry/diagonal checks in matrices.
// It is independent from Options.Eps (which governs "improvement" in local search).
const symTol = 1e-12

// validateAll verifies Options + distance matrix + optional coordinates.
// It returns n (matrix order) on success.
//
// Contract:
//   - dist must be non-nil, square, finite, non-negative, symmetric, zero diagonal.
//   - pts may be nil unless the algorithm needs geometry; if given, len(pts)==n
//     and every coordinate is finite.
//
// Complexity: O(n²) time, O(1) extra space.
func validateAll(dist matrix.Matrix, pts []r2.Point, opts Options) (int, error) {
	var (
		n   int
		err error
	)

	// Stage 1: Options-only sanity.
	if err = validateOptionsStandalone(opts); err != nil {
		return 0, err
	}

	// Stage 2: Matrix shape/values.
	if n, err = validateDistMatrix(dist, symTol); err != nil {
		return 0, err
	}

	// Stage 3: Start vertex range (after n is known).
	if err = validateStartVertex(n, opts.StartVertex); err != nil {
		return 0, err
	}

	// Stage 4: Coordinates.
	if pts == nil {
		if needsPoints(opts) {
			return 0, ErrPointsRequired
		}

		return n, nil
	}
	if len(pts) != n {
		return 0, ErrDimensionMismatch
	}
	for _, p := range pts {
		if math.IsNaN(p.X) || math.IsNaN(p.Y) || math.IsInf(p.X, 0) || math.IsInf(p.Y, 0) {
			return 0, ErrIncompleteGraph
		}
	}

	return n, nil
}

// validateOptionsStandalone checks internal consistency of Options without
// referencing matrices or tours.
//
// Complexity: O(1).
func validateOptionsStandalone(opts Options) error {
	// 0 means unlimited or default for every counter and budget.
	if opts.TimeLimit < 0 || opts.MaxIters < 0 || opts.Workers < 0 || opts.Starts < 0 {
		return ErrBadOptions
	}
	// Moves must strictly shorten the tour.
	if opts.Eps < 0 || math.IsNaN(opts.Eps) {
		return ErrBadOptions
	}
	if opts.Algo == Segmented && opts.Anchor.Shortlist < 1 {
		return ErrBadOptions
	}

	switch opts.Algo {
	case Segmented, Greedy, GreedyTwoOpt, CrossingTwoOpt, MultiStart, Christofides:
		// ok
	default:
		return ErrUnsupportedAlgorithm
	}

	return nil
}

// needsPoints tells whether the selected pipeline consults coordinates.
//
// Complexity: O(1).
func needsPoints(opts Options) bool {
	return opts.Algo == Segmented || opts.Algo == CrossingTwoOpt
}

// validateStartVertex verifies that start∈[0..n-1].
//
// Complexity: O(1).
func validateStartVertex(n int, start int) error {
	if start < 0 || start >= n {
		return ErrStartOutOfRange
	}

	return nil
}

// validateDistMatrix performs full matrix validation:
//   - non-nil, square, n>=1,
//   - diagonal ≈ 0 (|a_ii| ≤ tol), finite,
//   - no negative, NaN or ±Inf off-diagonal distances,
//   - |a_ij − a_ji| ≤ tol.
//
// Returns n (matrix order) on success.
//
// Complexity: O(n²).
func validateDistMatrix(dist matrix.Matrix, tol float64) (int, error) {
	w, n, err := weights(dist)
	if err != nil {
		return 0, err
	}

	var (
		i, j     int
		aij, aji float64
	)

	for i = 0; i < n; i++ {
		aij = w[i*n+i]
		if math.IsNaN(aij) || math.IsInf(aij, 0) {
			return 0, ErrIncompleteGraph
		}
		if math.Abs(aij) > tol {
			return 0, ErrNonZeroDiagonal
		}
	}

	// Upper triangle against its mirror.
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			aij = w[i*n+j]
			aji = w[j*n+i]
			if math.IsNaN(aij) || math.IsNaN(aji) || math.IsInf(aij, 0) || math.IsInf(aji, 0) {
				return 0, ErrIncompleteGraph
			}
			if aij < 0 || aji < 0 {
				return 0, ErrNegativeWeight
			}
			if math.Abs(aij-aji) > tol {
				return 0, ErrAsymmetry
			}
		}
	}

	return n, nil
}

// validateCities checks that every id in cities lies in [0..n-1] and appears
// once. When allowLoop is set the last element may repeat the first one
// (a path that returns to its start).
//
// Complexity: O(k) time, O(n) space.
func validateCities(cities []int, n int, allowLoop bool) error {
	var k = len(cities)
	if allowLoop && k >= 2 && cities[0] == cities[k-1] {
		k--
	}
	seen := make([]bool, n)

	var (
		i int
		v int
	)
	for i = 0; i < k; i++ {
		v = cities[i]
		if v < 0 || v >= n {
			return ErrDimensionMismatch
		}
		if seen[v] {
			return ErrDuplicateCity
		}
		seen[v] = true
	}

	return nil
}
