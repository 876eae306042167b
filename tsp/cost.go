// Package tsp - cost utilities shared by all solvers.
//
// This file provides small, allocation-free helpers to compute the length of
// a closed tour or an open path represented by a city index sequence.
//
// Design:
//   - One flat accessor (see weights.go) for *matrix.Dense and any matrix.Matrix.
//   - Strict sentinels from types.go on any invalid input.
//   - Stable summation: rounded to 1e-9 to avoid cross-platform FP noise.
//
// Complexity:
//   - O(k) time for a sequence of length k, O(1) extra space.
package tsp

import (
	"math"

	"github.com/katalvlaran/quadtour/matrix"
)

// roundScale controls final cost stabilization precision (1e-9).
// Avoids tiny FP drifts across platforms/opt levels without affecting optimality.
const roundScale = 1e9

// TourCost returns the length of the closed tour: every consecutive edge plus
// the implicit closing edge tour[k-1]→tour[0]. A single city costs 0.
//
// Contract:
//   - len(tour) >= 1 and every id within [0..n-1].
//   - Returns ErrDimensionMismatch, ErrNonSquare, ErrIncompleteGraph or ErrNegativeWeight.
//
// Complexity: O(k).
func TourCost(dist matrix.Matrix, tour []int) (float64, error) {
	return sequenceCost(dist, tour, true)
}

// PathCost returns the length of the open path (no closing edge).
//
// Complexity: O(k).
func PathCost(dist matrix.Matrix, path []int) (float64, error) {
	return sequenceCost(dist, path, false)
}

func sequenceCost(dist matrix.Matrix, seq []int, closed bool) (float64, error) {
	if len(seq) == 0 {
		return 0, ErrDimensionMismatch
	}
	w, n, err := weights(dist)
	if err != nil {
		return 0, err
	}

	var (
		i   int
		v   int
		x   float64
		sum float64
		k   = len(seq)
	)
	for i = 0; i < k; i++ {
		v = seq[i]
		if v < 0 || v >= n {
			return 0, ErrDimensionMismatch
		}
	}
	for i = 0; i+1 < k; i++ {
		x = w[seq[i]*n+seq[i+1]]
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return 0, ErrIncompleteGraph
		}
		if x < 0 {
			return 0, ErrNegativeWeight
		}
		sum += x
	}
	if closed && k > 1 {
		x = w[seq[k-1]*n+seq[0]]
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return 0, ErrIncompleteGraph
		}
		if x < 0 {
			return 0, ErrNegativeWeight
		}
		sum += x
	}

	return round1e9(sum), nil
}

// flatCost sums consecutive edges of seq over a validated flat matrix.
// Used by the hot paths after validateAll has run.
//
// Complexity: O(k).
func flatCost(w []float64, n int, seq []int) float64 {
	var (
		i   int
		sum float64
	)
	for i = 0; i+1 < len(seq); i++ {
		sum += w[seq[i]*n+seq[i+1]]
	}

	return sum
}

// round1e9 returns x rounded to 1e-9 absolute precision.
// This keeps costs stable across platforms without affecting algorithmic correctness.
//
// Complexity: O(1).
func round1e9(x float64) float64 {
	return math.Round(x*roundScale) / roundScale
}
