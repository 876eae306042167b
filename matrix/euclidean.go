// Package matrix: Euclidean distance matrix builder.
//
// NewEuclidean turns a city list into the symmetric N×N table consumed by the
// constructors and local-search procedures in package tsp.
//
// Contract:
//   - dist[i][j] == dist[j][i] == ‖p_i − p_j‖₂, dist[i][i] == 0.
//   - Only the upper triangle (i ≤ j) is computed; the lower one is mirrored.
//   - N == 0 is rejected with ErrInvalidDimensions (callers must guard).
//   - Non-finite coordinates are rejected with ErrNaNInf.
//
// Complexity: O(N²) time and memory.
package matrix

import (
	"math"

	"github.com/golang/geo/r2"
)

// NewEuclidean builds the pairwise distance matrix for pts.
func NewEuclidean(pts []r2.Point) (*Dense, error) {
	var n = len(pts)
	if n == 0 {
		return nil, ErrInvalidDimensions
	}

	var i, j int
	for i = 0; i < n; i++ {
		if !finite(pts[i].X) || !finite(pts[i].Y) {
			return nil, ErrNaNInf
		}
	}

	d, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}

	var w float64
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			w = pts[i].Sub(pts[j]).Norm()
			d.data[i*n+j] = w
			d.data[j*n+i] = w
		}
	}

	return d, nil
}

func finite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
