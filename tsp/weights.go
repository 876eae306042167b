package tsp

import "github.com/katalvlaran/quadtour/matrix"

// weights returns a flat row-major view of dist (w[u*n+v] == dist.At(u,v))
// and its order n. *matrix.Dense shares its backing slice; any other Matrix
// is prefetched once so hot loops never pay interface or bounds-check costs.
// The returned slice must be treated as read-only.
//
// Complexity: O(1) for *matrix.Dense, O(n²) otherwise.
func weights(dist matrix.Matrix) ([]float64, int, error) {
	if dist == nil {
		return nil, 0, ErrDimensionMismatch
	}
	var (
		n  = dist.Rows()
		nc = dist.Cols()
	)
	if n != nc || n <= 0 {
		return nil, 0, ErrNonSquare
	}
	if d, ok := dist.(*matrix.Dense); ok {
		return d.Raw(), n, nil
	}

	w := make([]float64, n*n)

	var (
		i, j int
		x    float64
		err  error
	)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if x, err = dist.At(i, j); err != nil {
				return nil, 0, ErrDimensionMismatch
			}
			w[i*n+j] = x
		}
	}

	return w, n, nil
}
