// Package matrix provides the dense distance table every solver in quadtour
// reads from.
//
// The package offers:
//
//   - Matrix: a minimal Rows/Cols/At/Set/Clone interface so solvers can accept
//     any square table (tests use tiny hand-written implementations).
//   - Dense: a row-major float64 matrix with a flat backing slice.
//   - NewEuclidean: the pairwise Euclidean distance builder for a 2D city set,
//     computed over the upper triangle and mirrored.
//
// Matrices are O(N²) in memory; the 2-opt inner loop reads Dense.Raw directly.
//
// See the examples in this package for usage patterns.
package matrix
