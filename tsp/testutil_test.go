// Package tsp_test provides lightweight testing helpers shared across *_test.go
// files in this package.
package tsp_test

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/golang/geo/r2"
	"github.com/google/go-cmp/cmp"

	"github.com/katalvlaran/quadtour/matrix"
)

// -----------------------------------------------------------------------------
// Constants - single source of truth for test knobs
// -----------------------------------------------------------------------------

const (
	// epsTiny matches tsp.DefaultEps (1e-12): strict threshold to accept improvements.
	epsTiny = 1e-12

	// epsLoose is a relaxed tolerance for noisy geometric comparisons.
	epsLoose = 1e-9

	// seedDet is a deterministic seed for generated instances.
	seedDet = int64(42)
)

// -----------------------------------------------------------------------------
// Minimal matrix implementation for tests (square, bounds-checked, with Clone).
// testDense exercises the generic (non-*matrix.Dense) code paths.
// -----------------------------------------------------------------------------

// testDense is a simple dense matrix with bounds-checked At/Set and deep Clone.
type testDense struct{ a [][]float64 }

var _ matrix.Matrix = testDense{}

func (m testDense) Rows() int { return len(m.a) }
func (m testDense) Cols() int {
	if len(m.a) == 0 {
		return 0
	}

	return len(m.a[0])
}
func (m testDense) At(i, j int) (float64, error) {
	if i < 0 || i >= m.Rows() || j < 0 || j >= m.Cols() {
		return 0, matrix.ErrIndexOutOfBounds
	}

	return m.a[i][j], nil
}
func (m testDense) Set(i, j int, v float64) error {
	if i < 0 || i >= m.Rows() || j < 0 || j >= m.Cols() {
		return matrix.ErrIndexOutOfBounds
	}
	m.a[i][j] = v

	return nil
}
func (m testDense) Clone() matrix.Matrix {
	cp := make([][]float64, len(m.a))
	var i int
	for i = range m.a {
		cp[i] = append([]float64(nil), m.a[i]...)
	}

	return testDense{a: cp}
}

// -----------------------------------------------------------------------------
// Generic helpers (repeaters, assertions, numeric closeness)
// -----------------------------------------------------------------------------

// Repeat runs fn N times. Useful for determinism/stability checks.
func Repeat(t *testing.T, n int, fn func(t *testing.T)) {
	t.Helper()
	var i int // loop iterator
	for i = 0; i < n; i++ {
		fn(t)
	}
}

// mustEqualInts asserts exact equality of two integer slices with a readable diff.
func mustEqualInts(t *testing.T, got, want []int) {
	t.Helper()
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
}

// mustErrIs asserts that err matches target using errors.Is.
func mustErrIs(t *testing.T, err, target error) {
	t.Helper()
	if !errors.Is(err, target) {
		t.Fatalf("want %v, got %v", target, err)
	}
}

// mustFloatClose asserts |got-want| ≤ abs.
func mustFloatClose(t *testing.T, got, want, abs float64) {
	t.Helper()
	if math.Abs(got-want) > abs {
		t.Fatalf("float mismatch: got=%.17g want=%.17g (abs=%.1e)", got, want, abs)
	}
}

// mustPermutation asserts that tour visits every id of 0..n-1 exactly once.
func mustPermutation(t *testing.T, tour []int, n int) {
	t.Helper()
	if len(tour) != n {
		t.Fatalf("tour length: got %d want %d (%v)", len(tour), n, tour)
	}
	seen := make([]bool, n)
	for _, v := range tour {
		if v < 0 || v >= n || seen[v] {
			t.Fatalf("not a permutation of 0..%d: %v", n-1, tour)
		}
		seen[v] = true
	}
}

// -----------------------------------------------------------------------------
// Geometric generators
// -----------------------------------------------------------------------------

// unitSquare is the 1×1 square in visiting order (0,0),(0,1),(1,1),(1,0).
func unitSquare() []r2.Point {
	return []r2.Point{{X: 0, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}, {X: 1, Y: 0}}
}

// squareWithCentre is a 10×10 square plus its centre.
func squareWithCentre() []r2.Point {
	return []r2.Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10}, {X: 5, Y: 5}}
}

// circle places n points evenly on a circle of radius r; the optimal tour is
// the polygon boundary.
func circle(n int, r float64) []r2.Point {
	pts := make([]r2.Point, n)
	var (
		i int
		a float64
	)
	for i = 0; i < n; i++ {
		a = 2 * math.Pi * float64(i) / float64(n)
		pts[i] = r2.Point{X: r * math.Cos(a), Y: r * math.Sin(a)}
	}

	return pts
}

// randomPoints draws n points uniformly in [0,1000)² from a fixed seed.
func randomPoints(n int, seed int64) []r2.Point {
	rng := rand.New(rand.NewSource(seed))
	pts := make([]r2.Point, n)
	for i := range pts {
		pts[i] = r2.Point{X: rng.Float64() * 1000, Y: rng.Float64() * 1000}
	}

	return pts
}

// euclid builds a *matrix.Dense over pts or fails the test.
func euclid(t testing.TB, pts []r2.Point) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewEuclidean(pts)
	if err != nil {
		t.Fatalf("NewEuclidean: %v", err)
	}

	return m
}

// asTestDense copies any matrix into the generic testDense implementation.
func asTestDense(m matrix.Matrix) testDense {
	a := make([][]float64, m.Rows())
	var i, j int
	for i = range a {
		a[i] = make([]float64, m.Cols())
		for j = range a[i] {
			a[i][j], _ = m.At(i, j)
		}
	}

	return testDense{a: a}
}

// identity returns [0..n-1].
func identity(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}

	return out
}
