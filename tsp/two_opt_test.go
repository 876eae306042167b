// Package tsp_test exercises the 2-opt local search via the public API.
// Focus: determinism, mode semantics, local optimality and budget handling.
package tsp_test

import (
	"context"
	"math"
	"math/rand"
	"testing"
	"time"

	"github.com/golang/geo/r2"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/quadtour/tsp"
)

// opts2 returns options tuned for direct TwoOpt calls.
func opts2() tsp.Options {
	o := tsp.DefaultOptions()
	o.Eps = epsTiny

	return o
}

// shuffled returns a seeded permutation of 0..n-1.
func shuffled(n int, seed int64) []int {
	p := identity(n)
	rand.New(rand.NewSource(seed)).Shuffle(n, func(i, j int) { p[i], p[j] = p[j], p[i] })

	return p
}

// -----------------------------------------------------------------------------
// 1) Already optimal inputs stay put.
// -----------------------------------------------------------------------------

func TestTwoOpt_UnitSquareUnchanged(t *testing.T) {
	m := euclid(t, unitSquare())
	in := []int{0, 1, 2, 3}

	out, cost, err := tsp.TwoOpt(context.Background(), m, in, tsp.ClosedTour, opts2())
	require.NoError(t, err)
	mustEqualInts(t, out, in)
	require.Equal(t, 4.0, cost)
}

// -----------------------------------------------------------------------------
// 2) Convex instances: a 2-opt local optimum has no crossings, hence is the hull.
// -----------------------------------------------------------------------------

func TestTwoOpt_CircleRecoversPolygon(t *testing.T) {
	const (
		n = 16
		r = 10.0
	)
	m := euclid(t, circle(n, r))
	perimeter := float64(n) * 2 * r * math.Sin(math.Pi/float64(n))

	Repeat(t, 3, func(t *testing.T) {
		out, cost, err := tsp.TwoOpt(context.Background(), m, shuffled(n, seedDet), tsp.ClosedTour, opts2())
		require.NoError(t, err)
		mustPermutation(t, out, n)
		mustFloatClose(t, cost, perimeter, epsLoose)
		require.True(t, tsp.EqualToursModuloRotation(out, identity(n)), "got %s", tsp.DebugString(out))
	})
}

// -----------------------------------------------------------------------------
// 3) Monotonicity, idempotence, immutability.
// -----------------------------------------------------------------------------

func TestTwoOpt_MonotoneAndIdempotent(t *testing.T) {
	const n = 80
	m := euclid(t, randomPoints(n, seedDet))
	in := shuffled(n, 7)
	orig := append([]int(nil), in...)

	before, err := tsp.TourCost(m, in)
	require.NoError(t, err)

	out, cost, err := tsp.TwoOpt(context.Background(), m, in, tsp.ClosedTour, opts2())
	require.NoError(t, err)
	mustPermutation(t, out, n)
	require.LessOrEqual(t, cost, before)
	require.Equal(t, in[0], out[0], "closed mode keeps the first city in place")
	mustEqualInts(t, in, orig)

	again, cost2, err := tsp.TwoOpt(context.Background(), m, out, tsp.ClosedTour, opts2())
	require.NoError(t, err)
	mustEqualInts(t, again, out)
	require.Equal(t, cost, cost2)
}

func TestTwoOpt_GenericMatrixMatchesDense(t *testing.T) {
	const n = 40
	dense := euclid(t, randomPoints(n, seedDet))
	in := shuffled(n, 3)

	a, ca, err := tsp.TwoOpt(context.Background(), dense, in, tsp.ClosedTour, opts2())
	require.NoError(t, err)
	b, cb, err := tsp.TwoOpt(context.Background(), asTestDense(dense), in, tsp.ClosedTour, opts2())
	require.NoError(t, err)
	mustEqualInts(t, b, a)
	require.Equal(t, ca, cb)
}

// -----------------------------------------------------------------------------
// 4) Open modes.
// -----------------------------------------------------------------------------

func TestTwoOpt_OpenModes(t *testing.T) {
	m := euclid(t, []r2.Point{{X: 0}, {X: 1}, {X: 2}, {X: 3}})
	in := []int{0, 2, 1, 3}

	// OpenPath may reverse the whole interior.
	out, cost, err := tsp.TwoOpt(context.Background(), m, in, tsp.OpenPath, opts2())
	require.NoError(t, err)
	mustEqualInts(t, out, []int{0, 1, 2, 3})
	require.Equal(t, 3.0, cost)

	// FixedEndpoints never evaluates (i=0, j=L-2).
	out, cost, err = tsp.TwoOpt(context.Background(), m, in, tsp.FixedEndpoints, opts2())
	require.NoError(t, err)
	mustEqualInts(t, out, in)
	require.Equal(t, 5.0, cost)
}

func TestTwoOpt_FixedEndpointsKeepsEnds(t *testing.T) {
	const n = 60
	m := euclid(t, randomPoints(n, seedDet))
	in := shuffled(n, 11)

	before, err := tsp.PathCost(m, in)
	require.NoError(t, err)

	out, cost, err := tsp.TwoOpt(context.Background(), m, in, tsp.FixedEndpoints, opts2())
	require.NoError(t, err)
	require.Equal(t, in[0], out[0])
	require.Equal(t, in[n-1], out[n-1])
	require.ElementsMatch(t, in, out)
	require.LessOrEqual(t, cost, before)
}

func TestTwoOpt_FixedEndpointsAcceptsLoop(t *testing.T) {
	m := euclid(t, randomPoints(10, seedDet))
	in := []int{4, 0, 9, 2, 7, 1, 4}

	out, _, err := tsp.TwoOpt(context.Background(), m, in, tsp.FixedEndpoints, opts2())
	require.NoError(t, err)
	require.Len(t, out, len(in))
	require.Equal(t, 4, out[0])
	require.Equal(t, 4, out[len(out)-1])

	_, _, err = tsp.TwoOpt(context.Background(), m, in, tsp.ClosedTour, opts2())
	mustErrIs(t, err, tsp.ErrDuplicateCity)
}

// -----------------------------------------------------------------------------
// 5) Budget.
// -----------------------------------------------------------------------------

func TestTwoOpt_CancelledContextReturnsInput(t *testing.T) {
	m := euclid(t, randomPoints(50, seedDet))
	in := shuffled(50, 5)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	out, cost, err := tsp.TwoOpt(ctx, m, in, tsp.ClosedTour, opts2())
	mustErrIs(t, err, tsp.ErrTimeLimit)
	mustEqualInts(t, out, in)
	want, _ := tsp.TourCost(m, in)
	require.Equal(t, want, cost)
}

func TestTwoOpt_TimeLimitReturnsValidTour(t *testing.T) {
	const n = 400
	m := euclid(t, randomPoints(n, seedDet))
	o := opts2()
	o.TimeLimit = time.Nanosecond

	out, _, err := tsp.TwoOpt(context.Background(), m, shuffled(n, 9), tsp.ClosedTour, o)
	mustErrIs(t, err, tsp.ErrTimeLimit)
	mustPermutation(t, out, n)
}

// -----------------------------------------------------------------------------
// 6) Errors.
// -----------------------------------------------------------------------------

func TestTwoOpt_Errors(t *testing.T) {
	m := euclid(t, unitSquare())
	ctx := context.Background()

	_, _, err := tsp.TwoOpt(ctx, m, nil, tsp.ClosedTour, opts2())
	mustErrIs(t, err, tsp.ErrEmptySet)

	_, _, err = tsp.TwoOpt(ctx, m, []int{0, 1, 1, 2}, tsp.ClosedTour, opts2())
	mustErrIs(t, err, tsp.ErrDuplicateCity)

	_, _, err = tsp.TwoOpt(ctx, m, []int{0, 1, 4}, tsp.OpenPath, opts2())
	mustErrIs(t, err, tsp.ErrDimensionMismatch)

	bad := opts2()
	bad.Eps = -1
	_, _, err = tsp.TwoOpt(ctx, m, []int{0, 1, 2, 3}, tsp.ClosedTour, bad)
	mustErrIs(t, err, tsp.ErrBadOptions)
}
