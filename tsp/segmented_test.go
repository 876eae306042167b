package tsp_test

import (
	"context"
	"testing"

	"github.com/golang/geo/r2"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/quadtour/quadrant"
	"github.com/katalvlaran/quadtour/tsp"
)

// SegmentedSuite runs the quadrant pipeline on a shared random instance.
type SegmentedSuite struct {
	suite.Suite
	pts []r2.Point
}

func (s *SegmentedSuite) SetupSuite() {
	s.pts = randomPoints(300, seedDet)
}

func (s *SegmentedSuite) solve(mut func(*tsp.Options)) tsp.TSResult {
	m := euclid(s.T(), s.pts)
	o := tsp.DefaultOptions()
	if mut != nil {
		mut(&o)
	}
	res, err := tsp.SolveSegmented(context.Background(), m, s.pts, o)
	s.Require().NoError(err)
	mustPermutation(s.T(), res.Tour, len(s.pts))

	return res
}

func (s *SegmentedSuite) TestStitchedTourIsPermutation() {
	res := s.solve(nil)

	s.Equal(tsp.Segmented, res.Stats.Algo)
	s.False(res.Stats.Fallback)
	s.False(res.Stats.TimedOut)

	var total int
	for _, k := range res.Stats.QuadrantSizes {
		s.Positive(k)
		total += k
	}
	s.Equal(len(s.pts), total)

	// Stitching starts at Q1's start anchor and polish keeps the first city.
	s.Equal(res.Stats.Anchors.Left, res.Tour[0])
	s.GreaterOrEqual(res.Cost, res.Stats.LowerBound)
	s.LessOrEqual(res.Cost, res.Stats.InitialCost)
}

func (s *SegmentedSuite) TestAnchorsLiveInTheirQuadrants() {
	res := s.solve(nil)
	asg, err := quadrant.Decompose(s.pts)
	s.Require().NoError(err)

	a := res.Stats.Anchors
	s.Contains(asg.Of(quadrant.LowerLeft), a.Left)
	s.Contains(asg.Of(quadrant.LowerLeft), a.Top)
	s.Contains(asg.Of(quadrant.UpperRight), a.Right)
	s.Contains(asg.Of(quadrant.UpperRight), a.Bottom)
}

func (s *SegmentedSuite) TestPolishNeverHurts() {
	raw := s.solve(func(o *tsp.Options) { o.GlobalPolish = false })
	polished := s.solve(nil)

	s.Equal(raw.Stats.InitialCost, polished.Stats.InitialCost)
	s.LessOrEqual(polished.Cost, raw.Cost)
}

func (s *SegmentedSuite) TestDeterministicAcrossWorkerCounts() {
	one := s.solve(func(o *tsp.Options) { o.Workers = 1 })
	four := s.solve(func(o *tsp.Options) { o.Workers = 4 })

	mustEqualInts(s.T(), four.Tour, one.Tour)
	s.Equal(one.Cost, four.Cost)
}

func (s *SegmentedSuite) TestCrossingGuidedQuadrants() {
	res := s.solve(func(o *tsp.Options) { o.CrossingGuided = true })

	s.False(res.Stats.Fallback)
	s.LessOrEqual(res.Cost, res.Stats.InitialCost)
}

func (s *SegmentedSuite) TestNearestBoundaryRule() {
	res := s.solve(func(o *tsp.Options) {
		o.Anchor = quadrant.AnchorPolicy{Shortlist: 1, Rule: quadrant.NearestBoundary}
	})

	s.False(res.Stats.Fallback)
}

func TestSegmentedSuite(t *testing.T) {
	suite.Run(t, new(SegmentedSuite))
}

// -----------------------------------------------------------------------------
// Degraded inputs
// -----------------------------------------------------------------------------

func TestSolveSegmented_TooFewCitiesFallsBack(t *testing.T) {
	pts := squareWithCentre()

	res, err := tsp.SolveSegmented(context.Background(), euclid(t, pts), pts, tsp.DefaultOptions())
	require.NoError(t, err)
	require.True(t, res.Stats.Fallback)
	mustPermutation(t, res.Tour, len(pts))
	require.Zero(t, res.Stats.Crossings)
}

func TestSolveSegmented_EmptyAnchorQuadrantFallsBack(t *testing.T) {
	// Nothing in the lower-left box [0,5]².
	pts := []r2.Point{
		{X: 0, Y: 10}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 6, Y: 1},
		{X: 9, Y: 3}, {X: 1, Y: 9}, {X: 3, Y: 7}, {X: 8, Y: 8},
	}

	res, err := tsp.SolveSegmented(context.Background(), euclid(t, pts), pts, tsp.DefaultOptions())
	require.NoError(t, err)
	require.True(t, res.Stats.Fallback)
	require.Zero(t, res.Stats.QuadrantSizes[0])
	mustPermutation(t, res.Tour, len(pts))
}

func TestSolveSegmented_CoincidingAnchors(t *testing.T) {
	// City 0 is alone in the lower-left quadrant, so Left == Top.
	pts := []r2.Point{
		{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10},
		{X: 8, Y: 2}, {X: 7, Y: 9}, {X: 2, Y: 8}, {X: 9, Y: 6}, {X: 6, Y: 7},
	}

	for _, polish := range []bool{false, true} {
		o := tsp.DefaultOptions()
		o.GlobalPolish = polish
		res, err := tsp.SolveSegmented(context.Background(), euclid(t, pts), pts, o)
		require.NoError(t, err)
		require.False(t, res.Stats.Fallback)
		require.Equal(t, 0, res.Stats.Anchors.Left)
		require.Equal(t, 0, res.Stats.Anchors.Top)
		mustPermutation(t, res.Tour, len(pts))
	}
}

func TestSolveSegmented_CancelledContextStillReturnsTour(t *testing.T) {
	pts := randomPoints(100, seedDet)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res, err := tsp.SolveSegmented(ctx, euclid(t, pts), pts, tsp.DefaultOptions())
	require.NoError(t, err)
	require.True(t, res.Stats.TimedOut)
	require.Zero(t, res.Stats.Moves)
	mustPermutation(t, res.Tour, len(pts))
}

func TestSolveSegmented_RequiresPoints(t *testing.T) {
	_, err := tsp.SolveSegmented(context.Background(), euclid(t, unitSquare()), nil, tsp.DefaultOptions())
	mustErrIs(t, err, tsp.ErrPointsRequired)
}
