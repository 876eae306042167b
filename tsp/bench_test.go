package tsp_test

import (
	"context"
	"testing"

	"github.com/katalvlaran/quadtour/tsp"
)

// ------------------------------------------------------------------------------------
// Construction and local search on random uniform instances.
// Matrices are built once outside the timer.
// ------------------------------------------------------------------------------------

// BenchmarkNearestNeighbor_n1000 measures greedy construction.
func BenchmarkNearestNeighbor_n1000(b *testing.B) {
	const n = 1000
	m := euclid(b, randomPoints(n, seedDet))
	cities := identity(n)

	b.ReportAllocs()
	b.ResetTimer()
	var it int
	for it = 0; it < b.N; it++ {
		if _, err := tsp.NearestNeighborFrom(m, cities, 0); err != nil {
			b.Fatalf("NearestNeighborFrom failed: %v", err)
		}
	}
}

// BenchmarkTwoOpt_n300 measures closed 2-opt from a greedy start.
func BenchmarkTwoOpt_n300(b *testing.B) {
	const n = 300
	m := euclid(b, randomPoints(n, seedDet))
	start, err := tsp.NearestNeighborFrom(m, identity(n), 0)
	if err != nil {
		b.Fatalf("NearestNeighborFrom failed: %v", err)
	}
	opts := tsp.DefaultOptions()

	b.ReportAllocs()
	b.ResetTimer()
	var it int
	for it = 0; it < b.N; it++ {
		if _, _, err = tsp.TwoOpt(context.Background(), m, start, tsp.ClosedTour, opts); err != nil {
			b.Fatalf("TwoOpt failed: %v", err)
		}
	}
}

// BenchmarkUntangleCrossings_n300 measures the crossing-guided variant on the same input.
func BenchmarkUntangleCrossings_n300(b *testing.B) {
	const n = 300
	pts := randomPoints(n, seedDet)
	m := euclid(b, pts)
	start, err := tsp.NearestNeighborFrom(m, identity(n), 0)
	if err != nil {
		b.Fatalf("NearestNeighborFrom failed: %v", err)
	}
	opts := tsp.DefaultOptions()

	b.ReportAllocs()
	b.ResetTimer()
	var it int
	for it = 0; it < b.N; it++ {
		if _, _, err = tsp.UntangleCrossings(context.Background(), m, pts, start, tsp.ClosedTour, opts); err != nil {
			b.Fatalf("UntangleCrossings failed: %v", err)
		}
	}
}

// BenchmarkSolveSegmented_n1000 measures the full quadrant pipeline.
func BenchmarkSolveSegmented_n1000(b *testing.B) {
	const n = 1000
	pts := randomPoints(n, seedDet)
	m := euclid(b, pts)
	opts := tsp.DefaultOptions()

	b.ReportAllocs()
	b.ResetTimer()
	var it int
	for it = 0; it < b.N; it++ {
		if _, err := tsp.SolveSegmented(context.Background(), m, pts, opts); err != nil {
			b.Fatalf("SolveSegmented failed: %v", err)
		}
	}
}

// BenchmarkMSTLowerBound_n512 measures Prim on a dense 512-city matrix.
func BenchmarkMSTLowerBound_n512(b *testing.B) {
	m := euclid(b, randomPoints(512, seedDet))

	b.ReportAllocs()
	b.ResetTimer()
	var it int
	for it = 0; it < b.N; it++ {
		if _, err := tsp.MSTLowerBound(m); err != nil {
			b.Fatalf("MSTLowerBound failed: %v", err)
		}
	}
}
