// Package tsp builds short closed tours over 2D city sets.
//
// It targets Euclidean instances too large for exact solving and trades
// optimality for speed:
//
//   - NearestNeighbor / NearestNeighborFrom / NearestNeighborBetween — greedy
//     construction with a free start, a fixed start, or both endpoints fixed.
//     Complexity: O(k²) for k candidate cities.
//
//   - TwoOpt — deterministic first-improvement 2-opt in ClosedTour, OpenPath
//     or FixedEndpoints mode. Complexity: O(n²) per pass.
//
//   - UntangleCrossings — crossing-guided 2-opt that only evaluates edge pairs
//     whose segments intersect; CountCrossings reports what is left.
//
//   - SolveSegmented — four-quadrant decomposition (package quadrant), one
//     anchored greedy + 2-opt path per quadrant solved concurrently, stitched
//     into one cycle and polished by a global 2-opt pass.
//
//   - SolveMultiStart — greedy + 2-opt from many start cities, keep the best.
//
//   - Christofides (via Options.Algo) — MST + greedy odd-vertex matching +
//     Euler shortcut, polished by 2-opt.
//
//   - MSTLowerBound — Prim minimum spanning tree weight, a lower bound on any tour.
//
// Solve / SolveWithMatrix dispatch on Options.Algo. All functions accept a
// matrix.Matrix; *matrix.Dense is read directly through its backing slice.
//
// Tours are permutations of city ids with an implicit closing edge from the
// last city back to the first. Open paths have no closing edge.
//
// Errors are package sentinels (see types.go) matched with errors.Is.
package tsp
