// Package quadtour computes short closed tours through 2D city sets:
// heuristic Euclidean TSP, built for thousands of points rather than for
// proven optimality.
//
// 🚀 What is in the box?
//
//	• Nearest-neighbour construction, free or pinned at one or both ends
//	• 2-opt local search, plain or crossing-guided, with iteration and time budgets
//	• Quadrant decomposition: four anchored open paths stitched into one cycle
//	• Multi-start and Christofides-style baselines, MST lower bound for quality
//	• CSV / GeoJSON input, tour / GeoJSON / YAML report output, a cobra CLI
//
// Packages:
//
//	matrix/       — Matrix interface, row-major Dense, Euclidean builder
//	geom/         — line segments, intersection test, bounding boxes
//	quadrant/     — bisection into four quadrants, boundary anchors
//	tsp/          — constructors, 2-opt, segmented solver, dispatcher
//	tourio/       — readers and writers for cities, tours and reports
//	cmd/quadtour/ — the command-line driver (solve, batch)
//	examples/     — small runnable scenarios
//
// Quadrant layout (ids 1..4) and the anchored path through each:
//
//	  4 ─────── 3
//	  │ UL │ UR │      Q1: Left → Top      Q3: Right → Bottom
//	  ├────┼────┤      Q2: Top → Right     Q4: Bottom → Left
//	  │ LL │ LR │
//	  1 ─────── 2
//
//	go get github.com/katalvlaran/quadtour/tsp
package quadtour
