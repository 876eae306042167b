// Package geom holds the small amount of plane geometry the solvers need:
// bounding boxes of city sets and the line-segment intersection test used by
// crossing-guided 2-opt.
//
// Points and rectangles are github.com/golang/geo/r2 values so the quadrant
// decomposer and the segment tester share one coordinate vocabulary.
package geom
