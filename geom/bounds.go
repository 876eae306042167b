package geom

import "github.com/golang/geo/r2"

// Bounds returns the smallest closed axis-aligned rectangle containing pts.
// An empty input yields r2.EmptyRect().
//
// Complexity: O(n).
func Bounds(pts []r2.Point) r2.Rect {
	if len(pts) == 0 {
		return r2.EmptyRect()
	}

	return r2.RectFromPoints(pts...)
}
