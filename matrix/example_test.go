package matrix_test

import (
	"fmt"

	"github.com/golang/geo/r2"

	"github.com/katalvlaran/quadtour/matrix"
)

// ExampleNewEuclidean builds the distance table for a 3-4-5 triangle.
func ExampleNewEuclidean() {
	pts := []r2.Point{{X: 0, Y: 0}, {X: 3, Y: 0}, {X: 3, Y: 4}}
	d, err := matrix.NewEuclidean(pts)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Print(d)
	// Output:
	// [0, 3, 5]
	// [3, 0, 4]
	// [5, 4, 0]
}
