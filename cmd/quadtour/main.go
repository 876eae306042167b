// Command quadtour computes short closed tours through 2D city sets.
package main

import "github.com/katalvlaran/quadtour/cmd/quadtour/cmd"

func main() {
	cmd.Execute()
}
