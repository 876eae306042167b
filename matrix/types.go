package matrix

// Matrix is the read/write view of a square distance table that the solvers
// accept. Indices are city ids.
//
// All methods are O(1) except Clone, which copies every element.
type Matrix interface {
	// Rows is the number of rows (cities).
	Rows() int

	// Cols is the number of columns; equal to Rows for distance tables.
	Cols() int

	// At returns entry (i, j) or ErrIndexOutOfBounds.
	At(i, j int) (float64, error)

	// Set stores v at (i, j) or returns ErrIndexOutOfBounds.
	Set(i, j int, v float64) error

	// Clone returns an independent deep copy.
	Clone() Matrix
}
