package matrix

import "errors"

var (
	// ErrInvalidDimensions is returned for a non-positive size or an empty city list.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange is returned by At and Set for an index outside the table.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNaNInf is returned by NewEuclidean for a NaN or ±Inf coordinate.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")
)

// ErrIndexOutOfBounds is the same sentinel as ErrOutOfRange.
//
// Deprecated: use ErrOutOfRange.
var ErrIndexOutOfBounds = ErrOutOfRange
