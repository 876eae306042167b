package matrix

import (
	"fmt"
	"slices"
	"strings"
)

// denseErrorf names the Dense method and the offending cell.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense stores an r×c table row-major in one flat slice.
type Dense struct {
	r, c int
	data []float64 // len == r*c; (i,j) at i*c+j
}

var _ Matrix = (*Dense)(nil)

// NewDense allocates a zeroed rows×cols table; both must be positive.
func NewDense(rows, cols int) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}

	return &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}, nil
}

func (m *Dense) Rows() int { return m.r }

func (m *Dense) Cols() int { return m.c }

// indexOf maps (row, col) to its offset in data.
func (m *Dense) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, denseErrorf(method, row, col, ErrIndexOutOfBounds)
	}

	return row*m.c + col, nil
}

// At returns the entry at (row, col).
func (m *Dense) At(row, col int) (float64, error) {
	idx, err := m.indexOf("At", row, col)
	if err != nil {
		return 0, err
	}

	return m.data[idx], nil
}

// Set stores v at (row, col).
func (m *Dense) Set(row, col int, v float64) error {
	idx, err := m.indexOf("Set", row, col)
	if err != nil {
		return err
	}
	m.data[idx] = v

	return nil
}

// Raw returns the shared row-major backing slice; (i,j) lives at i*Cols()+j.
// Callers must not write through it.
func (m *Dense) Raw() []float64 { return m.data }

// Clone returns a deep copy.
func (m *Dense) Clone() Matrix {
	return &Dense{r: m.r, c: m.c, data: slices.Clone(m.data)}
}

// String prints one bracketed row per line, e.g. "[0, 3]\n[3, 0]\n".
func (m *Dense) String() string {
	var (
		sb   strings.Builder
		i, j int
	)
	for i = 0; i < m.r; i++ {
		sb.WriteByte('[')
		for j = 0; j < m.c; j++ {
			if j > 0 {
				sb.WriteString(", ")
			}
			fmt.Fprintf(&sb, "%g", m.data[i*m.c+j])
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}
