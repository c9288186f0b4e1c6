// Package matrix is a small row-major integer matrix used by the matrix
// exercises: fill, copy, transpose, main diagonal and sum.
package matrix

import (
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/i5heu/GoCourseLab/pkg/recursion"
)

var (
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")
	ErrOutOfRange        = errors.New("matrix: index out of range")
	ErrNonSquare         = errors.New("matrix: matrix is not square")
)

// Dense stores rows*cols cells in one flat slice.
type Dense struct {
	rows, cols int
	data       []int
}

func New(rows, cols int) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, rows, cols)
	}
	return &Dense{rows: rows, cols: cols, data: make([]int, rows*cols)}, nil
}

// FromRows copies a rectangular [][]int into a new Dense.
func FromRows(rows [][]int) (*Dense, error) {
	if len(rows) == 0 {
		return nil, ErrInvalidDimensions
	}
	m, err := New(len(rows), len(rows[0]))
	if err != nil {
		return nil, err
	}
	for i, r := range rows {
		if len(r) != m.cols {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrInvalidDimensions, i, len(r), m.cols)
		}
		copy(m.data[i*m.cols:], r)
	}
	return m, nil
}

func (m *Dense) Rows() int { return m.rows }
func (m *Dense) Cols() int { return m.cols }

func (m *Dense) index(i, j int) (int, error) {
	if i < 0 || i >= m.rows || j < 0 || j >= m.cols {
		return 0, fmt.Errorf("%w: (%d,%d) in %dx%d", ErrOutOfRange, i, j, m.rows, m.cols)
	}
	return i*m.cols + j, nil
}

func (m *Dense) At(i, j int) (int, error) {
	k, err := m.index(i, j)
	if err != nil {
		return 0, err
	}
	return m.data[k], nil
}

func (m *Dense) Set(i, j, v int) error {
	k, err := m.index(i, j)
	if err != nil {
		return err
	}
	m.data[k] = v
	return nil
}

// Fill writes values in [0, max) drawn from r into every cell.
// Passing a seeded *rand.Rand keeps the fill reproducible.
func (m *Dense) Fill(r *rand.Rand, max int) {
	for k := range m.data {
		m.data[k] = r.IntN(max)
	}
}

// Clone returns a deep copy; later writes to either matrix are not shared.
func (m *Dense) Clone() *Dense {
	data := make([]int, len(m.data))
	copy(data, m.data)
	return &Dense{rows: m.rows, cols: m.cols, data: data}
}

// Transpose returns a new cols×rows matrix with cell (i,j) moved to (j,i).
func (m *Dense) Transpose() *Dense {
	t := &Dense{rows: m.cols, cols: m.rows, data: make([]int, len(m.data))}
	for i := 0; i < m.rows; i++ {
		for j := 0; j < m.cols; j++ {
			t.data[j*t.cols+i] = m.data[i*m.cols+j]
		}
	}
	return t
}

// Diagonal returns the main diagonal of a square matrix.
func (m *Dense) Diagonal() ([]int, error) {
	if m.rows != m.cols {
		return nil, fmt.Errorf("%w: %dx%d", ErrNonSquare, m.rows, m.cols)
	}
	d := make([]int, m.rows)
	for i := range d {
		d[i] = m.data[i*m.cols+i]
	}
	return d, nil
}

// Sum adds every cell of a square matrix using recursion.MatrixSum.
func (m *Dense) Sum() (int, error) {
	if m.rows != m.cols {
		return 0, fmt.Errorf("%w: %dx%d", ErrNonSquare, m.rows, m.cols)
	}
	return recursion.MatrixSum(m.Slice())
}

// Slice returns the matrix as freshly allocated rows.
func (m *Dense) Slice() [][]int {
	out := make([][]int, m.rows)
	for i := range out {
		out[i] = make([]int, m.cols)
		copy(out[i], m.data[i*m.cols:(i+1)*m.cols])
	}
	return out
}

// Equal reports whether both matrices have the same shape and cells.
func (m *Dense) Equal(o *Dense) bool {
	if m.rows != o.rows || m.cols != o.cols {
		return false
	}
	for k := range m.data {
		if m.data[k] != o.data[k] {
			return false
		}
	}
	return true
}
