// SPDX-License-Identifier: MIT
package matrix

import "fmt"

// denseErrorf wraps an underlying error with Dense method context.
// Example message shape: "Dense.At(3,7): matrix: index out of range".
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix: r,c are dimensions, data holds r*c
// elements in row-major order (element (i,j) at data[i*c+j]).
type Dense struct {
	r, c int
	data []float64
}

// NewDense creates an r×c Dense initialized to zeros.
// Complexity: O(r*c).
func NewDense(rows, cols int) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrBadShape
	}
	if rows > 0 && cols > (1<<62)/rows {
		return nil, ErrOverflow
	}

	return &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}, nil
}

// NewDenseColumnMajor builds an n×m Dense from a column-major source slice:
// element (i,j) lives at src[j*n+i]. The diversity variant ingests its
// distance matrix through it; the variance variant's features are copied
// by point.NewStore instead. Complexity: O(n*m).
func NewDenseColumnMajor(src []float64, n, m int) (*Dense, error) {
	d, err := NewDense(n, m)
	if err != nil {
		return nil, err
	}
	if len(src) != n*m {
		return nil, ErrDimensionMismatch
	}

	var i, j int
	for j = 0; j < m; j++ {
		for i = 0; i < n; i++ {
			d.data[i*m+j] = src[j*n+i]
		}
	}

	return d, nil
}

// Rows returns the number of rows. Complexity: O(1).
func (d *Dense) Rows() int { return d.r }

// Cols returns the number of columns. Complexity: O(1).
func (d *Dense) Cols() int { return d.c }

// indexOf computes the flat offset for (row,col), bounds-checked.
func (d *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= d.r {
		return 0, denseErrorf("At", row, col, ErrOutOfRange)
	}
	if col < 0 || col >= d.c {
		return 0, denseErrorf("At", row, col, ErrOutOfRange)
	}

	return row*d.c + col, nil
}

// At retrieves the element at (row,col). Complexity: O(1).
func (d *Dense) At(row, col int) (float64, error) {
	off, err := d.indexOf(row, col)
	if err != nil {
		return 0, err
	}

	return d.data[off], nil
}

// Set writes v at (row,col). Complexity: O(1).
func (d *Dense) Set(row, col int, v float64) error {
	off, err := d.indexOf(row, col)
	if err != nil {
		return err
	}
	d.data[off] = v

	return nil
}

// Row returns a copy of row i as a fresh []float64 of length Cols().
// Complexity: O(cols).
func (d *Dense) Row(i int) ([]float64, error) {
	if i < 0 || i >= d.r {
		return nil, denseErrorf("Row", i, 0, ErrOutOfRange)
	}
	out := make([]float64, d.c)
	copy(out, d.data[i*d.c:(i+1)*d.c])

	return out, nil
}

// Clone returns a deep copy of the matrix. Complexity: O(r*c).
func (d *Dense) Clone() *Dense {
	cp := make([]float64, len(d.data))
	copy(cp, d.data)

	return &Dense{r: d.r, c: d.c, data: cp}
}
