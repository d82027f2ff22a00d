package affine3d

import (
	"errors"
	"fmt"
)

// Shape/dimension errors are recoverable: the caller gets no malformed
// value to proceed with. Index errors are contract violations and panic.
var (
	// ErrShapeMismatch reports a values slice of the wrong length or
	// incompatible dimensions (multiplication, determinant of a
	// non-square matrix).
	ErrShapeMismatch = errors.New("matrix shape mismatch")
	// ErrSingular reports an inversion attempt on a matrix whose
	// determinant is roughly zero.
	ErrSingular = errors.New("matrix is singular")
)

// Matrix is a dense rows×cols grid of scalars, row-major. The zero value is
// not usable; construct through NewMatrix or MatrixWithValues. Matrices are
// transient values: Transpose, Mul, Submatrix and Inverse all return fresh
// matrices and never alias the receiver's storage.
type Matrix struct {
	rows, cols int
	data       []Real
}

// NewMatrix returns a zero-filled rows×cols matrix.
// Panics if either dimension is not positive.
func NewMatrix(rows, cols int) Matrix {
	if rows <= 0 || cols <= 0 {
		panic(fmt.Sprintf("matrix dimensions must be positive, got %dx%d", rows, cols))
	}
	return Matrix{rows: rows, cols: cols, data: make([]Real, rows*cols)}
}

// MatrixWithValues builds a rows×cols matrix from values in row-major order.
func MatrixWithValues(rows, cols int, values []Real) (Matrix, error) {
	if rows <= 0 || cols <= 0 {
		panic(fmt.Sprintf("matrix dimensions must be positive, got %dx%d", rows, cols))
	}
	if len(values) != rows*cols {
		return Matrix{}, fmt.Errorf("%w: %dx%d needs %d values, got %d",
			ErrShapeMismatch, rows, cols, rows*cols, len(values))
	}
	m := NewMatrix(rows, cols)
	copy(m.data, values)
	DebugLog("Created %dx%d matrix: %v", rows, cols, m.data)
	return m, nil
}

func (m Matrix) Rows() int { return m.rows }
func (m Matrix) Cols() int { return m.cols }

func (m Matrix) checkIndex(row, col int) {
	if row < 0 || row >= m.rows || col < 0 || col >= m.cols {
		panic(fmt.Sprintf("matrix index (%d,%d) out of range for %dx%d", row, col, m.rows, m.cols))
	}
}

// At returns the value at (row, col). Panics on an out-of-range index.
func (m Matrix) At(row, col int) Real {
	m.checkIndex(row, col)
	return m.data[m.cols*row+col]
}

// Set stores v at (row, col). Panics on an out-of-range index.
func (m Matrix) Set(row, col int, v Real) {
	m.checkIndex(row, col)
	m.data[m.cols*row+col] = v
}

// Equal compares component-wise within Epsilon. Matrices of different
// shapes are unequal, never an error.
func (m Matrix) Equal(o Matrix) bool {
	if m.rows != o.rows || m.cols != o.cols {
		return false
	}
	for i := range m.data {
		if !RoughlyEqual(m.data[i], o.data[i]) {
			return false
		}
	}
	return true
}

// Transpose returns the cols×rows matrix with rows and columns swapped.
func (m Matrix) Transpose() Matrix {
	r := NewMatrix(m.cols, m.rows)
	for row := 0; row < m.rows; row++ {
		for col := 0; col < m.cols; col++ {
			r.data[r.cols*col+row] = m.data[m.cols*row+col]
		}
	}
	return r
}

// Mul returns m×o. Each result cell (r,c) is the dot product of row r of m
// and column c of o.
func (m Matrix) Mul(o Matrix) (Matrix, error) {
	if m.cols != o.rows {
		return Matrix{}, fmt.Errorf("%w: cannot multiply %dx%d by %dx%d",
			ErrShapeMismatch, m.rows, m.cols, o.rows, o.cols)
	}
	r := NewMatrix(m.rows, o.cols)
	for row := 0; row < m.rows; row++ {
		for col := 0; col < o.cols; col++ {
			sum := 0.0
			for k := 0; k < m.cols; k++ {
				sum += m.data[m.cols*row+k] * o.data[o.cols*k+col]
			}
			r.data[r.cols*row+col] = sum
		}
	}
	return r, nil
}

// Determinant computes the determinant by cofactor expansion along row 0.
// Exponential in matrix size, which is fine for the 2x2–4x4 matrices this
// kernel deals in.
func (m Matrix) Determinant() (Real, error) {
	if m.rows != m.cols {
		return 0, fmt.Errorf("%w: determinant undefined for %dx%d", ErrShapeMismatch, m.rows, m.cols)
	}
	switch m.rows {
	case 1:
		return m.data[0], nil
	case 2:
		return m.data[0]*m.data[3] - m.data[1]*m.data[2], nil
	}
	det := 0.0
	for col := 0; col < m.cols; col++ {
		cf, err := m.Cofactor(0, col)
		if err != nil {
			return 0, err
		}
		det += m.data[col] * cf
	}
	return det, nil
}

// Submatrix returns a copy of m with the given row and column removed,
// preserving the relative order of what remains. Panics if m has only one
// row or column, or if the index is out of range.
func (m Matrix) Submatrix(row, col int) Matrix {
	if m.rows < 2 || m.cols < 2 {
		panic(fmt.Sprintf("no submatrix of a %dx%d matrix", m.rows, m.cols))
	}
	m.checkIndex(row, col)
	r := NewMatrix(m.rows-1, m.cols-1)
	i := 0
	for sr := 0; sr < m.rows; sr++ {
		if sr == row {
			continue
		}
		for sc := 0; sc < m.cols; sc++ {
			if sc == col {
				continue
			}
			r.data[i] = m.data[m.cols*sr+sc]
			i++
		}
	}
	return r
}

// Minor returns the determinant of the submatrix at (row, col).
func (m Matrix) Minor(row, col int) (Real, error) {
	return m.Submatrix(row, col).Determinant()
}

// Cofactor returns the minor at (row, col), negated when row+col is odd.
func (m Matrix) Cofactor(row, col int) (Real, error) {
	minor, err := m.Minor(row, col)
	if err != nil {
		return 0, err
	}
	if (row+col)%2 == 1 {
		return -minor, nil
	}
	return minor, nil
}

// Invertible reports whether m is square with a determinant not roughly
// equal to zero.
func (m Matrix) Invertible() bool {
	det, err := m.Determinant()
	if err != nil {
		return false
	}
	return !RoughlyEqual(det, 0)
}

// Inverse computes the classical adjugate-over-determinant inverse:
// out[col][row] = cofactor(row,col) / det, the transpose folded into the
// index swap. Returns ErrSingular when the determinant is roughly zero.
func (m Matrix) Inverse() (Matrix, error) {
	det, err := m.Determinant()
	if err != nil {
		return Matrix{}, err
	}
	if RoughlyEqual(det, 0) {
		return Matrix{}, fmt.Errorf("%w: determinant %.6g", ErrSingular, det)
	}
	r := NewMatrix(m.rows, m.cols)
	for row := 0; row < m.rows; row++ {
		for col := 0; col < m.cols; col++ {
			cf, err := m.Cofactor(row, col)
			if err != nil {
				return Matrix{}, err
			}
			r.data[r.cols*col+row] = cf / det
		}
	}
	return r, nil
}
