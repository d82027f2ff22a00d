package affine3d

import "fmt"

// Mat4 is a 4×4 matrix (row-major), the shape every affine transformation
// in this kernel takes. The fixed layout keeps the hot-path products
// allocation-free; the algorithmic operations (determinant, inversion)
// delegate to the general Matrix engine.
type Mat4 struct {
	M [4][4]Real
}

// I4 returns the 4×4 identity, the neutral element for transformation
// composition.
func I4() Mat4 {
	return Mat4{M: [4][4]Real{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}}
}

func (A Mat4) Mul(B Mat4) Mat4 {
	var R Mat4
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			sum := 0.0
			for k := 0; k < 4; k++ {
				sum += A.M[r][k] * B.M[k][c]
			}
			R.M[r][c] = sum
		}
	}
	return R
}

func (A Mat4) Transpose() Mat4 {
	var R Mat4
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			R.M[r][c] = A.M[c][r]
		}
	}
	return R
}

// MulTuple applies A to a raw homogeneous tuple.
func (A Mat4) MulTuple(t Tuple) Tuple {
	return Tuple{
		A.M[0][0]*t.X + A.M[0][1]*t.Y + A.M[0][2]*t.Z + A.M[0][3]*t.W,
		A.M[1][0]*t.X + A.M[1][1]*t.Y + A.M[1][2]*t.Z + A.M[1][3]*t.W,
		A.M[2][0]*t.X + A.M[2][1]*t.Y + A.M[2][2]*t.Z + A.M[2][3]*t.W,
		A.M[3][0]*t.X + A.M[3][1]*t.Y + A.M[3][2]*t.Z + A.M[3][3]*t.W,
	}
}

// MulPoint applies A to a point (W=1, so the translation column takes
// effect).
func (A Mat4) MulPoint(p Point) Point { return Point(A.MulTuple(Tuple(p))) }

// MulVec applies A to a direction (W=0, so translation falls away — a
// property of the matrix form, not a special case here).
func (A Mat4) MulVec(v Vector) Vector { return Vector(A.MulTuple(Tuple(v))) }

// Equal compares component-wise within Epsilon.
func (A Mat4) Equal(B Mat4) bool {
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			if !RoughlyEqual(A.M[r][c], B.M[r][c]) {
				return false
			}
		}
	}
	return true
}

// Matrix copies A into the general engine's representation.
func (A Mat4) Matrix() Matrix {
	m := NewMatrix(4, 4)
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			m.data[4*r+c] = A.M[r][c]
		}
	}
	return m
}

// Mat4FromMatrix converts a general matrix back to the fixed 4×4 form.
func Mat4FromMatrix(m Matrix) (Mat4, error) {
	if m.rows != 4 || m.cols != 4 {
		return Mat4{}, fmt.Errorf("%w: want 4x4, got %dx%d", ErrShapeMismatch, m.rows, m.cols)
	}
	var A Mat4
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			A.M[r][c] = m.data[4*r+c]
		}
	}
	return A, nil
}

// Determinant expands A through the general cofactor engine.
func (A Mat4) Determinant() Real {
	det, _ := A.Matrix().Determinant() // 4x4 is always square
	return det
}

// Invertible reports whether the determinant is not roughly zero.
func (A Mat4) Invertible() bool { return A.Matrix().Invertible() }

// Inverse inverts A via the adjugate formula in the general engine.
// Returns ErrSingular for a degenerate transform (e.g. a zero scale).
func (A Mat4) Inverse() (Mat4, error) {
	inv, err := A.Matrix().Inverse()
	if err != nil {
		return Mat4{}, err
	}
	return Mat4FromMatrix(inv)
}
