package affine3d

import "math"

// Homogeneous transformation constructors. Each returns a fresh 4×4
// matrix; composition is plain matrix multiplication.

// Translation moves points by (x,y,z). Directions (W=0) pass through
// unchanged.
func Translation(x, y, z Real) Mat4 {
	M := I4()
	M.M[0][3], M.M[1][3], M.M[2][3] = x, y, z
	return M
}

// Scaling scales each axis independently. Negative factors reflect.
func Scaling(x, y, z Real) Mat4 {
	M := I4()
	M.M[0][0], M.M[1][1], M.M[2][2] = x, y, z
	return M
}

// RotationX rotates about the x axis by a radians (right-handed).
func RotationX(a Real) Mat4 {
	c, s := math.Cos(a), math.Sin(a)
	M := I4()
	M.M[1][1], M.M[1][2] = c, -s
	M.M[2][1], M.M[2][2] = s, c
	return M
}

// RotationY rotates about the y axis by a radians (right-handed).
func RotationY(a Real) Mat4 {
	c, s := math.Cos(a), math.Sin(a)
	M := I4()
	M.M[0][0], M.M[0][2] = c, s
	M.M[2][0], M.M[2][2] = -s, c
	return M
}

// RotationZ rotates about the z axis by a radians (right-handed).
func RotationZ(a Real) Mat4 {
	c, s := math.Cos(a), math.Sin(a)
	M := I4()
	M.M[0][0], M.M[0][1] = c, -s
	M.M[1][0], M.M[1][1] = s, c
	return M
}

// Shearing makes each coordinate change in proportion to the other two;
// xy is "x moved in proportion to y", and so on for the six coefficients.
func Shearing(xy, xz, yx, yz, zx, zy Real) Mat4 {
	M := I4()
	M.M[0][1], M.M[0][2] = xy, xz
	M.M[1][0], M.M[1][2] = yx, yz
	M.M[2][0], M.M[2][1] = zx, zy
	return M
}

// Fluent composition. Each step pre-multiplies, so a chain like
//
//	I4().RotateX(r).Scale(5, 5, 5).Translate(10, 5, 7)
//
// builds Translation·Scaling·RotationX and, applied to a point, performs
// the rotation first and the translation last — the chain reads in
// application order even though the matrix product runs the other way.

func (A Mat4) Translate(x, y, z Real) Mat4 { return Translation(x, y, z).Mul(A) }

func (A Mat4) Scale(x, y, z Real) Mat4 { return Scaling(x, y, z).Mul(A) }

func (A Mat4) RotateX(a Real) Mat4 { return RotationX(a).Mul(A) }

func (A Mat4) RotateY(a Real) Mat4 { return RotationY(a).Mul(A) }

func (A Mat4) RotateZ(a Real) Mat4 { return RotationZ(a).Mul(A) }

func (A Mat4) Shear(xy, xz, yx, yz, zx, zy Real) Mat4 {
	return Shearing(xy, xz, yx, yz, zx, zy).Mul(A)
}
