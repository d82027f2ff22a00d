package affine3d

import "math"

// Epsilon is the tolerance for scalar comparisons. Everything built from
// floating-point arithmetic in this package (tuple equality, matrix
// equality, the singularity test in Inverse) compares through it.
const Epsilon = 1e-5

// RoughlyEqual reports whether a and b differ by less than Epsilon.
// NaN compares unequal to everything, including itself.
func RoughlyEqual(a, b Real) bool {
	return math.Abs(a-b) < Epsilon
}
