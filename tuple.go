package affine3d

import "math"

type Real = float64

// Tuple is the shared homogeneous 4-component representation behind Point
// and Vector. The W component distinguishes the two: 1 for points (affected
// by translation), 0 for directions (not affected). Arithmetic here is
// untyped and propagates W as-is; the typed wrappers below expose only the
// combinations that make geometric sense.
type Tuple struct {
	X, Y, Z, W Real
}

func (a Tuple) Add(b Tuple) Tuple { return Tuple{a.X + b.X, a.Y + b.Y, a.Z + b.Z, a.W + b.W} }
func (a Tuple) Sub(b Tuple) Tuple { return Tuple{a.X - b.X, a.Y - b.Y, a.Z - b.Z, a.W - b.W} }
func (t Tuple) Mul(s Real) Tuple  { return Tuple{t.X * s, t.Y * s, t.Z * s, t.W * s} }
func (t Tuple) Div(s Real) Tuple  { return Tuple{t.X / s, t.Y / s, t.Z / s, t.W / s} }
func (t Tuple) Neg() Tuple        { return Tuple{-t.X, -t.Y, -t.Z, -t.W} }

// Dot returns the 4-component dot product. For two W=0 vectors this is the
// usual 3D dot product.
func (a Tuple) Dot(b Tuple) Real {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z + a.W*b.W
}

// Len returns the Euclidean length of the tuple.
func (t Tuple) Len() Real { return math.Sqrt(t.Dot(t)) }

// Norm returns a unit-length version of the tuple.
// If the tuple is zero, it returns the input unchanged.
func (t Tuple) Norm() Tuple {
	l := t.Len()
	if l == 0 {
		return t
	}
	return Tuple{t.X / l, t.Y / l, t.Z / l, t.W / l}
}

// Equal compares component-wise within Epsilon.
func (a Tuple) Equal(b Tuple) bool {
	return RoughlyEqual(a.X, b.X) && RoughlyEqual(a.Y, b.Y) &&
		RoughlyEqual(a.Z, b.Z) && RoughlyEqual(a.W, b.W)
}

// IsPoint reports whether the tuple has W=1.
func (t Tuple) IsPoint() bool { return t.W == 1 }

// IsVector reports whether the tuple has W=0.
func (t Tuple) IsVector() bool { return t.W == 0 }

// Point is a position in 3D space (W=1).
type Point Tuple

// Vector is a direction (not a position) in 3D space (W=0).
type Vector Tuple

// NewPoint builds a Point with W=1.
func NewPoint(x, y, z Real) Point { return Point{x, y, z, 1} }

// NewVector builds a Vector with W=0.
func NewVector(x, y, z Real) Vector { return Vector{x, y, z, 0} }

// Add translates a Point by a Vector.
func (p Point) Add(v Vector) Point { return Point(Tuple(p).Add(Tuple(v))) }

// Sub returns the Vector pointing from q to p.
func (p Point) Sub(q Point) Vector { return Vector(Tuple(p).Sub(Tuple(q))) }

// SubVector moves a Point backwards along a Vector.
func (p Point) SubVector(v Vector) Point { return Point(Tuple(p).Sub(Tuple(v))) }

func (p Point) Equal(q Point) bool { return Tuple(p).Equal(Tuple(q)) }

// Vector functions
func (a Vector) Add(b Vector) Vector { return Vector(Tuple(a).Add(Tuple(b))) }
func (a Vector) Sub(b Vector) Vector { return Vector(Tuple(a).Sub(Tuple(b))) }
func (v Vector) Mul(s Real) Vector   { return Vector(Tuple(v).Mul(s)) }
func (v Vector) Div(s Real) Vector   { return Vector(Tuple(v).Div(s)) }
func (v Vector) Neg() Vector         { return Vector(Tuple(v).Neg()) }

// Dot returns the dot product between two vectors.
func (a Vector) Dot(b Vector) Real { return Tuple(a).Dot(Tuple(b)) }

// Cross returns the 3D cross product. Anticommutative:
// a.Cross(b) == b.Cross(a).Neg().
func (a Vector) Cross(b Vector) Vector {
	return NewVector(
		a.Y*b.Z-a.Z*b.Y,
		a.Z*b.X-a.X*b.Z,
		a.X*b.Y-a.Y*b.X,
	)
}

// Len returns the Euclidean length of the vector.
func (v Vector) Len() Real { return Tuple(v).Len() }

// Norm returns a unit-length version of the vector.
// If the vector is zero, it returns the input unchanged.
func (v Vector) Norm() Vector { return Vector(Tuple(v).Norm()) }

func (a Vector) Equal(b Vector) bool { return Tuple(a).Equal(Tuple(b)) }
