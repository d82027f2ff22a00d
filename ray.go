package affine3d

// Ray is an origin plus a direction. Immutable once built; transforming a
// ray (NewRay(M.MulPoint(o), M.MulVec(d))) is the caller's way of moving
// between object and world space.
type Ray struct {
	Origin    Point
	Direction Vector
}

func NewRay(origin Point, direction Vector) Ray {
	return Ray{Origin: origin, Direction: direction}
}

// Position returns the point at parameter t along the ray. Negative t is
// valid and lands behind the origin.
func (r Ray) Position(t Real) Point {
	return r.Origin.Add(r.Direction.Mul(t))
}

// Intersects returns the ray's intersections with a shape, ascending by t.
func (r Ray) Intersects(s Shape) []Intersection {
	return s.intersect(r)
}
