package affine3d

import "math"

// Sphere is the unit sphere centered at the origin of its own object
// space. It carries no transform: callers move the ray into object space
// (or the sphere into world space via an inverse) before intersecting.
type Sphere struct{}

func NewSphere() *Sphere {
	s := &Sphere{}
	DebugLog("Created sphere: %+v", s)
	return s
}

// Solve ||O + tD||² = 1 for the unit sphere.
func (s *Sphere) intersect(r Ray) []Intersection {
	sphereToRay := r.Origin.Sub(NewPoint(0, 0, 0))

	a := r.Direction.Dot(r.Direction)
	b := 2 * r.Direction.Dot(sphereToRay)
	c := sphereToRay.Dot(sphereToRay) - 1

	disc := b*b - 4*a*c
	if disc < 0 {
		return nil
	}
	sqrtD := math.Sqrt(disc)
	t1 := (-b - sqrtD) / (2 * a)
	t2 := (-b + sqrtD) / (2 * a)

	// t1 ≤ t2 always; a tangent hit is the degenerate pair t1 == t2.
	// Negative roots stay in: filtering by visibility is Hit's job.
	return []Intersection{
		{T: t1, Object: s},
		{T: t2, Object: s},
	}
}
