package affine3d

// Shape is the closed set of intersectable geometry kinds. The unexported
// method keeps the set closed to this package: a new shape is added by
// writing its intersect routine here, not by implementing an open
// interface elsewhere.
type Shape interface {
	intersect(r Ray) []Intersection
}

// Intersection records one crossing: the t-value along the ray and the
// shape that was hit. Produced by an intersect call and consumed right
// away; the kernel keeps no intersection state.
type Intersection struct {
	T      Real
	Object Shape
}

// Hit selects the visible intersection: the one with the lowest
// non-negative t. Returns false when every intersection lies behind the
// ray origin (or xs is empty).
func Hit(xs []Intersection) (Intersection, bool) {
	best := Intersection{}
	found := false
	for _, x := range xs {
		if x.T < 0 {
			continue
		}
		if !found || x.T < best.T {
			best, found = x, true
		}
	}
	return best, found
}

// Compile time check that every shape kind satisfies the contract.
var _ Shape = (*Sphere)(nil)
