package affine3d

import "testing"

func TestIntersectSphere(t *testing.T) {
	r := NewRay(NewPoint(0, 0, -5), NewVector(0, 0, 1))
	s := NewSphere()
	xs := r.Intersects(s)
	if len(xs) != 2 {
		t.Fatalf("want 2 intersections, got %d", len(xs))
	}
	if xs[0].T != 4 || xs[1].T != 6 {
		t.Fatalf("t mismatch: %.12g, %.12g", xs[0].T, xs[1].T)
	}
	if xs[0].Object != Shape(s) || xs[1].Object != Shape(s) {
		t.Fatal("intersections do not reference the sphere")
	}
}

func TestIntersectSphereTangent(t *testing.T) {
	r := NewRay(NewPoint(0, 1, -5), NewVector(0, 0, 1))
	xs := r.Intersects(NewSphere())
	// a tangent hit is a degenerate pair, not a single value
	if len(xs) != 2 {
		t.Fatalf("want 2 intersections, got %d", len(xs))
	}
	if xs[0].T != 5 || xs[1].T != 5 {
		t.Fatalf("t mismatch: %.12g, %.12g", xs[0].T, xs[1].T)
	}
}

func TestIntersectSphereMiss(t *testing.T) {
	r := NewRay(NewPoint(0, 2, -5), NewVector(0, 0, 1))
	if xs := r.Intersects(NewSphere()); len(xs) != 0 {
		t.Fatalf("want miss, got %+v", xs)
	}
}

func TestIntersectSphereFromCenter(t *testing.T) {
	r := NewRay(NewPoint(0, 0, 0), NewVector(0, 0, 1))
	xs := r.Intersects(NewSphere())
	if len(xs) != 2 {
		t.Fatalf("want 2 intersections, got %d", len(xs))
	}
	if xs[0].T != -1 || xs[1].T != 1 {
		t.Fatalf("t mismatch: %.12g, %.12g", xs[0].T, xs[1].T)
	}
}

func TestIntersectSphereBehindRay(t *testing.T) {
	r := NewRay(NewPoint(0, 0, 5), NewVector(0, 0, 1))
	xs := r.Intersects(NewSphere())
	if len(xs) != 2 {
		t.Fatalf("want 2 intersections, got %d", len(xs))
	}
	// both behind the origin, still reported ascending
	if xs[0].T != -6 || xs[1].T != -4 {
		t.Fatalf("t mismatch: %.12g, %.12g", xs[0].T, xs[1].T)
	}
}

func TestIntersectionRecord(t *testing.T) {
	s := NewSphere()
	i := Intersection{T: 3.5, Object: s}
	if i.T != 3.5 || i.Object != Shape(s) {
		t.Fatalf("intersection record mismatch: %+v", i)
	}
}

func TestHit(t *testing.T) {
	s := NewSphere()
	xs := func(ts ...Real) []Intersection {
		out := make([]Intersection, 0, len(ts))
		for _, tv := range ts {
			out = append(out, Intersection{T: tv, Object: s})
		}
		return out
	}

	// all positive: the lowest wins
	if h, ok := Hit(xs(1, 2)); !ok || h.T != 1 {
		t.Fatalf("Hit mismatch: ok=%v %+v", ok, h)
	}
	// some negative: lowest non-negative wins
	if h, ok := Hit(xs(-1, 1)); !ok || h.T != 1 {
		t.Fatalf("Hit mismatch: ok=%v %+v", ok, h)
	}
	// all negative: no visible hit
	if _, ok := Hit(xs(-2, -1)); ok {
		t.Fatal("Hit found something behind the ray")
	}
	// unsorted input still yields the lowest non-negative
	if h, ok := Hit(xs(5, 7, -3, 2)); !ok || h.T != 2 {
		t.Fatalf("Hit mismatch: ok=%v %+v", ok, h)
	}
	if _, ok := Hit(nil); ok {
		t.Fatal("Hit on empty slice reported a hit")
	}
}
