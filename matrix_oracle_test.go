package affine3d

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/mat"
)

// Cross-checks of the cofactor-expansion engine against gonum's LU-based
// routines on the sizes this kernel actually uses.

func toDense(m Matrix) *mat.Dense {
	d := mat.NewDense(m.Rows(), m.Cols(), nil)
	for r := 0; r < m.Rows(); r++ {
		for c := 0; c < m.Cols(); c++ {
			d.Set(r, c, m.At(r, c))
		}
	}
	return d
}

func TestDeterminantAgainstGonum(t *testing.T) {
	fixtures := []Matrix{
		mustMatrix(t, 2, 2, []Real{1, 5, -3, 2}),
		mustMatrix(t, 3, 3, []Real{1, 2, 6, -5, 8, -4, 2, 6, 4}),
		mustMatrix(t, 4, 4, []Real{
			-2, -8, 3, 5,
			-3, 1, 7, 3,
			1, 2, -9, 6,
			-6, 7, 7, -9,
		}),
		Translation(5, -3, 2).Mul(Scaling(2, 3, 4)).Mul(RotationY(0.3)).Matrix(),
	}
	for i, m := range fixtures {
		det, err := m.Determinant()
		if err != nil {
			t.Fatal(err)
		}
		want := mat.Det(toDense(m))
		if math.Abs(det-want) > 1e-9*math.Max(1, math.Abs(want)) {
			t.Fatalf("fixture %d: det %.12g, gonum says %.12g", i, det, want)
		}
	}
}

func TestInverseAgainstGonum(t *testing.T) {
	fixtures := []Matrix{
		mustMatrix(t, 4, 4, []Real{
			-5, 2, 6, -8,
			1, -5, 1, 8,
			7, 7, -6, -7,
			1, -3, 7, 4,
		}),
		I4().RotateX(0.5).Scale(2, 3, 4).Translate(1, -2, 3).Matrix(),
		mustMatrix(t, 3, 3, []Real{3, 5, 0, 2, -1, -7, 6, -1, 5}),
	}
	for i, m := range fixtures {
		inv, err := m.Inverse()
		if err != nil {
			t.Fatal(err)
		}
		var want mat.Dense
		if err := want.Inverse(toDense(m)); err != nil {
			t.Fatal(err)
		}
		for r := 0; r < m.Rows(); r++ {
			for c := 0; c < m.Cols(); c++ {
				if math.Abs(inv.At(r, c)-want.At(r, c)) > 1e-9 {
					t.Fatalf("fixture %d: inverse[%d][%d] = %.12g, gonum says %.12g",
						i, r, c, inv.At(r, c), want.At(r, c))
				}
			}
		}
	}
}
