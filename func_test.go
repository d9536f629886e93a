package taylor

import (
	"errors"
	"math"
	"testing"
)

func TestLinspace(t *testing.T) {
	diff(t, []float64{0, 0.25, 0.5, 0.75, 1}, Linspace(0, 1, 5, true))
	diff(t, []float64{0, 0.25, 0.5, 0.75}, Linspace(0, 1, 4, false))
	diff(t, []float64{3}, Linspace(3, 7, 1, true))
	diff(t, []float64{3}, Linspace(3, 7, 1, false))
	diff(t, []float64(nil), Linspace(3, 7, 0, true))
	diff(t, []float64(nil), Linspace(3, 7, -1, true))

	got := Linspace(0, 2*math.Pi, 5, true)
	diff(t, []float64{0, math.Pi / 2, math.Pi, 3 * math.Pi / 2, 2 * math.Pi}, got, approx(1e-12))
}

func TestFuncEval(t *testing.T) {
	f := Const(77.5)
	diff(t, []float64{77.5, 77.5, 77.5}, f.EvalSlice([]float64{0, 1, 2}))

	dst := make([]float64, 3)
	if err := Func(Ident).EvalInto(dst, []float64{4, 5, 6}); err != nil {
		t.Fatal(err)
	}
	diff(t, []float64{4, 5, 6}, dst)

	if err := f.EvalInto(make([]float64, 2), []float64{1, 2, 3}); !errors.Is(err, ErrShapeMismatch) {
		t.Errorf("got error %v, want ErrShapeMismatch", err)
	}
}
