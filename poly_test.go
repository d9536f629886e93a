package taylor

import (
	"errors"
	"testing"
)

func TestPolyEval(t *testing.T) {
	p := Poly{1, -2, 0.5}
	diff(t, []float64{1, -0.5, -1, -0.5}, p.EvalSlice([]float64{0, 1, 2, 3}))
	diff(t, 0.0, Poly(nil).Eval(3))

	dst := make([]float64, 2)
	if err := p.EvalInto(dst, []float64{0, 2}); err != nil {
		t.Fatal(err)
	}
	diff(t, []float64{1, -1}, dst)
	if err := p.EvalInto(dst, []float64{0}); !errors.Is(err, ErrShapeMismatch) {
		t.Errorf("got error %v, want ErrShapeMismatch", err)
	}
}

func TestPolyDegree(t *testing.T) {
	diff(t, -1, Poly(nil).Degree())
	diff(t, -1, Poly{0, 0}.Degree())
	diff(t, 0, Poly{3}.Degree())
	diff(t, 2, Poly{1, 0, 4, 0}.Degree())
}

func TestPolyArithmetic(t *testing.T) {
	p := Poly{1, 2}
	q := Poly{-1, 0, 3}
	diff(t, Poly{0, 2, 3}, p.Add(q))
	diff(t, Poly{0, 2, 3}, q.Add(p))
	diff(t, Poly{2, 4}, p.Scale(2))
	// (1 + 2t)(−1 + 3t²) = −1 − 2t + 3t² + 6t³
	diff(t, Poly{-1, -2, 3, 6}, p.Mul(q))
	diff(t, Poly(nil), p.Mul(nil))
	// operands are untouched
	diff(t, Poly{1, 2}, p)
	diff(t, Poly{-1, 0, 3}, q)
}

func TestPolyDeriv(t *testing.T) {
	p := Poly{5, 1, 2, 3}
	diff(t, p, p.Deriv(0))
	diff(t, Poly{1, 4, 9}, p.Deriv(1))
	diff(t, Poly{4, 18}, p.Deriv(2))
	diff(t, Poly{18}, p.Deriv(3))
	diff(t, Poly(nil), p.Deriv(4))

	df := p.Derivative()
	diff(t, p.Eval(2), df(2, 0))
	diff(t, 1+4*2+9*4.0, df(2, 1))
	diff(t, 0.0, df(2, 7))
}

func TestPolyString(t *testing.T) {
	tests := []struct {
		p    Poly
		want string
	}{
		{nil, "0"},
		{Poly{0, 0}, "0"},
		{Poly{-1}, "-1"},
		{Poly{1, 2, -3}, "1 + 2·t - 3·t^2"},
		{Poly{0, 0, 1}, "1·t^2"},
		{Poly{0, -0.5, 0, 0.25}, "-0.5·t + 0.25·t^3"},
	}
	for _, tt := range tests {
		diff(t, tt.want, tt.p.String())
	}
}
