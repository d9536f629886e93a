package taylor

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

func sinDerivative(t float64, n int) float64 { return SinPrime(n)(t) }
func cosDerivative(t float64, n int) float64 { return CosPrime(n)(t) }

func TestExpandCos(t *testing.T) {
	// numeric derivatives
	p, err := Expand(math.Cos, 0, 2, nil)
	if err != nil {
		t.Fatal(err)
	}
	diff(t, []float64{1, 0.5, -1, -3.5}, p.EvalSlice([]float64{0, 1, 2, 3}), approx(2e-4))
}

func TestExpandSin(t *testing.T) {
	p, err := Expand(math.Sin, 0, 3, sinDerivative)
	if err != nil {
		t.Fatal(err)
	}
	diff(t, Poly{0, 1, 0, -1.0 / 6}, p, approx(1e-15))
	diff(t, []float64{0, 5.0 / 6, 2.0 / 3, -1.5}, p.EvalSlice([]float64{0, 1, 2, 3}), approx(1e-12))
}

func TestExpandDegreeZero(t *testing.T) {
	p, err := Expand(math.Exp, 1.5, 0, nil)
	if err != nil {
		t.Fatal(err)
	}
	diff(t, Poly{math.Exp(1.5)}, p)
}

func TestExpandNegativeDegree(t *testing.T) {
	if _, err := Expand(math.Exp, 0, -1, nil); !errors.Is(err, ErrNegativeDegree) {
		t.Errorf("got error %v, want ErrNegativeDegree", err)
	}
	if _, err := expandBasis(math.Exp, 0, -1, nil); !errors.Is(err, ErrNegativeDegree) {
		t.Errorf("got error %v, want ErrNegativeDegree", err)
	}
}

func TestExpandReproducesPolynomials(t *testing.T) {
	p := Poly{1, -2, 0.5, 3}
	for _, a := range []float64{0, 1.5, -2} {
		got, err := Expand(p.Eval, a, 3, p.Derivative())
		if err != nil {
			t.Fatal(err)
		}
		diff(t, p, got, approx(1e-9))

		got, err = Expand(p.Eval, a, 5, p.Derivative())
		if err != nil {
			t.Fatal(err)
		}
		diff(t, Poly{1, -2, 0.5, 3, 0, 0}, got, approx(1e-9))
	}
}

func TestExpandAgreesAtExpansionPoint(t *testing.T) {
	// p⁽ᵏ⁾(a) = f⁽ᵏ⁾(a) for k ≤ degree
	for _, a := range []float64{-1, 0, 0.5, 2} {
		p, err := Expand(math.Sin, a, 6, sinDerivative)
		if err != nil {
			t.Fatal(err)
		}
		for k := 0; k <= 6; k++ {
			got := p.Deriv(k).Eval(a)
			want := SinPrime(k)(a)
			if math.Abs(got-want) > 1e-9 {
				t.Errorf("a = %v, k = %d: got %v, want %v", a, k, got, want)
			}
		}
		if d := p.Degree(); d > 6 {
			t.Errorf("got degree %d, want at most 6", d)
		}
	}
}

func TestExpandStrategiesAgree(t *testing.T) {
	funcs := []struct {
		f  Func
		df Derivative
	}{
		{math.Sin, sinDerivative},
		{math.Cos, cosDerivative},
		{math.Exp, nil},
	}
	opt := cmpopts.EquateApprox(1e-9, 1e-9)
	for _, fn := range funcs {
		for _, a := range []float64{0, 0.3, -1, 3} {
			for degree := range 9 {
				want, err := expandBasis(fn.f, a, degree, fn.df)
				if err != nil {
					t.Fatal(err)
				}
				got, err := Expand(fn.f, a, degree, fn.df)
				if err != nil {
					t.Fatal(err)
				}
				diff(t, want, got, opt)
			}
		}
	}
}
