package taylor

import (
	"errors"
	"math"
	"testing"

	"gonum.org/v1/gonum/diff/fd"
)

func TestCentralFormula(t *testing.T) {
	want := fd.Formula{
		Stencil:    []fd.Point{{Loc: -1, Coeff: 1}, {Loc: 0, Coeff: -2}, {Loc: 1, Coeff: 1}},
		Derivative: 2,
		Step:       0.5,
	}
	diff(t, want, centralFormula(2, 0.5))

	want = fd.Formula{
		Stencil: []fd.Point{
			{Loc: -1.5, Coeff: -1},
			{Loc: -0.5, Coeff: 3},
			{Loc: 0.5, Coeff: -3},
			{Loc: 1.5, Coeff: 1},
		},
		Derivative: 3,
		Step:       0.02,
	}
	diff(t, want, centralFormula(3, 0.02))
}

func TestDiffSin(t *testing.T) {
	tests := []struct {
		n    int
		h    float64
		want float64
		tol  float64
	}{
		{1, 1e-3, math.Cos(1), 1e-6},
		{2, 1e-3, -math.Sin(1), 1e-6},
		{3, 1e-2, -math.Cos(1), 1e-4},
		{4, 2e-2, math.Sin(1), 1e-3},
	}
	for _, tt := range tests {
		got, err := Diff(math.Sin, 1, tt.n, tt.h)
		if err != nil {
			t.Fatal(err)
		}
		if math.Abs(got-tt.want) > tt.tol {
			t.Errorf("order %d: got %v, want %v±%g", tt.n, got, tt.want, tt.tol)
		}
	}

	// sin'(π) = -1
	got, err := Diff(math.Sin, math.Pi, 1, 0)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(got+1) > 1e-4 {
		t.Errorf("got %v, want -1", got)
	}
}

func TestDiffOrderZero(t *testing.T) {
	got, err := Diff(math.Sin, 0.7, 0, DefaultStep)
	if err != nil {
		t.Fatal(err)
	}
	if got != math.Sin(0.7) {
		t.Errorf("got %v, want exactly %v", got, math.Sin(0.7))
	}
}

func TestDiffDefaultStep(t *testing.T) {
	f := Func(math.Exp)
	want, _ := Diff(f, 0.3, 2, DefaultStep)
	for _, h := range []float64{0, -1} {
		got, err := Diff(f, 0.3, 2, h)
		if err != nil {
			t.Fatal(err)
		}
		if got != want {
			t.Errorf("h = %v: got %v, want %v", h, got, want)
		}
	}
}

func TestDiffPolynomialsExactly(t *testing.T) {
	// the n-th difference of a polynomial of degree n is exact
	cube := func(t float64) float64 { return t * t * t }
	got, err := Diff(cube, 2, 3, DefaultStep)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(got-6) > 1e-6 {
		t.Errorf("got %v, want 6", got)
	}
	got, err = Diff(cube, 2, 4, DefaultStep)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(got) > 1e-3 {
		t.Errorf("got %v, want 0", got)
	}
}

func TestDiffSlice(t *testing.T) {
	as := []float64{0, math.Pi / 2, math.Pi}
	got, err := DiffSlice(math.Sin, as, 1, 1e-3)
	if err != nil {
		t.Fatal(err)
	}
	diff(t, []float64{1, 0, -1}, got, approx(1e-6))

	got, err = DiffSlice(math.Sin, nil, 1, 0)
	if err != nil {
		t.Fatal(err)
	}
	diff(t, []float64{}, got)
}

func TestNegativeOrder(t *testing.T) {
	if _, err := Diff(math.Sin, 0, -1, 0); !errors.Is(err, ErrNegativeOrder) {
		t.Errorf("Diff: got error %v, want ErrNegativeOrder", err)
	}
	if _, err := DiffSlice(math.Sin, []float64{0}, -1, 0); !errors.Is(err, ErrNegativeOrder) {
		t.Errorf("DiffSlice: got error %v, want ErrNegativeOrder", err)
	}
	if _, err := Numeric(math.Sin, 0).Eval(0, -2); !errors.Is(err, ErrNegativeOrder) {
		t.Errorf("Derivative.Eval: got error %v, want ErrNegativeOrder", err)
	}
}

func TestDerivativeAdd(t *testing.T) {
	sin := Derivative(func(t float64, n int) float64 { return SinPrime(n)(t) })
	cos := Derivative(func(t float64, n int) float64 { return CosPrime(n)(t) })
	sum := sin.Add(cos)
	for n := range 6 {
		got, err := sum.Eval(0.4, n)
		if err != nil {
			t.Fatal(err)
		}
		want := SinPrime(n)(0.4) + CosPrime(n)(0.4)
		if got != want {
			t.Errorf("order %d: got %v, want %v", n, got, want)
		}
	}
}

func TestSinCosPrime(t *testing.T) {
	var sins, coss []float64
	for n := range 8 {
		sins = append(sins, SinPrime(n)(0))
		coss = append(coss, CosPrime(n)(0))
	}
	diff(t, []float64{0, 1, 0, -1, 0, 1, 0, -1}, sins)
	diff(t, []float64{1, 0, -1, 0, 1, 0, -1, 0}, coss)

	for n := range 12 {
		for _, x := range []float64{-2, 0.5, 3} {
			if SinPrime(n + 4)(x) != SinPrime(n)(x) {
				t.Errorf("SinPrime isn't periodic at n = %d", n)
			}
			if CosPrime(n)(x) != SinPrime(n + 1)(x) {
				t.Errorf("CosPrime(%d) != SinPrime(%d)", n, n+1)
			}
		}
	}
}
