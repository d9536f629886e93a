package taylor

import (
	"fmt"

	"gonum.org/v1/gonum/diff/fd"
	"gonum.org/v1/gonum/stat/combin"
)

// DefaultStep is the sample spacing used by numeric derivatives when no
// positive step is specified.
const DefaultStep = 0.02

// Derivative computes the n-th derivative of some scalar function at t.
//
// Implementations may assume that n is non-negative; every function in this
// package that accepts an order from its caller validates it before calling a
// Derivative. The 0th derivative must be the function value itself.
type Derivative func(t float64, n int) float64

// Numeric returns a Derivative that estimates the derivatives of f with
// central finite differences.
//
// The n-th derivative at a is computed from n+1 samples of f, spaced h apart
// and centered on a, as the n-th difference of the samples divided by hⁿ. The
// 0th derivative is f(a), not an approximation of it. If h is not positive,
// [DefaultStep] is used.
//
// Accuracy degrades quickly with the order of the derivative. With the
// default step, derivatives beyond the 4th or 5th order are visibly noisy.
// Curves that need higher orders should provide exact derivatives.
func Numeric(f Func, h float64) Derivative {
	if h <= 0 {
		h = DefaultStep
	}
	return func(t float64, n int) float64 {
		if n == 0 {
			return f(t)
		}
		return fd.Derivative(f, t, &fd.Settings{Formula: centralFormula(n, h)})
	}
}

// centralFormula returns the n-th central difference on the stencil
// a + h/2·(−n, −n+2, …, n).
func centralFormula(n int, h float64) fd.Formula {
	stencil := make([]fd.Point, n+1)
	for k := range stencil {
		coeff := float64(combin.Binomial(n, k))
		if (n-k)%2 == 1 {
			coeff = -coeff
		}
		stencil[k] = fd.Point{
			Loc:   float64(k) - float64(n)/2,
			Coeff: coeff,
		}
	}
	return fd.Formula{
		Stencil:    stencil,
		Derivative: n,
		Step:       h,
	}
}

// Diff numerically estimates the n-th derivative of f at a, using sample
// spacing h. See [Numeric] for details.
func Diff(f Func, a float64, n int, h float64) (float64, error) {
	if n < 0 {
		return 0, fmt.Errorf("%w: %d", ErrNegativeOrder, n)
	}
	return Numeric(f, h)(a, n), nil
}

// DiffSlice is like [Diff] but estimates the derivative independently at every
// element of as.
func DiffSlice(f Func, as []float64, n int, h float64) ([]float64, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeOrder, n)
	}
	df := Numeric(f, h)
	out := make([]float64, len(as))
	for i, a := range as {
		out[i] = df(a, n)
	}
	return out, nil
}

// Eval evaluates the n-th derivative at t, rejecting negative orders.
func (df Derivative) Eval(t float64, n int) (float64, error) {
	if n < 0 {
		return 0, fmt.Errorf("%w: %d", ErrNegativeOrder, n)
	}
	return df(t, n), nil
}

// Add returns the derivative of the sum of the functions that df and o are
// derivatives of. This holds for every order.
func (df Derivative) Add(o Derivative) Derivative {
	return func(t float64, n int) float64 {
		return df(t, n) + o(t, n)
	}
}
