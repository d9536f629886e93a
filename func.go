package taylor

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// Func is a scalar function of a curve parameter, such as one of the
// coordinates of a parametric curve.
//
// Funcs must be pure: evaluating a Func at the same t must always produce the
// same result.
type Func func(t float64) float64

// EvalSlice evaluates f at every element of ts.
func (f Func) EvalSlice(ts []float64) []float64 {
	out := make([]float64, len(ts))
	for i, t := range ts {
		out[i] = f(t)
	}
	return out
}

// EvalInto evaluates f at every element of ts and stores the results in dst.
// It returns [ErrShapeMismatch] if dst and ts differ in length.
func (f Func) EvalInto(dst, ts []float64) error {
	if len(dst) != len(ts) {
		return fmt.Errorf("%w: %d values for %d parameters", ErrShapeMismatch, len(dst), len(ts))
	}
	for i, t := range ts {
		dst[i] = f(t)
	}
	return nil
}

// Const returns a function that is c everywhere.
func Const(c float64) Func {
	return func(float64) float64 { return c }
}

// Ident is the identity function, f(t) = t.
func Ident(t float64) float64 { return t }

var sinPrimes = [4]Func{
	math.Sin,
	math.Cos,
	func(t float64) float64 { return -math.Sin(t) },
	func(t float64) float64 { return -math.Cos(t) },
}

var cosPrimes = [4]Func{
	math.Cos,
	func(t float64) float64 { return -math.Sin(t) },
	func(t float64) float64 { return -math.Cos(t) },
	math.Sin,
}

// SinPrime returns the n-th derivative of sin.
//
// Derivatives of sin repeat with period 4: sin, cos, −sin, −cos.
func SinPrime(n int) Func {
	return sinPrimes[mod4(n)]
}

// CosPrime returns the n-th derivative of cos.
//
// This is the cycle of [SinPrime], shifted by one.
func CosPrime(n int) Func {
	return cosPrimes[mod4(n)]
}

func mod4(n int) int {
	return ((n % 4) + 4) % 4
}

// Linspace returns n evenly spaced values over [lo, hi]. If endpoint is
// false, hi is excluded and the values are spaced (hi−lo)/n apart.
func Linspace(lo, hi float64, n int, endpoint bool) []float64 {
	switch {
	case n <= 0:
		return nil
	case n == 1:
		return []float64{lo}
	}
	if endpoint {
		return floats.Span(make([]float64, n), lo, hi)
	}
	return floats.Span(make([]float64, n+1), lo, hi)[:n]
}
