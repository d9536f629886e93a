// Package curves is a catalog of parametric curves with closed-form
// derivatives of every order.
//
// Curves in this package don't rely on numeric differentiation, which makes
// their Taylor polynomials accurate even at high degrees. Derivatives of the
// trigonometric curves follow from the period-4 cycle of the derivatives of
// sin and cos (see [taylor.SinPrime] and [taylor.CosPrime]) and the chain
// rule.
package curves

import (
	"math"

	"honnef.co/go/taylor"
)

// Point returns the stationary curve ⟨x0, y0⟩.
func Point(x0, y0 float64) taylor.Curve {
	return taylor.NewCurve(taylor.Const(x0), taylor.Const(y0), constDerivative(x0), constDerivative(y0))
}

func constDerivative(c float64) taylor.Derivative {
	return func(t float64, n int) float64 {
		if n == 0 {
			return c
		}
		return 0
	}
}

// Line returns the line ⟨a·t, b·t⟩ through the origin, with run a and rise b.
func Line(a, b float64) taylor.Curve {
	return taylor.NewCurve(linear(a), linear(b), linearDerivative(a), linearDerivative(b))
}

func linear(a float64) taylor.Func {
	return func(t float64) float64 { return a * t }
}

func linearDerivative(a float64) taylor.Derivative {
	return func(t float64, n int) float64 {
		switch n {
		case 0:
			return a * t
		case 1:
			return a
		default:
			return 0
		}
	}
}

// Circle returns the circle ⟨r·cos(ωt+o), r·sin(ωt+o)⟩ with radius r, angular
// velocity omega, and rotational offset o.
func Circle(r, omega, o float64) taylor.Curve {
	return taylor.NewCurve(
		harmonic(r, omega, o, math.Cos),
		harmonic(r, omega, o, math.Sin),
		harmonicDerivative(r, omega, o, taylor.CosPrime),
		harmonicDerivative(r, omega, o, taylor.SinPrime),
	)
}

// harmonic returns amp·f(omega·t + phase).
func harmonic(amp, omega, phase float64, f taylor.Func) taylor.Func {
	return func(t float64) float64 {
		return amp * f(omega*t+phase)
	}
}

// harmonicDerivative returns the derivatives of amp·f(omega·t + phase), where
// prime(n) is the n-th derivative of f.
func harmonicDerivative(amp, omega, phase float64, prime func(n int) taylor.Func) taylor.Derivative {
	return func(t float64, n int) float64 {
		return amp * ipow(omega, n) * prime(n)(omega*t+phase)
	}
}

// ipow computes xⁿ for n ≥ 0. Unlike math.Pow, it is exact for small integer
// x and n, and 0⁰ = 1.
func ipow(x float64, n int) float64 {
	r := 1.0
	for n > 0 {
		if n&1 == 1 {
			r *= x
		}
		x *= x
		n >>= 1
	}
	return r
}

// Epitrochoid returns the roulette traced by a point at distance d from the
// center of a circle of radius r, rolling around the outside of a fixed circle
// of radius R. The rolling circle's point is rotated by the offset o.
//
//	x(t) = (R+r)·cos(t) − d·cos(ωt+o)
//	y(t) = (R+r)·sin(t) − d·sin(ωt+o),  ω = (R+r)/r
func Epitrochoid(R, r, d, o float64) taylor.Curve {
	return roulette(R+r, -d, -d, (R+r)/r, o)
}

// Hypotrochoid returns the roulette traced by a point at distance d from the
// center of a circle of radius r, rolling around the inside of a fixed circle
// of radius R. The rolling circle's point is rotated by the offset o.
//
//	x(t) = (R−r)·cos(t) + d·cos(ωt+o)
//	y(t) = (R−r)·sin(t) − d·sin(ωt+o),  ω = (R−r)/r
func Hypotrochoid(R, r, d, o float64) taylor.Curve {
	return roulette(R-r, d, -d, (R-r)/r, o)
}

// roulette returns ⟨c·cos(t) + dx·cos(ωt+o), c·sin(t) + dy·sin(ωt+o)⟩.
func roulette(c, dx, dy, omega, o float64) taylor.Curve {
	x0 := harmonic(c, 1, 0, math.Cos)
	x1 := harmonic(dx, omega, o, math.Cos)
	y0 := harmonic(c, 1, 0, math.Sin)
	y1 := harmonic(dy, omega, o, math.Sin)
	ddx := harmonicDerivative(c, 1, 0, taylor.CosPrime).Add(harmonicDerivative(dx, omega, o, taylor.CosPrime))
	ddy := harmonicDerivative(c, 1, 0, taylor.SinPrime).Add(harmonicDerivative(dy, omega, o, taylor.SinPrime))
	return taylor.NewCurve(
		func(t float64) float64 { return x0(t) + x1(t) },
		func(t float64) float64 { return y0(t) + y1(t) },
		ddx,
		ddy,
	)
}

// Lissajous returns the Lissajous figure ⟨A·sin(a·t+δ), B·sin(b·t)⟩.
func Lissajous(a, b, A, B, delta float64) taylor.Curve {
	return taylor.NewCurve(
		harmonic(A, a, delta, math.Sin),
		harmonic(B, b, 0, math.Sin),
		harmonicDerivative(A, a, delta, taylor.SinPrime),
		harmonicDerivative(B, b, 0, taylor.SinPrime),
	)
}

// Trochoid returns the sum of the unit circle and a circle of radius r,
// angular velocity n+1 and rotational offset o. Positive n produce
// epitrochoid-like curves with n loops, negative n produce hypotrochoid-like
// curves.
func Trochoid(n, r, o float64) taylor.Curve {
	return Circle(1, 1, 0).Add(Circle(r, n+1, o))
}
