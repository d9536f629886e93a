package colormix

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Weight maps curve parameters to mixing weights. A weight of 0 selects the
// first color of a mix, a weight of 1 the second. Weight functions return a
// new slice and don't modify ts, except where documented otherwise.
type Weight func(ts []float64) []float64

// Of returns the weight t ↦ w(g(t)). It is used to weight by something other
// than the curve parameter, for example a point's distance from the origin.
func (w Weight) Of(g func(float64) float64) Weight {
	return func(ts []float64) []float64 {
		gs := make([]float64, len(ts))
		for i, t := range ts {
			gs[i] = g(t)
		}
		return w(gs)
	}
}

// Normalize returns the weight that linearly maps [u, v] to [0, 1]. Parameters
// outside of [u, v] map outside of [0, 1]; see [Bounded].
//
// If u == v, the weights are infinite or NaN.
func Normalize(u, v float64) Weight {
	d := v - u
	return func(ts []float64) []float64 {
		out := make([]float64, len(ts))
		for i, t := range ts {
			out[i] = (t - u) / d
		}
		return out
	}
}

// Clamp01 clamps every element of ts to [0, 1], in place, and returns ts.
// NaN is left alone.
func Clamp01(ts []float64) []float64 {
	for i, t := range ts {
		if t < 0 {
			ts[i] = 0
		} else if t > 1 {
			ts[i] = 1
		}
	}
	return ts
}

// Bounded returns w with its results clamped to [0, 1].
func Bounded(w Weight) Weight {
	return func(ts []float64) []float64 {
		return Clamp01(w(ts))
	}
}

// Smoothstep returns a smooth step from 0 to 1 over [u, v]. It is 0 for
// t < u and 1 for t > v.
func Smoothstep(u, v float64) Weight {
	norm := Normalize(u, v)
	return func(ts []float64) []float64 {
		ms := norm(ts)
		for i, s := range ms {
			switch {
			case s < 0:
				ms[i] = 0
			case s > 1:
				ms[i] = 1
			default:
				ms[i] = s * s * (3 - 2*s)
			}
		}
		return ms
	}
}

// Cosine returns a cosine oscillating between 0 and 1. It is 0 at p1, 1 at p2
// and has period 2(p2-p1).
func Cosine(p1, p2 float64) Weight {
	norm := Normalize(p1, p2)
	return func(ts []float64) []float64 {
		ms := norm(ts)
		for i, s := range ms {
			ms[i] = 0.5 * (1 - math.Cos(math.Pi*s))
		}
		return ms
	}
}

// Gaussian returns a Gaussian bell with its peak of 1 at c and a full width at
// half maximum of fwhm.
func Gaussian(c, fwhm float64) Weight {
	s := 2 * math.Sqrt(math.Ln2) / fwhm
	return func(ts []float64) []float64 {
		ms := append([]float64(nil), ts...)
		floats.AddConst(-c, ms)
		floats.Scale(s, ms)
		for i, x := range ms {
			ms[i] = math.Exp(-x * x)
		}
		return ms
	}
}

// ConstWeight returns the weight that is c everywhere.
func ConstWeight(c float64) Weight {
	return func(ts []float64) []float64 {
		out := make([]float64, len(ts))
		if c != 0 {
			floats.AddConst(c, out)
		}
		return out
	}
}
