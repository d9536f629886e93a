package taylor

import (
	"fmt"
	"strconv"
	"strings"
)

// Poly is a polynomial in a single variable t, represented by its
// coefficients. p[i] is the coefficient of tⁱ.
//
// The zero value (a nil slice) is the zero polynomial.
type Poly []float64

// Degree returns the index of the highest non-zero coefficient, or -1 for the
// zero polynomial.
func (p Poly) Degree() int {
	for i := len(p) - 1; i >= 0; i-- {
		if p[i] != 0 {
			return i
		}
	}
	return -1
}

// Eval evaluates the polynomial at t using Horner's scheme.
func (p Poly) Eval(t float64) float64 {
	var v float64
	for i := len(p) - 1; i >= 0; i-- {
		v = v*t + p[i]
	}
	return v
}

// EvalSlice evaluates the polynomial at every element of ts.
func (p Poly) EvalSlice(ts []float64) []float64 {
	return Func(p.Eval).EvalSlice(ts)
}

// EvalInto evaluates the polynomial at every element of ts and stores the
// results in dst. It returns [ErrShapeMismatch] if dst and ts differ in
// length.
func (p Poly) EvalInto(dst, ts []float64) error {
	return Func(p.Eval).EvalInto(dst, ts)
}

// Add returns p+o.
func (p Poly) Add(o Poly) Poly {
	out := make(Poly, max(len(p), len(o)))
	copy(out, p)
	for i, c := range o {
		out[i] += c
	}
	return out
}

// Scale returns p·f.
func (p Poly) Scale(f float64) Poly {
	out := make(Poly, len(p))
	for i, c := range p {
		out[i] = c * f
	}
	return out
}

// Mul returns p·o.
func (p Poly) Mul(o Poly) Poly {
	if len(p) == 0 || len(o) == 0 {
		return nil
	}
	out := make(Poly, len(p)+len(o)-1)
	for i, a := range p {
		for j, b := range o {
			out[i+j] += a * b
		}
	}
	return out
}

// Deriv returns the n-th derivative of p. Negative n are treated as 0.
func (p Poly) Deriv(n int) Poly {
	if n <= 0 {
		return p
	}
	if n >= len(p) {
		return nil
	}
	out := make(Poly, len(p)-n)
	for i := range out {
		// d^n/dt^n t^(i+n) = (i+n)!/i! · t^i
		f := 1.0
		for k := i + 1; k <= i+n; k++ {
			f *= float64(k)
		}
		out[i] = p[i+n] * f
	}
	return out
}

// Derivative returns p's derivatives as a [Derivative].
func (p Poly) Derivative() Derivative {
	return func(t float64, n int) float64 {
		return p.Deriv(n).Eval(t)
	}
}

func (p Poly) String() string {
	if p.Degree() < 0 {
		return "0"
	}
	var sb strings.Builder
	for i, c := range p {
		if c == 0 {
			continue
		}
		if sb.Len() > 0 {
			if c < 0 {
				sb.WriteString(" - ")
				c = -c
			} else {
				sb.WriteString(" + ")
			}
		}
		sb.WriteString(strconv.FormatFloat(c, 'g', -1, 64))
		switch i {
		case 0:
		case 1:
			sb.WriteString("·t")
		default:
			fmt.Fprintf(&sb, "·t^%d", i)
		}
	}
	return sb.String()
}
