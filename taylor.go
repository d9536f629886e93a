package taylor

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/combin"
)

// Expand computes the Taylor polynomial of f of the given degree, expanded
// about t = a:
//
//	f(t) ≈ Σᵢ f⁽ⁱ⁾(a)/i! · (t−a)ⁱ,  i = 0…degree
//
// The derivatives of f are provided by df. If df is nil, they are estimated
// numerically with [Numeric] and [DefaultStep].
//
// The returned polynomial is expressed in t itself, not in (t−a): every
// (t−a)ⁱ is expanded with the binomial theorem and its terms are accumulated
// onto the powers of t. Evaluating the result far away from a, or using large
// degrees (beyond 15 to 20), loses precision, as the expanded coefficients can
// be large and of alternating sign.
func Expand(f Func, a float64, degree int, df Derivative) (Poly, error) {
	if degree < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeDegree, degree)
	}
	if df == nil {
		df = Numeric(f, DefaultStep)
	}
	d := mat.NewVecDense(degree+1, taylorCoefficients(a, degree, df))
	var coeffs mat.VecDense
	coeffs.MulVec(binomialShift(a, degree), d)
	return Poly(coeffs.RawVector().Data), nil
}

// taylorCoefficients returns f⁽ⁱ⁾(a)/i! for i = 0…degree.
func taylorCoefficients(a float64, degree int, df Derivative) []float64 {
	d := make([]float64, degree+1)
	fact := 1.0
	for i := range d {
		if i > 0 {
			fact *= float64(i)
		}
		d[i] = df(a, i) / fact
	}
	return d
}

// binomialShift returns the upper triangular matrix M that maps coefficients in
// powers of (t−a) to coefficients in powers of t:
//
//	M[k][i] = C(i, k)·(−a)^(i−k)  for i ≥ k
//
// Its non-zero entries are Pascal's triangle, weighted by powers of −a.
func binomialShift(a float64, degree int) *mat.Dense {
	n := degree + 1
	m := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		pow := 1.0
		for k := i; k >= 0; k-- {
			m.Set(k, i, float64(combin.Binomial(i, k))*pow)
			pow *= -a
		}
	}
	return m
}

// expandBasis computes the same polynomial as [Expand] by summing the basis
// polynomials (t−a)ⁱ, scaled by the Taylor coefficients.
func expandBasis(f Func, a float64, degree int, df Derivative) (Poly, error) {
	if degree < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeDegree, degree)
	}
	if df == nil {
		df = Numeric(f, DefaultStep)
	}
	basis := Poly{-a, 1}
	term := Poly{1}
	var p Poly
	for i, c := range taylorCoefficients(a, degree, df) {
		if i > 0 {
			term = term.Mul(basis)
		}
		p = p.Add(term.Scale(c))
	}
	return p, nil
}
