package taylor

import "fmt"

// ParametricCurve describes a curve parametrized by a scalar.
//
// If the result is interpreted as a point, this represents a curve. But the
// result can be interpreted as a vector as well.
type ParametricCurve interface {
	// Eval evaluates the curve at parameter t.
	Eval(t float64) Point
}

var (
	_ ParametricCurve = Curve{}
	_ ParametricCurve = TaylorCurve{}
)

// Curve is a parametric 2D curve ⟨x(t), y(t)⟩ whose coordinate functions can be
// differentiated to any order.
//
// A Curve owns a [Derivative] for each of its coordinates. These are either
// exact, supplied when the curve is constructed (see package curves for a
// catalog of curves with closed-form derivatives), or numeric estimates
// created by [NewCurve].
//
// Curves are immutable. Combining curves creates new curves.
// The zero value is not a valid curve; use [NewCurve].
type Curve struct {
	x, y   Func
	dx, dy Derivative
}

// NewCurve returns the curve ⟨x(t), y(t)⟩. dx and dy are the derivatives of x
// and y. If either is nil, a numeric derivative with the default step is used
// in its place.
func NewCurve(x, y Func, dx, dy Derivative) Curve {
	if dx == nil {
		dx = Numeric(x, DefaultStep)
	}
	if dy == nil {
		dy = Numeric(y, DefaultStep)
	}
	return Curve{x: x, y: y, dx: dx, dy: dy}
}

// FromFunction returns the curve ⟨t, f(t)⟩, the graph of f. Derivatives of the
// x coordinate are exact, derivatives of f are numeric.
func FromFunction(f Func) Curve {
	return NewCurve(Ident, f, identDerivative, nil)
}

func identDerivative(t float64, n int) float64 {
	switch n {
	case 0:
		return t
	case 1:
		return 1
	default:
		return 0
	}
}

// IsZero reports whether c is the zero value, which isn't a valid curve.
func (c Curve) IsZero() bool { return c.x == nil || c.y == nil }

// X evaluates the x coordinate at t.
func (c Curve) X(t float64) float64 { return c.x(t) }

// Y evaluates the y coordinate at t.
func (c Curve) Y(t float64) float64 { return c.y(t) }

// Coordinates returns the coordinate functions of the curve.
func (c Curve) Coordinates() (x, y Func) { return c.x, c.y }

// Derivatives returns the derivatives of the coordinate functions.
func (c Curve) Derivatives() (dx, dy Derivative) { return c.dx, c.dy }

// Eval implements ParametricCurve.
func (c Curve) Eval(t float64) Point {
	return Point{X: c.x(t), Y: c.y(t)}
}

// Evaluate evaluates the curve at every element of ts.
func (c Curve) Evaluate(ts []float64) []Point {
	out := make([]Point, len(ts))
	for i, t := range ts {
		out[i] = c.Eval(t)
	}
	return out
}

// EvaluateInto evaluates the curve at every element of ts and stores the
// points in dst. It returns [ErrShapeMismatch] if dst and ts differ in length.
func (c Curve) EvaluateInto(dst []Point, ts []float64) error {
	return evaluateInto(c, dst, ts)
}

func evaluateInto(c ParametricCurve, dst []Point, ts []float64) error {
	if len(dst) != len(ts) {
		return fmt.Errorf("%w: %d points for %d parameters", ErrShapeMismatch, len(dst), len(ts))
	}
	for i, t := range ts {
		dst[i] = c.Eval(t)
	}
	return nil
}

// Derivative returns the n-th derivative of the curve at t, as the vector
// ⟨x⁽ⁿ⁾(t), y⁽ⁿ⁾(t)⟩. The 0th derivative is the curve's point at t.
func (c Curve) Derivative(t float64, n int) (Vec2, error) {
	if n < 0 {
		return Vec2{}, fmt.Errorf("%w: %d", ErrNegativeOrder, n)
	}
	return Vec2{X: c.dx(t, n), Y: c.dy(t, n)}, nil
}

// DerivativeSlice is like [Curve.Derivative] but evaluates the derivative at
// every element of ts.
func (c Curve) DerivativeSlice(ts []float64, n int) ([]Vec2, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeOrder, n)
	}
	out := make([]Vec2, len(ts))
	for i, t := range ts {
		out[i] = Vec2{X: c.dx(t, n), Y: c.dy(t, n)}
	}
	return out, nil
}

// Add returns the pointwise sum of c and o.
//
// The derivatives of the sum are the sums of the derivatives, for every order.
// If both curves have exact derivatives, so does their sum.
func (c Curve) Add(o Curve) Curve {
	cx, cy, ox, oy := c.x, c.y, o.x, o.y
	return Curve{
		x:  func(t float64) float64 { return cx(t) + ox(t) },
		y:  func(t float64) float64 { return cy(t) + oy(t) },
		dx: c.dx.Add(o.dx),
		dy: c.dy.Add(o.dy),
	}
}

// Taylor returns the Taylor curve of the given degree about t = a, using the
// curve's own derivatives. See [Expand].
func (c Curve) Taylor(a float64, degree int) (TaylorCurve, error) {
	px, err := Expand(c.x, a, degree, c.dx)
	if err != nil {
		return TaylorCurve{}, err
	}
	py, err := Expand(c.y, a, degree, c.dy)
	if err != nil {
		return TaylorCurve{}, err
	}
	return TaylorCurve{A: a, X: px, Y: py}, nil
}

// TaylorCurve is the local polynomial approximation of a curve about t = A.
// Both coordinates are polynomials in the curve parameter t.
type TaylorCurve struct {
	A    float64
	X, Y Poly
}

// Eval implements ParametricCurve.
func (tc TaylorCurve) Eval(t float64) Point {
	return Point{X: tc.X.Eval(t), Y: tc.Y.Eval(t)}
}

// Evaluate evaluates the curve at every element of ts.
func (tc TaylorCurve) Evaluate(ts []float64) []Point {
	out := make([]Point, len(ts))
	for i, t := range ts {
		out[i] = tc.Eval(t)
	}
	return out
}

// EvaluateInto evaluates the curve at every element of ts and stores the
// points in dst. It returns [ErrShapeMismatch] if dst and ts differ in length.
func (tc TaylorCurve) EvaluateInto(dst []Point, ts []float64) error {
	return evaluateInto(tc, dst, ts)
}

// Curve returns tc as a [Curve] with exact derivatives.
func (tc TaylorCurve) Curve() Curve {
	return NewCurve(tc.X.Eval, tc.Y.Eval, tc.X.Derivative(), tc.Y.Derivative())
}

func (tc TaylorCurve) String() string {
	return fmt.Sprintf("⟨%s, %s⟩ about t=%g", tc.X, tc.Y, tc.A)
}
