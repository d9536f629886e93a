// Package taylor provides parametric 2D curves that can be differentiated to
// any order, and the Taylor polynomials that approximate them locally. It was
// designed to render "Taylor bundles": a curve overlaid with thousands of its
// local polynomial approximations, drawn as short curve segments at many
// points along it. But it is general enough to be useful wherever derivatives
// and Taylor expansions of curves are needed.
//
// # Curves and derivatives
//
// [Curve] pairs two scalar functions, x(t) and y(t), with a [Derivative] for
// each of them. A Derivative computes the n-th derivative of its function at a
// point, for any n ≥ 0. Derivatives are either exact, supplied by whoever
// constructs the curve, or numeric, estimated with central finite differences
// (see [Numeric]). [NewCurve] fills in numeric derivatives for any that are
// missing, which makes every curve differentiable without extra effort, at the
// cost of accuracy for higher orders.
//
// Package curves contains a catalog of curves with closed-form derivatives,
// such as circles, trochoids, and Lissajous figures.
//
// Curves are immutable. [Curve.Add] creates the pointwise sum of two curves,
// whose derivatives are the sums of the operands' derivatives. Adding two
// curves with exact derivatives yields a curve with exact derivatives.
//
// # Taylor polynomials
//
// [Expand] computes the Taylor polynomial of a function about a point, as a
// [Poly] in the original variable t rather than in the shifted variable
// (t−a). [Curve.Taylor] does the same for both coordinates of a curve,
// producing a [TaylorCurve]. [Curve.Tangents] computes and samples many
// Taylor curves at once.
//
// Polynomials are evaluated with Horner's scheme. Because coefficients are
// expressed in t, high degrees (beyond 15 to 20) or evaluation far away from
// the expansion point lose precision.
//
// # Errors
//
// Requests for derivatives of negative order and Taylor polynomials of
// negative degree fail with [ErrNegativeOrder] and [ErrNegativeDegree].
// Functions that fill caller-provided slices fail with [ErrShapeMismatch]
// when the lengths don't match. Degenerate numeric input, such as a zero step
// size, isn't checked and produces infinities and NaNs, as is usual for
// floating-point arithmetic.
//
// # Geometry
//
// [Point], [Vec2], [Size], [Rect] and [Affine] are small value types for 2D
// geometry. They are used to describe curve points and derivatives, and to
// map a window of the plane onto a raster canvas (see [WindowToPixels]).
//
// # Literature
//
//   - [Taylor's theorem]
//   - [Finite difference]
//   - [Roulette (curve)]
//
// [Taylor's theorem]: https://en.wikipedia.org/wiki/Taylor%27s_theorem
// [Finite difference]: https://en.wikipedia.org/wiki/Finite_difference#Higher-order_differences
// [Roulette (curve)]: https://en.wikipedia.org/wiki/Roulette_(curve)
package taylor
