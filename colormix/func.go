package colormix

import "fmt"

// Func is a color function. It maps curve parameters (or positions) to colors,
// one color per parameter.
//
// Color functions must be pure: the same parameters always produce the same
// colors. They must not modify ts.
type Func interface {
	Colors(ts []float64) ([]RGBA, error)
}

// FuncOf adapts an ordinary function to the [Func] interface.
type FuncOf func(ts []float64) ([]RGBA, error)

// Colors implements Func.
func (f FuncOf) Colors(ts []float64) ([]RGBA, error) {
	return f(ts)
}

// Solid is a constant color function.
type Solid RGBA

// Colors implements Func.
func (s Solid) Colors(ts []float64) ([]RGBA, error) {
	out := make([]RGBA, len(ts))
	for i := range out {
		out[i] = RGBA(s)
	}
	return out, nil
}

// At evaluates f at a single parameter.
func At(f Func, t float64) (RGBA, error) {
	cs, err := colors(f, []float64{t})
	if err != nil {
		return RGBA{}, err
	}
	return cs[0], nil
}

// Compose returns the color function t ↦ f(g(t)). It is used to color by
// something other than the curve parameter, for example by the x coordinate
// of the curve's point.
func Compose(f Func, g func(float64) float64) Func {
	return FuncOf(func(ts []float64) ([]RGBA, error) {
		gs := make([]float64, len(ts))
		for i, t := range ts {
			gs[i] = g(t)
		}
		return colors(f, gs)
	})
}

// colors evaluates f and checks that it returned one color per parameter.
func colors(f Func, ts []float64) ([]RGBA, error) {
	cs, err := f.Colors(ts)
	if err != nil {
		return nil, err
	}
	if len(cs) != len(ts) {
		return nil, fmt.Errorf("%w: %d colors for %d parameters", ErrShapeMismatch, len(cs), len(ts))
	}
	return cs, nil
}
