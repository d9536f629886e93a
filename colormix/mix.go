package colormix

import (
	"fmt"
	"math"
)

// Space selects how colors are blended.
type Space int

const (
	// Linear blends the squares of the channels and takes the square root of
	// the result, approximating blending in linear light. This avoids the
	// dark band in the middle of gradients between saturated colors.
	Linear Space = iota
	// Normal blends the channels directly.
	Normal
)

func (s Space) String() string {
	switch s {
	case Linear:
		return "linear"
	case Normal:
		return "normal"
	default:
		return fmt.Sprintf("Space(%d)", int(s))
	}
}

type mixer struct {
	C1, C2 Func
	W      Weight
	Space  Space
	Clamp  bool
}

// Colors implements Func.
func (m mixer) Colors(ts []float64) ([]RGBA, error) {
	ws := m.W(ts)
	if len(ws) != len(ts) {
		return nil, fmt.Errorf("%w: %d weights for %d parameters", ErrShapeMismatch, len(ws), len(ts))
	}
	if m.Clamp {
		// the weight function may return ts itself
		ws = Clamp01(append([]float64(nil), ws...))
	}
	c1, err := colors(m.C1, ts)
	if err != nil {
		return nil, err
	}
	c2, err := colors(m.C2, ts)
	if err != nil {
		return nil, err
	}

	out := make([]RGBA, len(ts))
	for i, w := range ws {
		a, b := c1[i].Channels(), c2[i].Channels()
		var ch [4]float64
		for j := range ch {
			switch m.Space {
			case Normal:
				ch[j] = (1-w)*a[j] + w*b[j]
			default:
				ch[j] = math.Sqrt((1-w)*a[j]*a[j] + w*b[j]*b[j])
			}
		}
		out[i] = fromChannels(ch)
	}
	return out, nil
}

func newMixer(c1, c2 Spec, w Weight, space Space, clamp bool) (Func, error) {
	f1, err := Resolve(c1)
	if err != nil {
		return nil, fmt.Errorf("first color: %w", err)
	}
	f2, err := Resolve(c2)
	if err != nil {
		return nil, fmt.Errorf("second color: %w", err)
	}
	if w == nil {
		return nil, fmt.Errorf("%w: nil weight", ErrInvalidColorSpec)
	}
	return mixer{C1: f1, C2: f2, W: w, Space: space, Clamp: clamp}, nil
}

// Mix returns the color function that blends c1 and c2 according to w. Where
// the weight is 0 it shows c1, where it is 1 it shows c2. Both colors may
// themselves be color functions.
//
// Weights are used as is. Weights outside of [0, 1] extrapolate, which can
// produce channels outside of [0, 1], or NaN in the Linear space. Use
// [MixBounded] to clamp the weights first.
//
// Invalid color specifications are reported here, not when the returned
// function is evaluated.
func Mix(c1, c2 Spec, w Weight, space Space) (Func, error) {
	return newMixer(c1, c2, w, space, false)
}

// MixBounded is like [Mix], but clamps the weights to [0, 1].
func MixBounded(c1, c2 Spec, w Weight, space Space) (Func, error) {
	return newMixer(c1, c2, w, space, true)
}

// Cosine2 is a shorthand for MixBounded(c1, c2, Cosine(p1, p2), space): a
// gradient oscillating between c1 at p1 and c2 at p2.
func Cosine2(c1, c2 Spec, p1, p2 float64, space Space) (Func, error) {
	return MixBounded(c1, c2, Cosine(p1, p2), space)
}
