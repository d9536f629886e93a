package colormix

import (
	"fmt"
	"math"
	"slices"
	"sort"
	"strings"
)

// palette is a colormap given by evenly spaced stops, interpolated linearly.
type palette []RGBA

func rgb8(r, g, b uint8) RGBA {
	return RGBA{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255, A: 1}
}

// at returns the color at position t. Positions outside of [0, 1] get the end
// colors, NaN is transparent.
func (p palette) at(t float64) RGBA {
	switch {
	case math.IsNaN(t):
		return Transparent
	case t <= 0:
		return p[0]
	case t >= 1:
		return p[len(p)-1]
	}
	idx := t * float64(len(p)-1)
	lo := int(idx)
	if lo >= len(p)-1 {
		return p[len(p)-1]
	}
	frac := idx - float64(lo)
	a, b := p[lo].Channels(), p[lo+1].Channels()
	var ch [4]float64
	for i := range ch {
		ch[i] = a[i] + frac*(b[i]-a[i])
	}
	return fromChannels(ch)
}

func (p palette) reversed() palette {
	r := slices.Clone(p)
	slices.Reverse(r)
	return r
}

var palettes = map[string]palette{
	"viridis": {
		rgb8(68, 1, 84),
		rgb8(72, 35, 116),
		rgb8(64, 67, 135),
		rgb8(52, 94, 141),
		rgb8(41, 120, 142),
		rgb8(32, 144, 140),
		rgb8(34, 167, 132),
		rgb8(68, 190, 112),
		rgb8(121, 209, 81),
		rgb8(189, 222, 38),
		rgb8(253, 231, 37),
	},
	"plasma": {
		rgb8(13, 8, 135),
		rgb8(75, 3, 161),
		rgb8(125, 3, 168),
		rgb8(168, 34, 150),
		rgb8(203, 70, 121),
		rgb8(229, 107, 93),
		rgb8(248, 148, 65),
		rgb8(253, 195, 40),
		rgb8(240, 249, 33),
	},
	"inferno": {
		rgb8(0, 0, 4),
		rgb8(40, 11, 84),
		rgb8(101, 21, 110),
		rgb8(159, 42, 99),
		rgb8(212, 72, 66),
		rgb8(245, 125, 21),
		rgb8(250, 193, 39),
		rgb8(252, 255, 164),
	},
	"magma": {
		rgb8(0, 0, 4),
		rgb8(28, 16, 68),
		rgb8(79, 18, 123),
		rgb8(129, 37, 129),
		rgb8(181, 54, 122),
		rgb8(229, 80, 100),
		rgb8(251, 135, 97),
		rgb8(254, 194, 135),
		rgb8(252, 253, 191),
	},
	"gray": {Black, White},
	// Evenly spaced approximation of the classic black-red-yellow-white hot map.
	"hot": {Black, RGB(1, 0, 0), RGB(1, 1, 0), White},
}

// Colormaps returns the names of the available colormaps, sorted. Every
// colormap is also available reversed, by appending "_r" to its name.
func Colormaps() []string {
	names := make([]string, 0, len(palettes))
	for name := range palettes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

type colormap struct {
	p    palette
	norm Weight
}

// Colors implements Func.
func (c colormap) Colors(ts []float64) ([]RGBA, error) {
	ws := c.norm(ts)
	if len(ws) != len(ts) {
		return nil, fmt.Errorf("%w: %d weights for %d parameters", ErrShapeMismatch, len(ws), len(ts))
	}
	out := make([]RGBA, len(ws))
	for i, w := range ws {
		out[i] = c.p.at(w)
	}
	return out, nil
}

// Colormap returns the color function that looks up norm(t) in the named
// colormap. Names are case-insensitive. Values of norm outside of [0, 1] are
// mapped to the colormap's end colors.
func Colormap(name string, norm Weight) (Func, error) {
	key := strings.ToLower(name)
	rev := false
	if base, ok := strings.CutSuffix(key, "_r"); ok {
		key, rev = base, true
	}
	p, ok := palettes[key]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownColormap, name)
	}
	if norm == nil {
		return nil, fmt.Errorf("%w: nil weight", ErrInvalidColorSpec)
	}
	if rev {
		p = p.reversed()
	}
	return colormap{p: p, norm: norm}, nil
}
