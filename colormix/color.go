package colormix

import (
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// RGBA represents a color with red, green, blue, and alpha components.
//
// Components are nominally in the range [0, 1], but mixing with unbounded
// weights can produce values outside of it. Such values are valid
// intermediate results; they are clamped when converted to a color.Color.
type RGBA struct {
	R, G, B, A float64
}

// RGB creates an opaque color from RGB components.
func RGB(r, g, b float64) RGBA {
	return RGBA{R: r, G: g, B: b, A: 1}
}

// Common colors
var (
	Black       = RGB(0, 0, 0)
	White       = RGB(1, 1, 1)
	Red         = RGB(1, 0, 0)
	Blue        = RGB(0, 0, 1)
	Transparent = RGBA{}
)

func (c RGBA) String() string {
	return fmt.Sprintf("rgba(%g, %g, %g, %g)", c.R, c.G, c.B, c.A)
}

// Channels returns the components in RGBA order.
func (c RGBA) Channels() [4]float64 {
	return [4]float64{c.R, c.G, c.B, c.A}
}

func fromChannels(ch [4]float64) RGBA {
	return RGBA{R: ch[0], G: ch[1], B: ch[2], A: ch[3]}
}

// Clamp returns the color with every component clamped to [0, 1].
func (c RGBA) Clamp() RGBA {
	return RGBA{R: clamp01(c.R), G: clamp01(c.G), B: clamp01(c.B), A: clamp01(c.A)}
}

// WithAlpha returns the color with its alpha component replaced by a.
func (c RGBA) WithAlpha(a float64) RGBA {
	c.A = a
	return c
}

// Color converts RGBA to the standard color.Color interface.
func (c RGBA) Color() color.Color {
	c = c.Clamp()
	return color.NRGBA{
		R: uint8(math.Round(c.R * 255)),
		G: uint8(math.Round(c.G * 255)),
		B: uint8(math.Round(c.B * 255)),
		A: uint8(math.Round(c.A * 255)),
	}
}

// FromColor converts a standard color.Color to RGBA.
func FromColor(c color.Color) RGBA {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return RGBA{
		R: float64(n.R) / 255,
		G: float64(n.G) / 255,
		B: float64(n.B) / 255,
		A: float64(n.A) / 255,
	}
}

func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}

// Single-letter color codes, as used by plotting libraries.
var shorthands = map[string]RGBA{
	"b": RGB(0, 0, 1),
	"g": RGB(0, 0.5, 0),
	"r": RGB(1, 0, 0),
	"c": RGB(0, 0.75, 0.75),
	"m": RGB(0.75, 0, 0.75),
	"y": RGB(0.75, 0.75, 0),
	"k": RGB(0, 0, 0),
	"w": RGB(1, 1, 1),
}

// Parse interprets a human color specification. It accepts
//
//   - single-letter color codes: b, g, r, c, m, y, k, w
//   - SVG 1.1 color names, such as "gold" or "steelblue"
//   - "none", which is transparent
//   - hex strings: #rgb, #rgba, #rrggbb, #rrggbbaa
//   - a number in [0, 1] as a string, which is a shade of gray
//
// Names are case-insensitive.
func Parse(s string) (RGBA, error) {
	spec := strings.ToLower(strings.TrimSpace(s))
	if spec == "" {
		return RGBA{}, fmt.Errorf("%w: empty string", ErrInvalidColorSpec)
	}
	if hex, ok := strings.CutPrefix(spec, "#"); ok {
		c, err := parseHex(hex)
		if err != nil {
			return RGBA{}, fmt.Errorf("%w: %q: %s", ErrInvalidColorSpec, s, err)
		}
		return c, nil
	}
	if c, ok := shorthands[spec]; ok {
		return c, nil
	}
	if spec == "none" {
		return Transparent, nil
	}
	if c, ok := colornames.Map[spec]; ok {
		return FromColor(c), nil
	}
	if v, err := strconv.ParseFloat(spec, 64); err == nil && v >= 0 && v <= 1 {
		return RGB(v, v, v), nil
	}
	return RGBA{}, fmt.Errorf("%w: %q", ErrInvalidColorSpec, s)
}

// parseHex parses "RGB", "RGBA", "RRGGBB" and "RRGGBBAA".
func parseHex(hex string) (RGBA, error) {
	var digits int
	switch len(hex) {
	case 3, 4:
		digits = 1
	case 6, 8:
		digits = 2
	default:
		return RGBA{}, fmt.Errorf("hex color must have 3, 4, 6 or 8 digits, not %d", len(hex))
	}
	ch := [4]float64{0, 0, 0, 1}
	for i := 0; i < len(hex)/digits; i++ {
		v, err := strconv.ParseUint(hex[i*digits:(i+1)*digits], 16, 8)
		if err != nil {
			return RGBA{}, fmt.Errorf("invalid hex digits %q", hex[i*digits:(i+1)*digits])
		}
		if digits == 1 {
			v *= 17
		}
		ch[i] = float64(v) / 255
	}
	return fromChannels(ch), nil
}

// FromTuple creates a color from 3 (RGB) or 4 (RGBA) components, each in the
// range [0, 1].
func FromTuple(c ...float64) (RGBA, error) {
	var ch [4]float64
	switch len(c) {
	case 3:
		copy(ch[:], c)
		ch[3] = 1
	case 4:
		copy(ch[:], c)
	default:
		return RGBA{}, fmt.Errorf("%w: tuple must have 3 or 4 components, not %d", ErrInvalidColorSpec, len(c))
	}
	for _, v := range ch {
		if !(v >= 0 && v <= 1) {
			return RGBA{}, fmt.Errorf("%w: component %g out of range [0, 1]", ErrInvalidColorSpec, v)
		}
	}
	return fromChannels(ch), nil
}
