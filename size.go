package taylor

import (
	"fmt"
	"math"
)

// Size is a width and a height, such as the size of a figure in inches or of
// a canvas in pixels.
type Size struct {
	Width  float64
	Height float64
}

// Sz returns the size x×y.
func Sz(w, h float64) Size {
	return Size{
		Width:  w,
		Height: h,
	}
}

func (sz Size) String() string {
	return fmt.Sprintf("%g×%g", sz.Width, sz.Height)
}

func (sz Size) Splat() (w float64, h float64) {
	return sz.Width, sz.Height
}

// Scale returns a new size with width and height multiplied by f.
func (sz Size) Scale(f float64) Size {
	return Size{
		Width:  sz.Width * f,
		Height: sz.Height * f,
	}
}

// Round returns a new size with width and height rounded to the nearest integers.
func (sz Size) Round() Size {
	return Size{
		Width:  math.Round(sz.Width),
		Height: math.Round(sz.Height),
	}
}

// Pixels returns the size, rounded to whole pixels. Each dimension is at least
// one pixel.
func (sz Size) Pixels() (w, h int) {
	r := sz.Round()
	return max(1, int(r.Width)), max(1, int(r.Height))
}

// AspectRatio returns the ratio of height to width.
func (sz Size) AspectRatio() float64 {
	return sz.Height / sz.Width
}

// IsNaN reports whether at least one of width and height is NaN.
func (sz Size) IsNaN() bool {
	return math.IsNaN(sz.Width) || math.IsNaN(sz.Height)
}
