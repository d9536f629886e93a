package render

import (
	"fmt"
	"math"

	"honnef.co/go/taylor"
	"honnef.co/go/taylor/colormix"
)

// Options describes a Taylor bundle rendering.
//
// The bundle consists of Parts partial renderings, each drawing Tangents Taylor
// curves, which are averaged into the final image. The total number of curves
// is Parts·Tangents.
//
// Image saturation is proportional to Tangents, TangentWidth and TangentAlpha,
// and inversely proportional to the linear size of the image.
type Options struct {
	// Curve is the generating curve.
	Curve taylor.Curve

	// Parts is the number of partial renderings.
	Parts int
	// Tangents is the number of Taylor curves per partial rendering.
	Tangents int
	// Degree is the degree of the Taylor polynomials.
	Degree int

	// CurveDomain is the parameter range of the generating curve.
	CurveDomain [2]float64
	// BundleDomain is the parameter range of the points of tangency.
	BundleDomain [2]float64

	// Size is the size of the image, in inches.
	Size taylor.Size
	// DPI is the resolution of the image, in pixels per inch.
	DPI float64
	// Window is the region of the plane that is rendered.
	Window taylor.Rect
	// Background is the color of the image's background.
	Background colormix.RGBA

	// ShowCurve draws the generating curve on top of the bundle.
	ShowCurve bool
	// CurveRes is the number of samples of the generating curve.
	CurveRes int
	// CurveColor may be a color function, which colors the curve by
	// parameter.
	CurveColor colormix.Spec
	// CurveWidth is the line width of the generating curve, in points.
	CurveWidth float64
	// CurveAlpha, if not nil, overrides the opacity of CurveColor.
	CurveAlpha *float64

	// TangentDomain is the parameter range of every Taylor curve, relative to
	// its point of tangency.
	TangentDomain [2]float64
	// TangentRes is the number of samples of every Taylor curve.
	TangentRes int
	// TangentColor colors the Taylor curves by their point of tangency.
	TangentColor colormix.Spec
	// TangentWidth is the line width of the Taylor curves, in points.
	TangentWidth float64
	// TangentAlpha, if not nil, overrides the opacity of TangentColor.
	TangentAlpha *float64

	// Filename is the name of the output file, without extension. If empty,
	// a name is generated from the current date and time.
	Filename string
	// KeepPartials keeps the partial renderings as separate files.
	KeepPartials bool

	// suffix is appended to the file name, see Preview.
	suffix string
}

// DefaultOptions returns the default options for rendering curve c.
func DefaultOptions(c taylor.Curve) Options {
	return Options{
		Curve:         c,
		Parts:         1,
		Tangents:      200,
		Degree:        1,
		CurveDomain:   [2]float64{0, 2 * math.Pi},
		BundleDomain:  [2]float64{0, 2 * math.Pi},
		Size:          taylor.Sz(16, 9),
		DPI:           30,
		Window:        taylor.Window(-16, 16, -9, 9),
		Background:    colormix.Black,
		ShowCurve:     true,
		CurveRes:      256,
		CurveColor:    colormix.Named("w"),
		CurveWidth:    2,
		TangentDomain: [2]float64{-2, 2},
		TangentRes:    256,
		TangentColor:  colormix.Named("r"),
		TangentWidth:  1,
	}
}

// Alpha returns a pointer to a, for use as an opacity override.
func Alpha(a float64) *float64 {
	return &a
}

// SetDomain sets both the curve domain and the bundle domain to [lo, hi].
func (opts *Options) SetDomain(lo, hi float64) {
	opts.CurveDomain = [2]float64{lo, hi}
	opts.BundleDomain = [2]float64{lo, hi}
}

// Preview returns options for a quick, low-resolution preview: the number of
// parts, the number of tangents and the image size are multiplied by scale.
// The file name gets a "_preview" suffix.
func (opts Options) Preview(scale float64) Options {
	opts.Parts = max(1, int(scale*float64(opts.Parts)))
	opts.Tangents = int(scale * float64(opts.Tangents))
	opts.Size = opts.Size.Scale(scale)
	opts.suffix += fmt.Sprintf("_preview%g", scale)
	return opts
}

// FitWindow sets the window to the bounding box of the generating curve over
// CurveDomain, padded by margin times its larger side and widened to the
// aspect ratio of the image, so that circles stay circular.
func (opts *Options) FitWindow(margin float64) error {
	if opts.Curve.IsZero() {
		return fmt.Errorf("%w: no curve", ErrInvalidOptions)
	}
	n := max(opts.CurveRes, 2)
	bbox := taylor.BoundingBox(opts.Curve.Evaluate(taylor.Linspace(opts.CurveDomain[0], opts.CurveDomain[1], n, true)))
	if bbox.IsNaN() {
		return fmt.Errorf("%w: curve isn't finite on %v", ErrInvalidOptions, opts.CurveDomain)
	}
	pad := margin * max(bbox.Width(), bbox.Height())
	bbox = bbox.Inflate(pad, pad)

	// widen the narrow side around the center
	aspect := opts.Size.AspectRatio()
	c := bbox.Center()
	w, h := bbox.Width(), bbox.Height()
	if h < w*aspect {
		h = w * aspect
	} else {
		w = h / aspect
	}
	if w == 0 || h == 0 {
		w, h = 1, aspect
	}
	opts.Window = taylor.Window(c.X-w/2, c.X+w/2, c.Y-h/2, c.Y+h/2)
	return nil
}

// PixelSize returns the size of the rendered image, in pixels.
func (opts *Options) PixelSize() (w, h int) {
	return opts.Size.Scale(opts.DPI).Pixels()
}

// Validate checks that the options describe a renderable bundle. Errors wrap
// ErrInvalidOptions, or the color error for invalid color specifications.
func (opts *Options) Validate() error {
	invalid := func(format string, args ...any) error {
		return fmt.Errorf("%w: %s", ErrInvalidOptions, fmt.Sprintf(format, args...))
	}
	finite := func(vs ...float64) bool {
		for _, v := range vs {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return false
			}
		}
		return true
	}

	switch {
	case opts.Curve.IsZero():
		return invalid("no curve")
	case opts.Parts < 1:
		return invalid("need at least one part, got %d", opts.Parts)
	case opts.Tangents < 0:
		return invalid("negative number of tangents %d", opts.Tangents)
	case opts.Degree < 0:
		return invalid("negative degree %d", opts.Degree)
	case !finite(opts.CurveDomain[:]...), !finite(opts.BundleDomain[:]...), !finite(opts.TangentDomain[:]...):
		return invalid("domains must be finite")
	case !(opts.DPI > 0) || !(opts.Size.Width > 0) || !(opts.Size.Height > 0) || !finite(opts.DPI, opts.Size.Width, opts.Size.Height):
		return invalid("image size %v at %g DPI", opts.Size, opts.DPI)
	case !finite(opts.Window.X0, opts.Window.X1, opts.Window.Y0, opts.Window.Y1) ||
		opts.Window.Width() == 0 || opts.Window.Height() == 0:
		return invalid("degenerate window %v", opts.Window)
	case opts.ShowCurve && opts.CurveRes < 2:
		return invalid("curve resolution %d, need at least 2", opts.CurveRes)
	case opts.TangentRes < 2:
		return invalid("tangent resolution %d, need at least 2", opts.TangentRes)
	case opts.CurveWidth < 0 || opts.TangentWidth < 0:
		return invalid("negative line width")
	}
	for _, a := range []*float64{opts.CurveAlpha, opts.TangentAlpha} {
		if a != nil && !(*a >= 0 && *a <= 1) {
			return invalid("opacity %g out of range [0, 1]", *a)
		}
	}
	if _, err := colormix.Resolve(opts.TangentColor); err != nil {
		return fmt.Errorf("tangent color: %w", err)
	}
	if opts.ShowCurve {
		if _, err := colormix.Resolve(opts.CurveColor); err != nil {
			return fmt.Errorf("curve color: %w", err)
		}
	}
	return nil
}
