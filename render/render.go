// Package render draws Taylor bundles: a generating curve overlaid with many of
// its Taylor curves, computed at points of tangency spread along it.
//
// Rendering happens in software, using gg. The final image is the average of
// several partial renderings, each of which draws a shifted set of tangents,
// which allows rendering very many tangents without accumulating them in a
// single image.
package render

import (
	"context"
	"fmt"
	"image"
	"path/filepath"
	"time"

	"honnef.co/go/taylor"
	"honnef.co/go/taylor/colormix"
)

// Renderer renders Taylor bundles to PNG files.
type Renderer struct {
	// Dir is the directory files are written to. The empty string means the
	// current directory.
	Dir string
	// Now returns the current time, used for generated file names. If nil,
	// time.Now is used.
	Now func() time.Time
}

// Result describes a finished rendering.
type Result struct {
	// Path is the path of the final image.
	Path string
	// Partials are the paths of the partial renderings, if they were kept.
	Partials []string
	// Image is the final image.
	Image *image.RGBA
	// Tangents is the total number of Taylor curves drawn.
	Tangents int
	// Elapsed is the time it took to render.
	Elapsed time.Duration
}

// DefaultFilename returns the generated file name for a rendering started at t.
func DefaultFilename(t time.Time) string {
	return t.Format("taylorbundle_render_2006-01-02_15-04-05")
}

func (r *Renderer) now() time.Time {
	if r.Now != nil {
		return r.Now()
	}
	return time.Now()
}

// base returns the output path without extension.
func (r *Renderer) base(opts *Options) string {
	name := opts.Filename
	if name == "" {
		name = DefaultFilename(r.now())
	}
	return filepath.Join(r.Dir, name+opts.suffix)
}

// Render renders the bundle described by opts and writes it to a PNG file.
// Cancelling ctx stops the rendering between partial renderings.
func (r *Renderer) Render(ctx context.Context, opts Options) (Result, error) {
	start := time.Now()
	if err := opts.Validate(); err != nil {
		return Result{}, err
	}
	base := r.base(&opts)
	log := Logger().With("file", base)

	tangentColor, err := colormix.Resolve(opts.TangentColor)
	if err != nil {
		return Result{}, err
	}
	var curveColor colormix.Func
	if opts.ShowCurve {
		if curveColor, err = colormix.Resolve(opts.CurveColor); err != nil {
			return Result{}, err
		}
	}

	lo, hi := opts.BundleDomain[0], opts.BundleDomain[1]
	dt := 1.0
	if opts.Tangents > 0 {
		dt = (hi - lo) / float64(opts.Tangents)
	}
	offsets := taylor.Linspace(opts.TangentDomain[0], opts.TangentDomain[1], opts.TangentRes, true)
	perm := Permutation(opts.Tangents)

	res := Result{Path: base + ".png"}
	partials := make([]*image.RGBA, 0, opts.Parts)
	for i, d := range taylor.Linspace(0, dt, opts.Parts, false) {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}
		t0 := time.Now()
		as := permute(taylor.Linspace(lo+d, hi+d, opts.Tangents, false), perm)
		img, err := drawPartial(&opts, as, offsets, tangentColor, curveColor)
		if err != nil {
			return Result{}, fmt.Errorf("partial %d: %w", i, err)
		}
		partials = append(partials, img)
		res.Tangents += len(as)
		log.Debug("rendered partial", "part", i, "of", opts.Parts, "tangents", len(as), "elapsed", time.Since(t0))

		if opts.KeepPartials {
			path := fmt.Sprintf("%s_partial%d.png", base, i)
			if err := writePNG(path, img); err != nil {
				return Result{}, err
			}
			res.Partials = append(res.Partials, path)
			log.Debug("wrote partial", "path", path)
		}
	}

	avg, err := Average(partials)
	if err != nil {
		return Result{}, err
	}
	if err := writePNG(res.Path, avg); err != nil {
		return Result{}, err
	}
	res.Image = avg
	res.Elapsed = time.Since(start)
	log.Info("rendered Taylor bundle", "path", res.Path, "tangents", res.Tangents, "degree", opts.Degree, "elapsed", res.Elapsed)
	return res, nil
}

// drawPartial draws the Taylor curves about as, and the generating curve if
// curveColor isn't nil.
func drawPartial(opts *Options, as, offsets []float64, tangentColor, curveColor colormix.Func) (*image.RGBA, error) {
	cv := newCanvas(opts)
	defer cv.Close()

	colors, err := colorsWithAlpha(tangentColor, as, opts.TangentAlpha)
	if err != nil {
		return nil, fmt.Errorf("tangent color: %w", err)
	}
	rows, err := opts.Curve.Tangents(as, opts.Degree, offsets)
	if err != nil {
		return nil, err
	}
	for i, row := range rows {
		if err := cv.polyline(row, colors[i], opts.TangentWidth); err != nil {
			return nil, err
		}
	}

	if curveColor != nil {
		if err := drawCurve(cv, opts, curveColor); err != nil {
			return nil, err
		}
	}
	return cv.pixels(), nil
}

func drawCurve(cv *canvas, opts *Options, color colormix.Func) error {
	ts := taylor.Linspace(opts.CurveDomain[0], opts.CurveDomain[1], opts.CurveRes, true)
	pts := opts.Curve.Evaluate(ts)
	if !opts.CurveColor.IsFunction() {
		c, err := colormix.At(color, ts[0])
		if err != nil {
			return fmt.Errorf("curve color: %w", err)
		}
		if opts.CurveAlpha != nil {
			c = c.WithAlpha(*opts.CurveAlpha)
		}
		return cv.polyline(pts, c, opts.CurveWidth)
	}
	colors, err := colorsWithAlpha(color, ts, opts.CurveAlpha)
	if err != nil {
		return fmt.Errorf("curve color: %w", err)
	}
	return cv.segments(pts, colors, opts.CurveWidth)
}

func colorsWithAlpha(f colormix.Func, ts []float64, alpha *float64) ([]colormix.RGBA, error) {
	colors, err := f.Colors(ts)
	if err != nil {
		return nil, err
	}
	if len(colors) != len(ts) {
		return nil, fmt.Errorf("%w: %d colors for %d parameters", colormix.ErrShapeMismatch, len(colors), len(ts))
	}
	if alpha != nil {
		for i := range colors {
			colors[i] = colors[i].WithAlpha(*alpha)
		}
	}
	return colors, nil
}
