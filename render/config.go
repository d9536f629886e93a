package render

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"honnef.co/go/taylor"
	"honnef.co/go/taylor/colormix"
)

// fileOptions is the YAML form of Options. Absent keys leave the base options
// alone.
type fileOptions struct {
	Parts    *int `yaml:"parts"`
	Tangents *int `yaml:"tangents"`
	Degree   *int `yaml:"degree"`

	Domain       *[2]float64 `yaml:"domain"`
	CurveDomain  *[2]float64 `yaml:"curve_domain"`
	BundleDomain *[2]float64 `yaml:"bundle_domain"`

	Size       *[2]float64 `yaml:"size"`
	DPI        *float64    `yaml:"dpi"`
	Window     *[4]float64 `yaml:"window"`
	Background *string     `yaml:"background"`

	ShowCurve  *bool    `yaml:"show_curve"`
	CurveRes   *int     `yaml:"curve_res"`
	CurveColor *string  `yaml:"curve_color"`
	CurveWidth *float64 `yaml:"curve_width"`
	CurveAlpha *float64 `yaml:"curve_alpha"`

	TangentDomain   *[2]float64 `yaml:"tangent_domain"`
	TangentRes      *int        `yaml:"tangent_res"`
	TangentColor    *string     `yaml:"tangent_color"`
	TangentColormap *string     `yaml:"tangent_colormap"`
	TangentWidth    *float64    `yaml:"tangent_width"`
	TangentAlpha    *float64    `yaml:"tangent_alpha"`

	Filename     *string `yaml:"filename"`
	KeepPartials *bool   `yaml:"keep_partials"`
}

// LoadOptions reads options in YAML format from r and applies them on top of
// base. Unknown keys are an error. The curve can't be configured this way.
//
// Colors are strings in any format accepted by [colormix.Parse]. The key
// tangent_colormap colors the tangents with a named colormap spanning the
// bundle domain, and takes precedence over tangent_color. The key domain sets
// both curve_domain and bundle_domain, which in turn take precedence over it.
//
// A window is given as [xmin, xmax, ymin, ymax], a size as [width, height] in
// inches.
func LoadOptions(r io.Reader, base Options) (Options, error) {
	var f fileOptions
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return Options{}, fmt.Errorf("%w: %w", ErrInvalidOptions, err)
	}

	opts := base
	set(&opts.Parts, f.Parts)
	set(&opts.Tangents, f.Tangents)
	set(&opts.Degree, f.Degree)
	if f.Domain != nil {
		opts.SetDomain(f.Domain[0], f.Domain[1])
	}
	set(&opts.CurveDomain, f.CurveDomain)
	set(&opts.BundleDomain, f.BundleDomain)
	if f.Size != nil {
		opts.Size = taylor.Sz(f.Size[0], f.Size[1])
	}
	set(&opts.DPI, f.DPI)
	if f.Window != nil {
		opts.Window = taylor.Window(f.Window[0], f.Window[1], f.Window[2], f.Window[3])
	}
	if f.Background != nil {
		c, err := colormix.Parse(*f.Background)
		if err != nil {
			return Options{}, fmt.Errorf("background: %w", err)
		}
		opts.Background = c
	}

	set(&opts.ShowCurve, f.ShowCurve)
	set(&opts.CurveRes, f.CurveRes)
	if f.CurveColor != nil {
		opts.CurveColor = colormix.Named(*f.CurveColor)
	}
	set(&opts.CurveWidth, f.CurveWidth)
	if f.CurveAlpha != nil {
		opts.CurveAlpha = Alpha(*f.CurveAlpha)
	}

	set(&opts.TangentDomain, f.TangentDomain)
	set(&opts.TangentRes, f.TangentRes)
	if f.TangentColor != nil {
		opts.TangentColor = colormix.Named(*f.TangentColor)
	}
	if f.TangentColormap != nil {
		lo, hi := opts.BundleDomain[0], opts.BundleDomain[1]
		cm, err := colormix.Colormap(*f.TangentColormap, colormix.Normalize(lo, hi))
		if err != nil {
			return Options{}, fmt.Errorf("tangent colormap: %w", err)
		}
		opts.TangentColor = colormix.Function(cm)
	}
	set(&opts.TangentWidth, f.TangentWidth)
	if f.TangentAlpha != nil {
		opts.TangentAlpha = Alpha(*f.TangentAlpha)
	}

	set(&opts.Filename, f.Filename)
	set(&opts.KeepPartials, f.KeepPartials)
	return opts, nil
}

func set[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}
