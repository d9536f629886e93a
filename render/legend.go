package render

import (
	"context"
	"fmt"

	"github.com/gogpu/gg"

	"honnef.co/go/taylor"
	"honnef.co/go/taylor/colormix"
)

// RenderLegend renders a color bar showing the tangent color over the bundle
// domain, from left to right, and writes it to a PNG file next to the
// rendering, with a "_legend" suffix. The bar is as wide as the rendering and
// a tenth as tall. Colors are drawn opaque, ignoring TangentAlpha.
func (r *Renderer) RenderLegend(ctx context.Context, opts Options) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if err := opts.Validate(); err != nil {
		return "", err
	}
	color, err := colormix.Resolve(opts.TangentColor)
	if err != nil {
		return "", err
	}

	w, h := opts.PixelSize()
	h = max(1, h/10)
	lo, hi := opts.BundleDomain[0], opts.BundleDomain[1]
	// sample the middle of every pixel column
	px := (hi - lo) / float64(w)
	ts := taylor.Linspace(lo+px/2, hi+px/2, w, false)
	colors, err := colorsWithAlpha(color, ts, Alpha(1))
	if err != nil {
		return "", fmt.Errorf("tangent color: %w", err)
	}

	dc := gg.NewContext(w, h)
	defer dc.Close()
	dc.ClearWithColor(gg.RGBA(opts.Background))
	for x, c := range colors {
		dc.SetRGBA(c.R, c.G, c.B, c.A)
		dc.DrawRectangle(float64(x), 0, 1, float64(h))
		if err := dc.Fill(); err != nil {
			return "", err
		}
	}

	path := r.base(&opts) + "_legend.png"
	if err := dc.SavePNG(path); err != nil {
		return "", err
	}
	Logger().Info("rendered legend", "path", path)
	return path, nil
}
