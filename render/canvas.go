package render

import (
	"image"
	"image/draw"

	"github.com/gogpu/gg"

	"honnef.co/go/taylor"
	"honnef.co/go/taylor/colormix"
)

// canvas draws polylines given in window coordinates onto a gg context.
type canvas struct {
	dc *gg.Context
	// window to pixels
	aff taylor.Affine
	// points per inch
	scale float64
	// visible area in pixels
	bounds taylor.Rect
}

func newCanvas(opts *Options) *canvas {
	w, h := opts.PixelSize()
	dc := gg.NewContext(w, h)
	dc.ClearWithColor(gg.RGBA(opts.Background))
	dc.SetLineCap(gg.LineCapButt)
	dc.SetLineJoin(gg.LineJoinRound)
	return &canvas{
		dc:     dc,
		aff:    taylor.WindowToPixels(opts.Window, taylor.Sz(float64(w), float64(h))),
		scale:  opts.DPI / 72,
		bounds: taylor.Rect{X0: 0, Y0: 0, X1: float64(w), Y1: float64(h)},
	}
}

func (cv *canvas) Close() error {
	return cv.dc.Close()
}

// polyline strokes the line through pts with color c and the given width in
// points. The line is interrupted at non-finite points, and parts far outside
// of the canvas are clipped away.
func (cv *canvas) polyline(pts []taylor.Point, c colormix.RGBA, width float64) error {
	if !cv.path(pts, width) {
		return nil
	}
	cv.dc.SetRGBA(c.R, c.G, c.B, c.A)
	cv.dc.SetLineWidth(width * cv.scale)
	return cv.dc.Stroke()
}

// segments strokes every segment pts[i]–pts[i+1] in its own color, colors[i].
func (cv *canvas) segments(pts []taylor.Point, colors []colormix.RGBA, width float64) error {
	for i := 0; i+1 < len(pts); i++ {
		if err := cv.polyline(pts[i:i+2], colors[i], width); err != nil {
			return err
		}
	}
	return nil
}

// path builds the current path from pts and reports whether anything of it is
// visible.
func (cv *canvas) path(pts []taylor.Point, width float64) bool {
	clip := cv.bounds.Inflate(width*cv.scale+1, width*cv.scale+1)
	var (
		visible bool
		// end of the last drawn segment
		pen    taylor.Point
		hasPen bool
	)
	for i := 0; i+1 < len(pts); i++ {
		p0, p1 := pts[i].Transform(cv.aff), pts[i+1].Transform(cv.aff)
		if !p0.IsFinite() || !p1.IsFinite() {
			hasPen = false
			continue
		}
		q0, q1, ok := clipSegment(clip, p0, p1)
		if !ok {
			hasPen = false
			continue
		}
		if !hasPen || q0 != pen {
			cv.dc.MoveTo(q0.X, q0.Y)
		}
		cv.dc.LineTo(q1.X, q1.Y)
		pen, hasPen = q1, true
		visible = true
	}
	return visible
}

// clipSegment clips the segment p0–p1 to r, using the Liang–Barsky algorithm.
// It reports false if no part of the segment lies within r.
func clipSegment(r taylor.Rect, p0, p1 taylor.Point) (taylor.Point, taylor.Point, bool) {
	d := p1.Sub(p0)
	t0, t1 := 0.0, 1.0
	edges := [4][2]float64{
		{-d.X, p0.X - r.X0},
		{d.X, r.X1 - p0.X},
		{-d.Y, p0.Y - r.Y0},
		{d.Y, r.Y1 - p0.Y},
	}
	for _, e := range edges {
		p, q := e[0], e[1]
		if p == 0 {
			if q < 0 {
				return taylor.Point{}, taylor.Point{}, false
			}
			continue
		}
		t := q / p
		if p < 0 {
			if t > t1 {
				return taylor.Point{}, taylor.Point{}, false
			}
			t0 = max(t0, t)
		} else {
			if t < t0 {
				return taylor.Point{}, taylor.Point{}, false
			}
			t1 = min(t1, t)
		}
	}
	q0, q1 := p0, p1
	if t0 > 0 {
		q0 = p0.Translate(d.Mul(t0))
	}
	if t1 < 1 {
		q1 = p0.Translate(d.Mul(t1))
	}
	return q0, q1, true
}

// pixels returns the canvas' pixels.
func (cv *canvas) pixels() *image.RGBA {
	img := cv.dc.Image()
	if rgba, ok := img.(*image.RGBA); ok {
		return rgba
	}
	rgba := image.NewRGBA(img.Bounds())
	draw.Draw(rgba, rgba.Bounds(), img, img.Bounds().Min, draw.Src)
	return rgba
}
