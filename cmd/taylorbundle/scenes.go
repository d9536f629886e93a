package main

import (
	"fmt"
	"math"
	"slices"
	"strings"

	"honnef.co/go/taylor"
	"honnef.co/go/taylor/colormix"
	"honnef.co/go/taylor/curves"
	"honnef.co/go/taylor/render"
)

const tau = 2 * math.Pi

// scenes are the built-in bundles. Each returns the options for rendering
// it.
var scenes = map[string]func() (render.Options, error){
	"star":             star,
	"asteroid":         asteroid,
	"asteroid-numeric": asteroidNumeric,
	"lissajous":        lissajous,
	"sine":             sine,
	"epitrochoid":      epitrochoid,
}

func sceneNames() string {
	names := make([]string, 0, len(scenes))
	for name := range scenes {
		names = append(names, name)
	}
	slices.Sort(names)
	return strings.Join(names, ", ")
}

func scene(name string) (render.Options, error) {
	f, ok := scenes[name]
	if !ok {
		return render.Options{}, fmt.Errorf("unknown scene %q, want one of %s", name, sceneNames())
	}
	return f()
}

// star is a five-pointed hypotrochoid-like curve with its second degree
// bundle, on A4 paper.
func star() (render.Options, error) {
	mix, err := colormix.Cosine2(colormix.Tuple(1, 0.2, 0.1), colormix.Tuple(0.2, 0, 0), 0, tau/10, colormix.Normal)
	if err != nil {
		return render.Options{}, err
	}
	opts := render.DefaultOptions(curves.Trochoid(-5, 14.0/240, 0))
	opts.Filename = "example_star"
	opts.ShowCurve = false
	opts.Window = taylor.Window(-5/math.Sqrt2, 19/math.Sqrt2, -4, 20)
	opts.Size = taylor.Sz(8.267, 11.692)
	opts.Background = colormix.White
	opts.Parts = 8
	opts.Tangents = 500
	opts.TangentColor = colormix.Function(mix)
	opts.TangentWidth = 0.5
	opts.TangentAlpha = render.Alpha(0.4)
	opts.TangentDomain = [2]float64{-24, 24}
	opts.Degree = 2
	return opts, nil
}

func asteroidOptions(c taylor.Curve, filename string) (render.Options, error) {
	mix, err := colormix.Cosine2(colormix.Tuple(0.2, 0.4, 1), colormix.Tuple(1, 0, 0.2), 0, tau/4, colormix.Normal)
	if err != nil {
		return render.Options{}, err
	}
	opts := render.DefaultOptions(c)
	opts.Filename = filename
	opts.SetDomain(0, tau)
	opts.ShowCurve = false
	opts.Degree = 5
	opts.Window = taylor.Window(-4, 4, -2.25, 2.25)
	opts.Parts = 8
	opts.Tangents = 750
	opts.TangentColor = colormix.Function(mix)
	opts.TangentWidth = 0.5
	opts.TangentAlpha = render.Alpha(0.4)
	return opts, nil
}

// asteroid is the astroid-like trochoid with its fifth degree bundle, using
// exact derivatives.
func asteroid() (render.Options, error) {
	return asteroidOptions(curves.Trochoid(-4, 1.0/3, 0), "example_asteroid_exactdiff")
}

// asteroidNumeric is the same curve as asteroid, given by its coordinates
// only, so that derivatives are computed numerically.
func asteroidNumeric() (render.Options, error) {
	c := taylor.NewCurve(
		func(t float64) float64 { return math.Cos(t) + math.Cos(-3*t)/3 },
		func(t float64) float64 { return math.Sin(t) + math.Sin(-3*t)/3 },
		nil,
		nil,
	)
	return asteroidOptions(c, "example_asteroid_numericdiff")
}

// lissajous colors the bundle of a Lissajous figure by the x coordinate of the
// point of tangency: a red to blue gradient with a golden peak in the middle.
func lissajous() (render.Options, error) {
	c := curves.Lissajous(5, 3, 3.0/5, 1, math.Pi/4)
	xmin, xmax := -3.0/5, 3.0/5
	gradient, err := colormix.MixBounded(colormix.Named("r"), colormix.Named("b"), colormix.Cosine(xmin, xmax), colormix.Linear)
	if err != nil {
		return render.Options{}, err
	}
	peak, err := colormix.MixBounded(colormix.Function(gradient), colormix.Named("gold"), colormix.Gaussian(0, (xmax-xmin)/3), colormix.Linear)
	if err != nil {
		return render.Options{}, err
	}

	opts := render.DefaultOptions(c)
	opts.Filename = "example_lissajous"
	opts.Window = taylor.Window(-4, 4, -2.25, 2.25)
	opts.ShowCurve = false
	opts.Parts = 8
	opts.Tangents = 500
	opts.TangentColor = colormix.Function(colormix.Compose(peak, c.X))
	opts.TangentAlpha = render.Alpha(0.4)
	opts.TangentWidth = 0.5
	opts.TangentDomain = [2]float64{-1, 1}
	opts.Degree = 7
	return opts, nil
}

// sine is the graph of the sine function with its tangent lines.
func sine() (render.Options, error) {
	wx := 8 * math.Pi
	wy := wx * 9 / 32
	opts := render.DefaultOptions(taylor.FromFunction(math.Sin))
	opts.Filename = "sine_400tan"
	opts.Tangents = 400
	opts.Window = taylor.Window(0, wx, -wy, wy)
	opts.SetDomain(0, 8*math.Pi)
	opts.CurveWidth = 6
	opts.TangentWidth = 2
	opts.TangentAlpha = render.Alpha(0.4)
	return opts, nil
}

// epitrochoid is a dense second degree bundle of a twelve-fold epitrochoid,
// blended between light blue and yellow in linear light.
func epitrochoid() (render.Options, error) {
	mix, err := colormix.Mix(colormix.Tuple(0.4, 0.8, 1), colormix.Tuple(1, 0.8, 0.3), colormix.Cosine(0, math.Pi/12), colormix.Linear)
	if err != nil {
		return render.Options{}, err
	}
	const zoom = 3
	opts := render.DefaultOptions(curves.Epitrochoid(12, 1, 1.0/11, 0))
	opts.Filename = "example_epitrochoid"
	opts.ShowCurve = false
	opts.Degree = 2
	opts.Tangents = 5000
	opts.TangentRes = 1024
	opts.TangentDomain = [2]float64{-8, 8}
	opts.TangentWidth = 0.25
	opts.TangentAlpha = render.Alpha(0.2)
	opts.TangentColor = colormix.Function(mix)
	opts.DPI = 80
	opts.Window = taylor.Window(-zoom*16, zoom*16, -zoom*9, zoom*9)
	return opts, nil
}
