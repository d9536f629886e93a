// Package colormix builds color functions for tinting curves.
//
// A color function ([Func]) maps curve parameters to colors. Constant colors
// and color functions are interchangeable wherever a [Spec] is accepted, so
// gradients can be mixed into further gradients:
//
//	inner, _ := colormix.Cosine2(colormix.Named("red"), colormix.Named("blue"), 0, math.Pi, colormix.Linear)
//	outer, _ := colormix.Mix(colormix.Function(inner), colormix.Named("w"), colormix.Gaussian(math.Pi, 1), colormix.Linear)
//
// Colors are non-premultiplied RGBA with channels in [0, 1]. Mixing happens
// either directly on the channels ([Normal]) or on their squares ([Linear]),
// which approximates blending in linear light.
package colormix
