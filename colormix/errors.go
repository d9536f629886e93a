package colormix

import "errors"

var (
	// ErrInvalidColorSpec is returned when a color specification can't be
	// interpreted as a color.
	ErrInvalidColorSpec = errors.New("colormix: invalid color specification")

	// ErrUnknownColormap is returned when a colormap name isn't known.
	ErrUnknownColormap = errors.New("colormix: unknown colormap")

	// ErrShapeMismatch is returned when a color or weight function returns a
	// different number of values than it was given parameters.
	ErrShapeMismatch = errors.New("colormix: shape mismatch")
)
