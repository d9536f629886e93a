package render

import "errors"

var (
	// ErrInvalidOptions is returned when rendering options are inconsistent
	// or out of range.
	ErrInvalidOptions = errors.New("render: invalid options")
	// ErrShapeMismatch is returned when images that should have the same
	// size don't.
	ErrShapeMismatch = errors.New("render: shape mismatch")
	// ErrNoImages is returned when averaging an empty list of images.
	ErrNoImages = errors.New("render: no images")
)
