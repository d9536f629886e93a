package taylor

import "errors"

var (
	// ErrNegativeOrder is returned when a derivative of negative order is
	// requested.
	ErrNegativeOrder = errors.New("taylor: negative derivative order")

	// ErrNegativeDegree is returned when a Taylor polynomial of negative degree
	// is requested.
	ErrNegativeDegree = errors.New("taylor: negative polynomial degree")

	// ErrShapeMismatch is returned when an output slice doesn't have the length
	// of the parameter slice it is supposed to be filled from.
	ErrShapeMismatch = errors.New("taylor: shape mismatch")
)
