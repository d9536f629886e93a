package colormix

import (
	"fmt"
	"strings"
)

type specKind uint8

const (
	kindInvalid specKind = iota
	kindColor
	kindFunc
	kindName
	kindTuple
)

// Spec is a color specification: either a constant color, described in one of
// several ways, or a color function. Use [Resolve] to turn a Spec into a
// [Func].
//
// Anywhere a Spec is accepted, color functions can be used in place of
// constant colors, which allows building trees of gradients of arbitrary
// depth.
//
// The zero value is not a valid specification.
type Spec struct {
	kind  specKind
	color RGBA
	fn    Func
	name  string
	tuple []float64
}

// Constant returns the specification of the constant color c.
func Constant(c RGBA) Spec {
	return Spec{kind: kindColor, color: c}
}

// Function returns the specification of the color function f.
func Function(f Func) Spec {
	return Spec{kind: kindFunc, fn: f}
}

// Named returns the specification of a named color or hex string. See [Parse]
// for the accepted formats. The name is only interpreted by [Resolve].
func Named(s string) Spec {
	return Spec{kind: kindName, name: s}
}

// Tuple returns the specification of a color given by 3 (RGB) or 4 (RGBA)
// components. The components are only checked by [Resolve].
func Tuple(c ...float64) Spec {
	return Spec{kind: kindTuple, tuple: append([]float64(nil), c...)}
}

// IsFunction reports whether s specifies a color function, as opposed to a
// constant color.
func (s Spec) IsFunction() bool {
	return s.kind == kindFunc
}

func (s Spec) String() string {
	switch s.kind {
	case kindColor:
		return s.color.String()
	case kindFunc:
		return fmt.Sprintf("func(%T)", s.fn)
	case kindName:
		return s.name
	case kindTuple:
		parts := make([]string, len(s.tuple))
		for i, v := range s.tuple {
			parts[i] = fmt.Sprintf("%g", v)
		}
		return "(" + strings.Join(parts, ", ") + ")"
	default:
		return "<invalid>"
	}
}

// Resolve turns a specification into a color function. Color functions are
// returned unchanged, everything else becomes a [Solid] color. Invalid
// specifications fail immediately with [ErrInvalidColorSpec].
func Resolve(s Spec) (Func, error) {
	switch s.kind {
	case kindFunc:
		if s.fn == nil {
			return nil, fmt.Errorf("%w: nil color function", ErrInvalidColorSpec)
		}
		return s.fn, nil
	case kindColor:
		return Solid(s.color), nil
	case kindName:
		c, err := Parse(s.name)
		if err != nil {
			return nil, err
		}
		return Solid(c), nil
	case kindTuple:
		c, err := FromTuple(s.tuple...)
		if err != nil {
			return nil, err
		}
		return Solid(c), nil
	default:
		return nil, fmt.Errorf("%w: empty specification", ErrInvalidColorSpec)
	}
}
