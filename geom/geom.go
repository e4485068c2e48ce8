// Package geom provides axis-aligned points and rectangles whose
// arithmetic never leaves the domain of their scalar type.
//
// It is patterned after image.Point and image.Rectangle, but
// rectangles are closed, so Max is part of a Rect, and every
// operation that could overflow either saturates at the domain's
// bounds or fails with an error, depending on the variant used.
// Intermediate results are computed in a domain.Wide so that no
// operation overflows, even for 64-bit domains.
package geom

import (
	"errors"

	"deedles.dev/xgeom/domain"
)

// Scalar is a constraint for the types that geom types and functions
// can handle.
type Scalar = domain.Scalar

// Integer is a constraint for any integer type.
type Integer = domain.Integer

// Float is a constraint for any floating-point type.
type Float = domain.Float

// Signed is a constraint for translation deltas.
type Signed = domain.Signed

var (
	// ErrOutOfRange indicates that the true result of a checked
	// operation falls outside of the domain.
	ErrOutOfRange = errors.New("out of range")

	// ErrInvalidSize indicates a resize target that is smaller than
	// three or larger than the domain.
	ErrInvalidSize = errors.New("invalid size")

	// ErrAtFloor indicates that a rectangle is too small to be
	// deflated any further.
	ErrAtFloor = errors.New("at floor")
)

// Edges is a bitmask representing zero or more edges of a rectangle.
type Edges uint32

const (
	EdgeNone Edges = 0
	EdgeTop  Edges = 1 << (iota - 1)
	EdgeBottom
	EdgeLeft
	EdgeRight
)

// Has reports whether all of the edges in e2 are set in e.
func (e Edges) Has(e2 Edges) bool {
	return e&e2 == e2
}

func (e Edges) String() string {
	if e == EdgeNone {
		return "none"
	}

	var buf []byte
	for _, edge := range [...]struct {
		e    Edges
		name string
	}{
		{EdgeTop, "top"},
		{EdgeBottom, "bottom"},
		{EdgeLeft, "left"},
		{EdgeRight, "right"},
	} {
		if e&edge.e == 0 {
			continue
		}
		if len(buf) > 0 {
			buf = append(buf, '|')
		}
		buf = append(buf, edge.name...)
	}
	return string(buf)
}

// modifier returns 1 if b is true and 0 otherwise.
func modifier(b bool) int64 {
	if b {
		return 1
	}
	return 0
}
