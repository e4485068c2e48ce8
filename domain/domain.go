// Package domain describes the closed numeric domains that xgeom
// points and rectangles live in.
//
// Every scalar type has a domain [Min, Max]. For integer types this is
// the full range of the type. For float types it is the range of
// integers that the type represents exactly, so that bounds checks
// behave the same way they do for integers.
//
// Arithmetic that might leave a domain is carried out in a Wide and
// then either clamped back into the domain or rejected.
package domain

import (
	"math"
	"unsafe"

	"golang.org/x/exp/constraints"
)

// Integer is a constraint for any integer type.
type Integer interface {
	constraints.Integer
}

// Float is a constraint for any floating-point type.
type Float interface {
	constraints.Float
}

// Signed is a constraint for the types that can be used as a
// translation delta. See Offset for how a float delta applies to an
// integer domain.
type Signed interface {
	constraints.Signed | constraints.Float
}

// Scalar is a constraint for the types that domains, and therefore
// geom types and functions, can handle.
type Scalar interface {
	Integer | Float
}

const (
	f32Min = -16777216
	f32Max = 16777215
	f64Min = -9007199254740992
	f64Max = 9007199254740991
)

// Descriptor describes the domain of T. It is a small value computed
// from the type alone and is never mutated.
type Descriptor[T Scalar] struct {
	min, max T
	bits     int
	signed   bool
	float    bool
}

// Of returns the descriptor for T's domain.
func Of[T Scalar]() Descriptor[T] {
	var zero T
	d := Descriptor[T]{bits: int(unsafe.Sizeof(zero)) * 8}

	half := T(1)
	half /= 2
	d.float = half != 0

	neg := zero
	neg--
	d.signed = neg < 0

	switch {
	case d.float && d.bits == 32:
		lo, hi := float64(f32Min), float64(f32Max)
		d.min, d.max = T(lo), T(hi)
	case d.float:
		lo, hi := float64(f64Min), float64(f64Max)
		d.min, d.max = T(lo), T(hi)
	case d.signed:
		hi := int64(1)<<(d.bits-1) - 1
		d.min, d.max = T(-hi-1), T(hi)
	default:
		hi := uint64(math.MaxUint64) >> (64 - d.bits)
		d.max = T(hi)
	}
	return d
}

// Min returns the smallest value of the domain.
func (d Descriptor[T]) Min() T { return d.min }

// Max returns the largest value of the domain.
func (d Descriptor[T]) Max() T { return d.max }

// Bits returns the width of T in bits.
func (d Descriptor[T]) Bits() int { return d.bits }

// Signed reports whether the domain contains negative values.
func (d Descriptor[T]) Signed() bool { return d.signed }

// Float reports whether T is a floating-point type.
func (d Descriptor[T]) Float() bool { return d.float }

// Widen converts v to a Wide.
func (d Descriptor[T]) Widen(v T) Wide {
	switch {
	case d.float:
		return WideFloat(float64(v))
	case d.signed:
		return WideInt(int64(v))
	default:
		return WideUint(uint64(v))
	}
}

// WideMin returns Min as a Wide.
func (d Descriptor[T]) WideMin() Wide { return d.Widen(d.min) }

// WideMax returns Max as a Wide.
func (d Descriptor[T]) WideMax() Wide { return d.Widen(d.max) }

// Span returns Max - Min.
func (d Descriptor[T]) Span() Wide {
	return d.WideMax().Sub(d.WideMin())
}

// Contains reports whether w lies within the domain. NaN lies within
// no domain.
func (d Descriptor[T]) Contains(w Wide) bool {
	if w.IsNaN() {
		return false
	}
	if !d.float {
		w = w.Trunc()
	}
	return w.Cmp(d.WideMin()) >= 0 && w.Cmp(d.WideMax()) <= 0
}

// Narrow converts w to T. The result is only meaningful if w is
// within the domain. For integer domains, a float w is truncated
// toward zero first.
func (d Descriptor[T]) Narrow(w Wide) T {
	if d.float {
		return T(w.Float64())
	}
	return T(w.Trunc().bits64())
}

// Clamp converts w to T, saturating at the domain's bounds. For
// integer domains, a float w is truncated toward zero first.
func (d Descriptor[T]) Clamp(w Wide) T {
	if !d.float {
		w = w.Trunc()
	}
	switch {
	case w.Cmp(d.WideMin()) < 0:
		return d.min
	case w.Cmp(d.WideMax()) > 0:
		return d.max
	}
	return d.Narrow(w)
}

// Offset widens the delta v for arithmetic on values of d's domain.
// For integer domains, a float v becomes an integer Wide as by
// Wide.Trunc. Offset reports false, along with a zero Wide, if v is
// NaN.
func Offset[T Scalar, D Signed](d Descriptor[T], v D) (Wide, bool) {
	w := Of[D]().Widen(v)
	if w.IsNaN() {
		return Wide{}, false
	}
	if !d.float {
		w = w.Trunc()
	}
	return w, true
}

// ClampBetween clamps w into [lo, hi], which must be ordered.
func ClampBetween(w, lo, hi Wide) Wide {
	switch {
	case w.Cmp(lo) < 0:
		return lo
	case w.Cmp(hi) > 0:
		return hi
	}
	return w
}
