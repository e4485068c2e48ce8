package domain

import (
	"math"
	"math/bits"
)

// Wide is an intermediate value wide enough to hold the sum or
// difference of any two values of any domain without overflowing.
// For integer domains it is a 128-bit two's complement integer. For
// float domains it is a float64, which represents every value of
// both float domains and their sums exactly.
//
// The zero Wide is integer zero.
type Wide struct {
	hi  int64
	lo  uint64
	f   float64
	flt bool
}

// WideInt returns v as a Wide.
func WideInt(v int64) Wide {
	return Wide{hi: v >> 63, lo: uint64(v)}
}

// WideUint returns v as a Wide.
func WideUint(v uint64) Wide {
	return Wide{lo: v}
}

// WideFloat returns f as a Wide.
func WideFloat(f float64) Wide {
	return Wide{f: f, flt: true}
}

// IsFloat reports whether w carries a float64.
func (w Wide) IsFloat() bool { return w.flt }

// IsNaN reports whether w is a float NaN.
func (w Wide) IsNaN() bool { return w.flt && math.IsNaN(w.f) }

// Add returns w + v. If either is a float, so is the result.
func (w Wide) Add(v Wide) Wide {
	if w.flt || v.flt {
		return WideFloat(w.Float64() + v.Float64())
	}
	lo, carry := bits.Add64(w.lo, v.lo, 0)
	return Wide{hi: w.hi + v.hi + int64(carry), lo: lo}
}

// Sub returns w - v. If either is a float, so is the result.
func (w Wide) Sub(v Wide) Wide {
	if w.flt || v.flt {
		return WideFloat(w.Float64() - v.Float64())
	}
	lo, borrow := bits.Sub64(w.lo, v.lo, 0)
	return Wide{hi: w.hi - v.hi - int64(borrow), lo: lo}
}

// Neg returns -w.
func (w Wide) Neg() Wide {
	if w.flt {
		return WideFloat(-w.f)
	}
	return Wide{}.Sub(w)
}

// Sign returns -1, 0 or +1 depending on the sign of w.
func (w Wide) Sign() int {
	if w.flt {
		switch {
		case w.f < 0:
			return -1
		case w.f > 0:
			return 1
		}
		return 0
	}
	switch {
	case w.hi < 0:
		return -1
	case w.hi == 0 && w.lo == 0:
		return 0
	}
	return 1
}

// Cmp returns -1 if w < v, 0 if w == v and +1 if w > v.
func (w Wide) Cmp(v Wide) int {
	if w.flt || v.flt {
		a, b := w.Float64(), v.Float64()
		switch {
		case a < b:
			return -1
		case a > b:
			return 1
		}
		return 0
	}
	switch {
	case w.hi < v.hi:
		return -1
	case w.hi > v.hi:
		return 1
	case w.lo < v.lo:
		return -1
	case w.lo > v.lo:
		return 1
	}
	return 0
}

// Half returns w/2, truncated toward zero for integers.
func (w Wide) Half() Wide {
	if w.flt {
		return WideFloat(math.Trunc(w.f / 2))
	}
	if w.hi < 0 {
		return w.Neg().Half().Neg()
	}
	return Wide{hi: w.hi >> 1, lo: w.lo>>1 | uint64(w.hi)<<63}
}

// Trunc returns w as an integer, truncating a float toward zero.
// Floats at or beyond ±2^64, which is outside of every domain,
// saturate there. NaN becomes zero.
func (w Wide) Trunc() Wide {
	if !w.flt {
		return w
	}
	f := math.Trunc(w.f)
	switch {
	case math.IsNaN(f):
		return Wide{}
	case f >= 0x1p64:
		return Wide{hi: 1}
	case f <= -0x1p64:
		return Wide{hi: -1}
	case f < 0:
		return WideUint(uint64(-f)).Neg()
	}
	return WideUint(uint64(f))
}

// Float64 returns w as a float64, rounding if necessary.
func (w Wide) Float64() float64 {
	if w.flt {
		return w.f
	}
	return float64(w.hi)*(1<<64) + float64(w.lo)
}

// Uint64 returns w as a uint64, saturating at 0 and math.MaxUint64.
func (w Wide) Uint64() uint64 {
	if w.flt {
		switch {
		case w.f <= 0:
			return 0
		case w.f >= math.MaxUint64:
			return math.MaxUint64
		}
		return uint64(w.f)
	}
	switch {
	case w.hi < 0:
		return 0
	case w.hi > 0:
		return math.MaxUint64
	}
	return w.lo
}

// bits64 returns the low 64 bits of an integer Wide, which is the
// two's complement representation of any value that fits a 64-bit
// domain.
func (w Wide) bits64() uint64 {
	return w.lo
}
