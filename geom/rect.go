package geom

import (
	"fmt"

	"deedles.dev/xgeom/domain"
)

// A Rect contains the points with Min.X <= X <= Max.X and
// Min.Y <= Y <= Max.Y. Unlike image.Rectangle, both Min and Max are
// inside of the rectangle.
//
// Nothing requires Min to be less than or equal to Max. If
// Min.X > Max.X, or likewise for Y, the rectangle is empty along that
// axis and contains no points.
type Rect[T Scalar] struct {
	Min, Max Point[T]
}

// Rt is shorthand for Rect{Pt(x1, y1), Pt(x2, y2)}. Unlike image.Rect,
// the coordinates are not reordered.
func Rt[T Scalar](x1, y1, x2, y2 T) Rect[T] {
	return Rect[T]{Point[T]{x1, y1}, Point[T]{x2, y2}}
}

// Rpt is shorthand for Rect{min, max}.
func Rpt[T Scalar](min, max Point[T]) Rect[T] {
	return Rect[T]{Min: min, Max: max}
}

// Largest returns the rectangle that covers all of T's domain on both
// axes.
func Largest[T Scalar]() Rect[T] {
	return Rect[T]{MinPoint[T](), MaxPoint[T]()}
}

func (r Rect[T]) String() string {
	return fmt.Sprintf("(%v, %v)", r.Min, r.Max)
}

// Empty reports whether r is empty along either axis.
func (r Rect[T]) Empty() bool {
	return r.Min.X > r.Max.X || r.Min.Y > r.Max.Y
}

// Canon returns r with the coordinates of Min and Max swapped where
// necessary so that it is not empty.
func (r Rect[T]) Canon() Rect[T] {
	if r.Max.X < r.Min.X {
		r.Min.X, r.Max.X = r.Max.X, r.Min.X
	}
	if r.Max.Y < r.Min.Y {
		r.Min.Y, r.Max.Y = r.Max.Y, r.Min.Y
	}
	return r
}

// Contains reports whether p is inside of r. A point is never inside
// of an axis along which r is empty.
func (r Rect[T]) Contains(p Point[T]) bool {
	return r.Min.X <= p.X && p.X <= r.Max.X &&
		r.Min.Y <= p.Y && p.Y <= r.Max.Y
}

// Saturated returns the edges of r that are already at the bounds of
// the domain. The left and top edges are Min.X and Min.Y.
func (r Rect[T]) Saturated() Edges {
	d := domain.Of[T]()

	var e Edges
	if r.Min.X == d.Min() {
		e |= EdgeLeft
	}
	if r.Max.X == d.Max() {
		e |= EdgeRight
	}
	if r.Min.Y == d.Min() {
		e |= EdgeTop
	}
	if r.Max.Y == d.Max() {
		e |= EdgeBottom
	}
	return e
}

// Size returns the distance between Min and Max along each axis.
func Size[T Integer](r Rect[T]) Point[uint64] {
	return Delta(r.Min, r.Max)
}

// SizeFloat is like Size but for floating-point domains.
func SizeFloat[T Float](r Rect[T]) Point[float64] {
	return DeltaFloat(r.Min, r.Max)
}

// Len returns the number of values along each axis of r, which is
// one more than its Size. The only length that doesn't fit in a
// uint64 is that of an axis covering all of a 64-bit domain, which is
// reported as math.MaxUint64. Len is only meaningful for axes along
// which r is not empty.
func Len[T Integer](r Rect[T]) Point[uint64] {
	x, y := deltaWide(domain.Of[T](), r.Min, r.Max)
	one := domain.WideInt(1)
	return Point[uint64]{x.Add(one).Uint64(), y.Add(one).Uint64()}
}

// MaxDelta returns the larger of the two components of Size.
func MaxDelta[T Integer](r Rect[T]) uint64 {
	s := Size(r)
	return max(s.X, s.Y)
}

// MaxLen returns the larger of the two components of Len.
func MaxLen[T Integer](r Rect[T]) uint64 {
	l := Len(r)
	return max(l.X, l.Y)
}

// Inflate returns r grown by one unit on every side. An edge that is
// already at the bound of the domain stays where it is and the
// opposite edge moves by two instead, saturating at its own bound if
// there isn't room for both. If r already covers the whole domain
// along either axis, r is returned unchanged along with an error
// wrapping ErrOutOfRange.
func (r Rect[T]) Inflate() (Rect[T], error) {
	sat := r.Saturated()
	if sat.Has(EdgeLeft|EdgeRight) || sat.Has(EdgeTop|EdgeBottom) {
		return r, fmt.Errorf("inflate %v: %w", r, ErrOutOfRange)
	}

	d := domain.Of[T]()
	minX, maxX := inflateAxis(d, r.Min.X, r.Max.X, sat.Has(EdgeLeft), sat.Has(EdgeRight))
	minY, maxY := inflateAxis(d, r.Min.Y, r.Max.Y, sat.Has(EdgeTop), sat.Has(EdgeBottom))
	return Rt(minX, minY, maxX, maxY), nil
}

// InflateInPlace is like Inflate but modifies r. On failure, r is not
// modified.
func (r *Rect[T]) InflateInPlace() error {
	n, err := r.Inflate()
	if err != nil {
		return err
	}
	*r = n
	return nil
}

func inflateAxis[T Scalar](d domain.Descriptor[T], lo, hi T, atMin, atMax bool) (T, T) {
	minMod := 1 - modifier(atMin) + modifier(atMax)
	maxMod := 1 + modifier(atMin) - modifier(atMax)
	return d.Clamp(d.Widen(lo).Sub(domain.WideInt(minMod))),
		d.Clamp(d.Widen(hi).Add(domain.WideInt(maxMod)))
}

// Deflate returns r shrunk by one unit on every side. If r is too
// small along either axis, meaning that Max - Min is less than three,
// r is returned unchanged along with an error wrapping ErrAtFloor.
func (r Rect[T]) Deflate() (Rect[T], error) {
	d := domain.Of[T]()
	x1, y1 := r.Min.widen(d)
	x2, y2 := r.Max.widen(d)

	three := domain.WideInt(3)
	if x2.Sub(x1).Cmp(three) < 0 || y2.Sub(y1).Cmp(three) < 0 {
		return r, fmt.Errorf("deflate %v: %w", r, ErrAtFloor)
	}

	one := domain.WideInt(1)
	return Rt(
		d.Narrow(x1.Add(one)),
		d.Narrow(y1.Add(one)),
		d.Narrow(x2.Sub(one)),
		d.Narrow(y2.Sub(one)),
	), nil
}

// DeflateInPlace is like Deflate but modifies r. On failure, r is not
// modified.
func (r *Rect[T]) DeflateInPlace() error {
	n, err := r.Deflate()
	if err != nil {
		return err
	}
	*r = n
	return nil
}

// Resize returns a rectangle that is size units long along both axes,
// centered on r as closely as the domain allows. When the difference
// between the old and new lengths is odd, the new Min is moved by half
// of the difference truncated toward zero. If the rectangle would
// cross a bound of the domain, it is pinned against that bound
// instead.
//
// size must be at least three and no more than the number of values
// in the domain, Max - Min + 1, which is one more than the domain's
// Span. Otherwise, r is returned unchanged with an error wrapping
// ErrInvalidSize. Resizing to exactly Max - Min + 1 yields Largest.
func (r Rect[T]) Resize(size uint64) (Rect[T], error) {
	d := domain.Of[T]()
	s := domain.WideUint(size)
	if size < 3 || s.Cmp(d.Span().Add(domain.WideInt(1))) > 0 {
		return r, fmt.Errorf("resize %v to %v: %w", r, size, ErrInvalidSize)
	}

	minX, maxX := resizeAxis(d, r.Min.X, r.Max.X, s)
	minY, maxY := resizeAxis(d, r.Min.Y, r.Max.Y, s)
	return Rt(minX, minY, maxX, maxY), nil
}

// ResizeInPlace is like Resize but modifies r. On failure, r is not
// modified.
func (r *Rect[T]) ResizeInPlace(size uint64) error {
	n, err := r.Resize(size)
	if err != nil {
		return err
	}
	*r = n
	return nil
}

func resizeAxis[T Scalar](d domain.Descriptor[T], lo, hi T, size domain.Wide) (T, T) {
	one := domain.WideInt(1)
	wlo := d.Widen(lo)
	length := d.Widen(hi).Sub(wlo).Add(one)
	last := size.Sub(one)

	min := wlo.Add(length.Sub(size).Half())
	min = domain.ClampBetween(min, d.WideMin(), d.WideMax().Sub(last))
	return d.Narrow(min), d.Narrow(min.Add(last))
}

// TranslateRect returns r moved by delta. The size of the rectangle
// never changes: if r would cross a bound of the domain, it is pinned
// against that bound instead. delta is handled the same way that it is
// by Translate.
func TranslateRect[T Scalar, D Signed](r Rect[T], delta Point[D]) Rect[T] {
	d := domain.Of[T]()
	dx, dy, _ := widenDelta(d, delta)
	minX, maxX := translateAxis(d, r.Min.X, r.Max.X, dx)
	minY, maxY := translateAxis(d, r.Min.Y, r.Max.Y, dy)
	return Rt(minX, minY, maxX, maxY)
}

// TranslateRectInPlace is like TranslateRect but modifies r.
func TranslateRectInPlace[T Scalar, D Signed](r *Rect[T], delta Point[D]) {
	*r = TranslateRect(*r, delta)
}

func translateAxis[T Scalar](d domain.Descriptor[T], lo, hi T, delta domain.Wide) (T, T) {
	wlo := d.Widen(lo)
	length := d.Widen(hi).Sub(wlo)

	lower, upper := d.WideMin(), d.WideMax()
	if length.Sign() < 0 {
		lower = lower.Sub(length)
	} else {
		upper = upper.Sub(length)
	}

	min := domain.ClampBetween(wlo.Add(delta), lower, upper)
	return d.Narrow(min), d.Narrow(min.Add(length))
}

// CheckedTranslateRect returns r moved by delta. If any coordinate
// would leave the domain, r is returned unchanged along with an error
// wrapping ErrOutOfRange.
func CheckedTranslateRect[T Scalar, D Signed](r Rect[T], delta Point[D]) (Rect[T], error) {
	min, err := CheckedTranslate(r.Min, delta)
	if err != nil {
		return r, fmt.Errorf("translate %v by %v: %w", r, delta, ErrOutOfRange)
	}
	max, err := CheckedTranslate(r.Max, delta)
	if err != nil {
		return r, fmt.Errorf("translate %v by %v: %w", r, delta, ErrOutOfRange)
	}
	return Rect[T]{min, max}, nil
}

// CheckedTranslateRectInPlace is like CheckedTranslateRect but
// modifies r. On failure, r is not modified.
func CheckedTranslateRectInPlace[T Scalar, D Signed](r *Rect[T], delta Point[D]) error {
	n, err := CheckedTranslateRect(*r, delta)
	if err != nil {
		return err
	}
	*r = n
	return nil
}
