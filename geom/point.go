package geom

import (
	"fmt"

	"deedles.dev/xgeom/domain"
)

// Point is an X, Y coordinate pair.
type Point[T Scalar] struct {
	X, Y T
}

// Pt is shorthand for Point[T]{X: x, Y: y}.
func Pt[T Scalar](x, y T) Point[T] {
	return Point[T]{x, y}
}

// MinPoint returns the point with both coordinates at the minimum of
// T's domain.
func MinPoint[T Scalar]() Point[T] {
	d := domain.Of[T]()
	return Point[T]{d.Min(), d.Min()}
}

// MaxPoint returns the point with both coordinates at the maximum of
// T's domain.
func MaxPoint[T Scalar]() Point[T] {
	d := domain.Of[T]()
	return Point[T]{d.Max(), d.Max()}
}

func (p Point[T]) String() string {
	return fmt.Sprintf("(%v, %v)", p.X, p.Y)
}

// In reports whether p is in r.
func (p Point[T]) In(r Rect[T]) bool {
	return r.Contains(p)
}

func (p Point[T]) widen(d domain.Descriptor[T]) (x, y domain.Wide) {
	return d.Widen(p.X), d.Widen(p.Y)
}

// widenDelta widens delta for use with values of d's domain. ok is
// false if either coordinate is NaN, in which case that coordinate is
// zero.
func widenDelta[T Scalar, D Signed](d domain.Descriptor[T], delta Point[D]) (x, y domain.Wide, ok bool) {
	x, okx := domain.Offset(d, delta.X)
	y, oky := domain.Offset(d, delta.Y)
	return x, y, okx && oky
}

// Translate returns p moved by delta. Each coordinate is clamped to
// the domain independently, so Translate never fails.
//
// If T is an integer type and D is not, the coordinates of delta are
// truncated toward zero. A NaN coordinate of delta moves nothing.
func Translate[T Scalar, D Signed](p Point[T], delta Point[D]) Point[T] {
	d := domain.Of[T]()
	x, y := p.widen(d)
	dx, dy, _ := widenDelta(d, delta)
	return Point[T]{
		X: d.Clamp(x.Add(dx)),
		Y: d.Clamp(y.Add(dy)),
	}
}

// TranslateInPlace moves p by delta, saturating at the domain's
// bounds. The result is the same as that of Translate.
func TranslateInPlace[T Scalar, D Signed](p *Point[T], delta Point[D]) {
	*p = Translate(*p, delta)
}

// CheckedTranslate returns p moved by delta. If either coordinate
// would leave the domain, or either coordinate of delta is NaN, it
// returns p along with an error wrapping ErrOutOfRange. Float deltas
// are truncated for integer domains the same way that they are by
// Translate.
func CheckedTranslate[T Scalar, D Signed](p Point[T], delta Point[D]) (Point[T], error) {
	d := domain.Of[T]()
	x, y := p.widen(d)
	dx, dy, ok := widenDelta(d, delta)
	if !ok {
		return p, fmt.Errorf("translate %v by %v: %w", p, delta, ErrOutOfRange)
	}

	x, y = x.Add(dx), y.Add(dy)
	if !d.Contains(x) || !d.Contains(y) {
		return p, fmt.Errorf("translate %v by %v: %w", p, delta, ErrOutOfRange)
	}
	return Point[T]{d.Narrow(x), d.Narrow(y)}, nil
}

// CheckedTranslateInPlace moves p by delta. If either coordinate
// would leave the domain, p is left untouched and an error wrapping
// ErrOutOfRange is returned.
func CheckedTranslateInPlace[T Scalar, D Signed](p *Point[T], delta Point[D]) error {
	r, err := CheckedTranslate(*p, delta)
	if err != nil {
		return err
	}
	*p = r
	return nil
}

// Delta returns the per-axis distance between p1 and p2. The result
// can not overflow, even for the two extremes of a 64-bit domain.
func Delta[T Integer](p1, p2 Point[T]) Point[uint64] {
	d := domain.Of[T]()
	x, y := deltaWide(d, p1, p2)
	return Point[uint64]{x.Uint64(), y.Uint64()}
}

// DeltaFloat is like Delta but for floating-point domains.
func DeltaFloat[T Float](p1, p2 Point[T]) Point[float64] {
	d := domain.Of[T]()
	x, y := deltaWide(d, p1, p2)
	return Point[float64]{x.Float64(), y.Float64()}
}

func deltaWide[T Scalar](d domain.Descriptor[T], p1, p2 Point[T]) (x, y domain.Wide) {
	x1, y1 := p1.widen(d)
	x2, y2 := p2.widen(d)
	return abs(x2.Sub(x1)), abs(y2.Sub(y1))
}

func abs(w domain.Wide) domain.Wide {
	if w.Sign() < 0 {
		return w.Neg()
	}
	return w
}

// Min returns the point whose coordinates are the smallest of those of
// the given points. It panics if points is empty.
func Min[T Scalar](points ...Point[T]) Point[T] {
	r := points[0]
	for _, p := range points[1:] {
		r.X = min(r.X, p.X)
		r.Y = min(r.Y, p.Y)
	}
	return r
}

// Max returns the point whose coordinates are the largest of those of
// the given points. It panics if points is empty.
func Max[T Scalar](points ...Point[T]) Point[T] {
	r := points[0]
	for _, p := range points[1:] {
		r.X = max(r.X, p.X)
		r.Y = max(r.Y, p.Y)
	}
	return r
}
