package geom

import (
	"iter"

	"deedles.dev/xiter"
)

// span yields lo, lo+1, ... up to and including hi. It yields nothing
// if lo > hi and never steps past the end of the domain. For floats
// too large for v+1 to differ from v, it stops after v.
func span[T Scalar](lo, hi T) iter.Seq[T] {
	return func(yield func(T) bool) {
		if lo > hi {
			return
		}
		for v := lo; ; v++ {
			if !yield(v) {
				return
			}
			if v == hi || v+1 > hi || v+1 <= v {
				return
			}
		}
	}
}

// Points returns an iterator over every point in r, row by row. If r
// is empty along either axis, it yields nothing. For float domains,
// the points are spaced one unit apart starting from r.Min.
func Points[T Scalar](r Rect[T]) iter.Seq[Point[T]] {
	return func(yield func(Point[T]) bool) {
		for y := range span(r.Min.Y, r.Max.Y) {
			for x := range span(r.Min.X, r.Max.X) {
				if !yield(Pt(x, y)) {
					return
				}
			}
		}
	}
}

// Rows returns an iterator over the rows of r, each of which is a
// rectangle one unit tall with the same horizontal extent as r. In
// other words,
//
//	for row := range geom.Rows(geom.Rt(0, 0, 3, 2)) { ... }
//
// yields
//
//	((0, 0), (3, 0))
//	((0, 1), (3, 1))
//	((0, 2), (3, 2))
//
// Nothing is yielded if r is empty along either axis.
func Rows[T Scalar](r Rect[T]) iter.Seq[Rect[T]] {
	return func(yield func(Rect[T]) bool) {
		if r.Min.X > r.Max.X {
			return
		}
		for y := range span(r.Min.Y, r.Max.Y) {
			if !yield(Rt(r.Min.X, y, r.Max.X, y)) {
				return
			}
		}
	}
}

// FillPoints inserts the points of r, in the same order as Points,
// into dst until either dst is full or r runs out of points. It
// returns the number of points inserted.
func FillPoints[T Scalar](dst []Point[T], r Rect[T]) int {
	return insertFromSeq(dst, Points(r))
}

func insertFromSeq[T any](dst []T, s iter.Seq[T]) (n int) {
	if len(dst) == 0 {
		return 0
	}
	for i, v := range xiter.Enumerate(s) {
		dst[i] = v
		n++
		if n == len(dst) {
			break
		}
	}
	return n
}
