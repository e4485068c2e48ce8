// Package grid provides row and column names for geom's points and
// rectangles. A Cell is a geom.Point whose X is called Row and whose Y
// is called Col, and an Area is the matching geom.Rect. All of the
// arithmetic is done by geom.
package grid

import (
	"iter"

	"deedles.dev/xgeom/geom"
)

// Cell is a Row, Col coordinate pair.
type Cell[T geom.Scalar] struct {
	Row, Col T
}

// C is shorthand for Cell[T]{Row: row, Col: col}.
func C[T geom.Scalar](row, col T) Cell[T] {
	return Cell[T]{row, col}
}

// FromPoint returns the cell with the coordinates of p.
func FromPoint[T geom.Scalar](p geom.Point[T]) Cell[T] {
	return Cell[T]{p.X, p.Y}
}

// Point returns c as a geom.Point.
func (c Cell[T]) Point() geom.Point[T] {
	return geom.Pt(c.Row, c.Col)
}

func (c Cell[T]) String() string {
	return c.Point().String()
}

// MinCell returns the cell with both coordinates at the minimum of T's
// domain.
func MinCell[T geom.Scalar]() Cell[T] {
	return FromPoint(geom.MinPoint[T]())
}

// MaxCell returns the cell with both coordinates at the maximum of T's
// domain.
func MaxCell[T geom.Scalar]() Cell[T] {
	return FromPoint(geom.MaxPoint[T]())
}

// Translate is geom.Translate for cells.
func Translate[T geom.Scalar, D geom.Signed](c Cell[T], delta Cell[D]) Cell[T] {
	return FromPoint(geom.Translate(c.Point(), delta.Point()))
}

// TranslateInPlace is geom.TranslateInPlace for cells.
func TranslateInPlace[T geom.Scalar, D geom.Signed](c *Cell[T], delta Cell[D]) {
	*c = Translate(*c, delta)
}

// CheckedTranslate is geom.CheckedTranslate for cells.
func CheckedTranslate[T geom.Scalar, D geom.Signed](c Cell[T], delta Cell[D]) (Cell[T], error) {
	p, err := geom.CheckedTranslate(c.Point(), delta.Point())
	return FromPoint(p), err
}

// CheckedTranslateInPlace is geom.CheckedTranslateInPlace for cells.
func CheckedTranslateInPlace[T geom.Scalar, D geom.Signed](c *Cell[T], delta Cell[D]) error {
	p := c.Point()
	if err := geom.CheckedTranslateInPlace(&p, delta.Point()); err != nil {
		return err
	}
	*c = FromPoint(p)
	return nil
}

// Delta is geom.Delta for cells.
func Delta[T geom.Integer](c1, c2 Cell[T]) Cell[uint64] {
	return FromPoint(geom.Delta(c1.Point(), c2.Point()))
}

// Area is a rectangle of cells, inclusive of both Min and Max. As with
// geom.Rect, an axis along which Min is greater than Max is empty.
type Area[T geom.Scalar] struct {
	Min, Max Cell[T]
}

// A is shorthand for Area{C(row1, col1), C(row2, col2)}.
func A[T geom.Scalar](row1, col1, row2, col2 T) Area[T] {
	return Area[T]{Cell[T]{row1, col1}, Cell[T]{row2, col2}}
}

// FromRect returns the area with the bounds of r.
func FromRect[T geom.Scalar](r geom.Rect[T]) Area[T] {
	return Area[T]{FromPoint(r.Min), FromPoint(r.Max)}
}

// Largest returns the area that covers all of T's domain.
func Largest[T geom.Scalar]() Area[T] {
	return FromRect(geom.Largest[T]())
}

// Rect returns a as a geom.Rect.
func (a Area[T]) Rect() geom.Rect[T] {
	return geom.Rpt(a.Min.Point(), a.Max.Point())
}

func (a Area[T]) String() string {
	return a.Rect().String()
}

// Contains reports whether c is inside of a.
func (a Area[T]) Contains(c Cell[T]) bool {
	return a.Rect().Contains(c.Point())
}

// Inflate is geom.Rect.Inflate for areas.
func (a Area[T]) Inflate() (Area[T], error) {
	r, err := a.Rect().Inflate()
	return FromRect(r), err
}

// Deflate is geom.Rect.Deflate for areas.
func (a Area[T]) Deflate() (Area[T], error) {
	r, err := a.Rect().Deflate()
	return FromRect(r), err
}

// Resize is geom.Rect.Resize for areas.
func (a Area[T]) Resize(size uint64) (Area[T], error) {
	r, err := a.Rect().Resize(size)
	return FromRect(r), err
}

// InflateInPlace is like Inflate but modifies a. On failure, a is not
// modified.
func (a *Area[T]) InflateInPlace() error {
	return a.apply((*geom.Rect[T]).InflateInPlace)
}

// DeflateInPlace is like Deflate but modifies a. On failure, a is not
// modified.
func (a *Area[T]) DeflateInPlace() error {
	return a.apply((*geom.Rect[T]).DeflateInPlace)
}

// ResizeInPlace is like Resize but modifies a. On failure, a is not
// modified.
func (a *Area[T]) ResizeInPlace(size uint64) error {
	return a.apply(func(r *geom.Rect[T]) error { return r.ResizeInPlace(size) })
}

func (a *Area[T]) apply(op func(*geom.Rect[T]) error) error {
	r := a.Rect()
	if err := op(&r); err != nil {
		return err
	}
	*a = FromRect(r)
	return nil
}

// TranslateArea is geom.TranslateRect for areas.
func TranslateArea[T geom.Scalar, D geom.Signed](a Area[T], delta Cell[D]) Area[T] {
	return FromRect(geom.TranslateRect(a.Rect(), delta.Point()))
}

// CheckedTranslateArea is geom.CheckedTranslateRect for areas.
func CheckedTranslateArea[T geom.Scalar, D geom.Signed](a Area[T], delta Cell[D]) (Area[T], error) {
	r, err := geom.CheckedTranslateRect(a.Rect(), delta.Point())
	return FromRect(r), err
}

// Size is geom.Size for areas.
func Size[T geom.Integer](a Area[T]) Cell[uint64] {
	return FromPoint(geom.Size(a.Rect()))
}

// Len is geom.Len for areas.
func Len[T geom.Integer](a Area[T]) Cell[uint64] {
	return FromPoint(geom.Len(a.Rect()))
}

// Cells returns an iterator over the cells of a, row by row.
func (a Area[T]) Cells() iter.Seq[Cell[T]] {
	return func(yield func(Cell[T]) bool) {
		for p := range geom.Points(geom.Rt(a.Min.Col, a.Min.Row, a.Max.Col, a.Max.Row)) {
			if !yield(Cell[T]{Row: p.Y, Col: p.X}) {
				return
			}
		}
	}
}
