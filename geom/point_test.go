package geom_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"deedles.dev/xgeom/domain"
	"deedles.dev/xgeom/geom"
)

func TestPointString(t *testing.T) {
	require.Equal(t, "(-3, 7)", geom.Pt[int8](-3, 7).String())
	require.Equal(t, "(1.5, 2)", geom.Pt[float64](1.5, 2).String())
	require.Equal(t, "(0, 0)", geom.MinPoint[uint16]().String())
}

func TestTranslate(t *testing.T) {
	tests := []struct {
		name  string
		p     geom.PointI8
		delta geom.PointI8
		out   geom.PointI8
	}{
		{"zero", geom.Pt[int8](3, -4), geom.Pt[int8](0, 0), geom.Pt[int8](3, -4)},
		{"positive", geom.Pt[int8](3, -4), geom.Pt[int8](10, 20), geom.Pt[int8](13, 16)},
		{"negative", geom.Pt[int8](3, -4), geom.Pt[int8](-10, -20), geom.Pt[int8](-7, -24)},
		{"saturate max", geom.Pt[int8](120, 100), geom.Pt[int8](10, 127), geom.Pt[int8](127, 127)},
		{"saturate min", geom.Pt[int8](-120, -1), geom.Pt[int8](-10, -128), geom.Pt[int8](-128, -128)},
		{"mixed", geom.Pt[int8](126, -127), geom.Pt[int8](5, -5), geom.Pt[int8](127, -128)},
		{"extremes", geom.Pt[int8](-128, 127), geom.Pt[int8](127, -128), geom.Pt[int8](-1, -1)},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			require.Equal(t, test.out, geom.Translate(test.p, test.delta))

			p := test.p
			geom.TranslateInPlace(&p, test.delta)
			require.Equal(t, test.out, p)
		})
	}
}

func TestTranslateWideDelta(t *testing.T) {
	p := geom.Pt[uint8](10, 250)
	require.Equal(t, geom.Pt[uint8](0, 255), geom.Translate(p, geom.Pt[int16](-300, 300)))
	require.Equal(t, geom.Pt[uint8](210, 5), geom.Translate(p, geom.Pt[int16](200, -245)))

	q := geom.Pt[uint64](math.MaxUint64-1, 1)
	require.Equal(t, geom.Pt[uint64](math.MaxUint64, 0), geom.Translate(q, geom.Pt[int64](math.MaxInt64, math.MinInt64)))
}

func TestTranslateSaturatesAtBounds(t *testing.T) {
	testSaturatesAtBounds[int8, int8](t)
	testSaturatesAtBounds[int16, int16](t)
	testSaturatesAtBounds[int32, int32](t)
	testSaturatesAtBounds[int64, int64](t)
	testSaturatesAtBounds[float32, float32](t)
	testSaturatesAtBounds[float64, float64](t)

	testSaturatesAtBounds[uint8, int16](t)
	testSaturatesAtBounds[uint16, int32](t)
	testSaturatesAtBounds[uint32, int64](t)
	testSaturatesAtBounds[uint64, int64](t)
	testSaturatesAtBounds[uint64, int8](t)

	testSaturatesAtBounds[int8, float32](t)
	testSaturatesAtBounds[int32, float32](t)
	testSaturatesAtBounds[int64, float64](t)
	testSaturatesAtBounds[uint8, float64](t)
	testSaturatesAtBounds[uint64, float32](t)
	testSaturatesAtBounds[uint64, float64](t)
	testSaturatesAtBounds[float32, int64](t)
	testSaturatesAtBounds[float64, int64](t)
}

func testSaturatesAtBounds[T geom.Scalar, D geom.Signed](t *testing.T) {
	max, min := geom.MaxPoint[T](), geom.MinPoint[T]()
	dd := domain.Of[D]()
	for _, delta := range []geom.Point[D]{
		geom.Pt[D](0, 0),
		geom.Pt[D](1, 1),
		geom.Pt[D](0, 5),
		geom.Pt(dd.Max(), dd.Max()),
	} {
		require.Equal(t, max, geom.Translate(max, delta), "%v", delta)
		require.Equal(t, max, geom.Translate(geom.Translate(max, delta), delta), "%v", delta)

		neg := geom.Pt(-delta.X, -delta.Y)
		require.Equal(t, min, geom.Translate(min, neg), "%v", neg)
		require.Equal(t, min, geom.Translate(geom.Translate(min, neg), neg), "%v", neg)
	}
	require.Equal(t, min, geom.Translate(min, geom.Pt(dd.Min(), dd.Min())))
}

func TestTranslateFloatDelta(t *testing.T) {
	p := geom.Pt[int64](math.MaxInt64, math.MaxInt64-1)
	require.Equal(t, p, geom.Translate(p, geom.Pt[float64](0, 0)))
	require.Equal(t, geom.MaxPoint[int64](), geom.Translate(p, geom.Pt[float64](0, 1.5)))
	require.Equal(t, geom.Pt[int64](math.MaxInt64, math.MaxInt64-3), geom.Translate(p, geom.Pt[float32](1, -2.9)))

	r, err := geom.CheckedTranslate(p, geom.Pt[float64](0, 0))
	require.NoError(t, err)
	require.Equal(t, p, r)

	r, err = geom.CheckedTranslate(p, geom.Pt[float64](1, 0))
	require.ErrorIs(t, err, geom.ErrOutOfRange)
	require.Equal(t, p, r)

	r, err = geom.CheckedTranslate(p, geom.Pt[float64](0.75, 0))
	require.NoError(t, err)
	require.Equal(t, p, r)

	q := geom.Pt[uint64](math.MaxUint64, 1<<53+1)
	require.Equal(t, q, geom.Translate(q, geom.Pt[float64](0, 0)))
	require.Equal(t, geom.Pt[uint64](math.MaxUint64, 1<<53+3), geom.Translate(q, geom.Pt[float32](0, 2.9)))

	require.Equal(t, geom.Pt[int8](-3, 2), geom.Translate(geom.Pt[int8](0, 0), geom.Pt(-3.7, 2.2)))
	require.Equal(t, geom.Pt[int64](math.MaxInt64, math.MinInt64), geom.Translate(geom.Pt[int64](0, 0), geom.Pt(math.Inf(1), math.Inf(-1))))
	require.Equal(t, geom.Pt[uint64](0, math.MaxUint64), geom.Translate(geom.Pt[uint64](5, 5), geom.Pt(-1e300, 1e300)))
}

func TestTranslateNaN(t *testing.T) {
	nan := math.NaN()

	p := geom.Pt[int64](math.MaxInt64, 7)
	require.Equal(t, p, geom.Translate(p, geom.Pt(nan, nan)))
	require.Equal(t, geom.Pt[int64](math.MaxInt64, 8), geom.Translate(p, geom.Pt(nan, 1)))

	f := geom.Pt[float32](1, 1)
	require.Equal(t, geom.Pt[float32](1, 2), geom.Translate(f, geom.Pt(nan, 1)))

	r, err := geom.CheckedTranslate(p, geom.Pt(0, nan))
	require.ErrorIs(t, err, geom.ErrOutOfRange)
	require.Equal(t, p, r)

	_, err = geom.CheckedTranslate(f, geom.Pt(float32(nan), 0))
	require.ErrorIs(t, err, geom.ErrOutOfRange)

	orig := f
	require.ErrorIs(t, geom.CheckedTranslateInPlace(&f, geom.Pt(nan, 0)), geom.ErrOutOfRange)
	require.Equal(t, orig, f)
}

func TestCheckedTranslate(t *testing.T) {
	p := geom.Pt[int8](3, -4)
	r, err := geom.CheckedTranslate(p, geom.Pt[int8](-4, 10))
	require.NoError(t, err)
	require.Equal(t, geom.Pt[int8](-1, 6), r)

	r, err = geom.CheckedTranslate(geom.Pt[int8](127, 0), geom.Pt[int8](1, 0))
	require.ErrorIs(t, err, geom.ErrOutOfRange)
	require.Equal(t, geom.Pt[int8](127, 0), r)

	_, err = geom.CheckedTranslate(geom.Pt[int8](0, -128), geom.Pt[int8](0, -1))
	require.ErrorIs(t, err, geom.ErrOutOfRange)

	u, err := geom.CheckedTranslate(geom.Pt[uint8](0, 0), geom.Pt[int16](255, 255))
	require.NoError(t, err)
	require.Equal(t, geom.MaxPoint[uint8](), u)
}

func TestCheckedTranslateAtomic(t *testing.T) {
	testCheckedTranslateAtomic[int8](t)
	testCheckedTranslateAtomic[int16](t)
	testCheckedTranslateAtomic[int32](t)
	testCheckedTranslateAtomic[int64](t)
	testCheckedTranslateAtomic[uint8](t)
	testCheckedTranslateAtomic[uint16](t)
	testCheckedTranslateAtomic[uint32](t)
	testCheckedTranslateAtomic[uint64](t)
	testCheckedTranslateAtomic[float32](t)
	testCheckedTranslateAtomic[float64](t)
}

func testCheckedTranslateAtomic[T geom.Scalar](t *testing.T) {
	max := domain.Of[T]().Max()
	orig := geom.Pt(max-2, max-5)

	p := orig
	err := geom.CheckedTranslateInPlace(&p, geom.Pt[int8](10, 10))
	require.ErrorIs(t, err, geom.ErrOutOfRange)
	require.Equal(t, orig, p)

	p = orig
	err = geom.CheckedTranslateInPlace(&p, geom.Pt[int8](0, 10))
	require.True(t, errors.Is(err, geom.ErrOutOfRange))
	require.Equal(t, orig, p)

	err = geom.CheckedTranslateInPlace(&p, geom.Pt[int8](2, 5))
	require.NoError(t, err)
	require.Equal(t, geom.MaxPoint[T](), p)
}

func TestDelta(t *testing.T) {
	require.Equal(t, geom.Pt[uint64](0, 0), geom.Delta(geom.Pt[int8](5, 5), geom.Pt[int8](5, 5)))
	require.Equal(t, geom.Pt[uint64](10, 3), geom.Delta(geom.Pt[int8](-5, 2), geom.Pt[int8](5, 5)))
	require.Equal(t, geom.Pt[uint64](10, 3), geom.Delta(geom.Pt[int8](5, 5), geom.Pt[int8](-5, 2)))
	require.Equal(t, geom.Pt[uint64](255, 255), geom.Delta(geom.MinPoint[int8](), geom.MaxPoint[int8]()))
	require.Equal(t, geom.Pt[uint64](255, 0), geom.Delta(geom.Pt[uint8](0, 9), geom.Pt[uint8](255, 9)))
	require.Equal(t, geom.Pt[float64](3.5, 0), geom.DeltaFloat(geom.Pt[float32](1, 0), geom.Pt[float32](4.5, 0)))
}

func TestDeltaNoOverflow(t *testing.T) {
	testDeltaNoOverflow[int8](t, math.MaxUint8)
	testDeltaNoOverflow[int16](t, math.MaxUint16)
	testDeltaNoOverflow[int32](t, math.MaxUint32)
	testDeltaNoOverflow[int64](t, math.MaxUint64)
	testDeltaNoOverflow[uint8](t, math.MaxUint8)
	testDeltaNoOverflow[uint16](t, math.MaxUint16)
	testDeltaNoOverflow[uint32](t, math.MaxUint32)
	testDeltaNoOverflow[uint64](t, math.MaxUint64)
}

func testDeltaNoOverflow[T geom.Integer](t *testing.T, span uint64) {
	min, max := geom.MinPoint[T](), geom.MaxPoint[T]()
	require.Equal(t, geom.Pt(span, span), geom.Delta(min, max))
	require.Equal(t, geom.Pt(span, span), geom.Delta(max, min))
	require.Equal(t, geom.Pt(span-1, span), geom.Delta(geom.Pt(min.X+1, min.Y), max))
}

func TestMinMax(t *testing.T) {
	require.Equal(t, geom.Pt(-3, 1), geom.Min(geom.Pt(4, 1), geom.Pt(-3, 8), geom.Pt(0, 2)))
	require.Equal(t, geom.Pt(4, 8), geom.Max(geom.Pt(4, 1), geom.Pt(-3, 8), geom.Pt(0, 2)))
}
