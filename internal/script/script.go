// Package script evaluates batches of geom operations described in
// YAML. It is the engine behind the geomcalc command.
//
// A script looks like
//
//	operations:
//	  - name: shrink
//	    op: resize
//	    type: i8
//	    rect: [-5, -5, 5, 5]
//	    size: 9
//	  - op: checked-translate
//	    type: u64
//	    point: [18446744073709551610, 0]
//	    delta: [10, 0]
//
// Coordinates are written as YAML scalars and parsed according to the
// operation's type, so 64-bit values survive without rounding.
package script

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"deedles.dev/xgeom/domain"
	"deedles.dev/xgeom/geom"
)

// Ops lists the supported values of Operation.Op.
var Ops = []string{
	"translate",
	"checked-translate",
	"delta",
	"contains",
	"inflate",
	"deflate",
	"resize",
	"translate-rect",
	"checked-translate-rect",
	"size",
	"len",
	"saturated",
}

// File is a parsed script.
type File struct {
	Operations []Operation `yaml:"operations"`
}

// Operation is a single operation to evaluate. Which of the operand
// fields are required depends on Op.
type Operation struct {
	Name  string   `yaml:"name,omitempty"`
	Op    string   `yaml:"op"`
	Type  string   `yaml:"type"`
	Point []string `yaml:"point,omitempty"`
	Rect  []string `yaml:"rect,omitempty"`
	Delta []string `yaml:"delta,omitempty"`
	Size  uint64   `yaml:"size,omitempty"`
}

func (op Operation) String() string {
	if op.Name != "" {
		return op.Name
	}
	return fmt.Sprintf("%v[%v]", op.Op, op.Type)
}

// Result is the outcome of evaluating an Operation. Output is the
// textual rendering of the result. If the operation failed, Err is
// set and Output is the unchanged operand.
type Result struct {
	Op     Operation
	Output string
	Err    error
}

// Load reads and parses the script at path.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read script %s: %w", path, err)
	}
	return Parse(data)
}

// Parse parses a script from YAML.
func Parse(data []byte) (*File, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse script: %w", err)
	}
	return &f, nil
}

// Run evaluates every operation in f in order. A failing operation
// does not stop the ones after it.
func (f *File) Run() []Result {
	results := make([]Result, 0, len(f.Operations))
	for _, op := range f.Operations {
		out, err := Eval(op)
		results = append(results, Result{Op: op, Output: out, Err: err})
	}
	return results
}

// Eval evaluates a single operation.
func Eval(op Operation) (string, error) {
	switch op.Type {
	case "i8":
		return evalInt[int8](op)
	case "i16":
		return evalInt[int16](op)
	case "i32":
		return evalInt[int32](op)
	case "i64":
		return evalInt[int64](op)
	case "u8":
		return evalInt[uint8](op)
	case "u16":
		return evalInt[uint16](op)
	case "u32":
		return evalInt[uint32](op)
	case "u64":
		return evalInt[uint64](op)
	case "f32":
		return evalFloat[float32](op)
	case "f64":
		return evalFloat[float64](op)
	default:
		return "", fmt.Errorf("%v: unknown type %q", op, op.Type)
	}
}

func evalInt[T domain.Integer](op Operation) (string, error) {
	switch op.Op {
	case "delta":
		p1, p2, err := pointPair[T](op)
		if err != nil {
			return "", err
		}
		return geom.Delta(p1, p2).String(), nil

	case "size", "len":
		r, err := parseRect[T](op.Rect)
		if err != nil {
			return "", fmt.Errorf("%v: %w", op, err)
		}
		if op.Op == "len" {
			return geom.Len(r).String(), nil
		}
		return geom.Size(r).String(), nil

	default:
		return eval[T, int64](op)
	}
}

func evalFloat[T domain.Float](op Operation) (string, error) {
	switch op.Op {
	case "delta":
		p1, p2, err := pointPair[T](op)
		if err != nil {
			return "", err
		}
		return geom.DeltaFloat(p1, p2).String(), nil

	case "size":
		r, err := parseRect[T](op.Rect)
		if err != nil {
			return "", fmt.Errorf("%v: %w", op, err)
		}
		return geom.SizeFloat(r).String(), nil

	default:
		return eval[T, float64](op)
	}
}

// pointPair reads the two points of a delta operation from Point and
// Delta.
func pointPair[T domain.Scalar](op Operation) (p1, p2 geom.Point[T], err error) {
	p1, err = parsePoint[T](op.Point)
	if err != nil {
		return p1, p2, fmt.Errorf("%v: point: %w", op, err)
	}
	p2, err = parsePoint[T](op.Delta)
	if err != nil {
		return p1, p2, fmt.Errorf("%v: delta: %w", op, err)
	}
	return p1, p2, nil
}

func eval[T domain.Scalar, D domain.Signed](op Operation) (string, error) {
	switch op.Op {
	case "translate", "checked-translate":
		p, err := parsePoint[T](op.Point)
		if err != nil {
			return "", fmt.Errorf("%v: point: %w", op, err)
		}
		delta, err := parsePoint[D](op.Delta)
		if err != nil {
			return "", fmt.Errorf("%v: delta: %w", op, err)
		}
		if op.Op == "translate" {
			return geom.Translate(p, delta).String(), nil
		}
		r, err := geom.CheckedTranslate(p, delta)
		return r.String(), err

	case "contains":
		r, err := parseRect[T](op.Rect)
		if err != nil {
			return "", fmt.Errorf("%v: rect: %w", op, err)
		}
		p, err := parsePoint[T](op.Point)
		if err != nil {
			return "", fmt.Errorf("%v: point: %w", op, err)
		}
		return strconv.FormatBool(r.Contains(p)), nil
	}

	r, err := parseRect[T](op.Rect)
	if err != nil {
		return "", fmt.Errorf("%v: rect: %w", op, err)
	}

	switch op.Op {
	case "inflate":
		r, err = r.Inflate()
	case "deflate":
		r, err = r.Deflate()
	case "resize":
		r, err = r.Resize(op.Size)
	case "translate-rect", "checked-translate-rect":
		delta, derr := parsePoint[D](op.Delta)
		if derr != nil {
			return "", fmt.Errorf("%v: delta: %w", op, derr)
		}
		if op.Op == "translate-rect" {
			r = geom.TranslateRect(r, delta)
			break
		}
		r, err = geom.CheckedTranslateRect(r, delta)
	case "saturated":
		return r.Saturated().String(), nil
	default:
		return "", fmt.Errorf("%v: unknown op %q", op, op.Op)
	}
	return r.String(), err
}

func parsePoint[T domain.Scalar](v []string) (geom.Point[T], error) {
	if len(v) != 2 {
		return geom.Point[T]{}, fmt.Errorf("expected 2 coordinates, got %v", len(v))
	}
	c, err := parseScalars[T](v)
	if err != nil {
		return geom.Point[T]{}, err
	}
	return geom.Pt(c[0], c[1]), nil
}

func parseRect[T domain.Scalar](v []string) (geom.Rect[T], error) {
	if len(v) != 4 {
		return geom.Rect[T]{}, fmt.Errorf("expected 4 coordinates, got %v", len(v))
	}
	c, err := parseScalars[T](v)
	if err != nil {
		return geom.Rect[T]{}, err
	}
	return geom.Rt(c[0], c[1], c[2], c[3]), nil
}

func parseScalars[T domain.Scalar](v []string) ([]T, error) {
	s := make([]T, 0, len(v))
	for _, str := range v {
		c, err := ParseScalar[T](str)
		if err != nil {
			return nil, err
		}
		s = append(s, c)
	}
	return s, nil
}

// ParseScalar parses str as a value of T's domain.
func ParseScalar[T domain.Scalar](str string) (T, error) {
	d := domain.Of[T]()
	switch {
	case d.Float():
		f, err := strconv.ParseFloat(str, d.Bits())
		if err != nil {
			return 0, fmt.Errorf("parse %q: %w", str, err)
		}
		v := T(f)
		if v != v || v < d.Min() || v > d.Max() {
			return 0, fmt.Errorf("parse %q: %w", str, geom.ErrOutOfRange)
		}
		return v, nil

	case d.Signed():
		i, err := strconv.ParseInt(str, 0, d.Bits())
		if err != nil {
			return 0, fmt.Errorf("parse %q: %w", str, err)
		}
		return T(i), nil

	default:
		u, err := strconv.ParseUint(str, 0, d.Bits())
		if err != nil {
			return 0, fmt.Errorf("parse %q: %w", str, err)
		}
		return T(u), nil
	}
}
