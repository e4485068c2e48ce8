package script

import (
	"fmt"

	"deedles.dev/xgeom/domain"
)

// DomainInfo describes the domain behind one of the script types.
type DomainInfo struct {
	Type     string
	Min, Max string
	Bits     int
	Signed   bool
	Float    bool
}

// Domains describes every type that a script can use, in the order
// that they are usually listed.
func Domains() []DomainInfo {
	return []DomainInfo{
		describe[int8]("i8"),
		describe[int16]("i16"),
		describe[int32]("i32"),
		describe[int64]("i64"),
		describe[uint8]("u8"),
		describe[uint16]("u16"),
		describe[uint32]("u32"),
		describe[uint64]("u64"),
		describe[float32]("f32"),
		describe[float64]("f64"),
	}
}

func describe[T domain.Scalar](name string) DomainInfo {
	d := domain.Of[T]()
	return DomainInfo{
		Type:   name,
		Min:    fmt.Sprint(d.Min()),
		Max:    fmt.Sprint(d.Max()),
		Bits:   d.Bits(),
		Signed: d.Signed(),
		Float:  d.Float(),
	}
}
