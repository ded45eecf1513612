package convert

import (
	"errors"
	"reflect"
	"testing"
)

type direction int

const (
	north direction = iota
	east
	south
	west
)

func (d direction) String() string {
	switch d {
	case north:
		return "North"
	case east:
		return "East"
	case south:
		return "South"
	case west:
		return "West"
	default:
		return "unknown"
	}
}

func TestBuiltinConverters(t *testing.T) {
	reg := NewBuiltinRegistry()

	intConv, err := Lookup[int](reg)
	if err != nil {
		t.Fatalf("lookup int: %v", err)
	}
	if got, err := intConv.Convert(" 42 "); err != nil || got != 42 {
		t.Fatalf("convert int: got %v, err %v", got, err)
	}
	if got := intConv.String(-7); got != "-7" {
		t.Fatalf("format int: got %q", got)
	}

	boolConv, err := Lookup[bool](reg)
	if err != nil {
		t.Fatalf("lookup bool: %v", err)
	}
	if got, err := boolConv.Convert("true"); err != nil || !got {
		t.Fatalf("convert bool: got %v, err %v", got, err)
	}

	floatConv, err := Lookup[float64](reg)
	if err != nil {
		t.Fatalf("lookup float64: %v", err)
	}
	if got, err := floatConv.Convert("2.5"); err != nil || got != 2.5 {
		t.Fatalf("convert float: got %v, err %v", got, err)
	}

	uintConv, err := Lookup[uint8](reg)
	if err != nil {
		t.Fatalf("lookup uint8: %v", err)
	}
	if _, err := uintConv.Convert("300"); !errors.Is(err, ErrConversion) {
		t.Fatalf("expected conversion error for overflow, got %v", err)
	}
}

func TestConvertWrapsFailures(t *testing.T) {
	conv, err := Lookup[int](Default())
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	_, err = conv.Convert("abc")
	if !errors.Is(err, ErrConversion) {
		t.Fatalf("expected ErrConversion, got %v", err)
	}
	var convErr *Error
	if !errors.As(err, &convErr) {
		t.Fatalf("expected *Error, got %T", err)
	}
	if convErr.Input != "abc" || convErr.Type != reflect.TypeFor[int]() {
		t.Fatalf("unexpected error details: %+v", convErr)
	}
}

func TestEnumRoundTrip(t *testing.T) {
	conv := Enum(north, east, south, west)

	value, err := conv.Convert("South")
	if err != nil {
		t.Fatalf("convert: %v", err)
	}
	if value != south {
		t.Fatalf("want south, got %v", value)
	}
	if got := conv.String(value); got != "South" {
		t.Fatalf("want name South, got %q", got)
	}

	if _, err := conv.Convert("south"); !errors.Is(err, ErrConversion) {
		t.Fatalf("expected case-sensitive lookup to fail, got %v", err)
	}
}

func TestLookupUnregistered(t *testing.T) {
	reg := NewRegistry()
	if _, err := Lookup[direction](reg); !errors.Is(err, ErrNotRegistered) {
		t.Fatalf("expected ErrNotRegistered, got %v", err)
	}

	if err := RegisterEnum(reg, north, east); err != nil {
		t.Fatalf("register enum: %v", err)
	}
	if !reg.Has(reflect.TypeFor[direction]()) {
		t.Fatalf("expected direction to be registered")
	}
	if _, err := Lookup[direction](reg); err != nil {
		t.Fatalf("lookup after register: %v", err)
	}
}

func TestRegisterRejectsNilParse(t *testing.T) {
	if err := Register[int](NewRegistry(), nil, nil); err == nil {
		t.Fatalf("expected error for nil parse function")
	}
}

func TestCloneIsolatesRegistrations(t *testing.T) {
	base := NewBuiltinRegistry()
	cloned := base.Clone()
	if err := RegisterEnum(cloned, north); err != nil {
		t.Fatalf("register: %v", err)
	}
	if base.Has(reflect.TypeFor[direction]()) {
		t.Fatalf("base registry mutated by clone registration")
	}
	if len(cloned.Types()) != len(base.Types())+1 {
		t.Fatalf("unexpected type counts: base %d cloned %d", len(base.Types()), len(cloned.Types()))
	}
}
