package value

import (
	"errors"
	"math"
	"testing"
	"time"
)

func TestConvertNarrowing(t *testing.T) {
	if got, err := Convert[int8](FromInt(127)); err != nil || got != 127 {
		t.Errorf("int8 in range = %d, %v", got, err)
	}
	if _, err := Convert[int8](FromInt(128)); !errors.Is(err, ErrBadConversion) {
		t.Errorf("int8 overflow error = %v", err)
	}
	if _, err := Convert[int16](FromInt(-40000)); !errors.Is(err, ErrBadConversion) {
		t.Errorf("int16 underflow error = %v", err)
	}
	if got, err := Convert[uint16](FromUint(65535)); err != nil || got != 65535 {
		t.Errorf("uint16 in range = %d, %v", got, err)
	}
	if _, err := Convert[uint8](FromUint(256)); !errors.Is(err, ErrBadConversion) {
		t.Errorf("uint8 overflow error = %v", err)
	}
	if _, err := Convert[uint32](FromInt(-1)); !errors.Is(err, ErrBadConversion) {
		t.Errorf("negative to uint32 error = %v", err)
	}
	if got, err := Convert[float32](FromFloat(1.5)); err != nil || got != 1.5 {
		t.Errorf("float32 in range = %v, %v", got, err)
	}
	if _, err := Convert[float32](FromFloat(math.MaxFloat64)); !errors.Is(err, ErrBadConversion) {
		t.Errorf("float32 overflow error = %v", err)
	}
}

func TestConvertAcrossKinds(t *testing.T) {
	if got, err := Convert[string](FromInt(7)); err != nil || got != "7" {
		t.Errorf("int to string = %q, %v", got, err)
	}
	if got, err := Convert[bool](FromString("false")); err != nil || got != false {
		t.Errorf("string to bool = %v, %v", got, err)
	}
	if got, err := Convert[float64](FromString("2.25")); err != nil || got != 2.25 {
		t.Errorf("string to float64 = %v, %v", got, err)
	}
	if got, err := Convert[time.Time](FromString("2024-06-01T10:30:00Z")); err != nil || got.Hour() != 10 {
		t.Errorf("string to time = %v, %v", got, err)
	}
	if _, err := Convert[bool](Null()); !errors.Is(err, ErrBadConversion) {
		t.Errorf("null conversion error = %v", err)
	}
	if _, err := Convert[struct{ X int }](FromInt(1)); !errors.Is(err, ErrBadConversion) {
		t.Errorf("unsupported target error = %v", err)
	}
}

func TestGetValue(t *testing.T) {
	obj := NewObject(false)
	obj.Set("n", FromInt(12))
	obj.Set("s", FromString("34"))
	obj.Set("junk", FromString("not a number"))

	if got, err := GetValue[int](obj, "n"); err != nil || got != 12 {
		t.Errorf("GetValue[int] = %d, %v", got, err)
	}
	if got, err := GetValue[int64](obj, "s"); err != nil || got != 34 {
		t.Errorf("GetValue[int64] from string = %d, %v", got, err)
	}
	if _, err := GetValue[int](obj, "junk"); !errors.Is(err, ErrBadConversion) {
		t.Errorf("GetValue on unconvertible = %v", err)
	}
	if _, err := GetValue[int](obj, "missing"); !errors.Is(err, ErrBadConversion) {
		t.Errorf("GetValue on absent key = %v", err)
	}
}

func TestOptValue(t *testing.T) {
	obj := NewObject(false)
	if got := OptValue(obj, "missing", 7); got != 7 {
		t.Errorf("OptValue on empty container = %d, want 7", got)
	}
	obj.Set("missing", FromString("not a number"))
	if got := OptValue(obj, "missing", 7); got != 7 {
		t.Errorf("OptValue on unconvertible entry = %d, want 7", got)
	}
	obj.Set("missing", FromInt(23))
	if got := OptValue(obj, "missing", 7); got != 23 {
		t.Errorf("OptValue on convertible entry = %d, want 23", got)
	}
	if got := OptValue(obj, "nope", "fallback"); got != "fallback" {
		t.Errorf("OptValue[string] default = %q", got)
	}
}
