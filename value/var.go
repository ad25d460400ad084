package value

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// Var is a dynamically typed JSON value. It holds exactly one of: null,
// bool, signed integer, unsigned integer, float, string, an *Array handle,
// or an *Object handle. The zero Var is null.
//
// Vars copy by value. For the handle kinds the copy shares the pointee, so
// copying a Var (or a container holding one) never deep-copies nested
// structure; use DeepClone for an independent copy.
type Var struct {
	kind Kind

	b   bool
	i   int64
	u   uint64
	f   float64
	s   string
	arr *Array
	obj *Object
}

func Null() Var {
	return Var{}
}

func FromBool(v bool) Var {
	return Var{kind: KindBool, b: v}
}

func FromInt(v int64) Var {
	return Var{kind: KindInt, i: v}
}

func FromUint(v uint64) Var {
	return Var{kind: KindUint, u: v}
}

func FromFloat(v float64) Var {
	return Var{kind: KindFloat, f: v}
}

func FromString(v string) Var {
	return Var{kind: KindString, s: v}
}

// FromArray wraps an array handle. A nil handle yields the null Var.
func FromArray(v *Array) Var {
	if v == nil {
		return Var{}
	}
	return Var{kind: KindArray, arr: v}
}

// FromObject wraps an object handle. A nil handle yields the null Var.
func FromObject(v *Object) Var {
	if v == nil {
		return Var{}
	}
	return Var{kind: KindObject, obj: v}
}

func (v Var) Kind() Kind {
	return v.kind
}

// IsEmpty reports whether no value is held.
func (v Var) IsEmpty() bool {
	return v.kind == KindNull
}

func (v Var) IsBool() bool {
	return v.kind == KindBool
}

func (v Var) IsInteger() bool {
	return v.kind == KindInt || v.kind == KindUint
}

func (v Var) IsSigned() bool {
	return v.kind == KindInt
}

func (v Var) IsNumeric() bool {
	switch v.kind {
	case KindInt, KindUint, KindFloat:
		return true
	default:
		return false
	}
}

func (v Var) IsString() bool {
	return v.kind == KindString
}

func (v Var) IsArray() bool {
	return v.kind == KindArray
}

func (v Var) IsObject() bool {
	return v.kind == KindObject
}

// Array returns the held array handle, or nil when the Var does not hold
// an array.
func (v Var) Array() *Array {
	if v.kind != KindArray {
		return nil
	}
	return v.arr
}

// Object returns the held object handle, or nil when the Var does not hold
// an object.
func (v Var) Object() *Object {
	if v.kind != KindObject {
		return nil
	}
	return v.obj
}

// Bool converts the held value to a bool. Numbers convert as v != 0,
// strings parse with strconv.ParseBool, and containers convert as
// "non-nil and non-empty".
func (v Var) Bool() (bool, error) {
	switch v.kind {
	case KindBool:
		return v.b, nil
	case KindInt:
		return v.i != 0, nil
	case KindUint:
		return v.u != 0, nil
	case KindFloat:
		return v.f != 0, nil
	case KindString:
		b, err := strconv.ParseBool(v.s)
		if err != nil {
			return false, fmt.Errorf("%w: %q is not a bool", ErrBadConversion, v.s)
		}
		return b, nil
	case KindArray:
		return v.arr != nil && v.arr.Size() > 0, nil
	case KindObject:
		return v.obj != nil && v.obj.Size() > 0, nil
	default:
		return false, fmt.Errorf("%w: %s to bool", ErrBadConversion, v.kind)
	}
}

func (v Var) Int64() (int64, error) {
	switch v.kind {
	case KindBool:
		if v.b {
			return 1, nil
		}
		return 0, nil
	case KindInt:
		return v.i, nil
	case KindUint:
		if v.u > math.MaxInt64 {
			return 0, fmt.Errorf("%w: %d overflows int64", ErrBadConversion, v.u)
		}
		return int64(v.u), nil
	case KindFloat:
		if v.f < math.MinInt64 || v.f >= math.MaxInt64 {
			return 0, fmt.Errorf("%w: %v overflows int64", ErrBadConversion, v.f)
		}
		return int64(v.f), nil
	case KindString:
		i, err := strconv.ParseInt(v.s, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("%w: %q is not an integer", ErrBadConversion, v.s)
		}
		return i, nil
	default:
		return 0, fmt.Errorf("%w: %s to int64", ErrBadConversion, v.kind)
	}
}

func (v Var) Uint64() (uint64, error) {
	switch v.kind {
	case KindBool:
		if v.b {
			return 1, nil
		}
		return 0, nil
	case KindInt:
		if v.i < 0 {
			return 0, fmt.Errorf("%w: %d is negative", ErrBadConversion, v.i)
		}
		return uint64(v.i), nil
	case KindUint:
		return v.u, nil
	case KindFloat:
		if v.f < 0 || v.f >= math.MaxUint64 {
			return 0, fmt.Errorf("%w: %v overflows uint64", ErrBadConversion, v.f)
		}
		return uint64(v.f), nil
	case KindString:
		u, err := strconv.ParseUint(v.s, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("%w: %q is not an unsigned integer", ErrBadConversion, v.s)
		}
		return u, nil
	default:
		return 0, fmt.Errorf("%w: %s to uint64", ErrBadConversion, v.kind)
	}
}

func (v Var) Float64() (float64, error) {
	switch v.kind {
	case KindBool:
		if v.b {
			return 1, nil
		}
		return 0, nil
	case KindInt:
		return float64(v.i), nil
	case KindUint:
		return float64(v.u), nil
	case KindFloat:
		return v.f, nil
	case KindString:
		f, err := strconv.ParseFloat(v.s, 64)
		if err != nil {
			return 0, fmt.Errorf("%w: %q is not a number", ErrBadConversion, v.s)
		}
		return f, nil
	default:
		return 0, fmt.Errorf("%w: %s to float64", ErrBadConversion, v.kind)
	}
}

// Text converts the held value to a string. Scalars format with strconv
// and containers render as pretty JSON with a 2 space indent.
func (v Var) Text() (string, error) {
	switch v.kind {
	case KindBool:
		return strconv.FormatBool(v.b), nil
	case KindInt:
		return strconv.FormatInt(v.i, 10), nil
	case KindUint:
		return strconv.FormatUint(v.u, 10), nil
	case KindFloat:
		return formatFloat(v.f)
	case KindString:
		return v.s, nil
	case KindArray, KindObject:
		b := &strings.Builder{}
		if err := Stringify(v, b, 2, 2); err != nil {
			return "", err
		}
		return b.String(), nil
	default:
		return "", fmt.Errorf("%w: %s to string", ErrBadConversion, v.kind)
	}
}

// Time converts the held value to a time.Time. Only RFC 3339 strings are
// supported; container to time conversions are not implemented.
func (v Var) Time() (time.Time, error) {
	switch v.kind {
	case KindString:
		t, err := time.Parse(time.RFC3339, v.s)
		if err != nil {
			return time.Time{}, fmt.Errorf("%w: %q is not RFC 3339", ErrBadConversion, v.s)
		}
		return t, nil
	case KindArray, KindObject:
		return time.Time{}, fmt.Errorf("%w: %s to time", ErrNotImplemented, v.kind)
	default:
		return time.Time{}, fmt.Errorf("%w: %s to time", ErrBadConversion, v.kind)
	}
}

// DeepClone returns a copy of v with all nested structure cloned. Scalar
// Vars are returned as is since they copy by value.
func (v Var) DeepClone() Var {
	switch v.kind {
	case KindArray:
		if v.arr == nil {
			return v
		}
		return FromArray(v.arr.DeepClone())
	case KindObject:
		if v.obj == nil {
			return v
		}
		return FromObject(v.obj.DeepClone())
	default:
		return v
	}
}

// String renders v as compact JSON, for diagnostics and fmt verbs. Errors
// are folded into the output.
func (v Var) String() string {
	b := &strings.Builder{}
	if err := Stringify(v, b, 0, 0); err != nil {
		return "<err: " + err.Error() + ">"
	}
	return b.String()
}

func (v Var) MarshalJSON() ([]byte, error) {
	b := &strings.Builder{}
	if err := Stringify(v, b, 0, 0); err != nil {
		return nil, err
	}
	return []byte(b.String()), nil
}
