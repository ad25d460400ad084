package value

import (
	"fmt"
	"math"
	"time"
)

// Convert produces a T from the held value using the kind's conversion
// table. Targets outside the table, held nulls, and out of range numeric
// narrowings all return ErrBadConversion.
func Convert[T any](v Var) (T, error) {
	var t T
	var err error
	switch p := any(&t).(type) {
	case *bool:
		*p, err = v.Bool()
	case *string:
		*p, err = v.Text()
	case *int:
		*p, err = signedTo[int](v, math.MinInt, math.MaxInt)
	case *int8:
		*p, err = signedTo[int8](v, math.MinInt8, math.MaxInt8)
	case *int16:
		*p, err = signedTo[int16](v, math.MinInt16, math.MaxInt16)
	case *int32:
		*p, err = signedTo[int32](v, math.MinInt32, math.MaxInt32)
	case *int64:
		*p, err = v.Int64()
	case *uint:
		*p, err = unsignedTo[uint](v, math.MaxUint)
	case *uint8:
		*p, err = unsignedTo[uint8](v, math.MaxUint8)
	case *uint16:
		*p, err = unsignedTo[uint16](v, math.MaxUint16)
	case *uint32:
		*p, err = unsignedTo[uint32](v, math.MaxUint32)
	case *uint64:
		*p, err = v.Uint64()
	case *float32:
		var f float64
		f, err = v.Float64()
		if err == nil && (f < -math.MaxFloat32 || f > math.MaxFloat32) {
			err = fmt.Errorf("%w: %v overflows float32", ErrBadConversion, f)
		}
		*p = float32(f)
	case *float64:
		*p, err = v.Float64()
	case *time.Time:
		*p, err = v.Time()
	default:
		err = fmt.Errorf("%w: unsupported target %T", ErrBadConversion, t)
	}
	if err != nil {
		var zero T
		return zero, err
	}
	return t, nil
}

func signedTo[T ~int | ~int8 | ~int16 | ~int32](v Var, min, max int64) (T, error) {
	i, err := v.Int64()
	if err != nil {
		return 0, err
	}
	if i < min || i > max {
		return 0, fmt.Errorf("%w: %d out of range [%d, %d]", ErrBadConversion, i, min, max)
	}
	return T(i), nil
}

func unsignedTo[T ~uint | ~uint8 | ~uint16 | ~uint32](v Var, max uint64) (T, error) {
	u, err := v.Uint64()
	if err != nil {
		return 0, err
	}
	if u > max {
		return 0, fmt.Errorf("%w: %d out of range [0, %d]", ErrBadConversion, u, max)
	}
	return T(u), nil
}

// GetValue retrieves the value at key and converts it to T. A missing key
// holds the null Var, which fails conversion.
func GetValue[T any](o *Object, key string) (T, error) {
	return Convert[T](o.Get(key))
}

// OptValue retrieves the value at key converted to T, substituting def when
// the key is absent, holds null, or cannot convert. It never fails.
func OptValue[T any](o *Object, key string, def T) T {
	t, err := Convert[T](o.Get(key))
	if err != nil {
		return def
	}
	return t
}
