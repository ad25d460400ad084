// Package govar maps between native Go values and value.Var trees.
//
// From accepts nil, bools, all integer and float widths, strings,
// time.Time, slices, and string keyed maps (including the map[string]any
// and []any shapes produced by encoding/json and goccy/go-yaml). To
// produces those same native shapes, so From(To(v)) round-trips any
// parsed document up to numeric width.
package govar

import (
	"fmt"
	"reflect"
	"time"

	"github.com/dynjson/go-dynjson/value"
)

// From converts a native Go value to a Var. Maps lose any particular key
// order: the resulting objects iterate in ascending key order.
func From(v any) (value.Var, error) {
	switch x := v.(type) {
	case nil:
		return value.Null(), nil
	case value.Var:
		return x, nil
	case *value.Object:
		return value.FromObject(x), nil
	case *value.Array:
		return value.FromArray(x), nil
	case bool:
		return value.FromBool(x), nil
	case string:
		return value.FromString(x), nil
	case int:
		return value.FromInt(int64(x)), nil
	case int8:
		return value.FromInt(int64(x)), nil
	case int16:
		return value.FromInt(int64(x)), nil
	case int32:
		return value.FromInt(int64(x)), nil
	case int64:
		return value.FromInt(x), nil
	case uint:
		return value.FromUint(uint64(x)), nil
	case uint8:
		return value.FromUint(uint64(x)), nil
	case uint16:
		return value.FromUint(uint64(x)), nil
	case uint32:
		return value.FromUint(uint64(x)), nil
	case uint64:
		return value.FromUint(x), nil
	case float32:
		return value.FromFloat(float64(x)), nil
	case float64:
		return value.FromFloat(x), nil
	case time.Time:
		return value.FromString(x.Format(time.RFC3339)), nil
	case []any:
		arr := value.NewArray()
		for _, e := range x {
			ev, err := From(e)
			if err != nil {
				return value.Var{}, err
			}
			arr.Add(ev)
		}
		return value.FromArray(arr), nil
	case map[string]any:
		obj := value.NewObject(false)
		for k, e := range x {
			ev, err := From(e)
			if err != nil {
				return value.Var{}, err
			}
			obj.Set(k, ev)
		}
		return value.FromObject(obj), nil
	}
	return fromReflect(reflect.ValueOf(v))
}

func fromReflect(rv reflect.Value) (value.Var, error) {
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return value.Null(), nil
		}
		return From(rv.Elem().Interface())
	case reflect.Slice, reflect.Array:
		arr := value.NewArray()
		for i := 0; i < rv.Len(); i++ {
			ev, err := From(rv.Index(i).Interface())
			if err != nil {
				return value.Var{}, err
			}
			arr.Add(ev)
		}
		return value.FromArray(arr), nil
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return value.Var{}, fmt.Errorf("unsupported map key type %s", rv.Type().Key())
		}
		obj := value.NewObject(false)
		iter := rv.MapRange()
		for iter.Next() {
			ev, err := From(iter.Value().Interface())
			if err != nil {
				return value.Var{}, err
			}
			obj.Set(iter.Key().String(), ev)
		}
		return value.FromObject(obj), nil
	default:
		return value.Var{}, fmt.Errorf("unsupported go type %s", rv.Type())
	}
}

// To converts a Var tree to native Go values: nil, bool, int64, uint64,
// float64, string, []any, and map[string]any.
func To(v value.Var) any {
	switch v.Kind() {
	case value.KindBool:
		b, _ := v.Bool()
		return b
	case value.KindInt:
		i, _ := v.Int64()
		return i
	case value.KindUint:
		u, _ := v.Uint64()
		return u
	case value.KindFloat:
		f, _ := v.Float64()
		return f
	case value.KindString:
		s, _ := v.Text()
		return s
	case value.KindArray:
		arr := v.Array()
		if arr == nil {
			return nil
		}
		res := make([]any, arr.Size())
		for i := range res {
			res[i] = To(arr.Get(i))
		}
		return res
	case value.KindObject:
		obj := v.Object()
		if obj == nil {
			return nil
		}
		res := make(map[string]any, obj.Size())
		for _, name := range obj.Names() {
			res[name] = To(obj.Get(name))
		}
		return res
	default:
		return nil
	}
}
