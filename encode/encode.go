package encode

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/dynjson/go-dynjson/value"
)

type encState struct {
	indent, step int
	Color        func(value.Kind, ColorAttr, string) string
}

// Encode writes v as JSON text. The default is pretty output with a two
// space indent; Compact selects single line output. Output without colors
// is byte identical to value.Stringify with the same indent and step.
func Encode(v value.Var, w io.Writer, opts ...EncodeOption) error {
	es := &encState{indent: 2, step: 2}
	for _, opt := range opts {
		opt(es)
	}
	if es.step < 0 {
		es.step = es.indent
	}
	return encode(v, w, es.indent, es.step, es)
}

// MustString encodes v and panics on failure.
func MustString(v value.Var, opts ...EncodeOption) string {
	buf := &strings.Builder{}
	if err := Encode(v, buf, opts...); err != nil {
		panic(err)
	}
	return buf.String()
}

func encode(v value.Var, w io.Writer, indent, step int, es *encState) error {
	switch v.Kind() {
	case value.KindArray:
		if v.Array() == nil {
			return writeString(w, es.color(value.KindNull, ValueColor, "null"))
		}
		return encodeArray(v.Array(), w, indent, step, es)
	case value.KindObject:
		if v.Object() == nil {
			return writeString(w, es.color(value.KindNull, ValueColor, "null"))
		}
		return encodeObject(v.Object(), w, indent, step, es)
	default:
		s, err := scalarText(v)
		if err != nil {
			return err
		}
		return writeString(w, es.color(v.Kind(), ValueColor, s))
	}
}

func encodeObject(o *value.Object, w io.Writer, indent, step int, es *encState) error {
	if err := writeString(w, es.color(value.KindObject, SepColor, "{")); err != nil {
		return err
	}
	if indent > 0 {
		if err := writeString(w, "\n"); err != nil {
			return err
		}
	}
	names := o.Names()
	for i, name := range names {
		if err := writeIndent(w, indent); err != nil {
			return err
		}
		if err := writeString(w, es.color(value.KindObject, FieldColor, value.Quote(name))); err != nil {
			return err
		}
		sep := ":"
		if indent > 0 {
			sep = " : "
		}
		if err := writeString(w, es.color(value.KindObject, SepColor, sep)); err != nil {
			return err
		}
		if err := encode(o.Get(name), w, indent+step, step, es); err != nil {
			return err
		}
		if i < len(names)-1 {
			if err := writeString(w, es.color(value.KindObject, SepColor, ",")); err != nil {
				return err
			}
		}
		if step > 0 {
			if err := writeString(w, "\n"); err != nil {
				return err
			}
		}
	}
	if indent >= step {
		indent -= step
	}
	if err := writeIndent(w, indent); err != nil {
		return err
	}
	return writeString(w, es.color(value.KindObject, SepColor, "}"))
}

func encodeArray(a *value.Array, w io.Writer, indent, step int, es *encState) error {
	if err := writeString(w, es.color(value.KindArray, SepColor, "[")); err != nil {
		return err
	}
	if indent > 0 {
		if err := writeString(w, "\n"); err != nil {
			return err
		}
	}
	n := a.Size()
	for i := 0; i < n; i++ {
		if err := writeIndent(w, indent); err != nil {
			return err
		}
		if err := encode(a.Get(i), w, indent+step, step, es); err != nil {
			return err
		}
		if i < n-1 {
			if err := writeString(w, es.color(value.KindArray, SepColor, ",")); err != nil {
				return err
			}
		}
		if step > 0 {
			if err := writeString(w, "\n"); err != nil {
				return err
			}
		}
	}
	if indent >= step {
		indent -= step
	}
	if err := writeIndent(w, indent); err != nil {
		return err
	}
	return writeString(w, es.color(value.KindArray, SepColor, "]"))
}

func scalarText(v value.Var) (string, error) {
	switch v.Kind() {
	case value.KindNull:
		return "null", nil
	case value.KindBool:
		b, _ := v.Bool()
		return strconv.FormatBool(b), nil
	case value.KindInt:
		i, _ := v.Int64()
		return strconv.FormatInt(i, 10), nil
	case value.KindUint:
		u, _ := v.Uint64()
		return strconv.FormatUint(u, 10), nil
	case value.KindFloat:
		f, _ := v.Float64()
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return "", fmt.Errorf("%w: %v", value.ErrStringify, f)
		}
		return strconv.FormatFloat(f, 'f', -1, 64), nil
	case value.KindString:
		s, _ := v.Text()
		return value.Quote(s), nil
	default:
		return "", fmt.Errorf("%w: unexpected kind %s", value.ErrStringify, v.Kind())
	}
}

func (es *encState) color(k value.Kind, attr ColorAttr, s string) string {
	if es.Color == nil {
		return s
	}
	return es.Color(k, attr, s)
}

func writeString(w io.Writer, s string) error {
	_, err := io.WriteString(w, s)
	return err
}

func writeIndent(w io.Writer, n int) error {
	if n <= 0 {
		return nil
	}
	return writeString(w, strings.Repeat(" ", n))
}
