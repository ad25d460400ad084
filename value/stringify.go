package value

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// Stringify writes v as JSON text, dispatching on the held kind. Compact
// output is selected by indent == 0, pretty output by indent > 0 with step
// spaces of additional indentation per nesting level. A negative step
// means step = indent.
//
// There is no partial output recovery: when Stringify fails, the bytes
// already written must be treated as incomplete.
func Stringify(v Var, w io.Writer, indent, step int) error {
	switch v.kind {
	case KindNull:
		return writeString(w, "null")
	case KindBool:
		return writeString(w, strconv.FormatBool(v.b))
	case KindInt:
		return writeString(w, strconv.FormatInt(v.i, 10))
	case KindUint:
		return writeString(w, strconv.FormatUint(v.u, 10))
	case KindFloat:
		s, err := formatFloat(v.f)
		if err != nil {
			return err
		}
		return writeString(w, s)
	case KindString:
		return writeString(w, Quote(v.s))
	case KindArray:
		if v.arr == nil {
			return writeString(w, "null")
		}
		return v.arr.Stringify(w, indent, step)
	case KindObject:
		if v.obj == nil {
			return writeString(w, "null")
		}
		return v.obj.Stringify(w, indent, step)
	default:
		return fmt.Errorf("%w: unknown kind %d", ErrStringify, v.kind)
	}
}

// MustString renders v as compact JSON and panics on failure. Intended
// for values known to be representable, such as ones built from parsed
// input.
func MustString(v Var) string {
	b := &strings.Builder{}
	if err := Stringify(v, b, 0, 0); err != nil {
		panic(err)
	}
	return b.String()
}

func formatFloat(f float64) (string, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return "", fmt.Errorf("%w: %v", ErrStringify, f)
	}
	return strconv.FormatFloat(f, 'f', -1, 64), nil
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
