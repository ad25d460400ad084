package value

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
)

// Path addresses a value nested in Objects and Arrays. Paths are rooted
// at '$' and composed of '.field' (optionally single quoted) and '[index]'
// segments.
type Path struct {
	Field *string
	Index *int
	Next  *Path
}

func (p *Path) String() string {
	buf := bytes.NewBuffer([]byte{'$'})
	x := p
	for x != nil {
		if x.Field != nil {
			f := *x.Field
			if strings.IndexAny(f, "'.$[]") == -1 && f != "" {
				buf.WriteString("." + f)
			} else {
				buf.WriteString(".'" + strings.Replace(f, "'", "\\'", -1) + "'")
			}
		}
		if x.Index != nil {
			fmt.Fprintf(buf, "[%d]", *x.Index)
		}
		x = x.Next
	}
	return buf.String()
}

func ParsePath(p string) (*Path, error) {
	if len(p) == 0 || p[0] != '$' {
		return nil, fmt.Errorf("path %q should start with '$'", p)
	}
	root := &Path{}
	if len(p) == 1 {
		return root, nil
	}
	if err := parseFrag(p[1:], root); err != nil {
		return nil, err
	}
	return root.Next, nil
}

func parseFrag(p string, at *Path) error {
	if p == "" {
		return nil
	}
	switch p[0] {
	case '.':
		f, rest, err := parseField(p[1:])
		if err != nil {
			return err
		}
		at.Next = &Path{Field: &f}
		return parseFrag(rest, at.Next)
	case '[':
		end := strings.IndexByte(p, ']')
		if end < 0 {
			return fmt.Errorf("path index missing ']' in %q", p)
		}
		i, err := strconv.Atoi(p[1:end])
		if err != nil {
			return fmt.Errorf("path index %q: %w", p[1:end], err)
		}
		at.Next = &Path{Index: &i}
		return parseFrag(p[end+1:], at.Next)
	default:
		return fmt.Errorf("unexpected path character %q", p[0])
	}
}

func parseField(p string) (string, string, error) {
	if p == "" {
		return "", "", fmt.Errorf("empty path field")
	}
	if p[0] == '\'' {
		b := &strings.Builder{}
		i := 1
		for i < len(p) {
			switch p[i] {
			case '\\':
				if i+1 < len(p) && p[i+1] == '\'' {
					b.WriteByte('\'')
					i += 2
					continue
				}
				b.WriteByte('\\')
				i++
			case '\'':
				return b.String(), p[i+1:], nil
			default:
				b.WriteByte(p[i])
				i++
			}
		}
		return "", "", fmt.Errorf("unterminated quoted path field in %q", p)
	}
	end := strings.IndexAny(p, ".[")
	if end < 0 {
		return p, "", nil
	}
	return p[:end], p[end:], nil
}

// GetPath resolves p against v. Missing fields and out of range indices
// yield the null Var, matching Object.Get semantics.
func GetPath(v Var, p *Path) Var {
	for x := p; x != nil; x = x.Next {
		switch {
		case x.Field != nil:
			obj := v.Object()
			if obj == nil {
				return Var{}
			}
			v = obj.Get(*x.Field)
		case x.Index != nil:
			arr := v.Array()
			if arr == nil {
				return Var{}
			}
			v = arr.Get(*x.Index)
		}
	}
	return v
}
