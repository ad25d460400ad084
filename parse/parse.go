// Package parse provides JSON parsing support, producing value trees.
package parse

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf16"
	"unicode/utf8"

	"github.com/dynjson/go-dynjson/debug"
	"github.com/dynjson/go-dynjson/value"
)

var ErrSyntax = errors.New("syntax error")

// Parse reads a single JSON value from d. Objects are populated through
// value.Object.Set, so the resulting tree honors the configured ordering
// mode.
func Parse(d []byte, opts ...ParseOption) (value.Var, error) {
	pOpts := &parseOpts{maxDepth: defaultMaxDepth}
	for _, f := range opts {
		f(pOpts)
	}
	p := &parser{d: d, opts: pOpts}
	p.skipSpace()
	v, err := p.parseValue()
	if err != nil {
		if debug.Parse() {
			debug.Logf("parse: failed after %d bytes: %v\n", p.off, err)
		}
		return value.Var{}, err
	}
	p.skipSpace()
	if p.off != len(p.d) {
		return value.Var{}, p.errf("trailing data")
	}
	return v, nil
}

// ParseObject reads a JSON object from d, failing on any other top level
// value.
func ParseObject(d []byte, opts ...ParseOption) (*value.Object, error) {
	v, err := Parse(d, opts...)
	if err != nil {
		return nil, err
	}
	obj := v.Object()
	if obj == nil {
		return nil, fmt.Errorf("%w: top level value is %s, not an object", ErrSyntax, v.Kind())
	}
	return obj, nil
}

type parser struct {
	d     []byte
	off   int
	depth int
	opts  *parseOpts
}

func (p *parser) errf(format string, args ...any) error {
	msg := fmt.Sprintf(format, args...)
	return fmt.Errorf("%w: %s at offset %d", ErrSyntax, msg, p.off)
}

func (p *parser) skipSpace() {
	for p.off < len(p.d) {
		switch p.d[p.off] {
		case ' ', '\t', '\n', '\r':
			p.off++
		default:
			return
		}
	}
}

func (p *parser) parseValue() (value.Var, error) {
	if p.off >= len(p.d) {
		return value.Var{}, p.errf("unexpected end of input")
	}
	switch c := p.d[p.off]; c {
	case '{':
		return p.parseObject()
	case '[':
		return p.parseArray()
	case '"':
		s, err := p.parseString()
		if err != nil {
			return value.Var{}, err
		}
		return value.FromString(s), nil
	case 't':
		if err := p.literal("true"); err != nil {
			return value.Var{}, err
		}
		return value.FromBool(true), nil
	case 'f':
		if err := p.literal("false"); err != nil {
			return value.Var{}, err
		}
		return value.FromBool(false), nil
	case 'n':
		if err := p.literal("null"); err != nil {
			return value.Var{}, err
		}
		return value.Null(), nil
	default:
		if c == '-' || (c >= '0' && c <= '9') {
			return p.parseNumber()
		}
		return value.Var{}, p.errf("unexpected character %q", c)
	}
}

func (p *parser) enter() error {
	p.depth++
	if p.depth > p.opts.maxDepth {
		return p.errf("nesting exceeds %d levels", p.opts.maxDepth)
	}
	return nil
}

func (p *parser) parseObject() (value.Var, error) {
	if err := p.enter(); err != nil {
		return value.Var{}, err
	}
	defer func() { p.depth-- }()

	p.off++ // '{'
	obj := value.NewObject(p.opts.preserveOrder)
	p.skipSpace()
	if p.off < len(p.d) && p.d[p.off] == '}' {
		p.off++
		return value.FromObject(obj), nil
	}
	for {
		p.skipSpace()
		if p.off >= len(p.d) || p.d[p.off] != '"' {
			return value.Var{}, p.errf("expected object key")
		}
		key, err := p.parseString()
		if err != nil {
			return value.Var{}, err
		}
		p.skipSpace()
		if p.off >= len(p.d) || p.d[p.off] != ':' {
			return value.Var{}, p.errf("expected ':' after object key %q", key)
		}
		p.off++
		p.skipSpace()
		v, err := p.parseValue()
		if err != nil {
			return value.Var{}, err
		}
		obj.Set(key, v)
		p.skipSpace()
		if p.off >= len(p.d) {
			return value.Var{}, p.errf("unterminated object")
		}
		switch p.d[p.off] {
		case ',':
			p.off++
		case '}':
			p.off++
			return value.FromObject(obj), nil
		default:
			return value.Var{}, p.errf("expected ',' or '}' in object")
		}
	}
}

func (p *parser) parseArray() (value.Var, error) {
	if err := p.enter(); err != nil {
		return value.Var{}, err
	}
	defer func() { p.depth-- }()

	p.off++ // '['
	arr := value.NewArray()
	p.skipSpace()
	if p.off < len(p.d) && p.d[p.off] == ']' {
		p.off++
		return value.FromArray(arr), nil
	}
	for {
		p.skipSpace()
		v, err := p.parseValue()
		if err != nil {
			return value.Var{}, err
		}
		arr.Add(v)
		p.skipSpace()
		if p.off >= len(p.d) {
			return value.Var{}, p.errf("unterminated array")
		}
		switch p.d[p.off] {
		case ',':
			p.off++
		case ']':
			p.off++
			return value.FromArray(arr), nil
		default:
			return value.Var{}, p.errf("expected ',' or ']' in array")
		}
	}
}

func (p *parser) literal(lit string) error {
	if len(p.d)-p.off < len(lit) || string(p.d[p.off:p.off+len(lit)]) != lit {
		return p.errf("invalid literal")
	}
	p.off += len(lit)
	return nil
}

func (p *parser) parseNumber() (value.Var, error) {
	start := p.off
	if p.d[p.off] == '-' {
		p.off++
	}
	isFloat := false
	for p.off < len(p.d) {
		switch c := p.d[p.off]; {
		case c >= '0' && c <= '9':
			p.off++
		case c == '.' || c == 'e' || c == 'E' || c == '+' || c == '-':
			isFloat = true
			p.off++
		default:
			goto done
		}
	}
done:
	tok := string(p.d[start:p.off])
	if !isFloat {
		if i, err := strconv.ParseInt(tok, 10, 64); err == nil {
			return value.FromInt(i), nil
		}
		if u, err := strconv.ParseUint(tok, 10, 64); err == nil {
			return value.FromUint(u), nil
		}
	}
	f, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		return value.Var{}, p.errf("invalid number %q", tok)
	}
	return value.FromFloat(f), nil
}

func (p *parser) parseString() (string, error) {
	p.off++ // '"'
	b := &strings.Builder{}
	for p.off < len(p.d) {
		c := p.d[p.off]
		switch {
		case c == '"':
			p.off++
			return b.String(), nil
		case c == '\\':
			if err := p.parseEscape(b); err != nil {
				return "", err
			}
		case c < 0x20:
			return "", p.errf("unescaped control character in string")
		case c < utf8.RuneSelf:
			b.WriteByte(c)
			p.off++
		default:
			r, sz := utf8.DecodeRune(p.d[p.off:])
			b.WriteRune(r)
			p.off += sz
		}
	}
	return "", p.errf("unterminated string")
}

func (p *parser) parseEscape(b *strings.Builder) error {
	if p.off+1 >= len(p.d) {
		return p.errf("unterminated escape")
	}
	switch c := p.d[p.off+1]; c {
	case '"', '\\', '/':
		b.WriteByte(c)
		p.off += 2
	case 'b':
		b.WriteByte('\b')
		p.off += 2
	case 'f':
		b.WriteByte('\f')
		p.off += 2
	case 'n':
		b.WriteByte('\n')
		p.off += 2
	case 'r':
		b.WriteByte('\r')
		p.off += 2
	case 't':
		b.WriteByte('\t')
		p.off += 2
	case 'u':
		r, err := p.parseUnicodeEscape()
		if err != nil {
			return err
		}
		if utf16.IsSurrogate(r) {
			if p.off+1 < len(p.d) && p.d[p.off] == '\\' && p.d[p.off+1] == 'u' {
				r2, err := p.parseUnicodeEscape()
				if err != nil {
					return err
				}
				r = utf16.DecodeRune(r, r2)
			} else {
				r = utf8.RuneError
			}
		}
		b.WriteRune(r)
	default:
		return p.errf("invalid escape '\\%c'", c)
	}
	return nil
}

// parseUnicodeEscape consumes a "\uXXXX" sequence starting at p.off.
func (p *parser) parseUnicodeEscape() (rune, error) {
	if p.off+6 > len(p.d) {
		return 0, p.errf("unterminated unicode escape")
	}
	u, err := strconv.ParseUint(string(p.d[p.off+2:p.off+6]), 16, 32)
	if err != nil {
		return 0, p.errf("invalid unicode escape")
	}
	p.off += 6
	return rune(u), nil
}
