package value

import "fmt"

// Kind identifies what a Var currently holds.
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindInt
	KindUint
	KindFloat
	KindString
	KindArray
	KindObject
)

func (k Kind) String() string {
	s, ok := map[Kind]string{
		KindNull:   "Null",
		KindBool:   "Bool",
		KindInt:    "Int",
		KindUint:   "Uint",
		KindFloat:  "Float",
		KindString: "String",
		KindArray:  "Array",
		KindObject: "Object",
	}[k]
	if ok {
		return s
	}
	return "<unknown kind>"
}

func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *Kind) UnmarshalText(d []byte) error {
	kk, ok := map[string]Kind{
		"Null":   KindNull,
		"Bool":   KindBool,
		"Int":    KindInt,
		"Uint":   KindUint,
		"Float":  KindFloat,
		"String": KindString,
		"Array":  KindArray,
		"Object": KindObject,
	}[string(d)]
	if !ok {
		return fmt.Errorf("unrecognized kind %q", d)
	}
	*k = kk
	return nil
}

func Kinds() []Kind {
	return []Kind{
		KindNull,
		KindBool,
		KindInt,
		KindUint,
		KindFloat,
		KindString,
		KindArray,
		KindObject,
	}
}

// IsLeaf reports whether the kind holds no nested values.
func (k Kind) IsLeaf() bool {
	switch k {
	case KindArray, KindObject:
		return false
	default:
		return true
	}
}
