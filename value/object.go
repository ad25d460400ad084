package value

import (
	"io"
	"maps"
	"slices"
	"strings"
)

// Object maps unique string keys to Vars. Iteration order is fixed at
// construction: either ascending key order, or the order in which keys
// were first set.
//
// Objects are handles with shared ownership: copying a Var holding an
// Object, or shallow-cloning a container that references it, shares the
// same Object. Mutation through one reference is visible through all.
// Objects are not synchronized; callers needing concurrent access must
// serialize it.
type Object struct {
	values   map[string]Var
	names    []string
	insOrder bool
}

// NewObject returns an empty object. With preserveInsertionOrder, keys
// iterate in the order they were first set; otherwise in ascending key
// order.
func NewObject(preserveInsertionOrder bool) *Object {
	return &Object{
		values:   map[string]Var{},
		insOrder: preserveInsertionOrder,
	}
}

// Get returns the value at key, or the null Var when the key is absent.
func (o *Object) Get(key string) Var {
	return o.values[key]
}

// GetObject returns the object handle at key, or nil when the key is
// absent or does not hold an object.
func (o *Object) GetObject(key string) *Object {
	return o.values[key].Object()
}

// GetArray returns the array handle at key, or nil when the key is absent
// or does not hold an array.
func (o *Object) GetArray(key string) *Array {
	return o.values[key].Array()
}

func (o *Object) Has(key string) bool {
	_, ok := o.values[key]
	return ok
}

func (o *Object) IsArray(key string) bool {
	return o.values[key].IsArray()
}

func (o *Object) IsObject(key string) bool {
	return o.values[key].IsObject()
}

// IsNull reports whether key holds null. Absent keys count as null.
func (o *Object) IsNull(key string) bool {
	return o.values[key].IsEmpty()
}

func (o *Object) Size() int {
	return len(o.values)
}

// Names returns all keys in the object's active order.
func (o *Object) Names() []string {
	if o.insOrder {
		return slices.Clone(o.names)
	}
	return slices.Sorted(maps.Keys(o.values))
}

// Set inserts or overwrites the value at key. Re-setting an existing key
// does not change its position under insertion order.
func (o *Object) Set(key string, v Var) {
	if o.insOrder {
		if _, ok := o.values[key]; !ok {
			o.names = append(o.names, key)
		}
	}
	o.values[key] = v
}

// Remove erases the entry at key, keeping the ordering index consistent.
func (o *Object) Remove(key string) {
	if _, ok := o.values[key]; !ok {
		return
	}
	delete(o.values, key)
	if o.insOrder {
		if i := slices.Index(o.names, key); i >= 0 {
			o.names = slices.Delete(o.names, i, i+1)
		}
	}
}

// Clone returns a copy sharing all nested Array and Object handles.
func (o *Object) Clone() *Object {
	return &Object{
		values:   maps.Clone(o.values),
		names:    slices.Clone(o.names),
		insOrder: o.insOrder,
	}
}

// DeepClone returns a fully independent copy of o.
func (o *Object) DeepClone() *Object {
	res := &Object{
		values:   make(map[string]Var, len(o.values)),
		names:    slices.Clone(o.names),
		insOrder: o.insOrder,
	}
	for k, v := range o.values {
		res.values[k] = v.DeepClone()
	}
	return res
}

// Stringify writes o as JSON text. An indent of 0 selects compact output
// on a single line; indent > 0 selects pretty output with step spaces of
// additional indentation per nesting level. A negative step means
// step = indent.
func (o *Object) Stringify(w io.Writer, indent, step int) error {
	if step < 0 {
		step = indent
	}
	if err := writeString(w, "{"); err != nil {
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
		if err := writeString(w, Quote(name)); err != nil {
			return err
		}
		sep := ":"
		if indent > 0 {
			sep = " : "
		}
		if err := writeString(w, sep); err != nil {
			return err
		}
		if err := Stringify(o.values[name], w, indent+step, step); err != nil {
			return err
		}
		if i < len(names)-1 {
			if err := writeString(w, ","); err != nil {
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
	return writeString(w, "}")
}

// String renders o as compact JSON. Errors are folded into the output.
func (o *Object) String() string {
	b := &strings.Builder{}
	if err := o.Stringify(b, 0, 0); err != nil {
		return "<err: " + err.Error() + ">"
	}
	return b.String()
}

func (o *Object) MarshalJSON() ([]byte, error) {
	b := &strings.Builder{}
	if err := o.Stringify(b, 0, 0); err != nil {
		return nil, err
	}
	return []byte(b.String()), nil
}
