package value

import (
	"io"
	"slices"
	"strings"
)

// Array is an ordered sequence of Vars. Like Object it is a handle with
// shared ownership and no internal synchronization.
type Array struct {
	values []Var
}

func NewArray() *Array {
	return &Array{}
}

// FromSlice builds an array holding vs.
func FromSlice(vs []Var) *Array {
	return &Array{values: slices.Clone(vs)}
}

// Get returns the value at index i, or the null Var when i is out of
// range.
func (a *Array) Get(i int) Var {
	if i < 0 || i >= len(a.values) {
		return Var{}
	}
	return a.values[i]
}

// GetObject returns the object handle at index i, or nil when i is out of
// range or does not hold an object.
func (a *Array) GetObject(i int) *Object {
	return a.Get(i).Object()
}

// GetArray returns the array handle at index i, or nil when i is out of
// range or does not hold an array.
func (a *Array) GetArray(i int) *Array {
	return a.Get(i).Array()
}

func (a *Array) IsArray(i int) bool {
	return a.Get(i).IsArray()
}

func (a *Array) IsObject(i int) bool {
	return a.Get(i).IsObject()
}

// IsNull reports whether index i holds null. Out of range indices count
// as null.
func (a *Array) IsNull(i int) bool {
	return a.Get(i).IsEmpty()
}

func (a *Array) Size() int {
	return len(a.values)
}

// Add appends v to the array.
func (a *Array) Add(v Var) {
	a.values = append(a.values, v)
}

// Set overwrites the value at index i. Out of range indices are ignored.
func (a *Array) Set(i int, v Var) {
	if i < 0 || i >= len(a.values) {
		return
	}
	a.values[i] = v
}

// Remove erases the value at index i, shifting later values down.
func (a *Array) Remove(i int) {
	if i < 0 || i >= len(a.values) {
		return
	}
	a.values = slices.Delete(a.values, i, i+1)
}

// Clone returns a copy sharing all nested Array and Object handles.
func (a *Array) Clone() *Array {
	return &Array{values: slices.Clone(a.values)}
}

// DeepClone returns a fully independent copy of a.
func (a *Array) DeepClone() *Array {
	res := &Array{values: make([]Var, len(a.values))}
	for i, v := range a.values {
		res.values[i] = v.DeepClone()
	}
	return res
}

// Stringify writes a as JSON text with the same indent and step
// conventions as Object.Stringify, so cross-container nesting renders
// consistently.
func (a *Array) Stringify(w io.Writer, indent, step int) error {
	if step < 0 {
		step = indent
	}
	if err := writeString(w, "["); err != nil {
		return err
	}
	if indent > 0 {
		if err := writeString(w, "\n"); err != nil {
			return err
		}
	}
	for i, v := range a.values {
		if err := writeIndent(w, indent); err != nil {
			return err
		}
		if err := Stringify(v, w, indent+step, step); err != nil {
			return err
		}
		if i < len(a.values)-1 {
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
	return writeString(w, "]")
}

// String renders a as compact JSON. Errors are folded into the output.
func (a *Array) String() string {
	b := &strings.Builder{}
	if err := a.Stringify(b, 0, 0); err != nil {
		return "<err: " + err.Error() + ">"
	}
	return b.String()
}

func (a *Array) MarshalJSON() ([]byte, error) {
	b := &strings.Builder{}
	if err := a.Stringify(b, 0, 0); err != nil {
		return nil, err
	}
	return []byte(b.String()), nil
}
