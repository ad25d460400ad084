// Package value provides the dynamic value model for JSON documents.
//
// # Overview
//
// A document is a tree of Vars. A Var is a tagged variant holding exactly
// one of: null, bool, signed integer, unsigned integer, float, string, an
// *Array handle, or an *Object handle. The zero Var is null.
//
//	v := value.FromInt(42)
//	obj := value.NewObject(false)
//	obj.Set("age", v)
//	obj.Set("name", value.FromString("alice"))
//
// # Introspection and conversion
//
// Vars report their held kind through Kind and the predicate methods
// (IsArray, IsInteger, IsSigned, IsNumeric, IsString, ...). Explicit
// conversion is kind directed and may fail:
//
//	age, err := value.GetValue[int](obj, "age")  // strict
//	age = value.OptValue(obj, "age", 0)          // defaulted, never fails
//
// Conversions outside a kind's defined table return ErrBadConversion.
// Container to time conversions return ErrNotImplemented.
//
// # Ordering
//
// Objects fix their iteration order at construction: ascending key order,
// or insertion order when built with NewObject(true). The order drives
// Names and Stringify. Set and Remove keep the ordering index and the key
// value mapping consistent with each other.
//
// # Ownership
//
// Array and Object values are handles with shared ownership: copying a
// Var or calling Clone shares nested structure rather than duplicating
// it. DeepClone produces independent copies.
//
// # Serialization
//
// Stringify renders JSON text. indent == 0 selects compact output with
// minimal separators; indent > 0 selects pretty output where each entry
// sits on its own line indented by indent spaces, keys and values are
// separated by " : ", and nesting adds step spaces per level.
//
// # Thread safety
//
// Nothing in this package is synchronized. Concurrent mutation of a
// shared container must be serialized by the caller.
package value
