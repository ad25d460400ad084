package value

import "errors"

var (
	// ErrBadConversion is returned when a Var's held kind cannot
	// produce the requested target type.
	ErrBadConversion = errors.New("bad conversion")

	// ErrNotImplemented is returned for conversions which are defined
	// but not yet supported, such as container to time values.
	ErrNotImplemented = errors.New("conversion not implemented")

	// ErrStringify is returned when a value cannot be rendered as
	// JSON text, such as a NaN or infinite float.
	ErrStringify = errors.New("cannot stringify")
)
