// Package encode renders value trees as JSON text with options.
//
// # Usage
//
//	// Pretty print with the default two space indent
//	err := encode.Encode(v, os.Stdout)
//
//	// Compact, single line
//	err := encode.Encode(v, w, encode.Compact())
//
//	// Colored for terminals
//	err := encode.Encode(v, w, encode.WithColors(encode.NewColors()))
//
// Without colors the output is byte identical to value.Stringify with the
// same indent and step, so either entry point can be used interchangeably
// for plain output.
//
// # Related Packages
//
//   - github.com/dynjson/go-dynjson/value - value representation
//   - github.com/dynjson/go-dynjson/parse - parse text to values
package encode
