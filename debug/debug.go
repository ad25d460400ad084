// Package debug provides env gated diagnostics for the library.
// Set DJ_DEBUG_PARSE, DJ_DEBUG_PATCH, or DJ_DEBUG_QUERY to a truthy
// value to enable the corresponding traces on stderr.
package debug

import (
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Parse bool
	Patch bool
	Query bool
}

var d *debug

func init() {
	d = &debug{}
	d.Parse = boolEnv("DJ_DEBUG_PARSE")
	d.Patch = boolEnv("DJ_DEBUG_PATCH")
	d.Query = boolEnv("DJ_DEBUG_QUERY")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Parse() bool {
	return d.Parse
}
func Patch() bool {
	return d.Patch
}
func Query() bool {
	return d.Query
}

func Logf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format, args...)
}
