// Package patch applies RFC 6902 JSON Patch and RFC 7386 JSON Merge
// Patch documents to value trees. Patching round-trips through compact
// JSON text, so key ordering of the result follows the parse options
// used here: insertion order is preserved.
package patch

import (
	"strings"

	jsonpatch "github.com/evanphx/json-patch/v5"

	"github.com/dynjson/go-dynjson/debug"
	"github.com/dynjson/go-dynjson/parse"
	"github.com/dynjson/go-dynjson/value"
)

// Apply applies an RFC 6902 patch document to doc.
func Apply(doc value.Var, patchDoc []byte) (value.Var, error) {
	ops, err := jsonpatch.DecodePatch(patchDoc)
	if err != nil {
		return value.Var{}, err
	}
	d, err := compact(doc)
	if err != nil {
		return value.Var{}, err
	}
	if debug.Patch() {
		debug.Logf("patch: applying %d ops to %s\n", len(ops), d)
	}
	out, err := ops.Apply(d)
	if err != nil {
		return value.Var{}, err
	}
	return parse.Parse(out, parse.PreserveOrder(true))
}

// Merge applies an RFC 7386 merge patch document to doc.
func Merge(doc value.Var, mergeDoc []byte) (value.Var, error) {
	d, err := compact(doc)
	if err != nil {
		return value.Var{}, err
	}
	out, err := jsonpatch.MergePatch(d, mergeDoc)
	if err != nil {
		return value.Var{}, err
	}
	return parse.Parse(out, parse.PreserveOrder(true))
}

func compact(doc value.Var) ([]byte, error) {
	b := &strings.Builder{}
	if err := value.Stringify(doc, b, 0, 0); err != nil {
		return nil, err
	}
	return []byte(b.String()), nil
}
