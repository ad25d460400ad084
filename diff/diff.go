// Package diff computes textual diffs between value trees.
package diff

import (
	"strings"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"

	"github.com/dynjson/go-dynjson/value"
)

// Diffs returns the character level diffs between the canonical pretty
// renderings of a and b, cleaned up for readability.
func Diffs(a, b value.Var) ([]diffpatch.Diff, error) {
	as, err := render(a)
	if err != nil {
		return nil, err
	}
	bs, err := render(b)
	if err != nil {
		return nil, err
	}
	diffCfg := diffpatch.New()
	diffs := diffCfg.DiffMain(as, bs, true)
	return diffCfg.DiffCleanupSemantic(diffs), nil
}

// Text renders the diff between a and b with ANSI insert/delete markup.
// Equal inputs yield their common rendering unchanged.
func Text(a, b value.Var) (string, error) {
	diffs, err := Diffs(a, b)
	if err != nil {
		return "", err
	}
	return diffpatch.New().DiffPrettyText(diffs), nil
}

// Equal reports whether a and b have identical canonical renderings.
func Equal(a, b value.Var) bool {
	as, errA := render(a)
	bs, errB := render(b)
	if errA != nil || errB != nil {
		return false
	}
	return as == bs
}

// render produces the canonical pretty form compared by this package:
// indent 2, step 2, ascending key order is whatever the inputs carry.
func render(v value.Var) (string, error) {
	b := &strings.Builder{}
	if err := value.Stringify(v, b, 2, 2); err != nil {
		return "", err
	}
	return b.String(), nil
}
