package diff

import (
	"strings"
	"testing"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"

	"github.com/dynjson/go-dynjson/parse"
	"github.com/dynjson/go-dynjson/value"
)

func mustParse(t *testing.T, doc string) value.Var {
	t.Helper()
	v, err := parse.Parse([]byte(doc))
	if err != nil {
		t.Fatal(err)
	}
	return v
}

func TestEqual(t *testing.T) {
	a := mustParse(t, `{"x": 1, "y": [1, 2]}`)
	b := mustParse(t, `{"y":[1,2],"x":1}`)
	c := mustParse(t, `{"x": 2, "y": [1, 2]}`)
	if !Equal(a, b) {
		t.Error("equivalent documents compare unequal")
	}
	if Equal(a, c) {
		t.Error("different documents compare equal")
	}
}

func TestDiffsEqualInputs(t *testing.T) {
	a := mustParse(t, `{"x":1}`)
	diffs, err := Diffs(a, a)
	if err != nil {
		t.Fatal(err)
	}
	for _, d := range diffs {
		if d.Type != diffpatch.DiffEqual {
			t.Errorf("diff of identical inputs has op %v on %q", d.Type, d.Text)
		}
	}
}

func TestDiffsChangedValue(t *testing.T) {
	a := mustParse(t, `{"x":1,"y":"same"}`)
	b := mustParse(t, `{"x":2,"y":"same"}`)
	diffs, err := Diffs(a, b)
	if err != nil {
		t.Fatal(err)
	}
	var hasDelete, hasInsert bool
	for _, d := range diffs {
		switch d.Type {
		case diffpatch.DiffDelete:
			hasDelete = hasDelete || strings.Contains(d.Text, "1")
		case diffpatch.DiffInsert:
			hasInsert = hasInsert || strings.Contains(d.Text, "2")
		}
	}
	if !hasDelete || !hasInsert {
		t.Errorf("expected delete of old and insert of new, got %v", diffs)
	}
}

func TestText(t *testing.T) {
	a := mustParse(t, `{"x":1}`)
	same, err := Text(a, a)
	if err != nil {
		t.Fatal(err)
	}
	if same != "{\n  \"x\" : 1\n}" {
		t.Errorf("Text of identical inputs = %q", same)
	}
	b := mustParse(t, `{"x":2}`)
	changed, err := Text(a, b)
	if err != nil {
		t.Fatal(err)
	}
	// Pretty text marks inserts and deletes with ANSI escapes.
	if !strings.Contains(changed, "\x1b[3") {
		t.Errorf("Text of changed inputs carries no markup: %q", changed)
	}
}
