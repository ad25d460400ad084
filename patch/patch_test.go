package patch

import (
	"testing"

	"github.com/dynjson/go-dynjson/parse"
	"github.com/dynjson/go-dynjson/value"
)

func mustParse(t *testing.T, doc string) value.Var {
	t.Helper()
	v, err := parse.Parse([]byte(doc), parse.PreserveOrder(true))
	if err != nil {
		t.Fatal(err)
	}
	return v
}

func TestApply(t *testing.T) {
	doc := mustParse(t, `{"name":"web","spec":{"replicas":1},"tags":["a","b"]}`)

	tests := []struct {
		name  string
		patch string
		want  string
	}{
		{
			"replace",
			`[{"op":"replace","path":"/spec/replicas","value":3}]`,
			`{"name":"web","spec":{"replicas":3},"tags":["a","b"]}`,
		},
		{
			"add and remove",
			`[{"op":"add","path":"/tags/1","value":"x"},{"op":"remove","path":"/name"}]`,
			`{"spec":{"replicas":1},"tags":["a","x","b"]}`,
		},
		{
			"move",
			`[{"op":"move","from":"/name","path":"/spec/name"}]`,
			`{"spec":{"replicas":1,"name":"web"},"tags":["a","b"]}`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Apply(doc, []byte(tt.patch))
			if err != nil {
				t.Fatalf("Apply error = %v", err)
			}
			if got.String() != tt.want {
				t.Errorf("Apply = %s, want %s", got.String(), tt.want)
			}
		})
	}
}

func TestApplyTestOpFails(t *testing.T) {
	doc := mustParse(t, `{"a":1}`)
	patch := `[{"op":"test","path":"/a","value":2}]`
	if _, err := Apply(doc, []byte(patch)); err == nil {
		t.Error("failing test op succeeded")
	}
}

func TestApplyBadPatch(t *testing.T) {
	doc := mustParse(t, `{"a":1}`)
	if _, err := Apply(doc, []byte(`{"not":"an array"}`)); err == nil {
		t.Error("decoding non-array patch succeeded")
	}
}

func TestMerge(t *testing.T) {
	doc := mustParse(t, `{"a":1,"b":{"c":2,"d":3},"e":"keep"}`)
	merge := `{"a":10,"b":{"c":null},"f":true}`
	got, err := Merge(doc, []byte(merge))
	if err != nil {
		t.Fatalf("Merge error = %v", err)
	}
	obj := got.Object()
	if obj == nil {
		t.Fatal("merge result is not an object")
	}
	if n, _ := obj.Get("a").Int64(); n != 10 {
		t.Errorf("a = %d, want 10", n)
	}
	b := obj.GetObject("b")
	if b == nil || b.Has("c") {
		t.Errorf("b.c not removed: %v", b)
	}
	if n, _ := b.Get("d").Int64(); n != 3 {
		t.Errorf("b.d = %d, want 3", n)
	}
	if s, _ := obj.Get("e").Text(); s != "keep" {
		t.Errorf("e = %q", s)
	}
	if ok, _ := obj.Get("f").Bool(); !ok {
		t.Error("f not added")
	}
}
