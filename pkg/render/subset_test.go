package render_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-inputfield/pkg/field"
	"github.com/goliatone/go-inputfield/pkg/render"
)

func subsetInputs() []*field.Input {
	return []*field.Input{
		{Attributes: map[string]any{"name": "title", render.GroupAttribute: "main"}},
		{Type: "Select", Attributes: map[string]any{"name": "category", render.GroupAttribute: `["meta","main"]`}},
		{Type: "textarea", Attributes: map[string]any{"name": "notes"}},
		{Type: "hidden", Attributes: map[string]any{"name": "_csrf"}},
		nil,
	}
}

func names(inputs []*field.Input) []string {
	out := make([]string, 0, len(inputs))
	for _, in := range inputs {
		out = append(out, in.Name())
	}
	return out
}

func TestApplySubset(t *testing.T) {
	cases := []struct {
		name   string
		subset render.Subset
		want   []string
	}{
		{name: "names", subset: render.Subset{Names: []string{" Notes "}}, want: []string{"notes"}},
		{name: "types", subset: render.Subset{Types: []string{"select", "hidden"}}, want: []string{"category", "_csrf"}},
		{name: "groups", subset: render.Subset{Groups: []string{"MAIN"}}, want: []string{"title", "category"}},
		{name: "json group list", subset: render.Subset{Groups: []string{"meta"}}, want: []string{"category"}},
		{name: "union", subset: render.Subset{Names: []string{"notes"}, Groups: []string{"meta"}}, want: []string{"category", "notes"}},
		{name: "no match", subset: render.Subset{Names: []string{"missing"}}, want: []string{}},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			got := names(render.ApplySubset(subsetInputs(), tc.subset))
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Fatalf("subset mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestApplySubsetEmptyKeepsInputs(t *testing.T) {
	inputs := subsetInputs()
	got := render.ApplySubset(inputs, render.Subset{Names: []string{" ", ""}})
	if len(got) != len(inputs) {
		t.Fatalf("expected inputs unchanged, got %d of %d", len(got), len(inputs))
	}
}

func TestParseSubsetList(t *testing.T) {
	cases := map[string][]string{
		"":                nil,
		"a, B ,a,,c":      {"a", "b", "c"},
		`["x", "Y", "x"]`: {"x", "y"},
		"[not json":       {"[not json"},
	}
	for raw, want := range cases {
		if diff := cmp.Diff(want, render.ParseSubsetList(raw)); diff != "" {
			t.Fatalf("parse %q mismatch (-want +got):\n%s", raw, diff)
		}
	}
}
