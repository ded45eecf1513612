package config

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-inputfield/pkg/field"
)

func TestLoadYAML(t *testing.T) {
	doc, err := Load(filepath.Join("testdata", "inputs.yaml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if diff := cmp.Diff(map[string]string{"dateRange": "date-range"}, doc.Templates); diff != "" {
		t.Fatalf("templates mismatch (-want +got):\n%s", diff)
	}

	inputs := doc.BuildInputs()
	if len(inputs) != 5 {
		t.Fatalf("expected 5 inputs, got %d", len(inputs))
	}

	csrf := inputs[4]
	if csrf.NormalizedType() != "hidden" || csrf.Name() != "_csrf" || csrf.Value != "token123" {
		t.Fatalf("unexpected hidden input: %+v", csrf)
	}

	first := inputs[0]
	if first.NormalizedType() != "text" || first.Value != "Ada" || first.Name() != "first" {
		t.Fatalf("unexpected first input: %+v", first)
	}

	letter := inputs[1]
	wantOptions := []field.Option{
		{Value: "a", Label: "Alpha"},
		{Value: "b", Label: "Beta", Group: "Greek"},
		{Value: "c", Disabled: true},
	}
	if diff := cmp.Diff(wantOptions, letter.Options); diff != "" {
		t.Fatalf("options mismatch (-want +got):\n%s", diff)
	}
	if got, _ := letter.Attribute("label"); got != "Letra" {
		t.Fatalf("expected translated label, got %v", got)
	}
	if _, ok := letter.Attribute("labelKey"); ok {
		t.Fatalf("label key should be consumed")
	}
	var body bytes.Buffer
	if err := letter.WriteBody(&body); err != nil {
		t.Fatalf("write body: %v", err)
	}
	if body.String() != `<option value="z">Zed</option>` {
		t.Fatalf("unexpected body %q", body.String())
	}

	colors := inputs[2]
	if diff := cmp.Diff([]any{"red", "green"}, colors.Options); diff != "" {
		t.Fatalf("scalar options should pass through (-want +got):\n%s", diff)
	}

	pick := inputs[3]
	if pick.ValueProperty != "code" || pick.LabelProperty != "title" {
		t.Fatalf("selectors not carried: %+v", pick)
	}
	if _, ok := pick.Options.([]any); !ok {
		t.Fatalf("options with explicit selectors should stay raw, got %T", pick.Options)
	}
}

func TestLoadFSJSON(t *testing.T) {
	data, err := os.ReadFile(filepath.Join("testdata", "inputs.json"))
	if err != nil {
		t.Fatalf("read fixture: %v", err)
	}
	fsys := fstest.MapFS{"decl/inputs.json": {Data: data}}

	doc, err := LoadFS(fsys, "decl/inputs.json")
	if err != nil {
		t.Fatalf("load fs: %v", err)
	}
	if doc.Source != "decl/inputs.json" {
		t.Fatalf("unexpected source %q", doc.Source)
	}
	inputs := doc.BuildInputs()
	if len(inputs) != 1 {
		t.Fatalf("expected 1 input, got %d", len(inputs))
	}
	if got := inputs[0]; got.SubmitValue != "yes" || got.Name() != "agree" || got.Options != nil {
		t.Fatalf("unexpected input: %+v", got)
	}
}

func TestParseErrors(t *testing.T) {
	cases := []struct {
		name string
		data string
		want error
	}{
		{name: "empty", data: "  \n", want: ErrEmptyDocument},
		{name: "invalid", data: "inputs: [\n"},
		{name: "empty template", data: "templates:\n  rating: ' '\n"},
		{name: "duplicate template", data: "templates:\n  ' rating ': a\n  rating: b\n"},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse([]byte(tc.data), tc.name)
			if err == nil {
				t.Fatalf("expected error")
			}
			if tc.want != nil && !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join("testdata", "missing.yaml")); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected not-exist error, got %v", err)
	}
}
