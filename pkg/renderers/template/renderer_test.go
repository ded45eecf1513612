package template

import (
	"context"
	"testing"
	"testing/fstest"

	"github.com/goliatone/go-inputfield/pkg/field"
	"github.com/goliatone/go-inputfield/pkg/render"
	"github.com/goliatone/go-inputfield/pkg/render/template/gotemplate"
	"github.com/goliatone/go-inputfield/pkg/renderers/html"
	"github.com/goliatone/go-inputfield/pkg/testsupport"
)

func newDefault(t *testing.T) *Renderer {
	t.Helper()
	r, err := NewDefault()
	if err != nil {
		t.Fatalf("new default renderer: %v", err)
	}
	return r
}

func TestDatalistTemplate(t *testing.T) {
	r := newDefault(t)
	in := &field.Input{
		Type:       "datalist",
		Value:      "go",
		Options:    []string{"go", "rust"},
		Attributes: map[string]any{"name": "lang"},
	}

	got := testsupport.RenderInput(t, r, in)
	want := `<input type="text" list="lang-list" name="lang" value="go"><datalist id="lang-list">` +
		`<option value="go">go</option><option value="rust">rust</option></datalist>`
	if got != want {
		t.Fatalf("render mismatch\nwant: %s\n got: %s", want, got)
	}
}

func TestSwitchTemplate(t *testing.T) {
	r := newDefault(t)
	in := &field.Input{
		Type:       "switch",
		Value:      true,
		Attributes: map[string]any{"name": "notify", "label": "Email me"},
	}

	got := testsupport.RenderInput(t, r, in)
	want := `<label class="switch"><input type="checkbox" role="switch" name="notify" value="true" checked>Email me</label>`
	if got != want {
		t.Fatalf("render mismatch\nwant: %s\n got: %s", want, got)
	}
}

func TestCustomMappingThroughDispatcher(t *testing.T) {
	engine, err := gotemplate.New(gotemplate.WithFS(fstest.MapFS{
		"stars.tpl": &fstest.MapFile{Data: []byte(`<input type="range" min="1" max="5"{{ input.attrs|safe }} value="{{ input.value }}">`)},
	}))
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}
	r, err := New(engine, map[string]string{"stars": "stars"})
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}

	d := html.NewDispatcher(render.WithProviders(r))
	got, err := d.RenderString(context.Background(), &field.Input{
		Type:       "stars",
		Value:      4,
		Attributes: map[string]any{"name": "rating"},
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	want := `<input type="range" min="1" max="5" name="rating" value="4">`
	if got != want {
		t.Fatalf("render mismatch\nwant: %s\n got: %s", want, got)
	}

	resolved, err := d.Resolve("stars")
	if err != nil || resolved != render.Renderer(r) {
		t.Fatalf("expected template renderer to be cached for stars (err %v)", err)
	}
}

func TestInlineMapping(t *testing.T) {
	engine, err := gotemplate.New(gotemplate.WithFS(Templates()))
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}
	r, err := New(engine, map[string]string{
		"colorPicker": `<input type="color"{{ input.attrs|safe }} value="{{ input.value }}">`,
	})
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}

	got := testsupport.RenderInput(t, r, &field.Input{
		Type:       "colorPicker",
		Value:      "#ff0000",
		Attributes: map[string]any{"name": "tint"},
	})
	want := `<input type="color" name="tint" value="#ff0000">`
	if got != want {
		t.Fatalf("render mismatch\nwant: %s\n got: %s", want, got)
	}
	if r.Supports("colorpicker") {
		t.Fatalf("input types are case-sensitive")
	}
}

func TestNewValidatesArguments(t *testing.T) {
	if _, err := New(nil, nil); err == nil {
		t.Fatalf("expected error for nil engine")
	}
	engine, err := gotemplate.New(gotemplate.WithFS(Templates()))
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}
	if _, err := New(engine, map[string]string{"x": " "}); err == nil {
		t.Fatalf("expected error for empty template name")
	}
}

func TestUnmappedTypeFails(t *testing.T) {
	r := newDefault(t)
	if r.Supports("text") {
		t.Fatalf("template renderer should not claim text")
	}
	if err := r.Render(context.Background(), nil, &field.Input{Type: "text"}); err == nil {
		t.Fatalf("expected error for unmapped type")
	}
}
