package render_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-inputfield/pkg/field"
	"github.com/goliatone/go-inputfield/pkg/message"
	"github.com/goliatone/go-inputfield/pkg/render"
	"github.com/goliatone/go-inputfield/pkg/render/template/gotemplate"
)

var translations = render.MapTranslator{
	"es": {
		"fields.name":        "Nombre",
		"colors.red":         "Rojo",
		"errors.required":    "{0} es obligatorio",
		"greeting":           "Hola {0}",
		"fields.placeholder": "",
	},
}

func TestLocalizeInputsUsesKeysAndFallbacks(t *testing.T) {
	name := &field.Input{Attributes: map[string]any{
		"name":                         "name",
		render.LabelKeyAttribute:       "fields.name",
		render.PlaceholderKeyAttribute: "fields.placeholder",
		"placeholder":                  "Enter name",
		render.TitleKeyAttribute:       "fields.title",
	}}
	colors := &field.Input{
		Type:    "radio",
		Options: []field.Option{{Value: "red"}, {Value: "blue", Label: "Blue"}},
		Attributes: map[string]any{
			"name":                          "color",
			render.OptionKeyPrefixAttribute: "colors.",
		},
	}

	render.LocalizeInputs([]*field.Input{name, colors, nil}, render.LocalizeOptions{
		Locale:     "es",
		Translator: translations,
	})

	wantAttrs := map[string]any{
		"name":        "name",
		"label":       "Nombre",
		"placeholder": "Enter name",
		"title":       "fields.title",
	}
	if diff := cmp.Diff(wantAttrs, name.Attributes); diff != "" {
		t.Fatalf("attributes mismatch (-want +got):\n%s", diff)
	}

	wantOptions := []field.Option{{Value: "red", Label: "Rojo"}, {Value: "blue", Label: "Blue"}}
	if diff := cmp.Diff(wantOptions, colors.Options); diff != "" {
		t.Fatalf("options mismatch (-want +got):\n%s", diff)
	}
	if _, ok := colors.Attribute(render.OptionKeyPrefixAttribute); ok {
		t.Fatalf("option key prefix should be removed")
	}
}

func TestLocalizeInputsWithoutTranslator(t *testing.T) {
	var seen []error
	in := &field.Input{Attributes: map[string]any{render.LabelKeyAttribute: "fields.name"}}

	render.LocalizeInputs([]*field.Input{in}, render.LocalizeOptions{
		OnMissing: func(_, key string, _ []any, err error) string {
			seen = append(seen, err)
			return "[" + key + "]"
		},
	})

	if got, _ := in.Attribute("label"); got != "[fields.name]" {
		t.Fatalf("expected handler output, got %v", got)
	}
	if len(seen) != 1 || !errors.Is(seen[0], render.ErrMissingTranslator) {
		t.Fatalf("expected ErrMissingTranslator, got %v", seen)
	}
}

func TestLocalizeMessages(t *testing.T) {
	msgs := []message.Message{
		message.Error("errors.required", "Nombre"),
		message.Info("Saved {0}", "draft"),
	}

	got := render.LocalizeMessages(msgs, render.LocalizeOptions{Locale: "es", Translator: translations})
	want := []string{"Nombre es obligatorio", "Saved draft"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("messages mismatch (-want +got):\n%s", diff)
	}

	plain := render.LocalizeMessages(msgs, render.LocalizeOptions{})
	if diff := cmp.Diff([]string{"errors.required", "Saved draft"}, plain); diff != "" {
		t.Fatalf("untranslated mismatch (-want +got):\n%s", diff)
	}
}

func TestTemplateI18nFuncs(t *testing.T) {
	engine, err := gotemplate.New(
		gotemplate.WithBaseDir("."),
		gotemplate.WithFuncs(render.TemplateI18nFuncs(render.LocalizeOptions{
			Locale:     "es",
			Translator: translations,
		})),
	)
	if err != nil {
		t.Fatalf("engine: %v", err)
	}

	out, err := engine.RenderString(
		`{{ translate("greeting", "Ada") }}|{{ locale() }}|{{ translate("missing") }}|`+
			`{% for option in options %}{{ option_label("colors.", option) }},{% endfor %}|`+
			`{{ message(problem) }}|{{ message("plain") }}`,
		map[string]any{
			"options": []field.Option{{Value: "red"}, {Value: "blue", Label: "Blue"}},
			"problem": message.Error("errors.required", "Nombre"),
		})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	want := "Hola Ada|es|missing|Rojo,Blue,|Nombre es obligatorio|plain"
	if out != want {
		t.Fatalf("unexpected output %q, want %q", out, want)
	}
}

func TestTemplateI18nFuncsWithoutTranslator(t *testing.T) {
	funcs := render.TemplateI18nFuncs(render.LocalizeOptions{Locale: "en"})

	translate := funcs["translate"].(func(string, ...any) string)
	if got := translate("fields.name"); got != "fields.name" {
		t.Fatalf("expected key fallback, got %q", got)
	}
	optionLabel := funcs["option_label"].(func(string, any) string)
	if got := optionLabel("colors.", map[string]any{"value": "red", "label": "Red"}); got != "Red" {
		t.Fatalf("expected option label fallback, got %q", got)
	}
	if got := optionLabel("colors.", "red"); got != "" {
		t.Fatalf("expected empty label for unknown option shape, got %q", got)
	}
}
