// Package template renders input declarations through a template engine.
// Each supported input type maps to a template name, or to inline template
// source when the mapping contains "{{" or "{%"; templates receive an
// "input" object with the declaration's type, name, value, submitValue,
// checked flag, label, pre-encoded attrs (use the safe filter) and the
// computed options.
package template

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/goliatone/go-inputfield/pkg/field"
	rendertemplate "github.com/goliatone/go-inputfield/pkg/render/template"
	"github.com/goliatone/go-inputfield/pkg/render/template/gotemplate"
	"github.com/goliatone/go-inputfield/pkg/renderers/html"
)

// Renderer maps input types to templates rendered by engine.
type Renderer struct {
	engine    rendertemplate.TemplateRenderer
	templates map[string]string
}

// New constructs a renderer from an engine and a type-to-template mapping.
// Mapping values are template names or inline template source.
func New(engine rendertemplate.TemplateRenderer, mappings map[string]string) (*Renderer, error) {
	if engine == nil {
		return nil, errors.New("template: engine is required")
	}
	r := &Renderer{
		engine:    engine,
		templates: make(map[string]string, len(mappings)),
	}
	for inputType, name := range mappings {
		name = strings.TrimSpace(name)
		if name == "" {
			return nil, fmt.Errorf("template: template name for %q is empty", inputType)
		}
		r.templates[field.NormalizeType(inputType)] = name
	}
	return r, nil
}

// NewDefault builds a renderer for the embedded datalist and switch
// templates, plus any extra mappings resolved from the same engine options.
func NewDefault(options ...gotemplate.Option) (*Renderer, error) {
	opts := append([]gotemplate.Option{gotemplate.WithFS(Templates())}, options...)
	engine, err := gotemplate.New(opts...)
	if err != nil {
		return nil, err
	}
	return New(engine, DefaultMappings())
}

// Supports reports whether a template is mapped for inputType.
func (r *Renderer) Supports(inputType string) bool {
	_, ok := r.templates[inputType]
	return ok
}

// Types returns the mapped input types.
func (r *Renderer) Types() []string {
	types := make([]string, 0, len(r.templates))
	for inputType := range r.templates {
		types = append(types, inputType)
	}
	return types
}

// Render executes the template mapped for the declaration's type.
func (r *Renderer) Render(_ context.Context, w io.Writer, in *field.Input) error {
	inputType := in.NormalizedType()
	name, ok := r.templates[inputType]
	if !ok {
		return fmt.Errorf("template: no template mapped for %q", inputType)
	}
	view, err := buildView(in)
	if err != nil {
		return err
	}
	data := map[string]any{"input": view}
	if isInline(name) {
		_, err = r.engine.RenderString(name, data, w)
	} else {
		_, err = r.engine.RenderTemplate(name, data, w)
	}
	if err != nil {
		return fmt.Errorf("template: render %s input: %w", inputType, err)
	}
	return nil
}

func isInline(mapping string) bool {
	return strings.Contains(mapping, "{{") || strings.Contains(mapping, "{%")
}

func buildView(in *field.Input) (map[string]any, error) {
	options, err := html.ComputeOptions(in)
	if err != nil {
		return nil, err
	}
	optionViews := make([]any, 0, len(options))
	for _, opt := range options {
		optionViews = append(optionViews, map[string]any{
			"value":    opt.Value,
			"label":    opt.Label,
			"group":    opt.Group,
			"selected": opt.Selected,
			"enabled":  opt.Enabled,
		})
	}

	submit := in.SubmitValue
	if submit == "" {
		submit = html.DefaultSubmitValue
	}
	value := ""
	if in.Value != nil {
		value = fmt.Sprint(in.Value)
	}

	listID := in.Name()
	if id, ok := in.Attribute("id"); ok && id != nil {
		listID = fmt.Sprint(id)
	}
	if listID != "" {
		listID += "-list"
	}

	label := ""
	if raw, ok := in.Attribute("label"); ok && raw != nil {
		label = fmt.Sprint(raw)
	}

	return map[string]any{
		"type":        in.NormalizedType(),
		"name":        in.Name(),
		"value":       value,
		"hasValue":    in.Value != nil,
		"submitValue": submit,
		"checked":     in.Value != nil && value == submit,
		"label":       label,
		"listId":      listID,
		"attrs":       html.FormatAttributes(in.Attributes, "type", "value", "list", "label", "checked"),
		"options":     optionViews,
	}, nil
}
