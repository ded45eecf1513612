// Package config loads input declarations from JSON or YAML documents so a
// page of controls can be described as data:
//
//	locale: es
//	translations:
//	  es: {fields.letter: Letra}
//	hidden:
//	  _csrf: token
//	templates:
//	  rating: rating
//	inputs:
//	  - type: select
//	    value: b
//	    options:
//	      - {value: a, label: Alpha}
//	      - {value: b, label: Beta, group: Greek}
//	    attributes: {name: letter, labelKey: fields.letter}
//
// Hidden entries are appended to the inputs sorted by name. Option entries
// that are maps carrying a "value" key become field.Option values unless the
// declaration names its own selectors.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-inputfield/pkg/field"
	"github.com/goliatone/go-inputfield/pkg/render"
)

// ErrEmptyDocument reports a document without content.
var ErrEmptyDocument = errors.New("config: document is empty")

// Document is a parsed declaration file.
type Document struct {
	Source string
	// Templates maps input types to template names for the template
	// renderer.
	Templates map[string]string
	Inputs    []InputConfig
	Hidden    map[string]string

	Locale       string
	Translations render.MapTranslator
}

// InputConfig mirrors field.Input in a serialisable form.
type InputConfig struct {
	Type            string         `json:"type" yaml:"type"`
	Value           any            `json:"value" yaml:"value"`
	SubmitValue     string         `json:"submitValue" yaml:"submitValue"`
	Options         any            `json:"options" yaml:"options"`
	ValueProperty   string         `json:"valueProperty" yaml:"valueProperty"`
	LabelProperty   string         `json:"labelProperty" yaml:"labelProperty"`
	GroupProperty   string         `json:"groupProperty" yaml:"groupProperty"`
	EnabledProperty string         `json:"enabledProperty" yaml:"enabledProperty"`
	Attributes      map[string]any `json:"attributes" yaml:"attributes"`
	// Body is raw markup emitted inside renderers that have a body slot.
	Body string `json:"body" yaml:"body"`
}

type documentFile struct {
	Locale       string                       `json:"locale" yaml:"locale"`
	Translations map[string]map[string]string `json:"translations" yaml:"translations"`
	Hidden       map[string]string            `json:"hidden" yaml:"hidden"`
	Templates    map[string]string            `json:"templates" yaml:"templates"`
	Inputs       []InputConfig                `json:"inputs" yaml:"inputs"`
}

// Load reads and parses the document at path.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	return Parse(data, path)
}

// LoadFS reads and parses the document at path inside fsys.
func LoadFS(fsys fs.FS, path string) (*Document, error) {
	if fsys == nil {
		return nil, errors.New("config: filesystem is required")
	}
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	return Parse(data, path)
}

// Parse decodes data as JSON, falling back to YAML. source names the
// document in errors.
func Parse(data []byte, source string) (*Document, error) {
	if len(strings.TrimSpace(string(data))) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrEmptyDocument, source)
	}

	var raw documentFile
	if err := json.Unmarshal(data, &raw); err != nil {
		raw = documentFile{}
		if yamlErr := yaml.Unmarshal(data, &raw); yamlErr != nil {
			return nil, fmt.Errorf("config: parse %s: invalid JSON or YAML: %w", source, yamlErr)
		}
	}

	doc := &Document{
		Source: source,
		Inputs: raw.Inputs,
		Hidden: render.MergeHiddenFields(raw.Hidden),
		Locale: strings.TrimSpace(raw.Locale),
	}
	if len(raw.Translations) > 0 {
		doc.Translations = render.MapTranslator(raw.Translations)
	}
	if len(raw.Templates) > 0 {
		doc.Templates = make(map[string]string, len(raw.Templates))
		for inputType, name := range raw.Templates {
			key := field.NormalizeType(inputType)
			name = strings.TrimSpace(name)
			if name == "" {
				return nil, fmt.Errorf("config: %s maps type %q to an empty template name", source, inputType)
			}
			if _, exists := doc.Templates[key]; exists {
				return nil, fmt.Errorf("config: %s maps type %q more than once", source, key)
			}
			doc.Templates[key] = name
		}
	}
	return doc, nil
}

// BuildInputs converts every declaration into a field.Input, appends the
// hidden fields and localises key attributes for the document locale.
func (d *Document) BuildInputs() []*field.Input {
	if d == nil {
		return nil
	}
	out := make([]*field.Input, 0, len(d.Inputs)+len(d.Hidden))
	for _, cfg := range d.Inputs {
		out = append(out, cfg.Input())
	}
	out = append(out, render.HiddenInputs(d.Hidden)...)
	render.LocalizeInputs(out, d.LocalizeOptions())
	return out
}

// LocalizeOptions returns the translation settings declared by the document.
func (d *Document) LocalizeOptions() render.LocalizeOptions {
	opts := render.LocalizeOptions{Locale: d.Locale}
	if d.Translations != nil {
		opts.Translator = d.Translations
	}
	return opts
}

// Input converts the declaration into a field.Input.
func (c InputConfig) Input() *field.Input {
	in := &field.Input{
		Type:            c.Type,
		Value:           c.Value,
		SubmitValue:     c.SubmitValue,
		Options:         c.Options,
		ValueProperty:   c.ValueProperty,
		LabelProperty:   c.LabelProperty,
		GroupProperty:   c.GroupProperty,
		EnabledProperty: c.EnabledProperty,
	}
	for name, value := range c.Attributes {
		in.SetAttribute(name, value)
	}
	if c.usesDefaultSelectors() {
		if options, ok := asOptions(c.Options); ok {
			in.Options = options
		}
	}
	if c.Body != "" {
		body := c.Body
		in.Body = func(w io.Writer) error {
			_, err := io.WriteString(w, body)
			return err
		}
	}
	return in
}

func (c InputConfig) usesDefaultSelectors() bool {
	return c.ValueProperty == "" && c.LabelProperty == "" &&
		c.GroupProperty == "" && c.EnabledProperty == ""
}

// asOptions converts a list of maps with a "value" key into field options.
func asOptions(raw any) ([]field.Option, bool) {
	items, ok := raw.([]any)
	if !ok || len(items) == 0 {
		return nil, false
	}
	out := make([]field.Option, 0, len(items))
	for _, item := range items {
		entry, ok := item.(map[string]any)
		if !ok {
			return nil, false
		}
		value, ok := entry["value"]
		if !ok {
			return nil, false
		}
		opt := field.Option{
			Value: text(value),
			Label: text(entry["label"]),
			Group: text(entry["group"]),
		}
		if disabled, ok := entry["disabled"].(bool); ok {
			opt.Disabled = disabled
		}
		out = append(out, opt)
	}
	return out, true
}

func text(value any) string {
	if value == nil {
		return ""
	}
	if s, ok := value.(string); ok {
		return s
	}
	return fmt.Sprint(value)
}
