package render

import (
	"errors"
	"fmt"
	"strings"

	"github.com/goliatone/go-inputfield/pkg/field"
	"github.com/goliatone/go-inputfield/pkg/message"
)

// ErrMissingTranslator is passed to MissingTranslationHandler when a key
// needs translating but no Translator is configured.
var ErrMissingTranslator = errors.New("render: translator not configured")

// Translator resolves a message key for locale. Args fill positional
// placeholders.
type Translator interface {
	Translate(locale, key string, args ...any) (string, error)
}

// MissingTranslationHandler decides the text used when a key cannot be
// translated. args carries a map with the "default" fallback when one exists.
type MissingTranslationHandler func(locale, key string, args []any, err error) string

// Attribute hints naming translation keys. Each key attribute is removed
// after localisation and its target attribute set.
const (
	LabelKeyAttribute       = "labelKey"
	PlaceholderKeyAttribute = "placeholderKey"
	TitleKeyAttribute       = "titleKey"
	// OptionKeyPrefixAttribute prefixes option values to build option label
	// keys, e.g. "colors." translates option "red" via "colors.red".
	OptionKeyPrefixAttribute = "optionKeyPrefix"
)

var keyedAttributes = map[string]string{
	LabelKeyAttribute:       "label",
	PlaceholderKeyAttribute: "placeholder",
	TitleKeyAttribute:       "title",
}

// LocalizeOptions configures LocalizeInputs and LocalizeMessages.
type LocalizeOptions struct {
	Locale     string
	Translator Translator
	OnMissing  MissingTranslationHandler
}

// MapTranslator is a Translator backed by locale -> key -> text tables.
// Texts use message placeholders ({0}, {1}).
type MapTranslator map[string]map[string]string

// Translate looks key up for locale.
func (m MapTranslator) Translate(locale, key string, args ...any) (string, error) {
	table, ok := m[locale]
	if !ok {
		return "", fmt.Errorf("render: no translations for locale %q", locale)
	}
	text, ok := table[key]
	if !ok {
		return "", fmt.Errorf("render: missing translation %q for locale %q", key, locale)
	}
	msg := message.Message{Text: text}
	for _, arg := range args {
		msg.Args = append(msg.Args, anyToString(arg))
	}
	return msg.String(), nil
}

// LocalizeInputs translates the key attributes of every input in place.
// This is best effort: failures are routed through opts.OnMissing.
func LocalizeInputs(inputs []*field.Input, opts LocalizeOptions) {
	onMissing := opts.OnMissing
	if onMissing == nil {
		onMissing = missingTranslationDefault
	}
	for _, in := range inputs {
		if in == nil || len(in.Attributes) == 0 {
			continue
		}
		localizeInput(in, opts.Locale, opts.Translator, onMissing)
	}
}

func localizeInput(in *field.Input, locale string, t Translator, onMissing MissingTranslationHandler) {
	for keyAttr, target := range keyedAttributes {
		raw, ok := in.Attributes[keyAttr]
		if !ok {
			continue
		}
		delete(in.Attributes, keyAttr)
		key := strings.TrimSpace(anyToString(raw))
		if key == "" {
			continue
		}
		fallback := ""
		if current, ok := in.Attributes[target]; ok {
			fallback = strings.TrimSpace(anyToString(current))
		}
		in.Attributes[target] = translate(locale, key, fallback, t, onMissing)
	}

	raw, ok := in.Attributes[OptionKeyPrefixAttribute]
	if !ok {
		return
	}
	delete(in.Attributes, OptionKeyPrefixAttribute)
	prefix := anyToString(raw)
	options, ok := in.Options.([]field.Option)
	if !ok || prefix == "" {
		return
	}
	localized := make([]field.Option, len(options))
	for idx, opt := range options {
		opt.Label = translate(locale, prefix+opt.Value, opt.DisplayLabel(), t, onMissing)
		localized[idx] = opt
	}
	in.Options = localized
}

// LocalizeMessages formats messages whose Text is a translation key. Args
// are forwarded to the translator; untranslated messages format as-is.
func LocalizeMessages(messages []message.Message, opts LocalizeOptions) []string {
	if len(messages) == 0 {
		return nil
	}
	onMissing := opts.OnMissing
	if onMissing == nil {
		onMissing = func(_, _ string, _ []any, _ error) string { return "" }
	}
	out := make([]string, 0, len(messages))
	for _, msg := range messages {
		if opts.Translator == nil {
			out = append(out, msg.String())
			continue
		}
		args := make([]any, len(msg.Args))
		for idx, arg := range msg.Args {
			args[idx] = arg
		}
		text, err := opts.Translator.Translate(opts.Locale, msg.Text, args...)
		if err != nil || strings.TrimSpace(text) == "" {
			if missing := onMissing(opts.Locale, msg.Text, args, err); missing != "" {
				text = missing
			} else {
				text = msg.String()
			}
		}
		out = append(out, text)
	}
	return out
}

func translate(locale, key, fallback string, t Translator, onMissing MissingTranslationHandler) string {
	if t == nil {
		return onMissing(locale, key, []any{map[string]any{"default": fallback}}, ErrMissingTranslator)
	}

	result, err := t.Translate(locale, key)
	if err == nil && strings.TrimSpace(result) != "" {
		return result
	}
	return onMissing(locale, key, []any{map[string]any{"default": fallback}}, err)
}

// missingTranslationDefault prefers the fallback text, then the key.
func missingTranslationDefault(_ string, key string, args []any, _ error) string {
	for _, arg := range args {
		if values, ok := arg.(map[string]any); ok {
			if fallback := strings.TrimSpace(anyToString(values["default"])); fallback != "" {
				return fallback
			}
		}
	}
	return key
}
