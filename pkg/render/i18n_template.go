package render

import (
	"strings"

	"github.com/goliatone/go-inputfield/pkg/field"
	"github.com/goliatone/go-inputfield/pkg/message"
)

// TemplateI18nFuncs exposes opts to templates so mapped renderers localise
// the same way LocalizeInputs does:
//
//	translate(key, ...args)       text for key, else the key itself
//	option_label(prefix, option)  label keyed by prefix+value, else the option label
//	message(msg)                  a formatted message.Message
//	locale()                      opts.Locale
func TemplateI18nFuncs(opts LocalizeOptions) map[string]any {
	onMissing := opts.OnMissing
	if onMissing == nil {
		onMissing = missingTranslationDefault
	}

	return map[string]any{
		"translate": func(key string, args ...any) string {
			key = strings.TrimSpace(key)
			if key == "" {
				return ""
			}
			if opts.Translator == nil {
				return onMissing(opts.Locale, key, args, ErrMissingTranslator)
			}
			text, err := opts.Translator.Translate(opts.Locale, key, args...)
			if err != nil || strings.TrimSpace(text) == "" {
				return onMissing(opts.Locale, key, args, err)
			}
			return text
		},
		"option_label": func(prefix string, option any) string {
			opt, ok := templateOption(option)
			if !ok {
				return ""
			}
			if prefix == "" {
				return opt.DisplayLabel()
			}
			return translate(opts.Locale, prefix+opt.Value, opt.DisplayLabel(), opts.Translator, onMissing)
		},
		"message": func(msg any) string {
			var m message.Message
			switch typed := msg.(type) {
			case message.Message:
				m = typed
			case *message.Message:
				if typed == nil {
					return ""
				}
				m = *typed
			case string:
				m = message.Message{Text: typed}
			default:
				return ""
			}
			return LocalizeMessages([]message.Message{m}, opts)[0]
		},
		"locale": func() string {
			return opts.Locale
		},
	}
}

// templateOption accepts the shapes options take in template data: the
// field type itself or a decoded map with "value" and "label" keys.
func templateOption(value any) (field.Option, bool) {
	switch typed := value.(type) {
	case field.Option:
		return typed, true
	case *field.Option:
		if typed == nil {
			return field.Option{}, false
		}
		return *typed, true
	case map[string]any:
		raw, ok := typed["value"]
		if !ok {
			return field.Option{}, false
		}
		opt := field.Option{Value: anyToString(raw)}
		if label, ok := typed["label"]; ok {
			opt.Label = anyToString(label)
		}
		return opt, true
	}
	return field.Option{}, false
}
