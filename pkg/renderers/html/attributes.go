package html

import (
	"fmt"
	"html"
	"reflect"
	"sort"
	"strings"
)

type attr struct {
	name  string
	value any
}

// writeAttributes writes attrs in sorted name order, skipping names listed in
// skip.
func writeAttributes(b *strings.Builder, attrs map[string]any, skip ...string) {
	if len(attrs) == 0 {
		return
	}
	names := make([]string, 0, len(attrs))
	for name := range attrs {
		if contains(skip, name) {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		writeAttr(b, name, attrs[name])
	}
}

func writeAttrs(b *strings.Builder, attrs ...attr) {
	for _, a := range attrs {
		writeAttr(b, a.name, a.value)
	}
}

func writeAttr(b *strings.Builder, name string, value any) {
	name = strings.TrimSpace(name)
	if name == "" || value == nil {
		return
	}
	if flag, ok := value.(bool); ok {
		if flag {
			b.WriteByte(' ')
			b.WriteString(html.EscapeString(name))
		}
		return
	}
	b.WriteByte(' ')
	b.WriteString(html.EscapeString(name))
	b.WriteString(`="`)
	b.WriteString(html.EscapeString(stringValue(value)))
	b.WriteString(`"`)
}

// stringValue renders scalars and Stringers. Slices are joined with commas.
func stringValue(value any) string {
	switch typed := value.(type) {
	case nil:
		return ""
	case string:
		return typed
	case fmt.Stringer:
		return typed.String()
	case []string:
		return strings.Join(typed, ",")
	}
	rv := reflect.ValueOf(value)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return ""
		}
		rv = rv.Elem()
	}
	if rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array {
		parts := make([]string, rv.Len())
		for i := range parts {
			parts[i] = stringValue(rv.Index(i).Interface())
		}
		return strings.Join(parts, ",")
	}
	return fmt.Sprint(rv.Interface())
}

// FormatAttributes renders attrs the way the built-in renderers do: sorted,
// escaped, each prefixed with a space.
func FormatAttributes(attrs map[string]any, skip ...string) string {
	var b strings.Builder
	writeAttributes(&b, attrs, skip...)
	return b.String()
}

// SanitizeLabel applies the label policy used for radio and checkbox labels.
func SanitizeLabel(raw string) string {
	return sanitizeLabel(raw)
}

func contains(values []string, candidate string) bool {
	for _, value := range values {
		if value == candidate {
			return true
		}
	}
	return false
}

// IDSuffix turns an option value into the suffix appended to a choice id:
// surrounding space is trimmed and inner spaces become underscores.
func IDSuffix(value string) string {
	return strings.ReplaceAll(strings.TrimSpace(value), " ", "_")
}
