package html

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strconv"
	"strings"

	"github.com/goliatone/go-inputfield/pkg/field"
)

var (
	// ErrInvalidOptions reports an Options value that is not a collection.
	ErrInvalidOptions = errors.New("html: options must be a slice, array or map")
	// ErrUnknownProperty reports an option selector the option cannot satisfy.
	ErrUnknownProperty = errors.New("html: unknown option property")
)

// RenderedOption is the per-option view computed during rendering.
type RenderedOption struct {
	Value    string
	Label    string
	Group    string
	Selected bool
	Enabled  bool
}

type stringsProvider interface {
	Strings() []string
}

// ComputeOptions derives value, label, group, selected and enabled flags for
// every option of in. Renderers outside this package use it to stay
// consistent with the built-in option handling.
func ComputeOptions(in *field.Input) ([]RenderedOption, error) {
	if in == nil || in.Options == nil {
		return nil, nil
	}
	selected := selection(in.Value)

	switch typed := in.Options.(type) {
	case []field.Option:
		out := make([]RenderedOption, 0, len(typed))
		for _, opt := range typed {
			out = append(out, fromOption(opt, selected))
		}
		return out, nil
	case stringsProvider:
		values := typed.Strings()
		out := make([]RenderedOption, 0, len(values))
		for _, value := range values {
			out = append(out, RenderedOption{Value: value, Label: value, Selected: selected(value), Enabled: true})
		}
		return out, nil
	}

	rv := reflect.ValueOf(in.Options)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return nil, nil
		}
		rv = rv.Elem()
	}

	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		out := make([]RenderedOption, 0, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			opt, err := extractOption(in, rv.Index(i).Interface(), selected)
			if err != nil {
				return nil, fmt.Errorf("html: option %d: %w", i, err)
			}
			out = append(out, opt)
		}
		return out, nil
	case reflect.Map:
		return mapOptions(in, rv, selected)
	default:
		return nil, fmt.Errorf("%w, got %T", ErrInvalidOptions, in.Options)
	}
}

// mapOptions treats keys as values. Scalar map values become labels; other
// values are read through the selectors.
func mapOptions(in *field.Input, rv reflect.Value, selected func(string) bool) ([]RenderedOption, error) {
	type entry struct {
		key   string
		value any
	}
	entries := make([]entry, 0, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		entries = append(entries, entry{key: stringValue(iter.Key().Interface()), value: iter.Value().Interface()})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].key < entries[j].key })

	out := make([]RenderedOption, 0, len(entries))
	for _, e := range entries {
		if isScalar(e.value) {
			out = append(out, RenderedOption{
				Value:    e.key,
				Label:    stringValue(e.value),
				Selected: selected(e.key),
				Enabled:  true,
			})
			continue
		}
		opt, err := extractOption(in, e.value, selected)
		if err != nil {
			return nil, fmt.Errorf("html: option %q: %w", e.key, err)
		}
		if in.ValueProperty == "" {
			opt.Value = e.key
			opt.Selected = selected(e.key)
		}
		out = append(out, opt)
	}
	return out, nil
}

func fromOption(opt field.Option, selected func(string) bool) RenderedOption {
	return RenderedOption{
		Value:    opt.Value,
		Label:    opt.DisplayLabel(),
		Group:    opt.Group,
		Selected: selected(opt.Value),
		Enabled:  opt.Enabled(),
	}
}

func extractOption(in *field.Input, item any, selected func(string) bool) (RenderedOption, error) {
	if opt, ok := item.(field.Option); ok {
		return fromOption(opt, selected), nil
	}
	if opt, ok := item.(*field.Option); ok && opt != nil {
		return fromOption(*opt, selected), nil
	}

	value, err := selectProperty(item, in.ValueProperty)
	if err != nil {
		return RenderedOption{}, err
	}
	label, err := selectProperty(item, in.LabelProperty)
	if err != nil {
		return RenderedOption{}, err
	}

	opt := RenderedOption{
		Value:   stringValue(value),
		Label:   stringValue(label),
		Enabled: true,
	}
	if in.GroupProperty != "" {
		group, err := readProperty(item, in.GroupProperty)
		if err != nil {
			return RenderedOption{}, err
		}
		opt.Group = stringValue(group)
	}
	if in.EnabledProperty != "" {
		enabled, err := readProperty(item, in.EnabledProperty)
		if err != nil {
			return RenderedOption{}, err
		}
		opt.Enabled = truthy(enabled)
	}
	opt.Selected = selected(opt.Value)
	return opt, nil
}

// selectProperty reads name from item, or returns item itself when name is
// empty.
func selectProperty(item any, name string) (any, error) {
	if strings.TrimSpace(name) == "" {
		return item, nil
	}
	return readProperty(item, name)
}

// readProperty resolves name against map keys, exported struct fields
// (case-insensitive) and exported zero-argument methods.
func readProperty(item any, name string) (any, error) {
	name = strings.TrimSpace(name)
	if item == nil {
		return nil, nil
	}

	rv := reflect.ValueOf(item)
	if method := findMethod(rv, name); method.IsValid() {
		return method.Call(nil)[0].Interface(), nil
	}

	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return nil, nil
		}
		rv = rv.Elem()
	}

	switch rv.Kind() {
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			break
		}
		value := rv.MapIndex(reflect.ValueOf(name).Convert(rv.Type().Key()))
		if !value.IsValid() {
			return nil, fmt.Errorf("%w %q on %T", ErrUnknownProperty, name, item)
		}
		return value.Interface(), nil
	case reflect.Struct:
		fieldValue := rv.FieldByNameFunc(func(candidate string) bool {
			return strings.EqualFold(candidate, name)
		})
		if fieldValue.IsValid() && fieldValue.CanInterface() {
			return fieldValue.Interface(), nil
		}
		if method := findMethod(rv, name); method.IsValid() {
			return method.Call(nil)[0].Interface(), nil
		}
	}
	return nil, fmt.Errorf("%w %q on %T", ErrUnknownProperty, name, item)
}

func findMethod(rv reflect.Value, name string) reflect.Value {
	if !rv.IsValid() || name == "" {
		return reflect.Value{}
	}
	typ := rv.Type()
	for _, candidate := range []string{name, "Get" + name, "Is" + name} {
		for i := 0; i < typ.NumMethod(); i++ {
			method := typ.Method(i)
			if !strings.EqualFold(method.Name, candidate) {
				continue
			}
			fn := rv.Method(i)
			if fn.Type().NumIn() == 0 && fn.Type().NumOut() >= 1 {
				return fn
			}
		}
	}
	return reflect.Value{}
}

// selection returns a predicate reporting whether an option value is part
// of the current value. Slices, arrays and lists match any element.
func selection(value any) func(string) bool {
	if value == nil {
		return func(string) bool { return false }
	}

	var chosen []string
	switch typed := value.(type) {
	case stringsProvider:
		chosen = typed.Strings()
	case []string:
		chosen = typed
	default:
		rv := reflect.ValueOf(value)
		if rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array {
			for i := 0; i < rv.Len(); i++ {
				chosen = append(chosen, stringValue(rv.Index(i).Interface()))
			}
		} else {
			chosen = []string{stringValue(value)}
		}
	}

	set := make(map[string]struct{}, len(chosen))
	for _, item := range chosen {
		set[item] = struct{}{}
	}
	return func(candidate string) bool {
		_, ok := set[candidate]
		return ok
	}
}

func isScalar(value any) bool {
	if value == nil {
		return true
	}
	if _, ok := value.(fmt.Stringer); ok {
		return true
	}
	switch reflect.TypeOf(value).Kind() {
	case reflect.Bool, reflect.String,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	default:
		return false
	}
}

func truthy(value any) bool {
	switch typed := value.(type) {
	case nil:
		return false
	case bool:
		return typed
	case string:
		parsed, err := strconv.ParseBool(strings.TrimSpace(typed))
		return err == nil && parsed
	}
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int() != 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return rv.Uint() != 0
	case reflect.Float32, reflect.Float64:
		return rv.Float() != 0
	case reflect.Pointer:
		return !rv.IsNil() && truthy(rv.Elem().Interface())
	default:
		return true
	}
}

// groupRuns splits options into consecutive runs sharing a group.
func groupRuns(options []RenderedOption) [][]RenderedOption {
	var runs [][]RenderedOption
	for _, opt := range options {
		last := len(runs) - 1
		if last >= 0 && runs[last][0].Group == opt.Group {
			runs[last] = append(runs[last], opt)
			continue
		}
		runs = append(runs, []RenderedOption{opt})
	}
	return runs
}
