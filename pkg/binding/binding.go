// Package binding reads and writes values through property paths, the way
// posted form keys such as "tags[2]" or "value.[0]" address nested targets.
// Lists are addressed through the Indexed contract (satisfied by
// *dyna.List), named properties through Properties and map[string]any.
package binding

import (
	"errors"
	"fmt"
	"net/url"
	"sort"
	"strings"
)

var (
	// ErrInvalidPath reports a malformed property path.
	ErrInvalidPath = errors.New("binding: invalid property path")
	// ErrUnknownProperty reports a path segment the target cannot resolve.
	ErrUnknownProperty = errors.New("binding: unknown property")
	// ErrNotIndexed reports an index segment applied to a non-list target.
	ErrNotIndexed = errors.New("binding: target is not indexed")
	// ErrNotWritable reports a named property that cannot be assigned.
	ErrNotWritable = errors.New("binding: property not writable")
)

// Indexed is the list contract used for index segments. Reads past the end
// must report absence without growing; writes past the end must grow.
type Indexed interface {
	Len() int
	GetAny(index int) any
	GetString(index int) (string, bool)
	SetString(index int, raw string) error
}

// Properties exposes named properties for reading.
type Properties interface {
	Property(name string) (any, bool)
}

// PropertySetter assigns named properties. Implementations report false
// when the value does not fit the property.
type PropertySetter interface {
	SetProperty(name string, value any) bool
}

// GetProperty resolves path against target. Missing list entries resolve to
// nil rather than an error.
func GetProperty(target any, path string) (any, error) {
	segments, err := parsePath(path)
	if err != nil {
		return nil, err
	}
	if segments[len(segments)-1].push {
		return nil, fmt.Errorf("%w: %q cannot be read", ErrInvalidPath, path)
	}
	return walk(target, segments, path)
}

// GetString resolves path and returns its string form. Absent values return
// an empty string.
func GetString(target any, path string) (string, error) {
	segments, err := parsePath(path)
	if err != nil {
		return "", err
	}
	parent, err := walk(target, segments[:len(segments)-1], path)
	if err != nil {
		return "", err
	}
	last := segments[len(segments)-1]
	if last.push {
		return "", fmt.Errorf("%w: %q cannot be read", ErrInvalidPath, path)
	}
	if last.indexed() {
		list, ok := parent.(Indexed)
		if !ok {
			return "", fmt.Errorf("%w: %q", ErrNotIndexed, path)
		}
		value, _ := list.GetString(last.index)
		return value, nil
	}
	value, err := property(parent, last.name, path)
	if err != nil {
		return "", err
	}
	return stringify(value), nil
}

// SetProperty converts raw into the target addressed by path. Index
// segments grow lists as needed; a trailing "[]" appends.
func SetProperty(target any, path, raw string) error {
	segments, err := parsePath(path)
	if err != nil {
		return err
	}
	parent, err := walk(target, segments[:len(segments)-1], path)
	if err != nil {
		return err
	}
	last := segments[len(segments)-1]
	if last.indexed() {
		list, ok := parent.(Indexed)
		if !ok {
			return fmt.Errorf("%w: %q", ErrNotIndexed, path)
		}
		index := last.index
		if last.push {
			index = list.Len()
		}
		if err := list.SetString(index, raw); err != nil {
			return fmt.Errorf("binding: set %q: %w", path, err)
		}
		return nil
	}

	switch typed := parent.(type) {
	case map[string]any:
		typed[last.name] = raw
		return nil
	case PropertySetter:
		if props, ok := parent.(Properties); ok {
			if _, exists := props.Property(last.name); !exists {
				return fmt.Errorf("%w: %q in %q", ErrUnknownProperty, last.name, path)
			}
		}
		if typed.SetProperty(last.name, raw) {
			return nil
		}
	}
	return fmt.Errorf("%w: %q", ErrNotWritable, path)
}

// BindOption configures Bind.
type BindOption func(*bindConfig)

type bindConfig struct {
	ignoreUnknown bool
}

// IgnoreUnknown skips posted keys that do not resolve against the target.
func IgnoreUnknown() BindOption {
	return func(cfg *bindConfig) {
		cfg.ignoreUnknown = true
	}
}

// Bind applies every posted key to target. Keys resolving to a list without
// an index, or ending in "[]", fill the list positionally, so repeated
// checkbox values bind in order. Failures are joined and returned after every
// key was attempted.
func Bind(target any, values url.Values, opts ...BindOption) error {
	cfg := bindConfig{}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	keys := make([]string, 0, len(values))
	for key := range values {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var errs []error
	for _, key := range keys {
		posted := values[key]
		if len(posted) == 0 {
			continue
		}
		if err := bindKey(target, key, posted); err != nil {
			if cfg.ignoreUnknown && errors.Is(err, ErrUnknownProperty) {
				continue
			}
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func bindKey(target any, key string, posted []string) error {
	segments, err := parsePath(key)
	if err != nil {
		return err
	}
	last := segments[len(segments)-1]
	if last.push {
		resolved, err := walk(target, segments[:len(segments)-1], key)
		if err != nil {
			return err
		}
		list, ok := resolved.(Indexed)
		if !ok {
			return fmt.Errorf("%w: %q", ErrNotIndexed, key)
		}
		return fill(list, key, posted)
	}
	if !last.indexed() {
		if resolved, err := walk(target, segments, key); err == nil {
			if list, ok := resolved.(Indexed); ok {
				return fill(list, key, posted)
			}
		}
	}
	return SetProperty(target, key, posted[len(posted)-1])
}

func fill(list Indexed, key string, posted []string) error {
	for idx, raw := range posted {
		if err := list.SetString(idx, raw); err != nil {
			return fmt.Errorf("binding: set %q: %w", key, err)
		}
	}
	return nil
}

func walk(target any, segments []segment, path string) (any, error) {
	current := target
	for _, seg := range segments {
		if current == nil {
			return nil, nil
		}
		if seg.indexed() {
			list, ok := current.(Indexed)
			if !ok {
				return nil, fmt.Errorf("%w: %q at %s", ErrNotIndexed, path, seg)
			}
			current = list.GetAny(seg.index)
			continue
		}
		value, err := property(current, seg.name, path)
		if err != nil {
			return nil, err
		}
		current = value
	}
	return current, nil
}

func property(target any, name, path string) (any, error) {
	switch typed := target.(type) {
	case map[string]any:
		value, ok := typed[name]
		if !ok {
			return nil, fmt.Errorf("%w: %q in %q", ErrUnknownProperty, name, path)
		}
		return value, nil
	case Properties:
		value, ok := typed.Property(name)
		if !ok {
			return nil, fmt.Errorf("%w: %q in %q", ErrUnknownProperty, name, path)
		}
		return value, nil
	}
	return nil, fmt.Errorf("%w: %q in %q (target %T)", ErrUnknownProperty, name, path, target)
}

func stringify(value any) string {
	switch typed := value.(type) {
	case nil:
		return ""
	case string:
		return typed
	case fmt.Stringer:
		return typed.String()
	default:
		return strings.TrimSpace(fmt.Sprint(typed))
	}
}
