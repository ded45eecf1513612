package render

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/goliatone/go-inputfield/pkg/field"
)

// GroupAttribute is the input attribute consulted when filtering by group.
const GroupAttribute = "data-group"

// Subset selects input declarations by name, type or group. An input
// matches when any populated criterion matches; an empty Subset keeps
// everything. Matching ignores case, unlike renderer dispatch.
type Subset struct {
	Names  []string
	Types  []string
	Groups []string
}

// ParseSubsetList splits a comma separated or JSON array list into
// normalised tokens, the format accepted by command line flags.
func ParseSubsetList(raw string) []string {
	return parseTokenList(raw)
}

// ApplySubset returns the inputs matching subset, preserving order. Nil
// inputs are dropped. The slice is returned unchanged for an empty subset.
func ApplySubset(inputs []*field.Input, subset Subset) []*field.Input {
	matcher := newSubsetMatcher(subset)
	if matcher.empty() {
		return inputs
	}

	filtered := make([]*field.Input, 0, len(inputs))
	for _, in := range inputs {
		if in != nil && matcher.matches(in) {
			filtered = append(filtered, in)
		}
	}
	if len(filtered) == 0 {
		return nil
	}
	return filtered
}

type subsetMatcher struct {
	names  map[string]struct{}
	types  map[string]struct{}
	groups map[string]struct{}
}

func newSubsetMatcher(subset Subset) subsetMatcher {
	return subsetMatcher{
		names:  normaliseTokens(subset.Names),
		types:  normaliseTokens(subset.Types),
		groups: normaliseTokens(subset.Groups),
	}
}

func (m subsetMatcher) empty() bool {
	return len(m.names) == 0 && len(m.types) == 0 && len(m.groups) == 0
}

func (m subsetMatcher) matches(in *field.Input) bool {
	if len(m.names) > 0 {
		if name := normaliseToken(in.Name()); name != "" {
			if _, ok := m.names[name]; ok {
				return true
			}
		}
	}

	if len(m.types) > 0 {
		if _, ok := m.types[normaliseToken(in.NormalizedType())]; ok {
			return true
		}
	}

	if len(m.groups) > 0 {
		for _, group := range inputGroups(in) {
			if _, ok := m.groups[group]; ok {
				return true
			}
		}
	}

	return false
}

func inputGroups(in *field.Input) []string {
	raw, ok := in.Attribute(GroupAttribute)
	if !ok || raw == nil {
		return nil
	}
	return parseTokenList(anyToString(raw))
}

func normaliseTokens(values []string) map[string]struct{} {
	if len(values) == 0 {
		return nil
	}
	result := make(map[string]struct{}, len(values))
	for _, value := range values {
		token := normaliseToken(value)
		if token == "" {
			continue
		}
		result[token] = struct{}{}
	}
	if len(result) == 0 {
		return nil
	}
	return result
}

func normaliseToken(value string) string {
	return strings.ToLower(strings.TrimSpace(value))
}

func dedupe(values []string) []string {
	if len(values) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, value := range values {
		if _, exists := seen[value]; exists {
			continue
		}
		seen[value] = struct{}{}
		out = append(out, value)
	}
	return out
}

func parseTokenList(raw string) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}

	if strings.HasPrefix(raw, "[") {
		var parsed []any
		if err := json.Unmarshal([]byte(raw), &parsed); err == nil {
			tokens := make([]string, 0, len(parsed))
			for _, entry := range parsed {
				if token := normaliseToken(anyToString(entry)); token != "" {
					tokens = append(tokens, token)
				}
			}
			return dedupe(tokens)
		}
	}

	parts := strings.Split(raw, ",")
	tokens := make([]string, 0, len(parts))
	for _, part := range parts {
		if token := normaliseToken(part); token != "" {
			tokens = append(tokens, token)
		}
	}
	return dedupe(tokens)
}

func anyToString(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case nil:
		return ""
	default:
		return fmt.Sprint(v)
	}
}
