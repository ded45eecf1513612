package binding

import (
	"errors"
	"net/url"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-inputfield/pkg/convert"
	"github.com/goliatone/go-inputfield/pkg/dyna"
	"github.com/goliatone/go-inputfield/pkg/field"
)

type direction string

const (
	north direction = "North"
	east  direction = "East"
	south direction = "South"
	west  direction = "West"
)

func directionList(t *testing.T) *dyna.List[direction] {
	t.Helper()
	reg := convert.NewBuiltinRegistry()
	if err := convert.RegisterEnum(reg, north, east, south, west); err != nil {
		t.Fatalf("register enum: %v", err)
	}
	list, err := dyna.Construct[direction](reg)
	if err != nil {
		t.Fatalf("construct: %v", err)
	}
	return list
}

func TestListInField(t *testing.T) {
	f := field.Initialize(directionList(t))

	if err := SetProperty(f, "value.[0]", "South"); err != nil {
		t.Fatalf("set property: %v", err)
	}
	if got, _ := f.Value().Get(0); got != south {
		t.Fatalf("expected south in field value, got %v", got)
	}
	got, err := GetProperty(f, "value.[0]")
	if err != nil {
		t.Fatalf("get property: %v", err)
	}
	if got != south {
		t.Fatalf("expected south via path, got %v", got)
	}
}

func TestSetIndexedProperty(t *testing.T) {
	list := dyna.MustConstruct[string](nil)

	if err := SetProperty(list, "[2]", "value"); err != nil {
		t.Fatalf("set property: %v", err)
	}
	if got, _ := list.Get(2); got != "value" {
		t.Fatalf("expected value at index 2, got %q", got)
	}
	if list.Len() != 3 {
		t.Fatalf("expected size 3, got %d", list.Len())
	}
	if got, err := GetProperty(list, "[0]"); err != nil || got != nil {
		t.Fatalf("expected nil gap, got %v (err %v)", got, err)
	}
}

func TestGetIndexedPropertyPastEnd(t *testing.T) {
	list := dyna.MustConstruct[string](nil)
	got, err := GetProperty(list, "[0]")
	if err != nil {
		t.Fatalf("get property: %v", err)
	}
	if got != nil {
		t.Fatalf("expected nil, got %v", got)
	}
	if list.Len() != 0 {
		t.Fatalf("read must not grow the list")
	}
}

func TestGetIndexedEnumDuality(t *testing.T) {
	list := directionList(t)
	list.Add(north)

	name, err := GetString(list, "[0]")
	if err != nil {
		t.Fatalf("get string: %v", err)
	}
	if name != "North" {
		t.Fatalf("expected name North, got %q", name)
	}
	value, err := GetProperty(list, "[0]")
	if err != nil {
		t.Fatalf("get property: %v", err)
	}
	if value != north {
		t.Fatalf("expected native north, got %v", value)
	}
}

func TestSetPropertyConversionError(t *testing.T) {
	list := directionList(t)
	err := SetProperty(list, "[1]", "Up")
	if !errors.Is(err, convert.ErrConversion) {
		t.Fatalf("expected conversion error, got %v", err)
	}
}

func TestPathErrors(t *testing.T) {
	cases := []string{"", "[", "[x]", "a]", "[-1]", "tags[].name", "[]"}
	for _, path := range cases {
		if _, err := GetProperty(map[string]any{}, path); !errors.Is(err, ErrInvalidPath) {
			t.Fatalf("path %q: expected ErrInvalidPath, got %v", path, err)
		}
	}

	if _, err := GetProperty(map[string]any{}, "missing"); !errors.Is(err, ErrUnknownProperty) {
		t.Fatalf("expected ErrUnknownProperty, got %v", err)
	}
	if err := SetProperty(map[string]any{"name": "x"}, "name[0]", "y"); !errors.Is(err, ErrNotIndexed) {
		t.Fatalf("expected ErrNotIndexed, got %v", err)
	}
}

func TestNestedMapPaths(t *testing.T) {
	tags := dyna.MustConstruct[int](nil)
	target := map[string]any{
		"form": map[string]any{"tags": tags},
	}

	if err := SetProperty(target, "form.tags[1]", "12"); err != nil {
		t.Fatalf("set property: %v", err)
	}
	got, err := GetString(target, "form.tags.[1]")
	if err != nil || got != "12" {
		t.Fatalf("expected 12, got %q (err %v)", got, err)
	}
	if err := SetProperty(target, "form.title", "Hello"); err != nil {
		t.Fatalf("set title: %v", err)
	}
	if title, _ := GetString(target, "form.title"); title != "Hello" {
		t.Fatalf("expected title Hello, got %q", title)
	}
}

func TestBind(t *testing.T) {
	colors := dyna.MustConstruct[string](nil)
	directions := directionList(t)
	target := map[string]any{
		"colors":     colors,
		"directions": field.Initialize(directions),
	}

	posted := url.Values{
		"colors":              {"red", "blue"},
		"directions.value[1]": {"West"},
		"directions.missing":  {"x"},
	}

	err := Bind(target, posted)
	if !errors.Is(err, ErrUnknownProperty) {
		t.Fatalf("expected unknown property error, got %v", err)
	}

	if diff := cmp.Diff([]string{"red", "blue"}, colors.Values()); diff != "" {
		t.Fatalf("colors mismatch (-want +got):\n%s", diff)
	}
	if got, ok := directions.Get(1); !ok || got != west {
		t.Fatalf("expected west at index 1, got %v (ok=%v)", got, ok)
	}

	if err := Bind(target, posted, IgnoreUnknown()); err != nil {
		t.Fatalf("bind with IgnoreUnknown: %v", err)
	}
}

func TestIndicesPastMaxAreRejected(t *testing.T) {
	tags := dyna.MustConstruct[string](nil)
	target := map[string]any{"tags": tags}

	keys := []string{
		"[9223372036854775807]",
		"[1152921504606846975]",
		"tags[10001]",
	}
	for _, key := range keys {
		err := Bind(tags, url.Values{key: {"x"}})
		if key == "tags[10001]" {
			err = Bind(target, url.Values{key: {"x"}})
		}
		if !errors.Is(err, ErrInvalidPath) {
			t.Fatalf("key %q: expected ErrInvalidPath, got %v", key, err)
		}
	}
	if tags.Len() != 0 {
		t.Fatalf("expected untouched list, got %d items", tags.Len())
	}

	if err := SetProperty(target, "tags[10000]", "last"); err != nil {
		t.Fatalf("set at max index: %v", err)
	}
	if tags.Len() != MaxIndex+1 {
		t.Fatalf("expected %d items, got %d", MaxIndex+1, tags.Len())
	}
}

func TestBindTrailingBrackets(t *testing.T) {
	tags := dyna.MustConstruct[string](nil)
	target := map[string]any{
		"form": map[string]any{"tags": tags},
		"name": "x",
	}

	if err := Bind(target, url.Values{"form.tags[]": {"go", "web"}}); err != nil {
		t.Fatalf("bind: %v", err)
	}
	if diff := cmp.Diff([]string{"go", "web"}, tags.Values()); diff != "" {
		t.Fatalf("tags mismatch (-want +got):\n%s", diff)
	}

	if err := SetProperty(target, "form.tags[]", "cli"); err != nil {
		t.Fatalf("append: %v", err)
	}
	if diff := cmp.Diff([]string{"go", "web", "cli"}, tags.Values()); diff != "" {
		t.Fatalf("tags mismatch after append (-want +got):\n%s", diff)
	}

	if _, err := GetString(target, "form.tags[]"); !errors.Is(err, ErrInvalidPath) {
		t.Fatalf("expected ErrInvalidPath reading [], got %v", err)
	}
	if err := Bind(target, url.Values{"name[]": {"y"}}); !errors.Is(err, ErrNotIndexed) {
		t.Fatalf("expected ErrNotIndexed, got %v", err)
	}
}
