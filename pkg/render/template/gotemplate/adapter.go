package gotemplate

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"strings"
	"sync"

	"github.com/flosch/pongo2/v6"

	"github.com/goliatone/go-inputfield/pkg/render/template"
	"github.com/goliatone/go-inputfield/pkg/renderers/html"
)

// Option configures an Engine before construction.
type Option func(*config)

type config struct {
	baseDir   string
	templates fs.FS
	extension string
	funcs     map[string]any
}

// WithBaseDir loads templates from a directory on disk.
func WithBaseDir(dir string) Option {
	return func(cfg *config) {
		cfg.baseDir = strings.TrimSpace(dir)
	}
}

// WithFS loads templates from an fs.FS. It is consulted after the base dir.
func WithFS(files fs.FS) Option {
	return func(cfg *config) {
		cfg.templates = files
	}
}

// WithExtension overrides the ".tpl" extension appended to template names.
func WithExtension(ext string) Option {
	return func(cfg *config) {
		trimmed := strings.TrimSpace(ext)
		if trimmed == "" {
			return
		}
		if !strings.HasPrefix(trimmed, ".") {
			trimmed = "." + trimmed
		}
		cfg.extension = trimmed
	}
}

// WithFuncs exposes functions to every template, e.g. the helpers returned
// by render.TemplateI18nFuncs.
func WithFuncs(funcs map[string]any) Option {
	return func(cfg *config) {
		if cfg.funcs == nil {
			cfg.funcs = make(map[string]any, len(funcs))
		}
		for name, fn := range funcs {
			if name = strings.TrimSpace(name); name != "" && fn != nil {
				cfg.funcs[name] = fn
			}
		}
	}
}

// Engine satisfies template.TemplateRenderer using a pongo2 template set.
// Templates loaded by name are compiled once and cached.
type Engine struct {
	mu        sync.RWMutex
	set       *pongo2.TemplateSet
	templates map[string]*pongo2.Template
	ext       string
}

var _ template.TemplateRenderer = (*Engine)(nil)

// New constructs an Engine. At least one template source is required.
func New(options ...Option) (*Engine, error) {
	cfg := &config{extension: ".tpl"}
	for _, opt := range options {
		if opt != nil {
			opt(cfg)
		}
	}
	if cfg.baseDir == "" && cfg.templates == nil {
		return nil, errors.New("gotemplate: need to provide either base dir or fs.FS")
	}

	var loaders []pongo2.TemplateLoader
	if cfg.baseDir != "" {
		loader, err := pongo2.NewLocalFileSystemLoader(cfg.baseDir)
		if err != nil {
			return nil, fmt.Errorf("gotemplate: create local loader: %w", err)
		}
		loaders = append(loaders, loader)
	}
	if cfg.templates != nil {
		loaders = append(loaders, pongo2.NewFSLoader(cfg.templates))
	}

	set := pongo2.NewSet("inputfield", loaders...)
	set.Globals = make(pongo2.Context, len(cfg.funcs))
	for name, fn := range cfg.funcs {
		set.Globals[name] = fn
	}
	registerFilters()

	return &Engine{
		set:       set,
		templates: make(map[string]*pongo2.Template),
		ext:       cfg.extension,
	}, nil
}

// RenderTemplate executes the template called name, appending the engine
// extension when name has none.
func (e *Engine) RenderTemplate(name string, data map[string]any, out ...io.Writer) (string, error) {
	path := name
	if !strings.HasSuffix(path, e.ext) {
		path += e.ext
	}
	tmpl, err := e.load(path)
	if err != nil {
		return "", err
	}
	return execute(tmpl, path, data, out)
}

// RenderString compiles content and executes it.
func (e *Engine) RenderString(content string, data map[string]any, out ...io.Writer) (string, error) {
	tmpl, err := e.set.FromString(content)
	if err != nil {
		return "", fmt.Errorf("gotemplate: parse template string: %w", err)
	}
	return execute(tmpl, "inline", data, out)
}

func (e *Engine) load(path string) (*pongo2.Template, error) {
	e.mu.RLock()
	tmpl, ok := e.templates[path]
	e.mu.RUnlock()
	if ok {
		return tmpl, nil
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if tmpl, ok := e.templates[path]; ok {
		return tmpl, nil
	}
	tmpl, err := e.set.FromFile(path)
	if err != nil {
		return nil, fmt.Errorf("gotemplate: load template %q: %w", path, err)
	}
	e.templates[path] = tmpl
	return tmpl, nil
}

func execute(tmpl *pongo2.Template, label string, data map[string]any, out []io.Writer) (string, error) {
	ctx := pongo2.Context(data)
	if ctx == nil {
		ctx = pongo2.Context{}
	}
	var buf bytes.Buffer
	if err := tmpl.ExecuteWriter(ctx, &buf); err != nil {
		return "", fmt.Errorf("gotemplate: execute template %q: %w", label, err)
	}
	rendered := buf.String()
	for _, w := range out {
		if _, err := io.WriteString(w, rendered); err != nil {
			return "", err
		}
	}
	return rendered, nil
}

var filtersOnce sync.Once

// registerFilters installs the input filters. pongo2 filters are global, so
// this runs once per process.
func registerFilters() {
	filtersOnce.Do(func() {
		for name, fn := range map[string]pongo2.FilterFunction{
			"trim":     filterTrim,
			"idsuffix": filterIDSuffix,
			"label":    filterLabel,
		} {
			if !pongo2.FilterExists(name) {
				_ = pongo2.RegisterFilter(name, fn)
			}
		}
	})
}

func filterTrim(in *pongo2.Value, _ *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
	return pongo2.AsValue(strings.TrimSpace(in.String())), nil
}

// filterIDSuffix builds the per-option id used by radio and checkbox
// renderers: {{ input.id }}_{{ option.value|idsuffix }}.
func filterIDSuffix(in *pongo2.Value, _ *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
	return pongo2.AsValue(html.IDSuffix(in.String())), nil
}

// filterLabel applies the option label policy and marks the result safe.
func filterLabel(in *pongo2.Value, _ *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
	return pongo2.AsSafeValue(html.SanitizeLabel(in.String())), nil
}
