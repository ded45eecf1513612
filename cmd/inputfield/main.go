package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"strings"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-inputfield/pkg/binding"
	"github.com/goliatone/go-inputfield/pkg/config"
	"github.com/goliatone/go-inputfield/pkg/dyna"
	"github.com/goliatone/go-inputfield/pkg/field"
	"github.com/goliatone/go-inputfield/pkg/prompt"
	"github.com/goliatone/go-inputfield/pkg/render"
	"github.com/goliatone/go-inputfield/pkg/render/template/gotemplate"
	"github.com/goliatone/go-inputfield/pkg/renderers/html"
	tplrenderer "github.com/goliatone/go-inputfield/pkg/renderers/template"
)

func main() {
	configPath := flag.String("config", "", "input declaration file (YAML or JSON)")
	mode := flag.String("mode", "html", "output mode: html or prompt")
	templates := flag.String("templates", "", "directory holding templates referenced by the config")
	verbose := flag.Bool("verbose", false, "enable development logging")
	locale := flag.String("locale", "", "override the config locale")
	only := flag.String("only", "", "comma separated input names to keep")
	types := flag.String("types", "", "comma separated input types to keep")
	groups := flag.String("groups", "", "comma separated data-group values to keep")
	flag.Parse()

	logger, err := newLogger(*verbose)
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	if strings.TrimSpace(*configPath) == "" {
		log.Fatal("-config is required")
	}
	doc, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	if *locale != "" {
		doc.Locale = strings.TrimSpace(*locale)
	}
	logger.Debug("config loaded",
		zap.String("source", doc.Source),
		zap.String("locale", doc.Locale),
		zap.Int("inputs", len(doc.Inputs)),
	)

	inputs := render.ApplySubset(doc.BuildInputs(), render.Subset{
		Names:  render.ParseSubsetList(*only),
		Types:  render.ParseSubsetList(*types),
		Groups: render.ParseSubsetList(*groups),
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	switch strings.ToLower(strings.TrimSpace(*mode)) {
	case "html":
		dispatcher, err := newDispatcher(doc, *templates, logger)
		if err != nil {
			log.Fatalf("build dispatcher: %v", err)
		}
		if err := renderHTML(ctx, os.Stdout, dispatcher, inputs); err != nil {
			log.Fatalf("render: %v", err)
		}
	case "prompt":
		if err := runPrompt(ctx, os.Stdout, inputs, prompt.WithLogger(logger)); err != nil {
			log.Fatalf("prompt: %v", err)
		}
	default:
		log.Fatalf("unknown mode %q", *mode)
	}
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{"stderr"}
	return cfg.Build()
}

// newDispatcher wires the HTML renderers with the embedded templates and,
// when the config maps extra types, templates loaded from dir.
func newDispatcher(doc *config.Document, dir string, logger *zap.Logger) (*render.Dispatcher, error) {
	var providers []render.Renderer

	if len(doc.Templates) > 0 {
		if strings.TrimSpace(dir) == "" {
			return nil, fmt.Errorf("config %s maps templates but -templates is not set", doc.Source)
		}
		engine, err := gotemplate.New(
			gotemplate.WithBaseDir(dir),
			gotemplate.WithFuncs(render.TemplateI18nFuncs(doc.LocalizeOptions())),
		)
		if err != nil {
			return nil, err
		}
		custom, err := tplrenderer.New(engine, doc.Templates)
		if err != nil {
			return nil, err
		}
		providers = append(providers, custom)
	}

	builtin, err := tplrenderer.NewDefault()
	if err != nil {
		return nil, err
	}
	providers = append(providers, builtin)

	return html.NewDispatcher(
		render.WithLogger(logger),
		render.WithProviders(providers...),
	), nil
}

func renderHTML(ctx context.Context, w io.Writer, dispatcher *render.Dispatcher, inputs []*field.Input) error {
	for _, in := range inputs {
		if err := dispatcher.Render(ctx, w, in); err != nil {
			return err
		}
		if _, err := io.WriteString(w, "\n"); err != nil {
			return err
		}
	}
	return nil
}

func runPrompt(ctx context.Context, w io.Writer, inputs []*field.Input, options ...prompt.Option) error {
	values, err := prompt.New(options...).Ask(ctx, inputs...)
	if err != nil {
		return err
	}

	target := make(map[string]any, len(inputs))
	lists := make(map[string]*dyna.List[string])
	for _, in := range inputs {
		name := in.Name()
		if in.NormalizedType() == "checkbox" && in.Options != nil {
			// "tags[]" posts append into the list stored under "tags".
			name = strings.TrimSuffix(name, "[]")
			list := dyna.MustConstruct[string](nil)
			lists[name] = list
			target[name] = list
			continue
		}
		target[name] = ""
	}
	if err := binding.Bind(target, values); err != nil {
		return err
	}

	out := make(map[string]any, len(target))
	for name, value := range target {
		if list, ok := lists[name]; ok {
			out[name] = list.Values()
			continue
		}
		out[name] = value
	}
	enc := yaml.NewEncoder(w)
	defer enc.Close()
	return enc.Encode(out)
}
