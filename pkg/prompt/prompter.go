// Package prompt asks for input declarations in a terminal instead of
// rendering HTML. Answers come back as url.Values keyed by each input's name
// attribute, the same shape a browser would post, so they can be fed to
// binding.Bind.
package prompt

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"go.uber.org/zap"

	"github.com/goliatone/go-inputfield/pkg/field"
	"github.com/goliatone/go-inputfield/pkg/renderers/html"
)

// Option configures a Prompter.
type Option func(*Prompter)

// WithDriver overrides the terminal driver.
func WithDriver(driver Driver) Option {
	return func(p *Prompter) {
		if driver != nil {
			p.driver = driver
		}
	}
}

// WithLogger sets the logger used for skipped inputs.
func WithLogger(logger *zap.Logger) Option {
	return func(p *Prompter) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// Prompter collects answers for input declarations.
type Prompter struct {
	driver Driver
	logger *zap.Logger
}

// New constructs a Prompter using the survey driver by default.
func New(options ...Option) *Prompter {
	p := &Prompter{
		driver: NewSurveyDriver(),
		logger: zap.NewNop(),
	}
	for _, opt := range options {
		if opt != nil {
			opt(p)
		}
	}
	return p
}

// Ask prompts for every input in order and returns the collected values.
func (p *Prompter) Ask(ctx context.Context, inputs ...*field.Input) (url.Values, error) {
	if ctx == nil {
		return nil, errors.New("prompt: context is required")
	}
	values := url.Values{}
	for _, in := range inputs {
		if in == nil {
			continue
		}
		if err := p.askOne(ctx, in, values); err != nil {
			return nil, err
		}
	}
	return values, nil
}

func (p *Prompter) askOne(ctx context.Context, in *field.Input, values url.Values) error {
	name := in.Name()
	if name == "" {
		return fmt.Errorf("%w (type %s)", ErrMissingName, in.NormalizedType())
	}
	message := label(in, name)
	current := currentValue(in)

	switch in.NormalizedType() {
	case "hidden":
		p.logger.Debug("hidden input passed through", zap.String("name", name))
		if current != "" {
			values.Set(name, current)
		}
		return nil
	case "password":
		answer, err := p.driver.Password(ctx, InputConfig{Message: message})
		if err != nil {
			return err
		}
		values.Set(name, answer)
		return nil
	case "textarea":
		answer, err := p.driver.TextArea(ctx, TextAreaConfig{Message: message, Default: current})
		if err != nil {
			return err
		}
		values.Set(name, answer)
		return nil
	case "select", "radio":
		return p.askSelect(ctx, in, name, message, values)
	case "checkbox":
		if in.Options == nil {
			return p.askConfirm(ctx, in, name, message, values)
		}
		return p.askMulti(ctx, in, name, message, values)
	default:
		answer, err := p.driver.Input(ctx, InputConfig{Message: message, Default: current})
		if err != nil {
			return err
		}
		values.Set(name, answer)
		return nil
	}
}

func (p *Prompter) askSelect(ctx context.Context, in *field.Input, name, message string, values url.Values) error {
	options, err := enabledOptions(in)
	if err != nil {
		return err
	}
	if len(options) == 0 {
		p.logger.Warn("select input has no enabled options", zap.String("name", name))
		return nil
	}
	cfg := SelectConfig{Message: message, Options: labels(options), DefaultIndex: -1}
	for idx, opt := range options {
		if opt.Selected {
			cfg.DefaultIndex = idx
			break
		}
	}
	idx, err := p.driver.Select(ctx, cfg)
	if err != nil {
		return err
	}
	if idx >= 0 && idx < len(options) {
		values.Set(name, options[idx].Value)
	}
	return nil
}

func (p *Prompter) askMulti(ctx context.Context, in *field.Input, name, message string, values url.Values) error {
	options, err := enabledOptions(in)
	if err != nil {
		return err
	}
	if len(options) == 0 {
		p.logger.Warn("checkbox input has no enabled options", zap.String("name", name))
		return nil
	}
	cfg := SelectConfig{Message: message, Options: labels(options)}
	for idx, opt := range options {
		if opt.Selected {
			cfg.Defaults = append(cfg.Defaults, idx)
		}
	}
	chosen, err := p.driver.MultiSelect(ctx, cfg)
	if err != nil {
		return err
	}
	for _, idx := range chosen {
		if idx >= 0 && idx < len(options) {
			values.Add(name, options[idx].Value)
		}
	}
	return nil
}

func (p *Prompter) askConfirm(ctx context.Context, in *field.Input, name, message string, values url.Values) error {
	submit := in.SubmitValue
	if submit == "" {
		submit = html.DefaultSubmitValue
	}
	yes, err := p.driver.Confirm(ctx, ConfirmConfig{
		Message: message,
		Default: in.Value != nil && currentValue(in) == submit,
	})
	if err != nil {
		return err
	}
	if yes {
		values.Set(name, submit)
	}
	return nil
}

func enabledOptions(in *field.Input) ([]html.RenderedOption, error) {
	options, err := html.ComputeOptions(in)
	if err != nil {
		return nil, err
	}
	out := options[:0]
	for _, opt := range options {
		if opt.Enabled {
			out = append(out, opt)
		}
	}
	return out, nil
}

func labels(options []html.RenderedOption) []string {
	out := make([]string, len(options))
	for i, opt := range options {
		out[i] = opt.Label
		if opt.Group != "" {
			out[i] = opt.Group + " / " + opt.Label
		}
	}
	return out
}

func label(in *field.Input, fallback string) string {
	if raw, ok := in.Attribute("label"); ok && raw != nil {
		if text := strings.TrimSpace(fmt.Sprint(raw)); text != "" {
			return text
		}
	}
	return fallback
}

func currentValue(in *field.Input) string {
	if in.Value == nil {
		return ""
	}
	return fmt.Sprint(in.Value)
}
