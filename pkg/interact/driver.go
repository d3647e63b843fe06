// Package interact builds component instances from terminal prompts: every
// required field without a supplied value is asked for interactively. The
// prompt implementation sits behind a driver seam so render logic stays
// testable without a real terminal.
package interact

import (
	"fmt"
	"strconv"

	"github.com/AlecAivazis/survey/v2"

	"github.com/goliatone/go-promptgen/pkg/component"
)

// InputConfig configures a text input prompt.
type InputConfig struct {
	Message string
	Default string
	Help    string
}

// ConfirmConfig configures a yes/no prompt.
type ConfirmConfig struct {
	Message string
	Default bool
	Help    string
}

// Driver abstracts the terminal prompt implementation.
type Driver interface {
	Input(cfg InputConfig) (string, error)
	Confirm(cfg ConfirmConfig) (bool, error)
}

type surveyDriver struct{}

func (surveyDriver) Input(cfg InputConfig) (string, error) {
	var out string
	prompt := &survey.Input{
		Message: cfg.Message,
		Default: cfg.Default,
		Help:    cfg.Help,
	}
	if err := survey.AskOne(prompt, &out); err != nil {
		return "", fmt.Errorf("interact: input prompt: %w", err)
	}
	return out, nil
}

func (surveyDriver) Confirm(cfg ConfirmConfig) (bool, error) {
	out := cfg.Default
	prompt := &survey.Confirm{
		Message: cfg.Message,
		Default: cfg.Default,
		Help:    cfg.Help,
	}
	if err := survey.AskOne(prompt, &out); err != nil {
		return false, fmt.Errorf("interact: confirm prompt: %w", err)
	}
	return out, nil
}

// Option customises the filler.
type Option func(*Filler)

// WithDriver swaps the prompt implementation. Used by tests and embedders.
func WithDriver(driver Driver) Option {
	return func(f *Filler) {
		if driver != nil {
			f.driver = driver
		}
	}
}

// Filler prompts for unbound required fields and constructs an instance.
type Filler struct {
	driver Driver
}

// New constructs a Filler backed by survey prompts unless overridden.
func New(options ...Option) *Filler {
	f := &Filler{driver: surveyDriver{}}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(f)
	}
	return f
}

// Fill merges seed values with prompted answers for every required field the
// seed omits, then constructs the instance. Optional fields keep their
// defaults; prompting converts answers to the field's declared type.
func (f *Filler) Fill(def *component.Definition, seed component.Values) (*component.Instance, error) {
	schema, err := def.Schema()
	if err != nil {
		return nil, err
	}

	vals := make(component.Values, len(schema))
	for name, value := range seed {
		vals[name] = value
	}

	for _, field := range schema {
		if _, supplied := vals[field.Name]; supplied {
			continue
		}
		if field.HasDefault() {
			continue
		}
		answer, err := f.ask(def.Name(), field)
		if err != nil {
			return nil, err
		}
		vals[field.Name] = answer
	}

	return def.New(vals)
}

func (f *Filler) ask(class string, field component.FieldSpec) (any, error) {
	message := fmt.Sprintf("%s.%s", class, field.Name)
	help := fmt.Sprintf("%s value for component %s", field.Type, class)

	if field.Type == component.TypeBool {
		return f.driver.Confirm(ConfirmConfig{Message: message, Help: help})
	}

	raw, err := f.driver.Input(InputConfig{Message: message, Help: help})
	if err != nil {
		return nil, err
	}
	return convertAnswer(field, raw)
}

func convertAnswer(field component.FieldSpec, raw string) (any, error) {
	switch field.Type {
	case component.TypeInt:
		value, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("interact: field %q expects an integer: %w", field.Name, err)
		}
		return value, nil
	case component.TypeFloat:
		value, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, fmt.Errorf("interact: field %q expects a number: %w", field.Name, err)
		}
		return value, nil
	default:
		return raw, nil
	}
}
