// Package pongo adapts a pongo2 template set to the template.Engine seam.
// The expression language (attribute access, filters) is pongo2's; this
// package only wires loaders, caching and the default filter set.
package pongo

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"sync"

	"github.com/flosch/pongo2/v6"
	"github.com/microcosm-cc/bluemonday"

	"github.com/goliatone/go-promptgen/pkg/render/template"
)

// Option configures the environment before construction.
type Option func(*config)

type config struct {
	baseDir   string
	templates fs.FS
	globals   map[string]any
}

// WithBaseDir loads file templates from a base directory on disk. Engines
// configured this way expose the base-directory capability file templates
// require.
func WithBaseDir(dir string) Option {
	return func(cfg *config) {
		cfg.baseDir = strings.TrimSpace(dir)
	}
}

// WithFS loads file templates from an fs.FS. Note fs.FS loaders cannot report
// a base directory, so file-based component definitions reject them.
func WithFS(files fs.FS) Option {
	return func(cfg *config) {
		cfg.templates = files
	}
}

// WithGlobals seeds context values available to every template.
func WithGlobals(data map[string]any) Option {
	return func(cfg *config) {
		if len(data) == 0 {
			return
		}
		if cfg.globals == nil {
			cfg.globals = make(map[string]any, len(data))
		}
		for key, value := range data {
			cfg.globals[strings.TrimSpace(key)] = value
		}
	}
}

// Environment satisfies the template.Engine contract using a pongo2-backed
// template set. String templates are compiled once and cached; file templates
// are cached by loader-relative name.
type Environment struct {
	mu sync.RWMutex

	set     *pongo2.TemplateSet
	files   map[string]*pongo2.Template
	strings map[string]*pongo2.Template
	baseDir string
}

var (
	_ template.Engine          = (*Environment)(nil)
	_ template.BaseDirProvider = (*Environment)(nil)
)

// New constructs an Environment using the provided options. Without a loader
// option the environment evaluates inline templates only.
func New(options ...Option) (*Environment, error) {
	cfg := &config{}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(cfg)
	}

	var loaders []pongo2.TemplateLoader
	if cfg.baseDir != "" {
		loader, err := pongo2.NewLocalFileSystemLoader(cfg.baseDir)
		if err != nil {
			return nil, fmt.Errorf("pongo: create local loader: %w", err)
		}
		loaders = append(loaders, loader)
	}
	if cfg.templates != nil {
		loaders = append(loaders, pongo2.NewFSLoader(cfg.templates))
	}
	if len(loaders) == 0 {
		// pongo2 requires at least one loader even for inline templates.
		loaders = append(loaders, pongo2.MustNewLocalFileSystemLoader(""))
	}

	env := &Environment{
		set:     pongo2.NewSet("promptgen", loaders...),
		files:   make(map[string]*pongo2.Template),
		strings: make(map[string]*pongo2.Template),
		baseDir: cfg.baseDir,
	}
	registerDefaultFilters()

	if len(cfg.globals) > 0 {
		if env.set.Globals == nil {
			env.set.Globals = make(pongo2.Context)
		}
		env.set.Globals.Update(pongo2.Context(cfg.globals))
	}

	return env, nil
}

// BaseDir reports the filesystem base directory, when one is configured.
func (e *Environment) BaseDir() (string, bool) {
	if e == nil || e.baseDir == "" {
		return "", false
	}
	return e.baseDir, true
}

// RenderString compiles (and caches) an inline template and evaluates it.
func (e *Environment) RenderString(content string, data map[string]any) (string, error) {
	if e == nil || e.set == nil {
		return "", errors.New("pongo: environment is nil")
	}

	tmpl, err := e.stringTemplate(content)
	if err != nil {
		return "", err
	}
	return e.execute(tmpl, data, "template string")
}

// RenderFile loads (and caches) a template through the configured loaders and
// evaluates it.
func (e *Environment) RenderFile(name string, data map[string]any) (string, error) {
	if e == nil || e.set == nil {
		return "", errors.New("pongo: environment is nil")
	}

	tmpl, err := e.fileTemplate(name)
	if err != nil {
		return "", err
	}
	return e.execute(tmpl, data, fmt.Sprintf("template %q", name))
}

// RegisterFilter registers a custom filter with the shared pongo2 filter
// table. Duplicate names return an error.
func (e *Environment) RegisterFilter(name string, fn func(input any, param any) (any, error)) error {
	if strings.TrimSpace(name) == "" || fn == nil {
		return errors.New("pongo: filter name and function required")
	}

	filter := func(in *pongo2.Value, param *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
		var paramVal any
		if param != nil {
			paramVal = param.Interface()
		}
		result, err := fn(in.Interface(), paramVal)
		if err != nil {
			return nil, &pongo2.Error{Sender: "custom_filter", OrigError: err}
		}
		return pongo2.AsValue(result), nil
	}

	if pongo2.FilterExists(name) {
		return fmt.Errorf("pongo: filter %q already exists", name)
	}
	return pongo2.RegisterFilter(name, filter)
}

func (e *Environment) execute(tmpl *pongo2.Template, data map[string]any, what string) (string, error) {
	viewContext := make(pongo2.Context, len(data))
	for key, value := range data {
		viewContext[key] = value
	}

	var buf bytes.Buffer

	e.mu.RLock()
	err := tmpl.ExecuteWriter(viewContext, &buf)
	e.mu.RUnlock()

	if err != nil {
		return "", fmt.Errorf("pongo: execute %s: %w", what, err)
	}
	return buf.String(), nil
}

func (e *Environment) stringTemplate(content string) (*pongo2.Template, error) {
	e.mu.RLock()
	if tmpl, ok := e.strings[content]; ok {
		e.mu.RUnlock()
		return tmpl, nil
	}
	e.mu.RUnlock()

	e.mu.Lock()
	defer e.mu.Unlock()

	if tmpl, ok := e.strings[content]; ok {
		return tmpl, nil
	}

	tmpl, err := e.set.FromString(content)
	if err != nil {
		return nil, fmt.Errorf("pongo: parse template string: %w", err)
	}

	e.strings[content] = tmpl
	return tmpl, nil
}

func (e *Environment) fileTemplate(name string) (*pongo2.Template, error) {
	e.mu.RLock()
	if tmpl, ok := e.files[name]; ok {
		e.mu.RUnlock()
		return tmpl, nil
	}
	e.mu.RUnlock()

	e.mu.Lock()
	defer e.mu.Unlock()

	if tmpl, ok := e.files[name]; ok {
		return tmpl, nil
	}

	tmpl, err := e.set.FromFile(name)
	if err != nil {
		return nil, fmt.Errorf("pongo: load template %q: %w", name, err)
	}

	e.files[name] = tmpl
	return tmpl, nil
}

var (
	sanitizePolicyOnce sync.Once
	sanitizePolicy     *bluemonday.Policy
)

func registerDefaultFilters() {
	if !pongo2.FilterExists("trim") {
		_ = pongo2.RegisterFilter("trim", filterTrim)
	}
	if !pongo2.FilterExists("sanitize") {
		_ = pongo2.RegisterFilter("sanitize", filterSanitize)
	}
}

func filterTrim(in *pongo2.Value, _ *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
	if in.Len() <= 0 {
		return pongo2.AsValue(""), nil
	}
	return pongo2.AsValue(strings.TrimSpace(in.String())), nil
}

// filterSanitize strips markup from untrusted values interpolated into a
// prompt, using bluemonday's strict policy.
func filterSanitize(in *pongo2.Value, _ *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
	if in.Len() <= 0 {
		return pongo2.AsValue(""), nil
	}
	sanitizePolicyOnce.Do(func() {
		sanitizePolicy = bluemonday.StrictPolicy()
	})
	return pongo2.AsValue(sanitizePolicy.Sanitize(in.String())), nil
}
