package promptgen

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/goliatone/go-promptgen/pkg/component"
	"github.com/goliatone/go-promptgen/pkg/render"
	"github.com/goliatone/go-promptgen/pkg/render/plain"
	"github.com/goliatone/go-promptgen/pkg/render/template"
)

// Option customises the orchestrator configuration.
type Option func(*Orchestrator)

// WithLogger injects a structured logger. The default discards output.
func WithLogger(logger *log.Logger) Option {
	return func(o *Orchestrator) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithStrategies injects a renderer strategy registry. The default registry
// carries the plain strategy; WithEngine adds expression and file.
func WithStrategies(registry *render.Registry) Option {
	return func(o *Orchestrator) {
		if registry != nil {
			o.strategies = registry
			o.strategiesInjected = true
		}
	}
}

// WithEngine supplies the expression engine backing the "expression" and
// "file" template kinds for declarative definitions.
func WithEngine(engine template.Engine) Option {
	return func(o *Orchestrator) {
		o.engine = engine
	}
}

// Orchestrator holds named component definitions, resolves declarative
// manifests through the strategy registry, and renders components by name.
// It applies sensible defaults (plain strategy, discard logger) while
// remaining open to dependency injection.
type Orchestrator struct {
	mu                 sync.RWMutex
	defs               map[string]*component.Definition
	strategies         *render.Registry
	strategiesInjected bool
	engine             template.Engine
	logger             *log.Logger
}

// New constructs an Orchestrator applying any provided options.
func New(options ...Option) *Orchestrator {
	o := &Orchestrator{
		defs: make(map[string]*component.Definition),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(o)
	}
	o.applyDefaults()
	return o
}

func (o *Orchestrator) applyDefaults() {
	if o.logger == nil {
		o.logger = log.New(io.Discard)
	}
	if o.strategies == nil {
		o.strategies = render.NewRegistry()
	}
	if o.strategiesInjected {
		return
	}
	o.strategies.MustRegister(plain.Strategy{})
	if o.engine != nil {
		o.strategies.MustRegister(template.ExprStrategy{Engine: o.engine})
		o.strategies.MustRegister(template.FileStrategy{Engine: o.engine})
	}
}

// Strategies exposes the strategy registry for runtime additions.
func (o *Orchestrator) Strategies() *render.Registry {
	return o.strategies
}

// Register adds a definition under its name. Duplicate names return an
// error.
func (o *Orchestrator) Register(def *component.Definition) error {
	if def == nil {
		return fmt.Errorf("promptgen: definition is required")
	}
	if !def.Resolved() {
		return fmt.Errorf("promptgen: definition %q is not resolved", def.Name())
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	if _, exists := o.defs[def.Name()]; exists {
		return fmt.Errorf("promptgen: definition %q already registered", def.Name())
	}
	o.defs[def.Name()] = def
	o.logger.Debug("registered component", "component", def.Name())
	return nil
}

// Definition retrieves a registered definition by name.
func (o *Orchestrator) Definition(name string) (*component.Definition, bool) {
	o.mu.RLock()
	defer o.mu.RUnlock()
	def, ok := o.defs[name]
	return def, ok
}

// Render constructs an instance of the named component from keyword values
// and runs the full render pipeline.
func (o *Orchestrator) Render(ctx context.Context, name string, vals component.Values) (string, error) {
	def, ok := o.Definition(name)
	if !ok {
		return "", fmt.Errorf("promptgen: component %q not registered", name)
	}

	o.logger.Debug("render component", "component", name, "fields", len(vals))

	inst, err := def.New(vals)
	if err != nil {
		return "", err
	}
	out, err := inst.Render(ctx)
	if err != nil {
		o.logger.Debug("render failed", "component", name, "err", err)
		return "", err
	}
	return out, nil
}
