package component

import (
	"context"
	"fmt"

	"github.com/goliatone/go-promptgen/pkg/render"
)

// Component is the single capability every component variant exposes:
// produce text. Instances implement it; anything render-capable participates
// in recursive substitution.
type Component interface {
	Render(ctx context.Context) (string, error)
}

// PreHook runs before variable collection and may mutate the instance's
// fields in place. Its return value is the only channel for aborting the
// render; any mutation side effects are otherwise ignored.
type PreHook func(*Instance) error

// PostHook receives the fully substituted variable mapping and returns the
// mapping used for the final render. Hooks may add, rename or delete
// entries.
type PostHook func(render.Vars) (render.Vars, error)

// Definition is a component class: an ordered field schema, an optional
// parent (single-chain inheritance), an optional bound template renderer and
// optional render hooks. Definitions are resolved once by Define and cached
// process-wide; see Declare for intermediates that skip resolution.
type Definition struct {
	name     string
	parent   *Definition
	own      []FieldSpec
	template render.Renderer
	preHook  PreHook
	postHook PostHook
	kwOnly   bool
	resolved bool
}

// Option customises a definition before resolution.
type Option func(*Definition)

// WithParent sets the parent definition in the inheritance chain.
func WithParent(parent *Definition) Option {
	return func(d *Definition) {
		d.parent = parent
	}
}

// WithFields appends the definition's own field declarations.
func WithFields(fields ...FieldSpec) Option {
	return func(d *Definition) {
		d.own = append(d.own, fields...)
	}
}

// WithTemplate binds a template renderer. Children without their own
// template inherit the nearest ancestor's.
func WithTemplate(renderer render.Renderer) Option {
	return func(d *Definition) {
		d.template = renderer
	}
}

// WithPreRender attaches the pre-render hook. Inherited by descendants until
// overridden.
func WithPreRender(hook PreHook) Option {
	return func(d *Definition) {
		d.preHook = hook
	}
}

// WithPostRender attaches the post-render hook. Inherited by descendants
// until overridden.
func WithPostRender(hook PostHook) Option {
	return func(d *Definition) {
		d.postHook = hook
	}
}

// WithKeywordOnly forbids positional construction for this definition.
func WithKeywordOnly() Option {
	return func(d *Definition) {
		d.kwOnly = true
	}
}

// Declare creates a definition without resolving it. Declared-only
// definitions can sit in an inheritance chain; the resolver folds their
// fields into the first descendant that does go through Define.
func Declare(name string, options ...Option) *Definition {
	d := &Definition{name: name}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(d)
	}
	return d
}

// Define declares a component class and resolves its schema immediately.
// Consistency and swappable checks run here, at definition time; failures
// abort the definition and nothing is cached.
func Define(name string, options ...Option) (*Definition, error) {
	d := Declare(name, options...)
	if err := d.Resolve(); err != nil {
		return nil, err
	}
	return d, nil
}

// MustDefine panics on definition failure. Useful for package-level wiring.
func MustDefine(name string, options ...Option) *Definition {
	d, err := Define(name, options...)
	if err != nil {
		panic(err)
	}
	return d
}

// DefineSwappable defines a class and registers it as a legal
// class-reference target, covering all present and future descendants.
func DefineSwappable(name string, options ...Option) (*Definition, error) {
	d, err := Define(name, options...)
	if err != nil {
		return nil, err
	}
	RegisterSwappable(d)
	return d, nil
}

// MustDefineSwappable panics on definition failure.
func MustDefineSwappable(name string, options ...Option) *Definition {
	d, err := DefineSwappable(name, options...)
	if err != nil {
		panic(err)
	}
	return d
}

// Resolve validates the definition and caches its schema. Safe to call more
// than once; resolution is performed a single time.
func (d *Definition) Resolve() error {
	if d.resolved {
		return nil
	}
	if _, err := resolveSchema(d); err != nil {
		return err
	}
	d.resolved = true
	return nil
}

// Resolved reports whether the schema has been resolved and cached.
func (d *Definition) Resolved() bool {
	return d != nil && d.resolved
}

// Name returns the definition's name.
func (d *Definition) Name() string { return d.name }

// Parent returns the parent definition, or nil for root definitions.
func (d *Definition) Parent() *Definition { return d.parent }

// KeywordOnly reports whether positional construction is forbidden.
func (d *Definition) KeywordOnly() bool { return d.kwOnly }

// Schema returns a copy of the resolved field sequence.
func (d *Definition) Schema() ([]FieldSpec, error) {
	fields, ok := schemas.lookup(d)
	if !ok {
		return nil, fmt.Errorf("component: definition %q is not resolved; call Define or Resolve first", d.name)
	}
	out := make([]FieldSpec, len(fields))
	copy(out, fields)
	return out, nil
}

// IsDescendantOf reports whether d is other or inherits from it.
func (d *Definition) IsDescendantOf(other *Definition) bool {
	for c := d; c != nil; c = c.parent {
		if c == other {
			return true
		}
	}
	return false
}

// templateRenderer resolves the bound template by nearest-ancestor override.
func (d *Definition) templateRenderer() render.Renderer {
	for c := d; c != nil; c = c.parent {
		if c.template != nil {
			return c.template
		}
	}
	return nil
}

// preRenderHook resolves the pre-render hook by nearest-ancestor override.
func (d *Definition) preRenderHook() PreHook {
	for c := d; c != nil; c = c.parent {
		if c.preHook != nil {
			return c.preHook
		}
	}
	return nil
}

// postRenderHook resolves the post-render hook by nearest-ancestor override.
func (d *Definition) postRenderHook() PostHook {
	for c := d; c != nil; c = c.parent {
		if c.postHook != nil {
			return c.postHook
		}
	}
	return nil
}
