// Package promptgen defines small, composable prompt components: typed field
// schemas with inheritance-consistent subclassing, swappable substitution
// points and a render pipeline with pluggable text-production strategies.
//
// The root package re-exports the common vocabulary and hosts the
// orchestrator plus the YAML manifest loader; the engine itself lives in
// pkg/component and pkg/render.
package promptgen

import (
	"github.com/goliatone/go-promptgen/pkg/component"
	"github.com/goliatone/go-promptgen/pkg/render"
)

// Component is the render capability every component variant exposes.
type Component = component.Component

// Definition is a component class with a resolved field schema.
type Definition = component.Definition

// Instance binds concrete values to a definition's schema.
type Instance = component.Instance

// FieldSpec declares one field of a component schema.
type FieldSpec = component.FieldSpec

// Values holds keyword construction arguments.
type Values = component.Values

// Tuple is the fixed-size ordered container.
type Tuple = component.Tuple

// Vars is the final variable mapping handed to renderers.
type Vars = render.Vars

// Define declares a component class and resolves its schema at definition
// time.
func Define(name string, options ...component.Option) (*Definition, error) {
	return component.Define(name, options...)
}

// MustDefine panics on definition failure. Useful for package-level wiring.
func MustDefine(name string, options ...component.Option) *Definition {
	return component.MustDefine(name, options...)
}

// DefineSwappable defines a class and registers it as a legal
// class-reference target.
func DefineSwappable(name string, options ...component.Option) (*Definition, error) {
	return component.DefineSwappable(name, options...)
}

// RegisterSwappable marks an existing definition (and its descendants) as a
// legal class-reference target.
func RegisterSwappable(def *Definition) {
	component.RegisterSwappable(def)
}
