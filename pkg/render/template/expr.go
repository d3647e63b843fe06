package template

import (
	"context"
	"errors"
	"fmt"

	"github.com/goliatone/go-promptgen/pkg/render"
)

// ExprRenderer evaluates an inline expression template against the final
// variable mapping using the bound engine. Undefined-variable handling is
// delegated to the engine: attribute and filter access on a missing value
// fails the render, a bare missing name renders empty.
type ExprRenderer struct {
	engine  Engine
	pattern string
}

var _ render.Renderer = (*ExprRenderer)(nil)

// NewExpr binds an engine and a pattern into a renderer.
func NewExpr(engine Engine, pattern string) (*ExprRenderer, error) {
	if engine == nil {
		return nil, errors.New("template: engine is required")
	}
	return &ExprRenderer{engine: engine, pattern: pattern}, nil
}

// Name identifies the strategy.
func (r *ExprRenderer) Name() string { return "expression" }

// Render evaluates the pattern with the supplied variables.
func (r *ExprRenderer) Render(ctx context.Context, vars render.Vars) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	out, err := r.engine.RenderString(r.pattern, vars)
	if err != nil {
		return "", fmt.Errorf("template: evaluate expression template: %w", err)
	}
	return out, nil
}

// ExprStrategy registers expression templates under the "expression" kind.
type ExprStrategy struct {
	Engine Engine
}

// Name identifies the strategy kind.
func (ExprStrategy) Name() string { return "expression" }

// New builds a renderer from the spec's inline source.
func (s ExprStrategy) New(spec render.TemplateSpec) (render.Renderer, error) {
	return NewExpr(s.Engine, spec.Source)
}
