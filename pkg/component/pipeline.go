package component

import (
	"context"
	"fmt"

	"github.com/goliatone/go-promptgen/pkg/render"
)

// renderState enumerates the pipeline's per-call state machine. Every render
// walks INIT → PRE_HOOK → COLLECT_VARS → SUBSTITUTE → POST_HOOK →
// ENGINE_RENDER → DONE synchronously; a failing step aborts the call and no
// partial text is ever returned.
type renderState uint8

const (
	stateInit renderState = iota
	statePreHook
	stateCollectVars
	stateSubstitute
	statePostHook
	stateEngineRender
	stateDone
)

// Render runs the full pipeline for the instance, delegating the final text
// production to the nearest-ancestor template renderer.
func (i *Instance) Render(ctx context.Context) (string, error) {
	renderer := i.def.templateRenderer()
	if renderer == nil {
		return "", fmt.Errorf("component: definition %q has no template bound", i.def.name)
	}

	var (
		vars  render.Vars
		out   string
		state = stateInit
	)

	for state != stateDone {
		switch state {
		case stateInit:
			if err := ctx.Err(); err != nil {
				return "", err
			}
			state = statePreHook

		case statePreHook:
			if hook := i.def.preRenderHook(); hook != nil {
				i.mutable = true
				err := hook(i)
				i.mutable = false
				if err != nil {
					return "", fmt.Errorf("component: pre-render hook for %q: %w", i.def.name, err)
				}
			}
			state = stateCollectVars

		case stateCollectVars:
			vars = make(render.Vars, len(i.values))
			for name, value := range i.values {
				vars[name] = value
			}
			state = stateSubstitute

		case stateSubstitute:
			for name, value := range vars {
				substituted, err := substitute(ctx, value)
				if err != nil {
					return "", fmt.Errorf("component: substitute field %q of %q: %w", name, i.def.name, err)
				}
				vars[name] = substituted
			}
			state = statePostHook

		case statePostHook:
			if hook := i.def.postRenderHook(); hook != nil {
				next, err := hook(vars)
				if err != nil {
					return "", fmt.Errorf("component: post-render hook for %q: %w", i.def.name, err)
				}
				vars = next
			}
			state = stateEngineRender

		case stateEngineRender:
			rendered, err := renderer.Render(ctx, vars)
			if err != nil {
				return "", err
			}
			out = rendered
			state = stateDone
		}
	}

	return out, nil
}
