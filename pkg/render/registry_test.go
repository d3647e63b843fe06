package render_test

import (
	"context"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-promptgen/pkg/render"
)

type staticStrategy struct {
	name string
}

func (s staticStrategy) Name() string { return s.name }

func (s staticStrategy) New(render.TemplateSpec) (render.Renderer, error) {
	return staticRenderer{name: s.name}, nil
}

type staticRenderer struct {
	name string
}

func (r staticRenderer) Name() string { return r.name }

func (r staticRenderer) Render(context.Context, render.Vars) (string, error) {
	return r.name, nil
}

func TestRegistry_RegisterAndResolve(t *testing.T) {
	reg := render.NewRegistry()
	reg.MustRegister(staticStrategy{name: "plain"})
	reg.MustRegister(staticStrategy{name: "expression"})

	if !reg.Has("plain") {
		t.Fatalf("expected plain strategy to be registered")
	}

	strategy, err := reg.Get("expression")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if strategy.Name() != "expression" {
		t.Fatalf("unexpected strategy %q", strategy.Name())
	}

	if diff := cmp.Diff([]string{"expression", "plain"}, reg.List()); diff != "" {
		t.Fatalf("list mismatch (-want +got):\n%s", diff)
	}
}

func TestRegistry_DuplicateRegistrationFails(t *testing.T) {
	reg := render.NewRegistry()
	reg.MustRegister(staticStrategy{name: "plain"})

	err := reg.Register(staticStrategy{name: "plain"})
	if err == nil || !strings.Contains(err.Error(), "already registered") {
		t.Fatalf("expected duplicate registration error, got %v", err)
	}
}

func TestRegistry_MissingStrategyFails(t *testing.T) {
	reg := render.NewRegistry()

	if _, err := reg.Get("nope"); err == nil {
		t.Fatalf("expected missing strategy error")
	}
}
