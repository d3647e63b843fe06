package template_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/goliatone/go-promptgen/pkg/render"
	"github.com/goliatone/go-promptgen/pkg/render/template"
)

// stringOnlyEngine evaluates inline templates but has no loader, so it
// cannot report a base directory.
type stringOnlyEngine struct{}

func (stringOnlyEngine) RenderString(content string, data map[string]any) (string, error) {
	return content, nil
}

func (stringOnlyEngine) RenderFile(name string, data map[string]any) (string, error) {
	return "", errors.New("no loader")
}

// dirEngine records the template name it was asked to load.
type dirEngine struct {
	base   string
	loaded *string
}

func (e dirEngine) RenderString(content string, data map[string]any) (string, error) {
	return content, nil
}

func (e dirEngine) RenderFile(name string, data map[string]any) (string, error) {
	*e.loaded = name
	return "loaded", nil
}

func (e dirEngine) BaseDir() (string, bool) { return e.base, true }

func TestNewFileIn_RejectsEngineWithoutBaseDir(t *testing.T) {
	_, err := template.NewFileIn(stringOnlyEngine{}, "/srv/app", "greeting.tpl")

	var capErr *template.EnvironmentCapabilityError
	if !errors.As(err, &capErr) {
		t.Fatalf("expected EnvironmentCapabilityError at definition time, got %v", err)
	}
}

func TestNewFileIn_ResolvesNameRelativeToBaseDir(t *testing.T) {
	var loaded string
	engine := dirEngine{base: filepath.FromSlash("/srv/templates"), loaded: &loaded}

	renderer, err := template.NewFileIn(engine, filepath.FromSlash("/srv/templates/prompts/team"), "greeting.tpl")
	if err != nil {
		t.Fatalf("new file renderer: %v", err)
	}
	if got := renderer.TemplateName(); got != "prompts/team/greeting.tpl" {
		t.Fatalf("expected loader-relative name, got %q", got)
	}

	out, err := renderer.Render(context.Background(), render.Vars{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if out != "loaded" || loaded != "prompts/team/greeting.tpl" {
		t.Fatalf("render should delegate to the engine with the resolved name, got out=%q loaded=%q", out, loaded)
	}
}

func TestNewFile_UsesCallingSourceLocation(t *testing.T) {
	var loaded string
	base := filepath.Dir(filepath.Dir(currentDir(t)))
	engine := dirEngine{base: base, loaded: &loaded}

	renderer, err := template.NewFile(engine, "greeting.tpl")
	if err != nil {
		t.Fatalf("new file renderer: %v", err)
	}
	if got := renderer.TemplateName(); got != "render/template/greeting.tpl" {
		t.Fatalf("expected name relative to this package under the base dir, got %q", got)
	}
}

func currentDir(t *testing.T) string {
	t.Helper()
	dir, err := filepath.Abs(".")
	if err != nil {
		t.Fatalf("abs: %v", err)
	}
	return dir
}

func TestNewExpr_RequiresEngine(t *testing.T) {
	if _, err := template.NewExpr(nil, "{{ a }}"); err == nil {
		t.Fatalf("expected error for nil engine")
	}
}

func TestExprRenderer_DelegatesToEngine(t *testing.T) {
	renderer, err := template.NewExpr(stringOnlyEngine{}, "pattern")
	if err != nil {
		t.Fatalf("new expr renderer: %v", err)
	}

	out, err := renderer.Render(context.Background(), render.Vars{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if out != "pattern" {
		t.Fatalf("expected engine passthrough, got %q", out)
	}
}

func TestFileStrategy_UsesSpecDir(t *testing.T) {
	var loaded string
	engine := dirEngine{base: filepath.FromSlash("/srv/templates"), loaded: &loaded}

	renderer, err := template.FileStrategy{Engine: engine}.New(render.TemplateSpec{
		Path: "greeting.tpl",
		Dir:  filepath.FromSlash("/srv/templates/manifests"),
	})
	if err != nil {
		t.Fatalf("strategy: %v", err)
	}
	fileRenderer, ok := renderer.(*template.FileRenderer)
	if !ok {
		t.Fatalf("expected *template.FileRenderer, got %T", renderer)
	}
	if got := fileRenderer.TemplateName(); got != "manifests/greeting.tpl" {
		t.Fatalf("expected manifest-relative name, got %q", got)
	}
}
