package template

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"runtime"

	"github.com/goliatone/go-promptgen/pkg/render"
)

// FileRenderer resolves template text through the engine's loader. The
// template name is computed once, at construction time, from the engine's
// base directory and the directory the definition lives in.
type FileRenderer struct {
	engine Engine
	name   string
}

var _ render.Renderer = (*FileRenderer)(nil)

// NewFile binds a file template whose path is relative to the calling source
// file. The engine must expose a base directory; engines without one are
// rejected here, at definition time.
func NewFile(engine Engine, relPath string) (*FileRenderer, error) {
	_, callerFile, _, ok := runtime.Caller(1)
	if !ok {
		return nil, errors.New("template: cannot determine calling source location")
	}
	return NewFileIn(engine, filepath.Dir(callerFile), relPath)
}

// NewFileIn binds a file template whose path is relative to dir. Declarative
// definitions use this with the manifest's directory.
func NewFileIn(engine Engine, dir, relPath string) (*FileRenderer, error) {
	if engine == nil {
		return nil, errors.New("template: engine is required")
	}
	provider, ok := engine.(BaseDirProvider)
	if !ok {
		return nil, &EnvironmentCapabilityError{Engine: fmt.Sprintf("%T", engine)}
	}
	base, ok := provider.BaseDir()
	if !ok {
		return nil, &EnvironmentCapabilityError{Engine: fmt.Sprintf("%T", engine)}
	}

	rel, err := filepath.Rel(base, dir)
	if err != nil {
		return nil, fmt.Errorf("template: resolve %q against base %q: %w", dir, base, err)
	}
	name := filepath.ToSlash(filepath.Join(rel, relPath))

	return &FileRenderer{engine: engine, name: name}, nil
}

// Name identifies the strategy.
func (r *FileRenderer) Name() string { return "file" }

// TemplateName returns the loader-relative template name resolved at
// construction time.
func (r *FileRenderer) TemplateName() string { return r.name }

// Render loads and evaluates the template with the supplied variables.
func (r *FileRenderer) Render(ctx context.Context, vars render.Vars) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	out, err := r.engine.RenderFile(r.name, vars)
	if err != nil {
		return "", fmt.Errorf("template: render file template %q: %w", r.name, err)
	}
	return out, nil
}

// FileStrategy registers file templates under the "file" kind. Dir is the
// fallback resolution directory when the spec does not carry one.
type FileStrategy struct {
	Engine Engine
	Dir    string
}

// Name identifies the strategy kind.
func (FileStrategy) Name() string { return "file" }

// New builds a renderer from the spec's path, resolved against the spec's
// directory.
func (s FileStrategy) New(spec render.TemplateSpec) (render.Renderer, error) {
	dir := spec.Dir
	if dir == "" {
		dir = s.Dir
	}
	return NewFileIn(s.Engine, dir, spec.Path)
}
