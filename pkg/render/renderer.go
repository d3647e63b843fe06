package render

import "context"

// Vars is the final variable mapping a pipeline hands to a renderer. Values
// have already been substituted: nested components are rendered text,
// containers are their canonical text form, scalars keep their native type.
type Vars map[string]any

// Renderer produces text from a variable mapping. Each renderer instance is
// bound to its template at construction time; interchangeable strategies
// (plain substitution, expression, file-based) implement this contract.
type Renderer interface {
	Name() string
	Render(ctx context.Context, vars Vars) (string, error)
}

// TemplateSpec carries the raw template declaration a Strategy turns into a
// bound Renderer. Source holds inline pattern text, Path a template file path
// and Dir the directory paths resolve against (manifest location, usually).
type TemplateSpec struct {
	Source string
	Path   string
	Dir    string
}

// Strategy constructs renderers for one template kind. Strategies register
// under their kind name so declarative definitions can resolve them.
type Strategy interface {
	Name() string
	New(spec TemplateSpec) (Renderer, error)
}
