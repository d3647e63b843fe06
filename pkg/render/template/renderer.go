// Package template hosts the expression-engine seam and the renderer
// strategies built on top of it. The engine itself is an external
// collaborator (see the pongo subpackage); this package only defines the
// contract the pipeline relies on.
package template

import "fmt"

// Engine is the expression-compilation capability the expression and file
// renderers delegate to. Implementations compile and evaluate a small
// expression language (attribute access, filters) against the variable
// mapping.
type Engine interface {
	RenderString(content string, data map[string]any) (string, error)
	RenderFile(name string, data map[string]any) (string, error)
}

// BaseDirProvider reports the base search directory file templates resolve
// against. Engines without a filesystem loader return ok=false; file-based
// definitions reject such engines at definition time, not at render time.
type BaseDirProvider interface {
	BaseDir() (dir string, ok bool)
}

// EnvironmentCapabilityError signals that an engine lacks the base-directory
// capability a file-based template requires.
type EnvironmentCapabilityError struct {
	Engine string
}

func (e *EnvironmentCapabilityError) Error() string {
	return fmt.Sprintf("template: engine %s does not expose a base directory; file templates need a filesystem-backed loader", e.Engine)
}
