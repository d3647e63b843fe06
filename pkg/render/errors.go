package render

import "fmt"

// UndefinedVariableError is returned when a template references a variable
// absent from the final mapping. Raised during engine render; the pipeline
// never returns partial output alongside it.
type UndefinedVariableError struct {
	Variable string
	Renderer string
}

func (e *UndefinedVariableError) Error() string {
	return fmt.Sprintf("render: %s template references undefined variable %q", e.Renderer, e.Variable)
}
