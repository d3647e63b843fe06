package component

import (
	"fmt"
	"strings"
)

// SchemaConsistencyError is raised at definition time when a child introduces
// required fields absent from its parent. Child components must stay
// consistent with the parent's fields so substitution points remain
// composable.
type SchemaConsistencyError struct {
	Class  string
	Parent string
	Fields []string
}

func (e *SchemaConsistencyError) Error() string {
	return fmt.Sprintf(
		"component: extra required fields not allowed in %q when subclassing %q: %s. Child components must stay consistent with the parent's fields to keep a composable interface",
		e.Class, e.Parent, strings.Join(e.Fields, ", "),
	)
}

// SwappableTypeError is raised at definition time when a class-reference
// field targets a definition outside the swappable registry's transitive
// membership.
type SwappableTypeError struct {
	Class  string
	Field  string
	Target string
}

func (e *SwappableTypeError) Error() string {
	return fmt.Sprintf(
		"component: in %q, field %q references class %q which is not swappable; register the class (or any parent) with RegisterSwappable",
		e.Class, e.Field, e.Target,
	)
}

// ConstructionError is raised when instance construction fails: missing
// required fields, unrecognized extras, or positional construction on a
// keyword-only definition.
type ConstructionError struct {
	Class   string
	Missing []string
	Unknown []string
	Reason  string
}

func (e *ConstructionError) Error() string {
	var parts []string
	if len(e.Missing) > 0 {
		parts = append(parts, fmt.Sprintf("missing required fields: %s", strings.Join(e.Missing, ", ")))
	}
	if len(e.Unknown) > 0 {
		parts = append(parts, fmt.Sprintf("unknown fields: %s", strings.Join(e.Unknown, ", ")))
	}
	if e.Reason != "" {
		parts = append(parts, e.Reason)
	}
	if len(parts) == 0 {
		parts = append(parts, "invalid arguments")
	}
	return fmt.Sprintf("component: construct %q: %s", e.Class, strings.Join(parts, "; "))
}
