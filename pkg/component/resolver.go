package component

import "sync"

// schemaRegistry caches resolved FieldSpec sequences for the lifetime of the
// process, keyed by definition identity. Resolution happens once, at
// definition time; cached schemas are read-only thereafter and safe to share.
type schemaRegistry struct {
	mu       sync.RWMutex
	resolved map[*Definition][]FieldSpec
}

var schemas = &schemaRegistry{resolved: make(map[*Definition][]FieldSpec)}

func (r *schemaRegistry) lookup(def *Definition) ([]FieldSpec, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	fields, ok := r.resolved[def]
	return fields, ok
}

func (r *schemaRegistry) store(def *Definition, fields []FieldSpec) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.resolved[def] = fields
}

// resolveSchema merges def's own declarations over its nearest resolved
// ancestor's schema. The walk skips intermediate declarations that never went
// through Define; their fields count as def's own declarations and are held
// to the same consistency rules.
func resolveSchema(def *Definition) ([]FieldSpec, error) {
	if fields, ok := schemas.lookup(def); ok {
		return fields, nil
	}

	var (
		parentSchema []FieldSpec
		parentName   string
		skipped      []*Definition
	)
	for p := def.parent; p != nil; p = p.parent {
		if fields, ok := schemas.lookup(p); ok {
			parentSchema = fields
			parentName = p.name
			break
		}
		skipped = append(skipped, p)
	}

	// Oldest skipped ancestor first, then def's own declarations.
	var own []FieldSpec
	for i := len(skipped) - 1; i >= 0; i-- {
		own = append(own, skipped[i].own...)
	}
	own = append(own, def.own...)

	merged, err := mergeSchema(def, parentName, parentSchema, own)
	if err != nil {
		return nil, err
	}

	schemas.store(def, merged)
	return merged, nil
}

// mergeSchema computes resolved(child) = resolved(parent) ∪ own(child).
// Parent field order is preserved; a redeclared field keeps its position and
// takes the child's spec; new fields append in declaration order. Any new
// required field below the root fails the merge. Class-reference targets are
// checked against the swappable registry for every field the child declares.
func mergeSchema(def *Definition, parentName string, parent, own []FieldSpec) ([]FieldSpec, error) {
	merged := make([]FieldSpec, len(parent))
	copy(merged, parent)

	index := make(map[string]int, len(merged))
	for i, f := range merged {
		index[f.Name] = i
	}

	var offending []string
	for _, f := range own {
		if i, exists := index[f.Name]; exists {
			// Redeclaration: default (and, permissively, type) may change.
			merged[i] = f
			continue
		}
		if parentName != "" && !f.HasDefault() {
			offending = append(offending, f.Name)
			continue
		}
		index[f.Name] = len(merged)
		merged = append(merged, f)
	}

	if len(offending) > 0 {
		return nil, &SchemaConsistencyError{
			Class:  def.name,
			Parent: parentName,
			Fields: offending,
		}
	}

	for _, f := range own {
		if f.Type != TypeClassRef {
			continue
		}
		if !IsSwappable(f.Target) {
			target := "<nil>"
			if f.Target != nil {
				target = f.Target.name
			}
			return nil, &SwappableTypeError{
				Class:  def.name,
				Field:  f.Name,
				Target: target,
			}
		}
	}

	return merged, nil
}
