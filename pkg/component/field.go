package component

// FieldType is the declared semantic type of a field. Types guide
// construction helpers and interactive fillers; binding stays permissive for
// scalar kinds, matching the engine's duck-typed origins.
type FieldType int

const (
	TypeAny FieldType = iota
	TypeString
	TypeInt
	TypeFloat
	TypeBool
	TypeList
	TypeMap
	TypeTuple
	// TypeComponent holds a component instance, rendered recursively during
	// substitution.
	TypeComponent
	// TypeClassRef holds a reference to a component definition rather than an
	// instance. Targets must be registered swappable; checked at definition
	// time.
	TypeClassRef
)

// String returns the manifest spelling of the type.
func (t FieldType) String() string {
	switch t {
	case TypeString:
		return "string"
	case TypeInt:
		return "integer"
	case TypeFloat:
		return "number"
	case TypeBool:
		return "boolean"
	case TypeList:
		return "list"
	case TypeMap:
		return "map"
	case TypeTuple:
		return "tuple"
	case TypeComponent:
		return "component"
	case TypeClassRef:
		return "class"
	default:
		return "any"
	}
}

// FieldSpec declares one field of a component schema: its name, semantic
// type, whether it is required, and its default value or default-producing
// factory. A child definition may redeclare an inherited field to change its
// default (and, permissively, its type); fields introduced below the root
// must carry a default.
type FieldSpec struct {
	Name     string
	Type     FieldType
	Required bool
	Default  any
	Factory  func() any
	// Target is the referenced definition for TypeClassRef fields.
	Target *Definition
}

// HasDefault reports whether the field carries a default value or factory.
// Required fields never do; that distinction drives the consistency check.
func (f FieldSpec) HasDefault() bool {
	return !f.Required
}

// defaultValue produces the field's default, invoking the factory per call so
// each instance gets a fresh value.
func (f FieldSpec) defaultValue() any {
	if f.Factory != nil {
		return f.Factory()
	}
	return f.Default
}

// Field declares a required field.
func Field(name string, ftype FieldType) FieldSpec {
	return FieldSpec{Name: name, Type: ftype, Required: true}
}

// OptField declares an optional field with a default value.
func OptField(name string, ftype FieldType, def any) FieldSpec {
	return FieldSpec{Name: name, Type: ftype, Default: def}
}

// FactoryField declares an optional field whose default is produced per
// instance.
func FactoryField(name string, ftype FieldType, factory func() any) FieldSpec {
	return FieldSpec{Name: name, Type: ftype, Factory: factory}
}

// ClassField declares a required class-reference field targeting def. The
// target (or an ancestor) must be registered swappable.
func ClassField(name string, target *Definition) FieldSpec {
	return FieldSpec{Name: name, Type: TypeClassRef, Required: true, Target: target}
}

// ClassFieldDefault declares a class-reference field defaulting to def.
func ClassFieldDefault(name string, target, def *Definition) FieldSpec {
	return FieldSpec{Name: name, Type: TypeClassRef, Target: target, Default: def}
}
