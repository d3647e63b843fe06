package component

import (
	"fmt"
)

// Values holds keyword construction arguments.
type Values map[string]any

// Instance binds concrete values to a definition's resolved schema. Mutable
// only during the pre-render hook window; Set fails outside it.
type Instance struct {
	def     *Definition
	values  map[string]any
	mutable bool
}

// New constructs an instance from keyword values. Omitted optional fields
// take their default (factories invoked per instance); missing required
// fields and unrecognized extras fail with *ConstructionError.
func (d *Definition) New(vals Values) (*Instance, error) {
	schema, err := d.Schema()
	if err != nil {
		return nil, err
	}

	bound := make(map[string]any, len(schema))
	known := make(map[string]FieldSpec, len(schema))
	for _, f := range schema {
		known[f.Name] = f
	}

	var unknown []string
	for name := range vals {
		if _, ok := known[name]; !ok {
			unknown = append(unknown, name)
		}
	}

	var missing []string
	for _, f := range schema {
		value, supplied := vals[f.Name]
		switch {
		case supplied:
			if err := checkClassRef(d, f, value); err != nil {
				return nil, err
			}
			bound[f.Name] = value
		case f.HasDefault():
			bound[f.Name] = f.defaultValue()
		default:
			missing = append(missing, f.Name)
		}
	}

	if len(missing) > 0 || len(unknown) > 0 {
		return nil, &ConstructionError{Class: d.name, Missing: missing, Unknown: unknown}
	}

	return &Instance{def: d, values: bound}, nil
}

// NewArgs constructs an instance from positional values bound in schema
// order. Keyword-only definitions reject positional construction.
func (d *Definition) NewArgs(args ...any) (*Instance, error) {
	if d.kwOnly && len(args) > 0 {
		return nil, &ConstructionError{
			Class:  d.name,
			Reason: "positional construction disabled (keyword-only definition)",
		}
	}
	schema, err := d.Schema()
	if err != nil {
		return nil, err
	}
	if len(args) > len(schema) {
		return nil, &ConstructionError{
			Class:  d.name,
			Reason: fmt.Sprintf("too many positional values: got %d, schema has %d fields", len(args), len(schema)),
		}
	}

	vals := make(Values, len(args))
	for i, arg := range args {
		vals[schema[i].Name] = arg
	}
	return d.New(vals)
}

// MustNew panics on construction failure.
func (d *Definition) MustNew(vals Values) *Instance {
	inst, err := d.New(vals)
	if err != nil {
		panic(err)
	}
	return inst
}

// MustNewArgs panics on construction failure.
func (d *Definition) MustNewArgs(args ...any) *Instance {
	inst, err := d.NewArgs(args...)
	if err != nil {
		panic(err)
	}
	return inst
}

// checkClassRef validates that a class-reference value is the target
// definition or one of its descendants.
func checkClassRef(owner *Definition, f FieldSpec, value any) error {
	if f.Type != TypeClassRef || value == nil {
		return nil
	}
	ref, ok := value.(*Definition)
	if !ok {
		return &ConstructionError{
			Class:  owner.name,
			Reason: fmt.Sprintf("field %q expects a class reference, got %T", f.Name, value),
		}
	}
	if f.Target != nil && !ref.IsDescendantOf(f.Target) {
		return &ConstructionError{
			Class:  owner.name,
			Reason: fmt.Sprintf("field %q expects a reference to %q or a descendant, got %q", f.Name, f.Target.name, ref.name),
		}
	}
	return nil
}

// Definition returns the instance's component class.
func (i *Instance) Definition() *Definition { return i.def }

// Get returns the current value of a field.
func (i *Instance) Get(name string) (any, bool) {
	value, ok := i.values[name]
	return value, ok
}

// Set mutates a field value. Allowed only during the pre-render hook window;
// instances are immutable otherwise.
func (i *Instance) Set(name string, value any) error {
	if !i.mutable {
		return fmt.Errorf("component: instance of %q is immutable outside the pre-render hook", i.def.name)
	}
	if _, ok := i.values[name]; !ok {
		return fmt.Errorf("component: instance of %q has no field %q", i.def.name, name)
	}
	i.values[name] = value
	return nil
}
