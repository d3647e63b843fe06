// Package openapi derives component field schemas from OpenAPI object
// schemas, so prompt components can mirror an API's request shapes without
// redeclaring every field by hand.
package openapi

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-promptgen/pkg/component"
)

// SchemaFields converts an object schema's properties into FieldSpecs.
// Fields listed in `required` come first, in declaration order; remaining
// properties follow sorted by name (the OpenAPI property map carries no
// order). Properties with a `default` become optional fields carrying it.
func SchemaFields(schema *openapi3.Schema) ([]component.FieldSpec, error) {
	if schema == nil {
		return nil, errors.New("openapi: schema is required")
	}
	if len(schema.Properties) == 0 {
		return nil, fmt.Errorf("openapi: schema declares no properties")
	}

	required := make(map[string]struct{}, len(schema.Required))
	for _, name := range schema.Required {
		required[name] = struct{}{}
	}

	var fields []component.FieldSpec
	seen := make(map[string]struct{}, len(schema.Properties))

	appendField := func(name string) {
		ref := schema.Properties[name]
		if ref == nil || ref.Value == nil {
			return
		}
		if _, done := seen[name]; done {
			return
		}
		seen[name] = struct{}{}

		ftype := fieldType(ref.Value.Type)
		_, isRequired := required[name]
		switch {
		case ref.Value.Default != nil:
			fields = append(fields, component.OptField(name, ftype, ref.Value.Default))
		case isRequired:
			fields = append(fields, component.Field(name, ftype))
		default:
			fields = append(fields, component.OptField(name, ftype, nil))
		}
	}

	for _, name := range schema.Required {
		if _, ok := schema.Properties[name]; ok {
			appendField(name)
		}
	}

	optional := make([]string, 0, len(schema.Properties))
	for name := range schema.Properties {
		if _, done := seen[name]; !done {
			optional = append(optional, name)
		}
	}
	sort.Strings(optional)
	for _, name := range optional {
		appendField(name)
	}

	if len(fields) == 0 {
		return nil, fmt.Errorf("openapi: no usable properties in schema")
	}
	return fields, nil
}

// LoadSchemaFields parses an OpenAPI document from raw bytes and converts the
// named component schema.
func LoadSchemaFields(ctx context.Context, raw []byte, schemaName string) ([]component.FieldSpec, error) {
	if len(raw) == 0 {
		return nil, errors.New("openapi: document payload is empty")
	}

	loader := &openapi3.Loader{Context: ctx}
	spec, err := loader.LoadFromData(raw)
	if err != nil {
		return nil, fmt.Errorf("openapi: load document: %w", err)
	}
	if spec.Components == nil {
		return nil, fmt.Errorf("openapi: document has no components section")
	}
	ref, ok := spec.Components.Schemas[schemaName]
	if !ok || ref == nil || ref.Value == nil {
		return nil, fmt.Errorf("openapi: schema %q not found", schemaName)
	}
	return SchemaFields(ref.Value)
}

func fieldType(types *openapi3.Types) component.FieldType {
	if types == nil {
		return component.TypeAny
	}
	values := types.Slice()
	if len(values) != 1 {
		return component.TypeAny
	}
	switch values[0] {
	case "string":
		return component.TypeString
	case "integer":
		return component.TypeInt
	case "number":
		return component.TypeFloat
	case "boolean":
		return component.TypeBool
	case "array":
		return component.TypeList
	case "object":
		return component.TypeMap
	default:
		return component.TypeAny
	}
}
