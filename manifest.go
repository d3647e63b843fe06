package promptgen

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-promptgen/pkg/component"
	"github.com/goliatone/go-promptgen/pkg/render"
)

// Manifest is the declarative form of a set of component definitions.
// Components resolve top to bottom, so parents must precede children.
type Manifest struct {
	Components []ManifestComponent `yaml:"components"`
}

// ManifestComponent declares one component definition.
type ManifestComponent struct {
	Name        string            `yaml:"name"`
	Extends     string            `yaml:"extends"`
	Swappable   bool              `yaml:"swappable"`
	KeywordOnly bool              `yaml:"keyword_only"`
	Template    *ManifestTemplate `yaml:"template"`
	Fields      []ManifestField   `yaml:"fields"`
}

// ManifestTemplate declares the template binding: the strategy kind plus
// inline source or file path.
type ManifestTemplate struct {
	Kind   string `yaml:"kind"`
	Source string `yaml:"source"`
	Path   string `yaml:"path"`
}

// ManifestField declares one field. Fields with `required: true` carry no
// default; everything else defaults to the given value (or the type's zero
// value when omitted).
type ManifestField struct {
	Name     string `yaml:"name"`
	Type     string `yaml:"type"`
	Required bool   `yaml:"required"`
	Default  any    `yaml:"default"`
}

// LoadManifest reads a YAML manifest from disk and registers every
// definition it declares. Template paths resolve relative to the manifest's
// directory.
func (o *Orchestrator) LoadManifest(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("promptgen: read manifest %q: %w", path, err)
	}
	return o.LoadManifestData(data, filepath.Dir(path))
}

// LoadManifestData registers every definition a YAML manifest declares.
// baseDir anchors file-template paths.
func (o *Orchestrator) LoadManifestData(data []byte, baseDir string) error {
	var manifest Manifest
	if err := yaml.Unmarshal(data, &manifest); err != nil {
		return fmt.Errorf("promptgen: parse manifest: %w", err)
	}
	if len(manifest.Components) == 0 {
		return fmt.Errorf("promptgen: manifest declares no components")
	}

	for _, spec := range manifest.Components {
		def, err := o.buildDefinition(spec, baseDir)
		if err != nil {
			return err
		}
		if err := o.Register(def); err != nil {
			return err
		}
	}
	return nil
}

func (o *Orchestrator) buildDefinition(spec ManifestComponent, baseDir string) (*component.Definition, error) {
	if spec.Name == "" {
		return nil, fmt.Errorf("promptgen: manifest component without a name")
	}

	var options []component.Option

	if spec.Extends != "" {
		parent, ok := o.Definition(spec.Extends)
		if !ok {
			return nil, fmt.Errorf("promptgen: component %q extends unknown component %q", spec.Name, spec.Extends)
		}
		options = append(options, component.WithParent(parent))
	}

	fields := make([]component.FieldSpec, 0, len(spec.Fields))
	for _, mf := range spec.Fields {
		field, err := manifestField(spec.Name, mf)
		if err != nil {
			return nil, err
		}
		fields = append(fields, field)
	}
	if len(fields) > 0 {
		options = append(options, component.WithFields(fields...))
	}

	if spec.Template != nil {
		renderer, err := o.buildRenderer(spec.Name, spec.Template, baseDir)
		if err != nil {
			return nil, err
		}
		options = append(options, component.WithTemplate(renderer))
	}

	if spec.KeywordOnly {
		options = append(options, component.WithKeywordOnly())
	}

	def, err := component.Define(spec.Name, options...)
	if err != nil {
		return nil, err
	}
	if spec.Swappable {
		component.RegisterSwappable(def)
	}
	return def, nil
}

func (o *Orchestrator) buildRenderer(name string, mt *ManifestTemplate, baseDir string) (render.Renderer, error) {
	kind := mt.Kind
	if kind == "" {
		kind = "plain"
	}
	strategy, err := o.strategies.Get(kind)
	if err != nil {
		return nil, fmt.Errorf("promptgen: component %q: %w", name, err)
	}
	renderer, err := strategy.New(render.TemplateSpec{
		Source: mt.Source,
		Path:   mt.Path,
		Dir:    baseDir,
	})
	if err != nil {
		return nil, fmt.Errorf("promptgen: component %q: %w", name, err)
	}
	return renderer, nil
}

func manifestField(owner string, mf ManifestField) (component.FieldSpec, error) {
	if mf.Name == "" {
		return component.FieldSpec{}, fmt.Errorf("promptgen: component %q declares a field without a name", owner)
	}
	ftype, err := fieldTypeFromName(mf.Type)
	if err != nil {
		return component.FieldSpec{}, fmt.Errorf("promptgen: component %q field %q: %w", owner, mf.Name, err)
	}
	if mf.Required {
		return component.Field(mf.Name, ftype), nil
	}
	return component.OptField(mf.Name, ftype, mf.Default), nil
}

func fieldTypeFromName(name string) (component.FieldType, error) {
	switch name {
	case "", "any":
		return component.TypeAny, nil
	case "string":
		return component.TypeString, nil
	case "integer", "int":
		return component.TypeInt, nil
	case "number", "float":
		return component.TypeFloat, nil
	case "boolean", "bool":
		return component.TypeBool, nil
	case "list":
		return component.TypeList, nil
	case "map":
		return component.TypeMap, nil
	case "tuple":
		return component.TypeTuple, nil
	case "component":
		return component.TypeComponent, nil
	default:
		return component.TypeAny, fmt.Errorf("unknown field type %q", name)
	}
}
