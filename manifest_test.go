package promptgen_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	promptgen "github.com/goliatone/go-promptgen"
	"github.com/goliatone/go-promptgen/pkg/component"
	"github.com/goliatone/go-promptgen/pkg/render/template/pongo"
)

const manifestDoc = `
components:
  - name: Animal
    swappable: true
    fields:
      - name: sound
        type: string
        required: true
    template:
      kind: plain
      source: "{sound}"
  - name: Dog
    extends: Animal
    fields:
      - name: sound
        type: string
        default: woof
  - name: Kennel
    keyword_only: true
    fields:
      - name: occupant
        type: component
        required: true
    template:
      kind: plain
      source: "kennel of {occupant}"
`

func TestLoadManifestData_DefinesInheritanceChain(t *testing.T) {
	o := promptgen.New()

	if err := o.LoadManifestData([]byte(manifestDoc), "."); err != nil {
		t.Fatalf("load manifest: %v", err)
	}

	dog, ok := o.Definition("Dog")
	if !ok {
		t.Fatalf("Dog should be registered")
	}
	animal, _ := o.Definition("Animal")
	if dog.Parent() != animal {
		t.Fatalf("Dog should extend Animal")
	}
	if !component.IsSwappable(dog) {
		t.Fatalf("descendants of a swappable root should be swappable")
	}

	out, err := o.Render(context.Background(), "Dog", nil)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if out != "woof" {
		t.Fatalf("expected %q, got %q", "woof", out)
	}
}

func TestLoadManifestData_NestedComponentValues(t *testing.T) {
	o := promptgen.New()
	if err := o.LoadManifestData([]byte(manifestDoc), "."); err != nil {
		t.Fatalf("load manifest: %v", err)
	}

	dog, _ := o.Definition("Dog")
	pup, err := dog.New(nil)
	if err != nil {
		t.Fatalf("new dog: %v", err)
	}

	out, err := o.Render(context.Background(), "Kennel", component.Values{"occupant": pup})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if out != "kennel of woof" {
		t.Fatalf("expected nested render, got %q", out)
	}
}

func TestLoadManifestData_KeywordOnlyIsHonored(t *testing.T) {
	o := promptgen.New()
	if err := o.LoadManifestData([]byte(manifestDoc), "."); err != nil {
		t.Fatalf("load manifest: %v", err)
	}

	kennel, _ := o.Definition("Kennel")
	if !kennel.KeywordOnly() {
		t.Fatalf("Kennel should be keyword-only")
	}
	if _, err := kennel.NewArgs("stray"); err == nil {
		t.Fatalf("positional construction should be rejected")
	}
}

func TestLoadManifestData_UnknownParentFails(t *testing.T) {
	o := promptgen.New()

	doc := `
components:
  - name: Orphan
    extends: Nowhere
`
	err := o.LoadManifestData([]byte(doc), ".")
	if err == nil || !strings.Contains(err.Error(), "unknown component") {
		t.Fatalf("expected unknown parent error, got %v", err)
	}
}

func TestLoadManifestData_UnknownStrategyFails(t *testing.T) {
	o := promptgen.New()

	doc := `
components:
  - name: Widget
    template:
      kind: mustache
      source: "{{a}}"
`
	if err := o.LoadManifestData([]byte(doc), "."); err == nil {
		t.Fatalf("expected unknown strategy error")
	}
}

func TestLoadManifestData_UnknownFieldTypeFails(t *testing.T) {
	o := promptgen.New()

	doc := `
components:
  - name: Widget
    fields:
      - name: blob
        type: quaternion
`
	err := o.LoadManifestData([]byte(doc), ".")
	if err == nil || !strings.Contains(err.Error(), "unknown field type") {
		t.Fatalf("expected unknown field type error, got %v", err)
	}
}

func TestLoadManifest_FileTemplatesResolveAgainstManifestDir(t *testing.T) {
	dir := t.TempDir()
	tplPath := filepath.Join(dir, "greeting.tpl")
	if err := os.WriteFile(tplPath, []byte("hello {{ name|upper }}"), 0o600); err != nil {
		t.Fatalf("write template: %v", err)
	}

	manifestPath := filepath.Join(dir, "components.yaml")
	doc := `
components:
  - name: Greeting
    fields:
      - name: name
        type: string
        required: true
    template:
      kind: file
      path: greeting.tpl
`
	if err := os.WriteFile(manifestPath, []byte(doc), 0o600); err != nil {
		t.Fatalf("write manifest: %v", err)
	}

	engine, err := pongo.New(pongo.WithBaseDir(dir))
	if err != nil {
		t.Fatalf("engine: %v", err)
	}

	o := promptgen.New(promptgen.WithEngine(engine))
	if err := o.LoadManifest(manifestPath); err != nil {
		t.Fatalf("load manifest: %v", err)
	}

	out, err := o.Render(context.Background(), "Greeting", component.Values{"name": "ada"})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if out != "hello ADA" {
		t.Fatalf("expected %q, got %q", "hello ADA", out)
	}
}

func TestLoadManifestData_ExpressionKindNeedsEngine(t *testing.T) {
	o := promptgen.New()

	doc := `
components:
  - name: Widget
    template:
      kind: expression
      source: "{{ a }}"
`
	if err := o.LoadManifestData([]byte(doc), "."); err == nil {
		t.Fatalf("expression templates without an engine should fail")
	}
}
