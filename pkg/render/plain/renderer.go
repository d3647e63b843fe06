// Package plain implements literal pattern substitution: `{name}`
// placeholders are replaced by the variable's text form, `{{` and `}}`
// escape literal braces. An undefined placeholder fails the render.
package plain

import (
	"context"
	"fmt"
	"strings"

	"github.com/goliatone/go-promptgen/pkg/render"
)

// Renderer substitutes named placeholders in a fixed pattern.
type Renderer struct {
	pattern string
}

var _ render.Renderer = (*Renderer)(nil)

// New binds a renderer to the given pattern.
func New(pattern string) *Renderer {
	return &Renderer{pattern: pattern}
}

// Name identifies the strategy.
func (r *Renderer) Name() string { return "plain" }

// Pattern returns the bound pattern text.
func (r *Renderer) Pattern() string { return r.pattern }

// Render replaces every `{name}` with the text form of vars[name]. Strings
// are inserted verbatim; other scalars use their native text form.
func (r *Renderer) Render(ctx context.Context, vars render.Vars) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	var out strings.Builder
	pattern := r.pattern

	for i := 0; i < len(pattern); i++ {
		switch c := pattern[i]; c {
		case '{':
			if i+1 < len(pattern) && pattern[i+1] == '{' {
				out.WriteByte('{')
				i++
				continue
			}
			end := strings.IndexByte(pattern[i:], '}')
			if end < 0 {
				return "", fmt.Errorf("plain: unterminated placeholder at offset %d", i)
			}
			name := pattern[i+1 : i+end]
			value, ok := vars[name]
			if !ok {
				return "", &render.UndefinedVariableError{Variable: name, Renderer: r.Name()}
			}
			out.WriteString(formatValue(value))
			i += end
		case '}':
			if i+1 < len(pattern) && pattern[i+1] == '}' {
				out.WriteByte('}')
				i++
				continue
			}
			return "", fmt.Errorf("plain: single %q at offset %d, use %q for a literal brace", "}", i, "}}")
		default:
			out.WriteByte(c)
		}
	}
	return out.String(), nil
}

func formatValue(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	default:
		return fmt.Sprintf("%v", v)
	}
}

// Strategy registers plain substitution under the "plain" kind.
type Strategy struct{}

// Name identifies the strategy kind.
func (Strategy) Name() string { return "plain" }

// New builds a renderer from the spec's inline source.
func (Strategy) New(spec render.TemplateSpec) (render.Renderer, error) {
	return New(spec.Source), nil
}
