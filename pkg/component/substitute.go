package component

import (
	"context"
	"fmt"
	"reflect"
	"sort"
	"strings"
)

// substitute recursively transforms a collected value. Render-capable values
// are replaced by the text of their own full pipeline run; ordered
// sequences, mappings and tuples keep their shape and render to their
// canonical text form with each element substituted; scalars pass through
// with their native type so top-level values stay unquoted.
func substitute(ctx context.Context, value any) (any, error) {
	switch v := value.(type) {
	case Component:
		return v.Render(ctx)
	case *Definition:
		return v.Name(), nil
	case Tuple:
		return renderTuple(ctx, v)
	case *Dict:
		return renderDict(ctx, v)
	case map[string]any:
		return renderMap(ctx, v)
	default:
		if elems, ok := sequenceElements(value); ok {
			return renderList(ctx, elems)
		}
		return value, nil
	}
}

// renderElement substitutes a value nested inside a container. Rendered
// component text and string literals are quoted; nested containers keep
// their own text form unquoted; other scalars use their native text form.
func renderElement(ctx context.Context, value any) (string, error) {
	switch v := value.(type) {
	case Component:
		text, err := v.Render(ctx)
		if err != nil {
			return "", err
		}
		return quote(text), nil
	case *Definition:
		return quote(v.Name()), nil
	case string:
		return quote(v), nil
	case Tuple:
		return renderTuple(ctx, v)
	case *Dict:
		return renderDict(ctx, v)
	case map[string]any:
		return renderMap(ctx, v)
	case nil:
		return "None", nil
	default:
		if elems, ok := sequenceElements(value); ok {
			return renderList(ctx, elems)
		}
		return fmt.Sprintf("%v", v), nil
	}
}

func renderList(ctx context.Context, elems []any) (string, error) {
	parts := make([]string, len(elems))
	for i, elem := range elems {
		text, err := renderElement(ctx, elem)
		if err != nil {
			return "", err
		}
		parts[i] = text
	}
	return "[" + strings.Join(parts, ", ") + "]", nil
}

func renderTuple(ctx context.Context, t Tuple) (string, error) {
	parts := make([]string, len(t))
	for i, elem := range t {
		text, err := renderElement(ctx, elem)
		if err != nil {
			return "", err
		}
		parts[i] = text
	}
	if len(parts) == 1 {
		return "(" + parts[0] + ",)", nil
	}
	return "(" + strings.Join(parts, ", ") + ")", nil
}

func renderDict(ctx context.Context, d *Dict) (string, error) {
	parts := make([]string, 0, d.Len())
	for pair := d.Oldest(); pair != nil; pair = pair.Next() {
		text, err := renderElement(ctx, pair.Value)
		if err != nil {
			return "", err
		}
		parts = append(parts, quote(pair.Key)+": "+text)
	}
	return "{" + strings.Join(parts, ", ") + "}", nil
}

// renderMap handles plain Go maps. Insertion order is unavailable, so keys
// sort lexically for deterministic output; use Dict to control display
// order.
func renderMap(ctx context.Context, m map[string]any) (string, error) {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, key := range keys {
		text, err := renderElement(ctx, m[key])
		if err != nil {
			return "", err
		}
		parts = append(parts, quote(key)+": "+text)
	}
	return "{" + strings.Join(parts, ", ") + "}", nil
}

// sequenceElements normalises any slice or array value (except Tuple and
// []byte) into []any.
func sequenceElements(value any) ([]any, bool) {
	if _, isTuple := value.(Tuple); isTuple {
		return nil, false
	}
	if _, isBytes := value.([]byte); isBytes {
		return nil, false
	}
	rv := reflect.ValueOf(value)
	if !rv.IsValid() || (rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array) {
		return nil, false
	}
	elems := make([]any, rv.Len())
	for i := range elems {
		elems[i] = rv.Index(i).Interface()
	}
	return elems, true
}

// quote wraps nested string values in single quotes, escaping backslashes
// and embedded quotes.
func quote(s string) string {
	escaped := strings.ReplaceAll(s, `\`, `\\`)
	escaped = strings.ReplaceAll(escaped, "'", `\'`)
	return "'" + escaped + "'"
}
