// Package parser converts OpenAPI component schemas into field schemas using
// kin-openapi. It is kept internal so the public API does not expose
// kin-openapi types.
package parser

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-nncomponent/pkg/schema"
)

// VariablePathExtension carries a field's variable path inside OpenAPI
// documents.
const VariablePathExtension = "x-variable-path"

// ErrRecursiveSchema is returned for self-referencing component schemas,
// which cannot be expanded into a finite component tree.
var ErrRecursiveSchema = errors.New("openapi parser: recursive schema")

// Options configures the parser.
type Options struct {
	// AllowExternalRefs lets the loader follow $refs outside the document.
	AllowExternalRefs bool
}

// Parser extracts component schemas from OpenAPI 3 documents.
type Parser struct {
	options Options
}

// New constructs a Parser.
func New(options Options) *Parser {
	return &Parser{options: options}
}

// ComponentSchemas returns every entry under components.schemas converted to
// a field schema.
func (p *Parser) ComponentSchemas(ctx context.Context, raw []byte) (map[string]*schema.Schema, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(raw) == 0 {
		return nil, errors.New("openapi parser: document payload is empty")
	}

	loader := &openapi3.Loader{
		Context:               ctx,
		IsExternalRefsAllowed: p.options.AllowExternalRefs,
	}
	spec, err := loader.LoadFromData(raw)
	if err != nil {
		return nil, fmt.Errorf("openapi parser: load document: %w", err)
	}

	out := make(map[string]*schema.Schema)
	if spec.Components == nil {
		return out, nil
	}
	for name, ref := range spec.Components.Schemas {
		converted, err := convert(ref, map[*openapi3.Schema]bool{})
		if err != nil {
			return nil, fmt.Errorf("openapi parser: components.schemas.%s: %w", name, err)
		}
		out[name] = converted
	}
	return out, nil
}

func convert(ref *openapi3.SchemaRef, visiting map[*openapi3.Schema]bool) (*schema.Schema, error) {
	if ref == nil || ref.Value == nil {
		return &schema.Schema{}, nil
	}
	src := ref.Value
	if visiting[src] {
		return nil, fmt.Errorf("%w via %q", ErrRecursiveSchema, ref.Ref)
	}
	visiting[src] = true
	defer delete(visiting, src)

	out := &schema.Schema{
		Type:        schemaTypes(src.Type),
		Title:       src.Title,
		Description: src.Description,
	}
	if src.Enum != nil {
		out.Enum = append(make([]any, 0, len(src.Enum)), src.Enum...)
	}
	if path, ok := variablePath(src.Extensions); ok {
		out.Metadata = schema.PathMetadata(path)
	}

	if len(src.Properties) > 0 {
		out.Properties = make(map[string]*schema.Schema, len(src.Properties))
		for name, property := range src.Properties {
			child, err := convert(property, visiting)
			if err != nil {
				return nil, fmt.Errorf("properties.%s: %w", name, err)
			}
			out.Properties[name] = child
		}
	}
	if src.Items != nil {
		items, err := convert(src.Items, visiting)
		if err != nil {
			return nil, fmt.Errorf("items: %w", err)
		}
		out.Items = items
	}
	return out, nil
}

func schemaTypes(types *openapi3.Types) []string {
	if types == nil {
		return nil
	}
	values := types.Slice()
	if len(values) == 0 {
		return nil
	}
	return append([]string(nil), values...)
}

func variablePath(extensions map[string]any) (string, bool) {
	raw, ok := extensions[VariablePathExtension]
	if !ok {
		return "", false
	}
	switch value := raw.(type) {
	case string:
		return value, true
	case json.RawMessage:
		var path string
		if err := json.Unmarshal(value, &path); err != nil {
			return "", false
		}
		return path, true
	default:
		return "", false
	}
}
