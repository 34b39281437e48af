package openapi

import (
	"context"
	"fmt"
	"sort"

	"github.com/goliatone/go-nncomponent/internal/openapi/parser"
	"github.com/goliatone/go-nncomponent/pkg/schema"
)

// ErrRecursiveSchema is returned for self-referencing component schemas.
var ErrRecursiveSchema = parser.ErrRecursiveSchema

// Option configures component extraction.
type Option func(*parser.Options)

// WithExternalRefs allows $refs to other documents.
func WithExternalRefs() Option {
	return func(opts *parser.Options) {
		opts.AllowExternalRefs = true
	}
}

// ComponentSchemas converts every components.schemas entry in doc.
func ComponentSchemas(ctx context.Context, doc schema.Document, options ...Option) (map[string]*schema.Schema, error) {
	opts := parser.Options{}
	for _, opt := range options {
		if opt != nil {
			opt(&opts)
		}
	}
	return parser.New(opts).ComponentSchemas(ctx, doc.Raw())
}

// ComponentSchema converts the named components.schemas entry.
func ComponentSchema(ctx context.Context, doc schema.Document, name string, options ...Option) (*schema.Schema, error) {
	all, err := ComponentSchemas(ctx, doc, options...)
	if err != nil {
		return nil, err
	}
	found, ok := all[name]
	if !ok {
		return nil, fmt.Errorf("openapi: schema %q not found in %s (available: %v)", name, doc.Location(), names(all))
	}
	return found, nil
}

func names(all map[string]*schema.Schema) []string {
	out := make([]string, 0, len(all))
	for name := range all {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
