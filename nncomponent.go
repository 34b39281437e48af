// Package nncomponent is the top-level entry point: it loads a field schema
// from a file, fs.FS entry or URL and assembles its component graph.
//
// Lower-level building blocks live in pkg/schema, pkg/component and
// pkg/network.
package nncomponent

import (
	"context"
	"fmt"

	"github.com/goliatone/go-nncomponent/internal/loader"
	"github.com/goliatone/go-nncomponent/pkg/component"
	"github.com/goliatone/go-nncomponent/pkg/network"
	"github.com/goliatone/go-nncomponent/pkg/schema"
)

// Component aliases component.Component for callers that only import the
// root package.
type Component = component.Component

// Graph aliases network.Graph.
type Graph = network.Graph

// NewComponent builds the component for s with the default factory.
func NewComponent(s *schema.Schema) (Component, error) {
	return component.New(s)
}

// NewLoader constructs the default schema.Loader.
func NewLoader(options schema.LoaderOptions) schema.Loader {
	return loader.New(options)
}

// Build loads src through l, decodes it and assembles the graph. Paths are
// annotated from the root unless the caller supplies its own
// network.WithPathAnnotation option.
func Build(ctx context.Context, l schema.Loader, src schema.Source, options ...network.Option) (*Graph, error) {
	if l == nil {
		return nil, fmt.Errorf("nncomponent: loader is nil")
	}
	doc, err := l.Load(ctx, src)
	if err != nil {
		return nil, err
	}
	root, err := schema.Decode(doc)
	if err != nil {
		return nil, err
	}
	opts := append([]network.Option{network.WithPathAnnotation("")}, options...)
	return network.NewAssembler(opts...).Assemble(ctx, root)
}
