package network

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/goliatone/go-nncomponent/pkg/component"
	"github.com/goliatone/go-nncomponent/pkg/schema"
)

var (
	// ErrDuplicateName is returned when two fields share a machine variable
	// name.
	ErrDuplicateName = errors.New("network: duplicate machine variable name")
	// ErrNilRoot is returned when Assemble receives a nil schema.
	ErrNilRoot = errors.New("network: root schema is nil")
)

// Option configures an Assembler.
type Option func(*Assembler)

// WithFactory overrides the component factory.
func WithFactory(f *component.Factory) Option {
	return func(a *Assembler) {
		if f != nil {
			a.factory = f
		}
	}
}

// WithLogger injects a logger.
func WithLogger(logger *zap.Logger) Option {
	return func(a *Assembler) {
		if logger != nil {
			a.logger = logger
		}
	}
}

// WithSkipUnrecognized drops object properties whose subtree cannot be built
// (an unrecognized type or an array without items) instead of failing.
func WithSkipUnrecognized(skip bool) Option {
	return func(a *Assembler) {
		a.skipUnrecognized = skip
	}
}

// WithPathAnnotation fills missing variable paths on a copy of the root
// schema before building, using rootPath for the root field.
func WithPathAnnotation(rootPath string) Option {
	return func(a *Assembler) {
		a.annotate = true
		a.rootPath = rootPath
	}
}

// Assembler builds Graphs from root schemas.
type Assembler struct {
	factory          *component.Factory
	logger           *zap.Logger
	skipUnrecognized bool
	annotate         bool
	rootPath         string
}

// NewAssembler constructs an Assembler with the default factory and a no-op
// logger.
func NewAssembler(options ...Option) *Assembler {
	a := &Assembler{
		factory: component.NewFactory(),
		logger:  zap.NewNop(),
	}
	for _, opt := range options {
		if opt != nil {
			opt(a)
		}
	}
	return a
}

// Assemble builds the component tree for root. The caller's schema is never
// mutated.
func (a *Assembler) Assemble(ctx context.Context, root *schema.Schema) (*Graph, error) {
	if root == nil {
		return nil, ErrNilRoot
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	target := root
	if a.annotate {
		target = root.Clone()
		schema.AnnotatePaths(target, a.rootPath)
	}

	rootComponent, err := a.factory.New(target)
	if err != nil {
		return nil, fmt.Errorf("network: build components: %w", err)
	}

	nodes, skipped, err := a.walk(ctx, rootComponent, 0)
	if err != nil {
		return nil, err
	}
	if err := checkNames(nodes); err != nil {
		return nil, err
	}
	for _, s := range skipped {
		a.logger.Warn("skipping unrecognized field",
			zap.String("path", s.Path),
			zap.Error(s.Err),
		)
	}

	graph := &Graph{Root: rootComponent, Nodes: nodes, Skipped: skipped}
	a.logger.Info("assembled component graph",
		zap.Int("nodes", len(graph.Nodes)),
		zap.Int("skipped", len(graph.Skipped)),
	)
	return graph, nil
}

// walk returns the nodes of the subtree rooted at c in depth-first order.
// When skipping is enabled, an object property whose subtree cannot be built
// is recorded as skipped and none of its nodes are kept.
func (a *Assembler) walk(ctx context.Context, c component.Component, depth int) ([]Node, []Skipped, error) {
	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}

	path, err := c.Schema().VariablePath()
	if err != nil {
		return nil, nil, fmt.Errorf("network: %s component: %w", c.Kind(), err)
	}
	name, err := c.MachineVariableName()
	if err != nil {
		return nil, nil, fmt.Errorf("network: %s component: %w", c.Kind(), err)
	}
	a.logger.Debug("component",
		zap.String("kind", c.Kind().String()),
		zap.String("path", path),
		zap.String("machine_name", name),
	)

	nodes := []Node{{
		Path:        path,
		MachineName: name,
		Kind:        c.Kind(),
		Depth:       depth,
		Component:   c,
	}}
	var skipped []Skipped

	switch v := c.(type) {
	case *component.ObjectComponent:
		for _, prop := range v.PropertyNames() {
			childNodes, childSkipped, err := a.walkProperty(ctx, v, prop, depth+1)
			if err != nil {
				if !a.skippable(err) {
					return nil, nil, err
				}
				skipped = append(skipped, Skipped{Path: propertyPath(v.Schema(), prop), Err: err})
				continue
			}
			nodes = append(nodes, childNodes...)
			skipped = append(skipped, childSkipped...)
		}
	case component.Parent:
		children, err := v.Children()
		if err != nil {
			return nil, nil, err
		}
		for _, child := range children {
			childNodes, childSkipped, err := a.walk(ctx, child, depth+1)
			if err != nil {
				return nil, nil, err
			}
			nodes = append(nodes, childNodes...)
			skipped = append(skipped, childSkipped...)
		}
	}
	return nodes, skipped, nil
}

func (a *Assembler) walkProperty(ctx context.Context, obj *component.ObjectComponent, prop string, depth int) ([]Node, []Skipped, error) {
	child, err := obj.Child(prop)
	if err != nil {
		return nil, nil, err
	}
	return a.walk(ctx, child, depth)
}

// skippable reports whether err marks a field the factory cannot build, as
// opposed to a malformed schema or a cancelled context.
func (a *Assembler) skippable(err error) bool {
	if !a.skipUnrecognized {
		return false
	}
	return errors.Is(err, component.ErrUnrecognizedSchema) || errors.Is(err, component.ErrMissingItems)
}

func checkNames(nodes []Node) error {
	seen := make(map[string]string, len(nodes))
	for _, n := range nodes {
		if previous, exists := seen[n.MachineName]; exists {
			return fmt.Errorf("%w: %q from %q and %q", ErrDuplicateName, n.MachineName, previous, n.Path)
		}
		seen[n.MachineName] = n.Path
	}
	return nil
}

func propertyPath(parent *schema.Schema, name string) string {
	if child := parent.Properties[name]; child != nil {
		if path, err := child.VariablePath(); err == nil {
			return path
		}
	}
	base, err := parent.VariablePath()
	if err != nil || base == "" {
		return name
	}
	return base + "." + name
}
