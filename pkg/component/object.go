package component

import (
	"fmt"

	"github.com/goliatone/go-nncomponent/pkg/schema"
)

// ObjectComponent models a record field with one child per property.
// Children are built on demand through the factory that created the object,
// so an undispatchable property never prevents the object itself from being
// built.
type ObjectComponent struct {
	Base
	factory *Factory
}

// NewObject wraps s as an object component whose children are built by f.
func NewObject(f *Factory, s *schema.Schema) *ObjectComponent {
	return &ObjectComponent{Base: NewBase(s), factory: f}
}

func (c *ObjectComponent) Kind() Kind { return KindObject }

// PropertyNames returns the property names in sorted order.
func (c *ObjectComponent) PropertyNames() []string {
	return c.schema.PropertyNames()
}

// Child builds the component for the named property.
func (c *ObjectComponent) Child(name string) (Component, error) {
	prop, ok := c.schema.Properties[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q of %q", ErrUnknownProperty, name, c.schema.PathOrUnknown())
	}
	child, err := c.factory.New(prop)
	if err != nil {
		return nil, fmt.Errorf("component: property %q of %q: %w", name, c.schema.PathOrUnknown(), err)
	}
	return child, nil
}

// Children builds the property components ordered by property name. The
// first property that cannot be built stops the walk.
func (c *ObjectComponent) Children() ([]Component, error) {
	names := c.PropertyNames()
	children := make([]Component, 0, len(names))
	for _, name := range names {
		child, err := c.Child(name)
		if err != nil {
			return nil, err
		}
		children = append(children, child)
	}
	return children, nil
}
