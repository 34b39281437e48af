package component

import (
	"fmt"

	"github.com/goliatone/go-nncomponent/pkg/schema"
)

// SequenceComponent models an array field; its item component handles each
// element and is built on demand.
type SequenceComponent struct {
	Base
	factory *Factory
}

// NewSequence wraps s as a sequence component whose item is built by f.
func NewSequence(f *Factory, s *schema.Schema) *SequenceComponent {
	return &SequenceComponent{Base: NewBase(s), factory: f}
}

func (c *SequenceComponent) Kind() Kind { return KindSequence }

// Item builds the element component. An array without items fails with
// ErrMissingItems.
func (c *SequenceComponent) Item() (Component, error) {
	if c.schema.Items == nil {
		return nil, fmt.Errorf("%w: type %s on variable %s",
			ErrMissingItems, c.schema.TypeString(), c.schema.PathOrUnknown())
	}
	item, err := c.factory.New(c.schema.Items)
	if err != nil {
		return nil, fmt.Errorf("component: items of %q: %w", c.schema.PathOrUnknown(), err)
	}
	return item, nil
}

// Children returns the element component as a single-entry slice.
func (c *SequenceComponent) Children() ([]Component, error) {
	item, err := c.Item()
	if err != nil {
		return nil, err
	}
	return []Component{item}, nil
}
