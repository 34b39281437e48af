package component

import "github.com/goliatone/go-nncomponent/pkg/schema"

// NumberComponent models a scalar numeric field.
type NumberComponent struct {
	Base
}

// NewNumber wraps s as a number component.
func NewNumber(s *schema.Schema) *NumberComponent {
	return &NumberComponent{Base: NewBase(s)}
}

func (c *NumberComponent) Kind() Kind { return KindNumber }
