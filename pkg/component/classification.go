package component

import (
	"fmt"

	"github.com/goliatone/go-nncomponent/pkg/schema"
)

// ClassificationComponent models a field restricted to an enumerated set of
// classes.
type ClassificationComponent struct {
	Base
	classes []string
}

// NewClassification wraps s as a classification component. Enum values are
// rendered with %v and keep their declared order.
func NewClassification(s *schema.Schema) *ClassificationComponent {
	classes := make([]string, 0, len(s.Enum))
	for _, value := range s.Enum {
		classes = append(classes, fmt.Sprint(value))
	}
	return &ClassificationComponent{Base: NewBase(s), classes: classes}
}

func (c *ClassificationComponent) Kind() Kind { return KindClassification }

// Classes returns a copy of the class labels.
func (c *ClassificationComponent) Classes() []string {
	return append([]string(nil), c.classes...)
}

// NumClasses returns the number of classes.
func (c *ClassificationComponent) NumClasses() int {
	return len(c.classes)
}
