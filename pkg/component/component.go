package component

import (
	"strings"

	"github.com/goliatone/go-nncomponent/pkg/schema"
)

// Kind names a component variant.
type Kind string

const (
	KindObject         Kind = "object"
	KindNumber         Kind = "number"
	KindClassification Kind = "classification"
	KindSequence       Kind = "sequence"
)

func (k Kind) String() string { return string(k) }

// Component is a model-building unit for a single schema field.
type Component interface {
	Kind() Kind
	Schema() *schema.Schema
	MachineVariableName() (string, error)
}

// Parent is implemented by components that own nested components. Children
// are built on demand, so building them can fail even though the parent was
// built.
type Parent interface {
	Children() ([]Component, error)
}

// arrayMarker replaces "[]" in machine variable names.
const arrayMarker = "__array__"

// Base holds the schema shared by every variant.
type Base struct {
	schema *schema.Schema
}

// NewBase wraps s. The schema is referenced, not copied, and never mutated.
func NewBase(s *schema.Schema) Base {
	return Base{schema: s}
}

// Schema returns the wrapped schema.
func (b Base) Schema() *schema.Schema {
	return b.schema
}

// MachineVariableName returns metadata.variablePath with every "[]" replaced
// by "__array__". It fails with a *schema.LookupError when the path is absent.
func (b Base) MachineVariableName() (string, error) {
	path, err := b.schema.VariablePath()
	if err != nil {
		return "", err
	}
	return MachineName(path), nil
}

// MachineName applies the machine variable name rewrite to a raw path.
func MachineName(path string) string {
	return strings.ReplaceAll(path, schema.ArraySegment, arrayMarker)
}
