package component

import (
	"errors"
	"fmt"
)

var (
	// ErrUnrecognizedSchema matches every *UnrecognizedSchemaError.
	ErrUnrecognizedSchema = errors.New("component: unrecognized schema")
	// ErrNilSchema is returned when the factory receives a nil schema.
	ErrNilSchema = errors.New("component: schema is nil")
	// ErrMissingItems is returned when a sequence item is requested from an
	// array schema without items.
	ErrMissingItems = errors.New("component: array schema has no items")
	// ErrUnknownProperty is returned by ObjectComponent.Child for names the
	// schema does not declare.
	ErrUnknownProperty = errors.New("component: unknown property")
	// ErrNilFactory is returned when New is called on a nil *Factory.
	ErrNilFactory = errors.New("component: factory is nil")
)

// UnrecognizedSchemaError reports a schema that matches none of the
// registered shapes.
type UnrecognizedSchemaError struct {
	Type         []string
	VariablePath string
	// Err carries the underlying cause, e.g. schema.ErrMissingType.
	Err error
}

func (e *UnrecognizedSchemaError) Error() string {
	return fmt.Sprintf("component: unrecognized schema type %v on variable %s", e.Type, e.VariablePath)
}

func (e *UnrecognizedSchemaError) Is(target error) bool {
	return target == ErrUnrecognizedSchema
}

func (e *UnrecognizedSchemaError) Unwrap() error {
	return e.Err
}
