package schema

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingMetadata is returned when a schema carries no metadata block.
	ErrMissingMetadata = errors.New("schema: metadata is missing")
	// ErrMissingVariablePath is returned when metadata has no variablePath.
	ErrMissingVariablePath = errors.New("schema: metadata.variablePath is missing")
	// ErrMissingType is returned when the type list is absent or empty.
	ErrMissingType = errors.New("schema: type is missing")
	// ErrInvalidSchema flags structurally malformed schema payloads.
	ErrInvalidSchema = errors.New("schema: invalid schema")
)

// LookupError reports a key that had to be present for an accessor to
// succeed.
type LookupError struct {
	Key string
	Err error
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("schema: lookup %q: key is absent", e.Key)
}

func (e *LookupError) Unwrap() error {
	return e.Err
}

func invalidf(at, format string, args ...any) error {
	msg := fmt.Sprintf(format, args...)
	if at != "" {
		msg = at + ": " + msg
	}
	return fmt.Errorf("%w: %s", ErrInvalidSchema, msg)
}
