package schema

import (
	"sort"
	"strings"
)

// Type tags recognised by the component factory. Other tags (string, boolean,
// ...) decode fine but are not dispatchable without an enum.
const (
	TypeObject = "object"
	TypeNumber = "number"
	TypeArray  = "array"
)

// Schema is the structured record for a single data field.
type Schema struct {
	// Type holds the type tags; only the first element is significant.
	Type []string
	// Enum is nil when the enum key is absent. A non-nil slice, even an empty
	// one, marks the field as a classification.
	Enum        []any
	Title       string
	Description string
	Properties  map[string]*Schema
	Items       *Schema
	Metadata    *Metadata
}

// Metadata carries platform annotations attached to a field.
type Metadata struct {
	// VariablePath locates the field inside nested data. "[]" marks a
	// traversal through an array level. Nil means the key is absent.
	VariablePath *string
	// Extra keeps any other metadata keys verbatim.
	Extra map[string]any
}

// PathMetadata returns metadata holding the supplied variable path.
func PathMetadata(path string) *Metadata {
	return &Metadata{VariablePath: &path}
}

// HasEnum reports whether the enum key is present.
func (s *Schema) HasEnum() bool {
	return s != nil && s.Enum != nil
}

// PrimaryType returns the first type tag.
func (s *Schema) PrimaryType() (string, error) {
	if s == nil || len(s.Type) == 0 {
		return "", ErrMissingType
	}
	return s.Type[0], nil
}

// VariablePath returns metadata.variablePath or a *LookupError naming the
// missing key.
func (s *Schema) VariablePath() (string, error) {
	if s == nil || s.Metadata == nil {
		return "", &LookupError{Key: "metadata", Err: ErrMissingMetadata}
	}
	if s.Metadata.VariablePath == nil {
		return "", &LookupError{Key: "metadata.variablePath", Err: ErrMissingVariablePath}
	}
	return *s.Metadata.VariablePath, nil
}

// PathOrUnknown is VariablePath without the error, for diagnostics.
func (s *Schema) PathOrUnknown() string {
	path, err := s.VariablePath()
	if err != nil {
		return "<unknown>"
	}
	return path
}

// PropertyNames returns the property keys in sorted order.
func (s *Schema) PropertyNames() []string {
	if s == nil || len(s.Properties) == 0 {
		return nil
	}
	names := make([]string, 0, len(s.Properties))
	for name := range s.Properties {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// TypeString renders the type tags the way they appear in error messages.
func (s *Schema) TypeString() string {
	if s == nil {
		return "[]"
	}
	return "[" + strings.Join(s.Type, " ") + "]"
}
