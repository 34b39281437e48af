package schema

import (
	"bytes"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Decode parses a JSON or YAML document into a Schema.
func Decode(doc Document) (*Schema, error) {
	return DecodeBytes(doc.Raw())
}

// DecodeBytes parses a raw JSON or YAML payload into a Schema.
func DecodeBytes(raw []byte) (*Schema, error) {
	payload, err := parsePayload(raw)
	if err != nil {
		return nil, err
	}
	return FromMap(payload)
}

func parsePayload(raw []byte) (map[string]any, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return nil, fmt.Errorf("%w: empty document", ErrInvalidSchema)
	}

	var payload map[string]any
	if trimmed[0] == '{' {
		if err := json.Unmarshal(trimmed, &payload); err != nil {
			return nil, fmt.Errorf("schema: decode json: %w", err)
		}
		return payload, nil
	}
	if err := yaml.Unmarshal(trimmed, &payload); err != nil {
		return nil, fmt.Errorf("schema: decode yaml: %w", err)
	}
	if payload == nil {
		return nil, fmt.Errorf("%w: document is not a mapping", ErrInvalidSchema)
	}
	return payload, nil
}

// FromMap converts a generic mapping into a Schema, validating the shape of
// the keys it understands. Unknown keys are ignored.
func FromMap(payload map[string]any) (*Schema, error) {
	return fromMap(payload, "#")
}

func fromMap(payload map[string]any, at string) (*Schema, error) {
	if payload == nil {
		return nil, invalidf(at, "schema must be a mapping")
	}
	out := &Schema{}

	if raw, ok := payload["type"]; ok {
		types, err := decodeTypes(raw, at)
		if err != nil {
			return nil, err
		}
		out.Type = types
	}

	if raw, ok := payload["enum"]; ok {
		switch values := raw.(type) {
		case nil:
			out.Enum = []any{}
		case []any:
			out.Enum = append(make([]any, 0, len(values)), values...)
		default:
			return nil, invalidf(at, "enum must be a list, got %T", raw)
		}
	}

	var err error
	if out.Title, err = optionalString(payload, "title", at); err != nil {
		return nil, err
	}
	if out.Description, err = optionalString(payload, "description", at); err != nil {
		return nil, err
	}

	if raw, ok := payload["properties"]; ok && raw != nil {
		props, isMap := raw.(map[string]any)
		if !isMap {
			return nil, invalidf(at, "properties must be a mapping, got %T", raw)
		}
		out.Properties = make(map[string]*Schema, len(props))
		for name, value := range props {
			child, isChildMap := value.(map[string]any)
			if !isChildMap {
				return nil, invalidf(at+"/properties/"+name, "schema must be a mapping, got %T", value)
			}
			decoded, err := fromMap(child, at+"/properties/"+name)
			if err != nil {
				return nil, err
			}
			out.Properties[name] = decoded
		}
	}

	if raw, ok := payload["items"]; ok && raw != nil {
		child, isMap := raw.(map[string]any)
		if !isMap {
			return nil, invalidf(at, "items must be a single schema mapping, got %T", raw)
		}
		items, err := fromMap(child, at+"/items")
		if err != nil {
			return nil, err
		}
		out.Items = items
	}

	if raw, ok := payload["metadata"]; ok && raw != nil {
		meta, err := decodeMetadata(raw, at)
		if err != nil {
			return nil, err
		}
		out.Metadata = meta
	}

	return out, nil
}

func decodeTypes(raw any, at string) ([]string, error) {
	switch value := raw.(type) {
	case string:
		return []string{value}, nil
	case []any:
		types := make([]string, 0, len(value))
		for idx, entry := range value {
			tag, ok := entry.(string)
			if !ok {
				return nil, invalidf(at, "type[%d] must be a string, got %T", idx, entry)
			}
			types = append(types, tag)
		}
		return types, nil
	case nil:
		return nil, nil
	default:
		return nil, invalidf(at, "type must be a string or list, got %T", raw)
	}
}

func decodeMetadata(raw any, at string) (*Metadata, error) {
	values, ok := raw.(map[string]any)
	if !ok {
		return nil, invalidf(at, "metadata must be a mapping, got %T", raw)
	}
	meta := &Metadata{}
	for key, value := range values {
		if key == "variablePath" {
			path, isString := value.(string)
			if !isString {
				return nil, invalidf(at, "metadata.variablePath must be a string, got %T", value)
			}
			meta.VariablePath = &path
			continue
		}
		if meta.Extra == nil {
			meta.Extra = make(map[string]any)
		}
		meta.Extra[key] = value
	}
	return meta, nil
}

func optionalString(payload map[string]any, key, at string) (string, error) {
	raw, ok := payload[key]
	if !ok || raw == nil {
		return "", nil
	}
	value, isString := raw.(string)
	if !isString {
		return "", invalidf(at, "%s must be a string, got %T", key, raw)
	}
	return value, nil
}
