package schema

// Clone returns a deep copy of s. Enum values and metadata extras are copied
// shallowly.
func (s *Schema) Clone() *Schema {
	if s == nil {
		return nil
	}
	out := &Schema{
		Title:       s.Title,
		Description: s.Description,
		Items:       s.Items.Clone(),
		Metadata:    s.Metadata.clone(),
	}
	if s.Type != nil {
		out.Type = append([]string(nil), s.Type...)
	}
	if s.Enum != nil {
		out.Enum = append(make([]any, 0, len(s.Enum)), s.Enum...)
	}
	if s.Properties != nil {
		out.Properties = make(map[string]*Schema, len(s.Properties))
		for name, child := range s.Properties {
			out.Properties[name] = child.Clone()
		}
	}
	return out
}

func (m *Metadata) clone() *Metadata {
	if m == nil {
		return nil
	}
	out := &Metadata{}
	if m.VariablePath != nil {
		path := *m.VariablePath
		out.VariablePath = &path
	}
	if m.Extra != nil {
		out.Extra = make(map[string]any, len(m.Extra))
		for key, value := range m.Extra {
			out.Extra[key] = value
		}
	}
	return out
}
