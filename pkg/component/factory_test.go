package component

import (
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/goliatone/go-nncomponent/pkg/schema"
)

func field(path string, types ...string) *schema.Schema {
	return &schema.Schema{Type: types, Metadata: schema.PathMetadata(path)}
}

func TestNew_Dispatch(t *testing.T) {
	cases := []struct {
		name   string
		schema *schema.Schema
		want   Kind
	}{
		{
			name:   "enum on string",
			schema: &schema.Schema{Type: []string{"string"}, Enum: []any{"a", "b"}, Metadata: schema.PathMetadata("color")},
			want:   KindClassification,
		},
		{
			name:   "enum wins over number",
			schema: &schema.Schema{Type: []string{schema.TypeNumber}, Enum: []any{1, 2}, Metadata: schema.PathMetadata("rating")},
			want:   KindClassification,
		},
		{
			name:   "enum wins over object",
			schema: &schema.Schema{Type: []string{schema.TypeObject}, Enum: []any{}, Metadata: schema.PathMetadata("o")},
			want:   KindClassification,
		},
		{
			name:   "enum without type",
			schema: &schema.Schema{Enum: []any{"x"}, Metadata: schema.PathMetadata("t")},
			want:   KindClassification,
		},
		{
			name:   "object",
			schema: field("address", schema.TypeObject),
			want:   KindObject,
		},
		{
			name:   "number",
			schema: field("price", schema.TypeNumber),
			want:   KindNumber,
		},
		{
			name:   "number with secondary tag",
			schema: field("price", schema.TypeNumber, "null"),
			want:   KindNumber,
		},
		{
			name: "array",
			schema: &schema.Schema{
				Type:     []string{schema.TypeArray},
				Items:    field("scores[]", schema.TypeNumber),
				Metadata: schema.PathMetadata("scores"),
			},
			want: KindSequence,
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			c, err := New(tc.schema)
			if err != nil {
				t.Fatalf("new: %v", err)
			}
			if c.Kind() != tc.want {
				t.Fatalf("want %s, got %s", tc.want, c.Kind())
			}
			if c.Schema() != tc.schema {
				t.Fatalf("component must wrap the supplied schema")
			}
			if kind, ok := NewFactory().Resolve(tc.schema); !ok || kind != tc.want {
				t.Fatalf("resolve: want %s, got %s (ok=%v)", tc.want, kind, ok)
			}
		})
	}
}

func TestNew_VariantTypes(t *testing.T) {
	c, err := New(&schema.Schema{Enum: []any{"a"}, Metadata: schema.PathMetadata("x")})
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if _, ok := c.(*ClassificationComponent); !ok {
		t.Fatalf("expected *ClassificationComponent, got %T", c)
	}

	c, err = New(field("n", schema.TypeNumber))
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if _, ok := c.(*NumberComponent); !ok {
		t.Fatalf("expected *NumberComponent, got %T", c)
	}
}

func TestNew_Unrecognized(t *testing.T) {
	_, err := New(field("customer.name", "string"))
	if !errors.Is(err, ErrUnrecognizedSchema) {
		t.Fatalf("expected ErrUnrecognizedSchema, got %v", err)
	}
	var unrecognized *UnrecognizedSchemaError
	if !errors.As(err, &unrecognized) {
		t.Fatalf("expected *UnrecognizedSchemaError, got %T", err)
	}
	msg := err.Error()
	if !strings.Contains(msg, "[string]") || !strings.Contains(msg, "customer.name") {
		t.Fatalf("error must name type and path, got %q", msg)
	}
	if unrecognized.VariablePath != "customer.name" {
		t.Fatalf("unexpected path %q", unrecognized.VariablePath)
	}
}

func TestNew_UnrecognizedMissingType(t *testing.T) {
	_, err := New(&schema.Schema{Metadata: schema.PathMetadata("blank")})
	if !errors.Is(err, ErrUnrecognizedSchema) || !errors.Is(err, schema.ErrMissingType) {
		t.Fatalf("expected unrecognized + missing type, got %v", err)
	}
	if !strings.Contains(err.Error(), "blank") {
		t.Fatalf("error must name the path, got %q", err.Error())
	}
}

func TestNew_UnrecognizedWithoutMetadata(t *testing.T) {
	_, err := New(&schema.Schema{Type: []string{"boolean"}})
	if !errors.Is(err, ErrUnrecognizedSchema) {
		t.Fatalf("expected ErrUnrecognizedSchema, got %v", err)
	}
	if !strings.Contains(err.Error(), "<unknown>") {
		t.Fatalf("expected placeholder path, got %q", err.Error())
	}
}

func TestNew_NilSchema(t *testing.T) {
	if _, err := New(nil); !errors.Is(err, ErrNilSchema) {
		t.Fatalf("expected ErrNilSchema, got %v", err)
	}
}

func TestNew_ObjectChildren(t *testing.T) {
	s := &schema.Schema{
		Type:     []string{schema.TypeObject},
		Metadata: schema.PathMetadata(""),
		Properties: map[string]*schema.Schema{
			"total": field("total", schema.TypeNumber),
			"state": {Type: []string{"string"}, Enum: []any{"new"}, Metadata: schema.PathMetadata("state")},
			"lines": {
				Type:     []string{schema.TypeArray},
				Metadata: schema.PathMetadata("lines"),
				Items:    field("lines[]", schema.TypeNumber),
			},
		},
	}

	c, err := New(s)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	obj, ok := c.(*ObjectComponent)
	if !ok {
		t.Fatalf("expected *ObjectComponent, got %T", c)
	}

	children, err := obj.Children()
	if err != nil {
		t.Fatalf("children: %v", err)
	}
	gotKinds := make([]Kind, 0, len(children))
	for _, child := range children {
		gotKinds = append(gotKinds, child.Kind())
	}
	wantKinds := []Kind{KindSequence, KindClassification, KindNumber}
	if diff := cmp.Diff(wantKinds, gotKinds); diff != "" {
		t.Fatalf("children kinds mismatch (-want +got):\n%s", diff)
	}

	lines, err := obj.Child("lines")
	if err != nil {
		t.Fatalf("lines child: %v", err)
	}
	item, err := lines.(*SequenceComponent).Item()
	if err != nil {
		t.Fatalf("item: %v", err)
	}
	name, err := item.MachineVariableName()
	if err != nil || name != "lines__array__" {
		t.Fatalf("item machine name: got %q (err=%v)", name, err)
	}
	if _, err := obj.Child("missing"); !errors.Is(err, ErrUnknownProperty) {
		t.Fatalf("expected ErrUnknownProperty, got %v", err)
	}
}

func TestNew_ObjectWithUnrecognizedChild(t *testing.T) {
	s := &schema.Schema{
		Type:     []string{schema.TypeObject},
		Metadata: schema.PathMetadata("order"),
		Properties: map[string]*schema.Schema{
			"total": field("order.total", schema.TypeNumber),
			"note":  field("order.note", "string"),
		},
	}
	c, err := New(s)
	if err != nil {
		t.Fatalf("object must build regardless of its properties: %v", err)
	}
	obj, ok := c.(*ObjectComponent)
	if !ok {
		t.Fatalf("expected *ObjectComponent, got %T", c)
	}

	if _, err := obj.Child("total"); err != nil {
		t.Fatalf("total child: %v", err)
	}
	_, err = obj.Child("note")
	if !errors.Is(err, ErrUnrecognizedSchema) {
		t.Fatalf("expected wrapped unrecognized error, got %v", err)
	}
	if !strings.Contains(err.Error(), "order.note") || !strings.Contains(err.Error(), `"note"`) {
		t.Fatalf("error should locate the failing property, got %q", err.Error())
	}
	if _, err := obj.Children(); !errors.Is(err, ErrUnrecognizedSchema) {
		t.Fatalf("children should surface the property error, got %v", err)
	}
}

func TestNew_SequenceWithoutItems(t *testing.T) {
	s := &schema.Schema{Type: []string{schema.TypeArray, "null"}, Metadata: schema.PathMetadata("tags")}
	c, err := New(s)
	if err != nil {
		t.Fatalf("array must build without items: %v", err)
	}
	seq, ok := c.(*SequenceComponent)
	if !ok {
		t.Fatalf("expected *SequenceComponent, got %T", c)
	}

	_, err = seq.Item()
	if !errors.Is(err, ErrMissingItems) {
		t.Fatalf("expected ErrMissingItems, got %v", err)
	}
	if errors.Is(err, schema.ErrMissingType) || errors.Is(err, ErrUnrecognizedSchema) {
		t.Fatalf("missing items must not be reported as a missing type, got %v", err)
	}
	msg := err.Error()
	if !strings.Contains(msg, "[array null]") || !strings.Contains(msg, "tags") || strings.Contains(msg, "tags[]") {
		t.Fatalf("error should name the array type and path, got %q", msg)
	}
	if _, err := seq.Children(); !errors.Is(err, ErrMissingItems) {
		t.Fatalf("children should surface ErrMissingItems, got %v", err)
	}
}

func TestFactory_ResolveAgreesWithNew(t *testing.T) {
	cases := map[string]*schema.Schema{
		"number":        field("n", schema.TypeNumber),
		"string":        field("s", "string"),
		"no type":       {Metadata: schema.PathMetadata("blank")},
		"empty enum":    {Enum: []any{}, Metadata: schema.PathMetadata("e")},
		"bare object":   field("o", schema.TypeObject),
		"array no item": field("tags", schema.TypeArray),
		"array of strings": {
			Type:     []string{schema.TypeArray},
			Items:    field("words[]", "string"),
			Metadata: schema.PathMetadata("words"),
		},
		"object with bad property": {
			Type:     []string{schema.TypeObject},
			Metadata: schema.PathMetadata("order"),
			Properties: map[string]*schema.Schema{
				"note": field("order.note", "boolean"),
			},
		},
	}

	f := NewFactory()
	for name, s := range cases {
		name, s := name, s
		t.Run(name, func(t *testing.T) {
			kind, resolved := f.Resolve(s)
			c, err := f.New(s)
			if resolved != (err == nil) {
				t.Fatalf("resolve ok=%v but new err=%v", resolved, err)
			}
			if resolved && c.Kind() != kind {
				t.Fatalf("resolve picked %s, new built %s", kind, c.Kind())
			}
		})
	}
}

func TestFactory_RegisterCustomKind(t *testing.T) {
	const kindText Kind = "text"
	f := NewFactory()
	f.Register(kindText, PrioritySequence-10, func(s *schema.Schema) bool {
		primary, err := s.PrimaryType()
		return err == nil && primary == "string"
	}, func(_ *Factory, s *schema.Schema) (Component, error) {
		return NewNumber(s), nil
	})

	if kind, ok := f.Resolve(field("bio", "string")); !ok || kind != kindText {
		t.Fatalf("custom rule should resolve, got %q (ok=%v)", kind, ok)
	}

	// The enum rule still outranks the custom rule.
	enumString := &schema.Schema{Type: []string{"string"}, Enum: []any{"a"}, Metadata: schema.PathMetadata("e")}
	if kind, _ := f.Resolve(enumString); kind != KindClassification {
		t.Fatalf("enum must keep precedence, got %q", kind)
	}

	// The default factory is unaffected.
	if _, err := New(field("bio", "string")); !errors.Is(err, ErrUnrecognizedSchema) {
		t.Fatalf("default factory should not see custom rules, got %v", err)
	}
}

func TestFactory_PriorityOverride(t *testing.T) {
	f := NewFactory()
	f.Register("wide-number", PriorityClassification+1, func(s *schema.Schema) bool {
		primary, _ := s.PrimaryType()
		return primary == schema.TypeNumber
	}, func(_ *Factory, s *schema.Schema) (Component, error) {
		return NewNumber(s), nil
	})

	kind, ok := f.Resolve(&schema.Schema{Type: []string{schema.TypeNumber}, Enum: []any{1}})
	if !ok || kind != "wide-number" {
		t.Fatalf("higher priority rule should win, got %q", kind)
	}
}

func TestFactory_Metrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	f := NewFactory(WithMetrics(reg))

	s := &schema.Schema{
		Type:     []string{schema.TypeObject},
		Metadata: schema.PathMetadata(""),
		Properties: map[string]*schema.Schema{
			"a": field("a", schema.TypeNumber),
			"b": field("b", schema.TypeNumber),
		},
	}
	c, err := f.New(s)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if got := testutil.ToFloat64(f.metrics.components.WithLabelValues("object")); got != 1 {
		t.Fatalf("object components: want 1, got %v", got)
	}
	// Properties are only counted once they are built.
	if got := testutil.ToFloat64(f.metrics.components.WithLabelValues("number")); got != 0 {
		t.Fatalf("number components before children: want 0, got %v", got)
	}
	if _, err := c.(*ObjectComponent).Children(); err != nil {
		t.Fatalf("children: %v", err)
	}
	if _, err := f.New(field("x", "string")); err == nil {
		t.Fatalf("expected dispatch failure")
	}

	if got := testutil.ToFloat64(f.metrics.components.WithLabelValues("number")); got != 2 {
		t.Fatalf("number components: want 2, got %v", got)
	}
	if got := testutil.ToFloat64(f.metrics.failures); got != 1 {
		t.Fatalf("failures: want 1, got %v", got)
	}

	// A second factory on the same registry shares the collectors.
	g := NewFactory(WithMetrics(reg))
	if _, err := g.New(field("y", schema.TypeNumber)); err != nil {
		t.Fatalf("new: %v", err)
	}
	if got := testutil.ToFloat64(f.metrics.components.WithLabelValues("number")); got != 3 {
		t.Fatalf("shared number counter: want 3, got %v", got)
	}
}

func TestFactory_ConcurrentUse(t *testing.T) {
	f := NewFactory()
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			if i%4 == 0 {
				f.Register(Kind("extra"), 1, func(*schema.Schema) bool { return false },
					func(_ *Factory, s *schema.Schema) (Component, error) { return NewNumber(s), nil })
				return
			}
			c, err := f.New(field("n", schema.TypeNumber))
			if err != nil || c.Kind() != KindNumber {
				t.Errorf("concurrent new: %v %v", c, err)
			}
		}(i)
	}
	wg.Wait()
}
