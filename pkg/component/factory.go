package component

import (
	"sort"
	"sync"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/goliatone/go-nncomponent/pkg/schema"
)

// Built-in dispatch priorities. Higher runs first.
const (
	PriorityClassification = 400
	PriorityObject         = 300
	PriorityNumber         = 200
	PrioritySequence       = 100
)

// Matcher decides whether a rule handles the supplied schema.
type Matcher func(s *schema.Schema) bool

// Constructor builds a component for a matched schema. Components with nested
// fields keep f and build their children through it on demand.
type Constructor func(f *Factory, s *schema.Schema) (Component, error)

type rule struct {
	kind     Kind
	priority int
	match    Matcher
	build    Constructor
	order    int
}

// Factory selects and constructs components from schemas. Rules are evaluated
// by descending priority; ties fall back to registration order. A schema
// builds exactly when Resolve matches it. The factory never caches what it
// builds and is safe for concurrent use.
type Factory struct {
	mu      sync.RWMutex
	rules   []rule
	metrics *metrics
}

// Option configures a Factory.
type Option func(*Factory)

// WithMetrics registers creation and failure counters on reg.
func WithMetrics(reg prometheus.Registerer) Option {
	return func(f *Factory) {
		f.metrics = newMetrics(reg)
	}
}

// NewFactory returns a factory with the four built-in variants registered.
func NewFactory(options ...Option) *Factory {
	f := &Factory{}
	for _, opt := range options {
		if opt != nil {
			opt(f)
		}
	}
	f.registerBuiltins()
	return f
}

var defaultFactory = NewFactory()

// New builds a component for s using the default factory.
func New(s *schema.Schema) (Component, error) {
	return defaultFactory.New(s)
}

// Register adds a rule. Callers adding their own kinds pick a priority
// relative to the built-in constants.
func (f *Factory) Register(kind Kind, priority int, match Matcher, build Constructor) {
	if f == nil || kind == "" || match == nil || build == nil {
		return
	}
	f.mu.Lock()
	defer f.mu.Unlock()

	rules := make([]rule, len(f.rules), len(f.rules)+1)
	copy(rules, f.rules)
	rules = append(rules, rule{
		kind:     kind,
		priority: priority,
		match:    match,
		build:    build,
		order:    len(f.rules),
	})
	sort.SliceStable(rules, func(i, j int) bool {
		if rules[i].priority == rules[j].priority {
			return rules[i].order < rules[j].order
		}
		return rules[i].priority > rules[j].priority
	})
	f.rules = rules
}

// Resolve returns the kind that would be built for s without building it.
func (f *Factory) Resolve(s *schema.Schema) (Kind, bool) {
	if r, ok := f.match(s); ok {
		return r.kind, true
	}
	return "", false
}

// New builds the component for s.
func (f *Factory) New(s *schema.Schema) (Component, error) {
	if f == nil {
		return nil, ErrNilFactory
	}
	if s == nil {
		return nil, ErrNilSchema
	}
	r, ok := f.match(s)
	if !ok {
		f.metrics.failed()
		return nil, unrecognized(s)
	}
	c, err := r.build(f, s)
	if err != nil {
		return nil, err
	}
	f.metrics.created(r.kind)
	return c, nil
}

func (f *Factory) match(s *schema.Schema) (rule, bool) {
	if f == nil || s == nil {
		return rule{}, false
	}
	f.mu.RLock()
	rules := f.rules
	f.mu.RUnlock()

	for _, r := range rules {
		if r.match(s) {
			return r, true
		}
	}
	return rule{}, false
}

func unrecognized(s *schema.Schema) error {
	err := &UnrecognizedSchemaError{
		Type:         append([]string(nil), s.Type...),
		VariablePath: s.PathOrUnknown(),
	}
	if len(s.Type) == 0 {
		err.Err = schema.ErrMissingType
	}
	return err
}

func hasPrimaryType(tag string) Matcher {
	return func(s *schema.Schema) bool {
		primary, err := s.PrimaryType()
		return err == nil && primary == tag
	}
}

func (f *Factory) registerBuiltins() {
	f.Register(KindClassification, PriorityClassification, (*schema.Schema).HasEnum,
		func(_ *Factory, s *schema.Schema) (Component, error) {
			return NewClassification(s), nil
		})

	f.Register(KindObject, PriorityObject, hasPrimaryType(schema.TypeObject),
		func(f *Factory, s *schema.Schema) (Component, error) {
			return NewObject(f, s), nil
		})

	f.Register(KindNumber, PriorityNumber, hasPrimaryType(schema.TypeNumber),
		func(_ *Factory, s *schema.Schema) (Component, error) {
			return NewNumber(s), nil
		})

	f.Register(KindSequence, PrioritySequence, hasPrimaryType(schema.TypeArray),
		func(f *Factory, s *schema.Schema) (Component, error) {
			return NewSequence(f, s), nil
		})
}
