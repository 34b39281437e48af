// Package component turns field schemas into neural network components.
//
// The Factory inspects a schema's shape and returns one of four variants:
//
//	enum present        -> *ClassificationComponent
//	type[0] == object   -> *ObjectComponent
//	type[0] == number   -> *NumberComponent
//	type[0] == array    -> *SequenceComponent
//
// The checks run in that order, so a numeric field with an enum is a
// classification. Anything else fails with *UnrecognizedSchemaError. Only the
// field itself is inspected: objects and sequences build their children on
// demand, and a child that cannot be built is reported by Child, Children or
// Item rather than by New.
//
// Every variant embeds Base, which holds the schema and derives the machine
// variable name used to label the field inside a model graph.
package component
