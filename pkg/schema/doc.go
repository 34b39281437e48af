// Package schema defines the field schema record consumed by the component
// factory, together with the sources, documents, and decoders used to obtain
// it.
//
// A Schema describes one data field. Only three keys drive component
// selection: the type tags, the presence of an enum, and the field's
// metadata.variablePath. Properties and items describe nested fields so whole
// documents can be walked.
//
// Decoding validates structure once at the boundary. Missing keys do not fail
// decoding; they surface as lookup errors when accessed.
package schema
