// Package openapi reads field schemas out of OpenAPI 3 documents. Each entry
// under components.schemas becomes a schema.Schema; the x-variable-path
// extension maps to metadata.variablePath.
package openapi
