// Package network assembles the component tree for a whole document schema
// and flattens it into a Graph that model builders can iterate.
//
// The Assembler uses a component.Factory for every field. By default the
// first unrecognized field aborts assembly; WithSkipUnrecognized drops such
// object properties instead and records them in Graph.Skipped.
package network
