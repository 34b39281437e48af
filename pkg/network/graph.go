package network

import (
	"github.com/goliatone/go-nncomponent/pkg/component"
)

// Node is one component in depth-first order.
type Node struct {
	Path        string
	MachineName string
	Kind        component.Kind
	Depth       int
	Component   component.Component
}

// Skipped records a field left out of the graph.
type Skipped struct {
	Path string
	Err  error
}

// Graph is the assembled component tree for one root schema.
type Graph struct {
	Root    component.Component
	Nodes   []Node
	Skipped []Skipped
}

// Lookup finds a node by machine variable name.
func (g *Graph) Lookup(machineName string) (Node, bool) {
	if g == nil {
		return Node{}, false
	}
	for _, node := range g.Nodes {
		if node.MachineName == machineName {
			return node, true
		}
	}
	return Node{}, false
}

// CountByKind tallies nodes per component kind.
func (g *Graph) CountByKind() map[component.Kind]int {
	counts := make(map[component.Kind]int)
	if g == nil {
		return counts
	}
	for _, node := range g.Nodes {
		counts[node.Kind]++
	}
	return counts
}
