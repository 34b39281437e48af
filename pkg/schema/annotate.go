package schema

// ArraySegment marks a traversal through an array level in a variable path.
const ArraySegment = "[]"

// AnnotatePaths fills in missing metadata.variablePath values below root.
// Properties of a field at path x get "x.name" ("name" when x is empty) and
// array items get "x[]". Paths that are already set are kept and used as the
// parent for their own children.
func AnnotatePaths(root *Schema, rootPath string) {
	annotate(root, rootPath)
}

func annotate(node *Schema, path string) {
	if node == nil {
		return
	}
	if node.Metadata == nil {
		node.Metadata = &Metadata{}
	}
	if node.Metadata.VariablePath == nil {
		value := path
		node.Metadata.VariablePath = &value
	}
	current := *node.Metadata.VariablePath

	for _, name := range node.PropertyNames() {
		annotate(node.Properties[name], joinPath(current, name))
	}
	annotate(node.Items, current+ArraySegment)
}

func joinPath(parent, name string) string {
	if parent == "" {
		return name
	}
	return parent + "." + name
}
