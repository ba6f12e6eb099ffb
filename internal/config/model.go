package config

// Model is the unified, format-agnostic representation of a mesh
// definition: the set of node declarations to hand to the naming engine.
type Model struct {
	Nodes []*NodeDecl
}

// NodeDecl is the format-agnostic representation of a `node` block. The
// fields are the raw, not-yet-validated inputs of identity construction;
// all grammar checking belongs to the naming engine.
type NodeDecl struct {
	// Name is the declared local name.
	Name string
	// Namespace is the declared raw namespace; empty means root.
	Namespace string
	// NamespaceOverride, when non-nil, is a remap-supplied replacement that
	// supersedes Namespace entirely. Nil means no remap was declared.
	NamespaceOverride *string
}
