/*
Package naming implements the node identity and namespace-resolution engine
for the mesh.

Every addressable node has a short local name and lives inside a hierarchical
slash-delimited namespace. This package validates both against a strict
grammar, normalizes namespaces into a canonical absolute form, derives the
fully-qualified name used for graph addressing and logging, and composes
sub-identities that extend a node with a relative sub-namespace without
creating a second graph-visible entity.

All operations are synchronous and pure. Identity and SubIdentity values are
immutable after construction and may be shared freely without
synchronization.
*/
package naming
