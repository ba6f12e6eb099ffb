package naming

import (
	"fmt"
	"strings"
)

// Identity is the validated, immutable identity of a graph-visible node: a
// local name plus a canonical absolute namespace. The fully-qualified name
// is derived once at construction and cached.
type Identity struct {
	name      string
	namespace string
	fqn       string
}

// IdentityOption configures identity construction.
type IdentityOption func(*identityOptions)

type identityOptions struct {
	namespaceOverride *string
}

// WithNamespaceOverride supplies an externally remapped namespace. When
// present it supersedes the namespace argument entirely, as if the user had
// passed it as the namespace directly.
func WithNamespaceOverride(ns string) IdentityOption {
	return func(o *identityOptions) {
		o.namespaceOverride = &ns
	}
}

// NewIdentity validates a raw name and namespace and returns the constructed
// identity. The name is checked first, so a bad name is reported even when
// the namespace is also malformed. No partially validated identity is ever
// returned.
func NewIdentity(name, namespace string, opts ...IdentityOption) (*Identity, error) {
	var o identityOptions
	for _, opt := range opts {
		opt(&o)
	}

	if err := ValidateToken(name); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidNodeName, err)
	}

	rawNS := namespace
	if o.namespaceOverride != nil {
		rawNS = *o.namespaceOverride
	}
	ns, err := NormalizeNamespace(rawNS)
	if err != nil {
		return nil, err
	}

	return &Identity{
		name:      name,
		namespace: ns,
		fqn:       joinAbsolute(ns, name),
	}, nil
}

// joinAbsolute appends a relative path to a canonical absolute namespace
// without doubling the separator at root.
func joinAbsolute(ns, rel string) string {
	if ns == Separator {
		return Separator + rel
	}
	return ns + Separator + rel
}

// Name returns the local name.
func (id *Identity) Name() string { return id.name }

// Namespace returns the canonical absolute namespace.
func (id *Identity) Namespace() string { return id.namespace }

// FullyQualifiedName returns the graph-global address of the node: the
// namespace joined with the local name. It always starts with exactly one
// separator and contains no doubled separators.
func (id *Identity) FullyQualifiedName() string { return id.fqn }

// LoggerName maps the fully-qualified name to a dotted logger name: the
// leading separator is stripped and every remaining separator becomes a dot.
func (id *Identity) LoggerName() string {
	return strings.ReplaceAll(id.fqn[1:], Separator, ".")
}

// String implements fmt.Stringer using the fully-qualified name.
func (id *Identity) String() string { return id.fqn }
