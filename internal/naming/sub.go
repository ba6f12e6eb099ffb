package naming

import (
	"fmt"
	"strings"
)

// SubIdentity extends a node's identity with a relative sub-namespace used
// to scope auxiliary resources under the node. It shares the root identity's
// name, namespace, and fully-qualified name at any chaining depth; only the
// sub-namespace grows.
type SubIdentity struct {
	base         *Identity
	subNamespace string
}

// Sub composes a sub-identity from a plain identity. The segment must be a
// relative namespace-shaped path: an absolute-looking segment (leading
// separator) is the categorically wrong kind of input and is rejected with
// the generic ErrNameValidation before any grammar check; a relative but
// malformed segment is rejected with ErrInvalidNamespace.
func (id *Identity) Sub(segment string) (*SubIdentity, error) {
	if err := checkRelativeShape(segment); err != nil {
		return nil, err
	}
	return &SubIdentity{base: id, subNamespace: segment}, nil
}

// Sub composes a deeper sub-identity. The parent's already-validated
// sub-namespace is concatenated verbatim; only the new segment is validated.
func (s *SubIdentity) Sub(segment string) (*SubIdentity, error) {
	if err := checkRelativeShape(segment); err != nil {
		return nil, err
	}
	return &SubIdentity{
		base:         s.base,
		subNamespace: s.subNamespace + Separator + segment,
	}, nil
}

func checkRelativeShape(segment string) error {
	if strings.HasPrefix(segment, Separator) {
		return fmt.Errorf("%w: sub-namespace %q must be relative, not start with %q", ErrNameValidation, segment, Separator)
	}
	return validateRelative(segment)
}

// Name returns the root identity's local name.
func (s *SubIdentity) Name() string { return s.base.Name() }

// Namespace returns the root identity's canonical namespace.
func (s *SubIdentity) Namespace() string { return s.base.Namespace() }

// FullyQualifiedName returns the root identity's graph-global address; a
// sub-identity is not a separate graph entity.
func (s *SubIdentity) FullyQualifiedName() string { return s.base.FullyQualifiedName() }

// LoggerName returns the root identity's dotted logger name.
func (s *SubIdentity) LoggerName() string { return s.base.LoggerName() }

// SubNamespace returns the accumulated relative sub-namespace.
func (s *SubIdentity) SubNamespace() string { return s.subNamespace }

// EffectiveNamespace returns the namespace seen by resources owned through
// this sub-identity: the root namespace extended with the sub-namespace.
func (s *SubIdentity) EffectiveNamespace() string {
	return joinAbsolute(s.base.Namespace(), s.subNamespace)
}
