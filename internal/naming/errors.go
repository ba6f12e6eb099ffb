package naming

import (
	"errors"
	"fmt"
)

// The error kinds form a two-level chain: both specific kinds wrap
// ErrNameValidation, so errors.Is(err, ErrNameValidation) holds for every
// failure this package produces while the specific kind stays checkable.
var (
	// ErrNameValidation is the generic kind, reported on its own when the
	// input has a categorically wrong shape (e.g. an absolute path passed
	// where a relative sub-namespace is required).
	ErrNameValidation = errors.New("name validation failed")

	// ErrInvalidNodeName reports a local node name that fails the token
	// grammar.
	ErrInvalidNodeName = fmt.Errorf("%w: invalid node name", ErrNameValidation)

	// ErrInvalidNamespace reports a namespace or sub-namespace whose content
	// fails the grammar: bad characters, an empty segment, a caller-supplied
	// trailing separator, or a segment starting with the reserved '~' prefix.
	ErrInvalidNamespace = fmt.Errorf("%w: invalid namespace", ErrNameValidation)
)
