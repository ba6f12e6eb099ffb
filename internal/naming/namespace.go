package naming

import (
	"fmt"
	"strings"
)

const (
	// Separator delimits namespace segments.
	Separator = "/"

	// privatePrefix is reserved for private-namespace resolution and may not
	// begin a sub-namespace segment.
	privatePrefix = "~"
)

// NormalizeNamespace turns a raw namespace string into its canonical
// absolute form and validates every segment.
//
// The empty string normalizes to the root namespace "/". A missing leading
// separator is prepended, so "ns" and "/ns" normalize identically. A
// caller-supplied trailing separator is always an error and is never
// silently stripped. Normalization is idempotent.
func NormalizeNamespace(raw string) (string, error) {
	if raw == "" {
		return Separator, nil
	}
	if !strings.HasPrefix(raw, Separator) {
		raw = Separator + raw
	}
	if raw == Separator {
		return Separator, nil
	}
	if strings.HasSuffix(raw, Separator) {
		return "", fmt.Errorf("%w: %q must not end with %q", ErrInvalidNamespace, raw, Separator)
	}
	segments := strings.Split(raw[1:], Separator)
	for _, seg := range segments {
		if seg == "" {
			return "", fmt.Errorf("%w: %q contains an empty segment", ErrInvalidNamespace, raw)
		}
		if err := ValidateToken(seg); err != nil {
			return "", fmt.Errorf("%w: segment %q of %q: %v", ErrInvalidNamespace, seg, raw, err)
		}
	}
	return Separator + strings.Join(segments, Separator), nil
}

// validateRelative checks a relative sub-namespace path: per-segment token
// grammar plus the reserved-prefix rule. The caller has already rejected
// absolute input, so a leading separator cannot appear here.
func validateRelative(raw string) error {
	if raw == "" {
		return fmt.Errorf("%w: sub-namespace cannot be empty", ErrInvalidNamespace)
	}
	for _, seg := range strings.Split(raw, Separator) {
		if seg == "" {
			return fmt.Errorf("%w: %q contains an empty segment", ErrInvalidNamespace, raw)
		}
		if strings.HasPrefix(seg, privatePrefix) {
			return fmt.Errorf("%w: segment %q of %q must not start with %q", ErrInvalidNamespace, seg, raw, privatePrefix)
		}
		if err := ValidateToken(seg); err != nil {
			return fmt.Errorf("%w: segment %q of %q: %v", ErrInvalidNamespace, seg, raw, err)
		}
	}
	return nil
}
