package naming

import "fmt"

// isTokenStart reports whether c may begin a token.
func isTokenStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

// isTokenChar reports whether c may appear after the first character.
func isTokenChar(c byte) bool {
	return isTokenStart(c) || (c >= '0' && c <= '9')
}

// ValidateToken checks a single identifier token against the naming grammar:
// non-empty, first character a letter or underscore, every subsequent
// character a letter, digit, or underscore. The same rule applies to the
// node's local name and to every namespace segment.
func ValidateToken(s string) error {
	if s == "" {
		return fmt.Errorf("token cannot be empty")
	}
	if !isTokenStart(s[0]) {
		return fmt.Errorf("token %q must start with a letter or underscore", s)
	}
	for i := 1; i < len(s); i++ {
		if !isTokenChar(s[i]) {
			return fmt.Errorf("token %q contains disallowed character %q", s, s[i])
		}
	}
	return nil
}
