package token

import (
	"fmt"
	"unicode"
	"unicode/utf8"
)

// IsXMLName reports whether v can be used as an element or attribute
// name. A single prefix separator ':' is allowed but namespaces are not
// otherwise interpreted.
func IsXMLName(v string) bool {
	if v == "" {
		return false
	}
	colons := 0
	for i, r := range v {
		if r == utf8.RuneError {
			return false
		}
		if r == ':' {
			colons++
			if colons > 1 || i == 0 || i == len(v)-1 {
				return false
			}
			continue
		}
		if i == 0 {
			if !isNameStart(r) {
				return false
			}
			continue
		}
		if !isNameChar(r) {
			return false
		}
	}
	return true
}

// CheckXMLName is IsXMLName returning an error wrapping ErrXMLName.
func CheckXMLName(v string) error {
	if IsXMLName(v) {
		return nil
	}
	return fmt.Errorf("%w: %q", ErrXMLName, v)
}

func isNameStart(r rune) bool {
	return r == '_' || unicode.IsLetter(r)
}

func isNameChar(r rune) bool {
	switch r {
	case '_', '-', '.':
		return true
	}
	return unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.Is(unicode.Mn, r) || unicode.Is(unicode.Mc, r)
}
