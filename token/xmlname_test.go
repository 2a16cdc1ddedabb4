package token

import (
	"errors"
	"testing"
)

func TestIsXMLName(t *testing.T) {
	good := []string{"a", "note", "_x", "a-b", "a.b", "a1", "xs:element", "xmlns:foo", "héllo"}
	bad := []string{"", "1a", "-a", "a b", "@text", "a:b:c", ":a", "a:", "a/b", "<a>"}
	for _, v := range good {
		if !IsXMLName(v) {
			t.Errorf("%q should be a valid name", v)
		}
	}
	for _, v := range bad {
		if IsXMLName(v) {
			t.Errorf("%q should not be a valid name", v)
		}
		if err := CheckXMLName(v); !errors.Is(err, ErrXMLName) {
			t.Errorf("CheckXMLName(%q) = %v", v, err)
		}
	}
}
