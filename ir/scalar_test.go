package ir

import (
	"testing"
)

func TestInferScalar(t *testing.T) {
	tests := []struct {
		in   string
		want *Node
	}{
		{"42", FromInt(42)},
		{"-1", FromInt(-1)},
		{"3.14", FromFloat(3.14)},
		{"1e3", FromFloat(1000)},
		{"true", FromBool(true)},
		{"false", FromBool(false)},
		{"True", FromString("True")},
		{"hello", FromString("hello")},
		{"", FromString("")},
		{"0x10", FromString("0x10")},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got := InferScalar(tt.in)
			if !Equal(got, tt.want) {
				t.Errorf("InferScalar(%q) = %s %v, want %s", tt.in, got.Type, got, tt.want.Type)
			}
		})
	}
}

func TestScalarText(t *testing.T) {
	tests := []struct {
		in   *Node
		want string
		ok   bool
	}{
		{FromString("x"), "x", true},
		{FromInt(42), "42", true},
		{FromFloat(2), "2.0", true},
		{FromBool(false), "false", true},
		{Null(), "", true},
		{FromSlice(nil), "", false},
		{FromKeyVals(nil), "", false},
	}
	for _, tt := range tests {
		got, ok := ScalarText(tt.in)
		if got != tt.want || ok != tt.ok {
			t.Errorf("ScalarText(%s) = %q, %t want %q, %t", tt.in.Type, got, ok, tt.want, tt.ok)
		}
	}
	leaf := FromKeyVals([]KeyVal{KV(TextKey, FromString("Tove")), KV("lang", FromString("en"))})
	if s, ok := Text(leaf); !ok || s != "Tove" {
		t.Errorf("Text = %q, %t", s, ok)
	}
	if _, ok := Text(FromKeyVals([]KeyVal{KV("a", Null())})); ok {
		t.Errorf("Text of object without @text should fail")
	}
}
