package ir

import (
	"math"
	"testing"
)

func TestEqual(t *testing.T) {
	obj := func(kvs ...KeyVal) *Node { return FromKeyVals(kvs) }
	arr := func(vs ...*Node) *Node { return FromSlice(vs) }
	tests := []struct {
		name string
		a, b *Node
		want bool
	}{
		{"null", Null(), Null(), true},
		{"null bool", Null(), FromBool(false), false},
		{"bools", FromBool(true), FromBool(true), true},
		{"bools differ", FromBool(true), FromBool(false), false},
		{"strings", FromString("a"), FromString("a"), true},
		{"string number", FromString("1"), FromInt(1), false},
		{"ints", FromInt(1), FromInt(1), true},
		{"int float", FromInt(1), FromFloat(1), false},
		{"floats", FromFloat(1.5), FromFloat(1.5), true},
		{"nan", FromFloat(math.NaN()), FromFloat(math.NaN()), true},
		{"empty arrays", arr(), arr(), true},
		{"array lengths", arr(FromInt(1)), arr(FromInt(1), FromInt(2)), false},
		{"array elements", arr(FromInt(1)), arr(FromInt(2)), false},
		{"empty objects", obj(), obj(), true},
		{"object values", obj(KV("a", FromInt(1))), obj(KV("a", FromInt(2))), false},
		{"object keys", obj(KV("a", FromInt(1))), obj(KV("b", FromInt(1))), false},
		{"object key order",
			obj(KV("a", FromInt(1)), KV("b", FromInt(2))),
			obj(KV("b", FromInt(2)), KV("a", FromInt(1))),
			false},
		{"nested",
			obj(KV("a", arr(obj(KV(TextKey, FromString("x")))))),
			obj(KV("a", arr(obj(KV(TextKey, FromString("x")))))),
			true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Equal(tt.a, tt.b); got != tt.want {
				t.Errorf("Equal(a, b) = %t, want %t", got, tt.want)
			}
			if got := Equal(tt.b, tt.a); got != tt.want {
				t.Errorf("Equal(b, a) = %t, want %t", got, tt.want)
			}
		})
	}
	if Equal(nil, Null()) {
		t.Error("nil should not equal null")
	}
}
