package ir

import "github.com/signadot/tony-format/xy/token"

// InferScalar converts raw scalar text to the most specific value, trying
// in order an integer, a float and a boolean before falling back to a
// string.
func InferScalar(raw string) *Node {
	if i, ok := token.ParseInt(raw); ok {
		return FromInt(i)
	}
	if f, ok := token.ParseFloat(raw); ok {
		return FromFloat(f)
	}
	if b, ok := token.ParseBool(raw); ok {
		return FromBool(b)
	}
	return FromString(raw)
}

// ScalarText renders a leaf value as text: strings as themselves,
// numbers in decimal, booleans as true/false and null as "". The second
// result is false for objects and arrays, which have no textual form.
func ScalarText(y *Node) (string, bool) {
	switch y.Type {
	case StringType:
		return y.String, true
	case NumberType:
		if y.Int64 != nil {
			return token.FormatInt(*y.Int64), true
		}
		if y.Float64 != nil {
			return token.FormatFloat(*y.Float64), true
		}
		return "", false
	case BoolType:
		return token.FormatBool(y.Bool), true
	case NullType:
		return "", true
	default:
		return "", false
	}
}

// Text returns the @text of an object lowered from an xml leaf element,
// or the text of y itself when it is a scalar.
func Text(y *Node) (string, bool) {
	if y.Type == ObjectType {
		t := Get(y, TextKey)
		if t == nil {
			return "", false
		}
		return ScalarText(t)
	}
	return ScalarText(y)
}
