package ir

import "math"

// Equal reports whether a and b hold the same value, including the
// integer/float distinction and object key order. NaN equals NaN.
func Equal(a, b *Node) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil || a.Type != b.Type {
		return false
	}
	switch a.Type {
	case NullType:
		return true
	case BoolType:
		return a.Bool == b.Bool
	case StringType:
		return a.String == b.String
	case NumberType:
		return equalNumbers(a, b)
	case ArrayType:
		return equalNodes(a.Values, b.Values)
	case ObjectType:
		return equalNodes(a.Fields, b.Fields) && equalNodes(a.Values, b.Values)
	}
	return false
}

func equalNumbers(a, b *Node) bool {
	switch {
	case a.Int64 != nil || b.Int64 != nil:
		return a.Int64 != nil && b.Int64 != nil && *a.Int64 == *b.Int64
	case a.Float64 != nil && b.Float64 != nil:
		x, y := *a.Float64, *b.Float64
		return x == y || (math.IsNaN(x) && math.IsNaN(y))
	}
	return a.Float64 == nil && b.Float64 == nil
}

func equalNodes(as, bs []*Node) bool {
	if len(as) != len(bs) {
		return false
	}
	for i := range as {
		if !Equal(as[i], bs[i]) {
			return false
		}
	}
	return true
}
