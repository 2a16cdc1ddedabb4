package ir

// Type is the kind of value a Node holds.
type Type int

const (
	NullType Type = iota
	NumberType
	StringType
	BoolType
	ObjectType
	ArrayType
)

var typeNames = [...]string{
	NullType:   "null",
	NumberType: "number",
	StringType: "string",
	BoolType:   "bool",
	ObjectType: "object",
	ArrayType:  "array",
}

func (t Type) String() string {
	if t < 0 || int(t) >= len(typeNames) {
		return "<unknown type>"
	}
	return typeNames[t]
}

// IsLeaf reports whether t is a scalar type.
func (t Type) IsLeaf() bool {
	return t != ObjectType && t != ArrayType
}
