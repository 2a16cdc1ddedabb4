package ir

import (
	"maps"
	"slices"
)

// TextKey is the object key holding the character data of an xml element
// which has no element children.
const TextKey = "@text"

// Node is a document value. Objects keep their keys in Fields (string
// nodes) and the corresponding values in Values, in insertion order.
// Numbers are integers when Int64 is set and floats when Float64 is set.
//
// Container children link back through Parent, with ParentIndex their
// position and ParentField their key in an object.
type Node struct {
	Type        Type
	Parent      *Node
	ParentIndex int
	ParentField string
	Fields      []*Node
	Values      []*Node

	String  string
	Bool    bool
	Float64 *float64
	Int64   *int64
}

// Clone returns a deep copy of y. The copy keeps y's parent link, its
// descendants link to their copied parents.
func (y *Node) Clone() *Node {
	res := &Node{
		Type:        y.Type,
		Parent:      y.Parent,
		ParentIndex: y.ParentIndex,
		ParentField: y.ParentField,
		String:      y.String,
		Bool:        y.Bool,
	}
	if y.Int64 != nil {
		i := *y.Int64
		res.Int64 = &i
	}
	if y.Float64 != nil {
		f := *y.Float64
		res.Float64 = &f
	}
	res.Fields = cloneChildren(y.Fields, res)
	res.Values = cloneChildren(y.Values, res)
	return res
}

func cloneChildren(ns []*Node, parent *Node) []*Node {
	if ns == nil {
		return nil
	}
	res := make([]*Node, len(ns))
	for i, n := range ns {
		res[i] = n.Clone()
		res[i].Parent = parent
	}
	return res
}

func FromString(v string) *Node {
	return &Node{Type: StringType, String: v}
}

func FromInt(v int64) *Node {
	return &Node{Type: NumberType, Int64: &v}
}

func FromFloat(f float64) *Node {
	return &Node{Type: NumberType, Float64: &f}
}

func FromBool(v bool) *Node {
	return &Node{Type: BoolType, Bool: v}
}

func Null() *Node {
	return &Node{Type: NullType}
}

// IsInt reports whether y is an integer number.
func (y *Node) IsInt() bool {
	return y.Type == NumberType && y.Int64 != nil
}

// IsFloat reports whether y is a floating point number.
func (y *Node) IsFloat() bool {
	return y.Type == NumberType && y.Int64 == nil && y.Float64 != nil
}

type KeyVal struct {
	Key *Node
	Val *Node
}

// KV is shorthand for a string keyed KeyVal.
func KV(key string, val *Node) KeyVal {
	return KeyVal{Key: FromString(key), Val: val}
}

// FromKeyVals builds an object from kvs in order, linking keys and values
// to it.
func FromKeyVals(kvs []KeyVal) *Node {
	return FromKeyValsAt(&Node{}, kvs)
}

// FromKeyValsAt makes res the object holding kvs, keeping res's own parent
// link.
func FromKeyValsAt(res *Node, kvs []KeyVal) *Node {
	res.Type = ObjectType
	res.Fields = make([]*Node, len(kvs))
	res.Values = make([]*Node, len(kvs))
	for i, kv := range kvs {
		for _, n := range []*Node{kv.Key, kv.Val} {
			n.Parent = res
			n.ParentIndex = i
			n.ParentField = kv.Key.String
		}
		res.Fields[i] = kv.Key
		res.Values[i] = kv.Val
	}
	return res
}

// FromMap builds an object from m with keys in sorted order, since Go
// maps carry no order of their own.
func FromMap(m map[string]*Node) *Node {
	kvs := []KeyVal{}
	for _, k := range slices.Sorted(maps.Keys(m)) {
		kvs = append(kvs, KV(k, m[k]))
	}
	return FromKeyVals(kvs)
}

// ToMap indexes the values of object y by key, or returns nil when y is
// not an object.
func ToMap(y *Node) map[string]*Node {
	if y.Type != ObjectType {
		return nil
	}
	res := make(map[string]*Node, len(y.Fields))
	for i, f := range y.Fields {
		res[f.String] = y.Values[i]
	}
	return res
}

func FromSlice(vs []*Node) *Node {
	res := &Node{Type: ArrayType, Values: make([]*Node, len(vs))}
	for i, v := range vs {
		v.Parent = res
		v.ParentIndex = i
		v.ParentField = ""
		res.Values[i] = v
	}
	return res
}

// Get returns the value of field in object y, or nil.
func Get(y *Node, field string) *Node {
	if i := Index(y, field); i != -1 {
		return y.Values[i]
	}
	return nil
}

// Index returns the position of field in object y, or -1.
func Index(y *Node, field string) int {
	for i, f := range y.Fields {
		if f.String == field {
			return i
		}
	}
	return -1
}

// Keys returns the keys of object y in order.
func (y *Node) Keys() []string {
	res := make([]string, len(y.Fields))
	for i, f := range y.Fields {
		res[i] = f.String
	}
	return res
}

// Visit calls f on y before and after its values. Values are only visited
// when the first call returns true.
func (y *Node) Visit(f func(y *Node, isPost bool) (bool, error)) error {
	dive, err := f(y, false)
	if err != nil {
		return err
	}
	if dive {
		for _, v := range y.Values {
			if err := v.Visit(f); err != nil {
				return err
			}
		}
	}
	_, err = f(y, true)
	return err
}

func (y *Node) Root() *Node {
	for y.Parent != nil {
		y = y.Parent
	}
	return y
}
