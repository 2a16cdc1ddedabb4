package eval

import (
	"encoding/json"
	"fmt"
	"maps"
	"math"
	"slices"

	"github.com/signadot/tony-format/xy/ir"
)

// ToAny converts node to plain go values: map[string]any, []any, string,
// int, float64, bool and nil.
func ToAny(node *ir.Node) any {
	switch node.Type {
	case ir.ObjectType:
		n := len(node.Fields)
		res := make(map[string]any, n)
		for i := range n {
			res[node.Fields[i].String] = ToAny(node.Values[i])
		}
		return res
	case ir.ArrayType:
		res := make([]any, len(node.Values))
		for i, elt := range node.Values {
			res[i] = ToAny(elt)
		}
		return res
	case ir.StringType:
		return node.String
	case ir.NumberType:
		if node.Int64 != nil {
			return int(*node.Int64)
		}
		if node.Float64 != nil {
			return *node.Float64
		}
		return nil
	case ir.BoolType:
		return node.Bool
	case ir.NullType:
		return nil
	default:
		panic("impossible production")
	}
}

// FromAny converts plain go values to a document value. Map keys are
// sorted. Values of other types go through encoding/json.
func FromAny(v any) (*ir.Node, error) {
	switch x := v.(type) {
	case nil:
		return ir.Null(), nil
	case *ir.Node:
		return x.Clone(), nil
	case []*ir.Node:
		return ir.FromSlice(x), nil
	case map[string]*ir.Node:
		return ir.FromMap(x), nil
	case bool:
		return ir.FromBool(x), nil
	case string:
		return ir.FromString(x), nil
	case int:
		return ir.FromInt(int64(x)), nil
	case int8:
		return ir.FromInt(int64(x)), nil
	case int16:
		return ir.FromInt(int64(x)), nil
	case int32:
		return ir.FromInt(int64(x)), nil
	case int64:
		return ir.FromInt(x), nil
	case uint:
		return fromUint(uint64(x)), nil
	case uint64:
		return fromUint(x), nil
	case uint8:
		return ir.FromInt(int64(x)), nil
	case uint16:
		return ir.FromInt(int64(x)), nil
	case uint32:
		return ir.FromInt(int64(x)), nil
	case float32:
		return ir.FromFloat(float64(x)), nil
	case float64:
		return ir.FromFloat(x), nil
	case json.Number:
		return ir.FromJSON([]byte(x))
	case []any:
		vals := make([]*ir.Node, len(x))
		for i, elt := range x {
			n, err := FromAny(elt)
			if err != nil {
				return nil, fmt.Errorf("[%d]: %w", i, err)
			}
			vals[i] = n
		}
		return ir.FromSlice(vals), nil
	case map[string]any:
		keys := slices.Sorted(maps.Keys(x))
		kvs := make([]ir.KeyVal, len(keys))
		for i, k := range keys {
			n, err := FromAny(x[k])
			if err != nil {
				return nil, fmt.Errorf("%s: %w", k, err)
			}
			kvs[i] = ir.KV(k, n)
		}
		return ir.FromKeyVals(kvs), nil
	case map[any]any:
		m := make(map[string]any, len(x))
		for k, v := range x {
			m[fmt.Sprint(k)] = v
		}
		return FromAny(m)
	}
	d, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("%w: %T: %w", ir.ErrType, v, err)
	}
	return ir.FromJSON(d)
}

func fromUint(u uint64) *ir.Node {
	if u > math.MaxInt64 {
		return ir.FromFloat(float64(u))
	}
	return ir.FromInt(int64(u))
}
