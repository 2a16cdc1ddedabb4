package yamlconv

import (
	"bytes"
	"fmt"
	"io"

	"github.com/signadot/tony-format/xy/ir"
	"github.com/signadot/tony-format/xy/token"
	"gopkg.in/yaml.v3"
)

// Encode raises node and writes it as a yaml document. Nothing is
// written to w when raising fails.
func Encode(node *ir.Node, w io.Writer, opts ...RaiseOption) error {
	o := newRaiseOpts(opts)
	yn, err := raise(node, "$", 0, o)
	if err != nil {
		return err
	}
	buf := bytes.NewBuffer(nil)
	enc := yaml.NewEncoder(buf)
	enc.SetIndent(o.indent)
	if err := enc.Encode(yn); err != nil {
		return err
	}
	if err := enc.Close(); err != nil {
		return err
	}
	_, err = w.Write(buf.Bytes())
	return err
}

// EncodeString is Encode to a string.
func EncodeString(node *ir.Node, opts ...RaiseOption) (string, error) {
	buf := bytes.NewBuffer(nil)
	if err := Encode(node, buf, opts...); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// Raise converts a document value to a yaml node tree.
//
// An object whose only key is ir.TextKey is replaced by the value of that
// key. Otherwise objects become mappings with keys in order.
func Raise(node *ir.Node, opts ...RaiseOption) (*yaml.Node, error) {
	return raise(node, "$", 0, newRaiseOpts(opts))
}

func raise(node *ir.Node, path string, depth int, o *raiseOpts) (*yaml.Node, error) {
	if depth > o.maxDepth {
		return nil, fmt.Errorf("%w: %s", ir.ErrDepth, path)
	}
	switch node.Type {
	case ir.ObjectType:
		if len(node.Fields) == 1 && node.Fields[0].String == ir.TextKey {
			return raise(node.Values[0], ir.FieldPath(path, ir.TextKey), depth+1, o)
		}
		res := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
		for i, f := range node.Fields {
			v, err := raise(node.Values[i], ir.FieldPath(path, f.String), depth+1, o)
			if err != nil {
				return nil, err
			}
			res.Content = append(res.Content, stringNode(f.String), v)
		}
		return res, nil
	case ir.ArrayType:
		res := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
		for i, v := range node.Values {
			yv, err := raise(v, ir.IndexPath(path, i), depth+1, o)
			if err != nil {
				return nil, err
			}
			res.Content = append(res.Content, yv)
		}
		return res, nil
	case ir.StringType:
		return stringNode(node.String), nil
	case ir.NumberType:
		switch {
		case node.Int64 != nil:
			return scalarNode("!!int", token.FormatInt(*node.Int64)), nil
		case node.Float64 != nil:
			return scalarNode("!!float", token.FormatFloat(*node.Float64)), nil
		default:
			return nil, fmt.Errorf("%w: %s: number without value", ir.ErrType, path)
		}
	case ir.BoolType:
		return scalarNode("!!bool", token.FormatBool(node.Bool)), nil
	case ir.NullType:
		return scalarNode(nullTag, "null"), nil
	default:
		return nil, fmt.Errorf("%w: %s: unknown type %s", ir.ErrType, path, node.Type)
	}
}

func scalarNode(tag, v string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: tag, Value: v}
}

// stringNode quotes v whenever lowering would read it back as something
// other than a string.
func stringNode(v string) *yaml.Node {
	res := scalarNode(strTag, v)
	if ir.InferScalar(v).Type != ir.StringType {
		res.Style = yaml.DoubleQuotedStyle
	}
	return res
}
