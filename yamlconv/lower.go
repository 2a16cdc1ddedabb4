package yamlconv

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/signadot/tony-format/xy/debug"
	"github.com/signadot/tony-format/xy/ir"
	"gopkg.in/yaml.v3"
)

const (
	nullTag = "!!null"
	strTag  = "!!str"

	quotedStyles = yaml.DoubleQuotedStyle | yaml.SingleQuotedStyle | yaml.LiteralStyle | yaml.FoldedStyle
)

// Decode parses a single yaml document and lowers it. An empty input is
// null. Use DecodeAll for streams with more than one document.
func Decode(d []byte, opts ...LowerOption) (*ir.Node, error) {
	docs, err := decodeNodes(d, 2)
	if err != nil {
		return nil, err
	}
	switch len(docs) {
	case 0:
		return ir.Null(), nil
	case 1:
		return Lower(docs[0], opts...)
	default:
		return nil, fmt.Errorf("%w: expected one yaml document, got several", ir.ErrStructure)
	}
}

// DecodeAll lowers every document of a yaml stream.
func DecodeAll(d []byte, opts ...LowerOption) ([]*ir.Node, error) {
	docs, err := decodeNodes(d, -1)
	if err != nil {
		return nil, err
	}
	res := make([]*ir.Node, 0, len(docs))
	for i, doc := range docs {
		n, err := Lower(doc, opts...)
		if err != nil {
			return nil, fmt.Errorf("document %d: %w", i, err)
		}
		res = append(res, n)
	}
	return res, nil
}

// decodeNodes reads at most limit documents, all of them if limit < 0.
func decodeNodes(d []byte, limit int) ([]*yaml.Node, error) {
	dec := yaml.NewDecoder(bytes.NewReader(d))
	var res []*yaml.Node
	for limit < 0 || len(res) < limit {
		doc := &yaml.Node{}
		err := dec.Decode(doc)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ir.ErrParse, err)
		}
		res = append(res, doc)
	}
	return res, nil
}

// Lower converts a yaml node tree to a document value.
//
// Plain scalars are typed by trying an integer, a float and a boolean in
// that order, falling back to a string. Aliases are expanded, up to a
// budget of values set by LowerMaxAliasNodes.
func Lower(node *yaml.Node, opts ...LowerOption) (*ir.Node, error) {
	o := newLowerOpts(opts)
	res, err := lower(node, "$", 0, o)
	if err != nil {
		return nil, err
	}
	if debug.YAML() {
		debug.Logf("lowered yaml:\n%v\n", res)
	}
	return res, nil
}

func lower(node *yaml.Node, path string, depth int, o *lowerOpts) (*ir.Node, error) {
	if depth > o.maxDepth {
		return nil, fmt.Errorf("%w: %s", ir.ErrDepth, path)
	}
	if o.inAlias > 0 {
		o.aliasNodes++
		if o.aliasNodes > o.maxAliasNodes {
			return nil, fmt.Errorf("%w: %s: alias expansion exceeds %d values", ir.ErrStructure, path, o.maxAliasNodes)
		}
	}
	if node == nil {
		return ir.Null(), nil
	}
	switch node.Kind {
	case 0:
		return ir.Null(), nil
	case yaml.DocumentNode:
		if len(node.Content) == 0 {
			return ir.Null(), nil
		}
		return lower(node.Content[0], path, depth, o)
	case yaml.AliasNode:
		o.inAlias++
		defer func() { o.inAlias-- }()
		return lower(node.Alias, path, depth+1, o)
	case yaml.ScalarNode:
		return lowerScalar(node, o), nil
	case yaml.SequenceNode:
		vals := make([]*ir.Node, len(node.Content))
		for i, c := range node.Content {
			v, err := lower(c, ir.IndexPath(path, i), depth+1, o)
			if err != nil {
				return nil, err
			}
			vals[i] = v
		}
		return ir.FromSlice(vals), nil
	case yaml.MappingNode:
		return lowerMapping(node, path, depth, o)
	default:
		return nil, fmt.Errorf("%w: %s: unknown yaml node kind %d", ir.ErrType, path, node.Kind)
	}
}

func lowerScalar(node *yaml.Node, o *lowerOpts) *ir.Node {
	tag := node.ShortTag()
	if tag == nullTag {
		return ir.Null()
	}
	if !o.inferQuoted {
		if node.Style&quotedStyles != 0 {
			return ir.FromString(node.Value)
		}
		if node.Style&yaml.TaggedStyle != 0 && tag == strTag {
			return ir.FromString(node.Value)
		}
	}
	return ir.InferScalar(node.Value)
}

func lowerMapping(node *yaml.Node, path string, depth int, o *lowerOpts) (*ir.Node, error) {
	if len(node.Content)%2 != 0 {
		return nil, fmt.Errorf("%w: %s: mapping with odd content", ir.ErrParse, path)
	}
	n := len(node.Content) / 2
	kvs := make([]ir.KeyVal, 0, n)
	seen := make(map[string]bool, n)
	for i := 0; i < len(node.Content); i += 2 {
		k := node.Content[i]
		for k.Kind == yaml.AliasNode && k.Alias != nil {
			k = k.Alias
		}
		if k.Kind != yaml.ScalarNode {
			return nil, fmt.Errorf("%w: %s: mapping key at line %d is not a scalar", ir.ErrType, path, k.Line)
		}
		key := k.Value
		if seen[key] {
			return nil, fmt.Errorf("%w: %s: duplicate key %q at line %d", ir.ErrStructure, path, key, k.Line)
		}
		seen[key] = true
		v, err := lower(node.Content[i+1], ir.FieldPath(path, key), depth+1, o)
		if err != nil {
			return nil, err
		}
		kvs = append(kvs, ir.KV(key, v))
	}
	return ir.FromKeyVals(kvs), nil
}
