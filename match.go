package xy

import (
	"github.com/signadot/tony-format/xy/ir"
)

type MatchConfig struct {
	Text bool
}

type MatchOpt func(*MatchConfig)

// MatchText compares scalars by their text, and lets a scalar in the match
// stand for an object holding it under ir.TextKey, so that plain values
// match documents lowered from xml.
func MatchText(v bool) MatchOpt {
	return func(c *MatchConfig) { c.Text = v }
}

// Match reports whether doc contains match: objects match when every key
// of match is present in doc with a matching value, arrays match element
// by element, null matches anything and other scalars must be equal.
func Match(doc, match *ir.Node, opts ...MatchOpt) bool {
	cfg := &MatchConfig{}
	for _, o := range opts {
		o(cfg)
	}
	return matchNode(doc, match, cfg)
}

func matchNode(doc, match *ir.Node, cfg *MatchConfig) bool {
	if match.Type == ir.NullType {
		return true
	}
	if cfg.Text && match.Type.IsLeaf() {
		mt, _ := ir.ScalarText(match)
		dt, ok := ir.Text(doc)
		return ok && dt == mt
	}
	if doc.Type != match.Type {
		return false
	}
	switch match.Type {
	case ir.ObjectType:
		return matchObj(doc, match, cfg)
	case ir.ArrayType:
		return matchArray(doc, match, cfg)
	case ir.StringType:
		return doc.String == match.String
	case ir.BoolType:
		return doc.Bool == match.Bool
	case ir.NumberType:
		if (doc.Int64 == nil) != (match.Int64 == nil) {
			return false
		}
		if doc.Int64 != nil {
			return *doc.Int64 == *match.Int64
		}
		if doc.Float64 != nil && match.Float64 != nil {
			return *doc.Float64 == *match.Float64
		}
	}
	return false
}

func matchObj(doc, match *ir.Node, cfg *MatchConfig) bool {
	for i, field := range match.Fields {
		dv := ir.Get(doc, field.String)
		if dv == nil {
			return false
		}
		if !matchNode(dv, match.Values[i], cfg) {
			return false
		}
	}
	return true
}

func matchArray(doc, match *ir.Node, cfg *MatchConfig) bool {
	if len(doc.Values) != len(match.Values) {
		return false
	}
	for i := range doc.Values {
		if !matchNode(doc.Values[i], match.Values[i], cfg) {
			return false
		}
	}
	return true
}

// Trim filters a document to only include fields/values that are present
// in the match, keeping the document's key order.
func Trim(match, doc *ir.Node, opts ...MatchOpt) *ir.Node {
	cfg := &MatchConfig{}
	for _, o := range opts {
		o(cfg)
	}
	return trim(match, doc, cfg)
}

func trim(match, doc *ir.Node, cfg *MatchConfig) *ir.Node {
	switch {
	case match.Type == ir.ObjectType && doc.Type == ir.ObjectType:
		kvs := []ir.KeyVal{}
		for i, field := range doc.Fields {
			matchVal := ir.Get(match, field.String)
			if matchVal == nil {
				continue
			}
			kvs = append(kvs, ir.KV(field.String, trim(matchVal, doc.Values[i], cfg)))
		}
		return ir.FromKeyVals(kvs)
	case match.Type == ir.ArrayType && doc.Type == ir.ArrayType:
		// each match element takes the first unused doc element it matches
		var res []*ir.Node
		used := make([]bool, len(doc.Values))
		for _, matchElem := range match.Values {
			for i, docElem := range doc.Values {
				if used[i] || !matchNode(docElem, matchElem, cfg) {
					continue
				}
				res = append(res, trim(matchElem, docElem, cfg))
				used[i] = true
				break
			}
		}
		return ir.FromSlice(res)
	default:
		return doc.Clone()
	}
}
