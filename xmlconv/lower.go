package xmlconv

import (
	"fmt"
	"strings"

	"github.com/signadot/tony-format/xy/debug"
	"github.com/signadot/tony-format/xy/ir"
	"github.com/signadot/tony-format/xy/xmltree"
)

// Decode parses an xml document and lowers it.
func Decode(d []byte, opts ...LowerOption) (*ir.Node, error) {
	o := newLowerOpts(opts)
	root, err := xmltree.Parse(d, xmltree.MaxDepth(o.maxDepth))
	if err != nil {
		return nil, err
	}
	return lower(root, o)
}

// Lower converts an element tree to an object with a single key, the
// root's name.
//
// Children are grouped by name in order of first occurrence. A name that
// occurs once maps to the lowered child, a name that occurs more than once
// maps to an array of the lowered children in document order. A leaf
// element lowers to an object holding its text under ir.TextKey. The
// attributes of an element follow as string valued keys.
func Lower(root *xmltree.Element, opts ...LowerOption) (*ir.Node, error) {
	return lower(root, newLowerOpts(opts))
}

func lower(root *xmltree.Element, o *lowerOpts) (*ir.Node, error) {
	val, err := lowerElement(root, ir.FieldPath("$", root.Name), 1, o)
	if err != nil {
		return nil, err
	}
	res := ir.FromKeyVals([]ir.KeyVal{ir.KV(root.Name, val)})
	if debug.XML() {
		debug.Logf("lowered xml:\n%v\n", res)
	}
	return res, nil
}

type group struct {
	name  string
	elems []*xmltree.Element
}

func groupChildren(e *xmltree.Element) []*group {
	var (
		res   []*group
		index = map[string]*group{}
	)
	for _, c := range e.Children {
		g := index[c.Name]
		if g == nil {
			g = &group{name: c.Name}
			index[c.Name] = g
			res = append(res, g)
		}
		g.elems = append(g.elems, c)
	}
	return res
}

func lowerElement(e *xmltree.Element, path string, depth int, o *lowerOpts) (*ir.Node, error) {
	if depth > o.maxDepth {
		return nil, fmt.Errorf("%w: %s", ir.ErrDepth, path)
	}
	kvs := []ir.KeyVal{}
	if e.IsLeaf() {
		text := e.Text
		if o.trimText {
			text = strings.TrimSpace(text)
		}
		kvs = append(kvs, ir.KV(ir.TextKey, o.scalar(text)))
	} else {
		for _, g := range groupChildren(e) {
			gPath := ir.FieldPath(path, g.name)
			if len(g.elems) == 1 {
				v, err := lowerElement(g.elems[0], gPath, depth+1, o)
				if err != nil {
					return nil, err
				}
				kvs = append(kvs, ir.KV(g.name, v))
				continue
			}
			vals := make([]*ir.Node, len(g.elems))
			for i, c := range g.elems {
				v, err := lowerElement(c, ir.IndexPath(gPath, i), depth+1, o)
				if err != nil {
					return nil, err
				}
				vals[i] = v
			}
			kvs = append(kvs, ir.KV(g.name, ir.FromSlice(vals)))
		}
	}
	for _, a := range e.Attrs {
		v := o.scalar(a.Value)
		i := indexKV(kvs, a.Name)
		if i == -1 {
			kvs = append(kvs, ir.KV(a.Name, v))
			continue
		}
		if o.strictAttrs {
			return nil, fmt.Errorf("%w: %s: attribute %q collides with a child element", ir.ErrStructure, path, a.Name)
		}
		kvs[i].Val = v
	}
	return ir.FromKeyVals(kvs), nil
}

func indexKV(kvs []ir.KeyVal, key string) int {
	for i := range kvs {
		if kvs[i].Key.String == key {
			return i
		}
	}
	return -1
}

func (o *lowerOpts) scalar(raw string) *ir.Node {
	if o.inferScalars {
		return ir.InferScalar(raw)
	}
	return ir.FromString(raw)
}
