package xy

import (
	"fmt"

	"github.com/signadot/tony-format/xy/debug"
	"github.com/signadot/tony-format/xy/ir"

	jsonpatch "github.com/evanphx/json-patch"
)

// Patch applies an RFC 6902 json patch to doc. Objects of doc keep their
// key order in the result; keys the patch adds come after the existing
// ones.
func Patch(doc *ir.Node, patch []byte) (*ir.Node, error) {
	ops, err := jsonpatch.DecodePatch(patch)
	if err != nil {
		return nil, fmt.Errorf("%w: json patch: %w", ir.ErrParse, err)
	}
	d, err := doc.MarshalJSON()
	if err != nil {
		return nil, err
	}
	out, err := ops.Apply(d)
	if err != nil {
		return nil, fmt.Errorf("applying json patch at %s: %w", doc.Path(), err)
	}
	return patched(doc, out)
}

// MergePatch applies an RFC 7386 merge patch to doc.
func MergePatch(doc, patch *ir.Node) (*ir.Node, error) {
	d, err := doc.MarshalJSON()
	if err != nil {
		return nil, err
	}
	p, err := patch.MarshalJSON()
	if err != nil {
		return nil, err
	}
	out, err := jsonpatch.MergePatch(d, p)
	if err != nil {
		return nil, fmt.Errorf("applying merge patch: %w", err)
	}
	return patched(doc, out)
}

func patched(doc *ir.Node, out []byte) (*ir.Node, error) {
	res, err := ir.FromJSON(out)
	if err != nil {
		return nil, err
	}
	keepOrder(doc, res)
	if debug.Patch() {
		debug.Logf("patched %s\n%v\n", doc.Path(), res)
	}
	return res, nil
}

// keepOrder rearranges the keys of objects in out which have a
// counterpart in orig to follow orig's order.
func keepOrder(orig, out *ir.Node) {
	if orig.Type != out.Type {
		return
	}
	switch out.Type {
	case ir.ArrayType:
		for i := range min(len(orig.Values), len(out.Values)) {
			keepOrder(orig.Values[i], out.Values[i])
		}
	case ir.ObjectType:
		kvs := make([]ir.KeyVal, 0, len(out.Fields))
		used := make([]bool, len(out.Fields))
		for i, f := range orig.Fields {
			j := ir.Index(out, f.String)
			if j == -1 {
				continue
			}
			keepOrder(orig.Values[i], out.Values[j])
			kvs = append(kvs, ir.KeyVal{Key: out.Fields[j], Val: out.Values[j]})
			used[j] = true
		}
		for j := range out.Fields {
			if !used[j] {
				kvs = append(kvs, ir.KeyVal{Key: out.Fields[j], Val: out.Values[j]})
			}
		}
		ir.FromKeyValsAt(out, kvs)
	}
}
