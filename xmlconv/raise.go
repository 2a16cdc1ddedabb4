package xmlconv

import (
	"bytes"
	"fmt"
	"io"

	"github.com/signadot/tony-format/xy/ir"
	"github.com/signadot/tony-format/xy/token"
	"github.com/signadot/tony-format/xy/xmltree"
)

// Encode raises node and writes it as an xml document. Nothing is written
// to w when raising fails.
func Encode(node *ir.Node, w io.Writer, opts ...RaiseOption) error {
	o := newRaiseOpts(opts)
	root, err := raise(node, o)
	if err != nil {
		return err
	}
	return root.Encode(w, xmltree.Indent(o.prefix, o.indent))
}

// EncodeString is Encode to a string.
func EncodeString(node *ir.Node, opts ...RaiseOption) (string, error) {
	buf := bytes.NewBuffer(nil)
	if err := Encode(node, buf, opts...); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// Raise converts node, an object with exactly one key, to an element tree
// rooted at an element named by that key.
//
// Within an object, ir.TextKey becomes the character data of the
// enclosing element, arrays become repeated sibling elements and any
// other key becomes a child element.
func Raise(node *ir.Node, opts ...RaiseOption) (*xmltree.Element, error) {
	return raise(node, newRaiseOpts(opts))
}

func raise(node *ir.Node, o *raiseOpts) (*xmltree.Element, error) {
	if node.Type != ir.ObjectType {
		return nil, fmt.Errorf("%w: xml document must be an object with one key, got %s", ir.ErrStructure, node.Type)
	}
	if len(node.Fields) != 1 {
		return nil, fmt.Errorf("%w: xml document must have exactly one root, got %d keys", ir.ErrStructure, len(node.Fields))
	}
	name := node.Fields[0].String
	val := node.Values[0]
	if val.Type == ir.ArrayType {
		return nil, fmt.Errorf("%w: root %q is an array, which would give %d roots", ir.ErrStructure, name, len(val.Values))
	}
	return raiseElement(name, val, ir.FieldPath("$", name), 1, o)
}

func raiseElement(name string, v *ir.Node, path string, depth int, o *raiseOpts) (*xmltree.Element, error) {
	if depth > o.maxDepth {
		return nil, fmt.Errorf("%w: %s", ir.ErrDepth, path)
	}
	if err := token.CheckXMLName(name); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ir.ErrStructure, path, err)
	}
	el := xmltree.New(name)
	switch v.Type {
	case ir.ObjectType:
		if err := fill(el, v, path, depth, o); err != nil {
			return nil, err
		}
	case ir.ArrayType:
		return nil, fmt.Errorf("%w: %s: array where an element is required", ir.ErrType, path)
	default:
		text, ok := ir.ScalarText(v)
		if !ok {
			return nil, fmt.Errorf("%w: %s: no text for %s", ir.ErrType, path, v.Type)
		}
		el.Text = text
	}
	return el, nil
}

func fill(el *xmltree.Element, obj *ir.Node, path string, depth int, o *raiseOpts) error {
	for i, f := range obj.Fields {
		key := f.String
		val := obj.Values[i]
		kPath := ir.FieldPath(path, key)
		if key == ir.TextKey {
			text, ok := ir.ScalarText(val)
			if !ok {
				return fmt.Errorf("%w: %s: text must be a scalar, got %s", ir.ErrType, kPath, val.Type)
			}
			el.Text = text
			continue
		}
		if o.attrScalars && val.Type.IsLeaf() {
			if err := token.CheckXMLName(key); err != nil {
				return fmt.Errorf("%w: %s: %w", ir.ErrStructure, kPath, err)
			}
			text, ok := ir.ScalarText(val)
			if !ok {
				return fmt.Errorf("%w: %s: no text for %s", ir.ErrType, kPath, val.Type)
			}
			el.SetAttr(key, text)
			continue
		}
		if val.Type != ir.ArrayType {
			c, err := raiseElement(key, val, kPath, depth+1, o)
			if err != nil {
				return err
			}
			el.AddChild(c)
			continue
		}
		for j, elt := range val.Values {
			ePath := ir.IndexPath(kPath, j)
			if elt.Type == ir.ArrayType {
				return fmt.Errorf("%w: %s: nested array has no xml form", ir.ErrType, ePath)
			}
			c, err := raiseElement(key, elt, ePath, depth+1, o)
			if err != nil {
				return err
			}
			el.AddChild(c)
		}
	}
	return nil
}
