package xmltree

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/signadot/tony-format/xy/debug"
	"github.com/signadot/tony-format/xy/ir"
	"github.com/signadot/tony-format/xy/token"
)

var utf8BOM = []byte("\xef\xbb\xbf")

// Parse reads an xml document with exactly one root element.
//
// Comments, processing instructions and directives are skipped. Character
// data of elements with element children is dropped; a leaf keeps all of
// its character data, CDATA sections included, unmodified. A leading utf-8
// byte order mark is ignored.
func Parse(d []byte, opts ...ParseOption) (*Element, error) {
	o := newParseOpts(opts)
	d = bytes.TrimPrefix(d, utf8BOM)
	pd := token.NewPosDoc(d)
	dec := xml.NewDecoder(bytes.NewReader(d))
	dec.Strict = true

	var (
		root  *Element
		stack []*Element
		text  []*strings.Builder
	)
	for {
		off := int(dec.InputOffset())
		tok, err := dec.RawToken()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ir.ErrParse, err)
		}
		switch x := tok.(type) {
		case xml.StartElement:
			if len(stack) == 0 && root != nil {
				return nil, fmt.Errorf("%w: <%s> %s", ErrMultipleRoots, rawName(x.Name), pd.Pos(off))
			}
			if len(stack) >= o.maxDepth {
				return nil, fmt.Errorf("%w: xml element <%s> %s", ir.ErrDepth, rawName(x.Name), pd.Pos(off))
			}
			el := &Element{Name: rawName(x.Name)}
			for _, a := range x.Attr {
				name := rawName(a.Name)
				if _, present := el.Attr(name); present {
					return nil, fmt.Errorf("%w: %q on <%s> %s", ErrDuplicateAttr, name, el.Name, pd.Pos(off))
				}
				el.Attrs = append(el.Attrs, Attr{Name: name, Value: a.Value})
			}
			if len(stack) == 0 {
				root = el
			} else {
				stack[len(stack)-1].AddChild(el)
			}
			stack = append(stack, el)
			text = append(text, &strings.Builder{})
		case xml.EndElement:
			name := rawName(x.Name)
			if len(stack) == 0 {
				return nil, fmt.Errorf("%w: </%s> %s", ErrMismatch, name, pd.Pos(off))
			}
			top := stack[len(stack)-1]
			if top.Name != name {
				return nil, fmt.Errorf("%w: <%s> closed by </%s> %s", ErrMismatch, top.Name, name, pd.Pos(off))
			}
			if top.IsLeaf() {
				top.Text = text[len(text)-1].String()
			}
			stack = stack[:len(stack)-1]
			text = text[:len(text)-1]
		case xml.CharData:
			if len(stack) == 0 {
				if len(bytes.TrimSpace(x)) != 0 {
					return nil, fmt.Errorf("%w: character data outside root element %s", ir.ErrParse, pd.Pos(off))
				}
				continue
			}
			text[len(text)-1].Write(x)
		}
	}
	if len(stack) != 0 {
		return nil, fmt.Errorf("%w: <%s> %s", ErrUnclosed, stack[len(stack)-1].Name, pd.Pos(len(d)))
	}
	if root == nil {
		return nil, ErrNoRoot
	}
	if debug.XML() {
		debug.Logf("parsed xml root <%s> depth %d\n", root.Name, root.Depth())
	}
	return root, nil
}

func rawName(n xml.Name) string {
	if n.Space == "" {
		return n.Local
	}
	return n.Space + ":" + n.Local
}
