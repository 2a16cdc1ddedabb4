package xmltree

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"

	"github.com/signadot/tony-format/xy/ir"
	"github.com/signadot/tony-format/xy/token"
)

// Declaration is written before the root element.
const Declaration = `<?xml version="1.0" encoding="utf-8"?>`

// Encode writes e as an xml document: the declaration, e and a final
// newline. Nothing is written to w if e cannot be encoded.
func (e *Element) Encode(w io.Writer, opts ...EncodeOption) error {
	o := newEncOpts(opts)
	buf := bytes.NewBuffer(nil)
	if o.header {
		buf.WriteString(Declaration)
		buf.WriteByte('\n')
	}
	enc := xml.NewEncoder(buf)
	enc.Indent(o.prefix, o.indent)
	if err := encodeElement(enc, e); err != nil {
		return err
	}
	if err := enc.Flush(); err != nil {
		return err
	}
	buf.WriteByte('\n')
	_, err := w.Write(buf.Bytes())
	return err
}

// String returns the encoding of e without the declaration.
func (e *Element) String() string {
	buf := bytes.NewBuffer(nil)
	if err := e.Encode(buf, Header(false)); err != nil {
		return fmt.Sprintf("<!-- %s -->", err)
	}
	return string(bytes.TrimSuffix(buf.Bytes(), []byte{'\n'}))
}

func encodeElement(enc *xml.Encoder, e *Element) error {
	if err := token.CheckXMLName(e.Name); err != nil {
		return fmt.Errorf("%w: element: %w", ir.ErrStructure, err)
	}
	start := xml.StartElement{Name: xml.Name{Local: e.Name}}
	for _, a := range e.Attrs {
		if err := token.CheckXMLName(a.Name); err != nil {
			return fmt.Errorf("%w: attribute of <%s>: %w", ir.ErrStructure, e.Name, err)
		}
		start.Attr = append(start.Attr, xml.Attr{Name: xml.Name{Local: a.Name}, Value: a.Value})
	}
	if err := enc.EncodeToken(start); err != nil {
		return err
	}
	if e.Text != "" {
		if err := enc.EncodeToken(xml.CharData(e.Text)); err != nil {
			return err
		}
	}
	for _, c := range e.Children {
		if err := encodeElement(enc, c); err != nil {
			return err
		}
	}
	return enc.EncodeToken(start.End())
}
