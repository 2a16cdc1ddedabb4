package encode

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/signadot/tony-format/xy/format"
	"github.com/signadot/tony-format/xy/ir"
	"github.com/signadot/tony-format/xy/xmlconv"
	"github.com/signadot/tony-format/xy/yamlconv"
)

type EncState struct {
	format format.Format
	indent int

	xml  []xmlconv.RaiseOption
	yaml []yamlconv.RaiseOption
}

const defaultIndent = -1

func Encode(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{
		indent: defaultIndent,
	}
	for _, opt := range opts {
		opt(es)
	}
	switch es.format {
	case format.YAMLFormat:
		yOpts := es.yaml
		if es.indent > 0 {
			yOpts = append([]yamlconv.RaiseOption{yamlconv.Indent(es.indent)}, yOpts...)
		}
		return yamlconv.Encode(node, w, yOpts...)
	case format.XMLFormat:
		xOpts := es.xml
		if es.indent > 0 {
			xOpts = append([]xmlconv.RaiseOption{xmlconv.Indent("", strings.Repeat(" ", es.indent))}, xOpts...)
		}
		return xmlconv.Encode(node, w, xOpts...)
	case format.JSONFormat:
		return encodeJSON(node, w, es)
	default:
		return fmt.Errorf("%w: %d", format.ErrBadFormat, es.format)
	}
}

func encodeJSON(node *ir.Node, w io.Writer, es *EncState) error {
	d, err := node.MarshalJSON()
	if err != nil {
		return err
	}
	indent := es.indent
	if indent == defaultIndent {
		indent = 2
	}
	buf := bytes.NewBuffer(nil)
	if indent == 0 {
		buf.Write(d)
	} else if err := json.Indent(buf, d, "", strings.Repeat(" ", indent)); err != nil {
		return err
	}
	buf.WriteByte('\n')
	_, err = w.Write(buf.Bytes())
	return err
}
