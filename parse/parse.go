package parse

import (
	"fmt"

	"github.com/signadot/tony-format/xy/format"
	"github.com/signadot/tony-format/xy/ir"
	"github.com/signadot/tony-format/xy/xmlconv"
	"github.com/signadot/tony-format/xy/yamlconv"
)

func Parse(d []byte, opts ...ParseOption) (*ir.Node, error) {
	pOpts := newParseOpts(d, opts)
	switch pOpts.format {
	case format.XMLFormat:
		return xmlconv.Decode(d, pOpts.xml...)
	case format.YAMLFormat:
		return yamlconv.Decode(d, pOpts.yaml...)
	case format.JSONFormat:
		return ir.FromJSON(d)
	default:
		return nil, fmt.Errorf("%w: %d", format.ErrBadFormat, pOpts.format)
	}
}

// ParseAll parses every document in d. Only yaml streams may hold more
// than one.
func ParseAll(d []byte, opts ...ParseOption) ([]*ir.Node, error) {
	pOpts := newParseOpts(d, opts)
	if pOpts.format == format.YAMLFormat {
		return yamlconv.DecodeAll(d, pOpts.yaml...)
	}
	node, err := Parse(d, opts...)
	if err != nil {
		return nil, err
	}
	return []*ir.Node{node}, nil
}
