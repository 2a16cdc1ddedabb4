package parse

import (
	"github.com/signadot/tony-format/xy/format"
	"github.com/signadot/tony-format/xy/xmlconv"
	"github.com/signadot/tony-format/xy/yamlconv"
)

type parseOpts struct {
	format    format.Format
	formatSet bool
	xml       []xmlconv.LowerOption
	yaml      []yamlconv.LowerOption
}

type ParseOption func(*parseOpts)

func ParseYAML() ParseOption {
	return ParseFormat(format.YAMLFormat)
}
func ParseXML() ParseOption {
	return ParseFormat(format.XMLFormat)
}
func ParseJSON() ParseOption {
	return ParseFormat(format.JSONFormat)
}

// ParseFormat fixes the input format. Without it the format is detected
// from the input.
func ParseFormat(f format.Format) ParseOption {
	return func(o *parseOpts) {
		o.format = f
		o.formatSet = true
	}
}
func ParseXMLOptions(opts ...xmlconv.LowerOption) ParseOption {
	return func(o *parseOpts) { o.xml = append(o.xml, opts...) }
}
func ParseYAMLOptions(opts ...yamlconv.LowerOption) ParseOption {
	return func(o *parseOpts) { o.yaml = append(o.yaml, opts...) }
}

// FormatFromOpts returns the format the options select for d.
func FormatFromOpts(d []byte, opts ...ParseOption) format.Format {
	return newParseOpts(d, opts).format
}

func newParseOpts(d []byte, opts []ParseOption) *parseOpts {
	o := &parseOpts{}
	for _, f := range opts {
		f(o)
	}
	if !o.formatSet {
		o.format = format.Detect(d)
	}
	return o
}
