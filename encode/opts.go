package encode

import (
	"github.com/signadot/tony-format/xy/format"
	"github.com/signadot/tony-format/xy/xmlconv"
	"github.com/signadot/tony-format/xy/yamlconv"
)

type EncodeOption func(*EncState)

func EncodeFormat(f format.Format) EncodeOption {
	return func(es *EncState) { es.format = f }
}

// FormatFromOpts extracts the format from encode options.
func FormatFromOpts(opts ...EncodeOption) format.Format {
	es := &EncState{}
	for _, opt := range opts {
		opt(es)
	}
	return es.format
}

// EncodeIndent sets the indentation per nesting level. Yaml and json
// default to 2, xml defaults to no indentation at all. An indent of 0
// gives compact json and xml.
func EncodeIndent(n int) EncodeOption {
	return func(es *EncState) { es.indent = n }
}
func EncodeXMLOptions(opts ...xmlconv.RaiseOption) EncodeOption {
	return func(es *EncState) { es.xml = append(es.xml, opts...) }
}
func EncodeYAMLOptions(opts ...yamlconv.RaiseOption) EncodeOption {
	return func(es *EncState) { es.yaml = append(es.yaml, opts...) }
}
