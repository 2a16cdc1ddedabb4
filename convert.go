package xy

import (
	"bytes"
	"fmt"
	"os"

	"github.com/signadot/tony-format/xy/encode"
	"github.com/signadot/tony-format/xy/format"
	"github.com/signadot/tony-format/xy/ir"
	"github.com/signadot/tony-format/xy/parse"
)

// Convert parses data as from and encodes it as to.
func Convert(data []byte, from, to format.Format) ([]byte, error) {
	node, err := parse.Parse(data, parse.ParseFormat(from))
	if err != nil {
		return nil, err
	}
	buf := bytes.NewBuffer(nil)
	if err := encode.Encode(node, buf, encode.EncodeFormat(to)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func XMLToYAML(data []byte) ([]byte, error) {
	return Convert(data, format.XMLFormat, format.YAMLFormat)
}

func YAMLToXML(data []byte) ([]byte, error) {
	return Convert(data, format.YAMLFormat, format.XMLFormat)
}

func XMLToJSON(data []byte) ([]byte, error) {
	return Convert(data, format.XMLFormat, format.JSONFormat)
}

func YAMLToJSON(data []byte) ([]byte, error) {
	return Convert(data, format.YAMLFormat, format.JSONFormat)
}

// Load reads the file at path in the format named by its extension.
func Load(path string, opts ...parse.ParseOption) (*ir.Node, error) {
	f, err := format.FromPath(path)
	if err != nil {
		return nil, err
	}
	return load(path, f, opts)
}

func LoadXML(path string, opts ...parse.ParseOption) (*ir.Node, error) {
	return load(path, format.XMLFormat, opts)
}

func LoadYAML(path string, opts ...parse.ParseOption) (*ir.Node, error) {
	return load(path, format.YAMLFormat, opts)
}

func load(path string, f format.Format, opts []parse.ParseOption) (*ir.Node, error) {
	d, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	node, err := parse.Parse(d, append([]parse.ParseOption{parse.ParseFormat(f)}, opts...)...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return node, nil
}
