package format

import (
	"bytes"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

type Format int

const (
	YAMLFormat Format = iota
	XMLFormat
	JSONFormat
)

var ErrBadFormat = errors.New("bad format")

func ParseFormat(v string) (Format, error) {
	f, ok := map[string]Format{
		"y":    YAMLFormat,
		"yaml": YAMLFormat,
		"yml":  YAMLFormat,
		"x":    XMLFormat,
		"xml":  XMLFormat,
		"j":    JSONFormat,
		"json": JSONFormat,
	}[strings.ToLower(v)]
	if ok {
		return f, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrBadFormat, v)
}

func (f Format) String() string {
	d, err := f.MarshalText()
	if err != nil {
		return err.Error()
	}
	return string(d)
}

func (f Format) MarshalText() ([]byte, error) {
	switch f {
	case YAMLFormat:
		return []byte("yaml"), nil
	case XMLFormat:
		return []byte("xml"), nil
	case JSONFormat:
		return []byte("json"), nil
	default:
		return nil, fmt.Errorf("<err: %d is not a format>", f)
	}
}

func (f *Format) UnmarshalText(d []byte) error {
	pf, err := ParseFormat(string(d))
	if err != nil {
		return err
	}
	*f = pf
	return nil
}

func (f Format) IsJSON() bool { return f == JSONFormat }
func (f Format) IsXML() bool  { return f == XMLFormat }
func (f Format) IsYAML() bool { return f == YAMLFormat }

// Suffix returns the file extension for this format (including the dot).
func (f Format) Suffix() string {
	switch f {
	case YAMLFormat:
		return ".yaml"
	case XMLFormat:
		return ".xml"
	case JSONFormat:
		return ".json"
	default:
		return ""
	}
}

// FromPath returns the format named by the extension of path.
func FromPath(path string) (Format, error) {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" {
		return 0, fmt.Errorf("%w: no extension in %q", ErrBadFormat, path)
	}
	return ParseFormat(ext)
}

// Detect guesses the format of a document from its first significant
// byte: '<' is xml, '{' or '[' is json and anything else is yaml.
func Detect(d []byte) Format {
	d = bytes.TrimLeft(d, "\ufeff \t\r\n")
	if len(d) == 0 {
		return YAMLFormat
	}
	switch d[0] {
	case '<':
		return XMLFormat
	case '{', '[':
		return JSONFormat
	default:
		return YAMLFormat
	}
}

// AllFormats returns all supported formats in preference order.
func AllFormats() []Format {
	return []Format{YAMLFormat, XMLFormat, JSONFormat}
}
