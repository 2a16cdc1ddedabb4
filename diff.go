package xy

import (
	"bytes"

	"github.com/signadot/tony-format/xy/encode"
	"github.com/signadot/tony-format/xy/format"
	"github.com/signadot/tony-format/xy/ir"
	"github.com/signadot/tony-format/xy/libdiff"
)

// Diff renders a and b in format f and compares the renderings line by
// line.
func Diff(a, b *ir.Node, f format.Format, opts ...encode.EncodeOption) ([]libdiff.Line, error) {
	opts = append([]encode.EncodeOption{encode.EncodeFormat(f)}, opts...)
	from := bytes.NewBuffer(nil)
	if err := encode.Encode(a, from, opts...); err != nil {
		return nil, err
	}
	to := bytes.NewBuffer(nil)
	if err := encode.Encode(b, to, opts...); err != nil {
		return nil, err
	}
	return libdiff.DiffLines(from.String(), to.String()), nil
}
