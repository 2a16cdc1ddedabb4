package main

import (
	"io"

	"github.com/signadot/tony-format/xy/encode"
	"github.com/signadot/tony-format/xy/format"
	"github.com/signadot/tony-format/xy/ir"
)

// docWriter writes a stream of documents, separating yaml documents with
// "---".
type docWriter struct {
	w    io.Writer
	opts []encode.EncodeOption
	n    int
}

func (cfg *MainConfig) docWriter(w io.Writer) *docWriter {
	return &docWriter{w: w, opts: cfg.encOpts()}
}

func (dw *docWriter) write(doc *ir.Node) error {
	if dw.n > 0 && encode.FormatFromOpts(dw.opts...) == format.YAMLFormat {
		if _, err := io.WriteString(dw.w, "---\n"); err != nil {
			return err
		}
	}
	dw.n++
	return encode.Encode(doc, dw.w, dw.opts...)
}
