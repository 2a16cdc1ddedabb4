package xmltree

import "github.com/signadot/tony-format/xy/ir"

type parseOpts struct {
	maxDepth int
}

type ParseOption func(*parseOpts)

// MaxDepth bounds element nesting accepted by Parse.
func MaxDepth(n int) ParseOption {
	return func(o *parseOpts) { o.maxDepth = n }
}

type encOpts struct {
	prefix string
	indent string
	header bool
}

type EncodeOption func(*encOpts)

// Indent places each element on its own line, beginning with prefix and
// one copy of indent per nesting level.
func Indent(prefix, indent string) EncodeOption {
	return func(o *encOpts) {
		o.prefix = prefix
		o.indent = indent
	}
}

// Header controls whether the xml declaration is written. It is on by
// default.
func Header(v bool) EncodeOption {
	return func(o *encOpts) { o.header = v }
}

func newParseOpts(opts []ParseOption) *parseOpts {
	o := &parseOpts{maxDepth: ir.DefaultMaxDepth}
	for _, f := range opts {
		f(o)
	}
	return o
}

func newEncOpts(opts []EncodeOption) *encOpts {
	o := &encOpts{header: true}
	for _, f := range opts {
		f(o)
	}
	return o
}
