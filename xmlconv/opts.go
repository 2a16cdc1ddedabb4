package xmlconv

import "github.com/signadot/tony-format/xy/ir"

type lowerOpts struct {
	trimText     bool
	inferScalars bool
	strictAttrs  bool
	maxDepth     int
}

type LowerOption func(*lowerOpts)

// TrimText removes leading and trailing white space from leaf text.
func TrimText(v bool) LowerOption {
	return func(o *lowerOpts) { o.trimText = v }
}

// InferScalars types leaf text and attribute values the way yaml plain
// scalars are typed, instead of keeping them as strings.
func InferScalars(v bool) LowerOption {
	return func(o *lowerOpts) { o.inferScalars = v }
}

// StrictAttributes makes an attribute whose name equals a child element
// tag an error instead of replacing the child.
func StrictAttributes(v bool) LowerOption {
	return func(o *lowerOpts) { o.strictAttrs = v }
}

func LowerMaxDepth(n int) LowerOption {
	return func(o *lowerOpts) { o.maxDepth = n }
}

type raiseOpts struct {
	attrScalars bool
	maxDepth    int
	prefix      string
	indent      string
}

type RaiseOption func(*raiseOpts)

// AttrScalars emits scalar valued keys as attributes rather than child
// elements.
func AttrScalars(v bool) RaiseOption {
	return func(o *raiseOpts) { o.attrScalars = v }
}

func RaiseMaxDepth(n int) RaiseOption {
	return func(o *raiseOpts) { o.maxDepth = n }
}

// Indent is passed to the serializer by Encode.
func Indent(prefix, indent string) RaiseOption {
	return func(o *raiseOpts) {
		o.prefix = prefix
		o.indent = indent
	}
}

func newLowerOpts(opts []LowerOption) *lowerOpts {
	o := &lowerOpts{maxDepth: ir.DefaultMaxDepth}
	for _, f := range opts {
		f(o)
	}
	return o
}

func newRaiseOpts(opts []RaiseOption) *raiseOpts {
	o := &raiseOpts{maxDepth: ir.DefaultMaxDepth}
	for _, f := range opts {
		f(o)
	}
	return o
}
