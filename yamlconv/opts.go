package yamlconv

import "github.com/signadot/tony-format/xy/ir"

// DefaultMaxAliasNodes bounds the values produced by alias expansion in
// a single Lower call.
const DefaultMaxAliasNodes = 1 << 16

type lowerOpts struct {
	inferQuoted   bool
	maxDepth      int
	maxAliasNodes int

	// values lowered beneath an alias so far, and the alias nesting
	aliasNodes int
	inAlias    int
}

type LowerOption func(*lowerOpts)

// InferQuoted types quoted, block and !!str tagged scalars like plain ones.
func InferQuoted(v bool) LowerOption {
	return func(o *lowerOpts) { o.inferQuoted = v }
}

func LowerMaxDepth(n int) LowerOption {
	return func(o *lowerOpts) { o.maxDepth = n }
}

// LowerMaxAliasNodes limits how many values alias expansion may produce.
func LowerMaxAliasNodes(n int) LowerOption {
	return func(o *lowerOpts) { o.maxAliasNodes = n }
}

type raiseOpts struct {
	maxDepth int
	indent   int
}

type RaiseOption func(*raiseOpts)

func RaiseMaxDepth(n int) RaiseOption {
	return func(o *raiseOpts) { o.maxDepth = n }
}

// Indent sets the number of spaces per nesting level written by Encode.
func Indent(n int) RaiseOption {
	return func(o *raiseOpts) { o.indent = n }
}

func newLowerOpts(opts []LowerOption) *lowerOpts {
	o := &lowerOpts{maxDepth: ir.DefaultMaxDepth, maxAliasNodes: DefaultMaxAliasNodes}
	for _, f := range opts {
		f(o)
	}
	return o
}

func newRaiseOpts(opts []RaiseOption) *raiseOpts {
	o := &raiseOpts{maxDepth: ir.DefaultMaxDepth, indent: 2}
	for _, f := range opts {
		f(o)
	}
	return o
}
