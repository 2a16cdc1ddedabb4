package eval

import (
	"fmt"

	"github.com/signadot/tony-format/xy/debug"
	"github.com/signadot/tony-format/xy/ir"

	"github.com/expr-lang/expr"
)

// Eval runs an expr-lang expression against doc. The keys of doc, when it
// is an object, are the variables of the expression; root() returns doc
// itself whatever its type.
//
// Also available are getpath(path) and listpath(path), which query doc
// with $-paths (getpath gives nil for a missing field), text(v), which gives the text of a scalar or of an object
// lowered from an xml leaf, and getenv(name).
func Eval(expression string, doc *ir.Node) (*ir.Node, error) {
	program, err := expr.Compile(expression, exprOpts(doc)...)
	if err != nil {
		return nil, fmt.Errorf("%w: expression %q: %w", ir.ErrParse, expression, err)
	}
	env := map[string]any{}
	if doc.Type == ir.ObjectType {
		env = ToAny(doc).(map[string]any)
	}
	out, err := expr.Run(program, env)
	if err != nil {
		return nil, fmt.Errorf("error evaluating %q: %w", expression, err)
	}
	if debug.Eval() {
		debug.Logf("eval %q gave %#v\n", expression, out)
	}
	return FromAny(out)
}

// Truth evaluates expression against doc and reports whether the result
// is non-empty.
func Truth(expression string, doc *ir.Node) (bool, error) {
	res, err := Eval(expression, doc)
	if err != nil {
		return false, err
	}
	return ir.Truth(res), nil
}
