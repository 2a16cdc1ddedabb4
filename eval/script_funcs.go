package eval

import (
	"fmt"
	"os"

	"github.com/signadot/tony-format/xy/ir"

	"github.com/expr-lang/expr"
)

func exprOpts(doc *ir.Node) []expr.Option {
	return []expr.Option{
		expr.Function("root", func(params ...any) (any, error) {
			return ToAny(doc), nil
		},
			new(func() any)),
		expr.Function("getpath", func(params ...any) (any, error) {
			path := params[0].(string)
			res, err := doc.GetPath(path)
			if err != nil {
				return nil, err
			}
			if res == nil {
				return nil, nil
			}
			return ToAny(res), nil
		},
			new(func(string) any)),
		expr.Function("listpath", func(params ...any) (any, error) {
			path := params[0].(string)
			yRes, err := doc.ListPath(nil, path)
			if err != nil {
				return nil, err
			}
			res := make([]any, len(yRes))
			for i, item := range yRes {
				res[i] = ToAny(item)
			}
			return res, nil
		},
			new(func(string) []any)),
		expr.Function("text", func(params ...any) (any, error) {
			node, err := FromAny(params[0])
			if err != nil {
				return nil, err
			}
			res, ok := ir.Text(node)
			if !ok {
				return nil, fmt.Errorf("%w: no text in %s", ir.ErrType, node.Type)
			}
			return res, nil
		},
			new(func(any) string)),
		expr.Function("getenv", func(params ...any) (any, error) {
			return os.Getenv(params[0].(string)), nil
		},
			new(func(string) string)),
	}
}
