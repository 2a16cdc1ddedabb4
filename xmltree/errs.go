package xmltree

import (
	"fmt"

	"github.com/signadot/tony-format/xy/ir"
)

var (
	ErrUnclosed      = fmt.Errorf("%w: unclosed element", ir.ErrParse)
	ErrMismatch      = fmt.Errorf("%w: mismatched end element", ir.ErrParse)
	ErrNoRoot        = fmt.Errorf("%w: no root element", ir.ErrParse)
	ErrMultipleRoots = fmt.Errorf("%w: more than one root element", ir.ErrParse)
	ErrDuplicateAttr = fmt.Errorf("%w: duplicate attribute", ir.ErrParse)
)
