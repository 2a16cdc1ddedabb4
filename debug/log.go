package debug

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/signadot/tony-format/xy/ir"
)

var out io.Writer = os.Stderr

const logPrefix = "   |"

// Logf writes a debug line to stderr. Document values and plain json
// values among args are shown as indented json.
func Logf(msg string, args ...any) {
	for i, a := range args {
		switch x := a.(type) {
		case *ir.Node:
			args[i] = nodeString(x)
		case map[string]any, []any, json.Number:
			d, err := json.MarshalIndent(x, logPrefix, "  ")
			if err == nil {
				args[i] = string(d)
			}
		}
	}
	fmt.Fprintf(out, msg, args...)
}

func nodeString(n *ir.Node) string {
	d, err := n.MarshalJSON()
	if err != nil {
		return fmt.Sprintf("<%s: %v>", n.Type, err)
	}
	buf := bytes.NewBuffer(nil)
	if err := json.Indent(buf, d, logPrefix, "  "); err != nil {
		return string(d)
	}
	return buf.String()
}
