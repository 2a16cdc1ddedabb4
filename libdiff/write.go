package libdiff

import (
	"bufio"
	"io"

	"github.com/fatih/color"
)

type Colors struct {
	Equal  func(string, ...any) string
	Insert func(string, ...any) string
	Delete func(string, ...any) string
}

func NewColors() *Colors {
	return &Colors{
		Equal:  color.RGB(128, 128, 128).SprintfFunc(),
		Insert: color.RGB(8, 196, 16).SprintfFunc(),
		Delete: color.RedString,
	}
}

func (c *Colors) color(o Op) func(string, ...any) string {
	switch o {
	case Insert:
		return c.Insert
	case Delete:
		return c.Delete
	default:
		return c.Equal
	}
}

// Write prints lines with their prefixes, colored unless colors is nil.
func Write(w io.Writer, lines []Line, colors *Colors) error {
	bw := bufio.NewWriter(w)
	for _, l := range lines {
		s := l.String()
		if colors != nil {
			s = colors.color(l.Op)("%s", s)
		}
		if _, err := bw.WriteString(s); err != nil {
			return err
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}
