package libdiff

import (
	"strings"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

type Op int

const (
	Equal Op = iota
	Insert
	Delete
)

func (o Op) Prefix() string {
	switch o {
	case Insert:
		return "+"
	case Delete:
		return "-"
	default:
		return " "
	}
}

// Line is one line of a line diff, without its newline.
type Line struct {
	Op   Op
	Text string
}

func (l Line) String() string {
	return l.Op.Prefix() + l.Text
}

// DiffLines compares from and to line by line.
func DiffLines(from, to string) []Line {
	dmp := diffpatch.New()
	a, b, lineArray := dmp.DiffLinesToChars(from, to)
	diffs := dmp.DiffMain(a, b, false)
	diffs = dmp.DiffCharsToLines(diffs, lineArray)
	var res []Line
	for _, d := range diffs {
		op := Equal
		switch d.Type {
		case diffpatch.DiffInsert:
			op = Insert
		case diffpatch.DiffDelete:
			op = Delete
		}
		for _, text := range splitLines(d.Text) {
			res = append(res, Line{Op: op, Text: text})
		}
	}
	return res
}

func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	res := strings.Split(s, "\n")
	if res[len(res)-1] == "" {
		res = res[:len(res)-1]
	}
	return res
}

// Changed reports whether any line is inserted or deleted.
func Changed(lines []Line) bool {
	for _, l := range lines {
		if l.Op != Equal {
			return true
		}
	}
	return false
}

// Stat counts inserted and deleted lines.
func Stat(lines []Line) (inserted, deleted int) {
	for _, l := range lines {
		switch l.Op {
		case Insert:
			inserted++
		case Delete:
			deleted++
		}
	}
	return
}
