package ir

import (
	"fmt"
	"strconv"
	"strings"
)

// Path gives the $-path of y from its root.
func (y *Node) Path() string {
	if y.Parent == nil {
		return "$"
	}
	switch y.Parent.Type {
	case ObjectType:
		return FieldPath(y.Parent.Path(), y.ParentField)
	case ArrayType:
		return IndexPath(y.Parent.Path(), y.ParentIndex)
	default:
		panic("parent but not in container")
	}
}

// FieldPath extends path with an object field, quoting it when needed.
func FieldPath(path, field string) string {
	return path + "." + quoteField(field)
}

// IndexPath extends path with an array index.
func IndexPath(path string, i int) string {
	return path + "[" + strconv.Itoa(i) + "]"
}

func quoteField(f string) string {
	if f != "" && !strings.ContainsAny(f, "'\\.*$[] ") {
		return f
	}
	var b strings.Builder
	b.WriteByte('\'')
	for i := 0; i < len(f); i++ {
		if f[i] == '\'' || f[i] == '\\' {
			b.WriteByte('\\')
		}
		b.WriteByte(f[i])
	}
	b.WriteByte('\'')
	return b.String()
}

type StepKind int

const (
	// FieldStep selects an object field.
	FieldStep StepKind = iota
	// IndexStep selects an array element.
	IndexStep
	// AllStep, [*], selects every array element.
	AllStep
	// DescendStep, "..", applies the rest of the path at every object and
	// array below and including the current node.
	DescendStep
)

type PathStep struct {
	Kind  StepKind
	Field string
	Index int
}

// Path is a parsed $-path such as $.a[0].'b c' or $..id.
type Path []PathStep

func (p Path) String() string {
	var b strings.Builder
	b.WriteByte('$')
	for _, s := range p {
		switch s.Kind {
		case FieldStep:
			b.WriteString("." + quoteField(s.Field))
		case IndexStep:
			b.WriteString("[" + strconv.Itoa(s.Index) + "]")
		case AllStep:
			b.WriteString("[*]")
		case DescendStep:
			b.WriteString("..")
		}
	}
	return b.String()
}

// ParsePath parses a $-path. Fields follow '.', either bare up to the next
// '.' or '[', or in single quotes with backslash escapes. Indices and '*'
// go in brackets. ".." before a '.' or '[' step descends.
func ParsePath(s string) (Path, error) {
	if s == "" || s[0] != '$' {
		return nil, fmt.Errorf("path %q should start with '$'", s)
	}
	var res Path
	i := 1
	for i < len(s) {
		switch s[i] {
		case '.':
			if i+1 < len(s) && s[i+1] == '.' {
				if i+2 == len(s) || (s[i+2] != '.' && s[i+2] != '[') {
					return nil, fmt.Errorf("path %q: expected '.' or '[' after '..' at %d", s, i)
				}
				res = append(res, PathStep{Kind: DescendStep})
				i += 2
				continue
			}
			field, n, err := scanField(s[i+1:])
			if err != nil {
				return nil, fmt.Errorf("path %q: %w", s, err)
			}
			res = append(res, PathStep{Kind: FieldStep, Field: field})
			i += 1 + n
		case '[':
			j := strings.IndexByte(s[i:], ']')
			if j == -1 {
				return nil, fmt.Errorf("path %q: unterminated '[' at %d", s, i)
			}
			inner := s[i+1 : i+j]
			if inner == "*" {
				res = append(res, PathStep{Kind: AllStep})
			} else {
				n, err := strconv.ParseUint(inner, 10, 31)
				if err != nil {
					return nil, fmt.Errorf("path %q: bad index %q", s, inner)
				}
				res = append(res, PathStep{Kind: IndexStep, Index: int(n)})
			}
			i += j + 1
		default:
			return nil, fmt.Errorf("path %q: expected '.' or '[' at %d", s, i)
		}
	}
	return res, nil
}

// scanField scans a field at the start of s, returning it and the number
// of bytes consumed.
func scanField(s string) (string, int, error) {
	if s == "" {
		return "", 0, fmt.Errorf("expected field at end of path")
	}
	if s[0] != '\'' {
		n := strings.IndexAny(s, ".[")
		if n == -1 {
			n = len(s)
		}
		if n == 0 {
			return "", 0, fmt.Errorf("empty field")
		}
		return s[:n], n, nil
	}
	var b strings.Builder
	for i := 1; i < len(s); i++ {
		switch s[i] {
		case '\\':
			i++
			if i == len(s) {
				return "", 0, fmt.Errorf("unterminated quoted field")
			}
			b.WriteByte(s[i])
		case '\'':
			return b.String(), i + 1, nil
		default:
			b.WriteByte(s[i])
		}
	}
	return "", 0, fmt.Errorf("unterminated quoted field")
}

// GetPath returns a copy of the node at path, or nil if an object on the
// way lacks a field. Paths with [*] or ".." select more than one node and
// are only for ListPath.
func (y *Node) GetPath(path string) (*Node, error) {
	p, err := ParsePath(path)
	if err != nil {
		return nil, err
	}
	res := y
	for _, s := range p {
		switch s.Kind {
		case FieldStep:
			if res.Type != ObjectType {
				return nil, fmt.Errorf("%s: expected object, got %s", path, res.Type)
			}
			res = Get(res, s.Field)
			if res == nil {
				return nil, nil
			}
		case IndexStep:
			if res.Type != ArrayType {
				return nil, fmt.Errorf("%s: expected array, got %s", path, res.Type)
			}
			if s.Index >= len(res.Values) {
				return nil, fmt.Errorf("%s: index %d out of bounds (len %d)", path, s.Index, len(res.Values))
			}
			res = res.Values[s.Index]
		default:
			return nil, fmt.Errorf("%s: get selects a single node", path)
		}
	}
	return res.Clone(), nil
}

// ListPath appends to dst copies of every node path selects. Steps which
// do not apply to a node select nothing.
func (y *Node) ListPath(dst []*Node, path string) ([]*Node, error) {
	p, err := ParsePath(path)
	if err != nil {
		return nil, err
	}
	return y.listPath(dst, p), nil
}

func (y *Node) listPath(dst []*Node, p Path) []*Node {
	if len(p) == 0 {
		return append(dst, y.Clone())
	}
	s, rest := p[0], p[1:]
	switch s.Kind {
	case FieldStep:
		if y.Type == ObjectType {
			if v := Get(y, s.Field); v != nil {
				dst = v.listPath(dst, rest)
			}
		}
	case IndexStep:
		if y.Type == ArrayType && s.Index < len(y.Values) {
			dst = y.Values[s.Index].listPath(dst, rest)
		}
	case AllStep:
		if y.Type == ArrayType {
			for _, v := range y.Values {
				dst = v.listPath(dst, rest)
			}
		}
	case DescendStep:
		if y.Type.IsLeaf() {
			break
		}
		dst = y.listPath(dst, rest)
		for _, v := range y.Values {
			dst = v.listPath(dst, p)
		}
	}
	return dst
}
