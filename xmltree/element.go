package xmltree

// Attr is an attribute of an element, with its name as written.
type Attr struct {
	Name  string
	Value string
}

// Element is an xml element. Name and attribute names keep any namespace
// prefix as written. Text holds the character data of the element. Parse
// only keeps it for leaves; Encode writes it ahead of any children.
type Element struct {
	Name     string
	Attrs    []Attr
	Children []*Element
	Text     string
}

func New(name string) *Element {
	return &Element{Name: name}
}

// IsLeaf reports whether e has no element children.
func (e *Element) IsLeaf() bool {
	return len(e.Children) == 0
}

func (e *Element) Attr(name string) (string, bool) {
	for i := range e.Attrs {
		if e.Attrs[i].Name == name {
			return e.Attrs[i].Value, true
		}
	}
	return "", false
}

func (e *Element) SetAttr(name, value string) {
	for i := range e.Attrs {
		if e.Attrs[i].Name == name {
			e.Attrs[i].Value = value
			return
		}
	}
	e.Attrs = append(e.Attrs, Attr{Name: name, Value: value})
}

func (e *Element) AddChild(c *Element) *Element {
	e.Children = append(e.Children, c)
	return c
}

// Depth returns the number of element levels in e, counting e.
func (e *Element) Depth() int {
	d := 0
	for _, c := range e.Children {
		d = max(d, c.Depth())
	}
	return d + 1
}
