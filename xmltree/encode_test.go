package xmltree

import (
	"bytes"
	"errors"
	"testing"

	"github.com/signadot/tony-format/xy/ir"
)

func TestEncode(t *testing.T) {
	root := New("root")
	root.SetAttr("id", `a"b`)
	root.AddChild(&Element{Name: "a", Text: "1 < 2"})
	root.AddChild(New("b"))

	buf := bytes.NewBuffer(nil)
	if err := root.Encode(buf); err != nil {
		t.Fatal(err)
	}
	want := Declaration + "\n" + `<root id="a&#34;b"><a>1 &lt; 2</a><b></b></root>` + "\n"
	if got := buf.String(); got != want {
		t.Errorf("got\n%s\nwant\n%s", got, want)
	}
}

func TestEncodeIndent(t *testing.T) {
	root := &Element{
		Name: "a",
		Children: []*Element{
			{Name: "b", Text: "1"},
			{Name: "c", Children: []*Element{{Name: "d", Text: "x"}}},
		},
	}
	buf := bytes.NewBuffer(nil)
	if err := root.Encode(buf, Indent("", "  ")); err != nil {
		t.Fatal(err)
	}
	want := Declaration + `
<a>
  <b>1</b>
  <c>
    <d>x</d>
  </c>
</a>
`
	if got := buf.String(); got != want {
		t.Errorf("got\n%s\nwant\n%s", got, want)
	}
}

func TestEncodeBadName(t *testing.T) {
	root := &Element{Name: "a", Children: []*Element{{Name: "1b"}}}
	buf := bytes.NewBuffer(nil)
	err := root.Encode(buf)
	if !errors.Is(err, ir.ErrStructure) {
		t.Fatalf("expected structure error, got %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("expected nothing written, got %q", buf.String())
	}
}

func TestParseEncodeParse(t *testing.T) {
	in := `<a k="v"><b>1</b><b>2</b><c><d>&amp;</d></c></a>`
	el, err := Parse([]byte(in))
	if err != nil {
		t.Fatal(err)
	}
	if got := el.String(); got != in {
		t.Errorf("got %s want %s", got, in)
	}
}
