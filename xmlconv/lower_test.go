package xmlconv

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/tony-format/xy/ir"
)

func jsonOf(t *testing.T, n *ir.Node) string {
	t.Helper()
	d, err := n.MarshalJSON()
	if err != nil {
		t.Fatal(err)
	}
	return string(d)
}

func TestDecode(t *testing.T) {
	tests := []struct {
		name string
		in   string
		opts []LowerOption
		want string
	}{
		{
			name: "note",
			in:   `<note><to>Tove</to><from>Jani</from></note>`,
			want: `{"note":{"to":{"@text":"Tove"},"from":{"@text":"Jani"}}}`,
		},
		{
			name: "array promotion",
			in:   `<a><item>1</item><item>2</item></a>`,
			want: `{"a":{"item":[{"@text":"1"},{"@text":"2"}]}}`,
		},
		{
			name: "array promotion of many",
			in:   `<a><i>1</i><i>2</i><i>3</i><i>4</i></a>`,
			want: `{"a":{"i":[{"@text":"1"},{"@text":"2"},{"@text":"3"},{"@text":"4"}]}}`,
		},
		{
			name: "interleaved groups of three",
			in:   `<a><x>1</x><y>2</y><x>3</x><y>4</y><x>5</x></a>`,
			want: `{"a":{"x":[{"@text":"1"},{"@text":"3"},{"@text":"5"}],"y":[{"@text":"2"},{"@text":"4"}]}}`,
		},
		{
			name: "groups ordered by first occurrence",
			in:   `<a><x>1</x><y>2</y><x>3</x></a>`,
			want: `{"a":{"x":[{"@text":"1"},{"@text":"3"}],"y":{"@text":"2"}}}`,
		},
		{
			name: "promotion scoped to parent",
			in:   `<a><p><i>1</i></p><q><i>2</i></q></a>`,
			want: `{"a":{"p":{"i":{"@text":"1"}},"q":{"i":{"@text":"2"}}}}`,
		},
		{
			name: "heterogeneous array",
			in:   `<a><b>x</b><b><c>y</c></b></a>`,
			want: `{"a":{"b":[{"@text":"x"},{"c":{"@text":"y"}}]}}`,
		},
		{
			name: "empty element",
			in:   `<a><b/></a>`,
			want: `{"a":{"b":{"@text":""}}}`,
		},
		{
			name: "attributes follow",
			in:   `<a id="7"><b k="v">t</b></a>`,
			want: `{"a":{"b":{"@text":"t","k":"v"},"id":"7"}}`,
		},
		{
			name: "attribute wins in place",
			in:   `<a b="attr"><b>child</b><c>z</c></a>`,
			want: `{"a":{"b":"attr","c":{"@text":"z"}}}`,
		},
		{
			name: "byte order mark",
			in:   "\ufeff<a>x</a>",
			want: `{"a":{"@text":"x"}}`,
		},
		{
			name: "raw text",
			in:   "<a> x </a>",
			want: `{"a":{"@text":" x "}}`,
		},
		{
			name: "trim text",
			in:   "<a> x </a>",
			opts: []LowerOption{TrimText(true)},
			want: `{"a":{"@text":"x"}}`,
		},
		{
			name: "strings by default",
			in:   `<a n="1"><b>2.5</b><c>true</c></a>`,
			want: `{"a":{"b":{"@text":"2.5"},"c":{"@text":"true"},"n":"1"}}`,
		},
		{
			name: "infer scalars",
			in:   `<a n="1"><b>2.5</b><c>true</c><d>x</d></a>`,
			opts: []LowerOption{InferScalars(true)},
			want: `{"a":{"b":{"@text":2.5},"c":{"@text":true},"d":{"@text":"x"},"n":1}}`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Decode([]byte(tt.in), tt.opts...)
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(tt.want, jsonOf(t, got)); diff != "" {
				t.Errorf("mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name string
		in   string
		opts []LowerOption
		want error
	}{
		{"unclosed", "<a><b>", nil, ir.ErrParse},
		{"empty", "", nil, ir.ErrParse},
		{"strict attributes", `<a b="x"><b/></a>`, []LowerOption{StrictAttributes(true)}, ir.ErrStructure},
		{"depth", "<a><b><c/></b></a>", []LowerOption{LowerMaxDepth(2)}, ir.ErrDepth},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Decode([]byte(tt.in), tt.opts...)
			if !errors.Is(err, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, err)
			}
			if got != nil {
				t.Errorf("expected no value on error")
			}
		})
	}
}

func TestLowerParentLinks(t *testing.T) {
	got, err := Decode([]byte(`<a><b>1</b><b>2</b></a>`))
	if err != nil {
		t.Fatal(err)
	}
	second, err := got.GetPath("$.a.b[1]")
	if err != nil {
		t.Fatal(err)
	}
	if p := second.Path(); p != "$.a.b[1]" {
		t.Errorf("got path %s", p)
	}
}
