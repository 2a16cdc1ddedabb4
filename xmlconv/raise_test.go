package xmlconv

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/tony-format/xy/ir"
	"github.com/signadot/tony-format/xy/xmltree"
)

const decl = xmltree.Declaration + "\n"

func TestEncode(t *testing.T) {
	tests := []struct {
		name string
		in   string
		opts []RaiseOption
		want string
	}{
		{
			name: "scalars",
			in:   `{"root":{"a":1,"b":2}}`,
			want: `<root><a>1</a><b>2</b></root>`,
		},
		{
			name: "restringify",
			in:   `{"r":{"i":-3,"f":1,"g":2.5,"t":true,"n":null,"s":"x & y"}}`,
			want: `<r><i>-3</i><f>1</f><g>2.5</g><t>true</t><n></n><s>x &amp; y</s></r>`,
		},
		{
			name: "text",
			in:   `{"note":{"to":{"@text":"Tove"},"from":{"@text":"Jani"}}}`,
			want: `<note><to>Tove</to><from>Jani</from></note>`,
		},
		{
			name: "arrays expand to siblings",
			in:   `{"a":{"item":[{"@text":"1"},{"@text":"2"},3]}}`,
			want: `<a><item>1</item><item>2</item><item>3</item></a>`,
		},
		{
			name: "scalar root",
			in:   `{"a":"x"}`,
			want: `<a>x</a>`,
		},
		{
			name: "attr scalars",
			in:   `{"a":{"b":{"@text":"t","k":"v"},"id":7}}`,
			opts: []RaiseOption{AttrScalars(true)},
			want: `<a id="7"><b k="v">t</b></a>`,
		},
		{
			name: "mixed content",
			in:   `{"a":{"@text":"t","b":"c"}}`,
			want: `<a>t<b>c</b></a>`,
		},
		{
			name: "prefixed names",
			in:   `{"ns:a":{"xmlns:ns":"urn:x"}}`,
			opts: []RaiseOption{AttrScalars(true)},
			want: `<ns:a xmlns:ns="urn:x"></ns:a>`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			node, err := ir.FromJSON([]byte(tt.in))
			if err != nil {
				t.Fatal(err)
			}
			got, err := EncodeString(node, tt.opts...)
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(decl+tt.want+"\n", got); diff != "" {
				t.Errorf("mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestEncodeFloat(t *testing.T) {
	node := ir.FromKeyVals([]ir.KeyVal{ir.KV("f", ir.FromFloat(1))})
	got, err := EncodeString(node)
	if err != nil {
		t.Fatal(err)
	}
	if want := decl + "<f>1.0</f>\n"; got != want {
		t.Errorf("got %q want %q", got, want)
	}
	node = ir.FromKeyVals([]ir.KeyVal{ir.KV("f", ir.FromFloat(math.Inf(-1)))})
	got, err = EncodeString(node)
	if err != nil {
		t.Fatal(err)
	}
	if want := decl + "<f>-.inf</f>\n"; got != want {
		t.Errorf("got %q want %q", got, want)
	}
	node = ir.FromKeyVals([]ir.KeyVal{ir.KV("f", ir.FromFloat(1e21))})
	got, err = EncodeString(node)
	if err != nil {
		t.Fatal(err)
	}
	if want := decl + "<f>1000000000000000000000.0</f>\n"; got != want {
		t.Errorf("got %q want %q", got, want)
	}
}

func TestRaiseNumberWithoutValue(t *testing.T) {
	bad := func() *ir.Node {
		return ir.FromKeyVals([]ir.KeyVal{
			ir.KV("a", ir.FromKeyVals([]ir.KeyVal{ir.KV("n", &ir.Node{Type: ir.NumberType})})),
		})
	}
	for _, opts := range [][]RaiseOption{nil, {AttrScalars(true)}} {
		out, err := EncodeString(bad(), opts...)
		if !errors.Is(err, ir.ErrType) {
			t.Errorf("expected %v, got %v", ir.ErrType, err)
		}
		if out != "" {
			t.Errorf("expected no output, got %q", out)
		}
	}
}

func TestEncodeIndent(t *testing.T) {
	node, err := ir.FromJSON([]byte(`{"a":{"b":{"c":"1"}}}`))
	if err != nil {
		t.Fatal(err)
	}
	got, err := EncodeString(node, Indent("", "  "))
	if err != nil {
		t.Fatal(err)
	}
	want := decl + "<a>\n  <b>\n    <c>1</c>\n  </b>\n</a>\n"
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestRaiseErrors(t *testing.T) {
	tests := []struct {
		name string
		in   string
		opts []RaiseOption
		want error
	}{
		{"two roots", `{"a":1,"b":2}`, nil, ir.ErrStructure},
		{"no roots", `{}`, nil, ir.ErrStructure},
		{"not an object", `[1]`, nil, ir.ErrStructure},
		{"array root", `{"a":[1,2]}`, nil, ir.ErrStructure},
		{"bad name", `{"a":{"1b":"x"}}`, nil, ir.ErrStructure},
		{"bad attr name", `{"a":{"b c":"x"}}`, []RaiseOption{AttrScalars(true)}, ir.ErrStructure},
		{"nested array", `{"a":{"b":[[1]]}}`, nil, ir.ErrType},
		{"object text", `{"a":{"@text":{"b":1}}}`, nil, ir.ErrType},
		{"depth", `{"a":{"b":{"c":1}}}`, []RaiseOption{RaiseMaxDepth(2)}, ir.ErrDepth},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			node, err := ir.FromJSON([]byte(tt.in))
			if err != nil {
				t.Fatal(err)
			}
			out, err := EncodeString(node, tt.opts...)
			if !errors.Is(err, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, err)
			}
			if out != "" {
				t.Errorf("expected no output, got %q", out)
			}
		})
	}
}

func TestLowerRaiseRoundTrip(t *testing.T) {
	in := `<cfg env="prod"><server>a</server><server>b</server><port>80</port><empty></empty></cfg>`
	node, err := Decode([]byte(in))
	if err != nil {
		t.Fatal(err)
	}
	got, err := EncodeString(node, AttrScalars(true))
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(decl+in+"\n", got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}
