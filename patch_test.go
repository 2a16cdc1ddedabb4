package xy

import (
	"testing"

	"github.com/signadot/tony-format/xy/format"
	"github.com/signadot/tony-format/xy/ir"
	"github.com/signadot/tony-format/xy/libdiff"
	"github.com/stretchr/testify/require"
)

func mustJSON(t *testing.T, s string) *ir.Node {
	t.Helper()
	n, err := ir.FromJSON([]byte(s))
	require.NoError(t, err)
	return n
}

func jsonString(t *testing.T, n *ir.Node) string {
	t.Helper()
	d, err := n.MarshalJSON()
	require.NoError(t, err)
	return string(d)
}

func TestPatch(t *testing.T) {
	doc := mustJSON(t, `{"z":{"y":1,"x":2},"a":[{"q":1,"p":2}],"m":"keep"}`)
	out, err := Patch(doc, []byte(`[
		{"op": "replace", "path": "/z/x", "value": 3},
		{"op": "add", "path": "/b", "value": "new"},
		{"op": "remove", "path": "/m"}
	]`))
	require.NoError(t, err)
	require.Equal(t, `{"z":{"y":1,"x":3},"a":[{"q":1,"p":2}],"b":"new"}`, jsonString(t, out))
	require.Equal(t, `{"z":{"y":1,"x":2},"a":[{"q":1,"p":2}],"m":"keep"}`, jsonString(t, doc))
}

func TestPatchErrors(t *testing.T) {
	doc := mustJSON(t, `{"a":1}`)
	_, err := Patch(doc, []byte(`not json`))
	require.ErrorIs(t, err, ir.ErrParse)

	_, err = Patch(doc, []byte(`[{"op": "test", "path": "/a", "value": 2}]`))
	require.Error(t, err)
}

func TestMergePatch(t *testing.T) {
	doc := mustJSON(t, `{"b":1,"a":{"d":1,"c":2},"e":true}`)
	out, err := MergePatch(doc, mustJSON(t, `{"a":{"c":null,"f":"x"},"e":null}`))
	require.NoError(t, err)
	require.Equal(t, `{"b":1,"a":{"d":1,"f":"x"}}`, jsonString(t, out))
}

func TestDiff(t *testing.T) {
	a := mustJSON(t, `{"a":1,"b":2}`)
	b := mustJSON(t, `{"a":1,"b":3}`)
	lines, err := Diff(a, b, format.YAMLFormat)
	require.NoError(t, err)
	require.Equal(t, []libdiff.Line{
		{Op: libdiff.Equal, Text: "a: 1"},
		{Op: libdiff.Delete, Text: "b: 2"},
		{Op: libdiff.Insert, Text: "b: 3"},
	}, lines)

	lines, err = Diff(a, a.Clone(), format.JSONFormat)
	require.NoError(t, err)
	require.False(t, libdiff.Changed(lines))

	_, err = Diff(a, b, format.XMLFormat)
	require.ErrorIs(t, err, ir.ErrStructure)
}
