package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/signadot/tony-format/xy/format"
	"github.com/stretchr/testify/require"
)

func newConfig(out format.Format) *MainConfig {
	return &MainConfig{Indent: -1, OutFormat: &out}
}

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte(content), 0644))
	return p
}

const noteXML = `<note><to>Tove</to><from>Jani</from></note>`

func TestConvertStdin(t *testing.T) {
	out := &bytes.Buffer{}
	err := convertFiles(newConfig(format.YAMLFormat), out, strings.NewReader(noteXML), nil)
	require.NoError(t, err)
	require.Equal(t, "note:\n  to: Tove\n  from: Jani\n", out.String())
}

func TestConvertFiles(t *testing.T) {
	a := writeTemp(t, "a.yaml", "a: 1\n---\nb: 2\n")
	b := writeTemp(t, "b.json", `{"c": true}`)
	out := &bytes.Buffer{}
	require.NoError(t, convertFiles(newConfig(format.YAMLFormat), out, nil, []string{a, b}))
	require.Equal(t, "a: 1\n---\nb: 2\n---\nc: true\n", out.String())

	out.Reset()
	cfg := newConfig(format.JSONFormat)
	cfg.Indent = 0
	require.NoError(t, convertFiles(cfg, out, nil, []string{a}))
	require.Equal(t, "{\"a\":1}\n{\"b\":2}\n", out.String())
}

func TestConvertToXML(t *testing.T) {
	cfg := newConfig(format.XMLFormat)
	out := &bytes.Buffer{}
	in := strings.NewReader("svc:\n  name: web\n  port: 80\n")
	require.NoError(t, convertFiles(cfg, out, in, nil))
	require.Equal(t, `<?xml version="1.0" encoding="utf-8"?>`+"\n<svc><name>web</name><port>80</port></svc>\n", out.String())

	cfg.Attrs = true
	out.Reset()
	in = strings.NewReader("svc:\n  name: web\n  port: 80\n")
	require.NoError(t, convertFiles(cfg, out, in, nil))
	require.Contains(t, out.String(), `<svc name="web" port="80"></svc>`)
}

func TestConvertInputFormat(t *testing.T) {
	cfg := newConfig(format.YAMLFormat)
	xmlFmt := format.XMLFormat
	cfg.InFormat = &xmlFmt
	err := convertFiles(cfg, &bytes.Buffer{}, strings.NewReader("a: 1\n"), nil)
	require.Error(t, err)

	err = convertFiles(newConfig(format.YAMLFormat), &bytes.Buffer{}, nil, []string{filepath.Join(t.TempDir(), "none.xml")})
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestConvertInfer(t *testing.T) {
	cfg := newConfig(format.JSONFormat)
	cfg.Indent = 0
	cfg.Trim = true
	cfg.Infer = true
	out := &bytes.Buffer{}
	in := strings.NewReader("<a><n> 3 </n><b>true</b></a>")
	require.NoError(t, convertFiles(cfg, out, in, nil))
	require.Equal(t, `{"a":{"n":{"@text":3},"b":{"@text":true}}}`+"\n", out.String())
}

func TestGet(t *testing.T) {
	out := &bytes.Buffer{}
	err := getFiles(newConfig(format.YAMLFormat), out, strings.NewReader(noteXML), "$.note.to", nil)
	require.NoError(t, err)
	require.Equal(t, "Tove\n", out.String())

	err = getFiles(newConfig(format.YAMLFormat), out, strings.NewReader(noteXML), "$.note.cc", nil)
	require.ErrorContains(t, err, "nothing at $.note.cc")
}

func TestEval(t *testing.T) {
	cfg := &EvalConfig{MainConfig: newConfig(format.YAMLFormat)}
	out := &bytes.Buffer{}
	ok, err := evalFiles(cfg, out, strings.NewReader(noteXML), `text(note.to) + "!"`, nil)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "Tove!\n", out.String())

	cfg.Quiet = true
	out.Reset()
	ok, err = evalFiles(cfg, out, strings.NewReader(noteXML), `text(note.to) == "Jani"`, nil)
	require.NoError(t, err)
	require.False(t, ok)
	require.Empty(t, out.String())

	_, err = evalFiles(cfg, out, strings.NewReader(noteXML), `note.(`, nil)
	require.Error(t, err)
}

func TestPatch(t *testing.T) {
	cfg := &PatchConfig{MainConfig: newConfig(format.YAMLFormat)}
	out := &bytes.Buffer{}
	p := []byte(`[{"op": "add", "path": "/a/c", "value": 3}]`)
	require.NoError(t, patchFiles(cfg, out, strings.NewReader("a:\n  b: 1\n"), p, nil))
	require.Equal(t, "a:\n  b: 1\n  c: 3\n", out.String())

	cfg.Merge = true
	out.Reset()
	mp := []byte("a:\n  b: null\n  d: x\n")
	require.NoError(t, patchFiles(cfg, out, strings.NewReader("a:\n  b: 1\n  c: 2\n"), mp, nil))
	require.Equal(t, "a:\n  c: 2\n  d: x\n", out.String())
}

func TestDiff(t *testing.T) {
	a := writeTemp(t, "a.xml", noteXML)
	b := writeTemp(t, "b.yaml", "note:\n  to: Tove\n  from: Jani\n")
	c := writeTemp(t, "c.yaml", "note:\n  to: Tove\n  from: Bob\n")

	out := &bytes.Buffer{}
	differs, err := diffFiles(newConfig(format.YAMLFormat), out, nil, a, b)
	require.NoError(t, err)
	require.False(t, differs)
	require.Empty(t, out.String())

	differs, err = diffFiles(newConfig(format.YAMLFormat), out, nil, a, c)
	require.NoError(t, err)
	require.True(t, differs)
	require.Equal(t, " note:\n   to: Tove\n-  from: Jani\n+  from: Bob\n", out.String())
}

func TestBuildDir(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "build.yaml"), []byte("build:\n  destDir: out\n  sources:\n  - path: '*.xml'\n"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "note.xml"), []byte(noteXML), 0644))
	out := &bytes.Buffer{}
	require.NoError(t, buildDir(out, root))
	require.Equal(t, filepath.Join(root, "out", "note.yaml")+"\n", out.String())
}
