// Package xy converts documents between xml, yaml and json through a
// common document value, ir.Node.
//
// # Usage
//
//	out, err := xy.XMLToYAML([]byte(`<note><to>Tove</to></note>`))
//	// out is "note:\n  to: Tove\n"
//
//	doc, err := xy.Load("config.xml")
//	doc, err = xy.Patch(doc, []byte(`[{"op":"remove","path":"/config/debug"}]`))
//
// # Conversion
//
// Lowering xml gives an object with the root element's name as single
// key. Repeated child elements of the same name become arrays, the text
// of a leaf element is kept under the key "@text" and attributes follow
// as string keys. Raising to xml inverts this; raising to yaml writes an
// object holding only "@text" as that scalar.
//
// # Related Packages
//
//   - github.com/signadot/tony-format/xy/xmlconv - XML lowering and raising
//   - github.com/signadot/tony-format/xy/yamlconv - YAML lowering and raising
//   - github.com/signadot/tony-format/xy/ir - the document value
package xy
