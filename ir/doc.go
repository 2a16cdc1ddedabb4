// Package ir holds the document value shared by the xml, yaml and json
// converters.
//
// A document value is an [*ir.Node]: null, boolean, number (integer or
// float), string, array, or object. Objects keep their keys in insertion
// order; the order is significant when a value is emitted as yaml or xml.
//
// # Constructing values
//
//	doc := ir.FromKeyVals([]ir.KeyVal{
//	    ir.KV("note", ir.FromKeyVals([]ir.KeyVal{
//	        ir.KV("to", ir.FromString("Tove")),
//	    })),
//	})
//
// # Paths
//
// [Node.Path] reports the location of a node as "$.note.to" and
// [Node.GetPath] / [Node.ListPath] look nodes up by such paths,
// with "[*]" and ".." wildcards for listing.
//
// # Errors
//
// Converters report failures wrapping [ErrParse], [ErrStructure],
// [ErrType] or [ErrDepth]; test them with errors.Is.
//
// # Related Packages
//
//   - github.com/signadot/tony-format/xy/xmlconv - xml lowering and raising
//   - github.com/signadot/tony-format/xy/yamlconv - yaml lowering and raising
//   - github.com/signadot/tony-format/xy/parse - parse any format to IR
//   - github.com/signadot/tony-format/xy/encode - encode IR to any format
package ir
