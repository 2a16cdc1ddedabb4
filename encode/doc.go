// Package encode writes document values as yaml, xml or json text.
//
// # Usage
//
//	// yaml, indented by 2
//	err := encode.Encode(node, os.Stdout)
//
//	// xml with the root's single key as element, indented
//	err = encode.Encode(node, os.Stdout,
//	    encode.EncodeFormat(format.XMLFormat), encode.EncodeIndent(2))
//
//	// compact json
//	err = encode.Encode(node, os.Stdout,
//	    encode.EncodeFormat(format.JSONFormat), encode.EncodeIndent(0))
//
// # Related Packages
//
//   - github.com/signadot/tony-format/xy/parse - Parse text to IR
//   - github.com/signadot/tony-format/xy/xmlconv - XML raising
//   - github.com/signadot/tony-format/xy/yamlconv - YAML raising
package encode
