// Package parse reads xml, yaml and json text into document values.
//
// # Usage
//
//	// detect the format from the input
//	node, err := parse.Parse(data)
//
//	// or fix it, passing converter options along
//	node, err = parse.Parse(data, parse.ParseXML(),
//	    parse.ParseXMLOptions(xmlconv.TrimText(true)))
//
//	// every document of a yaml stream
//	nodes, err := parse.ParseAll(data, parse.ParseYAML())
//
// All errors wrap one of the sentinels in package ir.
//
// # Related Packages
//
//   - github.com/signadot/tony-format/xy/encode - Encode IR to text
//   - github.com/signadot/tony-format/xy/xmlconv - XML lowering
//   - github.com/signadot/tony-format/xy/yamlconv - YAML lowering
package parse
