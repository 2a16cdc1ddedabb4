// Package format names the document formats xy reads and writes.
//
// # Usage
//
//	f, err := format.ParseFormat("xml")
//	f, err = format.FromPath("config.yaml")
//	f = format.Detect(data)
//
// # Related Packages
//
//   - github.com/signadot/tony-format/xy/parse - Parse text to IR
//   - github.com/signadot/tony-format/xy/encode - Encode IR to text
package format
