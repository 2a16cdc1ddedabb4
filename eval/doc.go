// Package eval bridges document values and plain go values, and runs
// expr-lang expressions over documents.
//
// # Usage
//
//	doc, _ := xy.Load("note.xml")
//	to, err := eval.Eval(`text(note.to)`, doc)
//	all, err := eval.Eval(`listpath("$.note.item[*]")`, doc)
//
// # Related Packages
//
//   - github.com/signadot/tony-format/xy/ir - the document value and $-paths
package eval
