package dirbuild

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/signadot/tony-format/xy"
	"github.com/signadot/tony-format/xy/debug"
	"github.com/signadot/tony-format/xy/eval"
	"github.com/signadot/tony-format/xy/ir"
)

// DirPatch modifies the sources it applies to. A patch applies to a
// source when all of its conditions hold:
//   - Match, a glob, matches the source path;
//   - the source document contains When (see xy.Match, with MatchText);
//   - the expression If is true for the source document.
//
// It then applies the json patch in the file File, and after that the
// merge patch Merge. Drop removes the source from the output instead.
type DirPatch struct {
	Match string `yaml:"match,omitempty"`
	When  any    `yaml:"when,omitempty"`
	If    string `yaml:"if,omitempty"`
	File  string `yaml:"patch,omitempty"`
	Merge any    `yaml:"merge,omitempty"`
	Drop  bool   `yaml:"drop,omitempty"`

	when      *ir.Node
	merge     *ir.Node
	jsonPatch []byte
}

var ErrEmptyPatch = errors.New("patch has no patch file, merge or drop")

func (p *DirPatch) init(root string) error {
	if p.File == "" && p.Merge == nil && !p.Drop {
		return ErrEmptyPatch
	}
	if p.Match != "" {
		if _, err := filepath.Match(p.Match, ""); err != nil {
			return fmt.Errorf("match %q: %w", p.Match, err)
		}
	}
	if p.When != nil {
		w, err := eval.FromAny(p.When)
		if err != nil {
			return fmt.Errorf("when: %w", err)
		}
		p.when = w
	}
	if p.Merge != nil {
		m, err := eval.FromAny(p.Merge)
		if err != nil {
			return fmt.Errorf("merge: %w", err)
		}
		p.merge = m
	}
	if p.File != "" {
		d, err := os.ReadFile(filepath.Join(root, p.File))
		if err != nil {
			return err
		}
		p.jsonPatch = d
	}
	return nil
}

func (p *DirPatch) applies(rel string, doc *ir.Node) (bool, error) {
	if p.Match != "" {
		ok, err := filepath.Match(p.Match, rel)
		if err != nil || !ok {
			return false, err
		}
	}
	if p.when != nil && !xy.Match(doc, p.when, xy.MatchText(true)) {
		return false, nil
	}
	if p.If != "" {
		return eval.Truth(p.If, doc)
	}
	return true, nil
}

func (d *Dir) patch(rel string, doc *ir.Node) (*ir.Node, error) {
	for j := range d.Patches {
		dirPatch := &d.Patches[j]
		match, err := dirPatch.applies(rel, doc)
		if err != nil {
			return nil, fmt.Errorf("patch %d: %w", j, err)
		}
		if debug.Patch() {
			debug.Logf("# doc %s\n%v\n---\n# patch %d matched %t\n", rel, doc, j, match)
		}
		if !match {
			continue
		}
		if dirPatch.Drop {
			if debug.Patch() {
				debug.Logf("patch %d dropped %s\n", j, rel)
			}
			return nil, nil
		}
		if dirPatch.jsonPatch != nil {
			doc, err = xy.Patch(doc, dirPatch.jsonPatch)
			if err != nil {
				return nil, fmt.Errorf("patch %d (%s): %w", j, dirPatch.File, err)
			}
		}
		if dirPatch.merge != nil {
			doc, err = xy.MergePatch(doc, dirPatch.merge)
			if err != nil {
				return nil, fmt.Errorf("patch %d merge: %w", j, err)
			}
		}
	}
	return doc, nil
}
