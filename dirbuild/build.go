package dirbuild

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/signadot/tony-format/xy"
	"github.com/signadot/tony-format/xy/debug"
	"github.com/signadot/tony-format/xy/format"
	"github.com/signadot/tony-format/xy/ir"
	"github.com/signadot/tony-format/xy/parse"
)

type source struct {
	rel    string
	format format.Format
}

// Build converts every source, applies the patches that apply to it and
// writes the result. It returns the paths written, relative to the
// working directory.
func (d *Dir) Build() ([]string, error) {
	srcs, err := d.sources()
	if err != nil {
		return nil, err
	}
	var res []string
	for _, src := range srcs {
		doc, err := d.load(src)
		if err != nil {
			return res, err
		}
		doc, err = d.patch(src.rel, doc)
		if err != nil {
			return res, fmt.Errorf("%s: %w", src.rel, err)
		}
		if doc == nil {
			continue
		}
		out, err := d.write(src.rel, doc)
		if err != nil {
			return res, fmt.Errorf("%s: %w", src.rel, err)
		}
		if debug.Build() {
			debug.Logf("built %s -> %s\n", src.rel, out)
		}
		res = append(res, out)
	}
	return res, nil
}

func (d *Dir) sources() ([]source, error) {
	var res []source
	seen := map[string]bool{}
	for i := range d.Sources {
		ds := &d.Sources[i]
		matches, err := filepath.Glob(filepath.Join(d.Root, ds.Path))
		if err != nil {
			return nil, fmt.Errorf("source %s: %w", ds.Path, err)
		}
		if len(matches) == 0 {
			return nil, fmt.Errorf("source %s: %w", ds.Path, os.ErrNotExist)
		}
		slices.Sort(matches)
		for _, m := range matches {
			rel, err := filepath.Rel(d.Root, m)
			if err != nil {
				return nil, err
			}
			if seen[rel] {
				continue
			}
			seen[rel] = true
			f, err := sourceFormat(ds, rel)
			if err != nil {
				return nil, err
			}
			res = append(res, source{rel: rel, format: f})
		}
	}
	return res, nil
}

func sourceFormat(ds *DirSource, rel string) (format.Format, error) {
	if ds.Format != "" {
		return format.ParseFormat(ds.Format)
	}
	f, err := format.FromPath(rel)
	if err != nil {
		return 0, fmt.Errorf("source %s: %w", rel, err)
	}
	return f, nil
}

func (d *Dir) load(src source) (*ir.Node, error) {
	path := filepath.Join(d.Root, src.rel)
	switch src.format {
	case format.XMLFormat:
		return xy.LoadXML(path)
	case format.YAMLFormat:
		return xy.LoadYAML(path)
	default:
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		doc, err := parse.Parse(data, parse.ParseFormat(src.format))
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		return doc, nil
	}
}
