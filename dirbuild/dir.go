// Package dirbuild interprets an xy build directory
package dirbuild

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/signadot/tony-format/xy/debug"
	"github.com/signadot/tony-format/xy/format"

	"github.com/goccy/go-yaml"
)

// Dir is a build directory: a set of sources, each converted to one
// output format, patched and written to DestDir.
type Dir struct {
	Root    string      `yaml:"-"`
	DestDir string      `yaml:"destDir,omitempty"`
	Format  string      `yaml:"format,omitempty"`
	Suffix  string      `yaml:"suffix,omitempty"`
	Sources []DirSource `yaml:"sources"`
	Patches []DirPatch  `yaml:"patches,omitempty"`

	format    format.Format
	nameCache map[string]int
}

// DirSource names source files. Path is relative to the build directory
// and may be a glob.
type DirSource struct {
	Path   string `yaml:"path"`
	Format string `yaml:"format,omitempty"`
}

type manifest struct {
	Build *Dir `yaml:"build"`
}

var ErrNoManifest = errors.New("no build manifest")

func OpenDir(path string) (*Dir, error) {
	var (
		mPath string
		d     []byte
	)
	for _, name := range []string{"build.yaml", "build.yml"} {
		candidatePath := filepath.Join(path, name)
		var err error
		d, err = os.ReadFile(candidatePath)
		if err == nil {
			mPath = candidatePath
			break
		}
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("could not read %q: %w", candidatePath, err)
		}
	}
	if mPath == "" {
		return nil, fmt.Errorf("%w: could not find build.{yaml,yml} in %q", ErrNoManifest, path)
	}
	m := &manifest{}
	if err := yaml.Unmarshal(d, m); err != nil {
		return nil, fmt.Errorf("could not decode %s: %w", mPath, err)
	}
	if m.Build == nil {
		return nil, fmt.Errorf("%w: %s has no build key", ErrNoManifest, mPath)
	}
	dir := m.Build
	dir.Root = path
	if err := dir.init(); err != nil {
		return nil, fmt.Errorf("%s: %w", mPath, err)
	}
	if debug.Build() {
		debug.Logf("opened %s: %d sources, %d patches\n", mPath, len(dir.Sources), len(dir.Patches))
	}
	return dir, nil
}

func (d *Dir) init() error {
	if d.DestDir == "" {
		d.DestDir = "."
	}
	d.format = format.YAMLFormat
	if d.Format != "" {
		f, err := format.ParseFormat(d.Format)
		if err != nil {
			return err
		}
		d.format = f
	}
	if d.Suffix == "" {
		d.Suffix = d.format.Suffix()
	}
	for i := range d.Sources {
		src := &d.Sources[i]
		if src.Path == "" {
			return fmt.Errorf("source %d has no path", i)
		}
		if src.Format != "" {
			if _, err := format.ParseFormat(src.Format); err != nil {
				return fmt.Errorf("source %s: %w", src.Path, err)
			}
		}
	}
	for i := range d.Patches {
		if err := d.Patches[i].init(d.Root); err != nil {
			return fmt.Errorf("patch %d: %w", i, err)
		}
	}
	d.nameCache = map[string]int{}
	return nil
}

// OutputFormat is the format outputs are written in.
func (d *Dir) OutputFormat() format.Format {
	return d.format
}
