package dirbuild

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/signadot/tony-format/xy/encode"
	"github.com/signadot/tony-format/xy/ir"
)

func (d *Dir) destDir() (string, error) {
	dest := filepath.Join(d.Root, d.DestDir)
	st, err := os.Stat(dest)
	if err != nil {
		if !os.IsNotExist(err) {
			return "", err
		}
		if err := os.MkdirAll(dest, 0755); err != nil {
			return "", err
		}
		return dest, nil
	}
	if !st.IsDir() {
		return "", fmt.Errorf("%s exists but is not a directory", dest)
	}
	return dest, nil
}

// outName is the base name of rel with its extension replaced by the
// output suffix. Sources sharing a base name get -1, -2, ... appended.
func (d *Dir) outName(rel string) string {
	base := filepath.Base(rel)
	fn := strings.TrimSuffix(base, filepath.Ext(base))
	n := d.nameCache[fn]
	d.nameCache[fn] = n + 1
	if n != 0 {
		fn += "-" + strconv.Itoa(n)
	}
	return fn + d.Suffix
}

func (d *Dir) write(rel string, doc *ir.Node) (string, error) {
	dest, err := d.destDir()
	if err != nil {
		return "", err
	}
	buf := bytes.NewBuffer(nil)
	if err := encode.Encode(doc, buf, encode.EncodeFormat(d.format)); err != nil {
		return "", err
	}
	fp := filepath.Join(dest, d.outName(rel))
	if err := os.WriteFile(fp, buf.Bytes(), 0644); err != nil {
		return "", err
	}
	return fp, nil
}
