package main

import (
	"fmt"
	"io"
	"os"

	"github.com/signadot/tony-format/xy/ir"
	"github.com/signadot/tony-format/xy/parse"
)

// readDocs reads every document of the file at path, or of in when path
// is "-".
func readDocs(in io.Reader, path string, opts ...parse.ParseOption) ([]*ir.Node, error) {
	var r io.Reader
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	} else {
		r = in
	}
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading %q: %w", path, err)
	}
	docs, err := parse.ParseAll(d, opts...)
	if err != nil {
		return nil, fmt.Errorf("error decoding %s: %w", path, err)
	}
	return docs, nil
}

func readDoc(in io.Reader, path string, opts ...parse.ParseOption) (*ir.Node, error) {
	docs, err := readDocs(in, path, opts...)
	if err != nil {
		return nil, err
	}
	if len(docs) != 1 {
		return nil, fmt.Errorf("%w: %s has %d documents, expected 1", ir.ErrStructure, path, len(docs))
	}
	return docs[0], nil
}

// eachDoc calls f on every document of files, or of in when there are no
// files.
func eachDoc(in io.Reader, files []string, opts []parse.ParseOption, f func(*ir.Node) error) error {
	if len(files) == 0 {
		files = []string{"-"}
	}
	for _, file := range files {
		docs, err := readDocs(in, file, opts...)
		if err != nil {
			return err
		}
		for _, doc := range docs {
			if err := f(doc); err != nil {
				return fmt.Errorf("error processing %s: %w", file, err)
			}
		}
	}
	return nil
}
