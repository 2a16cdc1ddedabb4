package token

import (
	"fmt"
	"slices"
	"strconv"
)

// PosDoc maps byte offsets in a document to lines and columns.
type PosDoc struct {
	d      []byte
	starts []int
}

func NewPosDoc(d []byte) *PosDoc {
	p := &PosDoc{d: d, starts: []int{0}}
	for i, c := range d {
		if c == '\n' {
			p.starts = append(p.starts, i+1)
		}
	}
	return p
}

// LineCol returns the 1-based line and column of offset off.
func (p *PosDoc) LineCol(off int) (line, col int) {
	i, found := slices.BinarySearch(p.starts, off)
	if !found {
		i--
	}
	return i + 1, off - p.starts[i] + 1
}

// Pos clamps i to the document and returns its position.
func (p *PosDoc) Pos(i int) Pos {
	return Pos{Off: max(0, min(i, len(p.d))), Doc: p}
}

type Pos struct {
	Off int
	Doc *PosDoc
}

// String shows the position with a few bytes of context.
func (p Pos) String() string {
	d := p.Doc.d
	ctx := strconv.Quote(string(d[max(0, p.Off-5):min(p.Off+5, len(d))]))
	line, col := p.Doc.LineCol(p.Off)
	return fmt.Sprintf("near %s at offset %d (line=%d, col=%d)", ctx, p.Off, line, col)
}
