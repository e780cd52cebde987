package layout

import (
	"fmt"

	"github.com/bethropolis/quill/internal/buffer"
)

// ToVisual maps a character index to its column and absolute row.
//
// A position at the end of a segment belongs to the next segment of the
// same line. Only the last row of the document may hold a column equal
// to its length, since nothing follows it.
func (l *Layout) ToVisual(doc *buffer.Document, index int) (col, row int) {
	line := doc.CharToLine(index)
	row = l.FirstRow(line)
	local := index - doc.LineToChar(line)

	for {
		vl := l.At(row)
		if vl.Line != line {
			panic(fmt.Sprintf("layout: row %d belongs to line %d, expected line %d", row, vl.Line, line))
		}
		if local < vl.Len || l.IsLast(row) {
			break
		}
		next := l.At(row + 1)
		if next.Line != line {
			panic(fmt.Sprintf("layout: segments of line %d end before column %d", line, local))
		}
		local -= vl.Len
		row++
	}
	return local, row
}

// ToChar maps a column on an absolute row back to a character index.
func (l *Layout) ToChar(doc *buffer.Document, col, row int) int {
	vl := l.At(row)
	return doc.LineToChar(vl.Line) + vl.Offset + col
}
