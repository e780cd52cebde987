// Package layout soft-wraps a document into visual lines and maps between
// character indices and (column, row) pairs in that wrapped space.
package layout

import (
	"fmt"

	"github.com/bethropolis/quill/internal/buffer"
	"github.com/bethropolis/quill/internal/logger"
)

// VisualLine is one soft-wrapped segment of a logical line.
type VisualLine struct {
	Offset int // start of the segment within its logical line
	Len    int // character count, at most the wrap width
	Line   int // logical line index
}

// Layout is the ordered sequence of visual lines for a document at a
// given wrap width. Rows are indices into that sequence.
type Layout struct {
	width    int
	lines    []VisualLine
	firstRow []int // firstRow[l] is the row of the first segment of logical line l
}

// New creates an empty layout wrapping at width.
func New(width int) *Layout {
	l := &Layout{}
	l.SetWidth(width)
	return l
}

// SetWidth changes the wrap width. It takes effect on the next Rebuild.
func (l *Layout) SetWidth(width int) {
	l.width = max(width, 1)
}

// Width returns the wrap width.
func (l *Layout) Width() int {
	return l.width
}

// Rebuild recomputes every visual line from doc.
func (l *Layout) Rebuild(doc *buffer.Document) {
	count := doc.LineCount()
	l.lines = l.lines[:0]
	if cap(l.firstRow) < count {
		l.firstRow = make([]int, count)
	}
	l.firstRow = l.firstRow[:count]

	for line := 0; line < count; line++ {
		l.firstRow[line] = len(l.lines)
		n := doc.LineLen(line)
		if n == 0 {
			l.lines = append(l.lines, VisualLine{Line: line})
			continue
		}
		for off := 0; off < n; off += l.width {
			l.lines = append(l.lines, VisualLine{
				Offset: off,
				Len:    min(l.width, n-off),
				Line:   line,
			})
		}
	}
	logger.DebugTagf("layout", "rebuilt %d rows for %d lines at width %d", len(l.lines), count, l.width)
}

// Len returns the number of rows.
func (l *Layout) Len() int {
	return len(l.lines)
}

// At returns the visual line at row. An out of range row means the
// caller and the layout disagree about the document, which is a bug.
func (l *Layout) At(row int) VisualLine {
	if row < 0 || row >= len(l.lines) {
		panic(fmt.Sprintf("layout: row %d out of range [0, %d)", row, len(l.lines)))
	}
	return l.lines[row]
}

// Lines returns the visual lines. The slice is owned by the layout and is
// reused by the next Rebuild.
func (l *Layout) Lines() []VisualLine {
	return l.lines
}

// FirstRow returns the row holding the first segment of logical line.
func (l *Layout) FirstRow(line int) int {
	if line < 0 || line >= len(l.firstRow) {
		panic(fmt.Sprintf("layout: no visual line for logical line %d (%d lines laid out)", line, len(l.firstRow)))
	}
	return l.firstRow[line]
}

// IsLast reports whether row is the final row of the document.
func (l *Layout) IsLast(row int) bool {
	return row == len(l.lines)-1
}
