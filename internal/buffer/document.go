// Package buffer holds the document the editor works on: a rune sequence
// stored as newline-separated lines, addressed by character index.
package buffer

import (
	"fmt"
	"slices"
	"sort"
	"strings"
)

// Document is a rune sequence with line-oriented random access.
//
// Lines are stored without their terminating newline. Line storage is
// copy-on-write: a line slice is never modified once written, so Clone
// can share it with the original.
type Document struct {
	lines  [][]rune
	starts []int // starts[i] is the character index where line i begins
	ending string
}

// New creates an empty document.
func New() *Document {
	return FromString("")
}

// FromString creates a document holding s. Line endings are not
// normalised here, see Read.
func FromString(s string) *Document {
	parts := strings.Split(s, "\n")
	d := &Document{
		lines:  make([][]rune, len(parts)),
		ending: nativeLineEnding,
	}
	for i, p := range parts {
		d.lines[i] = []rune(p)
	}
	d.reindex(0)
	return d
}

// reindex recomputes line starts from line onward.
func (d *Document) reindex(line int) {
	if cap(d.starts) < len(d.lines) {
		starts := make([]int, len(d.lines))
		copy(starts, d.starts)
		d.starts = starts
	}
	d.starts = d.starts[:len(d.lines)]
	if line <= 0 {
		d.starts[0] = 0
		line = 1
	}
	for i := line; i < len(d.lines); i++ {
		d.starts[i] = d.starts[i-1] + len(d.lines[i-1]) + 1
	}
}

// Len returns the number of characters, newlines included.
func (d *Document) Len() int {
	last := len(d.lines) - 1
	return d.starts[last] + len(d.lines[last])
}

// LineCount returns the number of lines. A document ending in a newline
// has a trailing empty line, so the result is never zero.
func (d *Document) LineCount() int {
	return len(d.lines)
}

// LineLen returns the character count of line, its newline included.
// Only the last line has no newline.
func (d *Document) LineLen(line int) int {
	n := len(d.lines[line])
	if line < len(d.lines)-1 {
		n++
	}
	return n
}

// Line returns the content of line including its newline, if any.
func (d *Document) Line(line int) string {
	if line < len(d.lines)-1 {
		return string(d.lines[line]) + "\n"
	}
	return string(d.lines[line])
}

// CharToLine returns the line containing index. index may equal Len().
func (d *Document) CharToLine(index int) int {
	if index < 0 || index > d.Len() {
		panic(fmt.Sprintf("buffer: char index %d out of range [0, %d]", index, d.Len()))
	}
	return sort.Search(len(d.starts), func(i int) bool { return d.starts[i] > index }) - 1
}

// LineToChar returns the character index where line starts. line may
// equal LineCount(), which maps to Len().
func (d *Document) LineToChar(line int) int {
	if line == len(d.lines) {
		return d.Len()
	}
	return d.starts[line]
}

// position splits index into line and column.
func (d *Document) position(index int) (int, int) {
	line := d.CharToLine(index)
	return line, index - d.starts[line]
}

// InsertRune inserts r before index. A newline splits the line.
func (d *Document) InsertRune(index int, r rune) {
	line, col := d.position(index)
	cur := d.lines[line]

	if r == '\n' {
		left := slices.Clone(cur[:col])
		right := slices.Clone(cur[col:])
		d.lines = slices.Insert(d.lines, line+1, right)
		d.lines[line] = left
		d.reindex(line + 1)
		return
	}

	next := make([]rune, 0, len(cur)+1)
	next = append(next, cur[:col]...)
	next = append(next, r)
	next = append(next, cur[col:]...)
	d.lines[line] = next
	d.reindex(line + 1)
}

// InsertString inserts s before index.
func (d *Document) InsertString(index int, s string) {
	for _, r := range s {
		d.InsertRune(index, r)
		index++
	}
}

// Remove deletes the characters in [start, end).
func (d *Document) Remove(start, end int) {
	if start >= end {
		return
	}
	l1, c1 := d.position(start)
	l2, c2 := d.position(end)

	merged := make([]rune, 0, c1+len(d.lines[l2])-c2)
	merged = append(merged, d.lines[l1][:c1]...)
	merged = append(merged, d.lines[l2][c2:]...)

	d.lines = slices.Delete(d.lines, l1+1, l2+1)
	d.lines[l1] = merged
	d.reindex(l1 + 1)
}

// Slice returns the characters in [start, end) as a string.
func (d *Document) Slice(start, end int) string {
	if start >= end {
		return ""
	}
	l1, c1 := d.position(start)
	l2, c2 := d.position(end)
	if l1 == l2 {
		return string(d.lines[l1][c1:c2])
	}

	var sb strings.Builder
	sb.WriteString(string(d.lines[l1][c1:]))
	for i := l1 + 1; i <= l2; i++ {
		sb.WriteByte('\n')
		if i == l2 {
			sb.WriteString(string(d.lines[i][:c2]))
		} else {
			sb.WriteString(string(d.lines[i]))
		}
	}
	return sb.String()
}

// Clone returns a copy sharing line storage with d.
func (d *Document) Clone() *Document {
	return &Document{
		lines:  slices.Clone(d.lines),
		starts: slices.Clone(d.starts),
		ending: d.ending,
	}
}

// Equal reports whether d and o hold the same characters.
func (d *Document) Equal(o *Document) bool {
	if d == o {
		return true
	}
	if o == nil || len(d.lines) != len(o.lines) {
		return false
	}
	for i := range d.lines {
		if !slices.Equal(d.lines[i], o.lines[i]) {
			return false
		}
	}
	return true
}

// String returns the whole content with '\n' line endings.
func (d *Document) String() string {
	return d.Slice(0, d.Len())
}
