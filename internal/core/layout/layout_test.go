package layout

import (
	"testing"

	"github.com/bethropolis/quill/internal/buffer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var samples = []string{
	"",
	"a",
	"abcd",
	"abcdefghij",
	"ab\ncd",
	"abcd\n",
	"\n\n\n",
	"abcdefgh\nij\n\nklmnopqrstu",
	"one two three four\nfive",
	"é界ü\nxyz",
}

func TestRebuildSegments(t *testing.T) {
	doc := buffer.FromString("abcdefghij\n\nxy")
	l := New(4)
	l.Rebuild(doc)

	want := []VisualLine{
		{Offset: 0, Len: 4, Line: 0},
		{Offset: 4, Len: 4, Line: 0},
		{Offset: 8, Len: 3, Line: 0}, // "ij\n"
		{Offset: 0, Len: 1, Line: 1},
		{Offset: 0, Len: 2, Line: 2},
	}
	assert.Equal(t, want, l.Lines())
	assert.Equal(t, 0, l.FirstRow(0))
	assert.Equal(t, 3, l.FirstRow(1))
	assert.Equal(t, 4, l.FirstRow(2))
	assert.True(t, l.IsLast(4))
}

func TestEmptyDocumentHasPlaceholder(t *testing.T) {
	l := New(10)
	l.Rebuild(buffer.New())

	require.Equal(t, 1, l.Len())
	assert.Equal(t, VisualLine{}, l.At(0))
}

func TestPartitionInvariant(t *testing.T) {
	for _, text := range samples {
		doc := buffer.FromString(text)
		for width := 1; width <= 6; width++ {
			l := New(width)
			l.Rebuild(doc)

			sums := make([]int, doc.LineCount())
			counts := make([]int, doc.LineCount())
			prev := VisualLine{Line: -1}
			for _, vl := range l.Lines() {
				assert.LessOrEqual(t, vl.Len, width)
				if vl.Line == prev.Line {
					assert.Equal(t, prev.Offset+prev.Len, vl.Offset, "segments must be contiguous")
				} else {
					assert.Equal(t, prev.Line+1, vl.Line, "lines must be in order")
					assert.Equal(t, 0, vl.Offset)
				}
				sums[vl.Line] += vl.Len
				counts[vl.Line]++
				prev = vl
			}
			for line := range sums {
				assert.Equal(t, doc.LineLen(line), sums[line], "%q width %d line %d", text, width, line)
				if doc.LineLen(line) == 0 {
					assert.Equal(t, 1, counts[line])
				}
			}
		}
	}
}

func TestRoundTrip(t *testing.T) {
	for _, text := range samples {
		doc := buffer.FromString(text)
		for width := 1; width <= 6; width++ {
			l := New(width)
			l.Rebuild(doc)
			for i := 0; i <= doc.Len(); i++ {
				col, row := l.ToVisual(doc, i)
				assert.Equal(t, i, l.ToChar(doc, col, row), "%q width %d index %d", text, width, i)
			}
		}
	}
}

func TestToVisual(t *testing.T) {
	doc := buffer.FromString("abcdefgh\nij")
	l := New(4)
	l.Rebuild(doc)
	// rows: [abcd] [efgh] [\n] [ij]

	tests := []struct {
		index, col, row int
	}{
		{0, 0, 0},
		{3, 3, 0},
		{4, 0, 1},
		{8, 0, 2}, // before the newline of a full-width line
		{9, 0, 3},
		{11, 2, 3}, // one past the end of the document
	}
	for _, tt := range tests {
		col, row := l.ToVisual(doc, tt.index)
		assert.Equal(t, tt.col, col, "col of %d", tt.index)
		assert.Equal(t, tt.row, row, "row of %d", tt.index)
	}
}

func TestEndOfDocumentOnFullRow(t *testing.T) {
	doc := buffer.FromString("abcd")
	l := New(4)
	l.Rebuild(doc)

	col, row := l.ToVisual(doc, 4)
	assert.Equal(t, 4, col)
	assert.Equal(t, 0, row)
}

func TestStaleLayoutPanics(t *testing.T) {
	l := New(4)
	l.Rebuild(buffer.FromString("ab"))

	assert.Panics(t, func() { l.ToVisual(buffer.FromString("ab\ncd"), 4) })
	assert.Panics(t, func() { l.At(5) })
}

func TestResizeIsIdempotent(t *testing.T) {
	doc := buffer.FromString("abcdefgh\nij")
	l := New(3)
	l.Rebuild(doc)
	first := append([]VisualLine(nil), l.Lines()...)

	l.SetWidth(3)
	l.Rebuild(doc)
	assert.Equal(t, first, l.Lines())
}

func TestWidthClampedToOne(t *testing.T) {
	l := New(0)
	assert.Equal(t, 1, l.Width())
}
