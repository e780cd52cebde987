// Package core is the editing core: a Buffer ties a document to its
// soft-wrap layout, cursor, viewport and undo history.
package core

import (
	"strings"
	"unicode/utf8"

	"github.com/bethropolis/quill/internal/buffer"
	"github.com/bethropolis/quill/internal/core/cursor"
	"github.com/bethropolis/quill/internal/core/history"
	"github.com/bethropolis/quill/internal/core/layout"
	"github.com/bethropolis/quill/internal/logger"
)

// Row is one visible row as handed to a renderer.
type Row struct {
	Line      int    // logical line, for the gutter
	Continued bool   // the row continues a wrapped logical line
	Text      string // segment text without its newline
}

// Buffer owns a document and everything derived from it. It is not safe
// for concurrent use.
type Buffer struct {
	doc    *buffer.Document
	layout *layout.Layout
	view   cursor.Viewport
	cur    cursor.Cursor
	hist   *history.History
}

type options struct {
	historyOpts []history.Option
}

// Option configures a Buffer.
type Option func(*options)

// WithMaxHistory limits the number of undo snapshots kept.
func WithMaxHistory(n int) Option {
	return func(o *options) {
		o.historyOpts = append(o.historyOpts, history.WithMaxSnapshots(n))
	}
}

// New creates a buffer editing doc in a width x height window, with the
// cursor at the start of the document.
func New(doc *buffer.Document, width, height int, opts ...Option) *Buffer {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	b := &Buffer{
		doc:  doc,
		view: cursor.NewViewport(width, height),
		hist: history.New(doc, o.historyOpts...),
	}
	b.layout = layout.New(b.view.Width)
	b.fixViewport()
	return b
}

// fixViewport rebuilds the layout after the document or width changed
// arbitrarily and brings the cursor row back on screen.
func (b *Buffer) fixViewport() {
	b.layout.Rebuild(b.doc)
	_, row := b.layout.ToVisual(b.doc, b.cur.Index)
	b.view.Follow(row)
	b.view.Clamp(b.layout.Len())
}

// moveHorizontal moves by delta characters. Moves past either end of the
// document are ignored.
func (b *Buffer) moveHorizontal(delta int) bool {
	target := b.cur.Index + delta
	if target < 0 || target > b.doc.Len() {
		return false
	}
	b.cur.Index = target
	col, row := b.layout.ToVisual(b.doc, target)
	b.cur.Sticky = col
	b.view.Follow(row)
	return true
}

// moveVertical moves by delta visual rows, aiming for the sticky column.
func (b *Buffer) moveVertical(delta int) bool {
	_, row := b.layout.ToVisual(b.doc, b.cur.Index)
	target := row + delta
	if target < 0 || target >= b.layout.Len() {
		return false
	}
	b.view.Follow(target)

	vl := b.layout.At(target)
	var col int
	switch {
	case b.cur.Sticky < vl.Len:
		col = b.cur.Sticky
	case b.layout.IsLast(target):
		// nothing follows the last row, so the cursor may rest past its end
		col = vl.Len
	default:
		// stop before the line break or the wrap point
		col = max(1, vl.Len) - 1
	}
	b.cur.Index = b.layout.ToChar(b.doc, col, target)
	return true
}

// Move moves the cursor amount steps along dir. A move always closes the
// current undo group, even when it is rejected at the document edge.
func (b *Buffer) Move(dir cursor.Direction, amount int) bool {
	b.hist.Boundary()
	switch dir {
	case cursor.Horizontal:
		return b.moveHorizontal(amount)
	case cursor.Vertical:
		return b.moveVertical(amount)
	default:
		logger.Warnf("core: unknown move direction %v", dir)
		return false
	}
}

// Insert types r at the cursor.
func (b *Buffer) Insert(r rune) {
	b.hist.Record(history.InsertHint(r), b.doc, b.cur.Index)
	b.doc.InsertRune(b.cur.Index, r)
	b.layout.Rebuild(b.doc)
	b.moveHorizontal(1)
}

// InsertString types every rune of s.
func (b *Buffer) InsertString(s string) {
	for _, r := range s {
		b.Insert(r)
	}
}

// Paste inserts s at the cursor as a single undo group.
func (b *Buffer) Paste(s string) {
	if s == "" {
		return
	}
	b.hist.Record(history.PasteHint{}, b.doc, b.cur.Index)
	b.doc.InsertString(b.cur.Index, s)
	b.layout.Rebuild(b.doc)
	b.moveHorizontal(utf8.RuneCountInString(s))
}

// Delete removes amount characters before the cursor. It does nothing if
// there are fewer than amount characters before it.
func (b *Buffer) Delete(amount int) bool {
	if amount <= 0 || b.cur.Index < amount {
		return false
	}
	b.hist.Record(history.DeleteHint{}, b.doc, b.cur.Index)
	b.moveHorizontal(-amount)
	b.doc.Remove(b.cur.Index, b.cur.Index+amount)
	b.fixViewport()
	return true
}

// install replaces the document and cursor with a snapshot.
func (b *Buffer) install(s history.Snapshot) {
	b.doc = s.Doc.Clone()
	b.cur.Index = min(s.Cursor, b.doc.Len())
	b.fixViewport()
	b.cur.Sticky, _ = b.layout.ToVisual(b.doc, b.cur.Index)
}

// Undo restores the previous snapshot.
func (b *Buffer) Undo() {
	b.install(b.hist.Undo(b.doc, b.cur.Index))
	logger.Debugf("core: undo, cursor at %d", b.cur.Index)
}

// Redo restores the next snapshot. It reports false when there is
// nothing to redo or edits were made since the last undo.
func (b *Buffer) Redo() bool {
	s, ok := b.hist.Redo()
	if !ok {
		return false
	}
	b.install(s)
	logger.Debugf("core: redo, cursor at %d", b.cur.Index)
	return true
}

// Resize changes the wrap width and visible height.
func (b *Buffer) Resize(width, height int) {
	b.view.Resize(width, height)
	b.layout.SetWidth(b.view.Width)
	b.fixViewport()
}

// Save marks the current state as saved. Writing the document out is the
// caller's job.
func (b *Buffer) Save() {
	b.hist.Save(b.doc, b.cur.Index)
}

// IsModified reports whether there are changes since the last Save.
func (b *Buffer) IsModified() bool {
	return b.hist.Modified()
}

// CursorPosition returns the cursor column and its row relative to the
// top of the viewport.
func (b *Buffer) CursorPosition() (col, row int) {
	col, row = b.layout.ToVisual(b.doc, b.cur.Index)
	return col, b.view.Screen(row)
}

// LineCol returns the cursor's logical line and column.
func (b *Buffer) LineCol() (line, col int) {
	line = b.doc.CharToLine(b.cur.Index)
	return line, b.cur.Index - b.doc.LineToChar(line)
}

// VisibleRows returns the rows inside the viewport.
func (b *Buffer) VisibleRows() []Row {
	start, end := b.view.Visible(b.layout.Len())
	rows := make([]Row, 0, end-start)
	for row := start; row < end; row++ {
		vl := b.layout.At(row)
		from := b.doc.LineToChar(vl.Line) + vl.Offset
		rows = append(rows, Row{
			Line:      vl.Line,
			Continued: vl.Offset > 0,
			Text:      strings.TrimSuffix(b.doc.Slice(from, from+vl.Len), "\n"),
		})
	}
	return rows
}

// Cursor returns the cursor state.
func (b *Buffer) Cursor() cursor.Cursor {
	return b.cur
}

// CursorIndex returns the cursor's character index.
func (b *Buffer) CursorIndex() int {
	return b.cur.Index
}

// Viewport returns the viewport state.
func (b *Buffer) Viewport() cursor.Viewport {
	return b.view
}

// Layout returns the current layout. It is rebuilt in place by edits.
func (b *Buffer) Layout() *layout.Layout {
	return b.layout
}

// History returns the undo history.
func (b *Buffer) History() *history.History {
	return b.hist
}

// Document returns the live document. Callers must not modify it.
func (b *Buffer) Document() *buffer.Document {
	return b.doc
}

// Text returns the whole document.
func (b *Buffer) Text() string {
	return b.doc.String()
}
