package history

import (
	"testing"

	"github.com/bethropolis/quill/internal/buffer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// typer applies edits to a document the way the core buffer does:
// record first, then mutate.
type typer struct {
	doc    *buffer.Document
	cursor int
	h      *History
}

func newTyper(text string, opts ...Option) *typer {
	doc := buffer.FromString(text)
	return &typer{doc: doc, cursor: doc.Len(), h: New(doc, opts...)}
}

func (ty *typer) typeString(s string) {
	for _, r := range s {
		ty.h.Record(InsertHint(r), ty.doc, ty.cursor)
		ty.doc.InsertRune(ty.cursor, r)
		ty.cursor++
	}
}

func (ty *typer) backspace() {
	ty.h.Record(DeleteHint{}, ty.doc, ty.cursor)
	ty.cursor--
	ty.doc.Remove(ty.cursor, ty.cursor+1)
}

func (ty *typer) undo() {
	s := ty.h.Undo(ty.doc, ty.cursor)
	ty.doc, ty.cursor = s.Doc.Clone(), s.Cursor
}

func (ty *typer) redo() bool {
	s, ok := ty.h.Redo()
	if ok {
		ty.doc, ty.cursor = s.Doc.Clone(), s.Cursor
	}
	return ok
}

func TestBoundaryMerging(t *testing.T) {
	ty := newTyper("")

	ty.typeString("c")
	assert.Equal(t, 1, ty.h.Len())

	ty.typeString(" ")
	require.Equal(t, 2, ty.h.Len())
	assert.Equal(t, "c", ty.h.timeline[1].Doc.String())

	ty.typeString("c")
	assert.Equal(t, "c c", ty.doc.String())

	ty.undo()
	assert.Equal(t, "c", ty.doc.String())
	assert.Equal(t, 1, ty.cursor)
}

func TestUndoRedoDuality(t *testing.T) {
	ty := newTyper("")
	ty.typeString("one two\nthree")

	for ty.h.CanUndo() {
		before, cursor := ty.doc.String(), ty.cursor
		ty.undo()
		require.True(t, ty.redo())
		assert.Equal(t, before, ty.doc.String())
		assert.Equal(t, cursor, ty.cursor)
		ty.undo()
	}
	assert.Equal(t, "", ty.doc.String())
}

func TestRedoBlockedAfterEdit(t *testing.T) {
	ty := newTyper("")
	ty.typeString("ab cd")
	ty.undo()
	ty.typeString("x")

	assert.False(t, ty.redo())
	assert.False(t, ty.h.CanRedo())
}

func TestRecordTruncatesRedoBranch(t *testing.T) {
	ty := newTyper("")
	ty.typeString("a b c")
	ty.undo()
	ty.undo()
	n := ty.h.Len()

	ty.typeString(" z")
	assert.Less(t, ty.h.Len(), n+1)
	assert.Equal(t, ty.h.Current(), ty.h.Len()-1)
}

func TestDeleteStartsGroup(t *testing.T) {
	ty := newTyper("")
	ty.typeString("abc")
	ty.backspace()
	ty.backspace()
	assert.Equal(t, "a", ty.doc.String())

	ty.undo()
	assert.Equal(t, "abc", ty.doc.String())
	ty.undo()
	assert.Equal(t, "", ty.doc.String())
}

func TestInsertAfterDeleteStartsGroup(t *testing.T) {
	ty := newTyper("")
	ty.typeString("abc")
	ty.backspace()
	ty.typeString("xy")

	ty.undo()
	assert.Equal(t, "ab", ty.doc.String())
}

func TestExplicitBoundary(t *testing.T) {
	ty := newTyper("")
	ty.typeString("ab")
	ty.h.Boundary()
	ty.typeString("cd")

	ty.undo()
	assert.Equal(t, "ab", ty.doc.String())
}

func TestUndoAtBaselineIsStable(t *testing.T) {
	ty := newTyper("base")
	ty.undo()
	assert.Equal(t, "base", ty.doc.String())
	assert.Equal(t, 0, ty.h.Current())
	assert.False(t, ty.h.CanUndo())
}

func TestSaveAndModified(t *testing.T) {
	ty := newTyper("")
	assert.False(t, ty.h.Modified())

	ty.typeString("abc")
	assert.True(t, ty.h.Modified())

	ty.h.Save(ty.doc, ty.cursor)
	assert.False(t, ty.h.Modified())
	assert.False(t, ty.h.Dirty())

	ty.undo()
	assert.True(t, ty.h.Modified())
	require.True(t, ty.redo())
	assert.False(t, ty.h.Modified())
}

func TestEvictionKeepsBaseline(t *testing.T) {
	ty := newTyper("", WithMaxSnapshots(3))
	ty.h.Save(ty.doc, ty.cursor)
	ty.typeString("a b c d e ")

	assert.Equal(t, 3, ty.h.Len())
	assert.Equal(t, "", ty.h.timeline[0].Doc.String())
	assert.Equal(t, 0, ty.h.saved)

	ty.h.Save(ty.doc, ty.cursor)
	ty.typeString("f ")
	assert.Equal(t, 1, ty.h.saved, "saved index follows eviction")

	ty.typeString("g ")
	assert.Equal(t, -1, ty.h.saved)
	assert.True(t, ty.h.Modified())
}

func TestHints(t *testing.T) {
	assert.True(t, InsertHint(' ').ShouldStash(InsertAction))
	assert.True(t, InsertHint('\n').ShouldStash(InsertAction))
	assert.False(t, InsertHint('x').ShouldStash(InsertAction))
	assert.False(t, InsertHint('x').ShouldStash(NoAction))
	assert.True(t, InsertHint('x').ShouldStash(DeleteAction))
	assert.True(t, DeleteHint{}.ShouldStash(InsertAction))
	assert.False(t, DeleteHint{}.ShouldStash(DeleteAction))
	assert.True(t, PasteHint{}.ShouldStash(InsertAction))
	assert.True(t, InsertHint('x').ShouldStash(PasteAction))
	assert.True(t, DeleteHint{}.ShouldStash(PasteAction))
}

func TestUndoRefreshesCursorOfUnchangedSnapshot(t *testing.T) {
	ty := newTyper("")
	ty.typeString("ab ")
	ty.undo()
	require.True(t, ty.redo())

	ty.cursor = 1
	ty.undo()
	require.True(t, ty.redo())
	assert.Equal(t, "ab ", ty.doc.String())
	assert.Equal(t, 1, ty.cursor)
}
