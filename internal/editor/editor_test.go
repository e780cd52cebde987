package editor

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/bethropolis/quill/internal/buffer"
	"github.com/bethropolis/quill/internal/command"
	"github.com/bethropolis/quill/internal/core/cursor"
	"github.com/bethropolis/quill/internal/event"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEditor(t *testing.T, opts ...Option) *Editor {
	t.Helper()
	opts = append([]Option{WithClipboard(&Register{})}, opts...)
	return NewEditor(20, 5, opts...)
}

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestOpenReplacesScratchBuffer(t *testing.T) {
	e := newTestEditor(t)
	path := writeTemp(t, "a.txt", "hello\nworld\n")

	require.NoError(t, e.Open(path))
	require.Len(t, e.Files(), 1)
	assert.Equal(t, path, e.Active().Name)
	assert.Equal(t, "hello\nworld\n", e.Active().Buf.Text())
	assert.False(t, e.Active().Buf.IsModified())
}

func TestOpenMissingFile(t *testing.T) {
	e := newTestEditor(t)
	path := filepath.Join(t.TempDir(), "new.txt")

	require.NoError(t, e.Open(path))
	assert.Equal(t, path, e.Active().Name)
	assert.Equal(t, "", e.Active().Buf.Text())
}

func TestOpenAlreadyOpenSwitches(t *testing.T) {
	e := newTestEditor(t)
	a := writeTemp(t, "a.txt", "a")
	b := writeTemp(t, "b.txt", "b")
	require.NoError(t, e.Open(a))
	require.NoError(t, e.Open(b))
	require.Equal(t, 1, e.ActiveIndex())

	require.NoError(t, e.Open(a))
	assert.Len(t, e.Files(), 2)
	assert.Equal(t, 0, e.ActiveIndex())
}

func TestBufferSwitching(t *testing.T) {
	e := newTestEditor(t)
	e.Insert('x')
	e.New()
	e.New()
	require.Len(t, e.Files(), 3)
	assert.Equal(t, 2, e.ActiveIndex())

	e.Next()
	assert.Equal(t, 0, e.ActiveIndex())
	assert.Equal(t, "x", e.Active().Buf.Text())
	e.Prev()
	assert.Equal(t, 2, e.ActiveIndex())
}

func TestWriteAndModifiedFlow(t *testing.T) {
	e := newTestEditor(t)
	e.InsertString("one\ntwo")
	assert.True(t, e.Active().Buf.IsModified())

	_, err := e.Write("")
	assert.ErrorIs(t, err, ErrNoFileName)

	path := filepath.Join(t.TempDir(), "out.txt")
	n, err := e.Write(path)
	require.NoError(t, err)
	assert.Equal(t, path, e.Active().Name)
	assert.False(t, e.Active().Buf.IsModified())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, int64(len(data)), n)
	assert.Contains(t, string(data), "two")
}

func TestWritePreservesCRLF(t *testing.T) {
	e := newTestEditor(t)
	path := writeTemp(t, "dos.txt", "a\r\nb\r\n")
	require.NoError(t, e.Open(path))
	assert.Equal(t, "a\nb\n", e.Active().Buf.Text())

	e.Move(cursor.Horizontal, 1)
	e.Insert('!')
	_, err := e.Write("")
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "a!\r\nb\r\n", string(data))
}

func TestCloseRefusesUnsaved(t *testing.T) {
	e := newTestEditor(t)
	e.Insert('x')
	e.New()

	last, err := e.Close(false)
	require.NoError(t, err)
	assert.False(t, last)
	require.Len(t, e.Files(), 1)

	_, err = e.Close(false)
	assert.ErrorIs(t, err, ErrUnsavedChanges)

	last, err = e.Close(true)
	require.NoError(t, err)
	assert.True(t, last)
}

func TestExecuteQuit(t *testing.T) {
	e := newTestEditor(t)
	res, err := e.Execute(command.Command{Kind: command.Quit})
	require.NoError(t, err)
	assert.True(t, res.Quit)

	e.Insert('x')
	_, err = e.Execute(command.Command{Kind: command.Quit})
	assert.ErrorIs(t, err, ErrUnsavedChanges)

	res, err = e.Execute(command.Command{Kind: command.ForceQuit})
	require.NoError(t, err)
	assert.True(t, res.Quit)
}

func TestExecuteWriteQuit(t *testing.T) {
	e := newTestEditor(t)
	e.Insert('x')
	path := filepath.Join(t.TempDir(), "x.txt")

	res, err := e.Execute(command.Command{Kind: command.WriteQuit, Arg: path})
	require.NoError(t, err)
	assert.True(t, res.Quit)
}

func TestExecuteUndoRedo(t *testing.T) {
	e := newTestEditor(t)
	res, err := e.Execute(command.Command{Kind: command.Undo})
	require.NoError(t, err)
	assert.Equal(t, "Already at oldest change", res.Message)

	e.InsertString("ab")
	_, err = e.Execute(command.Command{Kind: command.Undo})
	require.NoError(t, err)
	assert.Equal(t, "", e.Active().Buf.Text())

	_, err = e.Execute(command.Command{Kind: command.Redo})
	require.NoError(t, err)
	assert.Equal(t, "ab", e.Active().Buf.Text())
}

func TestPasteAndYank(t *testing.T) {
	clip := &Register{Text: "x\r\ny"}
	e := newTestEditor(t, WithClipboard(clip))

	require.NoError(t, e.Paste())
	assert.Equal(t, "x\ny", e.Active().Buf.Text())

	e.Move(cursor.Vertical, -1)
	_, err := e.Execute(command.Command{Kind: command.Yank})
	require.NoError(t, err)
	assert.Equal(t, "x", clip.Text)
}

func TestEventsDispatched(t *testing.T) {
	events := event.NewManager()
	var got []event.Type
	record := func(ev event.Event) bool {
		got = append(got, ev.Type)
		return false
	}
	for _, typ := range []event.Type{event.TypeBufferModified, event.TypeBufferSaved, event.TypeBufferSwitched, event.TypeCursorMoved} {
		events.Subscribe(typ, record)
	}

	e := newTestEditor(t, WithEvents(events))
	e.Insert('a')
	e.Move(cursor.Horizontal, -1)
	_, err := e.Write(filepath.Join(t.TempDir(), "a.txt"))
	require.NoError(t, err)
	e.New()

	assert.Equal(t, []event.Type{
		event.TypeBufferModified,
		event.TypeCursorMoved,
		event.TypeBufferSaved,
		event.TypeBufferSwitched,
	}, got)
}

func TestResizeAppliesToAllBuffers(t *testing.T) {
	e := newTestEditor(t)
	e.New()
	e.Resize(7, 3)

	for _, f := range e.Files() {
		assert.Equal(t, 7, f.Buf.Viewport().Width)
		assert.Equal(t, 3, f.Buf.Viewport().Height)
	}
}

func TestPasteIsOneUndoGroup(t *testing.T) {
	clip := &Register{Text: "one two\nthree "}
	e := newTestEditor(t, WithClipboard(clip))
	e.InsertString("x ")

	require.NoError(t, e.Paste())
	assert.Equal(t, "x one two\nthree ", e.Active().Buf.Text())
	assert.Equal(t, 16, e.Active().Buf.CursorIndex())

	e.Insert('y')
	require.True(t, e.Undo())
	assert.Equal(t, "x one two\nthree ", e.Active().Buf.Text(), "typing after a paste is its own group")
	require.True(t, e.Undo())
	assert.Equal(t, "x ", e.Active().Buf.Text())
	assert.Equal(t, 2, e.Active().Buf.CursorIndex())
}

func TestOpenRejectsInvalidUTF8(t *testing.T) {
	path := writeTemp(t, "bin.dat", "ab\xfe")
	e := newTestEditor(t)

	err := e.Open(path)
	assert.ErrorIs(t, err, buffer.ErrInvalidUTF8)
	assert.Equal(t, "", e.Active().Name)
}
