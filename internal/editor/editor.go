// Package editor holds the open files and runs prompt commands against
// them.
package editor

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/bethropolis/quill/internal/buffer"
	"github.com/bethropolis/quill/internal/command"
	"github.com/bethropolis/quill/internal/core"
	"github.com/bethropolis/quill/internal/core/cursor"
	"github.com/bethropolis/quill/internal/event"
	"github.com/bethropolis/quill/internal/logger"
)

var (
	// ErrNoFileName is returned when writing a buffer that has no name.
	ErrNoFileName = errors.New("no file name")
	// ErrUnsavedChanges is returned when closing or quitting would lose edits.
	ErrUnsavedChanges = errors.New("unsaved changes")
)

// File is an open buffer and the path it is saved to.
type File struct {
	Name string
	Buf  *core.Buffer
}

// DisplayName returns the name shown to the user.
func (f *File) DisplayName() string {
	if f.Name == "" {
		return "[No Name]"
	}
	return f.Name
}

func (f *File) pristine() bool {
	return f.Name == "" && !f.Buf.IsModified() && f.Buf.Document().Len() == 0
}

// Result is the outcome of a command.
type Result struct {
	Quit    bool
	Message string
}

// Editor is the set of open files. There is always at least one.
type Editor struct {
	files  []*File
	active int
	width  int
	height int

	bufOpts []core.Option
	events  *event.Manager
	clip    Clipboard
}

// Option configures an Editor.
type Option func(*Editor)

// WithBufferOptions applies opts to every buffer the editor creates.
func WithBufferOptions(opts ...core.Option) Option {
	return func(e *Editor) {
		e.bufOpts = append(e.bufOpts, opts...)
	}
}

// WithEvents makes the editor dispatch buffer events to m.
func WithEvents(m *event.Manager) Option {
	return func(e *Editor) {
		e.events = m
	}
}

// WithClipboard replaces the system clipboard.
func WithClipboard(c Clipboard) Option {
	return func(e *Editor) {
		e.clip = c
	}
}

// NewEditor creates an editor with one empty, unnamed buffer sized to
// the text area.
func NewEditor(width, height int, opts ...Option) *Editor {
	e := &Editor{
		width:  width,
		height: height,
		clip:   &SystemClipboard{},
	}
	for _, opt := range opts {
		opt(e)
	}
	e.files = []*File{e.newFile("", buffer.New())}
	return e
}

func (e *Editor) newFile(name string, doc *buffer.Document) *File {
	return &File{Name: name, Buf: core.New(doc, e.width, e.height, e.bufOpts...)}
}

// add appends f and makes it active. A pristine scratch buffer in the
// active slot is replaced rather than kept.
func (e *Editor) add(f *File) {
	if e.Active().pristine() {
		e.files[e.active] = f
	} else {
		e.files = append(e.files, f)
		e.active = len(e.files) - 1
	}
	e.switched()
}

func (e *Editor) switched() {
	e.events.Dispatch(event.TypeBufferSwitched, event.BufferData{Name: e.Active().Name, Index: e.active})
}

// Active returns the file being edited.
func (e *Editor) Active() *File {
	return e.files[e.active]
}

// ActiveIndex returns the position of the active file.
func (e *Editor) ActiveIndex() int {
	return e.active
}

// Files returns the open files in order.
func (e *Editor) Files() []*File {
	return e.files
}

// Open loads path into a new buffer and makes it active. A path that
// does not exist yet opens an empty buffer with that name. Opening a file
// that is already open switches to it.
func (e *Editor) Open(path string) error {
	for i, f := range e.files {
		if f.Name != "" && samePath(f.Name, path) {
			e.active = i
			e.switched()
			return nil
		}
	}

	doc, err := load(path)
	if err != nil {
		return err
	}
	e.add(e.newFile(path, doc))
	logger.Infof("editor: opened %s (%d lines)", path, doc.LineCount())
	e.events.Dispatch(event.TypeBufferLoaded, event.BufferData{Name: path, Index: e.active})
	return nil
}

func load(path string) (*buffer.Document, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return buffer.New(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	doc, err := buffer.Read(f)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return doc, nil
}

func samePath(a, b string) bool {
	if a == b {
		return true
	}
	absA, errA := filepath.Abs(a)
	absB, errB := filepath.Abs(b)
	return errA == nil && errB == nil && absA == absB
}

// New opens an empty, unnamed buffer.
func (e *Editor) New() {
	e.files = append(e.files, e.newFile("", buffer.New()))
	e.active = len(e.files) - 1
	e.switched()
}

// Next makes the following buffer active, wrapping around.
func (e *Editor) Next() {
	e.active = (e.active + 1) % len(e.files)
	e.switched()
}

// Prev makes the preceding buffer active, wrapping around.
func (e *Editor) Prev() {
	e.active = (e.active + len(e.files) - 1) % len(e.files)
	e.switched()
}

// Resize sets the text area size of every buffer.
func (e *Editor) Resize(width, height int) {
	e.width, e.height = width, height
	for _, f := range e.files {
		f.Buf.Resize(width, height)
	}
}

// Write saves the active buffer to path, or to its own name when path is
// empty. Writing to a new path renames the buffer.
func (e *Editor) Write(path string) (int64, error) {
	f := e.Active()
	if path == "" {
		path = f.Name
	}
	if path == "" {
		return 0, ErrNoFileName
	}

	n, err := writeFile(path, f.Buf.Document())
	if err != nil {
		return n, err
	}
	f.Name = path
	f.Buf.Save()
	logger.Infof("editor: wrote %d bytes to %s", n, path)
	e.events.Dispatch(event.TypeBufferSaved, event.BufferSavedData{Name: path, Bytes: n})
	return n, nil
}

func writeFile(path string, doc *buffer.Document) (n int64, err error) {
	out, err := os.Create(path)
	if err != nil {
		return 0, fmt.Errorf("create %s: %w", path, err)
	}
	defer func() {
		if cerr := out.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close %s: %w", path, cerr)
		}
	}()

	n, err = doc.WriteTo(out)
	if err != nil {
		return n, fmt.Errorf("write %s: %w", path, err)
	}
	return n, nil
}

// Close closes the active buffer. Unless force is set a modified buffer
// is kept and ErrUnsavedChanges returned. It reports true when the last
// buffer was closed.
func (e *Editor) Close(force bool) (bool, error) {
	f := e.Active()
	if !force && f.Buf.IsModified() {
		return false, fmt.Errorf("%s: %w", f.DisplayName(), ErrUnsavedChanges)
	}
	e.events.Dispatch(event.TypeBufferClosed, event.BufferData{Name: f.Name, Index: e.active})

	if len(e.files) == 1 {
		e.files[0] = e.newFile("", buffer.New())
		return true, nil
	}
	e.files = append(e.files[:e.active], e.files[e.active+1:]...)
	if e.active == len(e.files) {
		e.active--
	}
	e.switched()
	return false, nil
}

// Modified returns the display names of buffers with unsaved changes.
func (e *Editor) Modified() []string {
	var names []string
	for _, f := range e.files {
		if f.Buf.IsModified() {
			names = append(names, f.DisplayName())
		}
	}
	return names
}

// CanQuit returns ErrUnsavedChanges if any buffer is modified.
func (e *Editor) CanQuit() error {
	if names := e.Modified(); len(names) > 0 {
		return fmt.Errorf("%s: %w", strings.Join(names, ", "), ErrUnsavedChanges)
	}
	return nil
}

// Insert types r into the active buffer.
func (e *Editor) Insert(r rune) {
	e.Active().Buf.Insert(r)
	e.modified()
}

// InsertString types s into the active buffer.
func (e *Editor) InsertString(s string) {
	e.Active().Buf.InsertString(s)
	e.modified()
}

// Delete removes amount characters before the cursor.
func (e *Editor) Delete(amount int) bool {
	if !e.Active().Buf.Delete(amount) {
		return false
	}
	e.modified()
	return true
}

// Move moves the cursor of the active buffer.
func (e *Editor) Move(dir cursor.Direction, amount int) bool {
	if !e.Active().Buf.Move(dir, amount) {
		return false
	}
	line, col := e.Active().Buf.LineCol()
	e.events.Dispatch(event.TypeCursorMoved, event.CursorMovedData{Line: line, Col: col})
	return true
}

// Undo undoes the last edit group of the active buffer.
func (e *Editor) Undo() bool {
	buf := e.Active().Buf
	if !buf.History().CanUndo() {
		return false
	}
	buf.Undo()
	e.modified()
	return true
}

// Redo redoes the last undone group of the active buffer.
func (e *Editor) Redo() bool {
	if !e.Active().Buf.Redo() {
		return false
	}
	e.modified()
	return true
}

func (e *Editor) modified() {
	e.events.Dispatch(event.TypeBufferModified, event.BufferData{Name: e.Active().Name, Index: e.active})
}

// Paste inserts the clipboard text at the cursor.
func (e *Editor) Paste() error {
	text, err := e.clip.ReadAll()
	if err != nil {
		return fmt.Errorf("paste: %w", err)
	}
	text = strings.ReplaceAll(text, "\r\n", "\n")
	if text == "" {
		return nil
	}
	e.Active().Buf.Paste(text)
	e.modified()
	return nil
}

// CopyLine puts the cursor's logical line on the clipboard.
func (e *Editor) CopyLine() error {
	buf := e.Active().Buf
	line, _ := buf.LineCol()
	text := strings.TrimSuffix(buf.Document().Line(line), "\n")
	if err := e.clip.WriteAll(text); err != nil {
		return fmt.Errorf("yank: %w", err)
	}
	return nil
}

// Execute runs cmd against the editor.
func (e *Editor) Execute(cmd command.Command) (Result, error) {
	logger.Debugf("editor: executing %v %q", cmd.Kind, cmd.Arg)
	switch cmd.Kind {
	case command.Write:
		if _, err := e.Write(cmd.Arg); err != nil {
			return Result{}, err
		}
	case command.WriteQuit:
		if _, err := e.Write(cmd.Arg); err != nil {
			return Result{}, err
		}
		if err := e.CanQuit(); err != nil {
			return Result{}, err
		}
		return Result{Quit: true}, nil
	case command.Quit:
		if err := e.CanQuit(); err != nil {
			return Result{}, err
		}
		return Result{Quit: true}, nil
	case command.ForceQuit:
		return Result{Quit: true}, nil
	case command.Edit:
		if err := e.Open(cmd.Arg); err != nil {
			return Result{}, err
		}
	case command.New:
		e.New()
	case command.BufferNext:
		e.Next()
	case command.BufferPrev:
		e.Prev()
	case command.Undo:
		if !e.Undo() {
			return Result{Message: "Already at oldest change"}, nil
		}
	case command.Redo:
		if !e.Redo() {
			return Result{Message: "Already at newest change"}, nil
		}
	case command.Paste:
		return Result{}, e.Paste()
	case command.Yank:
		if err := e.CopyLine(); err != nil {
			return Result{}, err
		}
		return Result{Message: "line yanked"}, nil
	case command.Close, command.ForceClose:
		last, err := e.Close(cmd.Kind == command.ForceClose)
		if err != nil {
			return Result{}, err
		}
		return Result{Quit: last}, nil
	default:
		return Result{}, fmt.Errorf("%v: %w", cmd.Kind, command.ErrUnknownCommand)
	}
	return Result{}, nil
}
