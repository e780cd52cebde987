package modehandler

import (
	"errors"

	"github.com/bethropolis/quill/internal/core/cursor"
	"github.com/bethropolis/quill/internal/editor"
	"github.com/bethropolis/quill/internal/input"
	"github.com/bethropolis/quill/internal/logger"
)

// handleActionNormal handles actions when editing text.
func (mh *ModeHandler) handleActionNormal(actionEvent input.ActionEvent) bool {
	actionProcessed := true
	ed := mh.editor

	switch actionEvent.Action {
	case input.ActionEnterPrompt:
		mh.prompt.Reset()
		mh.currentMode = input.ModePrompt
		mh.statusBar.ResetTemporaryMessage()
		logger.Debugf("modehandler: entering prompt mode")

	case input.ActionQuit:
		if err := ed.CanQuit(); err != nil && !mh.forceQuitPending {
			mh.statusBar.SetTemporaryMessage("Unsaved changes! Press ESC again to quit without saving.")
			mh.forceQuitPending = true
			return true
		}
		mh.quit = true

	case input.ActionSave:
		if _, err := ed.Write(""); err != nil {
			if errors.Is(err, editor.ErrNoFileName) {
				mh.statusBar.SetTemporaryMessage("No file name, use :w <file>")
			} else {
				mh.statusBar.SetError(err)
			}
		}

	case input.ActionMoveUp:
		actionProcessed = ed.Move(cursor.Vertical, -1)
	case input.ActionMoveDown:
		actionProcessed = ed.Move(cursor.Vertical, 1)
	case input.ActionMoveLeft:
		actionProcessed = ed.Move(cursor.Horizontal, -1)
	case input.ActionMoveRight:
		actionProcessed = ed.Move(cursor.Horizontal, 1)
	case input.ActionMovePageUp:
		actionProcessed = mh.pageMove(-1)
	case input.ActionMovePageDown:
		actionProcessed = mh.pageMove(1)

	case input.ActionInsertRune:
		ed.Insert(actionEvent.Rune)
	case input.ActionInsertNewLine:
		ed.Insert('\n')
	case input.ActionDeleteCharBackward:
		actionProcessed = ed.Delete(1)

	case input.ActionUndo:
		if !ed.Undo() {
			mh.statusBar.SetTemporaryMessage("Already at oldest change")
		}
	case input.ActionRedo:
		if !ed.Redo() {
			mh.statusBar.SetTemporaryMessage("Already at newest change")
		}

	case input.ActionPaste:
		if err := ed.Paste(); err != nil {
			mh.statusBar.SetError(err)
		}
	case input.ActionYank:
		if err := ed.CopyLine(); err != nil {
			mh.statusBar.SetError(err)
		} else {
			mh.statusBar.SetTemporaryMessage("Line yanked")
		}

	case input.ActionNextBuffer:
		ed.Next()
	case input.ActionPrevBuffer:
		ed.Prev()

	default:
		actionProcessed = false
	}

	if actionEvent.Action != input.ActionUnknown {
		mh.forceQuitPending = false
	}
	return actionProcessed
}

// pageMove moves up to one page of rows in dir, stopping at the document
// edge.
func (mh *ModeHandler) pageMove(dir int) bool {
	for n := mh.pageSize; n > 0; n-- {
		if mh.editor.Move(cursor.Vertical, dir*n) {
			return true
		}
	}
	return false
}
