package app

import (
	"github.com/bethropolis/quill/internal/input"
)

// redraw clears the screen and redraws all components.
func (a *App) redraw() {
	a.fitArea()
	a.updateStatusBarContent()

	a.tuiManager.Clear()
	buf := a.editor.Active().Buf
	a.tuiManager.DrawBuffer(buf, a.area)
	a.statusBar.Draw(a.tuiManager.GetScreen(), a.area.StatusY, a.area.ScreenWidth)
	if a.modeHandler.GetCurrentMode() == input.ModePrompt {
		a.tuiManager.DrawPrompt(a.modeHandler.Prompt(), a.area)
	} else {
		a.tuiManager.ClearPrompt(a.area)
		a.tuiManager.DrawCursor(buf, a.area)
	}
	a.tuiManager.Show()
}

// updateStatusBarContent pushes the current editor state to the status bar.
func (a *App) updateStatusBarContent() {
	f := a.editor.Active()
	a.statusBar.SetFileInfo(f.Name, f.Buf.IsModified())
	a.statusBar.SetBufferInfo(a.editor.ActiveIndex(), len(a.editor.Files()))
	line, col := f.Buf.LineCol()
	a.statusBar.SetCursorInfo(line, col)
	a.statusBar.SetEditorMode(a.modeHandler.GetCurrentMode().String())
}
