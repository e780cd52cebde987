package app

import (
	"github.com/bethropolis/quill/internal/event"
	"github.com/bethropolis/quill/internal/logger"
)

func (a *App) subscribe() {
	a.eventManager.Subscribe(event.TypeBufferSaved, a.handleBufferSaved)
	a.eventManager.Subscribe(event.TypeBufferLoaded, a.handleBufferLoaded)
	a.eventManager.Subscribe(event.TypeBufferClosed, a.handleBufferClosed)
	a.eventManager.Subscribe(event.TypeBufferSwitched, a.handleBufferSwitched)
}

func (a *App) handleBufferSaved(e event.Event) bool {
	if data, ok := e.Data.(event.BufferSavedData); ok {
		a.statusBar.SetTemporaryMessage("%q %dB written", data.Name, data.Bytes)
	}
	return false
}

func (a *App) handleBufferLoaded(e event.Event) bool {
	if data, ok := e.Data.(event.BufferData); ok {
		lines := a.editor.Active().Buf.Document().LineCount()
		a.statusBar.SetTemporaryMessage("%q %dL", data.Name, lines)
	}
	return false
}

func (a *App) handleBufferClosed(e event.Event) bool {
	if data, ok := e.Data.(event.BufferData); ok {
		logger.Debugf("app: closed buffer %d (%q)", data.Index, data.Name)
	}
	return false
}

func (a *App) handleBufferSwitched(e event.Event) bool {
	if data, ok := e.Data.(event.BufferData); ok {
		logger.DebugTagf("event", "active buffer is now %d (%q)", data.Index, data.Name)
	}
	return false
}
