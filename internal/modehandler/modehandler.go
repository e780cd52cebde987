// Package modehandler turns key events into editor operations according
// to the current input mode.
package modehandler

import (
	"github.com/bethropolis/quill/internal/editor"
	"github.com/bethropolis/quill/internal/input"
	"github.com/bethropolis/quill/internal/logger"
	"github.com/bethropolis/quill/internal/plugin"
	"github.com/bethropolis/quill/internal/prompt"
	"github.com/bethropolis/quill/internal/statusbar"
	"github.com/gdamore/tcell/v2"
)

// ModeHandler manages input modes, prompt commands and quitting.
type ModeHandler struct {
	editor         *editor.Editor
	inputProcessor *input.InputProcessor
	statusBar      *statusbar.StatusBar
	prompt         *prompt.Prompt
	plugins        *plugin.Manager

	currentMode      input.Mode
	pageSize         int
	forceQuitPending bool
	quit             bool
}

// Config holds dependencies for the ModeHandler.
type Config struct {
	Editor         *editor.Editor
	InputProcessor *input.InputProcessor
	StatusBar      *statusbar.StatusBar
	Prompt         *prompt.Prompt
	Plugins        *plugin.Manager // optional, supplies extra prompt commands
}

// New creates a new ModeHandler.
func New(cfg Config) *ModeHandler {
	if cfg.Editor == nil || cfg.InputProcessor == nil || cfg.StatusBar == nil {
		panic("modehandler.New: missing required dependencies in Config")
	}
	if cfg.Prompt == nil {
		cfg.Prompt = prompt.New()
	}
	return &ModeHandler{
		editor:         cfg.Editor,
		inputProcessor: cfg.InputProcessor,
		statusBar:      cfg.StatusBar,
		prompt:         cfg.Prompt,
		plugins:        cfg.Plugins,
		currentMode:    input.ModeNormal,
		pageSize:       1,
	}
}

// HandleKeyEvent runs the action bound to ev in the current mode. It
// reports whether anything was done.
func (mh *ModeHandler) HandleKeyEvent(ev *tcell.EventKey) bool {
	actionEvent := mh.inputProcessor.ProcessEvent(mh.currentMode, ev)

	var actionProcessed bool
	switch mh.currentMode {
	case input.ModeNormal:
		actionProcessed = mh.handleActionNormal(actionEvent)
	case input.ModePrompt:
		actionProcessed = mh.handleActionPrompt(actionEvent)
	default:
		logger.Warnf("modehandler: unknown input mode %v", mh.currentMode)
	}
	if !actionProcessed {
		logger.DebugTagf("input", "unhandled %v in %v mode", actionEvent.Action, mh.currentMode)
	}
	return actionProcessed
}

// SetPageSize sets how many rows page up and page down move.
func (mh *ModeHandler) SetPageSize(rows int) {
	mh.pageSize = max(rows, 1)
}

// GetCurrentMode returns the current input mode.
func (mh *ModeHandler) GetCurrentMode() input.Mode {
	return mh.currentMode
}

// Prompt returns the command prompt.
func (mh *ModeHandler) Prompt() *prompt.Prompt {
	return mh.prompt
}

// ShouldQuit reports whether a quit was confirmed.
func (mh *ModeHandler) ShouldQuit() bool {
	return mh.quit
}
