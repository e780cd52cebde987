package modehandler

import (
	"errors"

	"github.com/bethropolis/quill/internal/command"
	"github.com/bethropolis/quill/internal/input"
	"github.com/bethropolis/quill/internal/logger"
)

// handleActionPrompt handles actions while the ':' prompt is open.
func (mh *ModeHandler) handleActionPrompt(actionEvent input.ActionEvent) bool {
	actionProcessed := true
	p := mh.prompt

	switch actionEvent.Action {
	case input.ActionInsertRune:
		p.Insert(actionEvent.Rune)
	case input.ActionDeleteCharBackward:
		if !p.Backspace() {
			mh.currentMode = input.ModeNormal
			logger.Debugf("modehandler: leaving prompt mode via backspace")
		}
	case input.ActionMoveLeft:
		p.Left()
	case input.ActionMoveRight:
		p.Right()
	case input.ActionHistoryPrev:
		actionProcessed = p.Prev()
	case input.ActionHistoryNext:
		actionProcessed = p.Next()
	case input.ActionCancelPrompt:
		p.Reset()
		mh.currentMode = input.ModeNormal
	case input.ActionExecutePrompt:
		mh.currentMode = input.ModeNormal
		mh.executeCommand(p.Parse())
	default:
		actionProcessed = false
	}
	return actionProcessed
}

// executeCommand parses and runs a submitted prompt line.
func (mh *ModeHandler) executeCommand(args []string) {
	if args == nil {
		return
	}
	cmd, err := command.Parse(args)
	if errors.Is(err, command.ErrUnknownCommand) {
		if fn, ok := mh.plugins.Command(args[0]); ok {
			logger.Debugf("modehandler: executing plugin command :%s", args[0])
			if err := fn(args[1:]); err != nil {
				mh.statusBar.SetError(err)
			}
			return
		}
	}
	if err != nil {
		mh.statusBar.SetError(err)
		return
	}

	logger.Debugf("modehandler: executing :%s", args[0])
	res, err := mh.editor.Execute(cmd)
	if err != nil {
		mh.statusBar.SetError(err)
		return
	}
	if res.Message != "" {
		mh.statusBar.SetTemporaryMessage("%s", res.Message)
	}
	if res.Quit {
		mh.quit = true
	}
}
