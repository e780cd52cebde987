package input

// Action represents an operation requested by a key press.
type Action int

const (
	ActionUnknown Action = iota
	ActionQuit
	ActionSave

	ActionMoveUp
	ActionMoveDown
	ActionMoveLeft
	ActionMoveRight
	ActionMovePageUp
	ActionMovePageDown

	ActionInsertRune // carries Rune
	ActionInsertNewLine
	ActionDeleteCharBackward

	ActionUndo
	ActionRedo
	ActionPaste
	ActionYank

	ActionNextBuffer
	ActionPrevBuffer

	ActionEnterPrompt

	// Prompt mode only.
	ActionExecutePrompt
	ActionCancelPrompt
	ActionHistoryPrev
	ActionHistoryNext
)

var actionNames = [...]string{
	ActionUnknown:            "unknown",
	ActionQuit:               "quit",
	ActionSave:               "save",
	ActionMoveUp:             "move-up",
	ActionMoveDown:           "move-down",
	ActionMoveLeft:           "move-left",
	ActionMoveRight:          "move-right",
	ActionMovePageUp:         "page-up",
	ActionMovePageDown:       "page-down",
	ActionInsertRune:         "insert-rune",
	ActionInsertNewLine:      "newline",
	ActionDeleteCharBackward: "backspace",
	ActionUndo:               "undo",
	ActionRedo:               "redo",
	ActionPaste:              "paste",
	ActionYank:               "yank",
	ActionNextBuffer:         "next-buffer",
	ActionPrevBuffer:         "prev-buffer",
	ActionEnterPrompt:        "enter-prompt",
	ActionExecutePrompt:      "execute-prompt",
	ActionCancelPrompt:       "cancel-prompt",
	ActionHistoryPrev:        "history-prev",
	ActionHistoryNext:        "history-next",
}

func (a Action) String() string {
	if a < 0 || int(a) >= len(actionNames) {
		return "unknown"
	}
	return actionNames[a]
}

// ActionEvent is a decoded key press.
type ActionEvent struct {
	Action Action
	Rune   rune // for ActionInsertRune
}
