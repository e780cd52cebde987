package input

import (
	"github.com/gdamore/tcell/v2"
)

// Mode selects the key bindings in effect.
type Mode int

const (
	ModeNormal Mode = iota
	ModePrompt
)

func (m Mode) String() string {
	if m == ModePrompt {
		return "PROMPT"
	}
	return "NORMAL"
}

// Keymap maps special keys to actions.
type Keymap map[tcell.Key]Action

// InputProcessor translates tcell key events into ActionEvents.
type InputProcessor struct {
	normal Keymap
	prompt Keymap
}

// NewInputProcessor creates a processor with the default bindings.
func NewInputProcessor() *InputProcessor {
	p := &InputProcessor{
		normal: make(Keymap),
		prompt: make(Keymap),
	}
	p.loadDefaultBindings()
	return p
}

func (p *InputProcessor) loadDefaultBindings() {
	p.normal[tcell.KeyUp] = ActionMoveUp
	p.normal[tcell.KeyDown] = ActionMoveDown
	p.normal[tcell.KeyLeft] = ActionMoveLeft
	p.normal[tcell.KeyRight] = ActionMoveRight
	p.normal[tcell.KeyPgUp] = ActionMovePageUp
	p.normal[tcell.KeyPgDn] = ActionMovePageDown
	p.normal[tcell.KeyEnter] = ActionInsertNewLine
	p.normal[tcell.KeyBackspace] = ActionDeleteCharBackward
	p.normal[tcell.KeyBackspace2] = ActionDeleteCharBackward
	p.normal[tcell.KeyEscape] = ActionQuit
	p.normal[tcell.KeyCtrlQ] = ActionQuit
	p.normal[tcell.KeyCtrlS] = ActionSave
	p.normal[tcell.KeyCtrlZ] = ActionUndo
	p.normal[tcell.KeyCtrlR] = ActionRedo
	p.normal[tcell.KeyCtrlV] = ActionPaste
	p.normal[tcell.KeyCtrlY] = ActionYank
	p.normal[tcell.KeyCtrlN] = ActionNextBuffer
	p.normal[tcell.KeyCtrlP] = ActionPrevBuffer
	p.normal[tcell.KeyCtrlE] = ActionEnterPrompt

	p.prompt[tcell.KeyEnter] = ActionExecutePrompt
	p.prompt[tcell.KeyEscape] = ActionCancelPrompt
	p.prompt[tcell.KeyCtrlC] = ActionCancelPrompt
	p.prompt[tcell.KeyBackspace] = ActionDeleteCharBackward
	p.prompt[tcell.KeyBackspace2] = ActionDeleteCharBackward
	p.prompt[tcell.KeyLeft] = ActionMoveLeft
	p.prompt[tcell.KeyRight] = ActionMoveRight
	p.prompt[tcell.KeyUp] = ActionHistoryPrev
	p.prompt[tcell.KeyDown] = ActionHistoryNext
}

// Bind overrides the action of key in mode.
func (p *InputProcessor) Bind(mode Mode, key tcell.Key, action Action) {
	p.keymap(mode)[key] = action
}

func (p *InputProcessor) keymap(mode Mode) Keymap {
	if mode == ModePrompt {
		return p.prompt
	}
	return p.normal
}

// ProcessEvent decodes ev for the given mode.
func (p *InputProcessor) ProcessEvent(mode Mode, ev *tcell.EventKey) ActionEvent {
	key := ev.Key()

	if key == tcell.KeyRune {
		// Alt+rune is not text
		if ev.Modifiers()&tcell.ModAlt != 0 {
			return ActionEvent{Action: ActionUnknown}
		}
		return ActionEvent{Action: ActionInsertRune, Rune: ev.Rune()}
	}
	if key == tcell.KeyTab {
		return ActionEvent{Action: ActionInsertRune, Rune: '\t'}
	}
	if action, ok := p.keymap(mode)[key]; ok {
		return ActionEvent{Action: action}
	}
	return ActionEvent{Action: ActionUnknown}
}
