// Package command parses ':' prompt lines into editor commands.
package command

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUnknownCommand is returned for names with no command.
	ErrUnknownCommand = errors.New("unknown command")
	// ErrMissingArgument is returned when a command needs an argument.
	ErrMissingArgument = errors.New("missing argument")
)

// Kind identifies a command.
type Kind int

const (
	Write Kind = iota + 1
	WriteQuit
	Quit
	ForceQuit
	Edit
	New
	BufferNext
	BufferPrev
	Undo
	Redo
	Paste
	Yank
	Close
	ForceClose
)

var kindNames = map[Kind]string{
	Write:      "write",
	WriteQuit:  "wq",
	Quit:       "quit",
	ForceQuit:  "quit!",
	Edit:       "edit",
	New:        "enew",
	BufferNext: "bnext",
	BufferPrev: "bprev",
	Undo:       "undo",
	Redo:       "redo",
	Paste:      "paste",
	Yank:       "yank",
	Close:      "bdelete",
	ForceClose: "bdelete!",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Command is a parsed prompt line.
type Command struct {
	Kind Kind
	Arg  string // file name for Write, WriteQuit and Edit
}

type entry struct {
	kind     Kind
	needsArg bool
	takesArg bool
}

var table = map[string]entry{
	"w":     {kind: Write, takesArg: true},
	"write": {kind: Write, takesArg: true},
	"wq":    {kind: WriteQuit, takesArg: true},
	"x":     {kind: WriteQuit, takesArg: true},
	"q":     {kind: Quit},
	"quit":  {kind: Quit},
	"q!":    {kind: ForceQuit},
	"quit!": {kind: ForceQuit},
	"e":     {kind: Edit, takesArg: true, needsArg: true},
	"edit":  {kind: Edit, takesArg: true, needsArg: true},
	"enew":  {kind: New},
	"bn":    {kind: BufferNext},
	"bnext": {kind: BufferNext},
	"bp":    {kind: BufferPrev},
	"bprev": {kind: BufferPrev},
	"u":     {kind: Undo},
	"undo":  {kind: Undo},
	"red":   {kind: Redo},
	"redo":  {kind: Redo},
	"paste": {kind: Paste},
	"yank":  {kind: Yank},
	"bd":    {kind: Close},
	"bd!":   {kind: ForceClose},
}

// Parse turns prompt arguments into a Command. Arguments after the name
// are joined with single spaces so file names may contain spaces.
func Parse(args []string) (Command, error) {
	if len(args) == 0 {
		return Command{}, fmt.Errorf("empty command: %w", ErrUnknownCommand)
	}
	name := args[0]
	s, ok := table[name]
	if !ok {
		return Command{}, fmt.Errorf("%q: %w", name, ErrUnknownCommand)
	}

	arg := strings.Join(args[1:], " ")
	switch {
	case s.needsArg && arg == "":
		return Command{}, fmt.Errorf("%s: %w", name, ErrMissingArgument)
	case !s.takesArg && arg != "":
		return Command{}, fmt.Errorf("%s takes no argument", name)
	}
	return Command{Kind: s.kind, Arg: arg}, nil
}

// Names returns every accepted command name.
func Names() []string {
	names := make([]string, 0, len(table))
	for name := range table {
		names = append(names, name)
	}
	return names
}
