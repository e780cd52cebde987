package history

// ActionType is the kind of edit a hint describes.
type ActionType int

const (
	NoAction ActionType = iota
	InsertAction
	DeleteAction
	PasteAction
)

func (a ActionType) String() string {
	switch a {
	case InsertAction:
		return "insert"
	case DeleteAction:
		return "delete"
	case PasteAction:
		return "paste"
	default:
		return "none"
	}
}

// Hint tells the history how an edit relates to the previous one.
type Hint interface {
	// Action is the kind of edit being recorded.
	Action() ActionType
	// ShouldStash reports whether the edit closes the live group, given
	// the previous action.
	ShouldStash(prev ActionType) bool
}

// InsertHint describes typing a single rune.
type InsertHint rune

func (InsertHint) Action() ActionType { return InsertAction }

// ShouldStash is true for word and line breaks, and when typing resumes
// after deleting or pasting.
func (h InsertHint) ShouldStash(prev ActionType) bool {
	return h == ' ' || h == '\n' || prev == DeleteAction || prev == PasteAction
}

// DeleteHint describes a deletion. Consecutive deletions share a group.
type DeleteHint struct{}

func (DeleteHint) Action() ActionType { return DeleteAction }

func (DeleteHint) ShouldStash(prev ActionType) bool {
	return prev != DeleteAction
}

// PasteHint describes inserting a whole string. A paste is always a group
// of its own.
type PasteHint struct{}

func (PasteHint) Action() ActionType { return PasteAction }

func (PasteHint) ShouldStash(ActionType) bool { return true }
