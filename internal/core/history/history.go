// Package history is a linear undo/redo timeline of document snapshots.
//
// Edits accumulate in a live group on top of the newest snapshot. A group
// is closed (stashed) when an edit hint asks for it or when a boundary
// was requested, and undo always stashes the live group first so redo can
// bring it back.
package history

import (
	"github.com/bethropolis/quill/internal/buffer"
	"github.com/bethropolis/quill/internal/logger"
)

// DefaultMaxSnapshots bounds the timeline when no limit is configured.
const DefaultMaxSnapshots = 1000

// Snapshot is a stored document and cursor. The document is never
// modified after the snapshot is pushed; the cursor follows the live
// cursor when undo leaves the snapshot.
type Snapshot struct {
	Doc    *buffer.Document
	Cursor int
}

// History is the undo timeline. Index 0 is the baseline the buffer
// started from.
type History struct {
	timeline []Snapshot
	current  int
	saved    int  // -1 when the saved snapshot was evicted
	dirty    bool // edits exist beyond timeline[current]
	last     ActionType
	boundary bool
	max      int
}

// Option configures a History.
type Option func(*History)

// WithMaxSnapshots limits the timeline length. Zero or less means no limit.
func WithMaxSnapshots(n int) Option {
	return func(h *History) {
		h.max = n
	}
}

// New creates a history whose baseline is a copy of doc.
func New(doc *buffer.Document, opts ...Option) *History {
	h := &History{
		timeline: []Snapshot{{Doc: doc.Clone()}},
		max:      DefaultMaxSnapshots,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Record registers an edit that is about to be applied to doc, so doc and
// cursor are the state before the edit. Any redo branch is discarded.
func (h *History) Record(hint Hint, doc *buffer.Document, cursor int) {
	h.timeline = h.timeline[:h.current+1]
	if h.boundary || hint.ShouldStash(h.last) {
		h.stash(doc, cursor)
	}
	h.boundary = false
	h.last = hint.Action()
	h.dirty = true
}

// Boundary makes the next recorded edit start a new group.
func (h *History) Boundary() {
	h.boundary = true
}

// stash pushes doc as a new snapshot if it differs from the current one.
func (h *History) stash(doc *buffer.Document, cursor int) {
	if doc.Equal(h.timeline[h.current].Doc) {
		return
	}
	h.timeline = append(h.timeline, Snapshot{Doc: doc.Clone(), Cursor: cursor})
	h.current++
	h.dirty = false
	h.evict()
	logger.DebugTagf("history", "stashed snapshot %d (len %d)", h.current, len(h.timeline))
}

// evict drops the oldest non-baseline snapshots beyond the limit.
func (h *History) evict() {
	if h.max <= 0 {
		return
	}
	for len(h.timeline) > max(h.max, 2) {
		h.timeline = append(h.timeline[:1], h.timeline[2:]...)
		h.current--
		switch {
		case h.saved == 1:
			h.saved = -1
		case h.saved > 1:
			h.saved--
		}
	}
}

// ensureBaseline reinstates an empty snapshot at index 0 if the timeline
// was ever emptied.
func (h *History) ensureBaseline() {
	if len(h.timeline) == 0 {
		logger.Warnf("history: timeline was empty, reinstating baseline")
		h.timeline = []Snapshot{{Doc: buffer.New()}}
		h.current = 0
	}
}

// Undo steps back one snapshot and returns it for the caller to install.
// doc and cursor are the live state; pending edits are stashed first so a
// following Redo restores them. When the document is unchanged from the
// current snapshot, that snapshot takes the live cursor.
func (h *History) Undo(doc *buffer.Document, cursor int) Snapshot {
	if h.dirty {
		h.stash(doc, cursor)
		h.dirty = false
	}
	h.ensureBaseline()
	if doc.Equal(h.timeline[h.current].Doc) {
		h.timeline[h.current].Cursor = cursor
	}
	h.current = max(h.current-1, 0)
	h.ensureBaseline()
	h.last = NoAction
	h.boundary = false
	logger.DebugTagf("history", "undo to %d of %d", h.current, len(h.timeline))
	return h.timeline[h.current]
}

// Redo steps forward one snapshot. It does nothing while there are
// unstashed edits or when already at the newest snapshot.
func (h *History) Redo() (Snapshot, bool) {
	if h.dirty || h.current >= len(h.timeline)-1 {
		return Snapshot{}, false
	}
	h.current++
	h.last = NoAction
	logger.DebugTagf("history", "redo to %d of %d", h.current, len(h.timeline))
	return h.timeline[h.current], true
}

// Save marks the live state as saved, stashing pending edits.
func (h *History) Save(doc *buffer.Document, cursor int) {
	if h.dirty {
		h.stash(doc, cursor)
		h.dirty = false
	}
	h.saved = h.current
	h.boundary = true
}

// Modified reports whether the live state differs from the saved one.
func (h *History) Modified() bool {
	return h.current != h.saved || h.dirty
}

// Len returns the number of snapshots.
func (h *History) Len() int {
	return len(h.timeline)
}

// Current returns the index of the snapshot the live state is based on.
func (h *History) Current() int {
	return h.current
}

// Dirty reports whether edits exist beyond the current snapshot.
func (h *History) Dirty() bool {
	return h.dirty
}

// CanUndo reports whether Undo would change anything.
func (h *History) CanUndo() bool {
	return h.current > 0 || h.dirty
}

// CanRedo reports whether Redo would change anything.
func (h *History) CanRedo() bool {
	return !h.dirty && h.current < len(h.timeline)-1
}
