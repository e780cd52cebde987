package event

// Type identifies the kind of event.
type Type int

const (
	TypeUnknown Type = iota

	TypeBufferModified // the active buffer's text changed
	TypeBufferLoaded   // a file was opened into a buffer
	TypeBufferSaved    // a buffer was written out
	TypeBufferSwitched // another buffer became active
	TypeBufferClosed   // a buffer was closed
	TypeCursorMoved    // the cursor of the active buffer moved

	TypeAppReady // the screen is up and the first frame is drawn
	TypeAppQuit  // fired just before the main loop exits
)

var typeNames = map[Type]string{
	TypeUnknown:        "unknown",
	TypeBufferModified: "buffer-modified",
	TypeBufferLoaded:   "buffer-loaded",
	TypeBufferSaved:    "buffer-saved",
	TypeBufferSwitched: "buffer-switched",
	TypeBufferClosed:   "buffer-closed",
	TypeCursorMoved:    "cursor-moved",
	TypeAppReady:       "app-ready",
	TypeAppQuit:        "app-quit",
}

func (t Type) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return "unknown"
}

// Event is passed to subscribers.
type Event struct {
	Type Type
	Data interface{}
}

// BufferData identifies the buffer an event is about.
type BufferData struct {
	Name  string
	Index int
}

// BufferSavedData describes a completed write.
type BufferSavedData struct {
	Name  string
	Bytes int64
}

// CursorMovedData carries the cursor's logical position.
type CursorMovedData struct {
	Line, Col int
}
