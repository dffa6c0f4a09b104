package terminal

// EventType identifies the kind of input event
type EventType uint8

const (
	EventNone EventType = iota
	EventKey
	EventResize
	EventPaste
	EventError
)

// Event is one abstract input event handed to the engine
type Event struct {
	Type      EventType
	Key       Key
	Rune      rune
	Modifiers Modifier
	Width     int    // For EventResize
	Height    int    // For EventResize
	Text      string // For EventPaste
	Err       error  // For EventError
}

// RuneEvent builds a printable character event
func RuneEvent(r rune) Event {
	return Event{Type: EventKey, Key: KeyRune, Rune: r}
}

// KeyEvent builds a key event with modifiers
func KeyEvent(k Key, mod Modifier) Event {
	return Event{Type: EventKey, Key: k, Modifiers: mod}
}

// ResizeEvent builds a resize event
func ResizeEvent(width, height int) Event {
	return Event{Type: EventResize, Width: width, Height: height}
}
