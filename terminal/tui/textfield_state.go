package tui

import (
	"unicode"

	"github.com/lixenwraith/chatterm/terminal"
)

// ScrollFallbackWidth is the field width below which the text field stops
// wrapping and scrolls a single line horizontally instead
const ScrollFallbackWidth = 36

// isWordChar returns true for word-constituent characters
func isWordChar(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}

// TextFieldState holds editable text field state
// Visual layout (wrap lines or scroll offset) is derived by Layout during the
// draw pass and is stale between a mutation and the next Layout call
type TextFieldState struct {
	Text   []rune
	Cursor int // Positions before which cursor sits (0 = before first char)
	Scroll int // First visible rune index, scroll mode only

	dirty   bool
	width   int
	prefix  int
	wrap    bool
	starts  []int // Visual line start offsets, wrap mode only
	laidOut bool
}

// NewTextFieldState creates initialized text field state
func NewTextFieldState(initial string) *TextFieldState {
	runes := []rune(initial)
	return &TextFieldState{
		Text:   runes,
		Cursor: len(runes),
		dirty:  true,
	}
}

func (t *TextFieldState) invalidate() {
	t.dirty = true
}

// --- Value access ---

// Value returns current text as string
func (t *TextFieldState) Value() string {
	return string(t.Text)
}

// Len returns the number of runes in the buffer
func (t *TextFieldState) Len() int {
	return len(t.Text)
}

// SetValue replaces text and moves cursor to end
func (t *TextFieldState) SetValue(s string) {
	t.Text = []rune(s)
	t.Cursor = len(t.Text)
	t.Scroll = 0
	t.invalidate()
}

// Clear empties the field
func (t *TextFieldState) Clear() {
	t.Text = nil
	t.Cursor = 0
	t.Scroll = 0
	t.invalidate()
}

// --- Character insertion ---

// Insert adds rune at cursor position
func (t *TextFieldState) Insert(r rune) {
	t.Text = append(t.Text[:t.Cursor], append([]rune{r}, t.Text[t.Cursor:]...)...)
	t.Cursor++
	t.invalidate()
}

// InsertString adds string at cursor position
func (t *TextFieldState) InsertString(s string) {
	runes := []rune(s)
	t.Text = append(t.Text[:t.Cursor], append(runes, t.Text[t.Cursor:]...)...)
	t.Cursor += len(runes)
	t.invalidate()
}

// --- Character deletion ---

// DeleteBackward removes rune before cursor
func (t *TextFieldState) DeleteBackward() bool {
	if t.Cursor > 0 {
		t.Text = append(t.Text[:t.Cursor-1], t.Text[t.Cursor:]...)
		t.Cursor--
		t.invalidate()
		return true
	}
	return false
}

// DeleteForward removes rune at cursor
func (t *TextFieldState) DeleteForward() bool {
	if t.Cursor < len(t.Text) {
		t.Text = append(t.Text[:t.Cursor], t.Text[t.Cursor+1:]...)
		t.invalidate()
		return true
	}
	return false
}

// --- Word deletion ---

// DeleteWordBackward removes the whitespace run before the cursor and then
// the non-whitespace run before that, so separators collapse with the word
func (t *TextFieldState) DeleteWordBackward() bool {
	if t.Cursor == 0 {
		return false
	}
	start := t.Cursor
	for start > 0 && unicode.IsSpace(t.Text[start-1]) {
		start--
	}
	for start > 0 && !unicode.IsSpace(t.Text[start-1]) {
		start--
	}
	t.Text = append(t.Text[:start], t.Text[t.Cursor:]...)
	t.Cursor = start
	t.invalidate()
	return true
}

// DeleteWordForward removes word after cursor
func (t *TextFieldState) DeleteWordForward() bool {
	if t.Cursor >= len(t.Text) {
		return false
	}
	// Skip word chars
	end := t.Cursor
	for end < len(t.Text) && isWordChar(t.Text[end]) {
		end++
	}
	// Skip trailing non-word chars
	for end < len(t.Text) && !isWordChar(t.Text[end]) {
		end++
	}
	t.Text = append(t.Text[:t.Cursor], t.Text[end:]...)
	t.invalidate()
	return true
}

// DeleteToEnd removes from cursor to end
func (t *TextFieldState) DeleteToEnd() bool {
	if t.Cursor < len(t.Text) {
		t.Text = t.Text[:t.Cursor]
		t.invalidate()
		return true
	}
	return false
}

// DeleteToStart removes from start to cursor
func (t *TextFieldState) DeleteToStart() bool {
	if t.Cursor > 0 {
		t.Text = t.Text[t.Cursor:]
		t.Cursor = 0
		t.Scroll = 0
		t.invalidate()
		return true
	}
	return false
}

// --- Character movement ---

// MoveLeft moves cursor left
func (t *TextFieldState) MoveLeft() {
	if t.Cursor > 0 {
		t.Cursor--
		t.invalidate()
	}
}

// MoveRight moves cursor right
func (t *TextFieldState) MoveRight() {
	if t.Cursor < len(t.Text) {
		t.Cursor++
		t.invalidate()
	}
}

// --- Word movement ---

// MoveWordLeft moves cursor to previous word boundary
func (t *TextFieldState) MoveWordLeft() {
	if t.Cursor == 0 {
		return
	}
	// Skip non-word chars
	for t.Cursor > 0 && !isWordChar(t.Text[t.Cursor-1]) {
		t.Cursor--
	}
	// Skip word chars
	for t.Cursor > 0 && isWordChar(t.Text[t.Cursor-1]) {
		t.Cursor--
	}
	t.invalidate()
}

// MoveWordRight moves cursor to next word boundary
func (t *TextFieldState) MoveWordRight() {
	if t.Cursor >= len(t.Text) {
		return
	}
	// Skip word chars
	for t.Cursor < len(t.Text) && isWordChar(t.Text[t.Cursor]) {
		t.Cursor++
	}
	// Skip non-word chars
	for t.Cursor < len(t.Text) && !isWordChar(t.Text[t.Cursor]) {
		t.Cursor++
	}
	t.invalidate()
}

// --- Line movement ---

// MoveToStart moves cursor to beginning
func (t *TextFieldState) MoveToStart() {
	t.Cursor = 0
	t.invalidate()
}

// MoveToEnd moves cursor to end
func (t *TextFieldState) MoveToEnd() {
	t.Cursor = len(t.Text)
	t.invalidate()
}

// --- Layout ---

// Layout recomputes wrap lines or scroll offset for a field of width cells
// whose first line starts after prefix cells; cached until the next mutation
func (t *TextFieldState) Layout(width, prefix int) {
	if t.laidOut && !t.dirty && width == t.width && prefix == t.prefix {
		return
	}
	t.width = width
	t.prefix = prefix
	t.wrap = width >= ScrollFallbackWidth
	if t.wrap {
		t.Scroll = 0
		t.starts = t.wrapStarts(width-prefix, width)
	} else {
		t.starts = t.starts[:0]
		t.AdjustScroll(width - prefix)
	}
	t.dirty = false
	t.laidOut = true
}

// Dirty reports whether a mutation happened since the last Layout
func (t *TextFieldState) Dirty() bool {
	return t.dirty || !t.laidOut
}

// Wrapping reports whether the last Layout chose word wrap
func (t *TextFieldState) Wrapping() bool {
	return t.wrap
}

// Lines returns visual line start offsets from the last Layout
// Scroll mode always has a single line starting at Scroll
func (t *TextFieldState) Lines() []int {
	if !t.wrap {
		return []int{t.Scroll}
	}
	return t.starts
}

// Height returns the number of visual lines from the last Layout
func (t *TextFieldState) Height() int {
	if !t.wrap {
		return 1
	}
	return len(t.starts)
}

// LineText returns the runes of visual line i from the last Layout
func (t *TextFieldState) LineText(i int) []rune {
	if !t.wrap {
		return t.Text[min(t.Scroll, len(t.Text)):]
	}
	if i < 0 || i >= len(t.starts) {
		return nil
	}
	end := len(t.Text)
	if i+1 < len(t.starts) {
		end = t.starts[i+1]
	}
	return t.Text[t.starts[i]:end]
}

// CursorPos returns the visual line and column of the cursor from the last
// Layout; the column includes the prefix on the first line
func (t *TextFieldState) CursorPos() (line, col int) {
	if !t.wrap {
		from := min(t.Scroll, t.Cursor)
		return 0, t.prefix + RunesWidth(t.Text[from:t.Cursor])
	}
	for i := len(t.starts) - 1; i >= 0; i-- {
		if t.starts[i] <= t.Cursor {
			line = i
			break
		}
	}
	col = RunesWidth(t.Text[t.starts[line]:t.Cursor])
	if line == 0 {
		col += t.prefix
	}
	return line, col
}

// wrapStarts splits the buffer greedily into lines of firstW then restW cells
// A line ends after the last whitespace it contains, else it is hard-split
// One extra line is opened when the last line has no room for the end cursor
func (t *TextFieldState) wrapStarts(firstW, restW int) []int {
	starts := append(t.starts[:0], 0)
	if firstW < 1 {
		firstW = 1
	}

	width := firstW
	lineStart := 0
	lineW := 0
	lastSpace := -1

	for i, r := range t.Text {
		cw := CellWidth(r)
		for lineW+cw > width && i > lineStart {
			next := i
			if lastSpace >= lineStart {
				next = lastSpace + 1
			}
			starts = append(starts, next)
			lineStart = next
			lineW = RunesWidth(t.Text[next:i])
			lastSpace = -1
			width = restW
		}
		if unicode.IsSpace(r) {
			lastSpace = i
		}
		lineW += cw
	}

	// Cursor at end needs a cell of its own
	if lineW+1 > width {
		starts = append(starts, len(t.Text))
	}
	return starts
}

// --- Scroll management ---

// AdjustScroll updates scroll to keep cursor visible within viewport width
// and pulls hidden text back in when the tail no longer fills the viewport
func (t *TextFieldState) AdjustScroll(viewportW int) {
	if viewportW <= 0 {
		t.Scroll = t.Cursor
		return
	}
	if t.Scroll > len(t.Text) {
		t.Scroll = len(t.Text)
	}
	if t.Cursor < t.Scroll {
		t.Scroll = t.Cursor
	}
	// Cursor cell must fit after the visible text before it
	for t.Scroll < t.Cursor && RunesWidth(t.Text[t.Scroll:t.Cursor])+1 > viewportW {
		t.Scroll++
	}
	// No blank tail while text is hidden on the left
	for t.Scroll > 0 && RunesWidth(t.Text[t.Scroll-1:])+1 <= viewportW {
		t.Scroll--
	}
	if t.Scroll < 0 {
		t.Scroll = 0
	}
}

// --- Input handling ---

// HandleKey processes keyboard input, returns true if state changed
func (t *TextFieldState) HandleKey(key terminal.Key, r rune, mod terminal.Modifier) bool {
	switch key {
	case terminal.KeyLeft:
		if mod&terminal.ModCtrl != 0 {
			t.MoveWordLeft()
		} else {
			t.MoveLeft()
		}
		return true
	case terminal.KeyRight:
		if mod&terminal.ModCtrl != 0 {
			t.MoveWordRight()
		} else {
			t.MoveRight()
		}
		return true
	case terminal.KeyHome, terminal.KeyCtrlA:
		t.MoveToStart()
		return true
	case terminal.KeyEnd, terminal.KeyCtrlE:
		t.MoveToEnd()
		return true
	case terminal.KeyBackspace:
		if mod&terminal.ModCtrl != 0 {
			return t.DeleteWordBackward()
		}
		return t.DeleteBackward()
	case terminal.KeyDelete:
		if mod&terminal.ModCtrl != 0 {
			return t.DeleteWordForward()
		}
		return t.DeleteForward()
	case terminal.KeyCtrlK:
		return t.DeleteToEnd()
	case terminal.KeyCtrlU:
		return t.DeleteToStart()
	case terminal.KeyCtrlW:
		return t.DeleteWordBackward()
	case terminal.KeyRune:
		if r >= 32 && mod&(terminal.ModAlt|terminal.ModCtrl) == 0 {
			t.Insert(r)
			return true
		}
	}
	return false
}
