package terminal

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// Screen presents grid changes on a real terminal through tcell
// Not safe for concurrent use except PollEvent, which tcell serializes itself
type Screen struct {
	screen tcell.Screen

	// Bracketed paste in progress, keys are collected instead of delivered
	pasting bool
	paste   strings.Builder
}

// NewScreen creates a screen on the controlling terminal
func NewScreen() (*Screen, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	return &Screen{screen: s}, nil
}

// WrapScreen adapts an existing tcell screen, e.g. a simulation screen in tests
func WrapScreen(s tcell.Screen) *Screen {
	return &Screen{screen: s}
}

// Init enters raw mode and the alternate screen
func (s *Screen) Init() error {
	if err := s.screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	s.screen.SetStyle(tcell.StyleDefault)
	s.screen.EnablePaste()
	s.screen.HideCursor()
	s.screen.Clear()
	return nil
}

// Fini restores terminal state
func (s *Screen) Fini() {
	s.screen.Fini()
}

// Size returns current terminal dimensions
func (s *Screen) Size() (width, height int) {
	return s.screen.Size()
}

// Flush writes changed cells and shows the frame
func (s *Screen) Flush(changes []Change) {
	for _, ch := range changes {
		// Trailing half of a wide rune, tcell fills it from the leading cell
		if ch.Cell.Rune == 0 {
			continue
		}
		s.screen.SetContent(ch.X, ch.Y, ch.Cell.Rune, nil, cellStyle(ch.Cell))
	}
	s.screen.Show()
}

// Sync forces a full repaint of the physical terminal
func (s *Screen) Sync() {
	s.screen.Sync()
}

// SetCursor positions or hides the cursor
func (s *Screen) SetCursor(x, y int, visible bool) {
	if !visible {
		s.screen.HideCursor()
		return
	}
	s.screen.ShowCursor(x, y)
}

// PollEvent blocks until the next translatable event
// A bracketed paste is delivered as one EventPaste carrying the pasted text
// Returns false once the screen has been finalized
func (s *Screen) PollEvent() (Event, bool) {
	for {
		ev := s.screen.PollEvent()
		if ev == nil {
			return Event{}, false
		}
		if out, done := s.collectPaste(ev); done {
			return out, true
		} else if s.pasting {
			continue
		}
		if out, ok := TranslateEvent(ev); ok {
			return out, true
		}
	}
}

// collectPaste buffers keys between paste markers
// done is true when the end marker completes a paste
func (s *Screen) collectPaste(ev tcell.Event) (out Event, done bool) {
	switch ev := ev.(type) {
	case *tcell.EventPaste:
		if ev.Start() {
			s.pasting = true
			s.paste.Reset()
			return Event{}, false
		}
		if !s.pasting {
			return Event{}, false
		}
		s.pasting = false
		return Event{Type: EventPaste, Text: s.paste.String()}, true
	case *tcell.EventKey:
		if !s.pasting {
			return Event{}, false
		}
		switch ev.Key() {
		case tcell.KeyRune:
			s.paste.WriteRune(ev.Rune())
		case tcell.KeyEnter, tcell.KeyLF:
			s.paste.WriteByte('\n')
		case tcell.KeyTab:
			s.paste.WriteByte('\t')
		}
	}
	return Event{}, false
}

// cellStyle converts cell colors and attributes to a tcell style
func cellStyle(c Cell) tcell.Style {
	st := tcell.StyleDefault
	if c.Attrs&AttrDefaultFg == 0 {
		st = st.Foreground(tcell.NewRGBColor(int32(c.Fg.R), int32(c.Fg.G), int32(c.Fg.B)))
	}
	if c.Attrs&AttrDefaultBg == 0 {
		st = st.Background(tcell.NewRGBColor(int32(c.Bg.R), int32(c.Bg.G), int32(c.Bg.B)))
	}
	if c.Attrs&AttrBold != 0 {
		st = st.Bold(true)
	}
	if c.Attrs&AttrDim != 0 {
		st = st.Dim(true)
	}
	if c.Attrs&AttrItalic != 0 {
		st = st.Italic(true)
	}
	if c.Attrs&AttrUnderline != 0 {
		st = st.Underline(true)
	}
	if c.Attrs&AttrBlink != 0 {
		st = st.Blink(true)
	}
	if c.Attrs&AttrReverse != 0 {
		st = st.Reverse(true)
	}
	return st
}
