package ui

import (
	"strings"

	"github.com/lixenwraith/chatterm/terminal"
)

// InputKind tells the host what an input event amounted to
type InputKind uint8

const (
	// InputNone means the event was not recognised and nothing changed
	InputNone InputKind = iota
	// InputHandled means the event edited the field, moved tabs or scrolled
	InputHandled
	// InputSubmit carries a finished line typed into the field
	InputSubmit
	// InputAbort asks the host to quit
	InputAbort
)

func (k InputKind) String() string {
	switch k {
	case InputNone:
		return "none"
	case InputHandled:
		return "handled"
	case InputSubmit:
		return "submit"
	case InputAbort:
		return "abort"
	}
	return "unknown"
}

// InputResult is returned by HandleInputEvent
// Text and Target are set for InputSubmit only
type InputResult struct {
	Kind   InputKind
	Text   string
	Target Target
}

var handled = InputResult{Kind: InputHandled}

// HandleInputEvent applies one input event to the engine state
func (u *UI) HandleInputEvent(ev terminal.Event) InputResult {
	switch ev.Type {
	case terminal.EventResize:
		u.SetSize(ev.Width, ev.Height)
		return handled
	case terminal.EventPaste:
		if ev.Text == "" {
			return InputResult{}
		}
		u.field.InsertString(foldLineBreaks(ev.Text))
		return handled
	case terminal.EventKey:
		return u.handleKey(ev)
	}
	return InputResult{}
}

func (u *UI) handleKey(ev terminal.Event) InputResult {
	alt := ev.Modifiers&terminal.ModAlt != 0

	switch ev.Key {
	case terminal.KeyCtrlC:
		return InputResult{Kind: InputAbort}

	case terminal.KeyEnter:
		return u.submit()

	case terminal.KeyCtrlN:
		u.NextTab()
		return handled
	case terminal.KeyCtrlP:
		u.PrevTab()
		return handled

	case terminal.KeyLeft, terminal.KeyRight:
		if alt {
			if ev.Key == terminal.KeyLeft {
				u.PrevTab()
			} else {
				u.NextTab()
			}
			return handled
		}

	case terminal.KeyPageUp, terminal.KeyPageDown:
		if tab := u.tabs.Active(); tab != nil {
			if ev.Key == terminal.KeyPageUp {
				tab.area.PageUp()
			} else {
				tab.area.PageDown()
			}
		}
		return handled

	case terminal.KeyUp:
		if line, ok := u.history.prev(u.field.Value()); ok {
			u.field.SetValue(line)
		}
		return handled
	case terminal.KeyDown:
		if line, ok := u.history.next(); ok {
			u.field.SetValue(line)
		}
		return handled

	case terminal.KeyRune:
		if alt && ev.Rune >= '1' && ev.Rune <= '9' {
			if u.tabs.Select(int(ev.Rune - '1')) {
				return handled
			}
			return InputResult{}
		}
	}

	if u.field.HandleKey(ev.Key, ev.Rune, ev.Modifiers) {
		return handled
	}
	return InputResult{}
}

// submit hands the field contents to the host and clears it
func (u *UI) submit() InputResult {
	line := u.field.Value()
	if strings.TrimSpace(line) == "" {
		return InputResult{}
	}
	u.history.add(line)
	u.field.Clear()
	if tab := u.tabs.Active(); tab != nil {
		tab.area.ScrollToBottom()
	}
	return InputResult{Kind: InputSubmit, Text: line, Target: u.CurrentTarget()}
}

// foldLineBreaks turns a multi-line paste into one input line
func foldLineBreaks(s string) string {
	s = strings.ReplaceAll(s, "\r\n", " ")
	return strings.NewReplacer("\n", " ", "\r", " ", "\t", " ").Replace(s)
}
