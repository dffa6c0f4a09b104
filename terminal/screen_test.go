package terminal

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

func newSimScreen(t *testing.T, w, h int) (*Screen, tcell.SimulationScreen) {
	t.Helper()
	sim := tcell.NewSimulationScreen("UTF-8")
	s := WrapScreen(sim)
	if err := s.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	sim.SetSize(w, h)
	t.Cleanup(s.Fini)
	return s, sim
}

// TestScreenFlush verifies grid changes reach the terminal with styles
func TestScreenFlush(t *testing.T) {
	s, sim := newSimScreen(t, 4, 1)

	g := NewGrid(4, 1)
	back := g.Back()
	back[0] = Cell{Rune: 'h', Attrs: AttrDefault | AttrBold}
	back[1] = Cell{Rune: 'i', Fg: RGB{R: 255}, Attrs: AttrDefaultBg}
	s.Flush(g.Present())

	cells, w, _ := sim.GetContents()
	if w != 4 {
		t.Fatalf("Expected width 4, got %d", w)
	}
	if string(cells[0].Runes) != "h" || string(cells[1].Runes) != "i" {
		t.Errorf("Expected \"hi\", got %q%q", cells[0].Runes, cells[1].Runes)
	}
	if _, _, attrs := cells[0].Style.Decompose(); attrs&tcell.AttrBold == 0 {
		t.Error("Expected bold on first cell")
	}
	if fg, _, _ := cells[1].Style.Decompose(); fg != tcell.NewRGBColor(255, 0, 0) {
		t.Errorf("Expected red foreground, got %v", fg)
	}
}

// TestScreenPollEvent verifies key translation through a live screen
func TestScreenPollEvent(t *testing.T) {
	s, sim := newSimScreen(t, 10, 2)

	sim.InjectKey(tcell.KeyCtrlW, 0, tcell.ModCtrl)
	sim.InjectKey(tcell.KeyRune, 'z', tcell.ModAlt)

	for _, want := range []Event{
		{Type: EventKey, Key: KeyCtrlW},
		{Type: EventKey, Key: KeyRune, Rune: 'z', Modifiers: ModAlt},
	} {
		ev, ok := s.PollEvent()
		if !ok {
			t.Fatal("Expected event")
		}
		// Skip the initial resize tcell posts on Init
		for ev.Type == EventResize {
			if ev, ok = s.PollEvent(); !ok {
				t.Fatal("Expected event")
			}
		}
		if ev.Type != want.Type || ev.Key != want.Key || ev.Rune != want.Rune || ev.Modifiers != want.Modifiers {
			t.Errorf("Expected %+v, got %+v", want, ev)
		}
	}
}

// TestScreenBracketedPaste verifies a paste arrives as one event with its line breaks
func TestScreenBracketedPaste(t *testing.T) {
	s, sim := newSimScreen(t, 10, 2)

	sim.PostEvent(tcell.NewEventPaste(true))
	for _, r := range "ab" {
		sim.InjectKey(tcell.KeyRune, r, tcell.ModNone)
	}
	sim.InjectKey(tcell.KeyEnter, 0, tcell.ModNone)
	sim.InjectKey(tcell.KeyRune, 'c', tcell.ModNone)
	sim.PostEvent(tcell.NewEventPaste(false))
	sim.InjectKey(tcell.KeyEnter, 0, tcell.ModNone)

	next := func() Event {
		t.Helper()
		for {
			ev, ok := s.PollEvent()
			if !ok {
				t.Fatal("Expected event")
			}
			if ev.Type != EventResize {
				return ev
			}
		}
	}

	ev := next()
	if ev.Type != EventPaste || ev.Text != "ab\nc" {
		t.Fatalf("Expected paste %q, got %+v", "ab\nc", ev)
	}
	// Keys after the end marker are delivered normally
	if ev := next(); ev.Type != EventKey || ev.Key != KeyEnter {
		t.Errorf("Expected Enter after paste, got %+v", ev)
	}
}
