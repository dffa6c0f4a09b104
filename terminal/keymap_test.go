package terminal

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

// TestTranslateEvent verifies tcell key events map to engine events
func TestTranslateEvent(t *testing.T) {
	tests := []struct {
		name string
		ev   tcell.Event
		want Event
		ok   bool
	}{
		{
			name: "Rune",
			ev:   tcell.NewEventKey(tcell.KeyRune, 'a', tcell.ModNone),
			want: RuneEvent('a'),
			ok:   true,
		},
		{
			name: "Ctrl letter drops implied modifier",
			ev:   tcell.NewEventKey(tcell.KeyCtrlW, 0, tcell.ModCtrl),
			want: Event{Type: EventKey, Key: KeyCtrlW},
			ok:   true,
		},
		{
			name: "Ctrl arrow keeps modifier",
			ev:   tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModCtrl),
			want: Event{Type: EventKey, Key: KeyLeft, Modifiers: ModCtrl},
			ok:   true,
		},
		{
			name: "Meta is Alt",
			ev:   tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModMeta),
			want: Event{Type: EventKey, Key: KeyRight, Modifiers: ModAlt},
			ok:   true,
		},
		{
			name: "Backspace2",
			ev:   tcell.NewEventKey(tcell.KeyBackspace2, 0, tcell.ModNone),
			want: Event{Type: EventKey, Key: KeyBackspace},
			ok:   true,
		},
		{
			name: "Resize",
			ev:   tcell.NewEventResize(80, 24),
			want: ResizeEvent(80, 24),
			ok:   true,
		},
		{
			name: "Unmapped function key",
			ev:   tcell.NewEventKey(tcell.KeyF5, 0, tcell.ModNone),
			ok:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := TranslateEvent(tt.ev)
			if ok != tt.ok {
				t.Fatalf("Expected ok=%v, got %v", tt.ok, ok)
			}
			if ok && got != tt.want {
				t.Errorf("Expected %+v, got %+v", tt.want, got)
			}
		})
	}
}

// TestKeyString verifies key names used in logs
func TestKeyString(t *testing.T) {
	if KeyCtrlW.String() != "ctrl_w" {
		t.Errorf("Expected %q, got %q", "ctrl_w", KeyCtrlW.String())
	}
	if KeyPageUp.String() != "page_up" {
		t.Errorf("Expected %q, got %q", "page_up", KeyPageUp.String())
	}
}
