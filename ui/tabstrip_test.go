package ui

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/lixenwraith/chatterm/terminal/tui"
)

func stripOf(labels ...string) *TabStrip {
	s := &TabStrip{}
	for _, l := range labels {
		s.add(newTab(TabServer, l, "", NewMessageArea(LayoutCompact, 0)))
	}
	return s
}

func stripWidths(s *TabStrip) []int {
	_, widths := s.labels(tui.DefaultTheme)
	return widths
}

// TestTabStripNavigation verifies circular next and prev
func TestTabStripNavigation(t *testing.T) {
	s := stripOf("a", "b", "c")

	s.Prev()
	if s.ActiveIndex() != 2 {
		t.Errorf("Expected prev from first to wrap to 2, got %d", s.ActiveIndex())
	}
	s.Next()
	if s.ActiveIndex() != 0 {
		t.Errorf("Expected next from last to wrap to 0, got %d", s.ActiveIndex())
	}
	if s.Select(3) {
		t.Error("Expected out of range select to fail")
	}
}

// TestTabStripRemove verifies which neighbor becomes active on close
func TestTabStripRemove(t *testing.T) {
	tests := []struct {
		name       string
		active     int
		remove     int
		wantActive int
		wantLabel  string
	}{
		{name: "Active middle picks left", active: 2, remove: 2, wantActive: 1, wantLabel: "b"},
		{name: "Active first picks new first", active: 0, remove: 0, wantActive: 0, wantLabel: "b"},
		{name: "Left of active shifts index", active: 3, remove: 1, wantActive: 2, wantLabel: "d"},
		{name: "Right of active keeps index", active: 1, remove: 3, wantActive: 1, wantLabel: "b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := stripOf("a", "b", "c", "d")
			s.Select(tt.active)
			s.remove(tt.remove)

			if s.ActiveIndex() != tt.wantActive {
				t.Errorf("Expected active %d, got %d", tt.wantActive, s.ActiveIndex())
			}
			if got := s.Active().Label(); got != tt.wantLabel {
				t.Errorf("Expected active label %q, got %q", tt.wantLabel, got)
			}
		})
	}
}

// TestTabStripUnread verifies status only rises and resets on activation
func TestTabStripUnread(t *testing.T) {
	s := stripOf("a", "b")
	tab := s.Tabs()[1]

	tab.markUnread(StatusHighlight)
	tab.markUnread(StatusNewMsg)
	if tab.Status != StatusHighlight {
		t.Errorf("Expected highlight to stick, got %d", tab.Status)
	}
	s.Next()
	if tab.Status != StatusNormal {
		t.Errorf("Expected normal after activation, got %d", tab.Status)
	}
}

// TestFixScrollMinimal verifies the window moves only as far as needed
func TestFixScrollMinimal(t *testing.T) {
	// mentions(8) irc.server_1.org(16) #chan(5)
	s := stripOf("mentions", "irc.server_1.org", "#chan")
	widths := stripWidths(s)
	s.Select(2)

	tests := []struct {
		width    int
		leftmost int
	}{
		{width: 21, leftmost: 2},
		{width: 24, leftmost: 1},
		{width: 30, leftmost: 1},
		{width: 31, leftmost: 0},
		{width: 7, leftmost: 2},
		{width: 3, leftmost: 2},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("width_%d", tt.width), func(t *testing.T) {
			s.fixScroll(widths, tt.width, 1)
			if s.Leftmost() != tt.leftmost {
				t.Errorf("Expected leftmost %d, got %d", tt.leftmost, s.Leftmost())
			}
		})
	}
}

// TestFixScrollInvariants drives random operations and checks the window
// after each fix-up
func TestFixScrollInvariants(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	names := []string{"mentions", "irc.libera.chat", "#go", "#a-much-longer-channel", "bob", "x"}

	for round := 0; round < 200; round++ {
		s := stripOf(names[0])
		width := 1 + rng.Intn(60)

		for step := 0; step < 40; step++ {
			switch rng.Intn(5) {
			case 0, 1:
				s.add(newTab(TabServer, names[rng.Intn(len(names))], "", NewMessageArea(LayoutCompact, 0)))
			case 2:
				s.Next()
			case 3:
				s.Prev()
			case 4:
				if s.Len() > 1 {
					s.remove(1 + rng.Intn(s.Len()-1))
				}
			}

			widths := stripWidths(s)
			s.fixScroll(widths, width, 1)

			if s.Leftmost() > s.ActiveIndex() {
				t.Fatalf("Round %d: leftmost %d past active %d", round, s.Leftmost(), s.ActiveIndex())
			}
			last := tui.TabWindowEnd(widths, s.Leftmost(), width, 1)
			if s.ActiveIndex() > last {
				t.Fatalf("Round %d: active %d outside window %d..%d at width %d",
					round, s.ActiveIndex(), s.Leftmost(), last, width)
			}
			if s.Leftmost() > 0 && tui.TabSpan(widths, s.Leftmost()-1, last, 1) <= width {
				t.Fatalf("Round %d: leftmost %d could retract at width %d", round, s.Leftmost(), width)
			}
		}
	}
}
