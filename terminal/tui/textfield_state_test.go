package tui

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/lixenwraith/chatterm/terminal"
)

// TestDeleteWordBackward verifies the whitespace-then-word rule
func TestDeleteWordBackward(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		cursor int
		want   string
	}{
		{name: "Trailing word", text: "one two", cursor: 7, want: "one "},
		{name: "Trailing spaces collapse with word", text: "one two   ", cursor: 10, want: "one "},
		{name: "Middle", text: "one two three", cursor: 7, want: "one  three"},
		{name: "Only spaces", text: "   ", cursor: 3, want: ""},
		{name: "Tabs are whitespace", text: "a\tb\t", cursor: 4, want: "a\t"},
		{name: "Punctuation is part of word", text: "x foo.bar", cursor: 9, want: "x "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewTextFieldState(tt.text)
			s.Cursor = tt.cursor
			s.DeleteWordBackward()
			if got := s.Value(); got != tt.want {
				t.Errorf("Expected %q, got %q", tt.want, got)
			}
		})
	}

	s := NewTextFieldState("")
	if s.DeleteWordBackward() {
		t.Error("Expected no-op at buffer start")
	}
}

// TestCtrlWSequence verifies three presses on the reference line
func TestCtrlWSequence(t *testing.T) {
	s := NewTextFieldState("alskdfj asldkf asldkf aslkdfj aslkdfj asf")
	want := []string{
		"alskdfj asldkf asldkf aslkdfj aslkdfj ",
		"alskdfj asldkf asldkf aslkdfj ",
		"alskdfj asldkf asldkf ",
	}
	var got []string
	for range want {
		s.HandleKey(terminal.KeyCtrlW, 0, terminal.ModNone)
		got = append(got, s.Value())
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Sequence mismatch (-want +got):\n%s", diff)
	}
}

// TestLayoutMode verifies the fallback threshold ignores the prefix
func TestLayoutMode(t *testing.T) {
	s := NewTextFieldState("text")
	s.Layout(ScrollFallbackWidth-1, 0)
	if s.Wrapping() {
		t.Error("Expected scrolling below threshold")
	}
	s.Layout(ScrollFallbackWidth, 20)
	if !s.Wrapping() {
		t.Error("Expected wrapping at threshold regardless of prefix")
	}
}

// TestLayoutCache verifies mutations mark the layout dirty until redrawn
func TestLayoutCache(t *testing.T) {
	s := NewTextFieldState(strings.Repeat("a", 37))
	s.Layout(40, 3)
	if s.Dirty() || s.Height() != 2 {
		t.Fatalf("Expected clean 2-line layout, got dirty=%v height=%d", s.Dirty(), s.Height())
	}

	s.DeleteBackward()
	if !s.Dirty() {
		t.Error("Expected dirty after mutation")
	}
	if s.Height() != 2 {
		t.Errorf("Expected stale height until Layout, got %d", s.Height())
	}

	s.Layout(40, 3)
	if s.Dirty() || s.Height() != 1 {
		t.Errorf("Expected clean 1-line layout, got dirty=%v height=%d", s.Dirty(), s.Height())
	}
}

// TestWrapLines verifies word wrap and the extra line for the end cursor
func TestWrapLines(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		width  int
		prefix int
		lines  []string
	}{
		{name: "First line shorter", text: strings.Repeat("a", 37) + "bbbbb", width: 40, prefix: 3,
			lines: []string{strings.Repeat("a", 37), "bbbbb"}},
		{name: "Break after space", text: strings.Repeat("a", 35) + " bbbbb", width: 40, prefix: 3,
			lines: []string{strings.Repeat("a", 35) + " ", "bbbbb"}},
		{name: "Cursor opens a line", text: strings.Repeat("a", 37), width: 40, prefix: 3,
			lines: []string{strings.Repeat("a", 37), ""}},
		{name: "Fits with cursor", text: strings.Repeat("a", 36), width: 40, prefix: 3,
			lines: []string{strings.Repeat("a", 36)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewTextFieldState(tt.text)
			s.Layout(tt.width, tt.prefix)
			var got []string
			for i := 0; i < s.Height(); i++ {
				got = append(got, string(s.LineText(i)))
			}
			if diff := cmp.Diff(tt.lines, got); diff != "" {
				t.Errorf("Lines mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

// TestFieldWidthProperties checks width bounds in both modes over random
// edits: wrapped lines never exceed the width and the scroll viewport always
// contains the cursor
func TestFieldWidthProperties(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	alphabet := []rune("abc de fghij 日本 ")

	for round := 0; round < 300; round++ {
		s := NewTextFieldState("")
		width := 4 + rng.Intn(70)
		prefix := rng.Intn(8)

		for step := 0; step < 60; step++ {
			switch rng.Intn(6) {
			case 0, 1, 2:
				s.Insert(alphabet[rng.Intn(len(alphabet))])
			case 3:
				s.DeleteBackward()
			case 4:
				s.MoveLeft()
			case 5:
				s.DeleteWordBackward()
			}
			s.Layout(width, prefix)

			line, col := s.CursorPos()
			if s.Wrapping() {
				for i := 0; i < s.Height(); i++ {
					w := RunesWidth(s.LineText(i))
					if i == 0 {
						w += prefix
					}
					// A soft-break space may sit one past the edge, it is clipped
					if w > width && !strings.HasSuffix(string(s.LineText(i)), " ") {
						t.Fatalf("Round %d: line %d is %d cells at width %d", round, i, w, width)
					}
				}
				if col > width {
					t.Fatalf("Round %d: cursor column %d past width %d", round, col, width)
				}
				continue
			}

			if s.Height() != 1 || line != 0 {
				t.Fatalf("Round %d: scroll mode with %d lines", round, s.Height())
			}
			if s.Cursor < s.Scroll {
				t.Fatalf("Round %d: cursor %d left of scroll %d", round, s.Cursor, s.Scroll)
			}
			if vp := width - prefix; vp > 1 && col >= width {
				t.Fatalf("Round %d: cursor column %d outside width %d", round, col, width)
			}
		}
	}
}

// TestTextFieldRender verifies the drawn field and cursor in scroll mode
func TestTextFieldRender(t *testing.T) {
	g := terminal.NewGrid(12, 1)
	s := NewTextFieldState("hello world")
	s.Layout(12, 3)

	x, y := GridRegion(g).TextField(s, TextFieldOpts{Prefix: "n: ", TextStyle: Plain})
	g.Present()

	if g.Row(0) != "n: lo world " {
		t.Errorf("Expected %q, got %q", "n: lo world ", g.Row(0))
	}
	if x != 11 || y != 0 {
		t.Errorf("Expected cursor (11, 0), got (%d, %d)", x, y)
	}
}
