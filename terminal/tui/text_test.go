package tui

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/lixenwraith/chatterm/terminal"
)

// TestWrapText verifies word wrapping and hard splits
func TestWrapText(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		width int
		want  []string
	}{
		{name: "Fits", text: "hello", width: 10, want: []string{"hello"}},
		{name: "Exact", text: "Any mentions to you will be listed here.", width: 20,
			want: []string{"Any mentions to you ", "will be listed here."}},
		{name: "Word break", text: "aaa bbb ccc", width: 5, want: []string{"aaa ", "bbb ", "ccc"}},
		{name: "Hard split", text: "abcdefghij", width: 4, want: []string{"abcd", "efgh", "ij"}},
		{name: "Overflowing space dropped", text: "abcd efgh", width: 4, want: []string{"abcd", "efgh"}},
		{name: "Tab break", text: "aaa\tbbb ccc", width: 5, want: []string{"aaa\t", "bbb ", "ccc"}},
		{name: "Newline break", text: "aaa\nbbb", width: 5, want: []string{"aaa\n", "bbb"}},
		{name: "Empty", text: "", width: 4, want: []string{""}},
		{name: "Zero width", text: "abc", width: 0, want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, WrapText(tt.text, tt.width)); diff != "" {
				t.Errorf("WrapText mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

// TestWrapBreaksFirstLine verifies a narrower first line
func TestWrapBreaksFirstLine(t *testing.T) {
	got := WrapBreaks([]rune("ab cd ef gh"), 3, 6)
	if diff := cmp.Diff([]int{0, 3, 9}, got); diff != "" {
		t.Errorf("WrapBreaks mismatch (-want +got):\n%s", diff)
	}
}

// TestRegionPut verifies wide runes and edge handling
func TestRegionPut(t *testing.T) {
	g := terminal.NewGrid(3, 1)
	r := GridRegion(g)

	if n := r.Put(0, 0, '日', Plain); n != 2 {
		t.Errorf("Expected wide rune to use 2 columns, got %d", n)
	}
	if n := r.Put(2, 0, '本', Plain); n != 1 {
		t.Errorf("Expected straddling wide rune to use 1 column, got %d", n)
	}
	g.Present()
	if g.Row(0) != "日 " {
		t.Errorf("Expected %q, got %q", "日 ", g.Row(0))
	}

	r.Put(0, 0, '\x01', Plain)
	g.Present()
	if g.CellAt(0, 0).Rune != '?' {
		t.Errorf("Expected control rune replaced, got %q", g.CellAt(0, 0).Rune)
	}
}

// TestRegionSubClips verifies nested regions stay inside their parent
func TestRegionSubClips(t *testing.T) {
	g := terminal.NewGrid(5, 2)
	r := GridRegion(g).Sub(3, 1, 10, 10)
	if r.W != 2 || r.H != 1 {
		t.Fatalf("Expected clipped 2x1, got %dx%d", r.W, r.H)
	}
	r.Text(0, 0, "xyz", Plain)
	g.Present()
	if g.Row(1) != "   xy" {
		t.Errorf("Expected %q, got %q", "   xy", g.Row(1))
	}
}

// TestTruncate verifies ellipsis truncation by cell width
func TestTruncate(t *testing.T) {
	if got := Truncate("hello world", 6); got != "hello…" {
		t.Errorf("Expected %q, got %q", "hello…", got)
	}
	if got := Truncate("short", 10); got != "short" {
		t.Errorf("Expected %q, got %q", "short", got)
	}
}
