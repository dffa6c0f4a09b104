package tui

import (
	"unicode"

	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/chatterm/terminal"
)

// CellWidth returns the number of cells ch occupies when drawn by Put
// Zero-width and control runes take one cell since Put substitutes them
func CellWidth(ch rune) int {
	if terminal.RuneWidth(ch) == 2 {
		return 2
	}
	return 1
}

// StringWidth returns display width in cells
func StringWidth(s string) int {
	n := 0
	for _, ch := range s {
		n += CellWidth(ch)
	}
	return n
}

// RunesWidth returns display width of a rune slice in cells
func RunesWidth(rs []rune) int {
	n := 0
	for _, ch := range rs {
		n += CellWidth(ch)
	}
	return n
}

// Truncate truncates string with … suffix if it exceeds maxW cells
func Truncate(s string, maxW int) string {
	if maxW <= 0 {
		return ""
	}
	if StringWidth(s) <= maxW {
		return s
	}
	if maxW <= 1 {
		return "…"
	}
	return runewidth.Truncate(s, maxW, "…")
}

// Text renders text at position, truncates at region edge, returns columns used
func (r Region) Text(x, y int, s string, st Style) int {
	if y < 0 || y >= r.H {
		return 0
	}
	col := 0
	for _, ch := range s {
		if x+col >= r.W {
			break
		}
		col += r.Put(x+col, y, ch, st)
	}
	return col
}

// WrapBreaks computes line starts for word-wrapping runes
// The first line holds firstW cells, later lines restW
// Lines break after the last whitespace rune that fits, which is not carried over
// Words wider than a line are hard-split
func WrapBreaks(runes []rune, firstW, restW int) []int {
	starts := []int{0}
	if firstW < 1 {
		firstW = 1
	}
	if restW < 1 {
		restW = 1
	}

	width := firstW
	lineStart := 0
	lineW := 0
	lastSpace := -1

	for i := 0; i < len(runes); i++ {
		cw := CellWidth(runes[i])

		for lineW+cw > width && i > lineStart {
			wrapAt := i
			if lastSpace > lineStart {
				// Wrap at last space
				wrapAt = lastSpace
			}

			next := wrapAt
			// Skip space at wrap point
			if unicode.IsSpace(runes[wrapAt]) {
				next = wrapAt + 1
			}
			if next > i {
				// Overflowing rune is itself the skipped space
				starts = append(starts, next)
				lineStart = next
				lineW = -cw
				lastSpace = -1
				width = restW
				break
			}

			starts = append(starts, next)
			lineStart = next
			lineW = RunesWidth(runes[next:i])
			lastSpace = -1
			width = restW
		}

		if unicode.IsSpace(runes[i]) {
			lastSpace = i
		}
		lineW += cw
	}

	return starts
}

// WrapText wraps text at word boundaries to fit width
// Returns slice of lines, each no wider than width
func WrapText(s string, width int) []string {
	if width <= 0 {
		return nil
	}
	runes := []rune(s)
	if len(runes) == 0 {
		return []string{""}
	}

	starts := WrapBreaks(runes, width, width)
	lines := make([]string, len(starts))
	for i, start := range starts {
		end := len(runes)
		if i+1 < len(starts) {
			end = starts[i+1]
		}
		line := runes[start:end]
		// Drop the space kept at a soft break
		for len(line) > 0 && RunesWidth(line) > width && line[len(line)-1] == ' ' {
			line = line[:len(line)-1]
		}
		lines[i] = string(line)
	}
	return lines
}
