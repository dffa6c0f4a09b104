package terminal

import "github.com/mattn/go-runewidth"

// RuneWidth returns the number of cells r occupies (0, 1 or 2)
func RuneWidth(r rune) int {
	return runewidth.RuneWidth(r)
}

func isWide(r rune) bool {
	return runewidth.RuneWidth(r) == 2
}
