package terminal

// Attr represents text attributes (bitmask)
type Attr uint8

const (
	AttrNone      Attr = 0
	AttrBold      Attr = 1 << 0
	AttrDim       Attr = 1 << 1
	AttrItalic    Attr = 1 << 2
	AttrUnderline Attr = 1 << 3
	AttrBlink     Attr = 1 << 4
	AttrReverse   Attr = 1 << 5
	AttrDefaultFg Attr = 1 << 6 // Fg ignored, terminal default foreground
	AttrDefaultBg Attr = 1 << 7 // Bg ignored, terminal default background
)

// AttrDefault renders with the terminal's own colors
const AttrDefault Attr = AttrDefaultFg | AttrDefaultBg

// Cell represents a single terminal cell
// Rune 0 is a blank, or the trailing half of a double-width rune
type Cell struct {
	Rune  rune
	Fg    RGB
	Bg    RGB
	Attrs Attr
}

// BlankCell is the cell every buffer position holds before drawing
var BlankCell = Cell{Rune: ' ', Attrs: AttrDefault}

// Glyph returns the printable rune of the cell, blank for zero
func (c Cell) Glyph() rune {
	if c.Rune == 0 {
		return ' '
	}
	return c.Rune
}

// cellEqual compares two cells for equality (standalone for inlining)
func cellEqual(a, b Cell) bool {
	if a.Rune != b.Rune || a.Attrs != b.Attrs {
		return false
	}
	if a.Attrs&AttrDefaultFg == 0 && a.Fg != b.Fg {
		return false
	}
	if a.Attrs&AttrDefaultBg == 0 && a.Bg != b.Bg {
		return false
	}
	return true
}
