package tui

import "github.com/lixenwraith/chatterm/terminal"

// Region represents a rectangular area within a cell buffer
// All coordinates are relative to the region's origin
type Region struct {
	Cells  []terminal.Cell
	TotalW int // Total width of the underlying cell buffer
	X, Y   int // Absolute position in cell buffer
	W, H   int // Region dimensions
}

// NewRegion creates a region referencing a cell slice with bounds
func NewRegion(cells []terminal.Cell, totalW, x, y, w, h int) Region {
	return Region{
		Cells:  cells,
		TotalW: totalW,
		X:      x,
		Y:      y,
		W:      w,
		H:      h,
	}
}

// GridRegion returns a region covering the whole back buffer of g
func GridRegion(g *terminal.Grid) Region {
	w, h := g.Size()
	return NewRegion(g.Back(), w, 0, 0, w, h)
}

// Sub returns a nested region with coordinates relative to parent, result is clipped to parent bounds
func (r Region) Sub(x, y, w, h int) Region {
	// Clip to parent bounds
	if x < 0 {
		w += x
		x = 0
	}
	if y < 0 {
		h += y
		y = 0
	}
	if x+w > r.W {
		w = r.W - x
	}
	if y+h > r.H {
		h = r.H - y
	}
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}

	return Region{
		Cells:  r.Cells,
		TotalW: r.TotalW,
		X:      r.X + x,
		Y:      r.Y + y,
		W:      w,
		H:      h,
	}
}

// Row returns the single-row sub region at y
func (r Region) Row(y int) Region {
	return r.Sub(0, y, r.W, 1)
}

// Cell sets a single cell with bounds checking
func (r Region) Cell(x, y int, ch rune, st Style) {
	if x < 0 || x >= r.W || y < 0 || y >= r.H {
		return
	}
	absX := r.X + x
	absY := r.Y + y

	// Bounds check against the physical buffer dimensions
	if uint(absX) >= uint(r.TotalW) {
		return
	}

	idx := absY*r.TotalW + absX
	// Single bounds check for the backing slice
	if uint(idx) < uint(len(r.Cells)) {
		r.Cells[idx] = terminal.Cell{Rune: ch, Fg: st.Fg, Bg: st.Bg, Attrs: st.Attr}
	}
}

// Put draws one rune honoring its display width and returns the columns used
// A double-width rune that would straddle the right edge is replaced by a blank
func (r Region) Put(x, y int, ch rune, st Style) int {
	w := CellWidth(ch)
	if w == 2 {
		if x+1 >= r.W {
			r.Cell(x, y, ' ', st)
			return 1
		}
		r.Cell(x, y, ch, st)
		r.Cell(x+1, y, 0, st)
		return 2
	}
	if ch < ' ' {
		ch = '?'
	}
	r.Cell(x, y, ch, st)
	return 1
}

// Fill fills entire region with blanks in style st
func (r Region) Fill(st Style) {
	for y := 0; y < r.H; y++ {
		for x := 0; x < r.W; x++ {
			r.Cell(x, y, ' ', st)
		}
	}
}

// Clear fills region with blanks in terminal default colors
func (r Region) Clear() {
	r.Fill(Style{Attr: terminal.AttrDefault})
}
