package terminal

import "strings"

// Change is one cell that differs between two presented frames
type Change struct {
	X, Y int
	Cell Cell
}

// Grid manages a double-buffered cell surface with diffing
// Cells are row-major: cells[y*width + x]
type Grid struct {
	front  []Cell
	back   []Cell
	width  int
	height int

	// Force next Present to report every cell
	invalid bool
	changes []Change
}

// NewGrid creates a grid of the given size with both buffers blank
func NewGrid(width, height int) *Grid {
	g := &Grid{}
	g.Resize(width, height)
	return g
}

// Resize reallocates both buffers and clears content
// Same-size resize is a no-op so a redraw reproduces the previous frame
func (g *Grid) Resize(width, height int) {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	if width == g.width && height == g.height && g.front != nil {
		return
	}

	size := width * height
	if cap(g.front) < size {
		g.front = make([]Cell, size)
		g.back = make([]Cell, size)
	} else {
		g.front = g.front[:size]
		g.back = g.back[:size]
	}
	g.width = width
	g.height = height

	for i := range g.front {
		g.front[i] = BlankCell
		g.back[i] = BlankCell
	}
	g.invalid = true
}

// Size returns grid dimensions
func (g *Grid) Size() (width, height int) {
	return g.width, g.height
}

// Back returns the render target buffer
func (g *Grid) Back() []Cell {
	return g.back
}

// Clear blanks the back buffer
func (g *Grid) Clear() {
	for i := range g.back {
		g.back[i] = BlankCell
	}
}

// Invalidate forces the next Present to report every cell
func (g *Grid) Invalidate() {
	g.invalid = true
}

// Present copies back into front and returns the cells that changed
// The returned slice is reused by the next call
func (g *Grid) Present() []Change {
	g.changes = g.changes[:0]

	for y := 0; y < g.height; y++ {
		rowStart := y * g.width
		for x := 0; x < g.width; x++ {
			idx := rowStart + x
			c := g.back[idx]
			if !g.invalid && cellEqual(c, g.front[idx]) {
				continue
			}
			g.front[idx] = c
			g.changes = append(g.changes, Change{X: x, Y: y, Cell: c})
		}
	}

	g.invalid = false
	return g.changes
}

// CellAt returns the presented cell at position, blank when out of bounds
func (g *Grid) CellAt(x, y int) Cell {
	if x < 0 || x >= g.width || y < 0 || y >= g.height {
		return BlankCell
	}
	return g.front[y*g.width+x]
}

// Row returns the presented glyphs of row y
// Trailing halves of wide runes are skipped so the result reads as typed
func (g *Grid) Row(y int) string {
	if y < 0 || y >= g.height {
		return ""
	}
	var sb strings.Builder
	row := g.front[y*g.width : (y+1)*g.width]
	for x, c := range row {
		if c.Rune == 0 && x > 0 && row[x-1].Rune != 0 && isWide(row[x-1].Rune) {
			continue
		}
		sb.WriteRune(c.Glyph())
	}
	return sb.String()
}

// String returns all presented rows joined by newlines
func (g *Grid) String() string {
	rows := make([]string, g.height)
	for y := range rows {
		rows[y] = g.Row(y)
	}
	return strings.Join(rows, "\n")
}
