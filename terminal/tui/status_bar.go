package tui

import "github.com/lixenwraith/chatterm/terminal"

// BarSection represents one segment of a status bar
type BarSection struct {
	Label      string
	Value      string
	LabelStyle Style
	ValueStyle Style
	Priority   int // Higher = survives truncation
}

// BarAlign specifies status bar alignment mode
type BarAlign uint8

const (
	BarAlignLeft  BarAlign = iota // Pack sections from left
	BarAlignRight                 // Pack sections from right
)

// BarOpts configures status bar rendering
type BarOpts struct {
	Separator string // Between sections, default " │ "
	SepStyle  Style
	Fill      Style // Background of the whole row, sections keep their foreground
	Align     BarAlign
	Padding   int // Left/right padding
}

// DefaultBarOpts returns sensible defaults
func DefaultBarOpts() BarOpts {
	return BarOpts{
		Separator: " │ ",
		SepStyle:  FgStyle(terminal.RGB{R: 80, G: 80, B: 100}),
		Fill:      Plain,
		Padding:   1,
		Align:     BarAlignLeft,
	}
}

// StatusBar renders a one-row bar of sections on row y
// Lowest priority sections are dropped until the rest fit; a single
// remaining section is clipped at the right padding
func (r Region) StatusBar(y int, sections []BarSection, opts BarOpts) {
	if y < 0 || y >= r.H {
		return
	}
	if opts.Separator == "" {
		opts.Separator = " │ "
	}
	if opts.Padding < 0 {
		opts.Padding = 0
	}

	for x := 0; x < r.W; x++ {
		r.Cell(x, y, ' ', opts.Fill)
	}
	if len(sections) == 0 {
		return
	}

	sepW := StringWidth(opts.Separator)
	widths := make([]int, len(sections))
	for i, sec := range sections {
		widths[i] = StringWidth(sec.Label) + StringWidth(sec.Value)
	}

	availW := r.W - opts.Padding*2
	sections, widths = truncateSections(sections, widths, sepW, availW)
	totalW := barWidth(widths, sepW)

	x := opts.Padding
	if opts.Align == BarAlignRight {
		x = max(opts.Padding, r.W-opts.Padding-totalW)
	}

	limit := r.W - opts.Padding
	sepStyle := onFill(opts.SepStyle, opts.Fill)
	for i, sec := range sections {
		x = r.barText(x, y, limit, sec.Label, onFill(sec.LabelStyle, opts.Fill))
		x = r.barText(x, y, limit, sec.Value, onFill(sec.ValueStyle, opts.Fill))
		if i < len(sections)-1 {
			x = r.barText(x, y, limit, opts.Separator, sepStyle)
		}
	}
}

// barText draws s from x, stopping before a rune would cross limit
func (r Region) barText(x, y, limit int, s string, st Style) int {
	for _, ch := range s {
		if x+CellWidth(ch) > limit {
			break
		}
		x += r.Put(x, y, ch, st)
	}
	return x
}

// onFill keeps the foreground of st over the background of fill
func onFill(st, fill Style) Style {
	st.Bg = fill.Bg
	st.Attr = st.Attr&^terminal.AttrDefaultBg | fill.Attr&terminal.AttrDefaultBg
	return st
}

func barWidth(widths []int, sepW int) int {
	total := 0
	for i, w := range widths {
		total += w
		if i < len(widths)-1 {
			total += sepW
		}
	}
	return total
}

// truncateSections removes lowest priority sections until fit
// Ties drop the rightmost section first
func truncateSections(sections []BarSection, widths []int, sepW, availW int) ([]BarSection, []int) {
	secs := make([]BarSection, len(sections))
	copy(secs, sections)
	ws := make([]int, len(widths))
	copy(ws, widths)

	for len(secs) > 1 && barWidth(ws, sepW) > availW {
		minIdx := len(secs) - 1
		for i := len(secs) - 1; i >= 0; i-- {
			if secs[i].Priority < secs[minIdx].Priority {
				minIdx = i
			}
		}
		secs = append(secs[:minIdx], secs[minIdx+1:]...)
		ws = append(ws[:minIdx], ws[minIdx+1:]...)
	}
	return secs, ws
}
