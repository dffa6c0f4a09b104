package tui

import "github.com/lixenwraith/chatterm/terminal"

// Tab bar indicator glyphs and the columns reserved for them
const (
	TabLeftIndicator  = "< "
	TabRightIndicator = ">"
	tabIndicatorW     = 2
)

// TabLabel is one tab title with its style
type TabLabel struct {
	Title string
	Style Style
}

// TabBarOpts configures tab bar rendering
type TabBarOpts struct {
	Separator      string // Between tabs, default " "
	IndicatorStyle Style
}

// DefaultTabBarOpts returns sensible defaults
func DefaultTabBarOpts() TabBarOpts {
	return TabBarOpts{
		Separator:      " ",
		IndicatorStyle: Style{Attr: terminal.AttrDefault | terminal.AttrBold},
	}
}

// TabSpan returns the cells needed to show tabs first..last inclusive with
// separators plus the scroll indicators that window would need
func TabSpan(widths []int, first, last, sepW int) int {
	if first < 0 || last < first || last >= len(widths) {
		return 0
	}
	span := 0
	if first > 0 {
		span += tabIndicatorW
	}
	for i := first; i <= last; i++ {
		span += widths[i]
	}
	span += (last - first) * sepW
	if last < len(widths)-1 {
		span += tabIndicatorW
	}
	return span
}

// TabWindowEnd returns the last tab index visible when the window starts at
// first; the first tab is always shown even when it alone overflows
func TabWindowEnd(widths []int, first, width, sepW int) int {
	if first < 0 || first >= len(widths) {
		return -1
	}
	last := first
	for last+1 < len(widths) && TabSpan(widths, first, last+1, sepW) <= width {
		last++
	}
	return last
}

// TabBar renders a horizontal tab strip starting at tab index first on row y
// Returns the index of the last rendered tab
func (r Region) TabBar(y int, labels []TabLabel, first int, opts TabBarOpts) int {
	if y < 0 || y >= r.H || len(labels) == 0 || first < 0 || first >= len(labels) {
		return -1
	}
	if opts.Separator == "" {
		opts.Separator = " "
	}
	sepW := StringWidth(opts.Separator)

	widths := make([]int, len(labels))
	for i, l := range labels {
		widths[i] = StringWidth(l.Title)
	}
	last := TabWindowEnd(widths, first, r.W, sepW)

	x := 0
	if first > 0 {
		x += r.Text(x, y, TabLeftIndicator, opts.IndicatorStyle)
	}
	for i := first; i <= last; i++ {
		x += r.Text(x, y, labels[i].Title, labels[i].Style)
		if i < last {
			x += r.Text(x, y, opts.Separator, Plain)
		}
	}
	if last < len(labels)-1 {
		r.Text(r.W-StringWidth(TabRightIndicator), y, TabRightIndicator, opts.IndicatorStyle)
	}
	return last
}
