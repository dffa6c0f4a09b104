package ui

import "github.com/lixenwraith/chatterm/terminal/tui"

// TabStrip is the ordered tab collection with its active tab and the index
// of the leftmost visible tab
type TabStrip struct {
	tabs     []*Tab
	active   int
	leftmost int
}

// Len returns the number of tabs
func (s *TabStrip) Len() int {
	return len(s.tabs)
}

// Tabs returns the tabs in display order, callers must not modify the slice
func (s *TabStrip) Tabs() []*Tab {
	return s.tabs
}

// Active returns the active tab, nil when empty
func (s *TabStrip) Active() *Tab {
	if s.active < 0 || s.active >= len(s.tabs) {
		return nil
	}
	return s.tabs[s.active]
}

// ActiveIndex returns the active tab index
func (s *TabStrip) ActiveIndex() int {
	return s.active
}

// Leftmost returns the index of the first visible tab
func (s *TabStrip) Leftmost() int {
	return s.leftmost
}

// find returns the index of the tab with kind and identity, -1 if absent
func (s *TabStrip) find(kind TabKind, serv, name string) int {
	for i, t := range s.tabs {
		if t.is(kind, serv, name) {
			return i
		}
	}
	return -1
}

// add appends t at the end and returns its index
func (s *TabStrip) add(t *Tab) int {
	s.tabs = append(s.tabs, t)
	return len(s.tabs) - 1
}

// Select makes tab i active, clearing its unread status
func (s *TabStrip) Select(i int) bool {
	if i < 0 || i >= len(s.tabs) {
		return false
	}
	s.active = i
	s.tabs[i].Status = StatusNormal
	return true
}

// Next moves the active tab right, wrapping to the first
func (s *TabStrip) Next() {
	if len(s.tabs) == 0 {
		return
	}
	s.Select((s.active + 1) % len(s.tabs))
}

// Prev moves the active tab left, wrapping to the last
func (s *TabStrip) Prev() {
	if len(s.tabs) == 0 {
		return
	}
	s.Select((s.active - 1 + len(s.tabs)) % len(s.tabs))
}

// indexOf returns the position of t, -1 when it is not in the strip
func (s *TabStrip) indexOf(t *Tab) int {
	for i, tab := range s.tabs {
		if tab == t {
			return i
		}
	}
	return -1
}

// remove deletes tab i; closing the active tab activates its left neighbor,
// or the new first tab when it was leftmost
func (s *TabStrip) remove(i int) {
	if i < 0 || i >= len(s.tabs) {
		return
	}
	wasActive := i == s.active
	s.tabs = append(s.tabs[:i], s.tabs[i+1:]...)

	switch {
	case len(s.tabs) == 0:
		s.active, s.leftmost = 0, 0
		return
	case wasActive:
		if i > 0 {
			s.Select(i - 1)
		} else {
			s.Select(0)
		}
	case i < s.active:
		s.active--
	}
	if i < s.leftmost {
		s.leftmost--
	}
	if s.leftmost > s.active {
		s.leftmost = s.active
	}
}

// labels returns the drawable titles and their cell widths
func (s *TabStrip) labels(theme tui.Theme) ([]tui.TabLabel, []int) {
	labels := make([]tui.TabLabel, len(s.tabs))
	widths := make([]int, len(s.tabs))
	for i, t := range s.tabs {
		st := theme.TabNormal
		switch {
		case i == s.active:
			st = theme.TabActive
		case t.Status == StatusHighlight:
			st = theme.TabHighlight
		case t.Status == StatusNewMsg:
			st = theme.TabNewMsg
		}
		labels[i] = tui.TabLabel{Title: t.Label(), Style: st}
		widths[i] = tui.StringWidth(labels[i].Title)
	}
	return labels, widths
}

// fixScroll moves the visible window the least needed to show the active tab
// in width cells, then pulls hidden left tabs back in while they fit next to
// everything currently shown
func (s *TabStrip) fixScroll(widths []int, width, sepW int) {
	if len(s.tabs) == 0 {
		s.leftmost = 0
		return
	}
	if s.leftmost > s.active {
		s.leftmost = s.active
	}
	if s.leftmost < 0 {
		s.leftmost = 0
	}
	for s.leftmost < s.active && tui.TabSpan(widths, s.leftmost, s.active, sepW) > width {
		s.leftmost++
	}
	for s.leftmost > 0 {
		last := tui.TabWindowEnd(widths, s.leftmost, width, sepW)
		if tui.TabSpan(widths, s.leftmost-1, last, sepW) > width {
			break
		}
		s.leftmost--
	}
}
