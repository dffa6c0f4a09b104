package ui

// rows is a horizontal band of the screen, H == 0 when hidden
type rows struct {
	Y, H int
}

// layout is the per-draw split of the screen, top to bottom
type layout struct {
	msgs   rows
	status rows
	field  rows
	tabs   rows
}

// computeLayout allocates rows bottom up: the tab strip keeps its row while
// any row exists, the text field takes its wrapped height from what remains
// once two rows exist, the status line needs one message row left over, and
// the message area gets the rest
func computeLayout(height, fieldLines int, status bool) layout {
	var l layout
	if height < 1 {
		return l
	}
	free := height

	free--
	l.tabs = rows{Y: free, H: 1}

	if free >= 1 {
		h := max(1, min(fieldLines, free))
		free -= h
		l.field = rows{Y: free, H: h}
	}

	if status && free >= 2 {
		free--
		l.status = rows{Y: free, H: 1}
	}

	l.msgs = rows{Y: 0, H: free}
	return l
}
