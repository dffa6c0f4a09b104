package tui

// TextFieldOpts configures text field rendering
type TextFieldOpts struct {
	Prefix      string // Left prompt (e.g., "nick: ")
	PrefixStyle Style
	TextStyle   Style
	Mask        rune // Password mask, 0 = none
}

// TextField renders the field into the region and returns the cursor
// position relative to the region; Layout must have run for r.W
// When wrapped lines exceed the region height the window follows the cursor
func (r Region) TextField(state *TextFieldState, opts TextFieldOpts) (cursorX, cursorY int) {
	if r.W < 1 || r.H < 1 {
		return 0, 0
	}

	r.Fill(opts.TextStyle)

	curLine, curCol := state.CursorPos()
	first := 0
	if curLine >= r.H {
		first = curLine - r.H + 1
	}

	for row := 0; row < r.H; row++ {
		line := first + row
		if line >= state.Height() {
			break
		}
		x := 0
		if line == 0 && opts.Prefix != "" {
			x = r.Text(0, row, opts.Prefix, opts.PrefixStyle)
		}
		for _, ch := range state.LineText(line) {
			if x >= r.W {
				break
			}
			if opts.Mask != 0 {
				ch = opts.Mask
			}
			x += r.Put(x, row, ch, opts.TextStyle)
		}
	}

	cursorX = curCol
	if cursorX >= r.W {
		cursorX = r.W - 1
	}
	return cursorX, curLine - first
}
