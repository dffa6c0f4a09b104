package ui

// historySize bounds remembered input lines
const historySize = 100

// history is the submitted-line recall used by Up and Down
// pos == len(entries) means the field holds the user's draft
type history struct {
	entries []string
	pos     int
	draft   string
}

func (h *history) add(line string) {
	if n := len(h.entries); n == 0 || h.entries[n-1] != line {
		h.entries = append(h.entries, line)
		if len(h.entries) > historySize {
			h.entries = h.entries[len(h.entries)-historySize:]
		}
	}
	h.pos = len(h.entries)
	h.draft = ""
}

// prev returns the older entry, saving cur as the draft when leaving it
func (h *history) prev(cur string) (string, bool) {
	if h.pos == 0 {
		return "", false
	}
	if h.pos == len(h.entries) {
		h.draft = cur
	}
	h.pos--
	return h.entries[h.pos], true
}

// next returns the newer entry, or the draft past the newest
func (h *history) next() (string, bool) {
	if h.pos >= len(h.entries) {
		return "", false
	}
	h.pos++
	if h.pos == len(h.entries) {
		return h.draft, true
	}
	return h.entries[h.pos], true
}
