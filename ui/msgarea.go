package ui

import (
	"sort"
	"time"

	"github.com/lixenwraith/chatterm/terminal/tui"
)

// Layout selects how the timestamp column is arranged
type Layout uint8

const (
	// LayoutCompact prints a timestamp only when the minute changes and wraps
	// continuation lines to the left edge
	LayoutCompact Layout = iota
	// LayoutAligned keeps a timestamp column on every timed line and indents
	// continuation lines past it
	LayoutAligned
)

// ParseLayout maps a config name to a Layout
func ParseLayout(s string) (Layout, bool) {
	switch s {
	case "", "compact":
		return LayoutCompact, true
	case "aligned":
		return LayoutAligned, true
	}
	return LayoutCompact, false
}

func (l Layout) String() string {
	if l == LayoutAligned {
		return "aligned"
	}
	return "compact"
}

// stampWidth is the "HH:MM " column
const stampWidth = 6

type msgKind uint8

const (
	msgPlain msgKind = iota
	msgClient
	msgErr
	msgPrivmsg
	msgTopic
	msgActivity
)

// role is resolved to a theme style at draw time so theme reloads recolor
// existing scrollback
type role uint8

const (
	roleText role = iota
	roleNotice
	roleErr
	roleNick
	roleHighlight
	roleTopic
	roleJoin
	rolePart
	roleNickChange
)

// segment styles runes up to (not including) end
type segment struct {
	end  int
	role role
	nick string // roleNick only
}

type message struct {
	kind   msgKind
	timed  bool
	stamp  bool // Print the minute; false when it repeats the previous one
	minute time.Time

	runes []rune
	segs  []segment

	// Wrap cache, valid while cacheW matches the draw width
	cacheW int
	starts []int
}

func (m *message) append(s string, r role, nick string) {
	m.runes = append(m.runes, []rune(s)...)
	m.segs = append(m.segs, segment{end: len(m.runes), role: r, nick: nick})
	m.cacheW = -1
}

// String returns the message text without the timestamp column
func (m *message) String() string {
	return string(m.runes)
}

// MessageArea is the scrollback of one tab
// Lines are anchored at the bottom; the view follows new messages while
// pinned and otherwise keeps its anchor line across appends and resizes
type MessageArea struct {
	msgs       []*message
	layout     Layout
	scrollback int // Retention cap, 0 = unlimited

	lastMinute time.Time
	hasMinute  bool

	pinned     bool
	anchorMsg  int
	anchorLine int

	// Geometry of the last draw, scrolling is a no-op before the first one
	width  int
	height int
}

// NewMessageArea creates an empty area pinned to the bottom
func NewMessageArea(layout Layout, scrollback int) *MessageArea {
	return &MessageArea{
		layout:     layout,
		scrollback: scrollback,
		pinned:     true,
	}
}

// Len returns the number of stored messages
func (a *MessageArea) Len() int {
	return len(a.msgs)
}

// Text returns the body of message i without its timestamp
func (a *MessageArea) Text(i int) string {
	if i < 0 || i >= len(a.msgs) {
		return ""
	}
	return a.msgs[i].String()
}

// Pinned reports whether the view follows new messages
func (a *MessageArea) Pinned() bool {
	return a.pinned
}

// SetLayout switches timestamp layout and drops every wrap cache
func (a *MessageArea) SetLayout(l Layout) {
	if l == a.layout {
		return
	}
	a.layout = l
	for _, m := range a.msgs {
		m.cacheW = -1
	}
}

// SetScrollback changes the retention cap, evicting immediately
func (a *MessageArea) SetScrollback(n int) {
	a.scrollback = n
	a.evict()
}

// --- Appending ---

// newMessage stamps a message; a timestamp is printed only when its minute
// differs from the last printed one
func (a *MessageArea) newMessage(kind msgKind, ts *time.Time) *message {
	m := &message{kind: kind, cacheW: -1}
	if ts != nil {
		m.timed = true
		m.minute = ts.Truncate(time.Minute)
		if !a.hasMinute || !m.minute.Equal(a.lastMinute) {
			m.stamp = true
			a.lastMinute = m.minute
			a.hasMinute = true
		}
	}
	return m
}

func (a *MessageArea) push(m *message) {
	a.msgs = append(a.msgs, m)
	a.evict()
}

func (a *MessageArea) evict() {
	if a.scrollback <= 0 || len(a.msgs) <= a.scrollback {
		return
	}
	n := len(a.msgs) - a.scrollback
	a.msgs = append(a.msgs[:0], a.msgs[n:]...)
	// The oldest kept line carries the minute its evicted predecessor printed
	if first := a.msgs[0]; first.timed && !first.stamp {
		first.stamp = true
		first.cacheW = -1
	}
	if a.pinned {
		return
	}
	a.anchorMsg -= n
	if a.anchorMsg < 0 {
		a.anchorMsg, a.anchorLine = 0, 0
	}
}

func (a *MessageArea) addText(kind msgKind, text string, r role, ts *time.Time) {
	m := a.newMessage(kind, ts)
	m.append(text, r, "")
	a.push(m)
}

// AddMsg appends a timed plain message
func (a *MessageArea) AddMsg(text string, ts time.Time) {
	a.addText(msgPlain, text, roleText, &ts)
}

// AddClientMsg appends an untimed notice from the client itself
func (a *MessageArea) AddClientMsg(text string) {
	a.addText(msgClient, text, roleNotice, nil)
}

// AddErrMsg appends a timed error line
func (a *MessageArea) AddErrMsg(text string, ts time.Time) {
	a.addText(msgErr, text, roleErr, &ts)
}

// AddTopic appends the topic text as its own line
func (a *MessageArea) AddTopic(text string, ts time.Time) {
	a.addText(msgTopic, text, roleTopic, &ts)
}

// AddPrivmsg appends "sender: text", or "** sender text" for actions
func (a *MessageArea) AddPrivmsg(sender, text string, ts time.Time, highlight, action bool) {
	a.push(a.privmsg("", sender, text, &ts, highlight, action))
}

// addMention appends a privmsg mirrored from another tab, prefixed by origin
func (a *MessageArea) addMention(origin, sender, text string, ts time.Time) {
	a.push(a.privmsg(origin, sender, text, &ts, true, false))
}

func (a *MessageArea) privmsg(origin, sender, text string, ts *time.Time, highlight, action bool) *message {
	m := a.newMessage(msgPrivmsg, ts)
	if origin != "" {
		m.append(origin+": ", roleTopic, "")
	}
	body := roleText
	if highlight {
		body = roleHighlight
	}
	if action {
		m.append("** ", body, "")
		m.append(sender, roleNick, sender)
		m.append(" "+text, body, "")
		return m
	}
	m.append(sender, roleNick, sender)
	m.append(": "+text, body, "")
	return m
}

// AddJoin records nick joining; joins and parts of one minute share a line
func (a *MessageArea) AddJoin(nick string, ts time.Time) {
	a.activity("+"+nick, roleJoin, ts)
}

// AddPart records nick leaving
func (a *MessageArea) AddPart(nick string, ts time.Time) {
	a.activity("-"+nick, rolePart, ts)
}

// AddNickChange records a rename as "old -> new"
func (a *MessageArea) AddNickChange(oldNick, newNick string, ts time.Time) {
	a.activity(oldNick+" -> "+newNick, roleNickChange, ts)
}

func (a *MessageArea) activity(text string, r role, ts time.Time) {
	minute := ts.Truncate(time.Minute)
	if n := len(a.msgs); n > 0 {
		last := a.msgs[n-1]
		if last.kind == msgActivity && last.timed && last.minute.Equal(minute) {
			last.append(" ", roleText, "")
			last.append(text, r, "")
			return
		}
	}
	m := a.newMessage(msgActivity, &ts)
	m.append(text, r, "")
	a.push(m)
}

// --- Wrapping ---

// columns returns the first-line text column and the continuation indent
// The stamp column is dropped when it would leave no room for text
func (a *MessageArea) columns(m *message, width int) (lead, indent int) {
	if width <= stampWidth {
		return 0, 0
	}
	if a.layout == LayoutAligned {
		if m.timed {
			return stampWidth, stampWidth
		}
		return 0, 0
	}
	if m.stamp {
		return stampWidth, 0
	}
	return 0, 0
}

// wrap returns the visual line starts of m at width, cached per width
func (a *MessageArea) wrap(m *message, width int) []int {
	if m.cacheW == width && m.starts != nil {
		return m.starts
	}
	lead, indent := a.columns(m, width)
	m.starts = tui.WrapBreaks(m.runes, width-lead, width-indent)
	m.cacheW = width
	return m.starts
}

func (a *MessageArea) lineCount(i, width int) int {
	return len(a.wrap(a.msgs[i], width))
}

// --- Scrolling ---

// bottom returns the message and line drawn on the last row
func (a *MessageArea) bottom(width int) (msg, line int) {
	if len(a.msgs) == 0 {
		return -1, 0
	}
	if a.pinned || a.anchorMsg >= len(a.msgs) {
		last := len(a.msgs) - 1
		return last, a.lineCount(last, width) - 1
	}
	n := a.lineCount(a.anchorMsg, width)
	if a.anchorLine >= n {
		return a.anchorMsg, n - 1
	}
	return a.anchorMsg, a.anchorLine
}

func (a *MessageArea) totalLines(width int) int {
	total := 0
	for i := range a.msgs {
		total += a.lineCount(i, width)
	}
	return total
}

func (a *MessageArea) lineIndex(msg, line, width int) int {
	idx := line
	for i := 0; i < msg; i++ {
		idx += a.lineCount(i, width)
	}
	return idx
}

func (a *MessageArea) lineAt(idx, width int) (msg, line int) {
	for i := range a.msgs {
		n := a.lineCount(i, width)
		if idx < n {
			return i, idx
		}
		idx -= n
	}
	last := len(a.msgs) - 1
	return last, a.lineCount(last, width) - 1
}

// Scroll moves the bottom anchor by delta lines, negative is up
// The view never scrolls past the first line filling the top row
func (a *MessageArea) Scroll(delta int) {
	if a.width < 1 || a.height < 1 || len(a.msgs) == 0 || delta == 0 {
		return
	}
	total := a.totalLines(a.width)
	msg, line := a.bottom(a.width)
	cur := a.lineIndex(msg, line, a.width)

	next := cur + delta
	if floor := min(total-1, a.height-1); next < floor {
		next = floor
	}
	if next >= total-1 {
		a.pinned = true
		return
	}
	a.pinned = false
	a.anchorMsg, a.anchorLine = a.lineAt(next, a.width)
}

// PageUp scrolls up by one screen less a line of context
func (a *MessageArea) PageUp() {
	a.Scroll(-max(1, a.height-1))
}

// PageDown scrolls down by one screen less a line of context
func (a *MessageArea) PageDown() {
	a.Scroll(max(1, a.height-1))
}

// ScrollToBottom pins the view to the newest line
func (a *MessageArea) ScrollToBottom() {
	a.pinned = true
}

// --- Rendering ---

func (s segment) style(theme *tui.Theme) tui.Style {
	switch s.role {
	case roleNotice:
		return theme.Notice
	case roleErr:
		return theme.ErrMsg
	case roleNick:
		return theme.NickStyle(s.nick)
	case roleHighlight:
		return theme.Highlight
	case roleTopic:
		return theme.Topic
	case roleJoin:
		return theme.Join
	case rolePart:
		return theme.Part
	case roleNickChange:
		return theme.NickChange
	}
	return theme.Text
}

// render draws the lines ending at the bottom anchor upward from the last row
func (a *MessageArea) render(r tui.Region, theme *tui.Theme) {
	a.width, a.height = r.W, r.H
	if r.W < 1 || r.H < 1 {
		return
	}
	msg, line := a.bottom(r.W)
	for y := r.H - 1; y >= 0 && msg >= 0; y-- {
		a.drawLine(r, y, a.msgs[msg], line, theme)
		line--
		if line < 0 {
			msg--
			if msg >= 0 {
				line = a.lineCount(msg, r.W) - 1
			}
		}
	}
}

func (a *MessageArea) drawLine(r tui.Region, y int, m *message, line int, theme *tui.Theme) {
	if len(m.segs) == 0 {
		return
	}
	starts := a.wrap(m, r.W)
	lead, indent := a.columns(m, r.W)

	x := indent
	if line == 0 {
		x = lead
		if m.stamp && lead > 0 {
			r.Text(0, y, m.minute.Local().Format("15:04"), theme.Timestamp)
		}
	}

	begin := starts[line]
	end := len(m.runes)
	if line+1 < len(starts) {
		end = starts[line+1]
	}
	seg := sort.Search(len(m.segs), func(i int) bool { return m.segs[i].end > begin })
	for i := begin; i < end && x < r.W; i++ {
		for seg < len(m.segs)-1 && i >= m.segs[seg].end {
			seg++
		}
		x += r.Put(x, y, m.runes[i], m.segs[seg].style(theme))
	}
}
