package ui

import (
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/lixenwraith/chatterm/terminal"
	"github.com/lixenwraith/chatterm/terminal/tui"
)

// MentionsGreeting is the first line of the mentions tab
const MentionsGreeting = "Any mentions to you will be listed here."

// HighlightFunc is called after a highlighted or private message is added
type HighlightFunc func(serv, name string)

// UI is the chat engine: tabs, their scrollback, the shared input field and
// the cell grid they are drawn into
// UI is not safe for concurrent use; the host serializes every call
type UI struct {
	grid   *terminal.Grid
	width  int
	height int

	tabs    TabStrip
	field   *tui.TextFieldState
	history history

	theme       tui.Theme
	layout      Layout
	scrollback  int
	statusLine  bool
	onHighlight HighlightFunc
	log         *zap.Logger

	cursorX, cursorY int
	cursorVisible    bool
}

// Option configures a UI at construction
type Option func(*UI)

// WithLogger routes ignored-reference diagnostics to l
func WithLogger(l *zap.Logger) Option {
	return func(u *UI) {
		if l != nil {
			u.log = l
		}
	}
}

// WithTheme sets the color theme
func WithTheme(t tui.Theme) Option {
	return func(u *UI) { u.theme = t }
}

// WithLayout sets the timestamp layout for every tab
func WithLayout(l Layout) Option {
	return func(u *UI) { u.layout = l }
}

// WithScrollback caps messages kept per tab, 0 keeps everything
func WithScrollback(n int) Option {
	return func(u *UI) { u.scrollback = max(0, n) }
}

// WithStatusLine shows topic and nicks above the field on channel tabs
func WithStatusLine(on bool) Option {
	return func(u *UI) { u.statusLine = on }
}

// WithHighlightHook registers fn for highlights and private messages
func WithHighlightHook(fn HighlightFunc) Option {
	return func(u *UI) { u.onHighlight = fn }
}

// New creates an engine of width x height holding only the mentions tab
func New(width, height int, opts ...Option) *UI {
	u := &UI{
		field: tui.NewTextFieldState(""),
		theme: tui.DefaultTheme,
		log:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(u)
	}
	u.grid = terminal.NewGrid(0, 0)
	u.SetSize(width, height)

	mentions := newTab(TabMentions, "", "", u.newArea())
	mentions.area.AddClientMsg(MentionsGreeting)
	u.tabs.add(mentions)
	return u
}

func (u *UI) newArea() *MessageArea {
	return NewMessageArea(u.layout, u.scrollback)
}

// --- Settings, applied to existing tabs ---

// SetTheme replaces the color theme
func (u *UI) SetTheme(t tui.Theme) {
	u.theme = t
	u.grid.Invalidate()
}

// SetLayout changes the timestamp layout of every tab
func (u *UI) SetLayout(l Layout) {
	u.layout = l
	for _, t := range u.tabs.tabs {
		t.area.SetLayout(l)
	}
}

// SetScrollback changes the retention cap of every tab
func (u *UI) SetScrollback(n int) {
	u.scrollback = max(0, n)
	for _, t := range u.tabs.tabs {
		t.area.SetScrollback(u.scrollback)
	}
}

// SetStatusLine toggles the channel status line
func (u *UI) SetStatusLine(on bool) {
	u.statusLine = on
}

// SetSize updates the grid dimensions, the next Draw lays out for them
func (u *UI) SetSize(width, height int) {
	u.width = max(0, width)
	u.height = max(0, height)
	u.grid.Resize(u.width, u.height)
}

// Size returns the current dimensions
func (u *UI) Size() (width, height int) {
	return u.width, u.height
}

// --- Tab lifecycle ---

// NewServerTab appends a server tab, no-op when it exists
func (u *UI) NewServerTab(serv string) {
	if u.tabs.find(TabServer, serv, "") >= 0 {
		return
	}
	u.tabs.add(newTab(TabServer, serv, "", u.newArea()))
}

// NewChanTab appends a channel tab, creating the server tab first if needed
func (u *UI) NewChanTab(serv, ch string) {
	u.NewServerTab(serv)
	if u.tabs.find(TabChan, serv, ch) >= 0 {
		return
	}
	u.tabs.add(newTab(TabChan, serv, ch, u.newArea()))
}

// NewUserTab appends a private conversation tab
func (u *UI) NewUserTab(serv, nick string) {
	u.NewServerTab(serv)
	if u.tabs.find(TabUser, serv, nick) >= 0 {
		return
	}
	u.tabs.add(newTab(TabUser, serv, nick, u.newArea()))
}

// CloseServerTab removes the server tab and every tab of that server
func (u *UI) CloseServerTab(serv string) {
	found := false
	for i := u.tabs.Len() - 1; i >= 0; i-- {
		t := u.tabs.tabs[i]
		if t.Kind != TabMentions && t.Serv == serv {
			u.tabs.remove(i)
			found = true
		}
	}
	if !found {
		u.log.Debug("close of unknown server tab", zap.String("serv", serv))
	}
}

// CloseChanTab removes one channel tab
func (u *UI) CloseChanTab(serv, ch string) {
	u.closeTab(TabChan, serv, ch)
}

// CloseUserTab removes one private conversation tab
func (u *UI) CloseUserTab(serv, nick string) {
	u.closeTab(TabUser, serv, nick)
}

func (u *UI) closeTab(kind TabKind, serv, name string) {
	i := u.tabs.find(kind, serv, name)
	if i < 0 {
		u.log.Debug("close of unknown tab",
			zap.Stringer("kind", kind), zap.String("serv", serv), zap.String("name", name))
		return
	}
	u.tabs.remove(i)
}

// --- Navigation ---

// NextTab activates the tab to the right, wrapping around
func (u *UI) NextTab() {
	u.tabs.Next()
}

// PrevTab activates the tab to the left, wrapping around
func (u *UI) PrevTab() {
	u.tabs.Prev()
}

// SwitchTo activates the channel or user tab name of serv, or the server tab
// when name is empty
func (u *UI) SwitchTo(serv, name string) {
	i := -1
	if name == "" {
		i = u.tabs.find(TabServer, serv, "")
	} else if i = u.tabs.find(TabChan, serv, name); i < 0 {
		i = u.tabs.find(TabUser, serv, name)
	}
	if i < 0 {
		u.log.Debug("switch to unknown tab", zap.String("serv", serv), zap.String("name", name))
		return
	}
	u.tabs.Select(i)
}

// CurrentTab returns the server and channel or nick of the active tab,
// both empty for the mentions tab
func (u *UI) CurrentTab() (serv, name string) {
	t := u.tabs.Active()
	if t == nil {
		return "", ""
	}
	return t.Serv, t.Name
}

// CurrentTarget returns a target naming the active tab itself
func (u *UI) CurrentTarget() Target {
	t := u.tabs.Active()
	if t == nil {
		return CurrentTab()
	}
	switch t.Kind {
	case TabServer:
		return ServerTarget(t.Serv)
	case TabChan:
		return ChanTarget(t.Serv, t.Name)
	case TabUser:
		return UserTarget(t.Serv, t.Name)
	}
	return CurrentTab()
}

// Tabs returns the tab strip
func (u *UI) Tabs() *TabStrip {
	return &u.tabs
}

// --- Nicks ---

// SetNick sets our own nick on serv, shown as the input prompt
func (u *UI) SetNick(serv, nick string) {
	i := u.tabs.find(TabServer, serv, "")
	if i < 0 {
		u.log.Debug("nick for unknown server", zap.String("serv", serv), zap.String("nick", nick))
		return
	}
	u.tabs.tabs[i].nick = nick
}

// Nick returns our own nick on serv
func (u *UI) Nick(serv string) string {
	if i := u.tabs.find(TabServer, serv, ""); i >= 0 {
		return u.tabs.tabs[i].nick
	}
	return ""
}

// AddNick records nick joining the addressed channels
// A join line is printed only when ts is set
func (u *UI) AddNick(nick string, ts *time.Time, target Target) {
	for _, t := range u.resolve(target, "add nick") {
		if t.nicks != nil {
			t.nicks.Add(nick, ts)
		}
		if ts != nil {
			t.area.AddJoin(nick, *ts)
		}
	}
}

// RemoveNick records nick leaving the addressed tabs
// Server-wide targets only print in channels that listed the nick and in its
// private conversation
func (u *UI) RemoveNick(nick string, ts *time.Time, target Target) {
	wide := target.Kind == TargetAllServTabs
	for _, t := range u.resolve(target, "remove nick") {
		switch t.Kind {
		case TabChan:
			if !t.nicks.Remove(nick) && wide {
				continue
			}
		case TabUser:
			if wide && !strings.EqualFold(t.Name, nick) {
				continue
			}
		default:
			if wide {
				continue
			}
		}
		if ts != nil {
			t.area.AddPart(nick, *ts)
		}
	}
}

// RenameNick renames nick in the addressed tabs and renames its private
// conversation; server-wide targets skip tabs the nick is not part of.
// When a conversation with newNick is already open the renamed one is
// closed and the change is printed in the surviving tab.
func (u *UI) RenameNick(oldNick, newNick string, ts time.Time, target Target) {
	wide := target.Kind == TargetAllServTabs
	var merged []tabMerge
	for _, t := range u.resolve(target, "rename nick") {
		switch t.Kind {
		case TabChan:
			if !t.nicks.Rename(oldNick, newNick) && wide {
				continue
			}
		case TabUser:
			if !strings.EqualFold(t.Name, oldNick) {
				if wide {
					continue
				}
				break
			}
			if j := u.tabs.find(TabUser, t.Serv, newNick); j >= 0 && u.tabs.tabs[j] != t {
				merged = append(merged, tabMerge{from: t, into: u.tabs.tabs[j]})
				t = u.tabs.tabs[j]
			} else {
				t.Name = newNick
			}
		default:
			if wide {
				continue
			}
		}
		t.area.AddNickChange(oldNick, newNick, ts)
	}

	for _, m := range merged {
		i := u.tabs.indexOf(m.from)
		if i < 0 {
			continue
		}
		wasActive := i == u.tabs.ActiveIndex()
		u.tabs.remove(i)
		if wasActive {
			u.tabs.Select(u.tabs.indexOf(m.into))
		}
	}
}

// tabMerge is a conversation folded into an existing one by a rename
type tabMerge struct {
	from, into *Tab
}

// --- Messages ---

func (u *UI) resolve(target Target, op string) []*Tab {
	tabs := u.tabs.resolve(target)
	if len(tabs) == 0 {
		u.log.Debug("unknown target", zap.String("op", op), zap.Stringer("target", target))
	}
	return tabs
}

// notify raises the unread status of t unless it is the active tab
func (u *UI) notify(t *Tab, st TabStatus) {
	if t != u.tabs.Active() {
		t.markUnread(st)
	}
}

// AddMsg appends a timed message to the addressed tabs
func (u *UI) AddMsg(text string, ts time.Time, target Target) {
	for _, t := range u.resolve(target, "add msg") {
		t.area.AddMsg(text, ts)
		u.notify(t, StatusNewMsg)
	}
}

// AddErrMsg appends an error line to the addressed tabs
func (u *UI) AddErrMsg(text string, ts time.Time, target Target) {
	for _, t := range u.resolve(target, "add err msg") {
		t.area.AddErrMsg(text, ts)
		u.notify(t, StatusNewMsg)
	}
}

// AddClientMsg appends an untimed notice without touching tab status
func (u *UI) AddClientMsg(text string, target Target) {
	for _, t := range u.resolve(target, "add client msg") {
		t.area.AddClientMsg(text)
	}
}

// AddPrivmsg appends a message from sender
// Highlights are mirrored to the mentions tab; highlights and private
// messages raise the highlight status and fire the highlight hook
func (u *UI) AddPrivmsg(sender, text string, ts time.Time, target Target, highlight, action bool) {
	for _, t := range u.resolve(target, "add privmsg") {
		t.area.AddPrivmsg(sender, text, ts, highlight, action)

		if !highlight && t.Kind != TabUser {
			u.notify(t, StatusNewMsg)
			continue
		}
		u.notify(t, StatusHighlight)
		if highlight && t.Kind == TabChan {
			mentions := u.tabs.tabs[0]
			mentions.area.addMention(t.Serv+" "+t.Name, sender, text, ts)
			u.notify(mentions, StatusHighlight)
		}
		if u.onHighlight != nil {
			u.onHighlight(t.Serv, t.Name)
		}
	}
}

// SetTopic stores the channel topic and prints it
func (u *UI) SetTopic(text string, ts time.Time, serv, ch string) {
	i := u.tabs.find(TabChan, serv, ch)
	if i < 0 {
		u.log.Debug("topic for unknown channel", zap.String("serv", serv), zap.String("chan", ch))
		return
	}
	t := u.tabs.tabs[i]
	t.topic = text
	t.area.AddTopic(text, ts)
}

// --- Input field ---

// InputValue returns the text being typed
func (u *UI) InputValue() string {
	return u.field.Value()
}

// SetInputValue replaces the text being typed
func (u *UI) SetInputValue(s string) {
	u.field.SetValue(s)
}

// --- Drawing ---

// prompt returns the input prefix, our nick on the active tab's server
func (u *UI) prompt(t *Tab) string {
	if t == nil || t.Kind == TabMentions {
		return ""
	}
	if nick := u.Nick(t.Serv); nick != "" {
		return nick + ": "
	}
	return ""
}

// Draw lays out and renders every region into the back buffer, then
// presents it and returns the cells that changed since the previous Draw
func (u *UI) Draw() []terminal.Change {
	u.grid.Clear()
	root := tui.GridRegion(u.grid)
	tab := u.tabs.Active()

	prefix := u.prompt(tab)
	u.field.Layout(u.width, tui.StringWidth(prefix))

	showStatus := u.statusLine && tab != nil && tab.Kind == TabChan
	l := computeLayout(u.height, u.field.Height(), showStatus)

	// Tab strip
	opts := tui.DefaultTabBarOpts()
	labels, widths := u.tabs.labels(u.theme)
	u.tabs.fixScroll(widths, u.width, tui.StringWidth(opts.Separator))
	if l.tabs.H > 0 {
		root.Row(l.tabs.Y).TabBar(0, labels, u.tabs.Leftmost(), opts)
	}

	// Text field
	u.cursorVisible = false
	if l.field.H > 0 && u.width > 0 {
		field := root.Sub(0, l.field.Y, u.width, l.field.H)
		cx, cy := field.TextField(u.field, tui.TextFieldOpts{
			Prefix:      prefix,
			PrefixStyle: u.theme.Prompt,
			TextStyle:   u.theme.Input,
		})
		u.cursorX, u.cursorY = cx, l.field.Y+cy
		u.cursorVisible = true
	}

	if l.status.H > 0 {
		u.drawStatus(root.Row(l.status.Y), tab)
	}

	if tab != nil {
		tab.area.render(root.Sub(0, l.msgs.Y, u.width, l.msgs.H), &u.theme)
	}

	return u.grid.Present()
}

// drawStatus renders the topic followed by the +nick list
// Nicks later in the list are dropped first when the row is full
func (u *UI) drawStatus(r tui.Region, t *Tab) {
	var secs []tui.BarSection
	if t.topic != "" {
		secs = append(secs, tui.BarSection{
			Value:      tui.Truncate(t.topic, r.W),
			ValueStyle: u.theme.StatusLine.With(terminal.AttrBold),
			Priority:   1,
		})
	}
	for i, nick := range t.nicks.Names() {
		secs = append(secs, tui.BarSection{
			Label:      "+",
			Value:      nick,
			LabelStyle: u.theme.StatusLine,
			ValueStyle: u.theme.StatusLine,
			Priority:   -i,
		})
	}
	r.StatusBar(0, secs, tui.BarOpts{
		Separator: " ",
		SepStyle:  u.theme.StatusLine,
		Fill:      u.theme.StatusLine,
		Align:     tui.BarAlignLeft,
	})
}

// FrontBuffer returns the last presented grid
func (u *UI) FrontBuffer() *terminal.Grid {
	return u.grid
}

// Cursor returns the input cursor position from the last Draw
// visible is false when the text field did not fit on screen
func (u *UI) Cursor() (x, y int, visible bool) {
	return u.cursorX, u.cursorY, u.cursorVisible
}
