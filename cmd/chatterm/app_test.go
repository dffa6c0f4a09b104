package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/lixenwraith/chatterm/config"
	"github.com/lixenwraith/chatterm/terminal"
	"github.com/lixenwraith/chatterm/ui"
)

var fixedNow = time.Date(2024, 3, 1, 12, 30, 0, 0, time.Local)

func newTestApp(t *testing.T, cfg *config.Config) *app {
	t.Helper()
	if cfg == nil {
		cfg = config.Default()
	}
	a, err := newApp(cfg, zap.NewNop(), 60, 12)
	require.NoError(t, err)
	a.now = func() time.Time { return fixedNow }
	a.openServers()
	t.Cleanup(a.close)
	return a
}

func withChannel() *config.Config {
	cfg := config.Default()
	cfg.Servers = []config.Server{{Name: "srv", Nick: "osa1", Channels: []string{"#go", "#tui"}}}
	return cfg
}

func activeTab(a *app) *ui.Tab {
	return a.ui.Tabs().Active()
}

func lastLine(tab *ui.Tab) string {
	m := tab.Messages()
	return m.Text(m.Len() - 1)
}

func typeLine(a *app, line string) {
	for _, r := range line {
		a.handle(a.ui.HandleInputEvent(terminal.RuneEvent(r)))
	}
	a.handle(a.ui.HandleInputEvent(terminal.KeyEvent(terminal.KeyEnter, 0)))
}

func TestOpenServersDefault(t *testing.T) {
	a := newTestApp(t, nil)

	serv, name := a.ui.CurrentTab()
	assert.Equal(t, localServer, serv)
	assert.Equal(t, "", name)
	assert.NotEmpty(t, a.ui.Nick(localServer))
	assert.Contains(t, lastLine(activeTab(a)), "Connected to local")
}

func TestOpenServersWithChannels(t *testing.T) {
	a := newTestApp(t, withChannel())

	serv, name := a.ui.CurrentTab()
	assert.Equal(t, "srv", serv)
	assert.Equal(t, "#go", name)
	// mentions, srv, #go, #tui
	assert.Equal(t, 4, a.ui.Tabs().Len())
	assert.True(t, activeTab(a).Nicks().Has("osa1"))
}

func TestEchoInChannel(t *testing.T) {
	a := newTestApp(t, withChannel())

	typeLine(a, "hello there")
	assert.Equal(t, "osa1: hello there", lastLine(activeTab(a)))

	typeLine(a, "//slash")
	assert.Equal(t, "osa1: /slash", lastLine(activeTab(a)))

	typeLine(a, "/me waves")
	assert.Equal(t, "** osa1 waves", lastLine(activeTab(a)))
}

func TestEchoOnServerTab(t *testing.T) {
	a := newTestApp(t, nil)

	typeLine(a, "hello")
	assert.Contains(t, lastLine(activeTab(a)), "Not a channel")
}

func TestCommands(t *testing.T) {
	a := newTestApp(t, withChannel())

	typeLine(a, "/join #new")
	serv, name := a.ui.CurrentTab()
	assert.Equal(t, "srv", serv)
	assert.Equal(t, "#new", name)

	typeLine(a, "/topic fresh start")
	assert.Equal(t, "fresh start", activeTab(a).Topic())

	typeLine(a, "/nick osa2")
	assert.Equal(t, "osa2", a.ui.Nick("srv"))
	assert.True(t, activeTab(a).Nicks().Has("osa2"))
	assert.False(t, activeTab(a).Nicks().Has("osa1"))

	typeLine(a, "/msg bob hi bob")
	_, name = a.ui.CurrentTab()
	assert.Equal(t, "bob", name)
	assert.Equal(t, ui.TabUser, activeTab(a).Kind)
	assert.Equal(t, "osa2: hi bob", lastLine(activeTab(a)))

	typeLine(a, "/close")
	_, name = a.ui.CurrentTab()
	assert.NotEqual(t, "bob", name)

	typeLine(a, "/bogus")
	assert.Equal(t, "Unknown command: /bogus", lastLine(activeTab(a)))

	assert.False(t, a.quit)
	typeLine(a, "/quit")
	assert.True(t, a.quit)
}

func TestCommandUsage(t *testing.T) {
	a := newTestApp(t, withChannel())

	tests := []struct {
		line string
		want string
	}{
		{"/join", "Usage: /join #channel"},
		{"/msg", "Usage: /msg nick [text]"},
		{"/me", "Usage: /me action"},
		{"/nick two words", "Usage: /nick newnick"},
	}
	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			typeLine(a, tt.line)
			assert.Equal(t, tt.want, lastLine(activeTab(a)))
		})
	}
}

func TestCloseMentions(t *testing.T) {
	a := newTestApp(t, nil)
	a.ui.Tabs().Select(0)

	a.closeTab(a.ui.CurrentTarget())
	assert.Equal(t, ui.TabMentions, activeTab(a).Kind)
	assert.Equal(t, "The mentions tab cannot be closed", lastLine(activeTab(a)))
}

func TestCtrlCQuits(t *testing.T) {
	a := newTestApp(t, nil)
	a.handle(a.ui.HandleInputEvent(terminal.KeyEvent(terminal.KeyCtrlC, 0)))
	assert.True(t, a.quit)
}

func TestApplyConfig(t *testing.T) {
	a := newTestApp(t, withChannel())

	next := withChannel()
	next.Layout = "aligned"
	next.StatusLine = true
	next.Colors.Topic = "#00ff00"
	require.NoError(t, a.applyConfig(next))
	assert.Same(t, next, a.cfg)

	// Tabs survive a reload
	assert.Equal(t, 4, a.ui.Tabs().Len())

	bad := withChannel()
	bad.Colors.Join = "nope"
	assert.ErrorIs(t, a.applyConfig(bad), config.ErrInvalid)
	assert.Same(t, next, a.cfg)
}

func TestSeedDemo(t *testing.T) {
	a := newTestApp(t, nil)
	a.seedDemo()

	serv, name := a.ui.CurrentTab()
	assert.Equal(t, localServer, serv)
	assert.Equal(t, "#chatterm", name)

	tabs := a.ui.Tabs().Tabs()
	mentions := tabs[0]
	require.Equal(t, ui.TabMentions, mentions.Kind)
	assert.Equal(t, ui.StatusHighlight, mentions.Status)
	assert.Contains(t, lastLine(mentions), "alice: ")

	nicks := activeTab(a).Nicks()
	assert.True(t, nicks.Has("bobby"))
	assert.False(t, nicks.Has("bob"))
	assert.False(t, nicks.Has("carol"))

	// Drawing the seeded state at a tiny size must not panic
	a.ui.SetSize(12, 3)
	a.ui.Draw()
}
