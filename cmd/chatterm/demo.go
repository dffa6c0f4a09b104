package main

import (
	"time"

	"github.com/lixenwraith/chatterm/ui"
)

// seedDemo fills the open tabs with sample traffic, including a highlight
func (a *app) seedDemo() {
	serv, ch := a.ui.CurrentTab()
	if ch == "" {
		ch = "#chatterm"
		a.join(serv, ch, a.now())
	}
	me := a.ui.Nick(serv)
	target := ui.ChanTarget(serv, ch)

	base := a.now().Add(-3 * time.Minute)
	at := func(min int) time.Time { return base.Add(time.Duration(min) * time.Minute) }
	joined := func(min int) *time.Time { ts := at(min); return &ts }

	a.ui.SetTopic("Welcome to the demo channel", at(0), serv, ch)
	a.ui.AddNick("alice", joined(0), target)
	a.ui.AddNick("bob", joined(0), target)
	a.ui.AddPrivmsg("alice", "hi all, anyone tried the aligned layout yet?", at(1), target, false, false)
	a.ui.AddPrivmsg("bob", "waves", at(1), target, false, true)
	a.ui.AddNick("carol", joined(2), target)
	a.ui.RenameNick("bob", "bobby", at(2), ui.AllServTabs(serv))
	a.ui.RemoveNick("carol", joined(3), ui.AllServTabs(serv))
	a.ui.AddPrivmsg("alice", me+": resize the window, the scrollback re-wraps", at(3), target, true, false)

	a.ui.NewUserTab(serv, "alice")
	a.ui.AddPrivmsg("alice", "psst, check the mentions tab", at(3), ui.UserTarget(serv, "alice"), false, false)
	a.ui.AddErrMsg("this is what an error looks like", at(3), ui.ServerTarget(serv))

	a.ui.SwitchTo(serv, ch)
}
