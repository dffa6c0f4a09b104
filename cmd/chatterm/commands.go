package main

import (
	"strings"

	"github.com/lixenwraith/chatterm/ui"
)

// submit runs a slash command or echoes the line back as our own message
func (a *app) submit(line string, target ui.Target) {
	if strings.HasPrefix(line, "/") && !strings.HasPrefix(line, "//") {
		a.command(line[1:], target)
		return
	}
	line = strings.TrimPrefix(line, "/")
	a.say(line, target, false)
}

func (a *app) say(text string, target ui.Target, action bool) {
	switch target.Kind {
	case ui.TargetChan, ui.TargetUser:
		a.ui.AddPrivmsg(a.ui.Nick(target.Serv), text, a.now(), target, false, action)
	default:
		a.ui.AddClientMsg("Not a channel or private tab. Try /join #channel or /msg nick text", target)
	}
}

func (a *app) command(line string, target ui.Target) {
	name, rest, _ := strings.Cut(line, " ")
	rest = strings.TrimSpace(rest)
	serv, _ := a.ui.CurrentTab()
	now := a.now()

	needServer := func() bool {
		if serv == "" {
			a.ui.AddClientMsg("/"+name+" needs a server tab", target)
			return false
		}
		return true
	}

	switch strings.ToLower(name) {
	case "quit":
		a.quit = true

	case "join":
		if rest == "" {
			a.ui.AddClientMsg("Usage: /join #channel", target)
			return
		}
		if !needServer() {
			return
		}
		ch := strings.Fields(rest)[0]
		a.join(serv, ch, now)
		a.ui.SwitchTo(serv, ch)

	case "msg":
		nick, text, _ := strings.Cut(rest, " ")
		if nick == "" {
			a.ui.AddClientMsg("Usage: /msg nick [text]", target)
			return
		}
		if !needServer() {
			return
		}
		a.ui.NewUserTab(serv, nick)
		a.ui.SwitchTo(serv, nick)
		if text = strings.TrimSpace(text); text != "" {
			a.say(text, ui.UserTarget(serv, nick), false)
		}

	case "me":
		if rest == "" {
			a.ui.AddClientMsg("Usage: /me action", target)
			return
		}
		a.say(rest, target, true)

	case "nick":
		if rest == "" || strings.ContainsAny(rest, " :") {
			a.ui.AddClientMsg("Usage: /nick newnick", target)
			return
		}
		if !needServer() {
			return
		}
		old := a.ui.Nick(serv)
		a.ui.SetNick(serv, rest)
		a.ui.RenameNick(old, rest, now, ui.AllServTabs(serv))

	case "topic":
		if target.Kind != ui.TargetChan {
			a.ui.AddClientMsg("/topic only works in a channel tab", target)
			return
		}
		a.ui.SetTopic(rest, now, target.Serv, target.Name)

	case "close", "part":
		a.closeTab(target)

	default:
		a.ui.AddClientMsg("Unknown command: /"+name, target)
	}
}

func (a *app) closeTab(target ui.Target) {
	switch target.Kind {
	case ui.TargetChan:
		a.ui.CloseChanTab(target.Serv, target.Name)
	case ui.TargetUser:
		a.ui.CloseUserTab(target.Serv, target.Name)
	case ui.TargetServer:
		a.ui.CloseServerTab(target.Serv)
	default:
		a.ui.AddClientMsg("The mentions tab cannot be closed", target)
	}
}
