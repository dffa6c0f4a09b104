package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/lixenwraith/chatterm/audio"
	"github.com/lixenwraith/chatterm/config"
	"github.com/lixenwraith/chatterm/terminal"
	"github.com/lixenwraith/chatterm/terminal/tui"
	"github.com/lixenwraith/chatterm/ui"
)

// localServer is opened when the config lists no servers
const localServer = "local"

// app owns the engine; every call into it happens on the run loop goroutine
type app struct {
	ui   *ui.UI
	cfg  *config.Config
	bell *audio.Bell
	log  *zap.Logger
	now  func() time.Time
	quit bool
}

type reload struct {
	cfg *config.Config
	err error
}

func newApp(cfg *config.Config, log *zap.Logger, width, height int) (*app, error) {
	a := &app{
		cfg:  cfg,
		bell: audio.NewBell(),
		log:  log,
		now:  time.Now,
	}

	theme, err := cfg.Theme(tui.DefaultTheme)
	if err != nil {
		return nil, err
	}
	layout, _ := ui.ParseLayout(cfg.Layout)

	a.ui = ui.New(width, height,
		ui.WithLogger(log.Named("ui")),
		ui.WithTheme(theme),
		ui.WithLayout(layout),
		ui.WithScrollback(cfg.Scrollback),
		ui.WithStatusLine(cfg.StatusLine),
		ui.WithHighlightHook(a.onHighlight),
	)
	a.setBell(cfg.Bell)
	return a, nil
}

func (a *app) close() {
	a.bell.Cleanup()
}

// setBell opens the audio device the first time the bell is enabled
func (a *app) setBell(on bool) {
	a.bell.SetEnabled(on)
	if !on {
		return
	}
	if err := a.bell.Initialize(); err != nil {
		a.log.Warn("audio unavailable, bell disabled", zap.Error(err))
		a.bell.SetEnabled(false)
	}
}

func (a *app) onHighlight(serv, name string) {
	if s, n := a.ui.CurrentTab(); s == serv && n == name {
		return
	}
	if a.bell.Ring() {
		a.log.Debug("bell", zap.String("serv", serv), zap.String("name", name))
	}
}

// applyConfig swaps in a reloaded config without touching open tabs
func (a *app) applyConfig(cfg *config.Config) error {
	theme, err := cfg.Theme(tui.DefaultTheme)
	if err != nil {
		return err
	}
	layout, _ := ui.ParseLayout(cfg.Layout)

	a.ui.SetTheme(theme)
	a.ui.SetLayout(layout)
	a.ui.SetScrollback(cfg.Scrollback)
	a.ui.SetStatusLine(cfg.StatusLine)
	if cfg.Bell != a.cfg.Bell {
		a.setBell(cfg.Bell)
	}
	a.cfg = cfg
	return nil
}

// openServers creates the startup tabs
func (a *app) openServers() {
	servers := a.cfg.Servers
	if len(servers) == 0 {
		servers = []config.Server{{Name: localServer}}
	}

	now := a.now()
	for _, s := range servers {
		nick := s.Nick
		if nick == "" {
			nick = defaultNick()
		}
		a.ui.NewServerTab(s.Name)
		a.ui.SetNick(s.Name, nick)
		a.ui.AddClientMsg(fmt.Sprintf("Connected to %s as %s (loopback)", s.Name, nick), ui.ServerTarget(s.Name))
		for _, ch := range s.Channels {
			a.join(s.Name, ch, now)
		}
	}

	first := servers[0]
	if len(first.Channels) > 0 {
		a.ui.SwitchTo(first.Name, first.Channels[0])
	} else {
		a.ui.SwitchTo(first.Name, "")
	}
}

func defaultNick() string {
	if u := os.Getenv("USER"); u != "" {
		return u
	}
	return "me"
}

func (a *app) join(serv, ch string, now time.Time) {
	a.ui.NewChanTab(serv, ch)
	a.ui.AddNick(a.ui.Nick(serv), &now, ui.ChanTarget(serv, ch))
}

// handle acts on what the engine made of an input event
func (a *app) handle(res ui.InputResult) {
	switch res.Kind {
	case ui.InputAbort:
		a.quit = true
	case ui.InputSubmit:
		a.submit(res.Text, res.Target)
	}
}

func (a *app) run(ctx context.Context, scr *terminal.Screen, cfgPath string) error {
	events := make(chan terminal.Event, 64)
	go func() {
		defer close(events)
		for {
			ev, ok := scr.PollEvent()
			if !ok {
				return
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	reloads := make(chan reload, 1)
	if cfgPath != "" {
		err := config.Watch(ctx, cfgPath, func(cfg *config.Config, err error) {
			select {
			case reloads <- reload{cfg, err}:
			case <-ctx.Done():
			}
		})
		if err != nil {
			a.log.Warn("config hot reload disabled", zap.Error(err))
		}
	}

	a.draw(scr)
	for !a.quit {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-events:
			if !ok {
				return nil
			}
			a.handle(a.ui.HandleInputEvent(ev))

		case r := <-reloads:
			if r.err == nil {
				r.err = a.applyConfig(r.cfg)
			}
			if r.err != nil {
				a.log.Warn("config reload rejected", zap.Error(r.err))
				a.ui.AddErrMsg("config reload: "+r.err.Error(), a.now(), ui.CurrentTab())
			} else {
				a.log.Info("config reloaded", zap.String("path", cfgPath))
				a.ui.AddClientMsg("Configuration reloaded", ui.CurrentTab())
			}
		}
		a.draw(scr)
	}
	return nil
}

func (a *app) draw(scr *terminal.Screen) {
	changes := a.ui.Draw()
	x, y, visible := a.ui.Cursor()
	scr.SetCursor(x, y, visible)
	scr.Flush(changes)
}
