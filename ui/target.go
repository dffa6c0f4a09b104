package ui

// TargetKind selects how a Target resolves to tabs
type TargetKind uint8

const (
	TargetServer TargetKind = iota
	TargetChan
	TargetUser
	TargetAllServTabs
	TargetCurrentTab
)

// Target addresses the tab or tabs a message or nick update applies to
type Target struct {
	Kind TargetKind
	Serv string
	Name string // Channel for TargetChan, nick for TargetUser
}

// ServerTarget addresses the server tab of serv
func ServerTarget(serv string) Target {
	return Target{Kind: TargetServer, Serv: serv}
}

// ChanTarget addresses channel ch on serv
func ChanTarget(serv, ch string) Target {
	return Target{Kind: TargetChan, Serv: serv, Name: ch}
}

// UserTarget addresses the private conversation with nick on serv
func UserTarget(serv, nick string) Target {
	return Target{Kind: TargetUser, Serv: serv, Name: nick}
}

// AllServTabs addresses the server tab and every channel and user tab of serv
func AllServTabs(serv string) Target {
	return Target{Kind: TargetAllServTabs, Serv: serv}
}

// CurrentTab addresses whatever tab is active when the call is made
func CurrentTab() Target {
	return Target{Kind: TargetCurrentTab}
}

func (t Target) String() string {
	switch t.Kind {
	case TargetServer:
		return "server:" + t.Serv
	case TargetChan:
		return "chan:" + t.Serv + "/" + t.Name
	case TargetUser:
		return "user:" + t.Serv + "/" + t.Name
	case TargetAllServTabs:
		return "all:" + t.Serv
	case TargetCurrentTab:
		return "current"
	}
	return "unknown"
}

// resolve returns the tabs t addresses, empty when none exist
func (s *TabStrip) resolve(t Target) []*Tab {
	switch t.Kind {
	case TargetServer:
		if i := s.find(TabServer, t.Serv, ""); i >= 0 {
			return []*Tab{s.tabs[i]}
		}
	case TargetChan:
		if i := s.find(TabChan, t.Serv, t.Name); i >= 0 {
			return []*Tab{s.tabs[i]}
		}
	case TargetUser:
		if i := s.find(TabUser, t.Serv, t.Name); i >= 0 {
			return []*Tab{s.tabs[i]}
		}
	case TargetAllServTabs:
		var out []*Tab
		for _, tab := range s.tabs {
			if tab.Kind != TabMentions && tab.Serv == t.Serv {
				out = append(out, tab)
			}
		}
		return out
	case TargetCurrentTab:
		if tab := s.Active(); tab != nil {
			return []*Tab{tab}
		}
	}
	return nil
}
