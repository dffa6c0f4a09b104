package ui

import "strings"

// TabKind is the closed set of tab variants
type TabKind uint8

const (
	TabMentions TabKind = iota
	TabServer
	TabChan
	TabUser
)

func (k TabKind) String() string {
	switch k {
	case TabMentions:
		return "mentions"
	case TabServer:
		return "server"
	case TabChan:
		return "chan"
	case TabUser:
		return "user"
	}
	return "unknown"
}

// TabStatus is the unread state shown on an inactive tab
type TabStatus uint8

const (
	StatusNormal TabStatus = iota
	StatusNewMsg
	StatusHighlight
)

// MentionsLabel is the title of the permanent first tab
const MentionsLabel = "mentions"

// Tab is one addressable view in the tab strip
type Tab struct {
	Kind   TabKind
	Serv   string
	Name   string // Channel for TabChan, nick for TabUser
	Status TabStatus

	nick  string    // Own nick, TabServer only
	topic string    // TabChan only
	nicks *NickList // TabChan only
	area  *MessageArea
}

func newTab(kind TabKind, serv, name string, area *MessageArea) *Tab {
	t := &Tab{Kind: kind, Serv: serv, Name: name, area: area}
	if kind == TabChan {
		t.nicks = NewNickList()
	}
	return t
}

// Label returns the title drawn in the tab strip
func (t *Tab) Label() string {
	switch t.Kind {
	case TabMentions:
		return MentionsLabel
	case TabServer:
		return t.Serv
	case TabChan, TabUser:
		return t.Name
	}
	return ""
}

// Messages returns the tab's message area
func (t *Tab) Messages() *MessageArea {
	return t.area
}

// Nicks returns the channel nick list, nil for other kinds
func (t *Tab) Nicks() *NickList {
	return t.nicks
}

// Topic returns the channel topic
func (t *Tab) Topic() string {
	return t.topic
}

// markUnread raises the status of an inactive tab, never lowering it
func (t *Tab) markUnread(st TabStatus) {
	if st > t.Status {
		t.Status = st
	}
}

// is reports whether the tab has kind and identity (serv, name)
// Channel and nick names compare case-insensitively
func (t *Tab) is(kind TabKind, serv, name string) bool {
	if t.Kind != kind || t.Serv != serv {
		return false
	}
	if kind == TabChan || kind == TabUser {
		return strings.EqualFold(t.Name, name)
	}
	return true
}
