package ui

import (
	"sort"
	"strings"
	"time"
)

// nickEntry is one member of a channel
type nickEntry struct {
	Nick   string
	Joined *time.Time
}

// NickList is a channel's member set, looked up case-insensitively
type NickList struct {
	entries map[string]nickEntry
}

// NewNickList creates an empty nick list
func NewNickList() *NickList {
	return &NickList{entries: make(map[string]nickEntry)}
}

func foldNick(nick string) string {
	return strings.ToLower(nick)
}

// Add inserts nick, keeping the earlier join time if already present
func (l *NickList) Add(nick string, joined *time.Time) {
	key := foldNick(nick)
	if old, ok := l.entries[key]; ok && old.Joined != nil {
		joined = old.Joined
	}
	l.entries[key] = nickEntry{Nick: nick, Joined: joined}
}

// Remove deletes nick and reports whether it was present
func (l *NickList) Remove(nick string) bool {
	key := foldNick(nick)
	if _, ok := l.entries[key]; !ok {
		return false
	}
	delete(l.entries, key)
	return true
}

// Rename replaces oldNick with newNick and reports whether oldNick was present
func (l *NickList) Rename(oldNick, newNick string) bool {
	e, ok := l.entries[foldNick(oldNick)]
	if !ok {
		return false
	}
	delete(l.entries, foldNick(oldNick))
	e.Nick = newNick
	l.entries[foldNick(newNick)] = e
	return true
}

// Has reports whether nick is a member
func (l *NickList) Has(nick string) bool {
	_, ok := l.entries[foldNick(nick)]
	return ok
}

// Len returns the member count
func (l *NickList) Len() int {
	return len(l.entries)
}

// Names returns members sorted case-insensitively
func (l *NickList) Names() []string {
	names := make([]string, 0, len(l.entries))
	for _, e := range l.entries {
		names = append(names, e.Nick)
	}
	sort.Slice(names, func(i, j int) bool {
		return foldNick(names[i]) < foldNick(names[j])
	})
	return names
}
