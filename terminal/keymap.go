package terminal

import "github.com/gdamore/tcell/v2"

// tcellKeys maps tcell keys to engine keys
// tcell aliases Ctrl-H/I/J/M/[ to Backspace/Tab/Enter/Escape, only one name each is listed
var tcellKeys = map[tcell.Key]Key{
	tcell.KeyEscape:     KeyEscape,
	tcell.KeyEnter:      KeyEnter,
	tcell.KeyTab:        KeyTab,
	tcell.KeyBacktab:    KeyBacktab,
	tcell.KeyBackspace:  KeyBackspace,
	tcell.KeyBackspace2: KeyBackspace,
	tcell.KeyDelete:     KeyDelete,

	tcell.KeyUp:    KeyUp,
	tcell.KeyDown:  KeyDown,
	tcell.KeyLeft:  KeyLeft,
	tcell.KeyRight: KeyRight,
	tcell.KeyHome:  KeyHome,
	tcell.KeyEnd:   KeyEnd,
	tcell.KeyPgUp:  KeyPageUp,
	tcell.KeyPgDn:  KeyPageDown,

	tcell.KeyCtrlA: KeyCtrlA,
	tcell.KeyCtrlB: KeyCtrlB,
	tcell.KeyCtrlC: KeyCtrlC,
	tcell.KeyCtrlD: KeyCtrlD,
	tcell.KeyCtrlE: KeyCtrlE,
	tcell.KeyCtrlF: KeyCtrlF,
	tcell.KeyCtrlG: KeyCtrlG,
	tcell.KeyCtrlK: KeyCtrlK,
	tcell.KeyCtrlL: KeyCtrlL,
	tcell.KeyCtrlN: KeyCtrlN,
	tcell.KeyCtrlO: KeyCtrlO,
	tcell.KeyCtrlP: KeyCtrlP,
	tcell.KeyCtrlQ: KeyCtrlQ,
	tcell.KeyCtrlR: KeyCtrlR,
	tcell.KeyCtrlS: KeyCtrlS,
	tcell.KeyCtrlT: KeyCtrlT,
	tcell.KeyCtrlU: KeyCtrlU,
	tcell.KeyCtrlV: KeyCtrlV,
	tcell.KeyCtrlW: KeyCtrlW,
	tcell.KeyCtrlX: KeyCtrlX,
	tcell.KeyCtrlY: KeyCtrlY,
	tcell.KeyCtrlZ: KeyCtrlZ,
}

// TranslateEvent converts a tcell event to an engine event
// Returns false for events the engine has no use for (mouse, focus, paste markers)
func TranslateEvent(ev tcell.Event) (Event, bool) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		mod := translateMod(ev.Modifiers())
		if ev.Key() == tcell.KeyRune {
			r := ev.Rune()
			if r == ' ' && mod == ModNone {
				return RuneEvent(' '), true
			}
			return Event{Type: EventKey, Key: KeyRune, Rune: r, Modifiers: mod}, true
		}
		k, ok := tcellKeys[ev.Key()]
		if !ok {
			return Event{}, false
		}
		// Ctrl is implied by the key itself
		if k >= KeyCtrlA && k <= KeyCtrlZ {
			mod &^= ModCtrl
		}
		return Event{Type: EventKey, Key: k, Modifiers: mod}, true
	case *tcell.EventResize:
		w, h := ev.Size()
		return ResizeEvent(w, h), true
	case *tcell.EventError:
		return Event{Type: EventError, Err: ev}, true
	}
	return Event{}, false
}

func translateMod(m tcell.ModMask) Modifier {
	var out Modifier
	if m&tcell.ModShift != 0 {
		out |= ModShift
	}
	if m&tcell.ModCtrl != 0 {
		out |= ModCtrl
	}
	if m&(tcell.ModAlt|tcell.ModMeta) != 0 {
		out |= ModAlt
	}
	return out
}
