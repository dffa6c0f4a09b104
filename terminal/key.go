package terminal

// Key represents a parsed input key
type Key uint16

// Key constants - designed for expansion
const (
	KeyNone Key = iota
	KeyRune     // Printable character (check Event.Rune)

	// Control keys
	KeyEscape
	KeyEnter
	KeyTab
	KeyBacktab // Shift+Tab
	KeyBackspace
	KeyDelete

	// Navigation
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown

	// Ctrl+letter
	KeyCtrlA
	KeyCtrlB
	KeyCtrlC
	KeyCtrlD
	KeyCtrlE
	KeyCtrlF
	KeyCtrlG
	KeyCtrlK
	KeyCtrlL
	KeyCtrlN
	KeyCtrlO
	KeyCtrlP
	KeyCtrlQ
	KeyCtrlR
	KeyCtrlS
	KeyCtrlT
	KeyCtrlU
	KeyCtrlV
	KeyCtrlW
	KeyCtrlX
	KeyCtrlY
	KeyCtrlZ
)

// Modifier flags
type Modifier uint8

const (
	ModNone  Modifier = 0
	ModShift Modifier = 1 << 0
	ModAlt   Modifier = 1 << 1
	ModCtrl  Modifier = 1 << 2
)

// keyToName maps Key constants to canonical names used in logs
var keyToName = map[Key]string{
	KeyNone:      "none",
	KeyRune:      "rune",
	KeyEscape:    "escape",
	KeyEnter:     "enter",
	KeyTab:       "tab",
	KeyBacktab:   "backtab",
	KeyBackspace: "backspace",
	KeyDelete:    "delete",

	KeyUp:       "up",
	KeyDown:     "down",
	KeyLeft:     "left",
	KeyRight:    "right",
	KeyHome:     "home",
	KeyEnd:      "end",
	KeyPageUp:   "page_up",
	KeyPageDown: "page_down",

	KeyCtrlA: "ctrl_a",
	KeyCtrlB: "ctrl_b",
	KeyCtrlC: "ctrl_c",
	KeyCtrlD: "ctrl_d",
	KeyCtrlE: "ctrl_e",
	KeyCtrlF: "ctrl_f",
	KeyCtrlG: "ctrl_g",
	KeyCtrlK: "ctrl_k",
	KeyCtrlL: "ctrl_l",
	KeyCtrlN: "ctrl_n",
	KeyCtrlO: "ctrl_o",
	KeyCtrlP: "ctrl_p",
	KeyCtrlQ: "ctrl_q",
	KeyCtrlR: "ctrl_r",
	KeyCtrlS: "ctrl_s",
	KeyCtrlT: "ctrl_t",
	KeyCtrlU: "ctrl_u",
	KeyCtrlV: "ctrl_v",
	KeyCtrlW: "ctrl_w",
	KeyCtrlX: "ctrl_x",
	KeyCtrlY: "ctrl_y",
	KeyCtrlZ: "ctrl_z",
}

// String returns the canonical key name
func (k Key) String() string {
	if name, ok := keyToName[k]; ok {
		return name
	}
	return "unknown"
}
