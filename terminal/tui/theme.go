package tui

import "github.com/lixenwraith/chatterm/terminal"

// Theme defines semantic colors for chat components
type Theme struct {
	Timestamp  Style
	Text       Style
	Topic      Style
	Join       Style
	Part       Style
	NickChange Style
	ErrMsg     Style
	Highlight  Style
	Notice     Style
	Prompt     Style
	Input      Style
	StatusLine Style

	TabActive    Style
	TabNormal    Style
	TabNewMsg    Style
	TabHighlight Style

	NickColors []terminal.RGB
}

// DefaultTheme provides reasonable defaults
var DefaultTheme = Theme{
	Timestamp:  FgStyle(terminal.RGB{R: 130, G: 130, B: 140}),
	Text:       Plain,
	Topic:      FgStyle(terminal.RGB{R: 220, G: 180, B: 80}).With(terminal.AttrBold),
	Join:       FgStyle(terminal.RGB{R: 80, G: 200, B: 80}),
	Part:       FgStyle(terminal.RGB{R: 200, G: 80, B: 80}),
	NickChange: FgStyle(terminal.RGB{R: 80, G: 160, B: 220}),
	ErrMsg:     Style{Fg: terminal.RGB{R: 255, G: 255, B: 255}, Bg: terminal.RGB{R: 160, G: 30, B: 30}, Attr: terminal.AttrBold},
	Highlight:  FgStyle(terminal.RGB{R: 255, G: 200, B: 60}).With(terminal.AttrBold),
	Notice:     FgStyle(terminal.RGB{R: 150, G: 150, B: 180}),
	Prompt:     Plain.With(terminal.AttrBold),
	Input:      Plain,
	StatusLine: Style{Fg: terminal.RGB{R: 200, G: 200, B: 200}, Bg: terminal.RGB{R: 40, G: 60, B: 90}},

	TabActive:    Plain.With(terminal.AttrBold | terminal.AttrReverse),
	TabNormal:    Plain,
	TabNewMsg:    FgStyle(terminal.RGB{R: 80, G: 160, B: 220}).With(terminal.AttrBold),
	TabHighlight: FgStyle(terminal.RGB{R: 255, G: 80, B: 80}).With(terminal.AttrBold),

	NickColors: []terminal.RGB{
		{R: 230, G: 120, B: 120},
		{R: 120, G: 200, B: 120},
		{R: 220, G: 200, B: 100},
		{R: 120, G: 160, B: 230},
		{R: 200, G: 120, B: 220},
		{R: 100, G: 210, B: 210},
		{R: 240, G: 160, B: 80},
	},
}

// NickStyle picks a stable color for nick from the palette
func (t Theme) NickStyle(nick string) Style {
	if len(t.NickColors) == 0 {
		return t.Text
	}
	var h uint32 = 2166136261
	for i := 0; i < len(nick); i++ {
		h ^= uint32(nick[i])
		h *= 16777619
	}
	return FgStyle(t.NickColors[h%uint32(len(t.NickColors))]).With(terminal.AttrBold)
}
