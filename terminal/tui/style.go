package tui

import (
	"github.com/lixenwraith/chatterm/terminal"
)

// Style bundles foreground, background, and attributes for text rendering
type Style struct {
	Fg   terminal.RGB
	Bg   terminal.RGB
	Attr terminal.Attr
}

// Plain is the terminal's default colors with no attributes
var Plain = Style{Attr: terminal.AttrDefault}

// FgStyle returns style with explicit foreground over the default background
func FgStyle(fg terminal.RGB) Style {
	return Style{Fg: fg, Attr: terminal.AttrDefaultBg}
}

// With returns a copy of s with extra attributes set
func (s Style) With(attr terminal.Attr) Style {
	s.Attr |= attr
	return s
}
