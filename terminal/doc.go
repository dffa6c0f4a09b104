// Package terminal provides the cell, color and key primitives of the chat engine.
//
// Features:
//   - Cell grid with double buffering and cell-level diffing
//   - Abstract key/resize events independent of any terminal library
//   - tcell-backed Screen that presents grid changes and translates input
//   - Display width via go-runewidth, double-width runes occupy two cells
//
// The grid never performs I/O; a host flushes the changes Present returns.
package terminal
