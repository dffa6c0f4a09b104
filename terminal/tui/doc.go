// FILE: terminal/tui/doc.go
// Package tui provides immediate-mode drawing primitives over a terminal.Grid.
//
// Core abstraction is Region, representing a rectangular area within a cell buffer.
// All drawing operations are relative to region bounds with automatic clipping.
//
// Design principles:
//   - Immediate mode: widgets hold no geometry, the caller lays out every frame
//   - Display width aware: double-width runes occupy two cells
//   - Composable: regions nest via Sub() and Row()
//
// Usage pattern:
//
//	grid := terminal.NewGrid(w, h)
//	root := tui.GridRegion(grid)
//	root.Clear()
//
//	input := root.Row(h - 1)
//	field.Layout(input.W, tui.StringWidth(prompt))
//	cx, cy := input.TextField(field, tui.TextFieldOpts{Prefix: prompt})
//
//	changes := grid.Present()
package tui
