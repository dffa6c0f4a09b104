// Package ui is the rendering and input-editing engine of the chat client.
//
// A UI owns the tab strip, every tab's message area, the shared input line
// and a double-buffered grid. Hosts mutate it through the exported methods,
// feed it input events one at a time and call Draw to obtain the changed
// cells. Nothing in the package performs I/O, blocks or spawns goroutines;
// a UI is not safe for concurrent use.
//
// Geometry is never stored between frames: Draw lays out the screen from the
// current size and content every time, which also refreshes the wrap caches
// invalidated by mutations since the previous frame.
package ui
