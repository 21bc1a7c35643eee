// Package ui implements shelf's Bubble Tea interface.
//
// # Overview
//
// The screen is a row of panes, each an independent consumer of the board
// store: Counter selects Count, Clock selects the ticker's fields, Theme
// selects the theme name. Each pane holds its own bind.Slice and a pending
// Watch command; Bubble Tea delivers a bind.ChangedMsg only for the pane
// whose slice changed, and the pane's update counter shows it. With the
// ticker running the Clock counter climbs every second while the Counter
// pane stays put until a key changes the count.
//
// # Rendering
//
// View draws the frame through bind.Render, so all panes read from one
// pinned state (Slice.At). If the ticker commits while a frame is being
// drawn, the frame is redrawn from the newer state instead of mixing
// versions.
//
// # Key Bindings
//
//	+/k/up     Increment
//	-/j/down   Decrement
//	r          Reset counter
//	T          Cycle theme (saved to prefs)
//	h/?        Toggle help
//	q/ctrl+c   Quit
//
// Key handlers call the board's actions directly from the state; they never
// go through a slice.
package ui
