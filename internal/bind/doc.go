// Package bind connects state stores to independently rendered consumers.
//
// A consumer picks a slice of the state with a selector:
//
//	store := bind.Create(board.New)
//	count := bind.Use(store, func(b *board.Board) int { return b.Count })
//	defer count.Close()
//
//	n := count.Read()
//
// Every store notification re-runs the selector. The consumer is woken
// (Changed, or a ChangedMsg via Watch in a Bubble Tea program) only when the
// new slice is not identical to the last one it read, so a change to an
// unrelated field costs one selector call and no redraw.
//
// # Tear-free reads
//
// External is the read primitive underneath Slice. It keeps the last snapshot
// per consumer and re-validates it against the store on every Read. Render
// adds the frame-level guarantee: it pins one state for the whole frame and
// redraws when the store moved before the frame was returned, so two panes of
// one frame never show different versions of the state.
package bind
