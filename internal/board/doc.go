// Package board defines the demo state shared by shelf's panes: a counter,
// a clock fed by the background ticker, and the active theme name. Actions
// live in the state itself and close over the store's SetState, so any code
// holding the state can trigger them without a reference to the store.
package board
