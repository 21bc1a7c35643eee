package bind

import "github.com/five82/shelf/internal/state"

// Bound is a store bundled with its selector entry points. GetState, SetState
// and Subscribe are promoted from the embedded engine for code paths that do
// not render (event handlers, background producers, effects).
type Bound[S any] struct {
	*state.Store[S]
}

// Create builds a store from init and returns it bound. It is the package's
// factory entry point; there is no global registry of stores.
func Create[S any](init state.Initializer[S], opts ...state.Option) *Bound[S] {
	return &Bound[S]{Store: state.New(init, opts...)}
}

// Use subscribes a consumer to the whole state. Select a narrower slice with
// the package-level Use.
func (b *Bound[S]) Use(opts ...Option[*S]) *Slice[S, *S] {
	return Use[S, *S](b, nil, opts...)
}
