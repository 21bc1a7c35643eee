package bind

import (
	"fmt"
	"reflect"
	"sync/atomic"

	"github.com/five82/shelf/internal/state"
)

// Source is the read side of a store: *state.Store and *Bound satisfy it.
type Source[S any] interface {
	GetState() *S
	Subscribe(state.Listener) (unsubscribe func())
}

// Slice is one consumer's view of a store through a selector.
type Slice[S, U any] struct {
	*External[U]

	src      Source[S]
	selector atomic.Pointer[func(*S) U]
}

// Use subscribes a consumer to the part of src picked by selector. The
// consumer is woken only when a notification yields a slice that differs from
// the last one it read. A nil selector selects the whole state and requires U
// to be *S.
//
// The selector runs on every notification and every read, so it must be cheap
// and pure. Call Close when the consumer goes away.
func Use[S, U any](src Source[S], selector func(*S) U, opts ...Option[U]) *Slice[S, U] {
	sl := &Slice[S, U]{src: src}
	sl.setSelector(selector)
	sl.External = NewExternal(src.Subscribe, sl.current, opts...)
	return sl
}

// Select switches the slice to a new selector and returns the slice it picks
// from the current state. The cached snapshot is reconciled exactly like Read,
// so a selector that picks an identical value keeps the cache. Later
// notifications are filtered through the new selector.
func (sl *Slice[S, U]) Select(selector func(*S) U) U {
	sl.setSelector(selector)
	return sl.Read()
}

// At evaluates the slice against a state pinned by the caller, typically the
// state a whole frame renders from (see Render). The result is reconciled
// with the cache exactly like Read.
func (sl *Slice[S, U]) At(s *S) U {
	return sl.accept((*sl.selector.Load())(s))
}

func (sl *Slice[S, U]) current() U {
	return (*sl.selector.Load())(sl.src.GetState())
}

func (sl *Slice[S, U]) setSelector(selector func(*S) U) {
	if selector == nil {
		if _, ok := any((*S)(nil)).(U); !ok {
			panic(fmt.Sprintf("bind: nil selector needs slice type *%s, got %s", reflect.TypeFor[S](), reflect.TypeFor[U]()))
		}
		selector = func(s *S) U { return any(s).(U) }
	}
	sl.selector.Store(&selector)
}
