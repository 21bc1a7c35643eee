package bind

import (
	"sync"

	"github.com/five82/shelf/internal/state"
)

// Option configures an External or a Slice.
type Option[T any] func(*options[T])

type options[T any] struct {
	equal func(a, b T) bool
}

// WithEqual replaces identity (state.Is) as the test for "the snapshot did
// not change". state.Shallow is a common choice for selectors that build a
// fresh map, slice or struct on every call.
func WithEqual[T any](fn func(a, b T) bool) Option[T] {
	return func(o *options[T]) {
		if fn != nil {
			o.equal = fn
		}
	}
}

// External reads a value from an external store on behalf of one consumer.
//
// It caches the last snapshot handed to the consumer. Each store notification
// re-runs getSnapshot; when the result differs from the cache the consumer is
// woken through Changed. Read re-validates against the store before returning,
// so a consumer never renders a snapshot older than the store.
type External[T any] struct {
	getSnapshot func() T
	equal       func(a, b T) bool
	unsubscribe func()

	mu     sync.Mutex
	value  T
	dirty  bool
	closed bool

	changed   chan struct{}
	done      chan struct{}
	closeOnce sync.Once
}

// NewExternal reads the first snapshot and subscribes. A panic in
// getSnapshot during this first read reaches the caller.
func NewExternal[T any](subscribe func(state.Listener) func(), getSnapshot func() T, opts ...Option[T]) *External[T] {
	o := options[T]{equal: identity[T]}
	for _, opt := range opts {
		opt(&o)
	}

	e := &External[T]{
		getSnapshot: getSnapshot,
		equal:       o.equal,
		value:       getSnapshot(),
		changed:     make(chan struct{}, 1),
		done:        make(chan struct{}),
	}
	e.unsubscribe = subscribe(e.handleChange)

	// The store may have moved between the first read and the subscription.
	e.handleChange()
	return e
}

// Read returns the current snapshot. The cached value is kept when the fresh
// one is equal to it, so identical snapshots stay identical across reads.
func (e *External[T]) Read() T {
	return e.accept(e.getSnapshot())
}

// Changed receives a value after a notification produced a snapshot that
// differs from the last one read. Multiple changes between reads coalesce.
func (e *External[T]) Changed() <-chan struct{} {
	return e.changed
}

// Dirty reports whether a change was observed since the last Read.
func (e *External[T]) Dirty() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.dirty
}

// Close unsubscribes from the store. It is safe to call more than once.
func (e *External[T]) Close() {
	e.closeOnce.Do(func() {
		e.unsubscribe()
		e.mu.Lock()
		e.closed = true
		e.mu.Unlock()
		close(e.done)
	})
}

func (e *External[T]) accept(next T) T {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.dirty = false
	if !e.equal(e.value, next) {
		e.value = next
	}
	return e.value
}

func (e *External[T]) handleChange() {
	if e.check() {
		select {
		case e.changed <- struct{}{}:
		default:
		}
	}
}

// check compares a fresh snapshot with the cache. A panicking snapshot counts
// as a change: the consumer re-reads and the panic surfaces in Read.
func (e *External[T]) check() (changed bool) {
	defer func() {
		if r := recover(); r != nil {
			changed = e.markDirty()
		}
	}()

	next := e.getSnapshot()

	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed || e.equal(e.value, next) {
		return false
	}
	e.dirty = true
	return true
}

func (e *External[T]) markDirty() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return false
	}
	e.dirty = true
	return true
}

func identity[T any](a, b T) bool {
	return state.Is(a, b)
}
