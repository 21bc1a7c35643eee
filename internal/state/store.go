package state

import (
	"fmt"
	"sync"
)

// Listener is notified after the stored state changed. It carries no payload;
// interested parties re-read the state with GetState.
type Listener func()

// SetFunc is the mutation entry point handed to an Initializer.
type SetFunc[S any] func(Update[S]) error

// Initializer builds the initial state. It receives the store's SetState so
// actions kept in the state can close over it. Calling set before the
// initializer returns fails with ErrNilState; build the initial record
// directly instead.
type Initializer[S any] func(set SetFunc[S]) *S

// Store holds one state value and notifies listeners when it changes.
type Store[S any] struct {
	// writeMu serializes resolve+commit of SetState. It is never held while
	// listeners run.
	writeMu sync.Mutex

	mu        sync.RWMutex
	state     *S
	listeners registry

	replace bool
	equal   func(a, b *S) bool
}

// New creates a store whose initial state is returned by init.
func New[S any](init Initializer[S], opts ...Option) *Store[S] {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	s := &Store[S]{replace: cfg.replace}
	if cfg.equal != nil {
		eq, ok := cfg.equal.(func(a, b *S) bool)
		if !ok {
			panic("state: WithEqual comparator does not match the store's state type")
		}
		s.equal = eq
	}

	initial := init(s.SetState)
	if initial == nil {
		panic("state: initializer returned nil state")
	}

	s.mu.Lock()
	s.state = initial
	s.mu.Unlock()
	return s
}

// GetState returns the current state. Callers must not mutate it.
func (s *Store[S]) GetState() *S {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// SetState applies u to the current state. When the result differs from the
// current state it is stored and every registered listener is invoked before
// SetState returns. Errors leave the state untouched and notify no one.
func (s *Store[S]) SetState(u Update[S]) error {
	if u == nil {
		return nil
	}

	changed, err := s.commit(u)
	if err != nil || !changed {
		return err
	}

	s.notify()
	return nil
}

// Subscribe registers l and returns a function that removes it again. The
// returned function may be called any number of times.
func (s *Store[S]) Subscribe(l Listener) (unsubscribe func()) {
	if l == nil {
		return func() {}
	}

	s.mu.Lock()
	id := s.listeners.add(l)
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		s.listeners.remove(id)
		s.mu.Unlock()
	}
}

// Listeners reports the number of live registrations.
func (s *Store[S]) Listeners() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.listeners.len()
}

func (s *Store[S]) commit(u Update[S]) (bool, error) {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	cur := s.GetState()
	if cur == nil {
		return false, fmt.Errorf("%w: set called before the initializer returned", ErrNilState)
	}
	c, err := u.resolve(cur)
	if err != nil {
		return false, err
	}
	if c.keep || (c.whole != nil && s.same(c.whole, cur)) {
		return false, nil
	}

	next := c.build(cur, s.replace)
	if s.same(next, cur) {
		return false, nil
	}

	s.mu.Lock()
	s.state = next
	s.mu.Unlock()
	return true, nil
}

func (s *Store[S]) notify() {
	s.mu.RLock()
	pass := s.listeners.snapshot()
	s.mu.RUnlock()

	for _, e := range pass {
		if !e.live.Load() {
			continue
		}
		e.fn()
	}
}

func (s *Store[S]) same(a, b *S) bool {
	if s.equal != nil {
		return s.equal(a, b)
	}
	return a == b
}
