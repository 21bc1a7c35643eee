// Package state provides the store engine shared by shelf's UI components.
//
// # Overview
//
// A Store holds exactly one state value, a pointer to an application-defined
// struct, and a list of listeners. The state is immutable by convention:
// SetState never edits the current record, it stores a new pointer. Pointer
// identity is therefore a valid change signal, and listeners are invoked only
// when the stored pointer changes.
//
//	Writers:                       Readers:
//	┌──────────────────┐           ┌──────────────────┐
//	│ SetState(update) │           │ Subscribe(fn)    │
//	│      ↓           │           │      ↓           │
//	│ resolve + merge  │──notify──→│ fn()             │
//	│      ↓           │           │      ↓           │
//	│ store new *S     │           │ GetState()       │
//	└──────────────────┘           └──────────────────┘
//
// Listeners get no payload. They re-pull the state with GetState, so there is
// no window in which a listener sees a value older than the store's.
//
// # Updates
//
// SetState accepts an Update:
//
//   - Patch: func(draft *S) writing the fields to change. The draft starts as
//     a shallow copy of the current state, so untouched fields are kept.
//   - Fields: the same, addressed by field name at runtime.
//   - Value: a whole record. Passing the current pointer is a no-op.
//   - Func / Try: compute one of the above from the current state. Returning
//     nil leaves the state alone. The function runs at most once per call.
//
// By default every candidate is shallow-merged into a fresh record. A store
// created WithReplace stores Value candidates verbatim and applies partial
// writes to a zero record instead.
//
//	s := state.New(func(set state.SetFunc[Counter]) *Counter {
//		return &Counter{Inc: func() {
//			_ = set(state.Func[Counter](func(c *Counter) state.Update[Counter] {
//				n := c.Count + 1
//				return state.Patch[Counter](func(d *Counter) { d.Count = n })
//			}))
//		}}
//	})
//
// # Notification
//
// A pass iterates the registrations captured when it starts, in
// subscription order. Listeners added during a pass wait for the next one;
// listeners removed during a pass are skipped if their turn has not come.
// A listener may call SetState; the nested pass finishes before the outer
// pass moves on. A panicking listener aborts the pass.
//
// # Concurrency
//
// Store is safe for concurrent use. SetState calls are serialized while they
// resolve and commit, but listeners run with no lock held. Update functions
// must not call SetState.
package state
