package state

// Option configures a Store.
type Option func(*config)

type config struct {
	replace bool
	equal   any
}

// WithReplace makes SetState store candidates verbatim instead of merging
// them into the current state. Partial updates then start from a zero record,
// so fields they do not write are dropped.
func WithReplace() Option {
	return func(c *config) {
		c.replace = true
	}
}

// WithEqual replaces pointer identity as the "unchanged" test for the store's
// state. The comparator must be for the store's own state type; New panics
// otherwise.
func WithEqual[S any](fn func(a, b *S) bool) Option {
	return func(c *config) {
		if fn != nil {
			c.equal = fn
		}
	}
}
