package state

import (
	"errors"
	"fmt"
	"maps"
	"math"
	"reflect"
	"slices"
	"strings"
)

var (
	// ErrNilState is returned when a whole-record update carries a nil state.
	ErrNilState = errors.New("state: nil state")
	// ErrNotStruct is returned when Fields targets a non-struct state type.
	ErrNotStruct = errors.New("state: fields update requires a struct state")
	// ErrUnknownField is returned when Fields names a field the state lacks.
	ErrUnknownField = errors.New("state: unknown field")
	// ErrFieldType is returned when a Fields value cannot be stored in its field.
	ErrFieldType = errors.New("state: incompatible field value")
)

// Update describes a change to a store's state. The concrete forms are Patch,
// Fields, Value, Func and Try.
type Update[S any] interface {
	resolve(cur *S) (candidate[S], error)
}

// candidate is a resolved update: either a whole record or a set of field
// writes, or keep when the update asked for no change.
type candidate[S any] struct {
	keep  bool
	whole *S
	patch func(draft *S)
}

func (c candidate[S]) build(cur *S, replace bool) *S {
	var next S
	switch {
	case c.whole != nil:
		if replace {
			return c.whole
		}
		next = *c.whole
	case !replace:
		next = *cur
	}
	if c.patch != nil {
		c.patch(&next)
	}
	return &next
}

// Patch is a partial record. It writes the fields it changes onto a draft
// that starts as a shallow copy of the current state; fields it leaves alone
// keep their current values.
type Patch[S any] func(draft *S)

func (p Patch[S]) resolve(*S) (candidate[S], error) {
	if p == nil {
		return candidate[S]{keep: true}, nil
	}
	return candidate[S]{patch: p}, nil
}

// Value proposes next as the whole new record. Proposing the current state
// pointer is a no-op.
func Value[S any](next *S) Update[S] {
	return value[S]{next: next}
}

type value[S any] struct {
	next *S
}

func (v value[S]) resolve(*S) (candidate[S], error) {
	if v.next == nil {
		return candidate[S]{}, ErrNilState
	}
	return candidate[S]{whole: v.next}, nil
}

// Func computes an update from the current state. Returning nil leaves the
// state unchanged. The function runs once per SetState call and must not call
// SetState itself.
type Func[S any] func(cur *S) Update[S]

func (f Func[S]) resolve(cur *S) (candidate[S], error) {
	if f == nil {
		return candidate[S]{keep: true}, nil
	}
	u := f(cur)
	if u == nil {
		return candidate[S]{keep: true}, nil
	}
	return u.resolve(cur)
}

// Try is a Func that may fail. A returned error is passed back to the caller
// of SetState unchanged.
type Try[S any] func(cur *S) (Update[S], error)

func (f Try[S]) resolve(cur *S) (candidate[S], error) {
	if f == nil {
		return candidate[S]{keep: true}, nil
	}
	u, err := f(cur)
	if err != nil {
		return candidate[S]{}, err
	}
	if u == nil {
		return candidate[S]{keep: true}, nil
	}
	return u.resolve(cur)
}

// Fields is a partial record addressed by field name, for callers that only
// know the shape at runtime (config files, scripts). Keys match a `state`
// struct tag first, then the Go field name, then the field name ignoring case.
// Numeric values are converted when the conversion is lossless.
type Fields[S any] map[string]any

func (f Fields[S]) resolve(*S) (candidate[S], error) {
	if len(f) == 0 {
		return candidate[S]{keep: true}, nil
	}
	patch, err := f.compile()
	if err != nil {
		return candidate[S]{}, err
	}
	return candidate[S]{patch: patch}, nil
}

// Apply writes the fields directly onto dst, for initializers that build the
// first state before the store exists. Nothing is written when an error is
// returned.
func (f Fields[S]) Apply(dst *S) error {
	if len(f) == 0 {
		return nil
	}
	if dst == nil {
		return ErrNilState
	}
	patch, err := f.compile()
	if err != nil {
		return err
	}
	patch(dst)
	return nil
}

// compile validates every entry up front so a bad entry never leaves a
// half-written record behind.
func (f Fields[S]) compile() (func(*S), error) {
	t := reflect.TypeFor[S]()
	if t.Kind() != reflect.Struct {
		return nil, fmt.Errorf("%w: %s", ErrNotStruct, t)
	}

	type write struct {
		index int
		val   reflect.Value
	}
	writes := make([]write, 0, len(f))
	for _, name := range slices.Sorted(maps.Keys(f)) {
		idx, ok := fieldIndex(t, name)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownField, name)
		}
		val, err := fieldValue(t.Field(idx).Type, f[name])
		if err != nil {
			return nil, fmt.Errorf("field %q: %w", name, err)
		}
		writes = append(writes, write{index: idx, val: val})
	}

	return func(dst *S) {
		rv := reflect.ValueOf(dst).Elem()
		for _, w := range writes {
			rv.Field(w.index).Set(w.val)
		}
	}, nil
}

func fieldIndex(t reflect.Type, name string) (int, bool) {
	fallback := -1
	for i := range t.NumField() {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}
		if tag, _, _ := strings.Cut(field.Tag.Get("state"), ","); tag != "" {
			if tag == name {
				return i, true
			}
			continue
		}
		if field.Name == name {
			return i, true
		}
		if fallback < 0 && strings.EqualFold(field.Name, name) {
			fallback = i
		}
	}
	return fallback, fallback >= 0
}

func fieldValue(ft reflect.Type, v any) (reflect.Value, error) {
	if v == nil {
		return reflect.Zero(ft), nil
	}

	rv := reflect.ValueOf(v)
	if rv.Type().AssignableTo(ft) {
		return rv, nil
	}

	switch {
	case isInt(rv.Kind()) && isInt(ft.Kind()):
		n := rv.Int()
		if ft.OverflowInt(n) {
			return reflect.Value{}, fmt.Errorf("%w: %d overflows %s", ErrFieldType, n, ft)
		}
		return rv.Convert(ft), nil
	case isInt(rv.Kind()) && isUint(ft.Kind()):
		n := rv.Int()
		if n < 0 || ft.OverflowUint(uint64(n)) {
			return reflect.Value{}, fmt.Errorf("%w: %d overflows %s", ErrFieldType, n, ft)
		}
		return rv.Convert(ft), nil
	case isInt(rv.Kind()) && isFloat(ft.Kind()):
		n := rv.Int()
		f := rv.Convert(ft).Float()
		if f >= math.MaxInt64 || int64(f) != n {
			return reflect.Value{}, fmt.Errorf("%w: %d is not exact in %s", ErrFieldType, n, ft)
		}
		return rv.Convert(ft), nil
	case isFloat(rv.Kind()) && isFloat(ft.Kind()):
		f := rv.Float()
		if got := rv.Convert(ft).Float(); got != f && !(math.IsNaN(f) && math.IsNaN(got)) {
			return reflect.Value{}, fmt.Errorf("%w: %v is not exact in %s", ErrFieldType, f, ft)
		}
		return rv.Convert(ft), nil
	case rv.Kind() == reflect.String && ft.Kind() == reflect.String,
		rv.Kind() == reflect.Bool && ft.Kind() == reflect.Bool:
		return rv.Convert(ft), nil
	}
	return reflect.Value{}, fmt.Errorf("%w: %s into %s", ErrFieldType, rv.Type(), ft)
}

func isInt(k reflect.Kind) bool {
	return k >= reflect.Int && k <= reflect.Int64
}

func isUint(k reflect.Kind) bool {
	return k >= reflect.Uint && k <= reflect.Uintptr
}

func isFloat(k reflect.Kind) bool {
	return k == reflect.Float32 || k == reflect.Float64
}
