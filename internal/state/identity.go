package state

import (
	"math"
	"reflect"
	"unsafe"
)

// Is reports whether a and b are the same value by identity. Pointers, maps,
// channels, functions and slices are identical only when they refer to the
// same underlying object; strings, numbers and booleans compare by value
// (floats bitwise, so NaN is identical to itself and -0 differs from +0).
// Structs, arrays and interfaces are identical when every part is.
func Is(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return identical(reflect.ValueOf(a), reflect.ValueOf(b))
}

// Shallow is Is extended one level: two different maps, slices, arrays or
// struct pointers are equal when their direct elements are identical.
func Shallow[T any](a, b T) bool {
	if Is(a, b) {
		return true
	}

	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	if !va.IsValid() || !vb.IsValid() || va.Type() != vb.Type() {
		return false
	}

	switch va.Kind() {
	case reflect.Pointer:
		if va.IsNil() || vb.IsNil() || va.Elem().Kind() != reflect.Struct {
			return false
		}
		return identical(va.Elem(), vb.Elem())
	case reflect.Map:
		if va.IsNil() != vb.IsNil() || va.Len() != vb.Len() {
			return false
		}
		iter := va.MapRange()
		for iter.Next() {
			other := vb.MapIndex(iter.Key())
			if !other.IsValid() || !identical(iter.Value(), other) {
				return false
			}
		}
		return true
	case reflect.Slice, reflect.Array:
		if va.Len() != vb.Len() {
			return false
		}
		for i := range va.Len() {
			if !identical(va.Index(i), vb.Index(i)) {
				return false
			}
		}
		return true
	}
	return false
}

func identical(a, b reflect.Value) bool {
	if !a.IsValid() || !b.IsValid() {
		return a.IsValid() == b.IsValid()
	}
	if a.Type() != b.Type() {
		return false
	}
	a, b = exposed(a), exposed(b)

	switch a.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Chan, reflect.UnsafePointer:
		return a.UnsafePointer() == b.UnsafePointer()
	case reflect.Func:
		if a.IsNil() || b.IsNil() {
			return a.IsNil() && b.IsNil()
		}
		pa, okA := funcIdentity(a)
		pb, okB := funcIdentity(b)
		return okA && okB && pa == pb
	case reflect.Slice:
		return a.UnsafePointer() == b.UnsafePointer() && a.Len() == b.Len() && a.Cap() == b.Cap()
	case reflect.Interface:
		if a.IsNil() || b.IsNil() {
			return a.IsNil() && b.IsNil()
		}
		return identical(a.Elem(), b.Elem())
	case reflect.Struct:
		for i := range a.NumField() {
			if !identical(a.Field(i), b.Field(i)) {
				return false
			}
		}
		return true
	case reflect.Array:
		for i := range a.Len() {
			if !identical(a.Index(i), b.Index(i)) {
				return false
			}
		}
		return true
	case reflect.String:
		return a.String() == b.String()
	case reflect.Bool:
		return a.Bool() == b.Bool()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return a.Int() == b.Int()
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return a.Uint() == b.Uint()
	case reflect.Float32, reflect.Float64:
		return math.Float64bits(a.Float()) == math.Float64bits(b.Float())
	case reflect.Complex64, reflect.Complex128:
		ca, cb := a.Complex(), b.Complex()
		return math.Float64bits(real(ca)) == math.Float64bits(real(cb)) &&
			math.Float64bits(imag(ca)) == math.Float64bits(imag(cb))
	}
	return false
}

// exposed returns a view of v whose parts can be inspected. A value read
// through an unexported field is re-read from its address, and an
// unaddressable struct or array is copied so its fields become addressable.
func exposed(v reflect.Value) reflect.Value {
	switch {
	case v.CanAddr() && !v.CanInterface():
		return reflect.NewAt(v.Type(), unsafe.Pointer(v.UnsafeAddr())).Elem()
	case !v.CanAddr() && v.CanInterface() && (v.Kind() == reflect.Struct || v.Kind() == reflect.Array):
		c := reflect.New(v.Type()).Elem()
		c.Set(v)
		return c
	}
	return v
}

// funcIdentity returns the closure pointer of a func value. reflect's
// Pointer only exposes the code pointer, which every closure created from
// the same literal shares. ok is false when v can be neither addressed nor
// converted to an interface.
func funcIdentity(v reflect.Value) (ptr unsafe.Pointer, ok bool) {
	if v.CanAddr() {
		// A func variable holds the closure pointer.
		return *(*unsafe.Pointer)(unsafe.Pointer(v.UnsafeAddr())), true
	}
	if !v.CanInterface() {
		return nil, false
	}
	i := v.Interface()
	// A func is pointer-shaped, so the interface data word is the closure.
	return (*[2]unsafe.Pointer)(unsafe.Pointer(&i))[1], true
}
