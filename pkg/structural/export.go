package structural

import (
	"fmt"
	"reflect"
	"unsafe"
)

// exported returns a view of v that can be converted back to an
// interface even when v was reached through an unexported field.
// v must be addressable for this to succeed; otherwise v is
// returned unchanged.
func exported(v reflect.Value) reflect.Value {
	if !v.IsValid() || v.CanInterface() || !v.CanAddr() {
		return v
	}
	return reflect.NewAt(v.Type(), unsafe.Pointer(v.UnsafeAddr())).Elem()
}

// addressable copies v into fresh storage when it is not
// addressable so that its fields can be exported later.
func addressable(v reflect.Value) reflect.Value {
	if !v.IsValid() || v.CanAddr() || !v.CanInterface() {
		return v
	}
	c := reflect.New(v.Type()).Elem()
	c.Set(v)
	return c
}

// interfaceOf returns the value held by v, nil for an invalid
// value, and a printed form for values that stay inaccessible.
func interfaceOf(v reflect.Value) any {
	if !v.IsValid() {
		return nil
	}
	if v.CanInterface() {
		return v.Interface()
	}
	return fmt.Sprintf("%v", v)
}
