package structural

import (
	"math"
	"reflect"
)

type kindCategory int

const (
	catOther kindCategory = iota
	catBool
	catInteger
	catFloat
	catComplex
	catString
	catStruct
	catSequence
	catMap
)

func category(k reflect.Kind) kindCategory {
	switch k {
	case reflect.Bool:
		return catBool
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32,
		reflect.Int64, reflect.Uint, reflect.Uint8, reflect.Uint16,
		reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return catInteger
	case reflect.Float32, reflect.Float64:
		return catFloat
	case reflect.Complex64, reflect.Complex128:
		return catComplex
	case reflect.String:
		return catString
	case reflect.Struct:
		return catStruct
	case reflect.Slice, reflect.Array:
		return catSequence
	case reflect.Map:
		return catMap
	}
	return catOther
}

func leafEqual(c kindCategory, a, e reflect.Value) bool {
	switch c {
	case catBool:
		return a.Bool() == e.Bool()
	case catInteger:
		return integerEqual(a, e)
	case catFloat:
		af, ef := a.Float(), e.Float()
		return af == ef || (math.IsNaN(af) && math.IsNaN(ef))
	case catComplex:
		return a.Complex() == e.Complex()
	case catString:
		return a.String() == e.String()
	}
	return false
}

func isSigned(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32,
		reflect.Int64:
		return true
	}
	return false
}

func integerEqual(a, e reflect.Value) bool {
	as, es := isSigned(a.Kind()), isSigned(e.Kind())
	switch {
	case as && es:
		return a.Int() == e.Int()
	case !as && !es:
		return a.Uint() == e.Uint()
	case as:
		return a.Int() >= 0 && uint64(a.Int()) == e.Uint()
	default:
		return e.Int() >= 0 && uint64(e.Int()) == a.Uint()
	}
}
