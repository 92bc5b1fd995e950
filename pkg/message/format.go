package message

import (
	"fmt"
	"reflect"
	"sort"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/davecgh/go-spew/spew"
)

// spewConfig renders composite values deterministically: map
// keys are sorted and pointer addresses omitted so that the same
// value always produces the same text.
var spewConfig = spew.ConfigState{
	Indent:                  " ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
	SpewKeys:                true,
}

// FormatValue renders v the way it appears between brackets in a
// failure message. Strings are quoted, nil is "null", slices and
// arrays are rendered as "{a, b}", maps as "{[k, v], ...}" and
// other composite values through go-spew. A positive maxLen
// truncates the result.
func FormatValue(v any, maxLen int) string {
	return truncate(formatValue(v, 0), maxLen)
}

// maxNesting bounds collection rendering; deeper levels fall back
// to go-spew, which detects cycles.
const maxNesting = 4

func formatValue(v any, nesting int) string {
	if v == nil {
		return "null"
	}

	// Typed nils render as null before any method is called on them.
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Chan,
		reflect.Func, reflect.Interface, reflect.UnsafePointer:
		if rv.IsNil() {
			return "null"
		}
	}

	switch x := v.(type) {
	case string:
		return `"` + x + `"`
	case error:
		return x.Error()
	case fmt.Stringer:
		return x.String()
	}

	switch rv.Kind() {
	case reflect.Bool, reflect.Int, reflect.Int8, reflect.Int16,
		reflect.Int32, reflect.Int64, reflect.Uint, reflect.Uint8,
		reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Uintptr, reflect.Float32, reflect.Float64,
		reflect.Complex64, reflect.Complex128:
		return fmt.Sprintf("%v", v)
	}

	if nesting < maxNesting {
		switch rv.Kind() {
		case reflect.Slice, reflect.Array:
			items := make([]string, rv.Len())
			for i := range items {
				items[i] = formatValue(rv.Index(i).Interface(), nesting+1)
			}
			return "{" + strings.Join(items, ", ") + "}"
		case reflect.Map:
			return formatMap(rv, nesting)
		}
	}

	return spewConfig.Sprintf("%+v", v)
}

func formatMap(rv reflect.Value, nesting int) string {
	type entry struct{ key, value string }

	entries := make([]entry, 0, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		entries = append(entries, entry{
			key:   formatValue(iter.Key().Interface(), nesting+1),
			value: formatValue(iter.Value().Interface(), nesting+1),
		})
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].key < entries[j].key
	})

	parts := make([]string, len(entries))
	for i, e := range entries {
		parts[i] = "[" + e.key + ", " + e.value + "]"
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

// TypeName returns the Go type of v, or "nil".
func TypeName(v any) string {
	if v == nil {
		return "nil"
	}
	return reflect.TypeOf(v).String()
}

// Count returns the number of items of a collection value and
// whether v is a collection at all.
func Count(v any) (int, bool) {
	if v == nil {
		return 0, false
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array, reflect.Map, reflect.Chan:
		return rv.Len(), true
	}
	return 0, false
}

// truncate cuts s after maxLen characters, never inside a rune.
func truncate(s string, maxLen int) string {
	if maxLen <= 0 || utf8.RuneCountInString(s) <= maxLen {
		return s
	}
	runes := []rune(s)
	return string(runes[:maxLen]) + "... (truncated " +
		strconv.Itoa(len(runes)-maxLen) + " chars)"
}
