package assertion

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"digital.vasic.fluent/pkg/check"
	"digital.vasic.fluent/pkg/checks"
	"digital.vasic.fluent/pkg/message"
)

// evaluateEqual compares the value with def.Value. Numbers are
// compared by value whatever their Go type, also inside sequences;
// a string target is compared with the text of def.Value.
func evaluateEqual(def Definition, v check.Value[any]) error {
	if actual, ok := v.Sut().(string); ok {
		checks.IsEqualTo(derive(v, actual), asString(def.Value))
		return nil
	}

	if actual, ok := toFloat64(v.Sut()); ok {
		if expected, ok := operandFloat(def.Value); ok {
			checks.IsEqualTo(derive(v, actual), expected)
			return nil
		}
	}

	if actual, ok := toSlice(v.Sut()); ok {
		if expected, ok := toSlice(def.Value); ok {
			checks.IsEqualTo(derive(v, normalize(actual)), normalize(expected))
			return nil
		}
	}

	checks.IsEqualTo(v, def.Value)
	return nil
}

// evaluateNil checks that the value is nil.
func evaluateNil(_ Definition, v check.Value[any]) error {
	checks.IsNil(v)
	return nil
}

// evaluateNotNil checks that the value is not nil.
func evaluateNotNil(_ Definition, v check.Value[any]) error {
	checks.IsNotNil(v)
	return nil
}

// evaluateLessThan checks that a number or string is strictly
// below def.Value.
func evaluateLessThan(def Definition, v check.Value[any]) error {
	if s, ok := v.Sut().(string); ok {
		checks.IsLessThan(derive(v, s), asString(def.Value))
		return nil
	}

	actual, ref, err := numbers(def, v)
	if err != nil {
		return err
	}
	checks.IsLessThan(actual, ref)
	return nil
}

// evaluateGreaterThan checks that a number or string is strictly
// above def.Value.
func evaluateGreaterThan(def Definition, v check.Value[any]) error {
	if s, ok := v.Sut().(string); ok {
		checks.IsGreaterThan(derive(v, s), asString(def.Value))
		return nil
	}

	actual, ref, err := numbers(def, v)
	if err != nil {
		return err
	}
	checks.IsGreaterThan(actual, ref)
	return nil
}

// evaluateCloseTo checks that a number lies within
// def.Value ± def.Tolerance.
func evaluateCloseTo(def Definition, v check.Value[any]) error {
	actual, ref, err := numbers(def, v)
	if err != nil {
		return err
	}
	tolerance, ok := operandFloat(def.Tolerance)
	if !ok {
		return fmt.Errorf("tolerance is not a number: %v", def.Tolerance)
	}
	checks.IsCloseTo(actual, ref, tolerance)
	return nil
}

// evaluateContains checks that a string holds every expected
// substring, or that a sequence holds every expected element.
func evaluateContains(def Definition, v check.Value[any]) error {
	if s, ok := v.Sut().(string); ok {
		parts := operands(def)
		texts := make([]string, len(parts))
		for i, p := range parts {
			texts[i] = asString(p)
		}
		checks.Contains(derive(v, s), texts...)
		return nil
	}

	items, ok := toSlice(v.Sut())
	if !ok {
		return notA(v, "string or a sequence")
	}
	checks.ContainsElements(derive(v, items), operands(def)...)
	return nil
}

// evaluateStartsWith checks the beginning of a string.
func evaluateStartsWith(def Definition, v check.Value[any]) error {
	s, ok := v.Sut().(string)
	if !ok {
		return notA(v, "string")
	}
	checks.StartsWith(derive(v, s), asString(def.Value))
	return nil
}

// evaluateEndsWith checks the end of a string.
func evaluateEndsWith(def Definition, v check.Value[any]) error {
	s, ok := v.Sut().(string)
	if !ok {
		return notA(v, "string")
	}
	checks.EndsWith(derive(v, s), asString(def.Value))
	return nil
}

// evaluateMatches checks a string against a regular expression.
func evaluateMatches(def Definition, v check.Value[any]) error {
	s, ok := v.Sut().(string)
	if !ok {
		return notA(v, "string")
	}
	checks.Matches(derive(v, s), asString(def.Value))
	return nil
}

// evaluateOneOf checks that the value is one of def.Values.
// Numbers are compared by value whatever their Go type.
func evaluateOneOf(def Definition, v check.Value[any]) error {
	candidates := operands(def)

	if actual, ok := toFloat64(v.Sut()); ok {
		floats := make([]float64, 0, len(candidates))
		for _, c := range candidates {
			f, ok := operandFloat(c)
			if !ok {
				break
			}
			floats = append(floats, f)
		}
		if len(floats) == len(candidates) {
			checks.IsOneOf(derive(v, actual), floats...)
			return nil
		}
	}

	checks.IsOneOf(v, candidates...)
	return nil
}

// evaluateType checks the Go type name of the value, e.g. "int"
// or "[]interface {}".
func evaluateType(def Definition, v check.Value[any]) error {
	name := asString(def.Value)
	if name == "" {
		return fmt.Errorf("type name is required")
	}

	check.For(v).CheckName("type").
		Analyze(func(sut any, t *check.Test) {
			actual := message.TypeName(sut)
			if actual != name {
				t.FailWith("The {checked} is not of the {expected}.", func(b *message.Builder) {
					b.Append("Its type is [" + actual + "].")
				})
			}
		}).
		OnNegate("The {checked} is of the {expected} whereas it must not.").
		DefineExpectedValue(name, "", "different from").
		ExpectedLabel("expected type").
		EndCheck()
	return nil
}

// evaluateSize checks the number of items of a collection or the
// length of a string.
func evaluateSize(def Definition, v check.Value[any]) error {
	n, ok := operandFloat(def.Value)
	if !ok || n != float64(int(n)) {
		return fmt.Errorf("size is not an integer: %v", def.Value)
	}
	checks.HasSize(v, int(n))
	return nil
}

// evaluateEmpty checks that a collection or string is empty.
func evaluateEmpty(_ Definition, v check.Value[any]) error {
	checks.IsEmpty(v)
	return nil
}

// evaluateAscending checks that a sequence of numbers or strings
// is sorted in ascending order.
func evaluateAscending(_ Definition, v check.Value[any]) error {
	items, ok := toSlice(v.Sut())
	if !ok {
		return notA(v, "sequence")
	}

	if floats, ok := allFloats(items); ok {
		checks.IsInAscendingOrder(derive(v, floats))
		return nil
	}
	if texts, ok := allStrings(items); ok {
		checks.IsInAscendingOrder(derive(v, texts))
		return nil
	}
	return fmt.Errorf("%s mixes numbers and strings", v.Name())
}

// derive wraps a converted form of v's subject, keeping name,
// negation, reason and reporter.
func derive[U any](v check.Value[any], converted U) check.Value[U] {
	return check.GetSutProperty(check.For(v),
		func(any) U { return converted }, v.Name())
}

func numbers(def Definition, v check.Value[any]) (check.Value[float64], float64, error) {
	actual, ok := toFloat64(v.Sut())
	if !ok {
		return check.Value[float64]{}, 0, notA(v, "number")
	}
	ref, ok := operandFloat(def.Value)
	if !ok {
		return check.Value[float64]{}, 0, fmt.Errorf("expected value is not a number: %v", def.Value)
	}
	return derive(v, actual), ref, nil
}

func notA(v check.Value[any], what string) error {
	return fmt.Errorf("%s is not a %s: %s",
		v.Name(), what, message.FormatValue(v.Sut(), 80))
}

// operands returns def.Values, or def.Value as a single operand.
func operands(def Definition) []any {
	if len(def.Values) > 0 {
		return def.Values
	}
	if def.Value == nil {
		return nil
	}
	return []any{def.Value}
}

// toFloat64 converts a numeric value of any Go type.
func toFloat64(v any) (float64, bool) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32,
		reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32,
		reflect.Uint64, reflect.Uintptr:
		return float64(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	}
	return 0, false
}

// operandFloat converts an expected operand, which may also be
// the text of a number as produced by ParseAssertionString.
func operandFloat(v any) (float64, bool) {
	if s, ok := v.(string); ok {
		f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		return f, err == nil
	}
	return toFloat64(v)
}

func asString(v any) string {
	switch s := v.(type) {
	case nil:
		return ""
	case string:
		return s
	}
	return fmt.Sprint(v)
}

func toSlice(v any) ([]any, bool) {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, false
	}
	items := make([]any, rv.Len())
	for i := range items {
		items[i] = rv.Index(i).Interface()
	}
	return items, true
}

// normalize turns numbers into float64 so that sequences decoded
// from YAML compare equal to typed Go slices.
func normalize(items []any) []any {
	out := make([]any, len(items))
	for i, item := range items {
		if f, ok := toFloat64(item); ok {
			out[i] = f
			continue
		}
		out[i] = item
	}
	return out
}

func allFloats(items []any) ([]float64, bool) {
	out := make([]float64, len(items))
	for i, item := range items {
		f, ok := toFloat64(item)
		if !ok {
			return nil, false
		}
		out[i] = f
	}
	return out, true
}

func allStrings(items []any) ([]string, bool) {
	out := make([]string, len(items))
	for i, item := range items {
		s, ok := item.(string)
		if !ok {
			return nil, false
		}
		out[i] = s
	}
	return out, true
}
