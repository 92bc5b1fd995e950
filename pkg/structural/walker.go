package structural

import (
	"fmt"
	"reflect"
	"sort"
	"strconv"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

// Walk compares actual and expected and calls visit with each
// result, in order. Walking stops as soon as visit returns false.
// An inconsistent Criteria yields a *CriteriaError and no call.
func Walk(actual, expected any, c Criteria, visit func(FieldMatch) bool) error {
	if err := c.Validate(); err != nil {
		return err
	}

	w := &walker{
		criteria: c,
		visit:    visit,
		visiting: make(map[visitKey]bool),
	}
	w.walk("", root(actual), root(expected), 0)
	return nil
}

// Compare returns every result of Walk.
func Compare(actual, expected any, c Criteria) ([]FieldMatch, error) {
	var results []FieldMatch
	err := Walk(actual, expected, c, func(f FieldMatch) bool {
		results = append(results, f)
		return true
	})
	return results, err
}

// Mismatches returns the results of Walk that are not matches.
func Mismatches(actual, expected any, c Criteria) ([]FieldMatch, error) {
	var results []FieldMatch
	err := Walk(actual, expected, c, func(f FieldMatch) bool {
		if !f.Match() {
			results = append(results, f)
		}
		return true
	})
	return results, err
}

// FirstMismatch stops at the first result that is not a match.
func FirstMismatch(actual, expected any, c Criteria) (FieldMatch, bool, error) {
	var (
		found  FieldMatch
		failed bool
	)
	err := Walk(actual, expected, c, func(f FieldMatch) bool {
		if f.Match() {
			return true
		}
		found, failed = f, true
		return false
	})
	return found, failed, err
}

// visitKey identifies a pair of references being compared.
type visitKey struct {
	actual, expected         uintptr
	actualType, expectedType reflect.Type
}

type walker struct {
	criteria Criteria
	visit    func(FieldMatch) bool
	visiting map[visitKey]bool
}

// root wraps v in addressable storage so unexported fields can be
// read further down.
func root(v any) reflect.Value {
	rv := reflect.ValueOf(v)
	if !rv.IsValid() {
		return rv
	}
	return addressable(rv)
}

var opaqueOptions = []cmp.Option{
	cmp.Exporter(func(reflect.Type) bool { return true }),
	cmpopts.EquateNaNs(),
}

func (w *walker) walk(path string, a, e reflect.Value, depth int) bool {
	if w.criteria.excluded(path) || !w.criteria.traversable(path) {
		return true
	}

	a, e = unwrap(a), unwrap(e)
	if !a.IsValid() || !e.IsValid() {
		return w.result(path, a, e, isNilOrInvalid(a) && isNilOrInvalid(e))
	}

	if a.Kind() == reflect.Pointer || e.Kind() == reflect.Pointer {
		return w.walkPointers(path, a, e, depth)
	}

	ca, ce := category(a.Kind()), category(e.Kind())
	if ca != ce {
		return w.typeMismatch(path, a, e)
	}

	// Strict typing applies to leaves and element types; structs of
	// different types are still compared member by member.
	switch ca {
	case catBool, catInteger, catFloat, catComplex, catString:
		if w.criteria.StrictTypes && a.Type() != e.Type() {
			return w.typeMismatch(path, a, e)
		}
		return w.result(path, a, e, leafEqual(ca, a, e))
	case catSequence, catMap:
		if w.criteria.StrictTypes && a.Type().Elem() != e.Type().Elem() {
			return w.typeMismatch(path, a, e)
		}
	case catStruct:
	default:
		if w.criteria.StrictTypes && a.Type() != e.Type() {
			return w.typeMismatch(path, a, e)
		}
	}

	if a.Type() != e.Type() && ca == catMap {
		if a.Type().Key() != e.Type().Key() {
			return w.typeMismatch(path, a, e)
		}
	}

	if hasEqualMethod(a.Type()) || depth >= w.criteria.MaxDepth {
		return w.result(path, a, e, opaqueEqual(a, e))
	}

	switch ca {
	case catStruct:
		return w.walkStruct(path, a, e, depth)
	case catSequence:
		if w.criteria.SkipIndexers {
			return w.result(path, a, e, opaqueEqual(a, e))
		}
		return w.walkSequence(path, a, e, depth)
	case catMap:
		if w.criteria.SkipIndexers {
			return w.result(path, a, e, opaqueEqual(a, e))
		}
		return w.walkMap(path, a, e, depth)
	}

	return w.result(path, a, e, sameReference(a, e))
}

func (w *walker) walkPointers(path string, a, e reflect.Value, depth int) bool {
	if a.Kind() != reflect.Pointer {
		if e.IsNil() {
			return w.result(path, a, e, false)
		}
		return w.walk(path, a, e.Elem(), depth)
	}
	if e.Kind() != reflect.Pointer {
		if a.IsNil() {
			return w.result(path, a, e, false)
		}
		return w.walk(path, a.Elem(), e, depth)
	}

	if a.IsNil() || e.IsNil() {
		return w.result(path, a, e, a.IsNil() && e.IsNil())
	}
	if a.Type() == e.Type() && a.Pointer() == e.Pointer() {
		return w.result(path, a, e, true)
	}

	key := visitKey{
		actual:       a.Pointer(),
		expected:     e.Pointer(),
		actualType:   a.Type(),
		expectedType: e.Type(),
	}
	if w.visiting[key] {
		// The pair is already being compared further up.
		return w.result(path, a, e, true)
	}

	w.visiting[key] = true
	defer delete(w.visiting, key)

	return w.walk(path, a.Elem(), e.Elem(), depth)
}

func (w *walker) walkStruct(path string, a, e reflect.Value, depth int) bool {
	da, de := describe(a.Type()), describe(e.Type())

	for _, m := range de.members {
		if !w.criteria.visible(m) {
			continue
		}
		p := joinMember(path, m.name)
		ev := exported(e.Field(m.index))

		i, ok := da.byName[m.name]
		if !ok || !w.criteria.visible(da.members[i]) {
			if !w.emit(FieldMatch{
				Path:          p,
				Expected:      interfaceOf(ev),
				ExpectedFound: true,
				Kind:          MissingOnActual,
			}) {
				return false
			}
			continue
		}

		av := exported(a.Field(da.members[i].index))
		if !w.walk(p, av, ev, depth+1) {
			return false
		}
	}

	for _, m := range da.members {
		if !w.criteria.visible(m) {
			continue
		}
		if i, ok := de.byName[m.name]; ok && w.criteria.visible(de.members[i]) {
			continue
		}
		if !w.emit(FieldMatch{
			Path:        joinMember(path, m.name),
			Actual:      interfaceOf(exported(a.Field(m.index))),
			ActualFound: true,
			Kind:        MissingOnExpected,
		}) {
			return false
		}
	}

	return true
}

func (w *walker) walkSequence(path string, a, e reflect.Value, depth int) bool {
	n := max(a.Len(), e.Len())
	for i := 0; i < n; i++ {
		p := fmt.Sprintf("%s[%d]", path, i)
		switch {
		case i >= a.Len():
			if !w.emit(FieldMatch{
				Path:          p,
				Expected:      interfaceOf(e.Index(i)),
				ExpectedFound: true,
				Kind:          MissingOnActual,
			}) {
				return false
			}
		case i >= e.Len():
			if !w.emit(FieldMatch{
				Path:        p,
				Actual:      interfaceOf(a.Index(i)),
				ActualFound: true,
				Kind:        MissingOnExpected,
			}) {
				return false
			}
		default:
			if !w.walk(p, a.Index(i), e.Index(i), depth+1) {
				return false
			}
		}
	}
	return true
}

func (w *walker) walkMap(path string, a, e reflect.Value, depth int) bool {
	type pair struct {
		name     string
		akey     reflect.Value
		ekey     reflect.Value
		inActual bool
		inExpect bool
	}

	// Both maps share a key type here, so keys pair up by lookup
	// rather than by their rendering.
	pairs := make([]pair, 0, a.Len()+e.Len())
	for _, k := range mapKeys(a) {
		p := pair{name: k.name, akey: k.key, inActual: true}
		if e.MapIndex(k.key).IsValid() {
			p.ekey, p.inExpect = k.key, true
		}
		pairs = append(pairs, p)
	}
	for _, k := range mapKeys(e) {
		if !a.MapIndex(k.key).IsValid() {
			pairs = append(pairs, pair{name: k.name, ekey: k.key, inExpect: true})
		}
	}
	sort.SliceStable(pairs, func(i, j int) bool {
		return pairs[i].name < pairs[j].name
	})

	for _, pr := range pairs {
		p := path + "[" + pr.name + "]"

		switch {
		case !pr.inActual:
			if !w.emit(FieldMatch{
				Path:          p,
				Expected:      interfaceOf(e.MapIndex(pr.ekey)),
				ExpectedFound: true,
				Kind:          MissingOnActual,
			}) {
				return false
			}
		case !pr.inExpect:
			if !w.emit(FieldMatch{
				Path:        p,
				Actual:      interfaceOf(a.MapIndex(pr.akey)),
				ActualFound: true,
				Kind:        MissingOnExpected,
			}) {
				return false
			}
		default:
			av := addressable(a.MapIndex(pr.akey))
			ev := addressable(e.MapIndex(pr.ekey))
			if !w.walk(p, av, ev, depth+1) {
				return false
			}
		}
	}
	return true
}

type mapKey struct {
	name string
	key  reflect.Value
}

// mapKeys returns the keys of m sorted by name. Keys of an
// interface-typed map are named with their dynamic type, and keys
// that still render alike get a "#n" suffix.
func mapKeys(m reflect.Value) []mapKey {
	qualified := m.Type().Key().Kind() == reflect.Interface

	keys := make([]mapKey, 0, m.Len())
	for _, k := range m.MapKeys() {
		v := interfaceOf(k)
		name := fmt.Sprintf("%v", v)
		if qualified {
			name = fmt.Sprintf("%T(%v)", v, v)
		}
		keys = append(keys, mapKey{name: name, key: k})
	}
	sort.SliceStable(keys, func(i, j int) bool {
		if keys[i].name != keys[j].name {
			return keys[i].name < keys[j].name
		}
		return fmt.Sprintf("%#v", interfaceOf(keys[i].key)) <
			fmt.Sprintf("%#v", interfaceOf(keys[j].key))
	})

	for i := 0; i < len(keys); {
		j := i + 1
		for j < len(keys) && keys[j].name == keys[i].name {
			j++
		}
		for n := i + 1; n < j; n++ {
			keys[n].name += "#" + strconv.Itoa(n-i+1)
		}
		i = j
	}
	return keys
}

func (w *walker) result(path string, a, e reflect.Value, equal bool) bool {
	kind := ValueMismatch
	if equal {
		kind = Match
	}
	return w.emit(FieldMatch{
		Path:          path,
		Actual:        interfaceOf(a),
		Expected:      interfaceOf(e),
		ActualFound:   true,
		ExpectedFound: true,
		Kind:          kind,
	})
}

func (w *walker) typeMismatch(path string, a, e reflect.Value) bool {
	return w.emit(FieldMatch{
		Path:          path,
		Actual:        interfaceOf(a),
		Expected:      interfaceOf(e),
		ActualFound:   true,
		ExpectedFound: true,
		Kind:          TypeMismatch,
	})
}

func (w *walker) emit(f FieldMatch) bool {
	if !f.ActualFound && !f.ExpectedFound {
		return true
	}
	if w.criteria.excluded(f.Path) || !w.criteria.selected(f.Path) {
		return true
	}
	return w.visit(f)
}

func joinMember(path, name string) string {
	if path == "" {
		return name
	}
	return path + "." + name
}

func unwrap(v reflect.Value) reflect.Value {
	for v.IsValid() && v.Kind() == reflect.Interface {
		if v.IsNil() {
			return reflect.Value{}
		}
		v = addressable(exported(v.Elem()))
	}
	return v
}

func isNilOrInvalid(v reflect.Value) bool {
	if !v.IsValid() {
		return true
	}
	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Chan,
		reflect.Func, reflect.Interface:
		return v.IsNil()
	}
	return false
}

func opaqueEqual(a, e reflect.Value) bool {
	return cmp.Equal(interfaceOf(a), interfaceOf(e), opaqueOptions...)
}

func sameReference(a, e reflect.Value) bool {
	switch a.Kind() {
	case reflect.Func, reflect.Chan, reflect.UnsafePointer:
		return a.Type() == e.Type() && a.Pointer() == e.Pointer()
	}
	return opaqueEqual(a, e)
}

var boolType = reflect.TypeOf(true)

// hasEqualMethod reports whether values of t define their own
// equality through an Equal(T) bool method, as time.Time does.
func hasEqualMethod(t reflect.Type) bool {
	m, ok := t.MethodByName("Equal")
	if !ok {
		return false
	}
	mt := m.Type
	return mt.NumIn() == 2 && mt.NumOut() == 1 &&
		mt.In(1) == t && mt.Out(0) == boolType
}
