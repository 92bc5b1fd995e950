package structural

import (
	"fmt"
	"reflect"
)

// ScanType checks that actual carries every member declared by the
// struct type t, regardless of member values. Present members are
// reported as matches, absent ones as MissingOnActual and members
// only found on actual as MissingOnExpected.
func ScanType(actual any, t reflect.Type, c Criteria) ([]FieldMatch, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t == nil || t.Kind() != reflect.Struct {
		return nil, &CriteriaError{
			Reason: fmt.Sprintf("cannot scan members of %v", t),
		}
	}

	v := unwrap(root(actual))
	for v.IsValid() && v.Kind() == reflect.Pointer {
		if v.IsNil() {
			v = reflect.Value{}
			break
		}
		v = v.Elem()
	}
	if !v.IsValid() || v.Kind() != reflect.Struct {
		return []FieldMatch{{
			Actual:        interfaceOf(v),
			ActualFound:   v.IsValid(),
			Expected:      t.String(),
			ExpectedFound: true,
			Kind:          TypeMismatch,
		}}, nil
	}

	da, de := describe(v.Type()), describe(t)
	var results []FieldMatch
	add := func(f FieldMatch) {
		if c.excluded(f.Path) || !c.selected(f.Path) {
			return
		}
		results = append(results, f)
	}

	for _, m := range de.members {
		if !c.visible(m) {
			continue
		}
		i, ok := da.byName[m.name]
		if !ok || !c.visible(da.members[i]) {
			add(FieldMatch{
				Path:          m.name,
				Expected:      m.typ.String(),
				ExpectedFound: true,
				Kind:          MissingOnActual,
			})
			continue
		}
		add(FieldMatch{
			Path:          m.name,
			Actual:        interfaceOf(exported(v.Field(da.members[i].index))),
			Expected:      m.typ.String(),
			ActualFound:   true,
			ExpectedFound: true,
			Kind:          Match,
		})
	}

	for _, m := range da.members {
		if !c.visible(m) {
			continue
		}
		if i, ok := de.byName[m.name]; ok && c.visible(de.members[i]) {
			continue
		}
		add(FieldMatch{
			Path:        m.name,
			Actual:      interfaceOf(exported(v.Field(m.index))),
			ActualFound: true,
			Kind:        MissingOnExpected,
		})
	}

	return results, nil
}
