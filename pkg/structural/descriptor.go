package structural

import (
	"reflect"
	"sync"
)

// member is one struct field of a described type.
type member struct {
	name     string
	index    int
	exported bool
	typ      reflect.Type
}

// descriptor lists the members of a struct type in declaration
// order. Descriptors are built once per type and cached.
type descriptor struct {
	typ     reflect.Type
	members []member
	byName  map[string]int
}

var descriptors sync.Map // reflect.Type -> *descriptor

func describe(t reflect.Type) *descriptor {
	if d, ok := descriptors.Load(t); ok {
		return d.(*descriptor)
	}

	d := &descriptor{typ: t, byName: make(map[string]int)}
	if t.Kind() == reflect.Struct {
		for i := 0; i < t.NumField(); i++ {
			f := t.Field(i)
			d.byName[f.Name] = len(d.members)
			d.members = append(d.members, member{
				name:     f.Name,
				index:    i,
				exported: f.IsExported(),
				typ:      f.Type,
			})
		}
	}

	actual, _ := descriptors.LoadOrStore(t, d)
	return actual.(*descriptor)
}

// Members returns the member names of a struct type in
// declaration order. Pointer types are dereferenced.
func Members(t reflect.Type) []string {
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t == nil {
		return nil
	}

	d := describe(t)
	names := make([]string, len(d.members))
	for i, m := range d.members {
		names[i] = m.name
	}
	return names
}

func (c Criteria) visible(m member) bool {
	switch c.Visibility {
	case ExportedFields:
		return m.exported
	case UnexportedFields:
		return !m.exported
	}
	return true
}
