package editvalue

import (
	"reflect"
)

// NamedRef pairs a live field reference with the label the inspector shows for it.
type NamedRef struct {
	Label string
	Ref   Ref
}

// Fields lists the editable fields of the struct target points to, in
// declaration order. Exported fields whose type is one of the kinds are
// included; embedded structs are walked. A struct tag `edit:"-"` hides a
// field and `edit:"Name"` overrides its label.
func Fields(target any) []NamedRef {
	rv := reflect.ValueOf(target)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return nil
	}
	rv = rv.Elem()
	if rv.Kind() != reflect.Struct {
		return nil
	}
	var out []NamedRef
	collectFields(rv, &out)
	return out
}

func collectFields(rv reflect.Value, out *[]NamedRef) {
	rt := rv.Type()
	for i := 0; i < rt.NumField(); i++ {
		sf := rt.Field(i)
		tag := sf.Tag.Get("edit")
		if tag == "-" {
			continue
		}
		fv := rv.Field(i)

		if sf.Anonymous && fv.Kind() == reflect.Struct {
			collectFields(fv, out)
			continue
		}
		if !sf.IsExported() {
			continue
		}

		ref, ok := RefOf(fv.Addr().Interface())
		if !ok {
			continue
		}
		label := sf.Name
		if tag != "" {
			label = tag
		}
		*out = append(*out, NamedRef{Label: label, Ref: ref})
	}
}
