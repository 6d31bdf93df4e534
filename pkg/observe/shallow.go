package observe

import "reflect"

// ShallowEqual compares two values one level deep. Maps compare per key,
// slices per element, structs (and pointers to structs) per exported field,
// each member by identity rather than recursively. Everything else compares
// by identity.
func ShallowEqual(a, b any) bool {
	if identical(a, b) {
		return true
	}
	if isNil(a) || isNil(b) {
		// A typed nil map or pointer is equivalent to an absent value.
		return isNil(a) && isNil(b)
	}

	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	if va.Type() != vb.Type() {
		return false
	}

	switch va.Kind() {
	case reflect.Map:
		if va.Len() != vb.Len() {
			return false
		}
		iter := va.MapRange()
		for iter.Next() {
			other := vb.MapIndex(iter.Key())
			if !other.IsValid() || !identical(iter.Value().Interface(), other.Interface()) {
				return false
			}
		}
		return true

	case reflect.Slice:
		if va.Len() != vb.Len() {
			return false
		}
		for i := 0; i < va.Len(); i++ {
			if !identical(va.Index(i).Interface(), vb.Index(i).Interface()) {
				return false
			}
		}
		return true

	case reflect.Pointer:
		if va.Elem().Kind() == reflect.Struct {
			return shallowStruct(va.Elem(), vb.Elem())
		}
		return false

	case reflect.Struct:
		return shallowStruct(va, vb)
	}

	return false
}

func shallowStruct(va, vb reflect.Value) bool {
	t := va.Type()
	for i := 0; i < t.NumField(); i++ {
		if !t.Field(i).IsExported() {
			continue
		}
		if !identical(va.Field(i).Interface(), vb.Field(i).Interface()) {
			return false
		}
	}
	return true
}

// isNil reports whether v is nil, either as an untyped interface or as a
// typed nil map, slice, pointer, func, or channel.
func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Map, reflect.Slice, reflect.Pointer, reflect.Func, reflect.Chan:
		return rv.IsNil()
	}
	return false
}

// identical reports whether a and b are the same value: == for comparable
// dynamic types, header identity for maps, slices, funcs, and channels.
// This is the equality the marker sets and ShallowEqual's member comparison
// are built on.
func identical(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}

	ta := reflect.TypeOf(a)
	if ta != reflect.TypeOf(b) {
		return false
	}
	if ta.Comparable() {
		return a == b
	}

	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	switch va.Kind() {
	case reflect.Map, reflect.Func, reflect.Chan, reflect.UnsafePointer:
		return va.Pointer() == vb.Pointer()
	case reflect.Slice:
		if va.Len() != vb.Len() {
			return false
		}
		return va.Len() == 0 || va.Pointer() == vb.Pointer()
	}
	return false
}
