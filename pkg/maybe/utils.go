package maybe

import "reflect"

func isNil(i interface{}) bool {
	if i == nil {
		return true
	}
	v := reflect.ValueOf(i)
	switch v.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return v.IsNil()
	}
	return false
}

func release[V any](v *V) {
	if rel, ok := any(*v).(Releaser); ok {
		if !isNil(rel) {
			rel.Release()
		}
		return
	}
	if rel, ok := any(v).(Releaser); ok {
		rel.Release()
	}
}

func clone[V any](v V) V {
	if c, ok := any(v).(Cloner[V]); ok {
		if !isNil(c) {
			return c.Clone()
		}
		return v
	}
	if c, ok := any(&v).(Cloner[V]); ok {
		return c.Clone()
	}
	return v
}
