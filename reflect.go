package chunkio

import (
	"fmt"
	"reflect"
	"sync"
)

var typeInfoCache sync.Map

type structInfo struct {
	fields []reflect.StructField
	byName map[string]int
}

func reflectType(typ reflect.Type) *structInfo {
	if v, ok := typeInfoCache.Load(typ); ok {
		return v.(*structInfo)
	}
	info := reflectTypeWithoutCache(typ)
	actual, _ := typeInfoCache.LoadOrStore(typ, info)
	return actual.(*structInfo)
}

func reflectTypeWithoutCache(typ reflect.Type) *structInfo {
	if typ.Kind() != reflect.Struct {
		panic(fmt.Errorf("%v not a struct", typ))
	}
	info := &structInfo{
		byName: make(map[string]int, typ.NumField()),
	}
	for i := 0; i < typ.NumField(); i++ {
		f := typ.Field(i)
		info.fields = append(info.fields, f)
		info.byName[f.Name] = i
	}
	return info
}

func structValueOf(v any) reflect.Value {
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Ptr {
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		panic(fmt.Errorf("expected a struct or pointer to struct, got %T", v))
	}
	return rv
}

// HasField reports whether the record type of v (a struct or pointer to
// struct) declares a field with the given name.
func HasField(v any, name string) bool {
	rv := structValueOf(v)
	info := reflectType(rv.Type())
	_, ok := info.byName[name]
	return ok
}

// FieldByName returns the named field of v. With a pointer to struct the
// returned value is addressable and settable.
func FieldByName(v any, name string) (reflect.Value, bool) {
	rv := structValueOf(v)
	info := reflectType(rv.Type())
	i, ok := info.byName[name]
	if !ok {
		return reflect.Value{}, false
	}
	return rv.Field(i), true
}

// ForEachField calls fn for every field of v in declaration order.
func ForEachField(v any, fn func(name string, val reflect.Value)) {
	rv := structValueOf(v)
	info := reflectType(rv.Type())
	for i, f := range info.fields {
		fn(f.Name, rv.Field(i))
	}
}
