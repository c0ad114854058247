package chunkio

import (
	"fmt"
	"reflect"
	"strings"
)

const indentStep = "  "

// DumpStruct renders a decoded record (or any struct) as an indented
// "type name = value" listing, one line per field, recursing into nested
// structs and arrays. Diagnostics only; the output format is not stable.
func DumpStruct(v any) string {
	var buf strings.Builder
	rv := structValueOf(v)
	dumpStruct(&buf, "", rv)
	return buf.String()
}

func dumpStruct(w *strings.Builder, indent string, rv reflect.Value) {
	fmt.Fprintf(w, "%sstruct %s {\n", indent, rv.Type().Name())
	inner := indent + indentStep
	info := reflectType(rv.Type())
	for i, f := range info.fields {
		dumpField(w, inner, f.Name, rv.Field(i))
	}
	fmt.Fprintf(w, "%s}\n", indent)
}

func dumpField(w *strings.Builder, indent string, name string, fv reflect.Value) {
	switch fv.Kind() {
	case reflect.Struct:
		fmt.Fprintf(w, "%s%s %s = {\n", indent, fv.Type(), name)
		inner := indent + indentStep
		info := reflectType(fv.Type())
		for i, f := range info.fields {
			dumpField(w, inner, f.Name, fv.Field(i))
		}
		fmt.Fprintf(w, "%s}\n", indent)
	case reflect.Array, reflect.Slice:
		fmt.Fprintf(w, "%s%s %s = [", indent, fv.Type(), name)
		for i := 0; i < fv.Len(); i++ {
			if i > 0 {
				w.WriteByte(' ')
			}
			fmt.Fprintf(w, "%v", fv.Index(i).Interface())
		}
		w.WriteString("]\n")
	default:
		fmt.Fprintf(w, "%s%s %s = %v\n", indent, fv.Type(), name, fv.Interface())
	}
}
