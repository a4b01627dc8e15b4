package validator

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// Display renders a value the way it appears in failure messages.
// Floating point values always carry a decimal point so that 3 and 3.0
// are distinguishable in diagnostics, nil renders as "null" and slices
// render as "[a, b]".
func Display(value any) string {
	switch v := value.(type) {
	case nil:
		return "null"
	case string:
		return v
	case fmt.Stringer:
		if isNilPointer(value) {
			return "null"
		}
		return v.String()
	case float64:
		return formatFloat(v, 64)
	case float32:
		return formatFloat(float64(v), 32)
	}
	if isNilPointer(value) {
		return "null"
	}
	if rv := reflect.ValueOf(value); rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array {
		parts := make([]string, rv.Len())
		for i := range parts {
			parts[i] = Display(rv.Index(i).Interface())
		}
		return "[" + strings.Join(parts, ", ") + "]"
	}
	return fmt.Sprint(value)
}

func formatFloat(f float64, bitSize int) string {
	s := strconv.FormatFloat(f, 'f', -1, bitSize)
	if strings.ContainsAny(s, ".NI") {
		return s
	}
	return s + ".0"
}

// isNilPointer reports whether value holds a typed nil of a nillable kind.
func isNilPointer(value any) bool {
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface, reflect.Func, reflect.Chan:
		return rv.IsNil()
	default:
		return false
	}
}

func listString[E any](items []E) string {
	parts := make([]string, len(items))
	for i, item := range items {
		parts[i] = Display(item)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
