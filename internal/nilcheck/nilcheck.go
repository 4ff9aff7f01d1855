// Package nilcheck reports whether a generic value is absent.
package nilcheck

import (
	"github.com/goccy/go-reflect"
)

// IsNil returns true if v is a nil interface, pointer, channel, function or unsafe pointer.
// Nil slices and maps are usable empty values and are not reported as nil.
func IsNil[T any](v T) bool {
	a := any(v)
	if a == nil {
		return true
	}

	rv := reflect.ValueOf(a)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Chan, reflect.Func, reflect.UnsafePointer:
		return rv.IsNil()
	default:
		return false
	}
}
