package ttlcache

import (
	"fmt"

	"github.com/goccy/go-reflect"
)

// ValueCloner is an interface for cloning values.
// A cache configured with a ValueCloner clones values when they are added and when they are returned,
// so callers never share mutable state with the cache.
// The CloneValue method should return a deep copy of the input value.
type ValueCloner[V ValueConstraint] interface {
	CloneValue(V) V
}

// ValueClonerFunc is a function type that implements the ValueCloner interface.
type ValueClonerFunc[V ValueConstraint] func(v V) V

// CloneValue calls the function.
func (f ValueClonerFunc[V]) CloneValue(v V) V {
	return f(v)
}

// NopValueCloner is a value cloner that does not clone values.
// It is the default of the cache, which holds values as given.
type NopValueCloner[V ValueConstraint] struct{}

// CloneValue returns the input value.
func (NopValueCloner[V]) CloneValue(v V) V {
	return v
}

// DefaultValueCloner returns a cloner for the given value type.
// It uses the Clone or DeepCopy method of the value type if it has one,
// and a NopValueCloner for booleans, numbers and strings.
// It panics for any other value type.
func DefaultValueCloner[V ValueConstraint]() ValueCloner[V] {
	type cloner interface {
		Clone() V
	}
	type deepCopier interface {
		DeepCopy() V
	}

	var zero V
	switch any(zero).(type) {
	case cloner:
		return ValueClonerFunc[V](func(v V) V {
			return any(v).(cloner).Clone()
		})
	case deepCopier:
		return ValueClonerFunc[V](func(v V) V {
			return any(v).(deepCopier).DeepCopy()
		})
	}

	typ := reflect.TypeOf((*V)(nil)).Elem()
	switch typ.Kind() {
	case reflect.Bool, reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Uintptr, reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128,
		reflect.String:
		return NopValueCloner[V]{}
	default:
		panic(fmt.Sprintf("value type %s does not have Clone or DeepCopy method", typ.String()))
	}
}
