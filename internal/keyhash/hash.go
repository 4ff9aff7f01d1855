package keyhash

import (
	"encoding/binary"
	"fmt"
	"hash"
	"hash/fnv"
	"math"
	"sync"

	"github.com/goccy/go-reflect"
)

var (
	// hashesMutex guards hashes.
	hashesMutex sync.RWMutex

	// hashes caches the hash function built for each key type.
	hashes = map[reflect.Type]func(any) int{}
)

// hasherPool is a pool for 64-bit FNV-1a hash objects.
var hasherPool = sync.Pool{
	New: func() any {
		return fnv.New64a()
	},
}

// For returns a hash function for keys of type K.
// The returned value is always non-negative, so it can be used as a bucket index with a modulo.
// It panics if the kind of K is not a boolean, an integer, a float or a string.
func For[K comparable]() func(K) int {
	h := lookup(reflect.TypeOf((*K)(nil)).Elem())
	return func(key K) int {
		return h(key)
	}
}

// lookup retrieves or creates the hash function for the given type.
func lookup(typ reflect.Type) func(any) int {
	hashesMutex.RLock()
	h, ok := hashes[typ]
	hashesMutex.RUnlock()
	if ok {
		return h
	}

	hashesMutex.Lock()
	defer hashesMutex.Unlock()
	if h, ok := hashes[typ]; ok {
		return h
	}

	h = create(typ)
	hashes[typ] = h
	return h
}

// create builds a hash function that encodes keys by their kind, so named types
// such as `type UserID string` hash the same way as their underlying type.
func create(typ reflect.Type) func(any) int {
	var encode func([]byte, reflect.Value) []byte
	switch typ.Kind() {
	case reflect.Bool:
		encode = func(b []byte, v reflect.Value) []byte {
			if v.Bool() {
				return append(b, 1)
			}
			return append(b, 0)
		}
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		encode = func(b []byte, v reflect.Value) []byte {
			return binary.BigEndian.AppendUint64(b, uint64(v.Int()))
		}
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		encode = func(b []byte, v reflect.Value) []byte {
			return binary.BigEndian.AppendUint64(b, v.Uint())
		}
	case reflect.Float32, reflect.Float64:
		encode = func(b []byte, v reflect.Value) []byte {
			f := v.Float()
			if f == 0 {
				// -0 and +0 are the same map key
				f = 0
			}
			return binary.BigEndian.AppendUint64(b, math.Float64bits(f))
		}
	case reflect.String:
		encode = func(b []byte, v reflect.Value) []byte {
			return append(b, v.String()...)
		}
	default:
		panic(fmt.Sprintf("keyhash: unsupported key type: %s", typ.String()))
	}

	return func(key any) int {
		h := hasherPool.Get().(hash.Hash64)
		defer func() {
			h.Reset()
			hasherPool.Put(h)
		}()

		var scratch [8]byte
		_, _ = h.Write(encode(scratch[:0], reflect.ValueOf(key)))
		return int(h.Sum64() >> 1)
	}
}
