package memo_test

import (
	"context"
	"fmt"
	"strings"
	"time"

	ttlcache "github.com/karupanerura/ttl-cache"
	"github.com/karupanerura/ttl-cache/memo"
)

func ExampleMemoizer() {
	cache := ttlcache.New[string, string](time.Minute)
	m := memo.New(cache, func(_ context.Context, key string) (string, error) {
		fmt.Println("loading", key)
		return strings.ToUpper(key), nil
	})

	for range 2 {
		v, err := m.Get(context.Background(), "hello")
		if err != nil {
			panic(err)
		}
		fmt.Println(v)
	}
	// Output:
	// loading hello
	// HELLO
	// HELLO
}
