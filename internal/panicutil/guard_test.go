package panicutil_test

import (
	"errors"
	"runtime"
	"sync"
	"testing"

	"github.com/karupanerura/ttl-cache/internal/panicutil"
	"github.com/sourcegraph/conc/panics"
)

func TestGuard(t *testing.T) {
	t.Parallel()

	t.Run("Normal return with value", func(t *testing.T) {
		t.Parallel()

		v, err := panicutil.Guard(func() (int, error) {
			return 42, nil
		}, nil)
		if err != nil {
			t.Errorf("expected no error, got: %v", err)
		}
		if v != 42 {
			t.Errorf("expected 42, got: %d", v)
		}
	})

	t.Run("Normal return with error", func(t *testing.T) {
		t.Parallel()

		expectedErr := errors.New("expected error")
		_, err := panicutil.Guard(func() (int, error) {
			return 0, expectedErr
		}, nil)
		if err != expectedErr {
			t.Errorf("expected error %v, got: %v", expectedErr, err)
		}
	})

	t.Run("Panic", func(t *testing.T) {
		t.Parallel()

		v, err := panicutil.Guard(func() (int, error) {
			panic("test panic")
		}, func() {
			t.Error("onGoexit must not be called on panic")
		})
		var recoveredErr *panics.ErrRecovered
		if !errors.As(err, &recoveredErr) {
			t.Fatalf("expected error to be of type *panics.ErrRecovered, got: %T", err)
		}
		if recoveredErr.Value != "test panic" {
			t.Errorf("expected panic value 'test panic', got: %v", recoveredErr.Value)
		}
		if v != 0 {
			t.Errorf("expected zero value, got: %d", v)
		}
	})

	t.Run("Goexit", func(t *testing.T) {
		t.Parallel()

		var called bool
		var wg sync.WaitGroup
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = panicutil.Guard(func() (int, error) {
				runtime.Goexit()
				return 0, nil
			}, func() {
				called = true
			})
			t.Error("Guard must not return after runtime.Goexit")
		}()
		wg.Wait()

		if !called {
			t.Error("expected onGoexit to be called")
		}
	})
}

func TestRecover(t *testing.T) {
	t.Parallel()

	if err := panicutil.Recover(func() {}); err != nil {
		t.Errorf("expected no error, got: %v", err)
	}

	customErr := errors.New("custom error")
	err := panicutil.Recover(func() {
		panic(customErr)
	})
	var recoveredErr *panics.ErrRecovered
	if !errors.As(err, &recoveredErr) {
		t.Fatalf("expected error to be of type *panics.ErrRecovered, got: %T", err)
	}
	if recoveredErr.Value != customErr {
		t.Errorf("expected panic value custom error, got: %v", err)
	}
}
