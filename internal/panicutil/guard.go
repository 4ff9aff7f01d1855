// Package panicutil converts panics raised by user-supplied callbacks into errors.
package panicutil

import (
	"github.com/sourcegraph/conc/panics"
)

// Guard runs f with a double defer sandwich.
// If f returns normally, its results are returned as is.
// If f panics, the zero value and the recovered panic as *panics.ErrRecovered are returned.
// If f calls runtime.Goexit, onGoexit is called (when non-nil) while the goroutine unwinds.
func Guard[T any](f func() (T, error), onGoexit func()) (v T, err error) {
	var (
		normalReturn bool
		panicked     bool
		recovered    panics.Recovered
	)
	defer func() {
		if !normalReturn && !panicked && onGoexit != nil {
			onGoexit()
		}
	}()
	func() {
		defer func() {
			if !normalReturn {
				recovered = panics.NewRecovered(1, recover())
			}
		}()
		v, err = f()
		normalReturn = true
	}()
	if !normalReturn {
		panicked = true
		var zero T
		return zero, recovered.AsError()
	}
	return v, err
}

// Recover runs f and returns the panic raised by it as *panics.ErrRecovered, or nil.
func Recover(f func()) error {
	var pc panics.Catcher
	pc.Try(f)
	return pc.Recovered().AsError()
}
