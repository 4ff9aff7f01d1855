package ttlcache

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrKeyConflict     = errors.New("key already exists in cache")
)

// InvalidArgumentError is returned when a required argument is absent or out of range.
type InvalidArgumentError struct {
	// Argument is the name of the rejected argument: "key", "value" or "ttl".
	Argument string
}

func (e *InvalidArgumentError) Error() string {
	return fmt.Sprintf("%s: %s", ErrInvalidArgument.Error(), e.Argument)
}

func (e *InvalidArgumentError) Unwrap() error {
	return ErrInvalidArgument
}

// KeyConflictError is returned by Add when a live entry already occupies the key
// and the cache does not override on match.
type KeyConflictError struct {
	// Key is the conflicting key.
	Key any
}

func (e *KeyConflictError) Error() string {
	return fmt.Sprintf("%s: %v", ErrKeyConflict.Error(), e.Key)
}

func (e *KeyConflictError) Unwrap() error {
	return ErrKeyConflict
}
