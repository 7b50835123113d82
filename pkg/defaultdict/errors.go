package defaultdict

import (
	"errors"
	"fmt"
)

var (
	// ErrDuplicateKey is returned by Add, and by the copy constructors, when a key
	// is already present under the dictionary's comparer.
	ErrDuplicateKey = errors.New("an entry with the same key already exists")

	// ErrNilSource is returned by the copy constructors when no source is given.
	ErrNilSource = errors.New("copy source is nil")

	// ErrNilComparer is returned by NewWithComparer when no comparer is given.
	ErrNilComparer = errors.New("key comparer is nil")
)

// KeyError reports a failed operation on a specific key.
//
// It unwraps to the underlying sentinel, so callers should match it with
// errors.Is(err, ErrDuplicateKey) rather than by type.
type KeyError struct {
	Key any   // the offending key
	Err error // the sentinel describing the failure
}

func (e *KeyError) Error() string {
	return fmt.Sprintf("key %v: %v", e.Key, e.Err)
}

func (e *KeyError) Unwrap() error {
	return e.Err
}
