package defaultdict

import "hash/maphash"

// Comparer defines which keys a Dictionary considers to be the same entry.
//
// Implementations must be consistent: whenever Equal(a, b) reports true,
// Hash(a) and Hash(b) must return the same value.
type Comparer[K any] interface {
	// Equal reports whether a and b address the same entry.
	Equal(a, b K) bool

	// Hash returns the bucket hash for k.
	Hash(k K) uint64
}

// defaultComparer is the structural comparer used when no other strategy is
// configured. It mirrors the semantics of a built-in Go map.
type defaultComparer[K comparable] struct {
	seed maphash.Seed
}

// DefaultComparer returns a Comparer that uses == for equality and
// hash/maphash for hashing, matching the key semantics of a built-in map.
//
// Every call returns a comparer with a fresh random seed.
func DefaultComparer[K comparable]() Comparer[K] {
	return defaultComparer[K]{seed: maphash.MakeSeed()}
}

func (c defaultComparer[K]) Equal(a, b K) bool {
	return a == b
}

func (c defaultComparer[K]) Hash(k K) uint64 {
	return maphash.Comparable(c.seed, k)
}

// ComparerFunc adapts a pair of plain functions to the Comparer interface.
//
// Example:
//
//	byLength := defaultdict.ComparerFunc[string]{
//	    EqualFunc: func(a, b string) bool { return len(a) == len(b) },
//	    HashFunc:  func(k string) uint64 { return uint64(len(k)) },
//	}
type ComparerFunc[K any] struct {
	EqualFunc func(a, b K) bool
	HashFunc  func(k K) uint64
}

func (c ComparerFunc[K]) Equal(a, b K) bool {
	return c.EqualFunc(a, b)
}

func (c ComparerFunc[K]) Hash(k K) uint64 {
	return c.HashFunc(k)
}

// Compile-time assertions that both strategies satisfy Comparer.
var (
	_ Comparer[string] = defaultComparer[string]{}
	_ Comparer[string] = ComparerFunc[string]{}
)
