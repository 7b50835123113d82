// Package defaultdict provides a generic key/value dictionary that never fails
// when a missing key is read: it yields the value type's zero value instead.
//
// Key identity is decided by a pluggable Comparer, so the same dictionary type
// can hold structurally compared keys or, for example, case-insensitive strings.
//
// A Dictionary is not safe for concurrent use. Callers that share one across
// goroutines must synchronize access themselves.
package defaultdict

import (
	"container/list"
	"iter"
	"slices"
)

// entry is the value stored in the ordering list elements.
// hash is cached so removal does not need to recompute it.
type entry[K, V any] struct {
	key   K
	value V
	hash  uint64
}

// Dictionary is a map wrapper that returns the zero value for missing keys.
//
// Lookups go through a hash index whose buckets hold list elements; the list
// keeps entries in insertion order so iteration is deterministic.
//
// Example use case:
//
//	d := defaultdict.New[string, int]()
//	count := d.Get("key") // returns 0, "key" is still absent afterwards
type Dictionary[K, V any] struct {
	comparer Comparer[K]
	buckets  map[uint64][]*list.Element
	order    *list.List
}

// Source is any key/value collection a Dictionary can be copied from.
//
// The copy constructors only read from a Source; they never mutate it.
type Source[K, V any] interface {
	All() iter.Seq2[K, V]
}

// config holds construction settings for a Dictionary.
type config[K any] struct {
	comparer Comparer[K]
}

// Option configures a Dictionary before construction.
type Option[K any] func(*config[K])

// WithComparer sets the key-equality strategy for the dictionary.
//
// A nil comparer is ignored and the default comparer stays in place.
func WithComparer[K any](c Comparer[K]) Option[K] {
	return func(cfg *config[K]) {
		if c != nil {
			cfg.comparer = c
		}
	}
}

// newConfig applies opts on top of the default structural comparer.
func newConfig[K comparable](opts []Option[K]) config[K] {
	cfg := config[K]{comparer: DefaultComparer[K]()}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// New creates an empty Dictionary.
//
// Parameters:
//   - opts: optional settings, e.g. WithComparer to replace the default
//     structural key comparison.
//
// Returns:
//   - An empty Dictionary ready for use.
func New[K comparable, V any](opts ...Option[K]) *Dictionary[K, V] {
	cfg := newConfig(opts)
	return newDictionary[K, V](cfg.comparer)
}

// NewWithComparer creates an empty Dictionary for key types that are not
// comparable with ==, such as slices or structs holding them.
//
// Parameters:
//   - cmp: the key-equality strategy. It is required.
//
// Returns:
//   - An empty Dictionary using cmp.
//   - ErrNilComparer if cmp is nil.
func NewWithComparer[K, V any](cmp Comparer[K]) (*Dictionary[K, V], error) {
	if cmp == nil {
		return nil, ErrNilComparer
	}

	return newDictionary[K, V](cmp), nil
}

// NewFrom creates a Dictionary holding a copy of every entry in src.
//
// The new dictionary does not alias src: later changes to either side are not
// visible in the other. Entries are inserted in the order src yields them.
//
// Parameters:
//   - src: the collection to copy. It is required.
//   - opts: optional settings, e.g. WithComparer.
//
// Returns:
//   - The populated Dictionary.
//   - ErrNilSource if src is nil.
//   - An error wrapping ErrDuplicateKey if two keys of src collide under the
//     configured comparer.
func NewFrom[K comparable, V any](src Source[K, V], opts ...Option[K]) (*Dictionary[K, V], error) {
	if src == nil {
		return nil, ErrNilSource
	}
	if d, ok := src.(*Dictionary[K, V]); ok && d == nil {
		return nil, ErrNilSource
	}

	cfg := newConfig(opts)
	return copyFrom(newDictionary[K, V](cfg.comparer), src.All())
}

// NewFromMap is NewFrom for a built-in Go map.
//
// A nil map is reported as ErrNilSource; an empty, non-nil map yields an
// empty Dictionary. Go maps have no order, so neither does the copy.
func NewFromMap[K comparable, V any](m map[K]V, opts ...Option[K]) (*Dictionary[K, V], error) {
	if m == nil {
		return nil, ErrNilSource
	}

	cfg := newConfig(opts)
	return copyFrom(newDictionary[K, V](cfg.comparer), func(yield func(K, V) bool) {
		for k, v := range m {
			if !yield(k, v) {
				return
			}
		}
	})
}

func newDictionary[K, V any](cmp Comparer[K]) *Dictionary[K, V] {
	return &Dictionary[K, V]{
		comparer: cmp,
		buckets:  make(map[uint64][]*list.Element),
		order:    list.New(),
	}
}

func copyFrom[K, V any](d *Dictionary[K, V], seq iter.Seq2[K, V]) (*Dictionary[K, V], error) {
	for k, v := range seq {
		if err := d.Add(k, v); err != nil {
			return nil, err
		}
	}

	return d, nil
}

// lookup returns the hash of key and the list element holding it, if any.
func (d *Dictionary[K, V]) lookup(key K) (uint64, *list.Element) {
	hash := d.comparer.Hash(key)
	for _, el := range d.buckets[hash] {
		if d.comparer.Equal(el.Value.(*entry[K, V]).key, key) {
			return hash, el
		}
	}

	return hash, nil
}

func (d *Dictionary[K, V]) insert(hash uint64, key K, value V) {
	el := d.order.PushBack(&entry[K, V]{key: key, value: value, hash: hash})
	d.buckets[hash] = append(d.buckets[hash], el)
}

// Comparer returns the key-equality strategy the dictionary was built with.
func (d *Dictionary[K, V]) Comparer() Comparer[K] {
	return d.comparer
}

// Get retrieves the value associated with the given key.
//
// Unlike a lookup that signals absence, Get never fails: a missing key yields
// the zero value of V. The dictionary is not modified.
//
// Parameters:
//   - key: the key to retrieve.
//
// Returns:
//   - The stored value, or the zero value of V if key is absent.
func (d *Dictionary[K, V]) Get(key K) V {
	v, _ := d.TryGet(key)
	return v
}

// TryGet retrieves the value for key together with its presence.
//
// Returns:
//   - The stored value, or the zero value of V if key is absent.
//   - true if key is present.
func (d *Dictionary[K, V]) TryGet(key K) (V, bool) {
	if _, el := d.lookup(key); el != nil {
		return el.Value.(*entry[K, V]).value, true
	}

	var zero V
	return zero, false
}

// Set inserts or overwrites the value for key.
//
// When an equal key is already present its value is replaced in place and the
// originally stored key is kept, so a case-insensitive dictionary remembers
// the casing of the first insertion.
func (d *Dictionary[K, V]) Set(key K, value V) {
	hash, el := d.lookup(key)
	if el != nil {
		el.Value.(*entry[K, V]).value = value
		return
	}

	d.insert(hash, key, value)
}

// Add inserts a new entry for key.
//
// Returns:
//   - nil on success.
//   - A *KeyError wrapping ErrDuplicateKey if key is already present. The
//     dictionary is left unchanged in that case.
func (d *Dictionary[K, V]) Add(key K, value V) error {
	hash, el := d.lookup(key)
	if el != nil {
		return &KeyError{Key: key, Err: ErrDuplicateKey}
	}

	d.insert(hash, key, value)
	return nil
}

// ContainsKey reports whether key is present.
func (d *Dictionary[K, V]) ContainsKey(key K) bool {
	_, el := d.lookup(key)
	return el != nil
}

// Remove deletes key from the dictionary.
//
// Returns:
//   - true if an entry was removed, false if key was absent.
func (d *Dictionary[K, V]) Remove(key K) bool {
	hash, el := d.lookup(key)
	if el == nil {
		return false
	}

	bucket := slices.DeleteFunc(d.buckets[hash], func(e *list.Element) bool { return e == el })
	if len(bucket) == 0 {
		delete(d.buckets, hash)
	} else {
		d.buckets[hash] = bucket
	}

	d.order.Remove(el)
	return true
}

// Len returns the number of entries.
func (d *Dictionary[K, V]) Len() int {
	return d.order.Len()
}

// Clear removes all entries. The comparer is kept.
func (d *Dictionary[K, V]) Clear() {
	clear(d.buckets)
	d.order.Init()
}

// All returns an iterator over every entry in insertion order.
//
// The iterator is a live view and can be ranged over any number of times.
// Mutating the dictionary while ranging over it is not supported.
func (d *Dictionary[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for el := d.order.Front(); el != nil; el = el.Next() {
			e := el.Value.(*entry[K, V])
			if !yield(e.key, e.value) {
				return
			}
		}
	}
}

// Keys returns an iterator over the stored keys in insertion order.
func (d *Dictionary[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for k := range d.All() {
			if !yield(k) {
				return
			}
		}
	}
}

// Values returns an iterator over the stored values in insertion order.
func (d *Dictionary[K, V]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		for _, v := range d.All() {
			if !yield(v) {
				return
			}
		}
	}
}

// Clone returns an independent copy using the same comparer.
func (d *Dictionary[K, V]) Clone() *Dictionary[K, V] {
	c := newDictionary[K, V](d.comparer)
	for el := d.order.Front(); el != nil; el = el.Next() {
		e := el.Value.(*entry[K, V])
		c.insert(e.hash, e.key, e.value)
	}

	return c
}

// ToMap copies the entries of d into a new built-in map keyed by the stored keys.
//
// The returned map is independent of d.
func ToMap[K comparable, V any](d *Dictionary[K, V]) map[K]V {
	m := make(map[K]V, d.Len())
	for k, v := range d.All() {
		m[k] = v
	}

	return m
}

// Compile-time assertion that *Dictionary can be used as a copy source.
var _ Source[string, int] = (*Dictionary[string, int])(nil)
