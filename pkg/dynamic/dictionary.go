// Package dynamic provides Dictionary, a case-insensitive string-keyed map of
// arbitrary values that can also be used through member-style accessors.
//
// Go has no hook for intercepting arbitrary field or method names, so member
// access is spelled out explicitly:
//
//	d := dynamic.New()
//	d.SetMember("SuperHeroName", "Superman")
//	d.Member("superheroname") // "Superman"
//	d.Member("FirstName")     // nil, never an error
//
//	d.SetMember("Greet", dynamic.Func(func(args ...any) (any, error) {
//	    return fmt.Sprintf("Hello, %v!", args[0]), nil
//	}))
//	d.InvokeMember("greet", "World") // "Hello, World!", nil
//
// Member, SetMember and InvokeMember are thin wrappers over Get and Set; both
// spellings address the same entries with the same semantics.
//
// A Dictionary is not safe for concurrent use; see Concurrent for a
// synchronized variant.
package dynamic

import (
	"iter"

	"github.com/gabapcia/dynamap/pkg/defaultdict"
	"github.com/gabapcia/dynamap/pkg/keycmp"
)

// Dictionary is a case-insensitive map from member names to values.
//
// It exclusively owns its backing defaultdict.Dictionary; no constructor or
// accessor hands that map out.
type Dictionary struct {
	entries *defaultdict.Dictionary[string, any]
}

// config holds construction settings for a Dictionary.
type config struct {
	comparer defaultdict.Comparer[string]
}

// Option configures a Dictionary before construction.
type Option func(*config)

// WithComparer overrides the key comparison strategy.
//
// A nil comparer never disables case-insensitivity: the default
// keycmp.InvariantIgnoreCase comparer is used instead.
func WithComparer(c defaultdict.Comparer[string]) Option {
	return func(cfg *config) {
		if c != nil {
			cfg.comparer = c
		}
	}
}

func newConfig(opts []Option) config {
	cfg := config{comparer: keycmp.InvariantIgnoreCase()}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// New creates an empty Dictionary.
//
// Keys are compared with keycmp.InvariantIgnoreCase unless WithComparer is given.
func New(opts ...Option) *Dictionary {
	cfg := newConfig(opts)
	return &Dictionary{
		entries: defaultdict.New[string, any](defaultdict.WithComparer(cfg.comparer)),
	}
}

// NewFrom creates a Dictionary holding a copy of every entry in src.
//
// Only the entries are copied: stored values that are themselves references
// (maps, slices, other dictionaries) are shared with src.
//
// Parameters:
//   - src: the collection to copy, e.g. another Dictionary or a
//     *defaultdict.Dictionary[string, any]. It is required.
//   - opts: optional settings, e.g. WithComparer.
//
// Returns:
//   - The populated Dictionary.
//   - defaultdict.ErrNilSource if src is nil.
//   - An error wrapping defaultdict.ErrDuplicateKey if two keys of src
//     collide under the comparer, e.g. "Name" and "NAME".
func NewFrom(src defaultdict.Source[string, any], opts ...Option) (*Dictionary, error) {
	switch s := src.(type) {
	case *Dictionary:
		if s == nil {
			return nil, defaultdict.ErrNilSource
		}
	case *Concurrent:
		if s == nil {
			return nil, defaultdict.ErrNilSource
		}
	}

	cfg := newConfig(opts)
	entries, err := defaultdict.NewFrom(src, defaultdict.WithComparer(cfg.comparer))
	if err != nil {
		return nil, err
	}

	return &Dictionary{entries: entries}, nil
}

// NewFromMap is NewFrom for a built-in map. A nil map is reported as
// defaultdict.ErrNilSource.
func NewFromMap(m map[string]any, opts ...Option) (*Dictionary, error) {
	cfg := newConfig(opts)
	entries, err := defaultdict.NewFromMap(m, defaultdict.WithComparer(cfg.comparer))
	if err != nil {
		return nil, err
	}

	return &Dictionary{entries: entries}, nil
}

// Comparer returns the key comparison strategy in use.
func (d *Dictionary) Comparer() defaultdict.Comparer[string] {
	return d.entries.Comparer()
}

// Get returns the value stored under key, or nil if there is none.
func (d *Dictionary) Get(key string) any {
	return d.entries.Get(key)
}

// TryGet returns the value stored under key and whether it was present.
func (d *Dictionary) TryGet(key string) (any, bool) {
	return d.entries.TryGet(key)
}

// Set inserts or overwrites the value for key. An existing entry keeps the
// casing it was first stored with.
func (d *Dictionary) Set(key string, value any) {
	d.entries.Set(key, value)
}

// Add inserts a new entry, failing with defaultdict.ErrDuplicateKey if key is
// already present in any casing.
func (d *Dictionary) Add(key string, value any) error {
	return d.entries.Add(key, value)
}

// ContainsKey reports whether key is present in any casing.
func (d *Dictionary) ContainsKey(key string) bool {
	return d.entries.ContainsKey(key)
}

// Remove deletes key and reports whether it was present.
func (d *Dictionary) Remove(key string) bool {
	return d.entries.Remove(key)
}

// Len returns the number of entries.
func (d *Dictionary) Len() int {
	return d.entries.Len()
}

// Clear removes all entries.
func (d *Dictionary) Clear() {
	d.entries.Clear()
}

// All returns an iterator over the entries in insertion order, yielding each
// key with the casing it was first stored with.
func (d *Dictionary) All() iter.Seq2[string, any] {
	return d.entries.All()
}

// Keys returns an iterator over the stored keys in insertion order.
func (d *Dictionary) Keys() iter.Seq[string] {
	return d.entries.Keys()
}

// Values returns an iterator over the stored values in insertion order.
func (d *Dictionary) Values() iter.Seq[any] {
	return d.entries.Values()
}

// Clone returns an independent Dictionary with the same entries and comparer.
func (d *Dictionary) Clone() *Dictionary {
	return &Dictionary{entries: d.entries.Clone()}
}

// Member reads a member by name. It is Get under another name: an unknown
// member reads as nil.
func (d *Dictionary) Member(name string) any {
	return d.Get(name)
}

// SetMember writes a member by name. It is Set under another name.
func (d *Dictionary) SetMember(name string, value any) {
	d.Set(name, value)
}

// InvokeMember calls the function stored under name with args.
//
// Parameters:
//   - name: the member to invoke, matched with the dictionary's comparer.
//   - args: arguments passed to the stored function.
//
// Returns:
//   - The function's result and error, unmodified.
//   - A *MemberError (errors.Is ErrNoSuchMember) if nothing callable is
//     stored under name.
//   - An *ArgumentError (errors.Is ErrInvalidArguments) if args cannot be
//     bound to the parameters of a plain Go function.
//
// See Func for the supported function shapes.
func (d *Dictionary) InvokeMember(name string, args ...any) (any, error) {
	value, ok := d.TryGet(name)
	if !ok {
		return nil, &MemberError{Name: name}
	}

	return invoke(name, value, args)
}

// Compile-time assertion that a Dictionary can be used as a copy source.
var _ defaultdict.Source[string, any] = (*Dictionary)(nil)
