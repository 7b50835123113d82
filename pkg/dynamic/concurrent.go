package dynamic

import (
	"iter"
	"sync"

	"github.com/gabapcia/dynamap/pkg/defaultdict"
)

// Concurrent is a Dictionary guarded by a read/write mutex.
//
// It offers the same operations with the same semantics. Iteration runs over
// a snapshot taken when All is called. InvokeMember looks the function up
// under the read lock and calls it without holding any lock, so a function
// may safely use the dictionary it is stored in.
type Concurrent struct {
	mu   sync.RWMutex
	dict *Dictionary
}

// NewConcurrent creates an empty Concurrent dictionary.
func NewConcurrent(opts ...Option) *Concurrent {
	return &Concurrent{dict: New(opts...)}
}

// NewConcurrentFrom creates a Concurrent dictionary holding a copy of src.
// It fails like NewFrom.
func NewConcurrentFrom(src defaultdict.Source[string, any], opts ...Option) (*Concurrent, error) {
	dict, err := NewFrom(src, opts...)
	if err != nil {
		return nil, err
	}

	return &Concurrent{dict: dict}, nil
}

func (c *Concurrent) Get(key string) any {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.dict.Get(key)
}

func (c *Concurrent) TryGet(key string) (any, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.dict.TryGet(key)
}

func (c *Concurrent) Set(key string, value any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.dict.Set(key, value)
}

func (c *Concurrent) Add(key string, value any) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.dict.Add(key, value)
}

func (c *Concurrent) ContainsKey(key string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.dict.ContainsKey(key)
}

func (c *Concurrent) Remove(key string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.dict.Remove(key)
}

func (c *Concurrent) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.dict.Len()
}

func (c *Concurrent) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.dict.Clear()
}

// Snapshot returns an unsynchronized copy of the current entries.
func (c *Concurrent) Snapshot() *Dictionary {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.dict.Clone()
}

// All returns an iterator over a snapshot of the entries.
func (c *Concurrent) All() iter.Seq2[string, any] {
	return c.Snapshot().All()
}

func (c *Concurrent) Member(name string) any {
	return c.Get(name)
}

func (c *Concurrent) SetMember(name string, value any) {
	c.Set(name, value)
}

func (c *Concurrent) InvokeMember(name string, args ...any) (any, error) {
	value, ok := c.TryGet(name)
	if !ok {
		return nil, &MemberError{Name: name}
	}

	return invoke(name, value, args)
}

var _ defaultdict.Source[string, any] = (*Concurrent)(nil)
