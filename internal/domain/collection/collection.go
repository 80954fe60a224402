// Package collection provides a growable ordered container and a frozen,
// sorted view of it that supports binary search.
//
// Lookup is only defined on Sorted, and a Sorted is only obtained from
// OrderedCollection.Sort, so searching unsorted data cannot be expressed.
package collection

import (
	"cmp"
	"fmt"
	"iter"
	"slices"

	"sentilex/internal/domain"
)

const DefaultCapacity = 10

// OrderedCollection is an append-only array that doubles its capacity when
// full.
type OrderedCollection[T cmp.Ordered] struct {
	data []T
	size int
}

// New creates a collection with the given initial capacity.
func New[T cmp.Ordered](capacity int) (*OrderedCollection[T], error) {
	if capacity <= 0 {
		return nil, fmt.Errorf("new collection with capacity %d: %w", capacity, domain.ErrInvalidCapacity)
	}
	return &OrderedCollection[T]{data: make([]T, capacity)}, nil
}

// NewDefault creates a collection with DefaultCapacity.
func NewDefault[T cmp.Ordered]() *OrderedCollection[T] {
	return &OrderedCollection[T]{data: make([]T, DefaultCapacity)}
}

// From builds a collection holding items in order.
func From[T cmp.Ordered](items ...T) *OrderedCollection[T] {
	c := NewDefault[T]()
	for _, item := range items {
		c.Append(item)
	}
	return c
}

// Append adds item at the end.
func (c *OrderedCollection[T]) Append(item T) {
	if c.size == len(c.data) {
		c.grow()
	}
	c.data[c.size] = item
	c.size++
}

func (c *OrderedCollection[T]) grow() {
	newCap := len(c.data) * 2
	if newCap == 0 {
		newCap = DefaultCapacity
	}
	data := make([]T, newCap)
	copy(data, c.data[:c.size])
	c.data = data
}

// Get returns the element at index i.
func (c *OrderedCollection[T]) Get(i int) (T, error) {
	return get(c.data, c.size, i)
}

// MustGet is Get for indices the caller has already validated. It panics
// when i is out of range.
func (c *OrderedCollection[T]) MustGet(i int) T {
	v, err := c.Get(i)
	if err != nil {
		panic(err)
	}
	return v
}

func (c *OrderedCollection[T]) Len() int {
	return c.size
}

func (c *OrderedCollection[T]) Cap() int {
	return len(c.data)
}

// All iterates over index/element pairs in storage order.
func (c *OrderedCollection[T]) All() iter.Seq2[int, T] {
	return all(c.data, c.size)
}

// Sort orders the elements ascending in place with an insertion sort and
// returns a read-only view for lookups. The view owns a copy of the
// elements, so later appends and sorts on c leave it unchanged.
func (c *OrderedCollection[T]) Sort() *Sorted[T] {
	for i := 1; i < c.size; i++ {
		key := c.data[i]
		j := i - 1
		for j >= 0 && c.data[j] > key {
			c.data[j+1] = c.data[j]
			j--
		}
		c.data[j+1] = key
	}
	return &Sorted[T]{data: slices.Clone(c.data[:c.size])}
}

// Sorted is an ascending, immutable sequence.
type Sorted[T cmp.Ordered] struct {
	data []T
}

// Lookup binary-searches for item. When item occurs more than once, any of
// its indices may be returned.
func (s *Sorted[T]) Lookup(item T) (int, bool) {
	low, high := 0, len(s.data)-1
	for low <= high {
		mid := low + (high-low)/2
		switch v := s.data[mid]; {
		case v == item:
			return mid, true
		case v < item:
			low = mid + 1
		default:
			high = mid - 1
		}
	}
	return -1, false
}

func (s *Sorted[T]) Contains(item T) bool {
	_, ok := s.Lookup(item)
	return ok
}

func (s *Sorted[T]) Get(i int) (T, error) {
	return get(s.data, len(s.data), i)
}

func (s *Sorted[T]) Len() int {
	return len(s.data)
}

func (s *Sorted[T]) All() iter.Seq2[int, T] {
	return all(s.data, len(s.data))
}

func get[T any](data []T, size, i int) (T, error) {
	if i < 0 || i >= size {
		var zero T
		return zero, fmt.Errorf("get %d of %d: %w", i, size, domain.ErrIndexOutOfRange)
	}
	return data[i], nil
}

func all[T any](data []T, size int) iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < size; i++ {
			if !yield(i, data[i]) {
				return
			}
		}
	}
}
