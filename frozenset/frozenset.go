package frozenset

import (
	"fmt"
	"iter"
	"math"
	"slices"

	"github.com/amp-labs/amp-sortedset/assert"
	"github.com/amp-labs/amp-sortedset/errors"
	"github.com/amp-labs/amp-sortedset/hashing"
	"github.com/amp-labs/amp-sortedset/logger"
	"github.com/amp-labs/amp-sortedset/set"
	"github.com/amp-labs/amp-sortedset/sortable"
)

// Element is the bound on what a SortedFrozenSet can hold: a total order
// (LessThan), an equality consistent with it (Equals), and a hash.
// UpdateHash must be self-delimiting: no element's hash input may be a
// prefix of another's. The sortable wrappers all are.
type Element[T any] interface {
	sortable.Sortable[T]
	hashing.Hashable
}

// SortedFrozenSet is an immutable sequence of distinct elements in strictly
// ascending order. It answers both set questions (Contains) and sequence
// questions (Get, IndexOf, Slice).
//
// The backing slice is owned by the instance and never modified after
// construction, so a SortedFrozenSet may be shared between goroutines
// without locking. Every operation that produces a set returns a new
// instance with its own storage.
//
// A nil *SortedFrozenSet behaves like the empty set.
type SortedFrozenSet[T Element[T]] struct {
	items []T
}

// New builds a set from items given in any order, possibly with duplicates.
// The items slice is copied, so the caller may reuse it afterwards.
func New[T Element[T]](items ...T) *SortedFrozenSet[T] {
	return build(slices.Clone(items))
}

// FromSeq builds a set by draining seq once. A nil seq yields the empty set.
func FromSeq[T Element[T]](seq iter.Seq[T]) *SortedFrozenSet[T] {
	if seq == nil {
		return Empty[T]()
	}

	return build(slices.Collect(seq))
}

// FromSet freezes the current contents of a mutable set.
func FromSet[T Element[T]](s set.Set[T]) *SortedFrozenSet[T] {
	if s == nil {
		return Empty[T]()
	}

	return build(slices.Collect(s.Seq()))
}

// Empty returns a set with no elements.
func Empty[T Element[T]]() *SortedFrozenSet[T] {
	return &SortedFrozenSet[T]{}
}

// Range builds the set of integers start, start+step, ... up to but not
// including stop. A negative step counts down; the result is sorted either way.
// A zero step, or a range with more values than an int can count, is
// rejected with errors.ErrInvalidArgument.
func Range(start, stop, step int) (*SortedFrozenSet[sortable.Int], error) {
	if step == 0 {
		return nil, logger.AnnotateError(
			fmt.Errorf("%w: range step must not be zero", errors.ErrInvalidArgument),
			"start", start, "stop", stop, "step", step)
	}

	count, ok := stepCount(start, stop, step)
	if !ok {
		return nil, logger.AnnotateError(
			fmt.Errorf("%w: range holds more than %d values", errors.ErrInvalidArgument, math.MaxInt),
			"start", start, "stop", stop, "step", step)
	}

	items := make([]sortable.Int, count)
	for k := range items {
		items[k] = sortable.Int(stepAt(start, step, k))
	}

	return build(items), nil
}

// build takes ownership of items: sorts, drops adjacent duplicates and
// trims spare capacity. This is the only place elements get ordered or
// deduplicated; everything else relies on the invariants it establishes.
func build[T Element[T]](items []T) *SortedFrozenSet[T] {
	if len(items) == 0 {
		return Empty[T]()
	}

	slices.SortFunc(items, sortable.Compare[T])
	items = slices.Clip(slices.CompactFunc(items, func(a, b T) bool {
		return a.Equals(b)
	}))

	assert.True(isStrictlyAscending(items),
		"frozenset: elements of type %T have inconsistent Equals and LessThan", items[0])

	return &SortedFrozenSet[T]{items: items}
}

func isStrictlyAscending[T Element[T]](items []T) bool {
	for i := 1; i < len(items); i++ {
		if !items[i-1].LessThan(items[i]) {
			return false
		}
	}

	return true
}

func (s *SortedFrozenSet[T]) elements() []T {
	if s == nil {
		return nil
	}

	return s.items
}

// Len returns the number of elements.
func (s *SortedFrozenSet[T]) Len() int {
	return len(s.elements())
}

// IsEmpty reports whether the set has no elements.
func (s *SortedFrozenSet[T]) IsEmpty() bool {
	return s.Len() == 0
}

// search returns the insertion point for item and whether item sits there.
func (s *SortedFrozenSet[T]) search(item T) (int, bool) {
	items := s.elements()

	pos, _ := slices.BinarySearchFunc(items, item, sortable.Compare[T])

	return pos, pos < len(items) && items[pos].Equals(item)
}

// Contains reports whether item is in the set, in O(log n).
func (s *SortedFrozenSet[T]) Contains(item T) bool {
	_, found := s.search(item)

	return found
}

// IndexOf returns the position of item, or errors.ErrNotFound.
func (s *SortedFrozenSet[T]) IndexOf(item T) (int, error) {
	pos, found := s.search(item)
	if !found {
		return -1, logger.AnnotateError(
			fmt.Errorf("%w: %#v", errors.ErrNotFound, item),
			"item", item, "length", s.Len())
	}

	return pos, nil
}

// Count returns how many times item occurs: 1 or 0.
func (s *SortedFrozenSet[T]) Count(item T) int {
	if s.Contains(item) {
		return 1
	}

	return 0
}

// Get returns the element at index. Negative indexes count from the end,
// so -1 is the largest element. Anything outside [-Len, Len-1] fails with
// errors.ErrIndexOutOfRange.
func (s *SortedFrozenSet[T]) Get(index int) (T, error) {
	items := s.elements()

	pos := index
	if pos < 0 {
		pos += len(items)
	}

	if pos < 0 || pos >= len(items) {
		var zero T

		return zero, logger.AnnotateError(
			fmt.Errorf("%w: %d", errors.ErrIndexOutOfRange, index),
			"index", index, "length", len(items))
	}

	return items[pos], nil
}

// All ranges over the elements in ascending order.
func (s *SortedFrozenSet[T]) All() iter.Seq[T] {
	return slices.Values(s.elements())
}

// Backward ranges over the elements in descending order.
func (s *SortedFrozenSet[T]) Backward() iter.Seq[T] {
	items := s.elements()

	return func(yield func(T) bool) {
		for i := len(items) - 1; i >= 0; i-- {
			if !yield(items[i]) {
				return
			}
		}
	}
}

// Enumerate ranges over (index, element) pairs in ascending order.
func (s *SortedFrozenSet[T]) Enumerate() iter.Seq2[int, T] {
	return slices.All(s.elements())
}

// Entries returns a copy of the elements in ascending order.
func (s *SortedFrozenSet[T]) Entries() []T {
	return slices.Clone(s.elements())
}

// ToSet copies the elements into a new mutable hash set keyed by hash.
// A nil hash means hashing.Sha256.
func (s *SortedFrozenSet[T]) ToSet(hash hashing.HashFunc) (set.Set[T], error) {
	if hash == nil {
		hash = hashing.Sha256
	}

	out := set.NewSet[T](hash)

	if err := out.AddAll(s.elements()...); err != nil {
		return nil, err
	}

	return out, nil
}
