package frozenset

import (
	"fmt"
	"hash"
	"strings"

	"github.com/amp-labs/amp-sortedset/compare"
	"github.com/amp-labs/amp-sortedset/hashing"
	"github.com/amp-labs/amp-sortedset/sortable"
	"github.com/zeebo/xxh3"
)

// typeTag salts every hash so that a set never hashes like the bare
// concatenation of its elements.
const typeTag = "SortedFrozenSet"

var (
	_ sortable.Sortable[*SortedFrozenSet[sortable.Int]] = (*SortedFrozenSet[sortable.Int])(nil)
	_ hashing.Hashable                                  = (*SortedFrozenSet[sortable.Int])(nil)
	_ fmt.Stringer                                      = (*SortedFrozenSet[sortable.Int])(nil)
	_ fmt.GoStringer                                    = (*SortedFrozenSet[sortable.Int])(nil)
)

// Equals reports whether both sets hold the same elements. Given the
// ordering invariant this is an element-wise comparison.
func (s *SortedFrozenSet[T]) Equals(other *SortedFrozenSet[T]) bool {
	return compare.EqualSlices(s.elements(), other.elements())
}

// EqualsAny is Equals for a value of any type. Anything that is not a
// *SortedFrozenSet[T] is simply unequal; it never panics.
func (s *SortedFrozenSet[T]) EqualsAny(other any) bool {
	o, ok := other.(*SortedFrozenSet[T])

	return ok && s.Equals(o)
}

// LessThan orders sets lexicographically by their elements, with a proper
// prefix sorting first. This makes sets of sets possible.
func (s *SortedFrozenSet[T]) LessThan(other *SortedFrozenSet[T]) bool {
	a, b := s.elements(), other.elements()

	for i := range min(len(a), len(b)) {
		if c := sortable.Compare(a[i], b[i]); c != 0 {
			return c < 0
		}
	}

	return len(a) < len(b)
}

// UpdateHash feeds the set into h: a type tag, the length, then each
// element in order. Equal sets feed identical bytes; unequal sets feed
// different bytes as long as every element's own input is self-delimiting.
func (s *SortedFrozenSet[T]) UpdateHash(h hash.Hash) error {
	items := s.elements()

	if err := hashing.HashableString(typeTag).UpdateHash(h); err != nil {
		return err
	}

	if err := hashing.HashableInt(len(items)).UpdateHash(h); err != nil {
		return err
	}

	for _, item := range items {
		if err := item.UpdateHash(h); err != nil {
			return fmt.Errorf("frozenset: hashing element %#v: %w", item, err)
		}
	}

	return nil
}

// Hash returns a 64-bit XXH3 digest of the set. Equal sets always hash
// equally. The error comes only from an element's UpdateHash.
func (s *SortedFrozenSet[T]) Hash() (uint64, error) {
	h := xxh3.New()

	if err := s.UpdateHash(h); err != nil {
		return 0, err
	}

	return h.Sum64(), nil
}

// String renders the set as SortedFrozenSet(items=[1, 2, 3]), elements in
// Go syntax. The empty set renders as SortedFrozenSet(items=).
// It is meant for diagnostics, not as a serialization format.
func (s *SortedFrozenSet[T]) String() string {
	items := s.elements()

	var sb strings.Builder

	sb.WriteString(typeTag)
	sb.WriteString("(items=")

	if len(items) > 0 {
		sb.WriteByte('[')

		for i, item := range items {
			if i > 0 {
				sb.WriteString(", ")
			}

			fmt.Fprintf(&sb, "%#v", item)
		}

		sb.WriteByte(']')
	}

	sb.WriteByte(')')

	return sb.String()
}

// GoString makes %#v print the same form as String, which also keeps
// nested sets readable.
func (s *SortedFrozenSet[T]) GoString() string {
	return s.String()
}
