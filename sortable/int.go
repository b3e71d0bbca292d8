package sortable

import (
	"hash"

	"github.com/amp-labs/amp-sortedset/hashing"
)

// Int is a sortable wrapper type for the built-in int type.
// It implements Sortable[Int] and hashing.Hashable, so it can be used as
// the element type of a frozen set.
//
// Example:
//
//	s := frozenset.New[sortable.Int](5, 3, 7, 3)
//	// Iterating yields: 3, 5, 7 (sorted order)
//
// To convert back to a regular int, use a type conversion:
//
//	var s sortable.Int = 42
//	regularInt := int(s)
type Int int

// Compile-time check that Int implements Sortable[Int].
var _ Sortable[Int] = (*Int)(nil)

// Equals returns true if this Int has the same value as the other Int.
func (i Int) Equals(other Int) bool {
	return int(i) == int(other)
}

// LessThan returns true if this Int is numerically less than the other Int.
func (i Int) LessThan(other Int) bool {
	return int(i) < int(other)
}

// UpdateHash writes the value as a fixed-width little-endian integer.
func (i Int) UpdateHash(h hash.Hash) error {
	return hashing.HashableInt(i).UpdateHash(h)
}

// Ints converts a slice of ints.
func Ints(values ...int) []Int {
	out := make([]Int, len(values))
	for i, v := range values {
		out[i] = Int(v)
	}

	return out
}
