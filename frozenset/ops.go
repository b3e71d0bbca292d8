package frozenset

import (
	"fmt"
	"slices"

	"github.com/amp-labs/amp-sortedset/assert"
)

// Slice returns a new set holding the elements at the positions sl selects.
// The selection is always rebuilt through the constructor, so a negative
// step still produces an ascending set.
func (s *SortedFrozenSet[T]) Slice(sl Slice) (*SortedFrozenSet[T], error) {
	items := s.elements()

	positions, err := sl.Positions(len(items))
	if err != nil {
		return nil, err
	}

	picked := make([]T, len(positions))
	for i, pos := range positions {
		picked[i] = items[pos]
	}

	return build(picked), nil
}

// Union returns the set of elements in s, other, or both.
func (s *SortedFrozenSet[T]) Union(other *SortedFrozenSet[T]) *SortedFrozenSet[T] {
	return build(slices.Concat(s.elements(), other.elements()))
}

// Plus is Union for an operand whose type is only known at runtime.
// It fails with errors.ErrWrongType unless other is a *SortedFrozenSet[T].
func (s *SortedFrozenSet[T]) Plus(other any) (*SortedFrozenSet[T], error) {
	return Combine[T](s, other)
}

// Combine unions two operands of unknown type. Both must be
// *SortedFrozenSet[T]; whichever side is not fails with
// errors.ErrWrongType, so Combine(a, x) and Combine(x, a) fail alike.
func Combine[T Element[T]](lhs, rhs any) (*SortedFrozenSet[T], error) {
	left, err := assert.Type[*SortedFrozenSet[T]](lhs)
	if err != nil {
		return nil, fmt.Errorf("frozenset: left operand of union: %w", err)
	}

	right, err := assert.Type[*SortedFrozenSet[T]](rhs)
	if err != nil {
		return nil, fmt.Errorf("frozenset: right operand of union: %w", err)
	}

	return left.Union(right), nil
}

// Repeat is the set analogue of repeating a sequence n times. Since a set
// can't hold duplicates, any n >= 1 yields a copy of s and any n <= 0 yields
// the empty set.
func (s *SortedFrozenSet[T]) Repeat(n int) *SortedFrozenSet[T] {
	if n <= 0 || s.IsEmpty() {
		return Empty[T]()
	}

	return &SortedFrozenSet[T]{items: slices.Clone(s.items)}
}

// Times is Repeat with the count on the left: Times(n, s) == s.Repeat(n).
func Times[T Element[T]](n int, s *SortedFrozenSet[T]) *SortedFrozenSet[T] {
	return s.Repeat(n)
}
