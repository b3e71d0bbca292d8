// Package frozenset provides SortedFrozenSet, an immutable container that is
// a set and a sorted sequence at the same time.
//
// # Overview
//
// A SortedFrozenSet is built once from any collection of elements. Duplicates
// are dropped and the rest are sorted, after which the set never changes:
//
//	s := frozenset.New(sortable.Ints(45, 76, 23, 45)...)
//	fmt.Println(s) // SortedFrozenSet(items=[23, 45, 76])
//
// Because the elements are kept in order, the set also supports positional
// access (Get, with negative indexes counting from the end), IndexOf, and
// Python-style slicing through the [Slice] descriptor:
//
//	first, _ := s.Get(0)                         // 23
//	last, _ := s.Get(-1)                         // 76
//	head, _ := s.Slice(frozenset.SliceTo(2))     // SortedFrozenSet(items=[23, 45])
//	odd, _ := s.Slice(frozenset.SliceAll().WithStep(2))
//
// Membership and IndexOf use binary search and run in O(log n).
//
// # Deriving sets
//
// Slice, Union and Repeat return new sets with their own storage; the source
// is never shared or modified. Plus and Combine accept operands of any type
// and report errors.ErrWrongType for anything that is not a set of the same
// element type, while EqualsAny treats such values as simply unequal.
//
// # Elements
//
// Elements must implement [Element]: Equals and LessThan forming a total
// order, plus hashing.Hashable. The wrappers in the sortable package
// (sortable.Int, sortable.String, ...) are ready to use. A SortedFrozenSet is
// itself an Element, so sets of sets work, and it satisfies
// collectable.Collectable, so it can be stored in a hash-based set.Set.
//
// # Errors
//
// Failures wrap the sentinels in the errors package (ErrIndexOutOfRange,
// ErrNotFound, ErrWrongType, ErrInvalidArgument) and carry slog attributes
// that logger.NewErrorHandler will surface when the error is logged.
package frozenset
