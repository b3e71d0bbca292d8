// Package sortable provides wrapper types for primitive types that implement
// the Sortable interface, enabling their use as elements of sorted containers.
//
// # Overview
//
// The sortable package defines the [Sortable] interface and provides ready-to-use
// implementations for common primitive types: [Int], [Byte], [Float], [String]
// and [NaturalString]. Every wrapper also implements
// [github.com/amp-labs/amp-sortedset/hashing.Hashable], which is what
// [github.com/amp-labs/amp-sortedset/frozenset.SortedFrozenSet] requires of
// its elements.
//
// The Sortable interface extends [github.com/amp-labs/amp-sortedset/compare.Comparable]
// by adding a LessThan method, providing both equality comparison and ordering.
// [Compare] turns the pair into the three-way function expected by the
// slices package.
//
// # Usage
//
//	s := frozenset.New(sortable.Ints(42, 10, 25, 10)...)
//
//	// Elements are returned in sorted order: 10, 25, 42
//	for val := range s.All() {
//	    fmt.Println(int(val))
//	}
//
// # Creating Custom Sortable Types
//
// To create a custom sortable type, implement the Sortable interface:
//
//	type MyType struct {
//	    Priority int
//	    Name     string
//	}
//
//	func (m MyType) Equals(other MyType) bool {
//	    return m.Priority == other.Priority && m.Name == other.Name
//	}
//
//	func (m MyType) LessThan(other MyType) bool {
//	    if m.Priority != other.Priority {
//	        return m.Priority < other.Priority
//	    }
//	    return m.Name < other.Name
//	}
//
// Equals and LessThan must agree: exactly one of a.LessThan(b), b.LessThan(a)
// and a.Equals(b) holds for any pair. Sorted containers assume this and will
// panic on construction if it is violated.
//
// # Thread Safety
//
// The wrapper types in this package are value types and are inherently thread-safe.
package sortable
