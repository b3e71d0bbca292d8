package sortable

import (
	"hash"

	"facette.io/natsort"
	"github.com/amp-labs/amp-sortedset/hashing"
)

type String string

var _ Sortable[String] = (*String)(nil)

func (s String) Equals(other String) bool {
	return string(s) == string(other)
}

func (s String) LessThan(other String) bool {
	return string(s) < string(other)
}

// UpdateHash writes the length ahead of the bytes, so strings hashed one
// after another in a container can't be regrouped into a collision.
func (s String) UpdateHash(h hash.Hash) error {
	return hashing.HashableFramedString(s).UpdateHash(h)
}

// NaturalString orders strings the way a person would read them: runs of
// digits compare numerically, so "file2" sorts before "file10".
// Equality is still byte-for-byte.
type NaturalString string

var _ Sortable[NaturalString] = (*NaturalString)(nil)

func (s NaturalString) Equals(other NaturalString) bool {
	return string(s) == string(other)
}

// LessThan falls back to byte order when natural order can't tell the two
// apart ("a01" and "a1"), keeping the ordering total.
func (s NaturalString) LessThan(other NaturalString) bool {
	a, b := string(s), string(other)

	before, after := natsort.Compare(a, b), natsort.Compare(b, a)
	if before != after {
		return before
	}

	return a < b
}

func (s NaturalString) UpdateHash(h hash.Hash) error {
	return hashing.HashableFramedString(s).UpdateHash(h)
}
