package sortable

import (
	"hash"

	"github.com/amp-labs/amp-sortedset/hashing"
)

// Float is a sortable wrapper type for float64.
// NaN is neither less than nor equal to anything, including itself, which
// breaks the total ordering sorted containers rely on; don't store it.
type Float float64

var _ Sortable[Float] = (*Float)(nil)

func (f Float) Equals(other Float) bool {
	return float64(f) == float64(other)
}

func (f Float) LessThan(other Float) bool {
	return float64(f) < float64(other)
}

func (f Float) UpdateHash(h hash.Hash) error {
	return hashing.HashableFloat64(f).UpdateHash(h)
}
