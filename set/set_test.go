package set

import (
	"errors"
	"hash"
	"slices"
	"testing"

	"github.com/amp-labs/amp-sortedset/hashing"
	"github.com/amp-labs/amp-sortedset/logger"
	"github.com/amp-labs/amp-sortedset/sortable"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSet(t *testing.T) {
	t.Parallel()

	t.Run("Add and Contains", func(t *testing.T) {
		t.Parallel()

		s := NewSet[sortable.String](hashing.Sha256)
		require.NoError(t, s.Add("foo"))

		contains, err := s.Contains("foo")
		require.NoError(t, err)
		assert.True(t, contains)

		contains, err = s.Contains("bar")
		require.NoError(t, err)
		assert.False(t, contains)
	})

	t.Run("duplicates are kept once", func(t *testing.T) {
		t.Parallel()

		s := NewSet[sortable.Int](hashing.Xxh3)
		require.NoError(t, s.AddAll(sortable.Ints(1, 1, 2, 1)...))
		assert.Equal(t, 2, s.Size())
	})

	t.Run("Seq", func(t *testing.T) {
		t.Parallel()

		s := NewSet[sortable.Int](hashing.XxHash64)
		require.NoError(t, s.AddAll(sortable.Ints(3, 1, 2)...))

		seen := slices.SortedFunc(s.Seq(), sortable.Compare[sortable.Int])
		assert.Equal(t, sortable.Ints(1, 2, 3), seen)
	})

	t.Run("empty", func(t *testing.T) {
		t.Parallel()

		s := NewSet[sortable.Int](hashing.Sha256)
		assert.Equal(t, 0, s.Size())
		assert.Empty(t, slices.Collect(s.Seq()))
	})
}

// collider hashes every value to the same digest.
type collider int

func (c collider) UpdateHash(h hash.Hash) error {
	_, err := h.Write([]byte("same"))

	return err
}

func (c collider) Equals(other collider) bool {
	return c == other
}

func TestSet_HashCollision(t *testing.T) {
	t.Parallel()

	s := NewSet[collider](hashing.Sha256)
	require.NoError(t, s.Add(1))
	require.NoError(t, s.Add(1))

	err := s.Add(2)
	require.ErrorIs(t, err, ErrHashCollision)
	assert.Equal(t, 1, s.Size())

	attrs := logger.ErrorAttrs(err)
	require.Len(t, attrs, 1)
	assert.Equal(t, "key", attrs[0].Key)

	contains, err := s.Contains(2)
	require.ErrorIs(t, err, ErrHashCollision)
	assert.False(t, contains)

	stored := slices.Collect(s.Seq())
	assert.Equal(t, []collider{1}, stored)
}

// failing always fails to hash.
type failing int

var errHash = errors.New("no hash")

func (f failing) UpdateHash(hash.Hash) error { return errHash }

func (f failing) Equals(other failing) bool { return f == other }

func TestSet_HashError(t *testing.T) {
	t.Parallel()

	s := NewSet[failing](hashing.Sha256)

	require.ErrorIs(t, s.Add(1), errHash)
	require.ErrorIs(t, s.AddAll(2, 3), errHash)
	assert.Equal(t, 0, s.Size())

	_, err := s.Contains(1)
	require.ErrorIs(t, err, errHash)
}
