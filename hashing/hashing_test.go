package hashing

import (
	"errors"
	"hash"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSha256(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    Hashable
		expected string
	}{
		{
			name:     "empty string",
			input:    HashableString(""),
			expected: "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855",
		},
		{
			name:     "simple string",
			input:    HashableString("hello"),
			expected: "2cf24dba5fb0a30e26e83b2ac5b9e29e1b161e5c1fa7425e73043362938b9824",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			result, err := Sha256(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestHashFuncs_DigestLength(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		fn     HashFunc
		hexLen int
	}{
		{"sha256", Sha256, 64},
		{"xxh3", Xxh3, 16},
		{"xxhash64", XxHash64, 16},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			result, err := tt.fn(HashableString("hello"))
			require.NoError(t, err)
			assert.Len(t, result, tt.hexLen)
		})
	}
}

func TestHashFuncs_Consistency(t *testing.T) {
	t.Parallel()

	for name, fn := range map[string]HashFunc{"sha256": Sha256, "xxh3": Xxh3, "xxhash64": XxHash64} {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			hash1, err := fn(HashableString("consistency test"))
			require.NoError(t, err)

			hash2, err := fn(HashableString("consistency test"))
			require.NoError(t, err)

			hash3, err := fn(HashableString("something else"))
			require.NoError(t, err)

			assert.Equal(t, hash1, hash2)
			assert.NotEqual(t, hash1, hash3)
		})
	}
}

// mockHashable is a Hashable that always fails.
type mockHashable struct {
	err error
}

func (m mockHashable) UpdateHash(_ hash.Hash) error {
	return m.err
}

var errHashTest = errors.New("hash error")

func TestHashFunctions_Error(t *testing.T) {
	t.Parallel()

	mock := mockHashable{err: errHashTest}

	for name, fn := range map[string]HashFunc{"sha256": Sha256, "xxh3": Xxh3, "xxhash64": XxHash64} {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			result, err := fn(mock)
			require.ErrorIs(t, err, errHashTest)
			assert.Empty(t, result)
		})
	}
}

// mockHash is a test implementation of hash.Hash for testing UpdateHash methods.
type mockHash struct {
	data []byte
}

func (m *mockHash) Write(p []byte) (n int, err error) {
	m.data = append(m.data, p...)

	return len(p), nil
}

func (m *mockHash) Sum(b []byte) []byte {
	return append(b, m.data...)
}

func (m *mockHash) Reset() {
	m.data = nil
}

func (m *mockHash) Size() int {
	return len(m.data)
}

func (m *mockHash) BlockSize() int {
	return 64
}

func TestHashable_UpdateHash(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    Hashable
		expected []byte
	}{
		{"string", HashableString("hello"), []byte("hello")},
		{"framed string", HashableFramedString("hi"), []byte{2, 0, 0, 0, 0, 0, 0, 0, 'h', 'i'}},
		{"framed empty string", HashableFramedString(""), []byte{0, 0, 0, 0, 0, 0, 0, 0}},
		{"int", HashableInt(258), []byte{2, 1, 0, 0, 0, 0, 0, 0}},
		{"negative int", HashableInt(-1), []byte{255, 255, 255, 255, 255, 255, 255, 255}},
		{"uint64", HashableUint64(1 << 8), []byte{0, 1, 0, 0, 0, 0, 0, 0}},
		{"uint8", HashableUint8(7), []byte{7}},
		{"float zero", HashableFloat64(0), []byte{0, 0, 0, 0, 0, 0, 0, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			h := &mockHash{}
			require.NoError(t, tt.input.UpdateHash(h))
			assert.Equal(t, tt.expected, h.data)
		})
	}
}

func TestHashableFloat64_NegativeZero(t *testing.T) {
	t.Parallel()

	pos, err := Sha256(HashableFloat64(0))
	require.NoError(t, err)

	neg, err := Sha256(HashableFloat64(math.Copysign(0, -1)))
	require.NoError(t, err)

	assert.Equal(t, pos, neg)
}

func TestHashableFramedString_Boundaries(t *testing.T) {
	t.Parallel()

	feed := func(values ...string) []byte {
		h := &mockHash{}
		for _, v := range values {
			require.NoError(t, HashableFramedString(v).UpdateHash(h))
		}

		return h.data
	}

	assert.NotEqual(t, feed("a", "b\x1fc"), feed("a\x1fb", "c"))
	assert.NotEqual(t, feed("ab"), feed("a", "b"))
	assert.NotEqual(t, feed("", "a"), feed("a", ""))
	assert.Equal(t, feed("a", "b"), feed("a", "b"))
}
