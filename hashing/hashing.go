// Package hashing lets values describe themselves to a hash.Hash, so that
// containers can hash them without knowing their concrete types.
package hashing

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"hash"
	"math"

	"github.com/OneOfOne/xxhash"
	"github.com/zeebo/xxh3"
)

// HashFunc is a function that takes a Hashable object
// and returns a string representation of its hashing.
// As an example, the Sha256 function is a HashFunc.
// This lets us talk about hashing functions in a generic way.
type HashFunc func(hashable Hashable) (string, error)

// Hashable is an interface that allows an object to update
// a hash.Hash with its contents. This is useful for hashing
// objects so that they can be easily compared.
type Hashable interface {
	UpdateHash(h hash.Hash) error
}

// Sha256 returns the SHA256 hashing of the given Hashable
// as a hex-encoded string. If the Hashable fails to
// update the hashing, an error is returned.
func Sha256(hashable Hashable) (string, error) {
	return hexDigest(sha256.New(), hashable)
}

// Xxh3 returns the 64-bit XXH3 hashing of the given Hashable
// as a hex-encoded string. Much faster than Sha256, but not
// suitable where collision resistance against an adversary matters.
func Xxh3(hashable Hashable) (string, error) {
	return hexDigest(xxh3.New(), hashable)
}

// XxHash64 returns the 64-bit xxHash of the given Hashable
// as a hex-encoded string.
func XxHash64(hashable Hashable) (string, error) {
	return hexDigest(xxhash.New64(), hashable)
}

func hexDigest(h hash.Hash, hashable Hashable) (string, error) {
	if err := hashable.UpdateHash(h); err != nil {
		return "", err
	}

	return hex.EncodeToString(h.Sum(nil)), nil
}

type HashableString string

func (s HashableString) UpdateHash(h hash.Hash) error {
	_, err := h.Write([]byte(s))

	return err
}

// HashableFramedString writes its length ahead of its bytes. Values written
// back to back can then never run into each other: "a", "bc" and "ab", "c"
// feed different input.
type HashableFramedString string

func (s HashableFramedString) UpdateHash(h hash.Hash) error {
	if err := HashableInt(len(s)).UpdateHash(h); err != nil {
		return err
	}

	return HashableString(s).UpdateHash(h)
}

// HashableInt hashes as a little-endian 64-bit value, so the result
// doesn't depend on the platform's int size.
type HashableInt int

func (i HashableInt) UpdateHash(h hash.Hash) error {
	return HashableUint64(uint64(i)).UpdateHash(h) //nolint:gosec
}

type HashableUint64 uint64

func (u HashableUint64) UpdateHash(h hash.Hash) error {
	_, err := h.Write(binary.LittleEndian.AppendUint64(nil, uint64(u)))

	return err
}

type HashableUint8 uint8

func (u HashableUint8) UpdateHash(h hash.Hash) error {
	_, err := h.Write([]byte{byte(u)})

	return err
}

// HashableFloat64 hashes the IEEE 754 bit pattern. Negative zero is folded
// into positive zero so that values which compare equal hash equally.
type HashableFloat64 float64

func (f HashableFloat64) UpdateHash(h hash.Hash) error {
	v := float64(f)
	if v == 0 {
		v = 0
	}

	return HashableUint64(math.Float64bits(v)).UpdateHash(h)
}
