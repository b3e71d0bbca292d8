// Package set provides a mutable hash set. It is the unordered companion of
// frozenset: a frozen set can be built from one, copied back into one, and,
// being hashable itself, stored in one.
package set

import (
	"errors"
	"fmt"
	"iter"
	"maps"

	"github.com/amp-labs/amp-sortedset/collectable"
	"github.com/amp-labs/amp-sortedset/hashing"
	"github.com/amp-labs/amp-sortedset/logger"
)

// ErrHashCollision is returned when two elements that are not Equal produce
// the same hash key.
var ErrHashCollision = errors.New("hashing collision")

// Set is a collection of unique elements keyed by a HashFunc. Elements
// whose keys match are compared with Equals; a match that is not equal is
// a collision and is reported, never merged or overwritten.
type Set[T collectable.Collectable[T]] interface {
	// Add inserts element. Adding an element already present is a no-op.
	Add(element T) error

	// AddAll adds each element in turn and stops at the first error.
	AddAll(elements ...T) error

	// Contains reports whether element is present.
	Contains(element T) (bool, error)

	// Size returns the number of elements.
	Size() int

	// Seq ranges over the elements in no particular order.
	Seq() iter.Seq[T]
}

type hashSet[T collectable.Collectable[T]] struct {
	hash  hashing.HashFunc
	byKey map[string]T
}

// NewSet creates an empty Set that keys its elements with hash.
func NewSet[T collectable.Collectable[T]](hash hashing.HashFunc) Set[T] {
	return &hashSet[T]{
		hash:  hash,
		byKey: make(map[string]T),
	}
}

// lookup returns element's key and whatever is already stored under it.
func (s *hashSet[T]) lookup(element T) (string, T, bool, error) {
	var stored T

	key, err := s.hash(element)
	if err != nil {
		return "", stored, false, err
	}

	stored, found := s.byKey[key]

	return key, stored, found, nil
}

func collision[T any](key string, element, stored T) error {
	return logger.AnnotateError(
		fmt.Errorf("%w: %#v and %#v", ErrHashCollision, element, stored),
		"key", key)
}

func (s *hashSet[T]) Add(element T) error {
	key, stored, found, err := s.lookup(element)
	if err != nil {
		return err
	}

	if found {
		if stored.Equals(element) {
			return nil
		}

		return collision(key, element, stored)
	}

	s.byKey[key] = element

	return nil
}

func (s *hashSet[T]) AddAll(elements ...T) error {
	for _, element := range elements {
		if err := s.Add(element); err != nil {
			return err
		}
	}

	return nil
}

func (s *hashSet[T]) Contains(element T) (bool, error) {
	key, stored, found, err := s.lookup(element)
	if err != nil || !found {
		return false, err
	}

	if !stored.Equals(element) {
		return false, collision(key, element, stored)
	}

	return true, nil
}

func (s *hashSet[T]) Size() int {
	return len(s.byKey)
}

func (s *hashSet[T]) Seq() iter.Seq[T] {
	return maps.Values(s.byKey)
}
