// Package errors holds the sentinel errors shared by the collection packages.
// Callers should match them with the standard library's errors.Is.
package errors

import "errors"

var (
	// ErrWrongType is returned when an operand is not of the type an operation requires,
	// for example when combining a frozen set with a value that isn't a frozen set
	// of the same element type.
	ErrWrongType = errors.New("wrong type")

	// ErrIndexOutOfRange is returned by positional access outside [-n, n-1].
	// Indexes are never clamped.
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrNotFound is returned when a lookup by value finds no such element.
	ErrNotFound = errors.New("item not found")

	// ErrInvalidArgument is returned for arguments that can never produce a result,
	// such as a zero slice step.
	ErrInvalidArgument = errors.New("invalid argument")
)
