// Package assert provides type assertion utilities with error handling,
// and invariant assertions that panic.
//
// The invariant assertion True is compiled out when building with
// the assertions_disabled tag. Type is always active since it returns an
// error rather than panicking.
package assert

import (
	"fmt"

	"github.com/amp-labs/amp-sortedset/errors"
)

// Type asserts that the given value is of the expected type T.
// If the assertion fails, it returns an error indicating the mismatch.
//
//nolint:ireturn
func Type[T any](val any) (T, error) {
	of, ok := val.(T)
	if !ok {
		return of, fmt.Errorf("%w: expected type %T, but received %T", errors.ErrWrongType, of, val)
	}

	return of, nil
}
