package frozenset

import (
	"fmt"
	"math"

	"github.com/amp-labs/amp-sortedset/errors"
	"github.com/amp-labs/amp-sortedset/logger"
	"github.com/amp-labs/amp-sortedset/optional"
)

// Slice selects positions of a sequence: a half-open [Start, Stop) range
// walked Step positions at a time. Omitted bounds mean "from the beginning"
// and "to the end" (reversed for a negative Step); negative bounds count
// from the end. An omitted Step is 1.
//
// The zero Slice selects everything.
type Slice struct {
	Start optional.Value[int]
	Stop  optional.Value[int]
	Step  optional.Value[int]
}

// SliceAll selects every position, like s[:].
func SliceAll() Slice {
	return Slice{}
}

// SliceFrom selects positions from start to the end, like s[start:].
func SliceFrom(start int) Slice {
	return Slice{Start: optional.Some(start)}
}

// SliceTo selects positions before stop, like s[:stop].
func SliceTo(stop int) Slice {
	return Slice{Stop: optional.Some(stop)}
}

// SliceRange selects positions in [start, stop), like s[start:stop].
func SliceRange(start, stop int) Slice {
	return Slice{Start: optional.Some(start), Stop: optional.Some(stop)}
}

// WithStep returns a copy of sl that visits every step-th position.
func (sl Slice) WithStep(step int) Slice {
	sl.Step = optional.Some(step)

	return sl
}

// Indices resolves sl against a sequence of the given length into concrete
// start, stop and step values. Out-of-range bounds are clamped, never
// rejected; the only error is a zero step (errors.ErrInvalidArgument).
//
// The selected positions are start, start+step, ... while they remain
// before stop (after stop, for a negative step).
func (sl Slice) Indices(length int) (start, stop, step int, err error) {
	step = sl.Step.GetOrElse(1)
	if step == 0 {
		return 0, 0, 0, logger.AnnotateError(
			fmt.Errorf("%w: slice step cannot be zero", errors.ErrInvalidArgument),
			"slice", sl.String(), "length", length)
	}

	lower, upper := 0, length
	if step < 0 {
		lower, upper = -1, length-1
	}

	clamp := func(bound optional.Value[int], fallback int) int {
		v, ok := bound.Get()
		if !ok {
			return fallback
		}

		if v < 0 {
			v += length
			if v < lower {
				v = lower
			}
		} else if v > upper {
			v = upper
		}

		return v
	}

	if step > 0 {
		return clamp(sl.Start, lower), clamp(sl.Stop, upper), step, nil
	}

	return clamp(sl.Start, upper), clamp(sl.Stop, lower), step, nil
}

// Positions returns the concrete indexes sl selects in a sequence of the
// given length, in visiting order.
func (sl Slice) Positions(length int) ([]int, error) {
	start, stop, step, err := sl.Indices(length)
	if err != nil {
		return nil, err
	}

	count, _ := stepCount(start, stop, step)

	out := make([]int, count)
	for k := range out {
		out[k] = stepAt(start, step, k)
	}

	return out, nil
}

// stepCount returns how many of start, start+step, ... come before stop
// (after stop, for a negative step). The distance and stride are taken in
// uint so that neither overflows for any int arguments. ok is false when
// the count itself does not fit in an int.
func stepCount(start, stop, step int) (count int, ok bool) {
	var distance, stride uint

	switch {
	case step > 0 && start < stop:
		distance, stride = uint(stop)-uint(start), uint(step)
	case step < 0 && start > stop:
		distance, stride = uint(start)-uint(stop), -uint(step) //nolint:gosec
	default:
		return 0, true
	}

	n := (distance-1)/stride + 1
	if n > math.MaxInt {
		return 0, false
	}

	return int(n), true
}

// stepAt returns start + k*step. For k below stepCount the true value lies
// between start and stop, so the wrapping uint arithmetic lands on it.
func stepAt(start, step, k int) int {
	return int(uint(start) + uint(k)*uint(step)) //nolint:gosec
}

// String renders sl in start:stop:step form, leaving omitted parts blank.
func (sl Slice) String() string {
	out := sl.Start.Text() + ":" + sl.Stop.Text()

	if sl.Step.NonEmpty() {
		out += ":" + sl.Step.Text()
	}

	return out
}
