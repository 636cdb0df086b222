package dims

import "errors"

// ErrOutOfRange is returned when a requested exponent value does not fit
// in its packed field's signed range.
var ErrOutOfRange = errors.New("dims: exponent out of range")

// ErrNotRootable is returned by Root when the tuple cannot admit the
// requested root: either an exponent is not evenly divisible by n, or the
// tuple carries a dimension outside the SI-mechanical subspace that roots
// are restricted to.
var ErrNotRootable = errors.New("dims: tuple is not rootable by n")
