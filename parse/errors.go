package parse

import "errors"

// ErrInvalid is returned when no phase of the parser can resolve the
// input string to a unit. Every phase failure
// collapses to this single sentinel error at the outer caller; only
// unit.InvalidUnit()'s NaN multiplier distinguishes it from the
// arithmetic-overflow sentinel.
var ErrInvalid = errors.New("parse: could not resolve unit from string")
