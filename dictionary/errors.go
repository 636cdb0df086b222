package dictionary

import "errors"

// ErrUserUnitsDisabled is returned by AddUserDefinedUnit when user-defined
// unit registration has been disabled via DisableUserDefinedUnits.
var ErrUserUnitsDisabled = errors.New("dictionary: user-defined units disabled")
