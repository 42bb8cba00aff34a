package isogrid

import "errors"

// ErrInvalidSettings is wrapped by SolverSettings.Validate for any
// out-of-range configuration value.
var ErrInvalidSettings = errors.New("isogrid: invalid solver settings")
