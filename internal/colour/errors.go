package colour

import "errors"

// Extraction failures surface as errors wrapping one of these sentinels so
// callers can branch with errors.Is. The engine never retries and never
// returns partial results.
var (
	// ErrInvalidParameters reports extraction options outside their allowed
	// ranges.
	ErrInvalidParameters = errors.New("invalid extraction parameters")

	// ErrEnvironmentUnavailable reports that no usable pixel surface was
	// provided: a nil or truncated buffer, or non-positive dimensions.
	ErrEnvironmentUnavailable = errors.New("pixel surface unavailable")
)
