package featureflag

import "errors"

var (
	ErrFlagUnavailable  = errors.New("feature flag store unavailable")
	ErrInvalidFlagValue = errors.New("invalid feature flag value")
)
