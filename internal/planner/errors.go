package planner

import "errors"

// Sentinel errors returned by trip operations. Callers should use
// errors.Is to distinguish precondition failures from provider errors.
var (
	ErrTripNotFound      = errors.New("trip not found")
	ErrStopNotFound      = errors.New("stop not found")
	ErrStopNameRequired  = errors.New("stop name required")
	ErrNotEnoughStops    = errors.New("at least two stops required")
	ErrSearchDisabled    = errors.New("search is disabled for this trip")
	ErrSearchUnavailable = errors.New("no search source available")
	ErrInvalidSelection  = errors.New("invalid search result selection")
)
