package domain

import "errors"

var (
	// ErrNotFound will throw if the requested item is not exists
	ErrNotFound = errors.New("requested item is not found")
	// ErrBadParamInput will throw if the given config or params is not valid
	ErrBadParamInput = errors.New("given param is not valid")

	ErrRateUnavailable    = errors.New("flow usd rate unavailable")
	ErrInvalidRate        = errors.New("invalid flow usd rate")
	ErrIdentityUnresolved = errors.New("asset identity unresolved")
	ErrScriptReturnedNil  = errors.New("script returned nil")
	ErrStatusCodeNotOk    = errors.New("status code not ok")
	ErrNoFormatter        = errors.New("no formatter for collection")
	ErrIncompleteMatrix   = errors.New("threshold matrix incomplete")
)
