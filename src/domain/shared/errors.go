package shared

import "errors"

var (
	ErrMissingData    = errors.New("Missing data")
	ErrInvalidPayload = errors.New("Invalid data")
)
