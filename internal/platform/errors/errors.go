package apperrors

import "errors"

var (
	ErrInvalidInput    = errors.New("invalid input")
	ErrNotFound        = errors.New("not found")
	ErrInvalidNumber   = errors.New("invalid number")
	ErrTooManyPoints   = errors.New("too many points")
	ErrPointsRequired  = errors.New("number of points is required")
	ErrSessionInactive = errors.New("no active session")
)
