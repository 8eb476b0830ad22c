package apperrors

import "errors"

var (
	ErrInvalidInput     = errors.New("invalid input")
	ErrNotFound         = errors.New("not found")
	ErrUnauthenticated  = errors.New("not authenticated")
	ErrUnavailable      = errors.New("analytics api unavailable")
	ErrMalformedSession = errors.New("malformed persisted session")
)
