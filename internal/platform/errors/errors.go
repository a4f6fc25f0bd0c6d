package apperrors

import "errors"

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
	ErrCityNotFound = errors.New("city not found")
	ErrUnknownScope = errors.New("unknown override scope")
	ErrNoGenerator  = errors.New("text generator is not configured")
)
