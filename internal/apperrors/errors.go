package apperrors

import "errors"

// ErrInvalidArgument indicates that an input value is outside the domain an operation accepts.
var ErrInvalidArgument = errors.New("invalid argument")

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")
