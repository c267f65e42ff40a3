// Package apperror defines the error types the agenda hands to its callers.
//
// Callers match on the sentinel with errors.Is and pull the details out with
// errors.As:
//
//	var appErr *apperror.AppError
//	if errors.As(err, &appErr) && errors.Is(err, apperror.ErrValidation) {
//	    // appErr.Field names the offending field
//	}
package apperror

import "errors"

// ErrValidation marks input that failed a presence or shape check.
var ErrValidation = errors.New("validation error")

type AppError struct {
	Err     error  // sentinel, e.g. ErrValidation
	Message string // human-readable
	Field   string // optional: field causing the error
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// ValidationFailed returns an AppError wrapping ErrValidation for field.
func ValidationFailed(field, message string) *AppError {
	return &AppError{
		Err:     ErrValidation,
		Message: message,
		Field:   field,
	}
}
