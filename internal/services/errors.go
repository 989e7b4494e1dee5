package services

import "errors"

// ValidationError marks a user-input failure caught before any network
// request goes out; handlers surface it as a warning toast.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func validationErr(message string) *ValidationError {
	return &ValidationError{Message: message}
}

// IsValidation reports whether err is an input-validation failure.
func IsValidation(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}
