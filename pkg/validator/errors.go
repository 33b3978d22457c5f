package validator

import "errors"

var (
	// ErrValidationFailed is returned by callers that surface a non-empty
	// ValidationErrors as a plain error.
	ErrValidationFailed = errors.New("validation failed")

	// ErrRuleFailed wraps an error returned by a custom rule function. The
	// pass is aborted and no partial result is returned.
	ErrRuleFailed = errors.New("custom rule failed")

	// ErrRulePanicked is returned when a custom rule panics during a
	// concurrent pass.
	ErrRulePanicked = errors.New("custom rule panicked")

	// ErrInvalidFieldSet is returned when a field set definition cannot be
	// decoded.
	ErrInvalidFieldSet = errors.New("invalid field set definition")

	// ErrUnsupportedFormat is returned for field set files with an unknown
	// extension.
	ErrUnsupportedFormat = errors.New("unsupported field set format")
)
