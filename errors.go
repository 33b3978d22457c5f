package formrules

import "errors"

var (
	// ErrNilForm is returned when a Form is validated without inputs to read.
	ErrNilForm = errors.New("formrules: form has no lookup")
	// ErrBindFailed wraps request binding errors reported by Guard.
	ErrBindFailed = errors.New("formrules: failed to bind request")
)
