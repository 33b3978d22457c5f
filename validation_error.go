package formrules

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/dmitrymomot/formrules/pkg/validator"
)

// FieldErrors groups validation messages by field name.
// It's based on url.Values to leverage built-in string slice handling.
type FieldErrors url.Values

// NewFieldErrors groups errs by field, keeping message order per field.
func NewFieldErrors(errs validator.ValidationErrors) FieldErrors {
	fe := make(FieldErrors, len(errs))
	for _, e := range errs {
		fe.Add(e.Field, e.Message)
	}
	return fe
}

// Error implements the error interface.
// Returns a human-readable error message summarizing validation failures.
func (e FieldErrors) Error() string {
	if len(e) == 0 {
		return "validation failed"
	}

	var parts []string
	for field, messages := range e {
		if len(messages) > 0 {
			parts = append(parts, fmt.Sprintf("%s: %s", field, messages[0]))
		}
	}

	return fmt.Sprintf("validation error: %s", strings.Join(parts, ", "))
}

// Add adds an error message for a field.
func (e FieldErrors) Add(field, message string) {
	url.Values(e).Add(field, message)
}

// Get returns the first error message for a field.
func (e FieldErrors) Get(field string) string {
	return url.Values(e).Get(field)
}

// Has checks if a field has any errors.
func (e FieldErrors) Has(field string) bool {
	return len(e[field]) > 0
}

// IsEmpty returns true if there are no validation errors.
func (e FieldErrors) IsEmpty() bool {
	return len(e) == 0
}
