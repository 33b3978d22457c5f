package validator

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrymomot/formrules/pkg/messages"
)

// ValidationError is one reported violation of one field.
type ValidationError struct {
	Field   string
	Label   string
	Message string
	// Rule is the normalized rule name, empty for custom rule functions.
	Rule string
	// Key is the catalog key the message was rendered from, empty when the
	// message came from a custom rule or from the host.
	Key messages.Key
}

// Kind classifies the violation by its catalog key.
func (e ValidationError) Kind() messages.Kind {
	return messages.KindOf(e.Key)
}

// ValidationErrors is the ordered result of a validation pass: field order,
// then rule order, then emission order within a rule.
type ValidationErrors []ValidationError

func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return "validation failed"
	}

	var parts []string
	for _, err := range ve {
		parts = append(parts, fmt.Sprintf("%s: %s", err.Field, err.Message))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (ve *ValidationErrors) Add(err ValidationError) {
	*ve = append(*ve, err)
}

func (ve ValidationErrors) Has(field string) bool {
	for _, err := range ve {
		if err.Field == field {
			return true
		}
	}
	return false
}

func (ve ValidationErrors) Get(field string) []string {
	var messages []string
	for _, err := range ve {
		if err.Field == field {
			messages = append(messages, err.Message)
		}
	}
	return messages
}

func (ve ValidationErrors) GetErrors(field string) []ValidationError {
	var errors []ValidationError
	for _, err := range ve {
		if err.Field == field {
			errors = append(errors, err)
		}
	}
	return errors
}

// Fields returns the names of failing fields in first-failure order.
func (ve ValidationErrors) Fields() []string {
	var fields []string
	seen := make(map[string]bool)
	for _, err := range ve {
		if !seen[err.Field] {
			fields = append(fields, err.Field)
			seen[err.Field] = true
		}
	}
	return fields
}

func (ve ValidationErrors) IsEmpty() bool {
	return len(ve) == 0
}

// Join renders every error as "label : message" (the field name stands in for
// a missing label) and joins the lines with delimiter.
func (ve ValidationErrors) Join(delimiter string) string {
	lines := make([]string, 0, len(ve))
	for _, err := range ve {
		label := err.Label
		if label == "" {
			label = err.Field
		}
		lines = append(lines, label+" : "+err.Message)
	}
	return strings.Join(lines, delimiter)
}

// ExtractValidationErrors extracts ValidationErrors from an error.
func ExtractValidationErrors(err error) ValidationErrors {
	if err == nil {
		return nil
	}

	var validationErr ValidationErrors
	if errors.As(err, &validationErr) {
		return validationErr
	}

	return nil
}

func IsValidationError(err error) bool {
	if err == nil {
		return false
	}

	var validationErr ValidationErrors
	return errors.As(err, &validationErr)
}
