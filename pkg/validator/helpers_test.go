package validator_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formrules/pkg/fieldvalue"
	"github.com/dmitrymomot/formrules/pkg/messages"
	"github.com/dmitrymomot/formrules/pkg/validator"
)

func text(name, value string) fieldvalue.Input {
	return fieldvalue.Input{Name: name, Type: "text", Value: value}
}

func box(name, value string, checked bool) fieldvalue.Input {
	return fieldvalue.Input{Name: name, Type: fieldvalue.TypeCheckbox, Value: value, Checked: checked}
}

func validate(t *testing.T, form *fieldvalue.Form, fields ...validator.Field) validator.ValidationErrors {
	t.Helper()
	errs, err := validator.New().Validate(context.Background(), form, fields)
	require.NoError(t, err)
	return errs
}

// single validates one text field holding value against rules.
func single(t *testing.T, value string, rules ...any) validator.ValidationErrors {
	t.Helper()
	return validate(t, fieldvalue.NewForm(text("f", value)), validator.Field{Name: "f", Rules: rules})
}

func keysOf(errs validator.ValidationErrors) []messages.Key {
	var keys []messages.Key
	for _, e := range errs {
		keys = append(keys, e.Key)
	}
	return keys
}
