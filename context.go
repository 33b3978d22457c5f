package formrules

import (
	"context"

	"github.com/dmitrymomot/formrules/pkg/fieldvalue"
	"github.com/dmitrymomot/formrules/pkg/validator"
)

// ContextKey is a key for context values.
// It should be created as a package-level variable.
type ContextKey struct{ name string }

// NewContextKey creates a new context key.
// The name should be unique within your application.
//
// Example:
//
//	var signupKey = formrules.NewContextKey("signup")
func NewContextKey(name string) *ContextKey {
	return &ContextKey{name}
}

func (k *ContextKey) String() string {
	return "formrules context key " + k.name
}

// ContextValue retrieves a typed value from the context.
// Returns the zero value of T if the key is not present or has a different type.
func ContextValue[T any](ctx context.Context, key any) T {
	val, _ := ctx.Value(key).(T)
	return val
}

var (
	formKey   = NewContextKey("form")
	errorsKey = NewContextKey("errors")
)

// WithForm stores the bound form in ctx.
func WithForm(ctx context.Context, form *fieldvalue.Form) context.Context {
	return context.WithValue(ctx, formKey, form)
}

// FormFromContext returns the form bound by Guard, or nil.
func FormFromContext(ctx context.Context) *fieldvalue.Form {
	return ContextValue[*fieldvalue.Form](ctx, formKey)
}

// WithErrors stores validation errors in ctx.
func WithErrors(ctx context.Context, errs validator.ValidationErrors) context.Context {
	return context.WithValue(ctx, errorsKey, errs)
}

// ErrorsFromContext returns the validation errors stored by Guard. It is
// empty when the submission passed.
func ErrorsFromContext(ctx context.Context) validator.ValidationErrors {
	return ContextValue[validator.ValidationErrors](ctx, errorsKey)
}
