package formrules

import (
	"context"
	"sync"

	"github.com/dmitrymomot/formrules/pkg/feedback"
	"github.com/dmitrymomot/formrules/pkg/fieldvalue"
	"github.com/dmitrymomot/formrules/pkg/validator"
)

// Hooks customize how a submission's outcome is presented. A nil hook falls
// back to the form's feedback.Markup presenter.
type Hooks struct {
	// SetError presents one message of a field.
	SetError func(name, message string)
	// ClearError removes presented errors of a field, or of all fields when
	// name is empty.
	ClearError func(name string)
	// FocusError moves focus to the first field with an error.
	FocusError func(name string)
	// Result sees the outcome and the errors of every pass and may override
	// the outcome.
	Result func(ok bool, errs validator.ValidationErrors) bool
	// Alert presents the plain-text summary of the alert variants.
	Alert func(message string)
}

// Form ties bound inputs and their field rules to an Engine and presents the
// result of each pass through Hooks.
type Form struct {
	lookup fieldvalue.Lookup
	fields []validator.Field
	engine *validator.Engine
	hooks  Hooks
	markup *feedback.Markup

	mu   sync.RWMutex
	errs validator.ValidationErrors
}

// Option configures a Form.
type Option func(*Form)

// WithEngine sets the engine. Forms share a default engine otherwise.
func WithEngine(e *validator.Engine) Option {
	return func(f *Form) {
		if e != nil {
			f.engine = e
		}
	}
}

// WithHooks sets the presentation hooks.
func WithHooks(h Hooks) Option {
	return func(f *Form) {
		f.hooks = h
	}
}

// WithMarkup sets the presenter used for nil hooks.
func WithMarkup(m *feedback.Markup) Option {
	return func(f *Form) {
		if m != nil {
			f.markup = m
		}
	}
}

var (
	defaultEngineOnce sync.Once
	defaultEngine     *validator.Engine
)

// DefaultEngine returns the engine shared by forms created without
// WithEngine.
func DefaultEngine() *validator.Engine {
	defaultEngineOnce.Do(func() {
		defaultEngine = validator.New()
	})
	return defaultEngine
}

// New creates a Form over lookup. A nil fields slice derives the rules from
// the native constraints of the inputs (see validator.DeriveFields).
func New(lookup fieldvalue.Lookup, fields []validator.Field, opts ...Option) *Form {
	f := &Form{
		lookup: lookup,
		fields: fields,
		engine: DefaultEngine(),
	}
	for _, opt := range opts {
		opt(f)
	}
	if f.markup == nil {
		f.markup = feedback.NewMarkup(lookup, f.engine.Catalog())
	}
	return f
}

// Markup returns the default presenter.
func (f *Form) Markup() *feedback.Markup {
	return f.markup
}

// Errors returns the errors of the last completed pass.
func (f *Form) Errors() validator.ValidationErrors {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.errs
}

// Validate clears presented errors, runs every rule and presents each error
// inline, focusing the first one. It reports whether the submission may
// proceed. The error is non-nil only when a custom rule failed.
func (f *Form) Validate(ctx context.Context) (bool, error) {
	if f.lookup == nil {
		return false, ErrNilForm
	}
	f.clearError("")
	errs, err := f.engine.Validate(ctx, f.lookup, f.fields)
	if err != nil {
		return false, err
	}
	return f.present(errs), nil
}

// AsyncValidate is Validate with custom rules running concurrently.
func (f *Form) AsyncValidate(ctx context.Context) (bool, error) {
	if f.lookup == nil {
		return false, ErrNilForm
	}
	f.clearError("")
	errs, err := f.engine.ValidateAsync(ctx, f.lookup, f.fields)
	if err != nil {
		return false, err
	}
	return f.present(errs), nil
}

// ValidateAlert runs every rule and presents the errors as one alert summary:
// the VALIDATE_ERROR headline and a "label : message" line per error. Inline
// errors are left untouched.
func (f *Form) ValidateAlert(ctx context.Context) (bool, error) {
	if f.lookup == nil {
		return false, ErrNilForm
	}
	errs, err := f.engine.Validate(ctx, f.lookup, f.fields)
	if err != nil {
		return false, err
	}
	return f.presentAlert(errs), nil
}

// AsyncValidateAlert is ValidateAlert with custom rules running concurrently.
func (f *Form) AsyncValidateAlert(ctx context.Context) (bool, error) {
	if f.lookup == nil {
		return false, ErrNilForm
	}
	errs, err := f.engine.ValidateAsync(ctx, f.lookup, f.fields)
	if err != nil {
		return false, err
	}
	return f.presentAlert(errs), nil
}

func (f *Form) present(errs validator.ValidationErrors) bool {
	f.store(errs)
	for _, e := range errs {
		f.setError(e.Field, e.Message)
	}
	if len(errs) > 0 {
		f.focusError(errs[0].Field)
	}
	return f.result(errs.IsEmpty(), errs)
}

func (f *Form) presentAlert(errs validator.ValidationErrors) bool {
	f.store(errs)
	if len(errs) > 0 {
		f.alert(feedback.AlertText(f.engine.Catalog(), errs))
		f.focusError(errs[0].Field)
	}
	return f.result(errs.IsEmpty(), errs)
}

func (f *Form) store(errs validator.ValidationErrors) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.errs = errs
}

func (f *Form) result(ok bool, errs validator.ValidationErrors) bool {
	if f.hooks.Result != nil {
		return f.hooks.Result(ok, errs)
	}
	return ok
}

func (f *Form) setError(name, message string) {
	if f.hooks.SetError != nil {
		f.hooks.SetError(name, message)
		return
	}
	f.markup.SetError(name, message)
}

func (f *Form) clearError(name string) {
	if f.hooks.ClearError != nil {
		f.hooks.ClearError(name)
		return
	}
	f.markup.ClearError(name)
}

func (f *Form) focusError(name string) {
	if f.hooks.FocusError != nil {
		f.hooks.FocusError(name)
		return
	}
	f.markup.FocusError(name)
}

func (f *Form) alert(message string) {
	if f.hooks.Alert != nil {
		f.hooks.Alert(message)
		return
	}
	f.markup.Alert(message)
}
