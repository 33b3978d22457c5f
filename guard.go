package formrules

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/formrules/pkg/feedback"
	"github.com/dmitrymomot/formrules/pkg/fieldvalue"
	"github.com/dmitrymomot/formrules/pkg/logger"
	"github.com/dmitrymomot/formrules/pkg/validator"
)

// InvalidHandler responds to a submission that failed validation. The request
// context carries the bound form and the errors.
type InvalidHandler func(w http.ResponseWriter, r *http.Request, errs validator.ValidationErrors)

// GuardOption configures Guard.
type GuardOption func(*guardConfig)

type guardConfig struct {
	engine      *validator.Engine
	async       bool
	passThrough bool
	onInvalid   InvalidHandler
	logger      *slog.Logger
}

// WithGuardEngine sets the engine used by Guard.
func WithGuardEngine(e *validator.Engine) GuardOption {
	return func(c *guardConfig) {
		if e != nil {
			c.engine = e
		}
	}
}

// WithAsync runs custom rules concurrently.
func WithAsync() GuardOption {
	return func(c *guardConfig) {
		c.async = true
	}
}

// WithPassThrough lets invalid submissions reach the next handler, which
// finds the errors with ErrorsFromContext. Useful to re-render a form.
func WithPassThrough() GuardOption {
	return func(c *guardConfig) {
		c.passThrough = true
	}
}

// WithInvalidHandler replaces the default 422 JSON response.
func WithInvalidHandler(h InvalidHandler) GuardOption {
	return func(c *guardConfig) {
		if h != nil {
			c.onInvalid = h
		}
	}
}

// WithGuardLogger sets the logger for rejected requests.
func WithGuardLogger(l *slog.Logger) GuardOption {
	return func(c *guardConfig) {
		if l != nil {
			c.logger = l.With(logger.Component("guard"))
		}
	}
}

// Guard returns middleware that validates each submission before it reaches
// the next handler. form is a template: every request binds into a clone of
// it. GET and HEAD requests bind the query string, other methods the
// urlencoded or multipart body. A nil fields slice derives the rules from the
// template's native constraints.
//
// Valid submissions continue with the bound form in the request context.
// Invalid ones get a 422 JSON response (see ValidationErrorResponse) unless
// WithInvalidHandler or WithPassThrough is given. Binding failures answer 400
// or 415, custom rule failures 500. Guard panics when form is nil.
func Guard(form *fieldvalue.Form, fields []validator.Field, opts ...GuardOption) func(http.Handler) http.Handler {
	if form == nil {
		panic("formrules: Guard requires a template form")
	}

	cfg := &guardConfig{
		engine: DefaultEngine(),
		logger: logger.Discard(),
	}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.onInvalid == nil {
		cfg.onInvalid = cfg.respondInvalid
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			bound := form.Clone()
			if err := bindGuarded(r, bound); err != nil {
				cfg.fail(w, r, fmt.Errorf("%w: %w", ErrBindFailed, err))
				return
			}

			errs, err := cfg.validate(r.Context(), bound, fields)
			if err != nil {
				cfg.fail(w, r, err)
				return
			}

			r = r.WithContext(WithErrors(WithForm(r.Context(), bound), errs))
			if !errs.IsEmpty() && !cfg.passThrough {
				cfg.logger.DebugContext(r.Context(), "submission rejected",
					logger.Path(r.URL.Path),
					logger.ErrorCount(len(errs)),
					logger.Fields(errs.Fields()),
				)
				cfg.onInvalid(w, r, errs)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func bindGuarded(r *http.Request, form *fieldvalue.Form) error {
	if r.Method == http.MethodGet || r.Method == http.MethodHead {
		form.Bind(r.URL.Query())
		return nil
	}
	return fieldvalue.BindRequest(r, form)
}

func (c *guardConfig) validate(ctx context.Context, form *fieldvalue.Form, fields []validator.Field) (validator.ValidationErrors, error) {
	if c.async {
		return c.engine.ValidateAsync(ctx, form, fields)
	}
	return c.engine.Validate(ctx, form, fields)
}

func (c *guardConfig) respondInvalid(w http.ResponseWriter, r *http.Request, errs validator.ValidationErrors) {
	body := ValidationErrorResponse(feedback.AlertText(c.engine.Catalog(), errs), NewFieldErrors(errs))
	if err := WriteJSON(w, http.StatusUnprocessableEntity, body); err != nil {
		c.logger.ErrorContext(r.Context(), "failed to write response", logger.Path(r.URL.Path), logger.Error(err))
	}
}

func (c *guardConfig) fail(w http.ResponseWriter, r *http.Request, err error) {
	status, body := errorResponse(err)
	c.logger.WarnContext(r.Context(), "submission failed",
		logger.Path(r.URL.Path),
		logger.Status(status),
		logger.Error(err),
	)
	if werr := WriteJSON(w, status, body); werr != nil {
		c.logger.ErrorContext(r.Context(), "failed to write response", logger.Path(r.URL.Path), logger.Error(werr))
	}
}
