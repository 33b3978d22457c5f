package validator

import (
	"log/slog"

	"github.com/dmitrymomot/formrules/pkg/messages"
)

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the logger used for pass diagnostics. Nil is ignored.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithSettings merges s onto the default settings; empty fields keep their
// defaults.
func WithSettings(s Settings) Option {
	return func(e *Engine) {
		e.settings = e.settings.Merge(s)
	}
}

// WithMessages overrides individual catalog templates.
func WithMessages(overrides messages.Catalog) Option {
	return func(e *Engine) {
		e.settings = e.settings.Merge(Settings{Messages: overrides})
	}
}

// WithMissingHandler adds or replaces a rule that runs when a field has no value.
func WithMissingHandler(name string, h Handler) Option {
	return func(e *Engine) {
		if name != "" && h != nil {
			e.missing[name] = h
		}
	}
}

// WithPresentHandler adds or replaces a rule that runs when a field has a value.
func WithPresentHandler(name string, h Handler) Option {
	return func(e *Engine) {
		if name != "" && h != nil {
			e.present[name] = h
		}
	}
}
