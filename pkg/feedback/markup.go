package feedback

import (
	"html/template"
	"log/slog"
	"slices"
	"strings"
	"sync"

	"github.com/dmitrymomot/formrules/pkg/fieldvalue"
	"github.com/dmitrymomot/formrules/pkg/logger"
	"github.com/dmitrymomot/formrules/pkg/messages"
)

// Bootstrap class names.
const (
	InvalidClass  = "is-invalid"
	FeedbackClass = "invalid-feedback"
)

// Markup records the error state of a form and renders it as Bootstrap
// feedback markup. Its SetError, ClearError, FocusError and Alert methods
// match the presentation hooks of a form, so it can back them directly.
// It is safe for concurrent use.
type Markup struct {
	mu      sync.RWMutex
	lookup  fieldvalue.Lookup
	catalog messages.Catalog
	logger  *slog.Logger

	order   []string
	errors  map[string][]string
	focused string
	alert   string
}

// MarkupOption configures a Markup.
type MarkupOption func(*Markup)

// WithLogger sets the logger for missing-field warnings. Nil is ignored.
func WithLogger(l *slog.Logger) MarkupOption {
	return func(m *Markup) {
		if l != nil {
			m.logger = l
		}
	}
}

// NewMarkup creates a presenter for the inputs reachable through lookup.
// catalog supplies the NOT_EXISTS_FIELD warning; nil means the Japanese
// defaults.
func NewMarkup(lookup fieldvalue.Lookup, catalog messages.Catalog, opts ...MarkupOption) *Markup {
	if catalog == nil {
		catalog = messages.Japanese()
	}
	m := &Markup{
		lookup:  lookup,
		catalog: catalog,
		logger:  logger.Discard(),
		errors:  make(map[string][]string),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// SetError appends message to the errors of the named field.
func (m *Markup) SetError(name, message string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.errors[name]; !ok {
		m.order = append(m.order, name)
	}
	m.errors[name] = append(m.errors[name], message)
}

// ClearError removes the errors of the named field, or of every field when
// name is empty. The focus and the last alert go with a full clear.
func (m *Markup) ClearError(name string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if name == "" {
		m.order = nil
		m.errors = make(map[string][]string)
		m.focused = ""
		m.alert = ""
		return
	}
	delete(m.errors, name)
	m.order = slices.DeleteFunc(m.order, func(n string) bool { return n == name })
	if m.focused == name {
		m.focused = ""
	}
}

// FocusError marks the named field as the one to focus. A name without inputs
// is not focused; a NOT_EXISTS_FIELD warning is logged instead.
func (m *Markup) FocusError(name string) {
	if m.lookup == nil || len(m.lookup.LookupByName(name)) == 0 {
		m.logger.Warn(m.catalog.Format(messages.NotExistsField, name),
			logger.Component("feedback"),
			logger.Field(name),
			logger.Error(ErrFieldNotFound),
		)
		return
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.focused = name
}

// Alert records an alert summary.
func (m *Markup) Alert(message string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.alert = message
}

// Errors returns the messages recorded for the named field.
func (m *Markup) Errors(name string) []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return slices.Clone(m.errors[name])
}

// Fields returns the names of fields with errors, in the order they first
// received one.
func (m *Markup) Fields() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return slices.Clone(m.order)
}

// Focused returns the field to focus, or "".
func (m *Markup) Focused() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.focused
}

// LastAlert returns the most recent alert summary, or "".
func (m *Markup) LastAlert() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.alert
}

// Class returns InvalidClass when the named field has errors.
func (m *Markup) Class(name string) string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if len(m.errors[name]) > 0 {
		return InvalidClass
	}
	return ""
}

// Feedback renders one feedback block per message of the named field.
func (m *Markup) Feedback(name string) template.HTML {
	m.mu.RLock()
	msgs := slices.Clone(m.errors[name])
	m.mu.RUnlock()

	var b strings.Builder
	for _, msg := range msgs {
		b.WriteString(`<div class="` + FeedbackClass + `">`)
		b.WriteString(sanitizeMessage(msg))
		b.WriteString("</div>")
	}
	//nolint:gosec // messages are sanitized above
	return template.HTML(b.String())
}

// FuncMap exposes Class and Feedback to html/template as "invalidClass" and
// "invalidFeedback".
func (m *Markup) FuncMap() template.FuncMap {
	return template.FuncMap{
		"invalidClass":    m.Class,
		"invalidFeedback": m.Feedback,
	}
}
