package validator

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"maps"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrymomot/formrules/pkg/async"
	"github.com/dmitrymomot/formrules/pkg/fieldvalue"
	"github.com/dmitrymomot/formrules/pkg/logger"
	"github.com/dmitrymomot/formrules/pkg/messages"
)

// Engine evaluates field rules against bound inputs. It is safe for
// concurrent use; every pass works on a snapshot of settings and handlers.
type Engine struct {
	mu       sync.RWMutex
	settings Settings
	catalog  messages.Catalog
	missing  map[string]Handler
	present  map[string]Handler
	logger   *slog.Logger
}

// New creates an Engine with the built-in rule library.
func New(opts ...Option) *Engine {
	e := &Engine{
		settings: DefaultSettings(),
		missing:  MissingHandlers(),
		present:  PresentHandlers(),
		logger:   logger.Discard(),
	}
	for _, opt := range opts {
		opt(e)
	}
	e.catalog = e.settings.Catalog()
	return e
}

// Settings returns a copy of the current settings.
func (e *Engine) Settings() Settings {
	e.mu.RLock()
	defer e.mu.RUnlock()
	s := e.settings
	s.Messages = s.Messages.Clone()
	return s
}

// UpdateSettings shallow-merges s into the current settings. Passes already
// running keep the settings they started with.
func (e *Engine) UpdateSettings(s Settings) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.settings = e.settings.Merge(s)
	e.catalog = e.settings.Catalog()
}

// Catalog returns the effective message catalog.
func (e *Engine) Catalog() messages.Catalog {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.catalog.Clone()
}

// RegisterMissing adds or replaces a rule that runs when a field has no value.
func (e *Engine) RegisterMissing(name string, h Handler) {
	if name == "" || h == nil {
		return
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	next := maps.Clone(e.missing)
	next[name] = h
	e.missing = next
}

// RegisterPresent adds or replaces a rule that runs when a field has a value.
func (e *Engine) RegisterPresent(name string, h Handler) {
	if name == "" || h == nil {
		return
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	next := maps.Clone(e.present)
	next[name] = h
	e.present = next
}

// Validate runs every rule of every field sequentially and returns the
// violations in field, rule and emission order. A nil fields slice is derived
// from the lookup's native constraints when it implements
// fieldvalue.Enumerator.
//
// An error returned by a custom rule stops the pass and is returned wrapped in
// ErrRuleFailed. A panicking custom rule is not recovered.
func (e *Engine) Validate(ctx context.Context, lookup fieldvalue.Lookup, fields []Field) (ValidationErrors, error) {
	p := e.begin(lookup, "sync")
	started := time.Now()

	fields = fieldsFor(lookup, fields)
	var errs ValidationErrors
	for _, inv := range p.plan(fields) {
		var vs []Violation
		if inv.rule.IsCustom() {
			out, err := p.runCustom(ctx, inv)
			if err != nil {
				return nil, err
			}
			vs = out
		} else {
			vs = p.dispatch(inv)
		}
		p.collect(&errs, inv, vs)
	}

	p.finish(started, len(fields), errs)
	return errs, nil
}

// ValidateAsync produces the same result as Validate, but custom rules run
// concurrently, each in its own goroutine. Built-in rules resolve immediately.
// Results are reassembled in dispatch order once every rule has settled.
//
// When custom rules fail, the first failure in dispatch order is returned
// (wrapped in ErrRuleFailed, or ErrRulePanicked for a recovered panic) and no
// partial result is reported. The context is passed to custom rules only; a
// cancelled context does not stop the pass.
func (e *Engine) ValidateAsync(ctx context.Context, lookup fieldvalue.Lookup, fields []Field) (ValidationErrors, error) {
	p := e.begin(lookup, "async")
	started := time.Now()

	fields = fieldsFor(lookup, fields)
	invs := p.plan(fields)
	futures := make([]*async.Future[[]Violation], len(invs))
	for i, inv := range invs {
		if inv.rule.IsCustom() {
			futures[i] = async.Async(ctx, inv, p.runCustom)
			continue
		}
		futures[i] = async.Resolved(p.dispatch(inv), nil)
	}

	results, err := async.WaitAll(futures...)
	if err != nil {
		if errors.Is(err, async.ErrPanicked) {
			err = fmt.Errorf("%w: %w", ErrRulePanicked, err)
			p.logger.Warn("custom rule panicked", logger.Error(err))
		}
		return nil, err
	}

	var errs ValidationErrors
	for i, inv := range invs {
		p.collect(&errs, inv, results[i])
	}

	p.finish(started, len(fields), errs)
	return errs, nil
}

func fieldsFor(lookup fieldvalue.Lookup, fields []Field) []Field {
	if fields != nil {
		return fields
	}
	if enum, ok := lookup.(fieldvalue.Enumerator); ok {
		return DeriveFields(enum.Inputs())
	}
	return nil
}

// pass is the read-only state of one validation run.
type pass struct {
	id       string
	mode     string
	settings Settings
	catalog  messages.Catalog
	missing  map[string]Handler
	present  map[string]Handler
	lookup   fieldvalue.Lookup
	logger   *slog.Logger
}

type invocation struct {
	field  Field
	rule   Rule
	inputs fieldvalue.Inputs
}

func (e *Engine) begin(lookup fieldvalue.Lookup, mode string) *pass {
	e.mu.RLock()
	defer e.mu.RUnlock()

	id := uuid.NewString()
	return &pass{
		id:       id,
		mode:     mode,
		settings: e.settings,
		catalog:  e.catalog,
		missing:  e.missing,
		present:  e.present,
		lookup:   lookup,
		logger:   e.logger.With(logger.Component("validator"), logger.PassID(id)),
	}
}

// plan expands fields into (field, rule) invocations in declaration order.
func (p *pass) plan(fields []Field) []invocation {
	var invs []invocation
	for _, f := range fields {
		if len(f.Rules) == 0 {
			continue
		}
		var inputs fieldvalue.Inputs
		if p.lookup != nil {
			inputs = p.lookup.LookupByName(f.Name)
		}
		for _, spec := range f.Rules {
			rule, ok := ParseRule(spec)
			if !ok {
				p.logger.Debug("rule declaration skipped", logger.Field(f.Name), slog.Any("declaration", spec))
				continue
			}
			invs = append(invs, invocation{field: f, rule: rule, inputs: inputs})
		}
	}
	return invs
}

func (p *pass) check(inv invocation) *Check {
	return &Check{
		Field:    inv.field,
		Inputs:   inv.inputs,
		Rule:     inv.rule,
		Settings: p.settings,
		lookup:   p.lookup,
		catalog:  p.catalog,
	}
}

// dispatch runs a library rule. Without a value only "required" and the
// missing-value rules apply; with a value the present-value rules apply, plus
// the checkbox count which is meaningful either way.
func (p *pass) dispatch(inv invocation) []Violation {
	c := p.check(inv)
	name := inv.rule.Name

	if !c.Exists() {
		if name == RuleRequired {
			return c.Fail(messages.Required)
		}
		if h, ok := p.missing[name]; ok {
			return h(c)
		}
		p.skipUnknown(inv)
		return nil
	}

	if h, ok := p.present[name]; ok {
		return h(c)
	}
	if name == RuleCheckbox {
		if h, ok := p.missing[name]; ok {
			return h(c)
		}
	}
	p.skipUnknown(inv)
	return nil
}

func (p *pass) skipUnknown(inv invocation) {
	name := inv.rule.Name
	if name == RuleRequired {
		return
	}
	if _, ok := p.missing[name]; ok {
		return
	}
	if _, ok := p.present[name]; ok {
		return
	}
	p.logger.Debug("unknown rule skipped", logger.Field(inv.field.Name), ruleAttr(inv.rule))
}

func (p *pass) runCustom(ctx context.Context, inv invocation) ([]Violation, error) {
	msgs, err := inv.rule.Func(withPassID(ctx, p.id), p.check(inv))
	if err != nil {
		p.logger.Warn("custom rule failed", logger.Field(inv.field.Name), logger.Error(err))
		return nil, fmt.Errorf("%w: field %q: %w", ErrRuleFailed, inv.field.Name, err)
	}

	out := make([]Violation, 0, len(msgs))
	for _, m := range msgs {
		out = append(out, Violation{Message: m})
	}
	return out, nil
}

func (p *pass) collect(errs *ValidationErrors, inv invocation, vs []Violation) {
	for _, v := range vs {
		if v.Message == "" {
			continue
		}
		errs.Add(ValidationError{
			Field:   inv.field.Name,
			Label:   inv.field.DisplayLabel(),
			Message: v.Message,
			Rule:    inv.rule.Name,
			Key:     v.Key,
		})
	}
}

func (p *pass) finish(started time.Time, fields int, errs ValidationErrors) {
	p.logger.Debug("validation pass completed",
		logger.Mode(p.mode),
		logger.FieldCount(fields),
		logger.ErrorCount(len(errs)),
		logger.Duration(time.Since(started)),
	)
}
