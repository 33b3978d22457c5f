package validator

import (
	"github.com/dmitrymomot/formrules/pkg/fieldvalue"
	"github.com/dmitrymomot/formrules/pkg/messages"
)

// Violation is one message produced by a handler.
type Violation struct {
	Key     messages.Key
	Message string
}

// Handler is a library rule. It returns nil when the field passes.
type Handler func(c *Check) []Violation

// Check is everything a rule sees for one (field, rule) invocation. It is
// built per invocation and never shared between goroutines.
type Check struct {
	Field    Field
	Inputs   fieldvalue.Inputs
	Rule     Rule
	Settings Settings

	lookup  fieldvalue.Lookup
	catalog messages.Catalog
}

// NewCheck builds a Check outside of an engine pass, which is mostly useful
// for exercising a Handler or RuleFunc directly.
func NewCheck(field Field, rule Rule, lookup fieldvalue.Lookup, settings Settings) *Check {
	c := &Check{
		Field:    field,
		Rule:     rule,
		Settings: settings,
		lookup:   lookup,
		catalog:  settings.Catalog(),
	}
	c.Inputs = c.Lookup(field.Name)
	return c
}

// Value is the field's current value.
func (c *Check) Value() fieldvalue.Value {
	return fieldvalue.GetValue(c.Inputs)
}

// Exists reports whether the field has a value.
func (c *Check) Exists() bool {
	return fieldvalue.ExistsValue(c.Inputs)
}

// Params returns the rule parameters.
func (c *Check) Params() []any {
	return c.Rule.Params
}

// Param returns the i-th parameter and whether it was supplied.
func (c *Check) Param(i int) (any, bool) {
	if i < 0 || i >= len(c.Rule.Params) {
		return nil, false
	}
	return c.Rule.Params[i], true
}

// Lookup resolves any field of the form by name.
func (c *Check) Lookup(name string) fieldvalue.Inputs {
	if c.lookup == nil {
		return nil
	}
	return c.lookup.LookupByName(name)
}

// Sibling resolves the field named after this one plus suffix.
func (c *Check) Sibling(suffix string) fieldvalue.Inputs {
	return c.Lookup(c.Field.Name + suffix)
}

// Text returns the catalog template for key without substitution.
func (c *Check) Text(key messages.Key) string {
	return c.catalog.Text(key)
}

// Message renders key from the catalog with positional args.
func (c *Check) Message(key messages.Key, args ...any) string {
	return c.catalog.Format(key, args...)
}

// Fail is shorthand for a single violation rendered from key.
func (c *Check) Fail(key messages.Key, args ...any) []Violation {
	return []Violation{{Key: key, Message: c.Message(key, args...)}}
}
