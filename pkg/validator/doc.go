// Package validator evaluates declarative field rules against bound form
// inputs and reports every violation in a deterministic order.
//
// A Field names an input and lists its rules. Rules may be declared in several
// shapes (a bare name, "name:params", a list, a map, a Rule value or a custom
// RuleFunc); ParseRule turns each into a canonical Rule. The Engine then
// dispatches every (field, rule) pair by the presence of a value: an empty
// field is checked by "required" and the missing-value rules (numeric,
// checkbox, zip_ex, ymd), a filled one by the present-value rules (confirm,
// email, zenkaku, hankaku, zen_katakana, hiragana, tel, numeric, minlength,
// maxlength, numlength, min, max, range, date, datetime, date_ex, time, zip,
// regexp). Unknown rule names are skipped.
//
// # Usage
//
//	engine := validator.New(validator.WithLogger(logger))
//
//	form := fieldvalue.NewForm(
//	    fieldvalue.Input{Name: "email", Type: "email"},
//	    fieldvalue.Input{Name: "age", Type: "number"},
//	).Bind(r.PostForm)
//
//	errs, err := engine.Validate(ctx, form, []validator.Field{
//	    {Name: "email", Label: "E-mail", Rules: validator.Rules{"required", "email"}},
//	    {Name: "age", Rules: validator.Rules{"numeric", []any{"range", 18, 120}}},
//	})
//	if err != nil {
//	    // a custom rule failed
//	}
//	for _, e := range errs {
//	    fmt.Println(e.Label, e.Message)
//	}
//
// Passing nil fields derives the rule set from the inputs' native constraints
// (required, minlength, maxlength, min, max, pattern and the input type).
//
// # Concurrency
//
// ValidateAsync runs custom rules concurrently and returns exactly what
// Validate returns for the same input. Lookups handed to the engine must be
// safe for concurrent reads in that mode.
//
// # Configuration
//
// Sibling-field suffixes and message overrides live in Settings. LoadSettings
// reads them from FORMRULES_* environment variables (and an optional .env
// file); UpdateSettings merges changes into a running Engine.
//
// # Error Handling
//
// Rule violations are data, returned as ValidationErrors. Only custom rules
// can fail a pass: their errors are wrapped in ErrRuleFailed, and panics
// recovered during ValidateAsync in ErrRulePanicked.
package validator
