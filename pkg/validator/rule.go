package validator

import (
	"context"
	"slices"
	"strings"

	json "github.com/goccy/go-json"
)

// RuleFunc is a custom rule. It receives the same Check a built-in handler
// gets and returns zero or more messages. A returned error aborts the pass.
type RuleFunc func(ctx context.Context, c *Check) ([]string, error)

// Rule is the canonical form of a rule declaration: a library rule name with
// its parameters, or a custom function.
type Rule struct {
	Name   string
	Params []any
	Func   RuleFunc
}

// IsCustom reports whether the rule bypasses the rule library.
func (r Rule) IsCustom() bool {
	return r.Func != nil
}

// ParseRule normalizes a rule declaration. Accepted shapes:
//
//	"required"                      bare name
//	"range:1,10"  "range:[1,10]"    name with JSON or comma separated params
//	[]any{"range", 1, 10}           name followed by params
//	[]any{"range", []any{1, 10}}    name with a param list
//	map[string]any{"rule": "range", "params": []any{1, 10}}
//	Rule{...}                       already canonical
//	RuleFunc / func(ctx, *Check)    custom rule
//
// The boolean is false when the declaration denotes no rule (nil, an empty
// list, an object without a rule name, a non-string name); callers skip it.
func ParseRule(spec any) (Rule, bool) {
	switch v := spec.(type) {
	case nil:
		return Rule{}, false
	case Rule:
		return canonical(v)
	case *Rule:
		if v == nil {
			return Rule{}, false
		}
		return canonical(*v)
	case RuleFunc:
		if v == nil {
			return Rule{}, false
		}
		return Rule{Func: v, Params: []any{}}, true
	case func(context.Context, *Check) ([]string, error):
		if v == nil {
			return Rule{}, false
		}
		return Rule{Func: v, Params: []any{}}, true
	case string:
		return parseDelimited(v)
	case []any:
		return parseList(v)
	case []string:
		items := make([]any, len(v))
		for i, s := range v {
			items[i] = s
		}
		return parseList(items)
	case map[string]any:
		name, ok := v["rule"].(string)
		if !ok || name == "" {
			return Rule{}, false
		}
		return Rule{Name: name, Params: asList(v["params"], false)}, true
	default:
		return Rule{}, false
	}
}

func canonical(r Rule) (Rule, bool) {
	if r.Func == nil && r.Name == "" {
		return Rule{}, false
	}
	r.Params = asList(r.Params, false)
	return r, true
}

func parseList(items []any) (Rule, bool) {
	if len(items) == 0 {
		return Rule{}, false
	}

	var params []any
	switch {
	case len(items) == 2:
		params = asList(items[1], true)
	case len(items) >= 3:
		params = slices.Clone(items[1:])
	default:
		params = []any{}
	}

	switch head := items[0].(type) {
	case string:
		if head == "" {
			return Rule{}, false
		}
		return Rule{Name: head, Params: params}, true
	case RuleFunc:
		return Rule{Func: head, Params: params}, head != nil
	case func(context.Context, *Check) ([]string, error):
		return Rule{Func: head, Params: params}, head != nil
	default:
		return Rule{}, false
	}
}

func parseDelimited(s string) (Rule, bool) {
	before, after, _ := strings.Cut(s, ":")
	name := before
	if name == "" {
		name = s
	}
	if name == "" {
		return Rule{}, false
	}
	if after == "" {
		return Rule{Name: name, Params: []any{}}, true
	}

	var decoded any
	if err := json.Unmarshal([]byte(after), &decoded); err != nil {
		parts := strings.Split(after, ",")
		params := make([]any, len(parts))
		for i, p := range parts {
			params[i] = p
		}
		return Rule{Name: name, Params: params}, true
	}
	return Rule{Name: name, Params: asList(decoded, true)}, true
}

// asList coerces params to a list. A nil value becomes an empty list unless
// keepNil is set, in which case it is wrapped like any other scalar.
func asList(v any, keepNil bool) []any {
	switch t := v.(type) {
	case nil:
		if keepNil {
			return []any{nil}
		}
		return []any{}
	case []any:
		if t == nil {
			return []any{}
		}
		return slices.Clone(t)
	case []string:
		out := make([]any, len(t))
		for i, s := range t {
			out[i] = s
		}
		return out
	case []int:
		out := make([]any, len(t))
		for i, n := range t {
			out[i] = n
		}
		return out
	case []float64:
		out := make([]any, len(t))
		for i, n := range t {
			out[i] = n
		}
		return out
	default:
		return []any{t}
	}
}
