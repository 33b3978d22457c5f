package validator

import (
	"github.com/dmitrymomot/formrules/pkg/fieldvalue"
	"github.com/dmitrymomot/formrules/pkg/messages"
)

// badNumericInput reports a number control whose text the host could not
// convert. Such a control reads as empty, so the present-value check never
// sees it.
func badNumericInput(c *Check) []Violation {
	if len(c.Inputs) == 0 || !c.Inputs[0].BadInput {
		return nil
	}
	if msg := c.Inputs[0].ValidationMessage; msg != "" {
		return []Violation{{Message: msg}}
	}
	return c.Fail(messages.NumericalValue)
}

// checkboxCount checks how many boxes of a group are checked: at least
// params[0], or within [params[0], params[1]] when two params are given.
// It also runs for groups that have a value.
func checkboxCount(c *Check) []Violation {
	count := float64(c.Value().Len())
	lo := c.paramNumber(0)

	if len(c.Params()) >= 2 {
		hi := c.paramNumber(1)
		if count < lo || hi < count {
			return c.Fail(messages.CheckboxRange, formatNumber(lo), formatNumber(hi))
		}
		return nil
	}
	if count < lo {
		return c.Fail(messages.CheckboxMin, formatNumber(lo))
	}
	return nil
}

// zipEx requires the first part of a split postal code once the second part
// (the sibling with ZipSuffix) is filled in.
func zipEx(c *Check) []Violation {
	if !c.Exists() && fieldvalue.ExistsValue(c.Sibling(c.Settings.ZipSuffix)) {
		return c.Fail(messages.Insufficient)
	}
	return nil
}

type datePart struct {
	suffix string
	label  messages.Key
}

// ymd validates a date split across three siblings. With params[0] ==
// "required" every missing part is reported; otherwise a partially filled date
// reports each missing part. Filled parts must be integers, and a complete
// date without other errors must exist in the calendar.
func ymd(c *Check) []Violation {
	parts := [3]datePart{
		{c.Settings.YMDSuffixYear, messages.DatePartY},
		{c.Settings.YMDSuffixMonth, messages.DatePartM},
		{c.Settings.YMDSuffixDay, messages.DatePartD},
	}

	var (
		values  [3]string
		present [3]bool
		filled  int
	)
	for i, p := range parts {
		in := c.Sibling(p.suffix)
		if fieldvalue.ExistsValue(in) {
			present[i] = true
			values[i] = fieldvalue.GetValue(in).String()
			filled++
		}
	}

	var out []Violation
	if v, _ := c.Param(0); v == "required" {
		for i, p := range parts {
			if !present[i] {
				out = append(out, c.Fail(messages.RequiredPart, c.Text(p.label))...)
			}
		}
	} else if filled > 0 && filled < len(parts) {
		for i, p := range parts {
			if !present[i] {
				out = append(out, c.Fail(messages.InsufficientPart, c.Text(p.label))...)
			}
		}
	}

	for i, p := range parts {
		if present[i] && !isInteger(values[i]) {
			out = append(out, c.Fail(messages.IntegerPart, c.Text(p.label))...)
		}
	}

	if len(out) == 0 && filled == len(parts) &&
		!isDate(toNumber(values[0]), toNumber(values[1]), toNumber(values[2])) {
		out = append(out, c.Fail(messages.DateInvalid)...)
	}
	return out
}
