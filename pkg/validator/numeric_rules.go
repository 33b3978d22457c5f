package validator

import (
	"math"
	"regexp"
	"strings"

	"github.com/dmitrymomot/formrules/pkg/messages"
)

var integerText = regexp.MustCompile(`^(-\d+|\d*)$`)

// isInteger accepts an optional leading minus followed by digits. The empty
// string passes and compares as 0.
func isInteger(s string) bool {
	return integerText.MatchString(s)
}

// IsNumeric reports whether s is a finite number, without spaces and without
// a hexadecimal prefix.
func IsNumeric(s string) bool {
	f, ok := parseNumber(s)
	if !ok || math.IsInf(f, 0) {
		return false
	}
	return !strings.Contains(s, " ") && !strings.Contains(s, "0x")
}

func numeric(c *Check) []Violation {
	if !IsNumeric(c.Value().String()) {
		return c.Fail(messages.NumericalValue)
	}
	return nil
}

// numLength requires params[0] digits, or params[0] to params[1] digits.
func numLength(c *Check) []Violation {
	quant := c.paramString(0)
	label := quant
	if hi, ok := c.Param(1); ok && truthy(hi) {
		quant += "," + toText(hi)
		label += "～" + toText(hi)
	}

	re, err := regexp.Compile(`^\d{` + quant + `}$`)
	if err != nil {
		return c.Fail(messages.RegexpInvalidParam)
	}
	if !re.MatchString(c.Value().String()) {
		return c.Fail(messages.NumLength, label)
	}
	return nil
}

func minValue(c *Check) []Violation {
	s := c.Value().String()
	if !isInteger(s) {
		return c.Fail(messages.Integer)
	}
	lo := c.paramNumber(0)
	if toNumber(s) < lo {
		return c.Fail(messages.Min, formatNumber(lo))
	}
	return nil
}

// maxValue reports an exceeded upper bound with the MIN template. Consumers
// depend on that wording, so the MAX template is left unused here.
func maxValue(c *Check) []Violation {
	s := c.Value().String()
	if !isInteger(s) {
		return c.Fail(messages.Integer)
	}
	hi := c.paramNumber(0)
	if hi < toNumber(s) {
		return c.Fail(messages.Min, formatNumber(hi))
	}
	return nil
}

func rangeValue(c *Check) []Violation {
	s := c.Value().String()
	if !isInteger(s) {
		return c.Fail(messages.Integer)
	}
	lo, hi := c.paramNumber(0), c.paramNumber(1)
	if n := toNumber(s); n < lo || hi < n {
		return c.Fail(messages.Range, formatNumber(lo), formatNumber(hi))
	}
	return nil
}
