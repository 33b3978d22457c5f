package validator

import (
	"math"
	"regexp"

	"github.com/dmitrymomot/formrules/pkg/messages"
)

var (
	datePattern     = regexp.MustCompile(`^(\d{1,4})[/-](\d{1,2})[/-](\d{1,2})$`)
	dateTimePattern = regexp.MustCompile(`^(\d{1,4})[/-](\d{1,2})[/-](\d{1,2})( (\d{1,2}):(\d{1,2})(:(\d{1,2}))?)?$`)
	dateExPattern   = regexp.MustCompile(`^(\d{1,4})([/-](\d{1,2})([/-](\d{1,2}))?)?$`)
	timePattern     = regexp.MustCompile(`^(\d{1,2}):(\d{1,2}):(\d{1,2})$`)
	timeHMPattern   = regexp.MustCompile(`^(\d{1,2}):(\d{1,2})$`)
)

var daysInMonth = [12]float64{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// IsDate reports whether year/month/day is a calendar date with a year in
// 1900..9999, using the Gregorian leap year rule.
func IsDate(year, month, day int) bool {
	return isDate(float64(year), float64(month), float64(day))
}

func isDate(y, m, d float64) bool {
	if y < 1900 || y > 9999 || math.IsNaN(y) {
		return false
	}
	if m < 1 || m > 12 || math.IsNaN(m) {
		return false
	}
	if d < 1 || math.IsNaN(d) {
		return false
	}

	last := daysInMonth[int(m)-1]
	if m == 2 && isLeapYear(y) {
		last = 29
	}
	return d <= last
}

func isLeapYear(y float64) bool {
	return (math.Mod(y, 4) == 0 && math.Mod(y, 100) != 0) || math.Mod(y, 400) == 0
}

// IsTime reports whether hour and minute are within a day. The second is
// checked only when given.
func IsTime(hour, minute int, second ...int) bool {
	if hour < 0 || hour >= 24 {
		return false
	}
	if minute < 0 || minute >= 60 {
		return false
	}
	if len(second) > 0 && (second[0] < 0 || second[0] >= 60) {
		return false
	}
	return true
}

func date(c *Check) []Violation {
	m := datePattern.FindStringSubmatch(c.Value().String())
	if m == nil {
		return c.Fail(messages.Date)
	}
	if !isDate(toNumber(m[1]), toNumber(m[2]), toNumber(m[3])) {
		return c.Fail(messages.DateInvalid)
	}
	return nil
}

// dateTime accepts a date optionally followed by " hh:mm" or " hh:mm:ss".
func dateTime(c *Check) []Violation {
	m := dateTimePattern.FindStringSubmatch(c.Value().String())
	if m == nil {
		return c.Fail(messages.DateTime)
	}
	if !isDate(toNumber(m[1]), toNumber(m[2]), toNumber(m[3])) {
		return c.Fail(messages.DateInvalid)
	}
	if m[4] != "" && !timeParts(m[5], m[6], m[8]) {
		return c.Fail(messages.TimeInvalid)
	}
	return nil
}

// dateEx accepts YYYY, YYYY/MM or YYYY/MM/DD; missing parts count as 1.
func dateEx(c *Check) []Violation {
	m := dateExPattern.FindStringSubmatch(c.Value().String())
	if m == nil {
		return c.Fail(messages.DateEx)
	}
	month, day := m[3], m[5]
	if month == "" {
		month = "1"
	}
	if day == "" {
		day = "1"
	}
	if !isDate(toNumber(m[1]), toNumber(month), toNumber(day)) {
		return c.Fail(messages.DateInvalid)
	}
	return nil
}

// timeOfDay expects hh:mm:ss, or hh:mm when params[0] is "hm".
func timeOfDay(c *Check) []Violation {
	s := c.Value().String()
	if v, _ := c.Param(0); v == "hm" {
		m := timeHMPattern.FindStringSubmatch(s)
		if m == nil {
			return c.Fail(messages.TimeHM)
		}
		if !timeParts(m[1], m[2], "") {
			return c.Fail(messages.TimeInvalid)
		}
		return nil
	}

	m := timePattern.FindStringSubmatch(s)
	if m == nil {
		return c.Fail(messages.Time)
	}
	if !timeParts(m[1], m[2], m[3]) {
		return c.Fail(messages.TimeInvalid)
	}
	return nil
}

// timeParts checks captured digits; an empty second is not checked.
func timeParts(hour, minute, second string) bool {
	h, mi := int(toNumber(hour)), int(toNumber(minute))
	if second == "" {
		return IsTime(h, mi)
	}
	return IsTime(h, mi, int(toNumber(second)))
}
