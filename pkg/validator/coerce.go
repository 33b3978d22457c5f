package validator

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

var (
	decimalLiteral = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?$`)
	radixLiteral   = regexp.MustCompile(`^0([xX][0-9a-fA-F]+|[oO][0-7]+|[bB][01]+)$`)
)

// parseNumber converts text the way a browser's Number() does: surrounding
// white space is ignored, the empty string is 0, decimal, exponent, 0x/0o/0b
// and signed Infinity literals are accepted. ok is false where Number()
// yields NaN.
func parseNumber(s string) (float64, bool) {
	s = strings.TrimFunc(s, func(r rune) bool {
		return unicode.IsSpace(r) || r == '\uFEFF'
	})

	switch s {
	case "":
		return 0, true
	case "Infinity", "+Infinity":
		return math.Inf(1), true
	case "-Infinity":
		return math.Inf(-1), true
	}

	if radixLiteral.MatchString(s) {
		base := 16
		switch s[1] {
		case 'o', 'O':
			base = 8
		case 'b', 'B':
			base = 2
		}
		n, err := strconv.ParseUint(s[2:], base, 64)
		if err != nil {
			// Out of uint64 range still is a finite number.
			f, ferr := strconv.ParseFloat(s, 64)
			return f, ferr == nil
		}
		return float64(n), true
	}

	if !decimalLiteral.MatchString(s) {
		return math.NaN(), false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		// ParseFloat reports range errors with ±Inf, which is what Number() gives.
		return f, !math.IsNaN(f)
	}
	return f, true
}

// toNumber coerces a rule parameter or value to a number. NaN marks a value
// that is not numeric, so every comparison against it fails.
func toNumber(v any) float64 {
	switch t := v.(type) {
	case nil:
		return 0
	case float64:
		return t
	case float32:
		return float64(t)
	case int:
		return float64(t)
	case int64:
		return float64(t)
	case int32:
		return float64(t)
	case uint:
		return float64(t)
	case uint64:
		return float64(t)
	case bool:
		if t {
			return 1
		}
		return 0
	case string:
		if f, ok := parseNumber(t); ok {
			return f
		}
		return math.NaN()
	default:
		return math.NaN()
	}
}

// paramNumber is the i-th parameter as a number, NaN when it is missing.
func (c *Check) paramNumber(i int) float64 {
	v, ok := c.Param(i)
	if !ok {
		return math.NaN()
	}
	return toNumber(v)
}

// paramString is the i-th parameter as text, "undefined" when it is missing.
func (c *Check) paramString(i int) string {
	v, ok := c.Param(i)
	if !ok {
		return "undefined"
	}
	return toText(v)
}

func toText(v any) string {
	switch t := v.(type) {
	case nil:
		return "null"
	case string:
		return t
	case float64:
		return formatNumber(t)
	case int:
		return strconv.Itoa(t)
	case bool:
		return strconv.FormatBool(t)
	case []any:
		parts := make([]string, len(t))
		for i, p := range t {
			if p != nil {
				parts[i] = toText(p)
			}
		}
		return strings.Join(parts, ",")
	default:
		return fmt.Sprint(v)
	}
}

// truthy mirrors the falsy set of rule parameters: nil, "", 0, NaN, false.
func truthy(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case string:
		return t != ""
	case bool:
		return t
	case float64:
		return t != 0 && !math.IsNaN(t)
	case int:
		return t != 0
	default:
		return true
	}
}

func formatNumber(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}
