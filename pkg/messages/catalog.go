package messages

import (
	"fmt"
	"maps"
	"strconv"
	"strings"
)

// Catalog maps message keys to templates with {0}, {1}, ... placeholders.
type Catalog map[Key]string

// Text returns the template for key. A missing key yields the key itself so a
// misconfigured catalog still produces a visible message.
func (c Catalog) Text(key Key) string {
	if tmpl, ok := c[key]; ok {
		return tmpl
	}
	return string(key)
}

// Format looks up key and substitutes the positional arguments.
func (c Catalog) Format(key Key, args ...any) string {
	return Format(c.Text(key), args...)
}

// Merge returns a new catalog holding c overlaid with every non-empty template
// from overrides.
func (c Catalog) Merge(overrides Catalog) Catalog {
	out := make(Catalog, len(c)+len(overrides))
	maps.Copy(out, c)
	for k, v := range overrides {
		if v != "" {
			out[k] = v
		}
	}
	return out
}

// Clone returns a shallow copy of c.
func (c Catalog) Clone() Catalog {
	return maps.Clone(c)
}

// Format replaces every {i} in tmpl with the i-th argument, in argument order.
// Substitution is sequential, so an argument containing a later placeholder is
// itself substituted.
func Format(tmpl string, args ...any) string {
	for i, arg := range args {
		tmpl = strings.ReplaceAll(tmpl, "{"+strconv.Itoa(i)+"}", toString(arg))
	}
	return tmpl
}

func toString(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case nil:
		return "null"
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case fmt.Stringer:
		return t.String()
	default:
		return fmt.Sprint(v)
	}
}
