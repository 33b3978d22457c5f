package logger

import (
	"log/slog"
	"strconv"
	"time"
)

// Group creates a slog group attribute from the provided attributes.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// Errors groups multiple non-nil errors under the key "errors".
// If all errors are nil, it returns an empty Attr.
func Errors(errs ...error) slog.Attr {
	as := make([]slog.Attr, 0, len(errs))
	for i, err := range errs {
		if err != nil {
			as = append(as, slog.Any(strconv.Itoa(i), err))
		}
	}
	if len(as) == 0 {
		return slog.Attr{}
	}
	return slog.Attr{Key: "errors", Value: slog.GroupValue(as...)}
}

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// PassID records the validation pass identifier under the key "pass_id".
func PassID(id string) slog.Attr {
	return slog.String("pass_id", id)
}

// Mode records the evaluation mode ("sync" or "async") under the key "mode".
func Mode(mode string) slog.Attr {
	return slog.String("mode", mode)
}

// Field records a form field name under the key "field".
func Field(name string) slog.Attr {
	return slog.String("field", name)
}

// Fields records form field names under the key "fields".
func Fields(names []string) slog.Attr {
	return slog.Any("fields", names)
}

// FieldCount records the number of fields of a pass under the key "field_count".
func FieldCount(n int) slog.Attr {
	return slog.Int("field_count", n)
}

// Rule records a rule name under the key "rule".
func Rule(name string) slog.Attr {
	return slog.String("rule", name)
}

// ErrorCount records the number of reported violations under the key "errors".
func ErrorCount(n int) slog.Attr {
	return slog.Int("errors", n)
}

// Duration records a duration under the key "duration".
func Duration(d time.Duration) slog.Attr {
	return slog.Duration("duration", d)
}

// Path records a request path under the key "path".
func Path(p string) slog.Attr {
	return slog.String("path", p)
}

// Status records an HTTP status code under the key "status".
func Status(code int) slog.Attr {
	return slog.Int("status", code)
}
