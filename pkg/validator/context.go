package validator

import (
	"context"
	"log/slog"

	"github.com/dmitrymomot/formrules/pkg/logger"
)

type passIDKey struct{}

func withPassID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, passIDKey{}, id)
}

// PassIDFromContext returns the ID of the validation pass a custom rule runs
// in, or "" outside of a pass.
func PassIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(passIDKey{}).(string)
	return id
}

// PassIDExtractor adds the pass ID to records logged with a custom rule's
// context. Register it with logger.WithContextExtractors.
func PassIDExtractor(ctx context.Context) (slog.Attr, bool) {
	if id := PassIDFromContext(ctx); id != "" {
		return logger.PassID(id), true
	}
	return slog.Attr{}, false
}
