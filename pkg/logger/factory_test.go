package logger_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formrules/pkg/logger"
)

func decode(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	return entry
}

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("json by default", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf))
		log.Info("hello")
		entry := decode(t, buf)
		assert.Equal(t, "INFO", entry["level"])
		assert.Equal(t, "hello", entry["msg"])
	})

	t.Run("info level hides debug records", func(t *testing.T) {
		buf := &bytes.Buffer{}
		logger.New(logger.WithOutput(buf)).Debug("hidden")
		assert.Empty(t, buf.String())
	})

	t.Run("debug preset", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf), logger.WithDebug())
		log.Debug("rule skipped", logger.Rule("bogus"))
		assert.Contains(t, buf.String(), "level=DEBUG")
		assert.Contains(t, buf.String(), "rule=bogus")
	})

	t.Run("explicit format and level", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(
			logger.WithOutput(buf),
			logger.WithFormat(logger.FormatText),
			logger.WithJSONFormatter(),
			logger.WithLevel(slog.LevelWarn),
		)
		log.Info("hidden")
		log.Warn("shown")
		assert.Equal(t, "shown", decode(t, buf)["msg"])
	})

	t.Run("static attributes", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf), logger.WithAttr(logger.Component("signup")))
		log.Info("msg")
		assert.Equal(t, "signup", decode(t, buf)["component"])
	})

	t.Run("context extractors", func(t *testing.T) {
		buf := &bytes.Buffer{}
		type key string
		ctxKey := key("id")
		log := logger.New(
			logger.WithOutput(buf),
			logger.WithContextExtractors(nil, func(ctx context.Context) (slog.Attr, bool) {
				if v, ok := ctx.Value(ctxKey).(string); ok {
					return slog.String("id", v), true
				}
				return slog.Attr{}, false
			}),
			logger.WithContextValue("tenant", key("tenant")),
		)

		ctx := context.WithValue(context.Background(), ctxKey, "42")
		ctx = context.WithValue(ctx, key("tenant"), "acme")
		log.With(logger.Mode("sync")).InfoContext(ctx, "context msg")

		entry := decode(t, buf)
		assert.Equal(t, "42", entry["id"])
		assert.Equal(t, "acme", entry["tenant"])
		assert.Equal(t, "sync", entry["mode"])
	})

	t.Run("missing context values are skipped", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf), logger.WithContextValue("tenant", "tenant-key"))
		log.InfoContext(context.Background(), "msg")
		assert.NotContains(t, decode(t, buf), "tenant")
	})
}

func TestDiscard(t *testing.T) {
	t.Parallel()
	log := logger.Discard()
	require.NotNil(t, log)
	assert.NotPanics(t, func() { log.Error("dropped", logger.Error(nil)) })
}

func TestWithFormatPanics(t *testing.T) {
	t.Parallel()
	assert.Panics(t, func() {
		logger.New(logger.WithFormat(logger.Format("xml")))
	})
}
