package validator_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formrules/pkg/fieldvalue"
	"github.com/dmitrymomot/formrules/pkg/logger"
	"github.com/dmitrymomot/formrules/pkg/messages"
	"github.com/dmitrymomot/formrules/pkg/validator"
)

func TestEngine_Dispatch(t *testing.T) {
	t.Parallel()

	t.Run("required on an empty field", func(t *testing.T) {
		errs := single(t, "", "required")
		require.Len(t, errs, 1)
		assert.Equal(t, validator.ValidationError{
			Field:   "f",
			Label:   "f",
			Message: "必須項目です.",
			Rule:    "required",
			Key:     messages.Required,
		}, errs[0])
	})

	t.Run("required on a filled field", func(t *testing.T) {
		assert.Empty(t, single(t, "x", "required"))
	})

	t.Run("required on a field without inputs", func(t *testing.T) {
		errs := validate(t, fieldvalue.NewForm(), validator.Field{Name: "ghost", Rules: validator.Rules{"required"}})
		assert.Equal(t, []messages.Key{messages.Required}, keysOf(errs))
	})

	t.Run("present-value rules skip empty fields", func(t *testing.T) {
		assert.Empty(t, single(t, "", "email", "zip", "min:3", "date"))
	})

	t.Run("missing-value rules skip filled fields", func(t *testing.T) {
		assert.Empty(t, single(t, "abc", "zip_ex", "ymd"))
	})

	t.Run("unknown and malformed rules are skipped", func(t *testing.T) {
		assert.Empty(t, single(t, "abc", "bogus", []any{}, nil, map[string]any{"params": 1}, 42))
		assert.Empty(t, single(t, "", "bogus"))
	})

	t.Run("fields without rules are skipped", func(t *testing.T) {
		errs := validate(t, fieldvalue.NewForm(text("a", "")), validator.Field{Name: "a"})
		assert.Empty(t, errs)
	})

	t.Run("nil lookup means every field is empty", func(t *testing.T) {
		errs, err := validator.New().Validate(context.Background(), nil, []validator.Field{
			{Name: "a", Rules: validator.Rules{"required", "email"}},
		})
		require.NoError(t, err)
		assert.Equal(t, []messages.Key{messages.Required}, keysOf(errs))
	})
}

func TestEngine_Order(t *testing.T) {
	t.Parallel()

	form := fieldvalue.NewForm(
		text("email", "bad"),
		text("age", "x"),
		text("birth_y", "2024"),
	)
	fields := []validator.Field{
		{Name: "name", Label: "氏名", Rules: validator.Rules{"required"}},
		{Name: "email", Rules: validator.Rules{"required", "email", "hankaku", "minlength:5"}},
		{Name: "age", Rules: validator.Rules{"numeric", "range:[1,10]"}},
		{Name: "birth", Rules: validator.Rules{"ymd"}},
	}

	errs := validate(t, form, fields...)
	assert.Equal(t, []messages.Key{
		messages.Required,
		messages.MailNoAt,
		messages.MinLength,
		messages.NumericalValue,
		messages.Integer,
		messages.InsufficientPart,
		messages.InsufficientPart,
	}, keysOf(errs))
	assert.Equal(t, []string{"name", "email", "age", "birth"}, errs.Fields())
	assert.Equal(t, "氏名", errs[0].Label)
}

func TestEngine_DerivedFields(t *testing.T) {
	t.Parallel()

	form := fieldvalue.NewForm(
		fieldvalue.Input{Name: "email", Type: "email", Required: true},
		fieldvalue.Input{Name: "age", Type: fieldvalue.TypeNumber, Attrs: map[string]string{"min": "18"}},
		fieldvalue.Input{Name: "code", Type: "text", Attrs: map[string]string{"pattern": "^[A-Z]{3}$", "maxlength": "3"}},
	).Bind(map[string][]string{"age": {"12"}, "code": {"abcd"}})

	errs := validate(t, form)
	assert.Equal(t, []messages.Key{
		messages.Required,
		messages.Min,
		messages.MaxLength,
		messages.RegexpInvalidValue,
	}, keysOf(errs))
}

func TestEngine_CustomRules(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("messages become errors", func(t *testing.T) {
		rule := validator.RuleFunc(func(_ context.Context, c *validator.Check) ([]string, error) {
			if c.Value().String() == "taken" {
				return []string{"already taken", "", "pick another"}, nil
			}
			return nil, nil
		})

		errs := single(t, "taken", rule)
		require.Len(t, errs, 2)
		assert.Equal(t, "already taken", errs[0].Message)
		assert.Equal(t, "pick another", errs[1].Message)
		assert.Empty(t, errs[0].Rule)
		assert.Empty(t, errs[0].Key)
	})

	t.Run("custom rules run on empty fields too", func(t *testing.T) {
		called := false
		rule := func(_ context.Context, c *validator.Check) ([]string, error) {
			called = true
			assert.False(t, c.Exists())
			return nil, nil
		}
		assert.Empty(t, single(t, "", rule))
		assert.True(t, called)
	})

	t.Run("params reach the function", func(t *testing.T) {
		rule := validator.RuleFunc(func(_ context.Context, c *validator.Check) ([]string, error) {
			v, _ := c.Param(0)
			return []string{c.Message(messages.MinLength, v)}, nil
		})
		errs := single(t, "x", []any{rule, 7})
		assert.Equal(t, []string{"7文字以上で入力して下さい."}, errs.Get("f"))
	})

	t.Run("sync error stops the pass", func(t *testing.T) {
		boom := errors.New("backend down")
		var after bool
		fields := []validator.Field{
			{Name: "a", Rules: validator.Rules{validator.RuleFunc(func(context.Context, *validator.Check) ([]string, error) {
				return nil, boom
			})}},
			{Name: "b", Rules: validator.Rules{validator.RuleFunc(func(context.Context, *validator.Check) ([]string, error) {
				after = true
				return nil, nil
			})}},
		}

		errs, err := validator.New().Validate(ctx, fieldvalue.NewForm(), fields)
		require.ErrorIs(t, err, validator.ErrRuleFailed)
		assert.ErrorIs(t, err, boom)
		assert.Nil(t, errs)
		assert.False(t, after)
	})

	t.Run("sync panic propagates", func(t *testing.T) {
		fields := []validator.Field{{Name: "a", Rules: validator.Rules{validator.RuleFunc(func(context.Context, *validator.Check) ([]string, error) {
			panic("bug")
		})}}}

		assert.Panics(t, func() {
			_, _ = validator.New().Validate(ctx, fieldvalue.NewForm(), fields)
		})
	})

	t.Run("async reports the first failure in dispatch order", func(t *testing.T) {
		first := errors.New("first")
		second := errors.New("second")
		fields := []validator.Field{
			{Name: "a", Rules: validator.Rules{validator.RuleFunc(func(context.Context, *validator.Check) ([]string, error) {
				time.Sleep(30 * time.Millisecond)
				return nil, first
			})}},
			{Name: "b", Rules: validator.Rules{validator.RuleFunc(func(context.Context, *validator.Check) ([]string, error) {
				return nil, second
			})}},
		}

		errs, err := validator.New().ValidateAsync(ctx, fieldvalue.NewForm(), fields)
		require.ErrorIs(t, err, validator.ErrRuleFailed)
		assert.ErrorIs(t, err, first)
		assert.Nil(t, errs)
	})

	t.Run("async panic is recovered", func(t *testing.T) {
		fields := []validator.Field{{Name: "a", Rules: validator.Rules{validator.RuleFunc(func(context.Context, *validator.Check) ([]string, error) {
			panic("bug")
		})}}}

		_, err := validator.New().ValidateAsync(ctx, fieldvalue.NewForm(), fields)
		assert.ErrorIs(t, err, validator.ErrRulePanicked)
	})

	t.Run("async ignores cancellation", func(t *testing.T) {
		cancelled, cancel := context.WithCancel(ctx)
		cancel()

		fields := []validator.Field{{Name: "a", Rules: validator.Rules{"required", validator.RuleFunc(func(context.Context, *validator.Check) ([]string, error) {
			return []string{"ran"}, nil
		})}}}

		errs, err := validator.New().ValidateAsync(cancelled, fieldvalue.NewForm(), fields)
		require.NoError(t, err)
		assert.Equal(t, []string{"必須項目です.", "ran"}, errs.Get("a"))
	})
}

func TestEngine_SyncAndAsyncAgree(t *testing.T) {
	t.Parallel()

	// Each custom rule sleeps less than the previous one, so they settle in
	// reverse dispatch order.
	delayed := func(d time.Duration, msg string) validator.RuleFunc {
		return func(context.Context, *validator.Check) ([]string, error) {
			time.Sleep(d)
			return []string{msg}, nil
		}
	}

	form := fieldvalue.NewForm(
		text("email", "a@b"),
		text("password", "secret"),
		text("password_confirm", "secre"),
		box("tags", "go", true),
		text("birth_m", "13"),
	)
	fields := []validator.Field{
		{Name: "name", Label: "Name", Rules: validator.Rules{delayed(40*time.Millisecond, "slow"), "required"}},
		{Name: "email", Rules: validator.Rules{"email", delayed(30*time.Millisecond, "medium")}},
		{Name: "password", Rules: validator.Rules{"confirm", delayed(10*time.Millisecond, "fast"), "minlength:8"}},
		{Name: "tags", Rules: validator.Rules{[]any{"checkbox", 2, 3}, delayed(0, "instant")}},
		{Name: "birth", Rules: validator.Rules{"ymd"}},
	}

	engine := validator.New()
	syncErrs, err := engine.Validate(context.Background(), form, fields)
	require.NoError(t, err)
	asyncErrs, err := engine.ValidateAsync(context.Background(), form, fields)
	require.NoError(t, err)

	if diff := cmp.Diff(syncErrs, asyncErrs); diff != "" {
		t.Fatalf("async result differs from sync (-sync +async):\n%s", diff)
	}
	assert.Equal(t, []string{"slow", "必須項目です."}, syncErrs.Get("name"))
	assert.Len(t, syncErrs, 11)
}

func TestEngine_Settings(t *testing.T) {
	t.Parallel()

	t.Run("defaults", func(t *testing.T) {
		s := validator.New().Settings()
		assert.Equal(t, "_confirm", s.ConfirmSuffix)
		assert.Equal(t, "_after", s.ZipSuffix)
		assert.Equal(t, "_y", s.YMDSuffixYear)
		assert.Equal(t, "_m", s.YMDSuffixMonth)
		assert.Equal(t, "_d", s.YMDSuffixDay)
	})

	t.Run("update merges non-empty fields", func(t *testing.T) {
		engine := validator.New()
		engine.UpdateSettings(validator.Settings{ConfirmSuffix: "_again"})

		s := engine.Settings()
		assert.Equal(t, "_again", s.ConfirmSuffix)
		assert.Equal(t, "_after", s.ZipSuffix)

		form := fieldvalue.NewForm(text("pw", "a"), text("pw_again", "a"))
		errs, err := engine.Validate(context.Background(), form, []validator.Field{{Name: "pw", Rules: validator.Rules{"confirm"}}})
		require.NoError(t, err)
		assert.Empty(t, errs)
	})

	t.Run("message overrides", func(t *testing.T) {
		engine := validator.New(validator.WithMessages(messages.Catalog{messages.Required: "fill me"}))
		errs, err := engine.Validate(context.Background(), fieldvalue.NewForm(), []validator.Field{{Name: "a", Rules: validator.Rules{"required"}}})
		require.NoError(t, err)
		assert.Equal(t, []string{"fill me"}, errs.Get("a"))

		engine.UpdateSettings(validator.Settings{Messages: messages.Catalog{messages.Required: "really"}})
		assert.Equal(t, "really", engine.Catalog().Text(messages.Required))
	})

	t.Run("english catalog", func(t *testing.T) {
		engine := validator.New(validator.WithSettings(validator.Settings{Language: "en"}))
		errs, err := engine.Validate(context.Background(), fieldvalue.NewForm(), []validator.Field{{Name: "a", Rules: validator.Rules{"required"}}})
		require.NoError(t, err)
		assert.Equal(t, []string{"This field is required."}, errs.Get("a"))
	})

	t.Run("settings copy is detached", func(t *testing.T) {
		engine := validator.New(validator.WithMessages(messages.Catalog{messages.Required: "x"}))
		s := engine.Settings()
		s.Messages[messages.Required] = "mutated"
		assert.Equal(t, "x", engine.Catalog().Text(messages.Required))
	})
}

func TestEngine_Register(t *testing.T) {
	t.Parallel()

	upper := func(c *validator.Check) []validator.Violation {
		if s := c.Value().String(); s != strings.ToUpper(s) {
			return []validator.Violation{{Message: "upper case only"}}
		}
		return nil
	}
	filled := func(c *validator.Check) []validator.Violation {
		return c.Fail(messages.Required)
	}

	t.Run("present handler", func(t *testing.T) {
		engine := validator.New()
		engine.RegisterPresent("upper", upper)

		form := fieldvalue.NewForm(text("code", "abc"))
		errs, err := engine.Validate(context.Background(), form, []validator.Field{{Name: "code", Rules: validator.Rules{"upper"}}})
		require.NoError(t, err)
		assert.Equal(t, []string{"upper case only"}, errs.Get("code"))
	})

	t.Run("missing handler via option", func(t *testing.T) {
		engine := validator.New(validator.WithMissingHandler("filled", filled))
		errs, err := engine.Validate(context.Background(), fieldvalue.NewForm(), []validator.Field{{Name: "x", Rules: validator.Rules{"filled"}}})
		require.NoError(t, err)
		assert.Equal(t, []messages.Key{messages.Required}, keysOf(errs))
	})

	t.Run("registration is safe during passes", func(t *testing.T) {
		engine := validator.New()
		form := fieldvalue.NewForm(text("code", "abc"))
		fields := []validator.Field{{Name: "code", Rules: validator.Rules{"upper", "hankaku"}}}

		var wg sync.WaitGroup
		for range 8 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, err := engine.ValidateAsync(context.Background(), form, fields)
				assert.NoError(t, err)
			}()
		}
		engine.RegisterPresent("upper", upper)
		wg.Wait()
	})
}

func TestEngine_Logging(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	engine := validator.New(validator.WithLogger(log))
	_, err := engine.Validate(context.Background(), fieldvalue.NewForm(text("a", "x")), []validator.Field{
		{Name: "a", Rules: validator.Rules{"bogus"}},
	})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "unknown rule skipped")
	assert.Contains(t, out, "rule=bogus")
	assert.Contains(t, out, "pass_id=")
	assert.Contains(t, out, "validation pass completed")
	assert.Contains(t, out, "field_count=1")
}

func TestEngine_PassIDInRuleContext(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := logger.New(
		logger.WithOutput(&buf),
		logger.WithDebug(),
		logger.WithContextExtractors(validator.PassIDExtractor),
	)

	var ids []string
	var mu sync.Mutex
	rule := validator.RuleFunc(func(ctx context.Context, c *validator.Check) ([]string, error) {
		mu.Lock()
		ids = append(ids, validator.PassIDFromContext(ctx))
		mu.Unlock()
		log.InfoContext(ctx, "checked in rule")
		return nil, nil
	})

	engine := validator.New(validator.WithLogger(log))
	fields := []validator.Field{{Name: "a", Rules: validator.Rules{rule, rule}}}
	_, err := engine.ValidateAsync(context.Background(), fieldvalue.NewForm(), fields)
	require.NoError(t, err)

	require.Len(t, ids, 2)
	assert.NotEmpty(t, ids[0])
	assert.Equal(t, ids[0], ids[1])
	assert.Contains(t, buf.String(), "pass_id="+ids[0])
	assert.Empty(t, validator.PassIDFromContext(context.Background()))
}
