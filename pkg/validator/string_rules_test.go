package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formrules/pkg/fieldvalue"
	"github.com/dmitrymomot/formrules/pkg/messages"
	"github.com/dmitrymomot/formrules/pkg/validator"
)

func TestCharsetRules(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		value string
		rule  string
		want  []messages.Key
	}{
		{"zenkaku ok", "テスト　データ", "zenkaku", nil},
		{"zenkaku ascii letter", "テストa", "zenkaku", []messages.Key{messages.Zenkaku}},
		{"zenkaku hyphen", "テスト-", "zenkaku", []messages.Key{messages.Zenkaku}},
		{"hankaku ok", "abc 123 !~", "hankaku", nil},
		{"hankaku full width", "abcａ", "hankaku", []messages.Key{messages.Hankaku}},
		{"hankaku tab", "a\tb", "hankaku", []messages.Key{messages.Hankaku}},
		{"katakana ok", "カタカナ ー　ヴ", "zen_katakana", nil},
		{"katakana hiragana", "カタかな", "zen_katakana", []messages.Key{messages.ZenKana}},
		{"katakana half width", "ｶﾀｶﾅ", "zen_katakana", []messages.Key{messages.ZenKana}},
		{"hiragana ok", "ひらがな ー", "hiragana", nil},
		{"hiragana katakana", "ひらカナ", "hiragana", []messages.Key{messages.Hiragana}},
		{"tel ok", "(03)1234-5678", "tel", nil},
		{"tel space", "03 1234 5678", "tel", []messages.Key{messages.Tel}},
		{"tel plus", "+81312345678", "tel", []messages.Key{messages.Tel}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, keysOf(single(t, tt.value, tt.rule)))
		})
	}
}

func TestLengthRules(t *testing.T) {
	t.Parallel()

	t.Run("minlength", func(t *testing.T) {
		errs := single(t, "ab", "minlength:3")
		require.Len(t, errs, 1)
		assert.Equal(t, messages.MinLength, errs[0].Key)
		assert.Equal(t, "3文字以上で入力して下さい.", errs[0].Message)

		assert.Empty(t, single(t, "abc", "minlength:3"))
	})

	t.Run("length counts characters", func(t *testing.T) {
		assert.Empty(t, single(t, "あいう", []any{"minlength", 3}))
		assert.Empty(t, single(t, "あいう", []any{"maxlength", 3}))
	})

	t.Run("maxlength", func(t *testing.T) {
		errs := single(t, "abcd", []any{"maxlength", "3"})
		require.Len(t, errs, 1)
		assert.Equal(t, "3文字以下で入力して下さい.", errs[0].Message)
	})

	t.Run("checkbox groups count items", func(t *testing.T) {
		form := fieldvalue.NewForm(box("c", "a", true), box("c", "b", true), box("c", "c", true))
		errs := validate(t, form, validator.Field{Name: "c", Rules: validator.Rules{[]any{"maxlength", 2}}})
		assert.Equal(t, []messages.Key{messages.MaxLength}, keysOf(errs))
	})
}

func TestConfirm(t *testing.T) {
	t.Parallel()

	password := validator.Field{Name: "password", Label: "パスワード", Rules: validator.Rules{"confirm"}}

	t.Run("mismatch names the label", func(t *testing.T) {
		form := fieldvalue.NewForm(text("password", "abc123"), text("password_confirm", "abc124"))
		errs := validate(t, form, password)

		require.Len(t, errs, 1)
		assert.Equal(t, messages.Confirm, errs[0].Key)
		assert.Equal(t, "確認パスワードと異なっています.", errs[0].Message)
		assert.Equal(t, messages.KindCrossFieldMismatch, errs[0].Kind())
	})

	t.Run("match", func(t *testing.T) {
		form := fieldvalue.NewForm(text("password", "abc123"), text("password_confirm", "abc123"))
		assert.Empty(t, validate(t, form, password))
	})

	t.Run("comparison is exact", func(t *testing.T) {
		form := fieldvalue.NewForm(text("password", "abc123"), text("password_confirm", "abc123 "))
		assert.Len(t, validate(t, form, password), 1)
	})

	t.Run("missing sibling", func(t *testing.T) {
		form := fieldvalue.NewForm(text("password", "abc123"))
		assert.Len(t, validate(t, form, password), 1)
	})

	t.Run("without label", func(t *testing.T) {
		form := fieldvalue.NewForm(text("pin", "1"), text("pin_confirm", "2"))
		errs := validate(t, form, validator.Field{Name: "pin", Rules: validator.Rules{"confirm"}})
		require.Len(t, errs, 1)
		assert.Equal(t, "確認項目と異なっています.", errs[0].Message)
	})

	t.Run("checkbox groups compare checked values", func(t *testing.T) {
		form := fieldvalue.NewForm(
			box("tags", "a", true), box("tags", "b", true),
			box("tags_confirm", "a", true), box("tags_confirm", "b", true),
		)
		assert.Empty(t, validate(t, form, validator.Field{Name: "tags", Rules: validator.Rules{"confirm"}}))
	})
}
