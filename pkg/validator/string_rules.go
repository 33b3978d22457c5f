package validator

import (
	"regexp"

	"github.com/dmitrymomot/formrules/pkg/fieldvalue"
	"github.com/dmitrymomot/formrules/pkg/messages"
)

var (
	halfWidthChar     = regexp.MustCompile(`[\w\-.]`)
	nonPrintableASCII = regexp.MustCompile(`[^\x20-\x7E]`)
	nonTelChar        = regexp.MustCompile(`[^0-9\-()]`)
)

// confirm requires the sibling with ConfirmSuffix to hold exactly the same value.
func confirm(c *Check) []Violation {
	sibling := c.Sibling(c.Settings.ConfirmSuffix)
	if len(sibling) > 0 && c.Value().Equal(fieldvalue.GetValue(sibling)) {
		return nil
	}

	label := c.Field.Label
	if label == "" {
		label = c.Text(messages.ConfirmField)
	}
	return c.Fail(messages.Confirm, label)
}

func zenkaku(c *Check) []Violation {
	if !IsZenkaku(c.Value().String()) {
		return c.Fail(messages.Zenkaku)
	}
	return nil
}

func hankaku(c *Check) []Violation {
	if !IsHankaku(c.Value().String()) {
		return c.Fail(messages.Hankaku)
	}
	return nil
}

func zenKatakana(c *Check) []Violation {
	if !IsKatakana(c.Value().String()) {
		return c.Fail(messages.ZenKana)
	}
	return nil
}

func hiragana(c *Check) []Violation {
	if !IsHiragana(c.Value().String()) {
		return c.Fail(messages.Hiragana)
	}
	return nil
}

func tel(c *Check) []Violation {
	if !IsTel(c.Value().String()) {
		return c.Fail(messages.Tel)
	}
	return nil
}

func minLength(c *Check) []Violation {
	lo := c.paramNumber(0)
	if float64(c.Value().Len()) < lo {
		return c.Fail(messages.MinLength, formatNumber(lo))
	}
	return nil
}

func maxLength(c *Check) []Violation {
	hi := c.paramNumber(0)
	if hi < float64(c.Value().Len()) {
		return c.Fail(messages.MaxLength, formatNumber(hi))
	}
	return nil
}

// IsZenkaku reports whether s has no ASCII word characters, dots or hyphens.
func IsZenkaku(s string) bool {
	return !halfWidthChar.MatchString(s)
}

// IsHankaku reports whether s consists of printable ASCII only.
func IsHankaku(s string) bool {
	return !nonPrintableASCII.MatchString(s)
}

// IsTel reports whether s consists of digits, hyphens and parentheses only.
func IsTel(s string) bool {
	return !nonTelChar.MatchString(s)
}

// IsKatakana reports whether every character of s is full-width katakana
// (ァ..ヶ), the long vowel mark or a space.
func IsKatakana(s string) bool {
	return allInRange(s, 'ァ', 'ヶ')
}

// IsHiragana reports whether every character of s is hiragana (ぁ..ん), the
// long vowel mark or a space.
func IsHiragana(s string) bool {
	return allInRange(s, 'ぁ', 'ん')
}

func allInRange(s string, lo, hi rune) bool {
	for _, r := range s {
		if r >= lo && r <= hi {
			continue
		}
		switch r {
		case 'ー', ' ', '　':
		default:
			return false
		}
	}
	return true
}
