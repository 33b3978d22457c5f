package validator

// Built-in rule names.
const (
	RuleRequired    = "required"
	RuleNumeric     = "numeric"
	RuleCheckbox    = "checkbox"
	RuleZipEx       = "zip_ex"
	RuleYMD         = "ymd"
	RuleConfirm     = "confirm"
	RuleEmail       = "email"
	RuleZenkaku     = "zenkaku"
	RuleHankaku     = "hankaku"
	RuleZenKatakana = "zen_katakana"
	RuleHiragana    = "hiragana"
	RuleTel         = "tel"
	RuleMinLength   = "minlength"
	RuleMaxLength   = "maxlength"
	RuleNumLength   = "numlength"
	RuleMin         = "min"
	RuleMax         = "max"
	RuleRange       = "range"
	RuleDate        = "date"
	RuleDateTime    = "datetime"
	RuleDateEx      = "date_ex"
	RuleTime        = "time"
	RuleZip         = "zip"
	RuleRegexp      = "regexp"
)

// MissingHandlers returns a fresh table of the rules that run when a field has
// no value.
func MissingHandlers() map[string]Handler {
	return map[string]Handler{
		RuleNumeric:  badNumericInput,
		RuleCheckbox: checkboxCount,
		RuleZipEx:    zipEx,
		RuleYMD:      ymd,
	}
}

// PresentHandlers returns a fresh table of the rules that run when a field has
// a value.
func PresentHandlers() map[string]Handler {
	return map[string]Handler{
		RuleConfirm:     confirm,
		RuleEmail:       email,
		RuleZenkaku:     zenkaku,
		RuleHankaku:     hankaku,
		RuleZenKatakana: zenKatakana,
		RuleHiragana:    hiragana,
		RuleTel:         tel,
		RuleNumeric:     numeric,
		RuleMinLength:   minLength,
		RuleMaxLength:   maxLength,
		RuleNumLength:   numLength,
		RuleMin:         minValue,
		RuleMax:         maxValue,
		RuleRange:       rangeValue,
		RuleDate:        date,
		RuleDateTime:    dateTime,
		RuleDateEx:      dateEx,
		RuleTime:        timeOfDay,
		RuleZip:         zip,
		RuleRegexp:      pattern,
	}
}
