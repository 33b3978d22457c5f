package messages

// Key identifies a message template in a Catalog.
type Key string

const (
	ValidateError Key = "VALIDATE_ERROR"

	Required         Key = "REQUIRED"
	RequiredPart     Key = "REQUIRED_PART"
	Insufficient     Key = "INSUFFICIENT"
	InsufficientPart Key = "INSUFFICIENT_PART"
	Confirm          Key = "CONFIRM"
	ConfirmField     Key = "CONFIRM_FIELD"

	NumericalValue Key = "NUMERICAL_VALUE"
	Integer        Key = "INTEGER"
	IntegerPart    Key = "INTEGER_PART"
	Min            Key = "MIN"
	Max            Key = "MAX"
	Range          Key = "RANGE"
	MinLength      Key = "MIN_LENGTH"
	MaxLength      Key = "MAX_LENGTH"
	NumLength      Key = "NUM_LENGTH"
	CheckboxMin    Key = "CHECKBOX_MIN"
	CheckboxRange  Key = "CHECKBOX_RANGE"

	Zenkaku  Key = "ZENKAKU"
	Hankaku  Key = "HANKAKU"
	ZenKana  Key = "ZEN_KANA"
	Hiragana Key = "HIRAGANA"
	Tel      Key = "TEL"
	Zip      Key = "ZIP"

	Date        Key = "DATE"
	DateEx      Key = "DATE_EX"
	DateTime    Key = "DATETIME"
	Time        Key = "TIME"
	TimeHM      Key = "TIME_HM"
	DateInvalid Key = "DATE_INVALID"
	TimeInvalid Key = "TIME_INVALID"
	DatePartY   Key = "DATE_PART_Y"
	DatePartM   Key = "DATE_PART_M"
	DatePartD   Key = "DATE_PART_D"

	RegexpInvalidParam Key = "REGEXP_INVALID_PARAM"
	RegexpInvalidValue Key = "REGEXP_INVALID_VALUE"

	MailNoAt          Key = "MAIL_NO_AT"
	MailInvalidIP     Key = "MAIL_INVALID_IP"
	MailNoDomain      Key = "MAIL_NO_DOMAIN"
	MailInvalidLocale Key = "MAIL_INVALID_LOCALE"
	MailInvalidDomain Key = "MAIL_INVALID_DOMAIN"

	NotExistsField Key = "NOT_EXISTS_FIELD"
)
