package messages

// Kind classifies a reported violation independently of its wording.
type Kind string

const (
	KindUnknown              Kind = ""
	KindMissingRequired      Kind = "missing_required"
	KindFormatInvalid        Kind = "format_invalid"
	KindBoundsViolation      Kind = "bounds_violation"
	KindCrossFieldMismatch   Kind = "cross_field_mismatch"
	KindConfigurationInvalid Kind = "configuration_invalid"
)

var kinds = map[Key]Kind{
	Required:     KindMissingRequired,
	RequiredPart: KindMissingRequired,

	Insufficient:     KindCrossFieldMismatch,
	InsufficientPart: KindCrossFieldMismatch,
	Confirm:          KindCrossFieldMismatch,

	NumericalValue: KindFormatInvalid,
	Integer:        KindFormatInvalid,
	IntegerPart:    KindFormatInvalid,
	Zenkaku:        KindFormatInvalid,
	Hankaku:        KindFormatInvalid,
	ZenKana:        KindFormatInvalid,
	Hiragana:       KindFormatInvalid,
	Tel:            KindFormatInvalid,
	Zip:            KindFormatInvalid,
	Date:           KindFormatInvalid,
	DateEx:         KindFormatInvalid,
	DateTime:       KindFormatInvalid,
	Time:           KindFormatInvalid,
	TimeHM:         KindFormatInvalid,
	DateInvalid:    KindFormatInvalid,
	TimeInvalid:    KindFormatInvalid,

	RegexpInvalidValue: KindFormatInvalid,
	MailNoAt:           KindFormatInvalid,
	MailInvalidIP:      KindFormatInvalid,
	MailNoDomain:       KindFormatInvalid,
	MailInvalidLocale:  KindFormatInvalid,
	MailInvalidDomain:  KindFormatInvalid,

	Min:           KindBoundsViolation,
	Max:           KindBoundsViolation,
	Range:         KindBoundsViolation,
	MinLength:     KindBoundsViolation,
	MaxLength:     KindBoundsViolation,
	NumLength:     KindBoundsViolation,
	CheckboxMin:   KindBoundsViolation,
	CheckboxRange: KindBoundsViolation,

	RegexpInvalidParam: KindConfigurationInvalid,
}

// KindOf returns the violation kind reported under key.
// Keys that never describe a violation (labels, banners) map to KindUnknown.
func KindOf(key Key) Kind {
	return kinds[key]
}
