package messages

// Japanese returns the built-in Japanese catalog. The engine uses it unless
// configured otherwise.
func Japanese() Catalog {
	return Catalog{
		ValidateError: "入力に誤りがあります.",

		Required:         "必須項目です.",
		RequiredPart:     "{0} は必須項目です.",
		Insufficient:     "不足しています.",
		InsufficientPart: "{0} が不足しています.",
		Confirm:          "確認{0}と異なっています.",
		ConfirmField:     "項目",

		NumericalValue: "数値を入力して下さい.",
		Integer:        "整数値を入力して下さい.",
		IntegerPart:    "{0} は整数値を入力して下さい.",
		Min:            "{0} ～ の数値を入力してください.",
		Max:            "～ {0} の数値を入力してください.",
		Range:          "{0} ～ {1} の数値を入力してください.",
		MinLength:      "{0}文字以上で入力して下さい.",
		MaxLength:      "{0}文字以下で入力して下さい.",
		NumLength:      "{0}桁の数値を入力してください.",
		CheckboxMin:    "{0} 個チェックしてください.",
		CheckboxRange:  "{0}～{1} 個の間でチェックしてください.",

		Zenkaku:  "全角で入力してください.",
		Hankaku:  "半角で入力してください.",
		ZenKana:  "全角カタカナで入力してください.",
		Hiragana: "ひらがなで入力してください.",
		Tel:      "数値-()で入力してください.",
		Zip:      "[nnn-nnnn]書式で記述してください.",

		Date:        "[YYYY/MM/DD]書式で記述してください.",
		DateEx:      "[YYYY/MM/DD] or [YYYY/MM] or [YYYY]書式で記述してください.",
		DateTime:    "[YYYY/MM/DD hh:mm:ss]書式で記述してください.",
		Time:        "[hh:mm:ss]書式で記述してください.",
		TimeHM:      "[hh:mm:ss]書式で記述してください.",
		DateInvalid: "日付が間違っています.",
		TimeInvalid: "時間が間違っています.",
		DatePartY:   "(年)",
		DatePartM:   "(月)",
		DatePartD:   "(日)",

		RegexpInvalidParam: "正規表現が間違っています.",
		RegexpInvalidValue: "書式が間違っています.",

		MailNoAt:          "正しくありません(@).",
		MailInvalidIP:     "正しくありません(IP).",
		MailNoDomain:      "ドメイン名がありません(DOMAIN).",
		MailInvalidLocale: "正しくありません(LOCALE).",
		MailInvalidDomain: "ドメイン名の書式が誤っています.",

		NotExistsField: "フィールド名[{0}]が存在しません.",
	}
}

// English returns a built-in English catalog with the same keys as Japanese.
func English() Catalog {
	return Catalog{
		ValidateError: "There are errors in your input.",

		Required:         "This field is required.",
		RequiredPart:     "{0} is required.",
		Insufficient:     "This field is incomplete.",
		InsufficientPart: "{0} is missing.",
		Confirm:          "Does not match the confirmation {0}.",
		ConfirmField:     "field",

		NumericalValue: "Please enter a number.",
		Integer:        "Please enter an integer.",
		IntegerPart:    "{0} must be an integer.",
		Min:            "Please enter a number of at least {0}.",
		Max:            "Please enter a number of at most {0}.",
		Range:          "Please enter a number between {0} and {1}.",
		MinLength:      "Please enter at least {0} characters.",
		MaxLength:      "Please enter at most {0} characters.",
		NumLength:      "Please enter a {0}-digit number.",
		CheckboxMin:    "Please check {0} item(s).",
		CheckboxRange:  "Please check between {0} and {1} items.",

		Zenkaku:  "Please use full-width characters.",
		Hankaku:  "Please use half-width characters.",
		ZenKana:  "Please use full-width katakana.",
		Hiragana: "Please use hiragana.",
		Tel:      "Please use digits, '-' and '()' only.",
		Zip:      "Please use the [nnn-nnnn] format.",

		Date:        "Please use the [YYYY/MM/DD] format.",
		DateEx:      "Please use the [YYYY/MM/DD], [YYYY/MM] or [YYYY] format.",
		DateTime:    "Please use the [YYYY/MM/DD hh:mm:ss] format.",
		Time:        "Please use the [hh:mm:ss] format.",
		TimeHM:      "Please use the [hh:mm] format.",
		DateInvalid: "The date is invalid.",
		TimeInvalid: "The time is invalid.",
		DatePartY:   "(year)",
		DatePartM:   "(month)",
		DatePartD:   "(day)",

		RegexpInvalidParam: "The pattern is invalid.",
		RegexpInvalidValue: "The format is invalid.",

		MailNoAt:          "Invalid address (@).",
		MailInvalidIP:     "Invalid address (IP).",
		MailNoDomain:      "The domain name is missing (DOMAIN).",
		MailInvalidLocale: "Invalid address (LOCALE).",
		MailInvalidDomain: "The domain name is malformed.",

		NotExistsField: "Field [{0}] does not exist.",
	}
}
