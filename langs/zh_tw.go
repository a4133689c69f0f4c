package langs

// Traditional Chinese (zh-TW).
var chineseTraditional = map[string]string{
	KeyRequired:    "{{field}}欄位為必填。",
	KeyMinLength:   "{{field}}長度不能少於{{min}}個字元。",
	KeyMaxLength:   "{{field}}長度不能超過{{max}}個字元。",
	KeyExactLength: "{{field}}長度必須為{{length}}個字元。",
	KeyMin:         "{{field}}不能小於{{min}}。",
	KeyMax:         "{{field}}不能大於{{max}}。",
	KeyBetween:     "{{field}}必須介於{{min}}和{{max}}之間。",
	KeyMinItems:    "{{field}}至少需要包含{{min}}個項目。",
	KeyMaxItems:    "{{field}}最多只能包含{{max}}個項目。",
	KeyEmail:       "{{field}}必須是有效的電子郵件地址。",
	KeyURL:         "{{field}}必須是有效的URL。",
	KeyUUID:        "{{field}}必須是有效的UUID。",
	KeyNumeric:     "{{field}}必須是數字。",
	KeyInteger:     "{{field}}必須是整數。",
	KeyOneOf:       "{{field}}必須是以下值之一：{{values}}。",
	KeyPattern:     "{{field}}格式無效。",
	KeyUnique:      "{{field}}不能包含重複項目。",
}
