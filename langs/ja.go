package langs

// Japanese (ja).
var japanese = map[string]string{
	KeyRequired:    "{{field}}は必須項目です。",
	KeyMinLength:   "{{field}}は{{min}}文字以上で入力してください。",
	KeyMaxLength:   "{{field}}は{{max}}文字以内で入力してください。",
	KeyExactLength: "{{field}}は{{length}}文字で入力してください。",
	KeyMin:         "{{field}}は{{min}}以上でなければなりません。",
	KeyMax:         "{{field}}は{{max}}以下でなければなりません。",
	KeyBetween:     "{{field}}は{{min}}から{{max}}の間でなければなりません。",
	KeyMinItems:    "{{field}}には{{min}}個以上の項目が必要です。",
	KeyMaxItems:    "{{field}}には{{max}}個を超える項目を含めることはできません。",
	KeyEmail:       "{{field}}は有効なメールアドレスでなければなりません。",
	KeyURL:         "{{field}}は有効なURLでなければなりません。",
	KeyUUID:        "{{field}}は有効なUUIDでなければなりません。",
	KeyNumeric:     "{{field}}は数値でなければなりません。",
	KeyInteger:     "{{field}}は整数でなければなりません。",
	KeyOneOf:       "{{field}}は次の値のいずれかでなければなりません: {{values}}",
	KeyPattern:     "{{field}}の形式が正しくありません。",
	KeyUnique:      "{{field}}に重複した項目を含めることはできません。",
}
