package langs

// Arabic (ar).
var arabic = map[string]string{
	KeyRequired:    "حقل {{field}} مطلوب.",
	KeyMinLength:   "يجب أن يحتوي حقل {{field}} على {{min}} أحرف على الأقل.",
	KeyMaxLength:   "يجب ألا يتجاوز حقل {{field}} {{max}} حرفًا.",
	KeyExactLength: "يجب أن يحتوي حقل {{field}} على {{length}} حرفًا بالضبط.",
	KeyMin:         "يجب أن يكون حقل {{field}} {{min}} على الأقل.",
	KeyMax:         "يجب ألا يكون حقل {{field}} أكبر من {{max}}.",
	KeyBetween:     "يجب أن يكون حقل {{field}} بين {{min}} و{{max}}.",
	KeyMinItems:    "يجب أن يحتوي حقل {{field}} على {{min}} عناصر على الأقل.",
	KeyMaxItems:    "يجب ألا يحتوي حقل {{field}} على أكثر من {{max}} عناصر.",
	KeyEmail:       "يجب أن يكون حقل {{field}} بريدًا إلكترونيًا صالحًا.",
	KeyURL:         "يجب أن يكون حقل {{field}} رابط URL صالحًا.",
	KeyUUID:        "يجب أن يكون حقل {{field}} معرف UUID صالحًا.",
	KeyNumeric:     "يجب أن يكون حقل {{field}} رقمًا.",
	KeyInteger:     "يجب أن يكون حقل {{field}} عددًا صحيحًا.",
	KeyOneOf:       "يجب أن يكون حقل {{field}} واحدًا من القيم التالية: {{values}}.",
	KeyPattern:     "تنسيق حقل {{field}} غير صالح.",
	KeyUnique:      "يجب ألا يحتوي حقل {{field}} على عناصر مكررة.",
}
