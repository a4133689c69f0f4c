package langs

// Vietnamese (vi).
var vietnamese = map[string]string{
	KeyRequired:    "Trường {{field}} là bắt buộc.",
	KeyMinLength:   "Trường {{field}} phải có ít nhất {{min}} ký tự.",
	KeyMaxLength:   "Trường {{field}} không được vượt quá {{max}} ký tự.",
	KeyExactLength: "Trường {{field}} phải có đúng {{length}} ký tự.",
	KeyMin:         "Trường {{field}} phải tối thiểu là {{min}}.",
	KeyMax:         "Trường {{field}} không được lớn hơn {{max}}.",
	KeyBetween:     "Trường {{field}} phải nằm trong khoảng {{min}} đến {{max}}.",
	KeyMinItems:    "Trường {{field}} phải chứa ít nhất {{min}} mục.",
	KeyMaxItems:    "Trường {{field}} không được chứa quá {{max}} mục.",
	KeyEmail:       "Trường {{field}} phải là địa chỉ email hợp lệ.",
	KeyURL:         "Trường {{field}} phải là URL hợp lệ.",
	KeyUUID:        "Trường {{field}} phải là UUID hợp lệ.",
	KeyNumeric:     "Trường {{field}} phải là một số.",
	KeyInteger:     "Trường {{field}} phải là số nguyên.",
	KeyOneOf:       "Trường {{field}} phải là một trong các giá trị sau: {{values}}.",
	KeyPattern:     "Trường {{field}} có định dạng không hợp lệ.",
	KeyUnique:      "Trường {{field}} không được chứa các mục trùng lặp.",
}
