package langs

// Simplified Chinese (zh-CN).
var chineseSimplified = map[string]string{
	KeyRequired:    "{{field}}字段为必填项。",
	KeyMinLength:   "{{field}}长度不能少于{{min}}个字符。",
	KeyMaxLength:   "{{field}}长度不能超过{{max}}个字符。",
	KeyExactLength: "{{field}}长度必须为{{length}}个字符。",
	KeyMin:         "{{field}}不能小于{{min}}。",
	KeyMax:         "{{field}}不能大于{{max}}。",
	KeyBetween:     "{{field}}必须介于{{min}}和{{max}}之间。",
	KeyMinItems:    "{{field}}至少需要包含{{min}}个条目。",
	KeyMaxItems:    "{{field}}最多只能包含{{max}}个条目。",
	KeyEmail:       "{{field}}必须是有效的电子邮件地址。",
	KeyURL:         "{{field}}必须是有效的URL。",
	KeyUUID:        "{{field}}必须是有效的UUID。",
	KeyNumeric:     "{{field}}必须是数字。",
	KeyInteger:     "{{field}}必须是整数。",
	KeyOneOf:       "{{field}}必须是以下值之一：{{values}}。",
	KeyPattern:     "{{field}}格式无效。",
	KeyUnique:      "{{field}}不能包含重复条目。",
}
