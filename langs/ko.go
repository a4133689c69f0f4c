package langs

// Korean (ko).
var korean = map[string]string{
	KeyRequired:    "{{field}} 필드는 필수입니다.",
	KeyMinLength:   "{{field}} 필드는 최소 {{min}}자 이상이어야 합니다.",
	KeyMaxLength:   "{{field}} 필드는 {{max}}자를 초과할 수 없습니다.",
	KeyExactLength: "{{field}} 필드는 정확히 {{length}}자여야 합니다.",
	KeyMin:         "{{field}} 필드는 {{min}} 이상이어야 합니다.",
	KeyMax:         "{{field}} 필드는 {{max}}보다 클 수 없습니다.",
	KeyBetween:     "{{field}} 필드는 {{min}}에서 {{max}} 사이여야 합니다.",
	KeyMinItems:    "{{field}} 필드는 최소 {{min}}개의 항목을 포함해야 합니다.",
	KeyMaxItems:    "{{field}} 필드는 {{max}}개를 초과하는 항목을 포함할 수 없습니다.",
	KeyEmail:       "{{field}} 필드는 유효한 이메일 주소여야 합니다.",
	KeyURL:         "{{field}} 필드는 유효한 URL이어야 합니다.",
	KeyUUID:        "{{field}} 필드는 유효한 UUID여야 합니다.",
	KeyNumeric:     "{{field}} 필드는 숫자여야 합니다.",
	KeyInteger:     "{{field}} 필드는 정수여야 합니다.",
	KeyOneOf:       "{{field}} 필드는 다음 값 중 하나여야 합니다: {{values}}",
	KeyPattern:     "{{field}} 필드의 형식이 올바르지 않습니다.",
	KeyUnique:      "{{field}} 필드는 중복된 항목을 포함할 수 없습니다.",
}
