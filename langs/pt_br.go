package langs

// Brazilian Portuguese (pt-BR).
var portugueseBrazil = map[string]string{
	KeyRequired:    "O campo {{field}} é obrigatório.",
	KeyMinLength:   "O campo {{field}} deve ter no mínimo {{min}} caracteres.",
	KeyMaxLength:   "O campo {{field}} não pode ter mais de {{max}} caracteres.",
	KeyExactLength: "O campo {{field}} deve ter exatamente {{length}} caracteres.",
	KeyMin:         "O campo {{field}} deve ser no mínimo {{min}}.",
	KeyMax:         "O campo {{field}} não pode ser maior que {{max}}.",
	KeyBetween:     "O campo {{field}} deve estar entre {{min}} e {{max}}.",
	KeyMinItems:    "O campo {{field}} deve conter no mínimo {{min}} itens.",
	KeyMaxItems:    "O campo {{field}} não pode conter mais de {{max}} itens.",
	KeyEmail:       "O campo {{field}} deve ser um e-mail válido.",
	KeyURL:         "O campo {{field}} deve ser uma URL válida.",
	KeyUUID:        "O campo {{field}} deve ser um UUID válido.",
	KeyNumeric:     "O campo {{field}} deve ser um número.",
	KeyInteger:     "O campo {{field}} deve ser um número inteiro.",
	KeyOneOf:       "O campo {{field}} deve ser um dos seguintes valores: {{values}}.",
	KeyPattern:     "O formato do campo {{field}} é inválido.",
	KeyUnique:      "O campo {{field}} não pode conter itens duplicados.",
}
