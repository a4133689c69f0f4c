package langs

// Portuguese (pt). European Portuguese; see pt_br.go for the Brazilian
// variant.
var portuguese = map[string]string{
	KeyRequired:    "O campo {{field}} é obrigatório.",
	KeyMinLength:   "O campo {{field}} deve ter pelo menos {{min}} caracteres.",
	KeyMaxLength:   "O campo {{field}} não deve exceder {{max}} caracteres.",
	KeyExactLength: "O campo {{field}} deve ter exatamente {{length}} caracteres.",
	KeyMin:         "O campo {{field}} deve ser no mínimo {{min}}.",
	KeyMax:         "O campo {{field}} não deve ser superior a {{max}}.",
	KeyBetween:     "O campo {{field}} deve estar entre {{min}} e {{max}}.",
	KeyMinItems:    "O campo {{field}} deve conter pelo menos {{min}} itens.",
	KeyMaxItems:    "O campo {{field}} não deve conter mais de {{max}} itens.",
	KeyEmail:       "O campo {{field}} deve ser um endereço de e-mail válido.",
	KeyURL:         "O campo {{field}} deve ser um URL válido.",
	KeyUUID:        "O campo {{field}} deve ser um UUID válido.",
	KeyNumeric:     "O campo {{field}} deve ser um número.",
	KeyInteger:     "O campo {{field}} deve ser um número inteiro.",
	KeyOneOf:       "O campo {{field}} deve ser um dos seguintes valores: {{values}}.",
	KeyPattern:     "O formato do campo {{field}} é inválido.",
	KeyUnique:      "O campo {{field}} não deve conter itens duplicados.",
}
