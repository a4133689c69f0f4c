package langs

// Polish (pl).
var polish = map[string]string{
	KeyRequired:    "Pole {{field}} jest wymagane.",
	KeyMinLength:   "Pole {{field}} musi mieć co najmniej {{min}} znaków.",
	KeyMaxLength:   "Pole {{field}} nie może mieć więcej niż {{max}} znaków.",
	KeyExactLength: "Pole {{field}} musi mieć dokładnie {{length}} znaków.",
	KeyMin:         "Pole {{field}} musi wynosić co najmniej {{min}}.",
	KeyMax:         "Pole {{field}} nie może być większe niż {{max}}.",
	KeyBetween:     "Pole {{field}} musi zawierać się między {{min}} a {{max}}.",
	KeyMinItems:    "Pole {{field}} musi zawierać co najmniej {{min}} elementów.",
	KeyMaxItems:    "Pole {{field}} nie może zawierać więcej niż {{max}} elementów.",
	KeyEmail:       "Pole {{field}} musi być prawidłowym adresem e-mail.",
	KeyURL:         "Pole {{field}} musi być prawidłowym adresem URL.",
	KeyUUID:        "Pole {{field}} musi być prawidłowym UUID.",
	KeyNumeric:     "Pole {{field}} musi być liczbą.",
	KeyInteger:     "Pole {{field}} musi być liczbą całkowitą.",
	KeyOneOf:       "Pole {{field}} musi być jedną z następujących wartości: {{values}}.",
	KeyPattern:     "Pole {{field}} ma nieprawidłowy format.",
	KeyUnique:      "Pole {{field}} nie może zawierać duplikatów.",
}
