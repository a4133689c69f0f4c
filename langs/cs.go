package langs

// Czech (cs).
var czech = map[string]string{
	KeyRequired:    "Pole {{field}} je povinné.",
	KeyMinLength:   "Pole {{field}} musí mít alespoň {{min}} znaků.",
	KeyMaxLength:   "Pole {{field}} nesmí mít více než {{max}} znaků.",
	KeyExactLength: "Pole {{field}} musí mít přesně {{length}} znaků.",
	KeyMin:         "Pole {{field}} musí být alespoň {{min}}.",
	KeyMax:         "Pole {{field}} nesmí být větší než {{max}}.",
	KeyBetween:     "Pole {{field}} musí být mezi {{min}} a {{max}}.",
	KeyMinItems:    "Pole {{field}} musí obsahovat alespoň {{min}} položek.",
	KeyMaxItems:    "Pole {{field}} nesmí obsahovat více než {{max}} položek.",
	KeyEmail:       "Pole {{field}} musí být platná e-mailová adresa.",
	KeyURL:         "Pole {{field}} musí být platná adresa URL.",
	KeyUUID:        "Pole {{field}} musí být platné UUID.",
	KeyNumeric:     "Pole {{field}} musí být číslo.",
	KeyInteger:     "Pole {{field}} musí být celé číslo.",
	KeyOneOf:       "Pole {{field}} musí být jedna z následujících hodnot: {{values}}.",
	KeyPattern:     "Pole {{field}} má neplatný formát.",
	KeyUnique:      "Pole {{field}} nesmí obsahovat duplicitní položky.",
}
