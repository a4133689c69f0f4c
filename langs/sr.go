package langs

// Serbian (sr), Latin script.
var serbian = map[string]string{
	KeyRequired:    "Polje {{field}} je obavezno.",
	KeyMinLength:   "Polje {{field}} mora sadržati najmanje {{min}} znakova.",
	KeyMaxLength:   "Polje {{field}} ne sme sadržati više od {{max}} znakova.",
	KeyExactLength: "Polje {{field}} mora sadržati tačno {{length}} znakova.",
	KeyMin:         "Polje {{field}} mora biti najmanje {{min}}.",
	KeyMax:         "Polje {{field}} ne sme biti veće od {{max}}.",
	KeyBetween:     "Polje {{field}} mora biti između {{min}} i {{max}}.",
	KeyMinItems:    "Polje {{field}} mora sadržati najmanje {{min}} stavki.",
	KeyMaxItems:    "Polje {{field}} ne sme sadržati više od {{max}} stavki.",
	KeyEmail:       "Polje {{field}} mora biti ispravna e-mail adresa.",
	KeyURL:         "Polje {{field}} mora biti ispravan URL.",
	KeyUUID:        "Polje {{field}} mora biti ispravan UUID.",
	KeyNumeric:     "Polje {{field}} mora biti broj.",
	KeyInteger:     "Polje {{field}} mora biti ceo broj.",
	KeyOneOf:       "Polje {{field}} mora biti jedna od sledećih vrednosti: {{values}}.",
	KeyPattern:     "Polje {{field}} ima neispravan format.",
	KeyUnique:      "Polje {{field}} ne sme sadržati duplikate.",
}
