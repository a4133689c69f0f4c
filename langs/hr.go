package langs

// Croatian (hr).
var croatian = map[string]string{
	KeyRequired:    "Polje {{field}} je obavezno.",
	KeyMinLength:   "Polje {{field}} mora sadržavati najmanje {{min}} znakova.",
	KeyMaxLength:   "Polje {{field}} ne smije sadržavati više od {{max}} znakova.",
	KeyExactLength: "Polje {{field}} mora sadržavati točno {{length}} znakova.",
	KeyMin:         "Polje {{field}} mora biti najmanje {{min}}.",
	KeyMax:         "Polje {{field}} ne smije biti veće od {{max}}.",
	KeyBetween:     "Polje {{field}} mora biti između {{min}} i {{max}}.",
	KeyMinItems:    "Polje {{field}} mora sadržavati najmanje {{min}} stavki.",
	KeyMaxItems:    "Polje {{field}} ne smije sadržavati više od {{max}} stavki.",
	KeyEmail:       "Polje {{field}} mora biti valjana e-mail adresa.",
	KeyURL:         "Polje {{field}} mora biti valjan URL.",
	KeyUUID:        "Polje {{field}} mora biti valjan UUID.",
	KeyNumeric:     "Polje {{field}} mora biti broj.",
	KeyInteger:     "Polje {{field}} mora biti cijeli broj.",
	KeyOneOf:       "Polje {{field}} mora biti jedna od sljedećih vrijednosti: {{values}}.",
	KeyPattern:     "Polje {{field}} ima nevažeći format.",
	KeyUnique:      "Polje {{field}} ne smije sadržavati duplikate.",
}
