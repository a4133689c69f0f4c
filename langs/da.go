package langs

// Danish (da).
var danish = map[string]string{
	KeyRequired:    "Feltet {{field}} er påkrævet.",
	KeyMinLength:   "Feltet {{field}} skal være mindst {{min}} tegn langt.",
	KeyMaxLength:   "Feltet {{field}} må højst være {{max}} tegn langt.",
	KeyExactLength: "Feltet {{field}} skal være præcis {{length}} tegn langt.",
	KeyMin:         "Feltet {{field}} skal være mindst {{min}}.",
	KeyMax:         "Feltet {{field}} må ikke være større end {{max}}.",
	KeyBetween:     "Feltet {{field}} skal være mellem {{min}} og {{max}}.",
	KeyMinItems:    "Feltet {{field}} skal indeholde mindst {{min}} elementer.",
	KeyMaxItems:    "Feltet {{field}} må ikke indeholde mere end {{max}} elementer.",
	KeyEmail:       "Feltet {{field}} skal være en gyldig e-mailadresse.",
	KeyURL:         "Feltet {{field}} skal være en gyldig URL.",
	KeyUUID:        "Feltet {{field}} skal være et gyldigt UUID.",
	KeyNumeric:     "Feltet {{field}} skal være et tal.",
	KeyInteger:     "Feltet {{field}} skal være et heltal.",
	KeyOneOf:       "Feltet {{field}} skal være en af følgende værdier: {{values}}.",
	KeyPattern:     "Feltet {{field}} har et ugyldigt format.",
	KeyUnique:      "Feltet {{field}} må ikke indeholde dubletter.",
}
