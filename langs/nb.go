package langs

// Norwegian Bokmål (nb).
var norwegian = map[string]string{
	KeyRequired:    "Feltet {{field}} er påkrevd.",
	KeyMinLength:   "Feltet {{field}} må være minst {{min}} tegn langt.",
	KeyMaxLength:   "Feltet {{field}} kan ikke være lengre enn {{max}} tegn.",
	KeyExactLength: "Feltet {{field}} må være nøyaktig {{length}} tegn langt.",
	KeyMin:         "Feltet {{field}} må være minst {{min}}.",
	KeyMax:         "Feltet {{field}} kan ikke være større enn {{max}}.",
	KeyBetween:     "Feltet {{field}} må være mellom {{min}} og {{max}}.",
	KeyMinItems:    "Feltet {{field}} må inneholde minst {{min}} elementer.",
	KeyMaxItems:    "Feltet {{field}} kan ikke inneholde flere enn {{max}} elementer.",
	KeyEmail:       "Feltet {{field}} må være en gyldig e-postadresse.",
	KeyURL:         "Feltet {{field}} må være en gyldig URL.",
	KeyUUID:        "Feltet {{field}} må være en gyldig UUID.",
	KeyNumeric:     "Feltet {{field}} må være et tall.",
	KeyInteger:     "Feltet {{field}} må være et heltall.",
	KeyOneOf:       "Feltet {{field}} må være en av følgende verdier: {{values}}.",
	KeyPattern:     "Feltet {{field}} har et ugyldig format.",
	KeyUnique:      "Feltet {{field}} kan ikke inneholde duplikater.",
}
