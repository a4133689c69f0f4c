package langs

// Dutch (nl).
var dutch = map[string]string{
	KeyRequired:    "Het veld {{field}} is verplicht.",
	KeyMinLength:   "Het veld {{field}} moet minimaal {{min}} tekens bevatten.",
	KeyMaxLength:   "Het veld {{field}} mag niet langer zijn dan {{max}} tekens.",
	KeyExactLength: "Het veld {{field}} moet precies {{length}} tekens bevatten.",
	KeyMin:         "Het veld {{field}} moet minimaal {{min}} zijn.",
	KeyMax:         "Het veld {{field}} mag niet groter zijn dan {{max}}.",
	KeyBetween:     "Het veld {{field}} moet tussen {{min}} en {{max}} liggen.",
	KeyMinItems:    "Het veld {{field}} moet minimaal {{min}} items bevatten.",
	KeyMaxItems:    "Het veld {{field}} mag niet meer dan {{max}} items bevatten.",
	KeyEmail:       "Het veld {{field}} moet een geldig e-mailadres zijn.",
	KeyURL:         "Het veld {{field}} moet een geldige URL zijn.",
	KeyUUID:        "Het veld {{field}} moet een geldige UUID zijn.",
	KeyNumeric:     "Het veld {{field}} moet een getal zijn.",
	KeyInteger:     "Het veld {{field}} moet een geheel getal zijn.",
	KeyOneOf:       "Het veld {{field}} moet een van de volgende waarden zijn: {{values}}.",
	KeyPattern:     "Het veld {{field}} heeft een ongeldig formaat.",
	KeyUnique:      "Het veld {{field}} mag geen dubbele items bevatten.",
}
