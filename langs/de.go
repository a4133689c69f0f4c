package langs

// German (de).
var german = map[string]string{
	KeyRequired:    "Das Feld {{field}} ist erforderlich.",
	KeyMinLength:   "Das Feld {{field}} muss mindestens {{min}} Zeichen lang sein.",
	KeyMaxLength:   "Das Feld {{field}} darf höchstens {{max}} Zeichen lang sein.",
	KeyExactLength: "Das Feld {{field}} muss genau {{length}} Zeichen lang sein.",
	KeyMin:         "Das Feld {{field}} muss mindestens {{min}} sein.",
	KeyMax:         "Das Feld {{field}} darf nicht größer als {{max}} sein.",
	KeyBetween:     "Das Feld {{field}} muss zwischen {{min}} und {{max}} liegen.",
	KeyMinItems:    "Das Feld {{field}} muss mindestens {{min}} Einträge enthalten.",
	KeyMaxItems:    "Das Feld {{field}} darf nicht mehr als {{max}} Einträge enthalten.",
	KeyEmail:       "Das Feld {{field}} muss eine gültige E-Mail-Adresse sein.",
	KeyURL:         "Das Feld {{field}} muss eine gültige URL sein.",
	KeyUUID:        "Das Feld {{field}} muss eine gültige UUID sein.",
	KeyNumeric:     "Das Feld {{field}} muss eine Zahl sein.",
	KeyInteger:     "Das Feld {{field}} muss eine ganze Zahl sein.",
	KeyOneOf:       "Das Feld {{field}} muss einer der folgenden Werte sein: {{values}}.",
	KeyPattern:     "Das Feld {{field}} hat ein ungültiges Format.",
	KeyUnique:      "Das Feld {{field}} darf keine doppelten Einträge enthalten.",
}
