package langs

// Italian (it).
var italian = map[string]string{
	KeyRequired:    "Il campo {{field}} è obbligatorio.",
	KeyMinLength:   "Il campo {{field}} deve contenere almeno {{min}} caratteri.",
	KeyMaxLength:   "Il campo {{field}} non deve superare {{max}} caratteri.",
	KeyExactLength: "Il campo {{field}} deve contenere esattamente {{length}} caratteri.",
	KeyMin:         "Il campo {{field}} deve essere almeno {{min}}.",
	KeyMax:         "Il campo {{field}} non deve essere maggiore di {{max}}.",
	KeyBetween:     "Il campo {{field}} deve essere compreso tra {{min}} e {{max}}.",
	KeyMinItems:    "Il campo {{field}} deve contenere almeno {{min}} elementi.",
	KeyMaxItems:    "Il campo {{field}} non deve contenere più di {{max}} elementi.",
	KeyEmail:       "Il campo {{field}} deve essere un indirizzo email valido.",
	KeyURL:         "Il campo {{field}} deve essere un URL valido.",
	KeyUUID:        "Il campo {{field}} deve essere un UUID valido.",
	KeyNumeric:     "Il campo {{field}} deve essere un numero.",
	KeyInteger:     "Il campo {{field}} deve essere un numero intero.",
	KeyOneOf:       "Il campo {{field}} deve essere uno dei seguenti valori: {{values}}.",
	KeyPattern:     "Il formato del campo {{field}} non è valido.",
	KeyUnique:      "Il campo {{field}} non deve contenere elementi duplicati.",
}
