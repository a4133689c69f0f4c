package langs

// French (fr).
var french = map[string]string{
	KeyRequired:    "Le champ {{field}} est obligatoire.",
	KeyMinLength:   "Le champ {{field}} doit contenir au moins {{min}} caractères.",
	KeyMaxLength:   "Le champ {{field}} ne doit pas dépasser {{max}} caractères.",
	KeyExactLength: "Le champ {{field}} doit contenir exactement {{length}} caractères.",
	KeyMin:         "Le champ {{field}} doit être supérieur ou égal à {{min}}.",
	KeyMax:         "Le champ {{field}} ne doit pas être supérieur à {{max}}.",
	KeyBetween:     "Le champ {{field}} doit être compris entre {{min}} et {{max}}.",
	KeyMinItems:    "Le champ {{field}} doit contenir au moins {{min}} éléments.",
	KeyMaxItems:    "Le champ {{field}} ne doit pas contenir plus de {{max}} éléments.",
	KeyEmail:       "Le champ {{field}} doit être une adresse e-mail valide.",
	KeyURL:         "Le champ {{field}} doit être une URL valide.",
	KeyUUID:        "Le champ {{field}} doit être un UUID valide.",
	KeyNumeric:     "Le champ {{field}} doit être un nombre.",
	KeyInteger:     "Le champ {{field}} doit être un nombre entier.",
	KeyOneOf:       "Le champ {{field}} doit être l'une des valeurs suivantes : {{values}}.",
	KeyPattern:     "Le format du champ {{field}} est invalide.",
	KeyUnique:      "Le champ {{field}} ne doit pas contenir de doublons.",
}
