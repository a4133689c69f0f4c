package langs

// Finnish (fi).
var finnish = map[string]string{
	KeyRequired:    "Kenttä {{field}} on pakollinen.",
	KeyMinLength:   "Kentän {{field}} on oltava vähintään {{min}} merkkiä pitkä.",
	KeyMaxLength:   "Kenttä {{field}} saa olla enintään {{max}} merkkiä pitkä.",
	KeyExactLength: "Kentän {{field}} on oltava tasan {{length}} merkkiä pitkä.",
	KeyMin:         "Kentän {{field}} on oltava vähintään {{min}}.",
	KeyMax:         "Kenttä {{field}} ei saa olla suurempi kuin {{max}}.",
	KeyBetween:     "Kentän {{field}} on oltava {{min}} ja {{max}} välillä.",
	KeyMinItems:    "Kentän {{field}} on sisällettävä vähintään {{min}} kohdetta.",
	KeyMaxItems:    "Kenttä {{field}} saa sisältää enintään {{max}} kohdetta.",
	KeyEmail:       "Kentän {{field}} on oltava kelvollinen sähköpostiosoite.",
	KeyURL:         "Kentän {{field}} on oltava kelvollinen URL-osoite.",
	KeyUUID:        "Kentän {{field}} on oltava kelvollinen UUID.",
	KeyNumeric:     "Kentän {{field}} on oltava numero.",
	KeyInteger:     "Kentän {{field}} on oltava kokonaisluku.",
	KeyOneOf:       "Kentän {{field}} on oltava jokin seuraavista: {{values}}.",
	KeyPattern:     "Kentän {{field}} muoto on virheellinen.",
	KeyUnique:      "Kenttä {{field}} ei saa sisältää kaksoiskappaleita.",
}
