package langs

// Bulgarian (bg).
var bulgarian = map[string]string{
	KeyRequired:    "Полето {{field}} е задължително.",
	KeyMinLength:   "Полето {{field}} трябва да съдържа поне {{min}} знака.",
	KeyMaxLength:   "Полето {{field}} не трябва да надвишава {{max}} знака.",
	KeyExactLength: "Полето {{field}} трябва да съдържа точно {{length}} знака.",
	KeyMin:         "Полето {{field}} трябва да бъде поне {{min}}.",
	KeyMax:         "Полето {{field}} не трябва да бъде по-голямо от {{max}}.",
	KeyBetween:     "Полето {{field}} трябва да бъде между {{min}} и {{max}}.",
	KeyMinItems:    "Полето {{field}} трябва да съдържа поне {{min}} елемента.",
	KeyMaxItems:    "Полето {{field}} не трябва да съдържа повече от {{max}} елемента.",
	KeyEmail:       "Полето {{field}} трябва да бъде валиден имейл адрес.",
	KeyURL:         "Полето {{field}} трябва да бъде валиден URL.",
	KeyUUID:        "Полето {{field}} трябва да бъде валиден UUID.",
	KeyNumeric:     "Полето {{field}} трябва да бъде число.",
	KeyInteger:     "Полето {{field}} трябва да бъде цяло число.",
	KeyOneOf:       "Полето {{field}} трябва да бъде една от следните стойности: {{values}}.",
	KeyPattern:     "Полето {{field}} има невалиден формат.",
	KeyUnique:      "Полето {{field}} не трябва да съдържа дублирани елементи.",
}
