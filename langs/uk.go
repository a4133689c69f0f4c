package langs

// Ukrainian (uk).
var ukrainian = map[string]string{
	KeyRequired:    "Поле {{field}} є обов'язковим.",
	KeyMinLength:   "Поле {{field}} має містити щонайменше {{min}} символів.",
	KeyMaxLength:   "Поле {{field}} не має перевищувати {{max}} символів.",
	KeyExactLength: "Поле {{field}} має містити рівно {{length}} символів.",
	KeyMin:         "Поле {{field}} має бути не менше {{min}}.",
	KeyMax:         "Поле {{field}} не має бути більше {{max}}.",
	KeyBetween:     "Поле {{field}} має бути між {{min}} і {{max}}.",
	KeyMinItems:    "Поле {{field}} має містити щонайменше {{min}} елементів.",
	KeyMaxItems:    "Поле {{field}} не має містити більше {{max}} елементів.",
	KeyEmail:       "Поле {{field}} має бути дійсною адресою електронної пошти.",
	KeyURL:         "Поле {{field}} має бути дійсним URL.",
	KeyUUID:        "Поле {{field}} має бути дійсним UUID.",
	KeyNumeric:     "Поле {{field}} має бути числом.",
	KeyInteger:     "Поле {{field}} має бути цілим числом.",
	KeyOneOf:       "Поле {{field}} має бути одним із таких значень: {{values}}.",
	KeyPattern:     "Поле {{field}} має неправильний формат.",
	KeyUnique:      "Поле {{field}} не має містити дублікатів.",
}
