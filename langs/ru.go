package langs

// Russian (ru).
var russian = map[string]string{
	KeyRequired:    "Поле {{field}} обязательно для заполнения.",
	KeyMinLength:   "Поле {{field}} должно содержать не менее {{min}} символов.",
	KeyMaxLength:   "Поле {{field}} не должно превышать {{max}} символов.",
	KeyExactLength: "Поле {{field}} должно содержать ровно {{length}} символов.",
	KeyMin:         "Поле {{field}} должно быть не менее {{min}}.",
	KeyMax:         "Поле {{field}} не должно быть больше {{max}}.",
	KeyBetween:     "Поле {{field}} должно быть между {{min}} и {{max}}.",
	KeyMinItems:    "Поле {{field}} должно содержать не менее {{min}} элементов.",
	KeyMaxItems:    "Поле {{field}} не должно содержать более {{max}} элементов.",
	KeyEmail:       "Поле {{field}} должно быть действительным адресом электронной почты.",
	KeyURL:         "Поле {{field}} должно быть действительным URL.",
	KeyUUID:        "Поле {{field}} должно быть действительным UUID.",
	KeyNumeric:     "Поле {{field}} должно быть числом.",
	KeyInteger:     "Поле {{field}} должно быть целым числом.",
	KeyOneOf:       "Поле {{field}} должно быть одним из следующих значений: {{values}}.",
	KeyPattern:     "Поле {{field}} имеет неверный формат.",
	KeyUnique:      "Поле {{field}} не должно содержать повторяющихся элементов.",
}
