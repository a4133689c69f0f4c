package langs

// Spanish (es).
var spanish = map[string]string{
	KeyRequired:    "El campo {{field}} es obligatorio.",
	KeyMinLength:   "El campo {{field}} debe tener al menos {{min}} caracteres.",
	KeyMaxLength:   "El campo {{field}} no debe superar los {{max}} caracteres.",
	KeyExactLength: "El campo {{field}} debe tener exactamente {{length}} caracteres.",
	KeyMin:         "El campo {{field}} debe ser como mínimo {{min}}.",
	KeyMax:         "El campo {{field}} no debe ser mayor que {{max}}.",
	KeyBetween:     "El campo {{field}} debe estar entre {{min}} y {{max}}.",
	KeyMinItems:    "El campo {{field}} debe contener al menos {{min}} elementos.",
	KeyMaxItems:    "El campo {{field}} no debe contener más de {{max}} elementos.",
	KeyEmail:       "El campo {{field}} debe ser una dirección de correo electrónico válida.",
	KeyURL:         "El campo {{field}} debe ser una URL válida.",
	KeyUUID:        "El campo {{field}} debe ser un UUID válido.",
	KeyNumeric:     "El campo {{field}} debe ser un número.",
	KeyInteger:     "El campo {{field}} debe ser un número entero.",
	KeyOneOf:       "El campo {{field}} debe ser uno de los siguientes valores: {{values}}.",
	KeyPattern:     "El formato del campo {{field}} no es válido.",
	KeyUnique:      "El campo {{field}} no debe contener elementos duplicados.",
}
