package langs

// Swedish (sv).
var swedish = map[string]string{
	KeyRequired:    "Fältet {{field}} är obligatoriskt.",
	KeyMinLength:   "Fältet {{field}} måste vara minst {{min}} tecken långt.",
	KeyMaxLength:   "Fältet {{field}} får inte vara längre än {{max}} tecken.",
	KeyExactLength: "Fältet {{field}} måste vara exakt {{length}} tecken långt.",
	KeyMin:         "Fältet {{field}} måste vara minst {{min}}.",
	KeyMax:         "Fältet {{field}} får inte vara större än {{max}}.",
	KeyBetween:     "Fältet {{field}} måste vara mellan {{min}} och {{max}}.",
	KeyMinItems:    "Fältet {{field}} måste innehålla minst {{min}} element.",
	KeyMaxItems:    "Fältet {{field}} får inte innehålla fler än {{max}} element.",
	KeyEmail:       "Fältet {{field}} måste vara en giltig e-postadress.",
	KeyURL:         "Fältet {{field}} måste vara en giltig URL.",
	KeyUUID:        "Fältet {{field}} måste vara ett giltigt UUID.",
	KeyNumeric:     "Fältet {{field}} måste vara ett tal.",
	KeyInteger:     "Fältet {{field}} måste vara ett heltal.",
	KeyOneOf:       "Fältet {{field}} måste vara ett av följande värden: {{values}}.",
	KeyPattern:     "Fältet {{field}} har ett ogiltigt format.",
	KeyUnique:      "Fältet {{field}} får inte innehålla dubbletter.",
}
