package langs

// English (en). The canonical table: every other built-in pack carries
// exactly this key set.
var english = map[string]string{
	KeyRequired:    "The {{field}} field is required.",
	KeyMinLength:   "The {{field}} must be at least {{min}} characters long.",
	KeyMaxLength:   "The {{field}} must not exceed {{max}} characters.",
	KeyExactLength: "The {{field}} must be exactly {{length}} characters long.",
	KeyMin:         "The {{field}} must be at least {{min}}.",
	KeyMax:         "The {{field}} must not be greater than {{max}}.",
	KeyBetween:     "The {{field}} must be between {{min}} and {{max}}.",
	KeyMinItems:    "The {{field}} must contain at least {{min}} items.",
	KeyMaxItems:    "The {{field}} must not contain more than {{max}} items.",
	KeyEmail:       "The {{field}} must be a valid email address.",
	KeyURL:         "The {{field}} must be a valid URL.",
	KeyUUID:        "The {{field}} must be a valid UUID.",
	KeyNumeric:     "The {{field}} must be a number.",
	KeyInteger:     "The {{field}} must be a whole number.",
	KeyOneOf:       "The {{field}} must be one of: {{values}}.",
	KeyPattern:     "The {{field}} format is invalid.",
	KeyUnique:      "The {{field}} must not contain duplicate items.",
}
