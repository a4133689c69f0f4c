package langs

// Hungarian (hu).
var hungarian = map[string]string{
	KeyRequired:    "A(z) {{field}} mező kitöltése kötelező.",
	KeyMinLength:   "A(z) {{field}} mezőnek legalább {{min}} karakter hosszúnak kell lennie.",
	KeyMaxLength:   "A(z) {{field}} mező nem lehet hosszabb {{max}} karakternél.",
	KeyExactLength: "A(z) {{field}} mezőnek pontosan {{length}} karakter hosszúnak kell lennie.",
	KeyMin:         "A(z) {{field}} mező értékének legalább {{min}} kell lennie.",
	KeyMax:         "A(z) {{field}} mező értéke nem lehet nagyobb, mint {{max}}.",
	KeyBetween:     "A(z) {{field}} mező értékének {{min}} és {{max}} között kell lennie.",
	KeyMinItems:    "A(z) {{field}} mezőnek legalább {{min}} elemet kell tartalmaznia.",
	KeyMaxItems:    "A(z) {{field}} mező legfeljebb {{max}} elemet tartalmazhat.",
	KeyEmail:       "A(z) {{field}} mezőnek érvényes e-mail címnek kell lennie.",
	KeyURL:         "A(z) {{field}} mezőnek érvényes URL-nek kell lennie.",
	KeyUUID:        "A(z) {{field}} mezőnek érvényes UUID-nak kell lennie.",
	KeyNumeric:     "A(z) {{field}} mezőnek számnak kell lennie.",
	KeyInteger:     "A(z) {{field}} mezőnek egész számnak kell lennie.",
	KeyOneOf:       "A(z) {{field}} mező értéke a következők egyike lehet: {{values}}.",
	KeyPattern:     "A(z) {{field}} mező formátuma érvénytelen.",
	KeyUnique:      "A(z) {{field}} mező nem tartalmazhat ismétlődő elemeket.",
}
