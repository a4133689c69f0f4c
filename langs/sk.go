package langs

// Slovak (sk).
var slovak = map[string]string{
	KeyRequired:    "Pole {{field}} je povinné.",
	KeyMinLength:   "Pole {{field}} musí mať aspoň {{min}} znakov.",
	KeyMaxLength:   "Pole {{field}} nesmie mať viac ako {{max}} znakov.",
	KeyExactLength: "Pole {{field}} musí mať presne {{length}} znakov.",
	KeyMin:         "Pole {{field}} musí byť aspoň {{min}}.",
	KeyMax:         "Pole {{field}} nesmie byť väčšie ako {{max}}.",
	KeyBetween:     "Pole {{field}} musí byť medzi {{min}} a {{max}}.",
	KeyMinItems:    "Pole {{field}} musí obsahovať aspoň {{min}} položiek.",
	KeyMaxItems:    "Pole {{field}} nesmie obsahovať viac ako {{max}} položiek.",
	KeyEmail:       "Pole {{field}} musí byť platná e-mailová adresa.",
	KeyURL:         "Pole {{field}} musí byť platná adresa URL.",
	KeyUUID:        "Pole {{field}} musí byť platné UUID.",
	KeyNumeric:     "Pole {{field}} musí byť číslo.",
	KeyInteger:     "Pole {{field}} musí byť celé číslo.",
	KeyOneOf:       "Pole {{field}} musí byť jedna z nasledujúcich hodnôt: {{values}}.",
	KeyPattern:     "Pole {{field}} má neplatný formát.",
	KeyUnique:      "Pole {{field}} nesmie obsahovať duplicitné položky.",
}
