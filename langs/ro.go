package langs

// Romanian (ro).
var romanian = map[string]string{
	KeyRequired:    "Câmpul {{field}} este obligatoriu.",
	KeyMinLength:   "Câmpul {{field}} trebuie să conțină cel puțin {{min}} caractere.",
	KeyMaxLength:   "Câmpul {{field}} nu trebuie să depășească {{max}} caractere.",
	KeyExactLength: "Câmpul {{field}} trebuie să conțină exact {{length}} caractere.",
	KeyMin:         "Câmpul {{field}} trebuie să fie cel puțin {{min}}.",
	KeyMax:         "Câmpul {{field}} nu trebuie să fie mai mare de {{max}}.",
	KeyBetween:     "Câmpul {{field}} trebuie să fie între {{min}} și {{max}}.",
	KeyMinItems:    "Câmpul {{field}} trebuie să conțină cel puțin {{min}} elemente.",
	KeyMaxItems:    "Câmpul {{field}} nu trebuie să conțină mai mult de {{max}} elemente.",
	KeyEmail:       "Câmpul {{field}} trebuie să fie o adresă de e-mail validă.",
	KeyURL:         "Câmpul {{field}} trebuie să fie un URL valid.",
	KeyUUID:        "Câmpul {{field}} trebuie să fie un UUID valid.",
	KeyNumeric:     "Câmpul {{field}} trebuie să fie un număr.",
	KeyInteger:     "Câmpul {{field}} trebuie să fie un număr întreg.",
	KeyOneOf:       "Câmpul {{field}} trebuie să fie una dintre următoarele valori: {{values}}.",
	KeyPattern:     "Câmpul {{field}} are un format invalid.",
	KeyUnique:      "Câmpul {{field}} nu trebuie să conțină duplicate.",
}
