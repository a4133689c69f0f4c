package langs

// Greek (el).
var greek = map[string]string{
	KeyRequired:    "Το πεδίο {{field}} είναι υποχρεωτικό.",
	KeyMinLength:   "Το πεδίο {{field}} πρέπει να έχει τουλάχιστον {{min}} χαρακτήρες.",
	KeyMaxLength:   "Το πεδίο {{field}} δεν πρέπει να υπερβαίνει τους {{max}} χαρακτήρες.",
	KeyExactLength: "Το πεδίο {{field}} πρέπει να έχει ακριβώς {{length}} χαρακτήρες.",
	KeyMin:         "Το πεδίο {{field}} πρέπει να είναι τουλάχιστον {{min}}.",
	KeyMax:         "Το πεδίο {{field}} δεν πρέπει να είναι μεγαλύτερο από {{max}}.",
	KeyBetween:     "Το πεδίο {{field}} πρέπει να είναι μεταξύ {{min}} και {{max}}.",
	KeyMinItems:    "Το πεδίο {{field}} πρέπει να περιέχει τουλάχιστον {{min}} στοιχεία.",
	KeyMaxItems:    "Το πεδίο {{field}} δεν πρέπει να περιέχει περισσότερα από {{max}} στοιχεία.",
	KeyEmail:       "Το πεδίο {{field}} πρέπει να είναι έγκυρη διεύθυνση email.",
	KeyURL:         "Το πεδίο {{field}} πρέπει να είναι έγκυρο URL.",
	KeyUUID:        "Το πεδίο {{field}} πρέπει να είναι έγκυρο UUID.",
	KeyNumeric:     "Το πεδίο {{field}} πρέπει να είναι αριθμός.",
	KeyInteger:     "Το πεδίο {{field}} πρέπει να είναι ακέραιος αριθμός.",
	KeyOneOf:       "Το πεδίο {{field}} πρέπει να είναι μία από τις ακόλουθες τιμές: {{values}}.",
	KeyPattern:     "Το πεδίο {{field}} έχει μη έγκυρη μορφή.",
	KeyUnique:      "Το πεδίο {{field}} δεν πρέπει να περιέχει διπλότυπα στοιχεία.",
}
