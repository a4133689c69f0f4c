package langs

// Hebrew (he).
var hebrew = map[string]string{
	KeyRequired:    "השדה {{field}} הוא שדה חובה.",
	KeyMinLength:   "השדה {{field}} חייב להכיל לפחות {{min}} תווים.",
	KeyMaxLength:   "השדה {{field}} לא יכול להכיל יותר מ-{{max}} תווים.",
	KeyExactLength: "השדה {{field}} חייב להכיל בדיוק {{length}} תווים.",
	KeyMin:         "השדה {{field}} חייב להיות לפחות {{min}}.",
	KeyMax:         "השדה {{field}} לא יכול להיות גדול מ-{{max}}.",
	KeyBetween:     "השדה {{field}} חייב להיות בין {{min}} ל-{{max}}.",
	KeyMinItems:    "השדה {{field}} חייב להכיל לפחות {{min}} פריטים.",
	KeyMaxItems:    "השדה {{field}} לא יכול להכיל יותר מ-{{max}} פריטים.",
	KeyEmail:       "השדה {{field}} חייב להיות כתובת אימייל תקינה.",
	KeyURL:         "השדה {{field}} חייב להיות כתובת URL תקינה.",
	KeyUUID:        "השדה {{field}} חייב להיות UUID תקין.",
	KeyNumeric:     "השדה {{field}} חייב להיות מספר.",
	KeyInteger:     "השדה {{field}} חייב להיות מספר שלם.",
	KeyOneOf:       "השדה {{field}} חייב להיות אחד מהערכים הבאים: {{values}}.",
	KeyPattern:     "הפורמט של השדה {{field}} אינו תקין.",
	KeyUnique:      "השדה {{field}} לא יכול להכיל פריטים כפולים.",
}
