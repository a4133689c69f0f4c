package langs

// Turkish (tr).
var turkish = map[string]string{
	KeyRequired:    "{{field}} alanı zorunludur.",
	KeyMinLength:   "{{field}} alanı en az {{min}} karakter olmalıdır.",
	KeyMaxLength:   "{{field}} alanı en fazla {{max}} karakter olabilir.",
	KeyExactLength: "{{field}} alanı tam olarak {{length}} karakter olmalıdır.",
	KeyMin:         "{{field}} alanı en az {{min}} olmalıdır.",
	KeyMax:         "{{field}} alanı {{max}} değerinden büyük olmamalıdır.",
	KeyBetween:     "{{field}} alanı {{min}} ile {{max}} arasında olmalıdır.",
	KeyMinItems:    "{{field}} alanı en az {{min}} öğe içermelidir.",
	KeyMaxItems:    "{{field}} alanı en fazla {{max}} öğe içerebilir.",
	KeyEmail:       "{{field}} alanı geçerli bir e-posta adresi olmalıdır.",
	KeyURL:         "{{field}} alanı geçerli bir URL olmalıdır.",
	KeyUUID:        "{{field}} alanı geçerli bir UUID olmalıdır.",
	KeyNumeric:     "{{field}} alanı bir sayı olmalıdır.",
	KeyInteger:     "{{field}} alanı bir tam sayı olmalıdır.",
	KeyOneOf:       "{{field}} alanı şu değerlerden biri olmalıdır: {{values}}.",
	KeyPattern:     "{{field}} alanının biçimi geçersizdir.",
	KeyUnique:      "{{field}} alanı yinelenen öğeler içermemelidir.",
}
