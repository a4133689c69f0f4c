package langs

// Indonesian (id).
var indonesian = map[string]string{
	KeyRequired:    "Kolom {{field}} wajib diisi.",
	KeyMinLength:   "Kolom {{field}} harus berisi minimal {{min}} karakter.",
	KeyMaxLength:   "Kolom {{field}} tidak boleh melebihi {{max}} karakter.",
	KeyExactLength: "Kolom {{field}} harus berisi tepat {{length}} karakter.",
	KeyMin:         "Kolom {{field}} minimal harus {{min}}.",
	KeyMax:         "Kolom {{field}} tidak boleh lebih besar dari {{max}}.",
	KeyBetween:     "Kolom {{field}} harus di antara {{min}} dan {{max}}.",
	KeyMinItems:    "Kolom {{field}} harus berisi minimal {{min}} item.",
	KeyMaxItems:    "Kolom {{field}} tidak boleh berisi lebih dari {{max}} item.",
	KeyEmail:       "Kolom {{field}} harus berupa alamat email yang valid.",
	KeyURL:         "Kolom {{field}} harus berupa URL yang valid.",
	KeyUUID:        "Kolom {{field}} harus berupa UUID yang valid.",
	KeyNumeric:     "Kolom {{field}} harus berupa angka.",
	KeyInteger:     "Kolom {{field}} harus berupa bilangan bulat.",
	KeyOneOf:       "Kolom {{field}} harus salah satu dari nilai berikut: {{values}}.",
	KeyPattern:     "Format kolom {{field}} tidak valid.",
	KeyUnique:      "Kolom {{field}} tidak boleh berisi item duplikat.",
}
