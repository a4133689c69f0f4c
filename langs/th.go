package langs

// Thai (th). Thai text does not use sentence-final periods.
var thai = map[string]string{
	KeyRequired:    "จำเป็นต้องระบุฟิลด์ {{field}}",
	KeyMinLength:   "ฟิลด์ {{field}} ต้องมีอย่างน้อย {{min}} อักขระ",
	KeyMaxLength:   "ฟิลด์ {{field}} ต้องไม่เกิน {{max}} อักขระ",
	KeyExactLength: "ฟิลด์ {{field}} ต้องมี {{length}} อักขระพอดี",
	KeyMin:         "ฟิลด์ {{field}} ต้องมีค่าอย่างน้อย {{min}}",
	KeyMax:         "ฟิลด์ {{field}} ต้องมีค่าไม่เกิน {{max}}",
	KeyBetween:     "ฟิลด์ {{field}} ต้องอยู่ระหว่าง {{min}} ถึง {{max}}",
	KeyMinItems:    "ฟิลด์ {{field}} ต้องมีรายการอย่างน้อย {{min}} รายการ",
	KeyMaxItems:    "ฟิลด์ {{field}} ต้องมีรายการไม่เกิน {{max}} รายการ",
	KeyEmail:       "ฟิลด์ {{field}} ต้องเป็นอีเมลที่ถูกต้อง",
	KeyURL:         "ฟิลด์ {{field}} ต้องเป็น URL ที่ถูกต้อง",
	KeyUUID:        "ฟิลด์ {{field}} ต้องเป็น UUID ที่ถูกต้อง",
	KeyNumeric:     "ฟิลด์ {{field}} ต้องเป็นตัวเลข",
	KeyInteger:     "ฟิลด์ {{field}} ต้องเป็นจำนวนเต็ม",
	KeyOneOf:       "ฟิลด์ {{field}} ต้องเป็นหนึ่งในค่าต่อไปนี้: {{values}}",
	KeyPattern:     "รูปแบบของฟิลด์ {{field}} ไม่ถูกต้อง",
	KeyUnique:      "ฟิลด์ {{field}} ต้องไม่มีรายการซ้ำ",
}
