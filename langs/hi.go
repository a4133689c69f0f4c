package langs

// Hindi (hi).
var hindi = map[string]string{
	KeyRequired:    "{{field}} फ़ील्ड आवश्यक है।",
	KeyMinLength:   "{{field}} फ़ील्ड में कम से कम {{min}} अक्षर होने चाहिए।",
	KeyMaxLength:   "{{field}} फ़ील्ड {{max}} अक्षरों से अधिक नहीं होनी चाहिए।",
	KeyExactLength: "{{field}} फ़ील्ड में ठीक {{length}} अक्षर होने चाहिए।",
	KeyMin:         "{{field}} फ़ील्ड कम से कम {{min}} होनी चाहिए।",
	KeyMax:         "{{field}} फ़ील्ड {{max}} से अधिक नहीं होनी चाहिए।",
	KeyBetween:     "{{field}} फ़ील्ड {{min}} और {{max}} के बीच होनी चाहिए।",
	KeyMinItems:    "{{field}} फ़ील्ड में कम से कम {{min}} आइटम होने चाहिए।",
	KeyMaxItems:    "{{field}} फ़ील्ड में {{max}} से अधिक आइटम नहीं होने चाहिए।",
	KeyEmail:       "{{field}} फ़ील्ड एक मान्य ईमेल पता होना चाहिए।",
	KeyURL:         "{{field}} फ़ील्ड एक मान्य URL होना चाहिए।",
	KeyUUID:        "{{field}} फ़ील्ड एक मान्य UUID होना चाहिए।",
	KeyNumeric:     "{{field}} फ़ील्ड एक संख्या होनी चाहिए।",
	KeyInteger:     "{{field}} फ़ील्ड एक पूर्णांक होना चाहिए।",
	KeyOneOf:       "{{field}} फ़ील्ड निम्न मानों में से एक होनी चाहिए: {{values}}।",
	KeyPattern:     "{{field}} फ़ील्ड का प्रारूप अमान्य है।",
	KeyUnique:      "{{field}} फ़ील्ड में दोहराए गए आइटम नहीं होने चाहिए।",
}
