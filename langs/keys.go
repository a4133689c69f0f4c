package langs

// Canonical message keys carried by every built-in language pack. Message
// templates use {{name}} placeholders that the caller interpolates.
const (
	// KeyRequired indicates a missing required value.
	KeyRequired = "validation.required"
	// KeyMinLength indicates a string shorter than the allowed minimum.
	KeyMinLength = "validation.min_length"
	// KeyMaxLength indicates a string longer than the allowed maximum.
	KeyMaxLength = "validation.max_length"
	// KeyExactLength indicates a string of the wrong exact length.
	KeyExactLength = "validation.exact_length"
	// KeyMin indicates a number below the allowed minimum.
	KeyMin = "validation.min"
	// KeyMax indicates a number above the allowed maximum.
	KeyMax = "validation.max"
	// KeyBetween indicates a number outside the allowed range.
	KeyBetween = "validation.between"
	// KeyMinItems indicates a collection with too few items.
	KeyMinItems = "validation.min_items"
	// KeyMaxItems indicates a collection with too many items.
	KeyMaxItems = "validation.max_items"
	// KeyEmail indicates an invalid email address.
	KeyEmail = "validation.email"
	// KeyURL indicates an invalid URL.
	KeyURL = "validation.url"
	// KeyUUID indicates an invalid UUID.
	KeyUUID = "validation.uuid"
	// KeyNumeric indicates a value that is not a number.
	KeyNumeric = "validation.numeric"
	// KeyInteger indicates a value that is not a whole number.
	KeyInteger = "validation.integer"
	// KeyOneOf indicates a value outside the allowed set.
	KeyOneOf = "validation.one_of"
	// KeyPattern indicates a value that does not match the expected format.
	KeyPattern = "validation.pattern"
	// KeyUnique indicates a collection with duplicate items.
	KeyUnique = "validation.unique"
)
