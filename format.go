package localize

import (
	"fmt"
	"strings"
)

// M is a shorthand map type for named placeholder values.
type M map[string]any

// ReplacePlaceholders substitutes {{name}} tokens in the template with values
// from the map. Tokens without a matching value stay in place, keeping partial
// interpolation visible to the caller.
//
// Example:
//
//	ReplacePlaceholders("The {{field}} must be at least {{min}}.", M{"field": "age", "min": 18})
//	// "The age must be at least 18."
func ReplacePlaceholders(template string, values M) string {
	if len(values) == 0 || !strings.Contains(template, "{{") {
		return template
	}

	result := template
	for name, value := range values {
		token := "{{" + name + "}}"
		if !strings.Contains(result, token) {
			continue
		}
		result = strings.ReplaceAll(result, token, fmt.Sprint(value))
	}
	return result
}

// formatMessage applies positional arguments to a message template.
// Mismatched arguments surface fmt's %! markers in the output instead of
// failing the lookup. An empty template passes through untouched so a missing
// translation never gains formatting noise.
func formatMessage(message string, args []any) string {
	if message == "" || len(args) == 0 {
		return message
	}
	return fmt.Sprintf(message, args...)
}
