package localize_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/localize"
)

func TestReplacePlaceholders(t *testing.T) {
	t.Parallel()

	t.Run("replaces a single placeholder", func(t *testing.T) {
		t.Parallel()
		result := localize.ReplacePlaceholders("Hello, {{name}}!", localize.M{"name": "Ana"})
		require.Equal(t, "Hello, Ana!", result)
	})

	t.Run("replaces multiple placeholders", func(t *testing.T) {
		t.Parallel()
		result := localize.ReplacePlaceholders(
			"The {{field}} must be between {{min}} and {{max}}.",
			localize.M{"field": "age", "min": 18, "max": 65},
		)
		require.Equal(t, "The age must be between 18 and 65.", result)
	})

	t.Run("replaces repeated placeholders everywhere", func(t *testing.T) {
		t.Parallel()
		result := localize.ReplacePlaceholders("{{name}} and {{name}} again", localize.M{"name": "Bo"})
		require.Equal(t, "Bo and Bo again", result)
	})

	t.Run("keeps unmatched placeholders in place", func(t *testing.T) {
		t.Parallel()
		result := localize.ReplacePlaceholders("Hello, {{name}}!", localize.M{"other": "x"})
		require.Equal(t, "Hello, {{name}}!", result)
	})

	t.Run("stringifies non-string values", func(t *testing.T) {
		t.Parallel()
		result := localize.ReplacePlaceholders("Minimum is {{min}}.", localize.M{"min": 42})
		require.Equal(t, "Minimum is 42.", result)
	})

	t.Run("returns template unchanged for empty values", func(t *testing.T) {
		t.Parallel()
		require.Equal(t, "Hello, {{name}}!", localize.ReplacePlaceholders("Hello, {{name}}!", nil))
		require.Equal(t, "Hello, {{name}}!", localize.ReplacePlaceholders("Hello, {{name}}!", localize.M{}))
	})

	t.Run("returns template unchanged without placeholders", func(t *testing.T) {
		t.Parallel()
		require.Equal(t, "Hello!", localize.ReplacePlaceholders("Hello!", localize.M{"name": "Ana"}))
	})
}
