package langs_test

import (
	"regexp"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/localize/langs"
)

var placeholderPattern = regexp.MustCompile(`\{\{[a-z]+\}\}`)

func placeholders(message string) []string {
	seen := make(map[string]struct{})
	var tokens []string
	for _, token := range placeholderPattern.FindAllString(message, -1) {
		if _, ok := seen[token]; ok {
			continue
		}
		seen[token] = struct{}{}
		tokens = append(tokens, token)
	}
	sort.Strings(tokens)
	return tokens
}

func TestCultures(t *testing.T) {
	t.Parallel()

	cultures := langs.Cultures()
	require.Len(t, cultures, 34)
	require.True(t, sort.StringsAreSorted(cultures))
	require.Contains(t, cultures, "en")
	require.Contains(t, cultures, "pt-BR")
	require.Contains(t, cultures, "zh-CN")
	require.Contains(t, cultures, "zh-TW")
}

func TestMessages(t *testing.T) {
	t.Parallel()

	t.Run("returns the table for a known code", func(t *testing.T) {
		t.Parallel()
		table, ok := langs.Messages("de")
		require.True(t, ok)
		require.NotEmpty(t, table[langs.KeyRequired])
	})

	t.Run("reports unknown codes", func(t *testing.T) {
		t.Parallel()
		_, ok := langs.Messages("xx")
		require.False(t, ok)
	})

	t.Run("matches canonical codes only", func(t *testing.T) {
		t.Parallel()
		_, ok := langs.Messages("EN")
		require.False(t, ok)
		_, ok = langs.Messages("pt-br")
		require.False(t, ok)
	})

	t.Run("returns an independent copy", func(t *testing.T) {
		t.Parallel()
		first, ok := langs.Messages("en")
		require.True(t, ok)
		first[langs.KeyRequired] = "mutated"

		second, ok := langs.Messages("en")
		require.True(t, ok)
		require.NotEqual(t, "mutated", second[langs.KeyRequired])
	})
}

func TestTableParity(t *testing.T) {
	t.Parallel()

	canonical, ok := langs.Messages("en")
	require.True(t, ok)

	canonicalKeys := make([]string, 0, len(canonical))
	for key := range canonical {
		canonicalKeys = append(canonicalKeys, key)
	}

	for _, code := range langs.Cultures() {
		code := code
		t.Run(code, func(t *testing.T) {
			t.Parallel()
			table, ok := langs.Messages(code)
			require.True(t, ok)

			keys := make([]string, 0, len(table))
			for key := range table {
				keys = append(keys, key)
				require.True(t, strings.HasPrefix(key, "validation."), "key %q outside the validation namespace", key)
				require.NotEmpty(t, table[key], "empty message for %q", key)
			}
			require.ElementsMatch(t, canonicalKeys, keys)

			for key, message := range table {
				require.Equal(t, placeholders(canonical[key]), placeholders(message),
					"placeholder mismatch for %q", key)
			}
		})
	}
}
