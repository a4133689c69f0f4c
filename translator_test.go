package localize_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/localize"
	"github.com/dmitrymomot/localize/langs"
)

func TestTranslator(t *testing.T) {
	t.Parallel()

	t.Run("translates in the fixed culture", func(t *testing.T) {
		t.Parallel()
		registry, err := localize.New()
		require.NoError(t, err)

		translator := registry.Translator("de")
		require.Equal(t, localize.Culture("de"), translator.Culture())
		require.Equal(t, requiredDE, translator.T(langs.KeyRequired))
	})

	t.Run("empty culture binds to the default", func(t *testing.T) {
		t.Parallel()
		registry, err := localize.New()
		require.NoError(t, err)

		translator := registry.Translator("")
		require.Equal(t, localize.Culture("en"), translator.Culture())
		require.Equal(t, requiredEN, translator.T(langs.KeyRequired))
	})

	t.Run("explicit culture wins over a view override", func(t *testing.T) {
		t.Parallel()
		registry, err := localize.New()
		require.NoError(t, err)

		translator := registry.WithCulture("de").Translator("fr")
		require.Equal(t, localize.Culture("fr"), translator.Culture())
		require.Equal(t, requiredFR, translator.T(langs.KeyRequired))
		require.Equal(t, requiredFR, translator.All()[langs.KeyRequired])
	})

	t.Run("empty culture binds to the view override", func(t *testing.T) {
		t.Parallel()
		registry, err := localize.New()
		require.NoError(t, err)

		translator := registry.WithCulture("de").Translator("")
		require.Equal(t, localize.Culture("de"), translator.Culture())
		require.Equal(t, requiredDE, translator.T(langs.KeyRequired))
	})

	t.Run("applies positional arguments", func(t *testing.T) {
		t.Parallel()
		registry, err := localize.New(
			localize.WithTranslations("de", map[string]any{"welcome": "Willkommen, %s!"}),
		)
		require.NoError(t, err)

		translator := registry.Translator("de")
		require.Equal(t, "Willkommen, Ana!", translator.T("welcome", "Ana"))
	})

	t.Run("substitutes named placeholders", func(t *testing.T) {
		t.Parallel()
		registry, err := localize.New()
		require.NoError(t, err)

		translator := registry.Translator("de")
		result := translator.TranslateMessage(langs.KeyMinLength, map[string]any{
			"field": "name",
			"min":   2,
		})
		require.Equal(t, "Das Feld name muss mindestens 2 Zeichen lang sein.", result)
	})

	t.Run("keeps placeholders without values", func(t *testing.T) {
		t.Parallel()
		registry, err := localize.New()
		require.NoError(t, err)

		translator := registry.Translator("de")
		result := translator.TranslateMessage(langs.KeyRequired, map[string]any{})
		require.Equal(t, requiredDE, result)
	})

	t.Run("resolves through the fallback chain", func(t *testing.T) {
		t.Parallel()
		registry, err := localize.New()
		require.NoError(t, err)

		translator := registry.Translator("de-AT")
		require.Equal(t, requiredDE, translator.T(langs.KeyRequired))
	})

	t.Run("lists all reachable keys", func(t *testing.T) {
		t.Parallel()
		registry, err := localize.New()
		require.NoError(t, err)

		all := registry.Translator("pt-BR").All()
		require.Len(t, all, builtinKeyCount)
		require.Equal(t, minLengthPTBR, all[langs.KeyMinLength])
	})
}
