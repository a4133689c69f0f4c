// Package localize resolves message keys to translated strings through a
// culture hierarchy, backed by lazily constructed per-culture language packs.
//
// A Registry owns a concurrent cache of culture code to pack, a pack source
// that builds packs for the cultures it knows, and a default pack that
// terminates every fallback chain. Lookups resolve the exact culture first,
// then its immediate parent ("pt-BR" to "pt"), then the default pack.
// Missing keys and unknown cultures are answered with an empty string, never
// with an error.
//
// # Basic Usage
//
// Create a Registry and resolve keys against it:
//
//	registry, err := localize.New()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	msg := registry.GetString(langs.KeyRequired, "de")
//	// "Das Feld {{field}} ist erforderlich."
//
//	msg = registry.GetString("checkout.total", "pt-BR")
//	// resolved from pt-BR, then pt, then the default pack
//
// # Built-In Language Packs
//
// The langs package carries validation message tables for 34 cultures. The
// default Source serves them; cultures outside the set resolve through the
// fallback chain like any other unknown code.
//
// # Custom Translations
//
// Overlay or extend packs at construction time, with nested maps flattened
// into dot-separated keys:
//
//	registry, err := localize.New(
//	    localize.WithTranslations("en", map[string]any{
//	        "checkout": map[string]any{
//	            "title": "Checkout",
//	            "total": "Total: %s",
//	        },
//	    }),
//	)
//
// or at runtime, one message at a time:
//
//	err := registry.AddTranslation("fr-CA", "checkout.title", "Caisse")
//
// # File-Based Translations
//
// Load per-culture translation files from an fs.FS, one file per culture
// named by its code (en.yaml, de.yml, pt-BR.json):
//
//	//go:embed translations
//	var translationsFS embed.FS
//
//	subFS, _ := fs.Sub(translationsFS, "translations")
//	registry, err := localize.New(
//	    localize.WithYAMLDir(subFS),
//	    localize.WithJSONDir(subFS),
//	)
//
// # Formatting
//
// GetString applies optional positional arguments to the resolved template
// with fmt semantics:
//
//	registry.GetString("checkout.total", "en", "$42.00")
//	// "Total: $42.00"
//
// Named placeholders use ReplacePlaceholders or a Translator:
//
//	localize.ReplacePlaceholders("The {{field}} is required.", localize.M{"field": "email"})
//	// "The email is required."
//
// # Fixed-Culture Views
//
// WithCulture returns a registry view pinned to one culture, sharing the
// cache, default pack, and enabled toggle with the original:
//
//	de := registry.WithCulture("de")
//	msg := de.GetString(langs.KeyEmail, "ignored")
//
// Translator is the same idea shaped for callback-style consumers:
//
//	t := registry.Translator("de")
//	msg := t.TranslateMessage(langs.KeyMinLength, map[string]any{"field": "name", "min": 2})
//
// # Accept-Language
//
// MatchCulture picks the best available culture for an HTTP Accept-Language
// header:
//
//	culture, ok := localize.MatchCulture(r.Header.Get("Accept-Language"), registry.Cultures())
//	if !ok {
//	    culture = registry.DefaultCulture()
//	}
//
// # Thread Safety
//
// All Registry, Pack, and Translator methods are safe for concurrent use.
// Concurrent first lookups of one culture share a single pack construction.
package localize
