package localize

// Translator is a fixed-culture view over a Registry for hosts that accept
// translation callbacks, like validation engines. It removes the per-call
// culture argument; resolution and fallback behave exactly as on the
// Registry it wraps.
type Translator struct {
	registry *Registry
	culture  Culture
}

// T translates a key in the translator's culture. Optional args are applied
// as positional fmt arguments.
func (t *Translator) T(key string, args ...any) string {
	return t.registry.GetString(key, string(t.culture), args...)
}

// TranslateMessage translates a key and substitutes named {{placeholder}}
// values into the result. Placeholders without a matching value stay in the
// text. The signature matches the callback shape validation packages expect,
// allowing direct use as:
//
//	errs.Translate(translator.TranslateMessage)
func (t *Translator) TranslateMessage(key string, values map[string]any) string {
	return ReplacePlaceholders(t.T(key), values)
}

// All returns every key reachable from the translator's culture, parents
// included, with its resolved translation.
func (t *Translator) All() map[string]string {
	return t.registry.GetAllStrings(true, string(t.culture))
}

// Culture returns the translator's culture.
func (t *Translator) Culture() Culture {
	return t.culture
}
