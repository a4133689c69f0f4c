package localize

// Option configures a Registry during construction.
type Option func(*Registry) error

// WithDefaultCulture sets the culture whose pack serves as the terminal
// fallback for every lookup. Defaults to "en".
func WithDefaultCulture(culture string) Option {
	return func(r *Registry) error {
		c := ParseCulture(culture)
		if c == "" {
			return ErrEmptyCulture
		}
		r.store.defaultCulture = c
		return nil
	}
}

// WithSource replaces the built-in language packs with a custom pack
// factory.
func WithSource(source Source) Option {
	return func(r *Registry) error {
		if source == nil {
			return ErrNilSource
		}
		r.store.source = source
		return nil
	}
}

// WithCultureOverride pins every lookup to the given culture, ignoring
// per-call culture arguments. Equivalent to calling WithCulture on the
// constructed registry.
func WithCultureOverride(culture string) Option {
	return func(r *Registry) error {
		r.override = ParseCulture(culture)
		return nil
	}
}

// WithDisabled constructs the registry with localization switched off, so
// every lookup is answered by the default pack until SetEnabled(true).
func WithDisabled() Option {
	return func(r *Registry) error {
		r.store.enabled.Store(false)
		return nil
	}
}

// WithTranslations overlays messages onto the culture's pack at
// construction time. Nested maps are flattened into dot-separated keys, so
//
//	WithTranslations("de", map[string]any{
//	    "checkout": map[string]any{"title": "Kasse"},
//	})
//
// registers "checkout.title". For a culture the source knows, the built-in
// pack is constructed first and the messages are laid over it; unknown
// cultures get a pack holding only the given messages. An empty message map
// is a no-op.
func WithTranslations(culture string, messages map[string]any) Option {
	return func(r *Registry) error {
		c := ParseCulture(culture)
		if c == "" {
			return ErrEmptyCulture
		}
		if len(messages) == 0 {
			return nil
		}
		r.seeds = append(r.seeds, seedEntry{culture: c, messages: flattenMessages(messages, "")})
		return nil
	}
}
