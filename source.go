package localize

import "github.com/dmitrymomot/localize/langs"

// Source constructs language packs for the cultures it knows about.
// Implementations must behave as pure factories: Create returns a brand-new
// pack on every call for a known culture and nil otherwise, never caches, and
// never fails. A nil result is the normal "no pack for this culture" signal
// that drives parent and default fallback in the registry. Sources must be
// safe for concurrent use.
type Source interface {
	// Create builds a fresh pack for the culture, or returns nil when the
	// culture is outside the source's domain.
	Create(culture Culture) *Pack

	// Cultures lists the source's fixed, versioned culture domain.
	Cultures() []Culture
}

// builtinSource serves the compiled-in message tables of the langs package.
type builtinSource struct {
	cultures []Culture
}

// DefaultSource returns the Source backed by the built-in language packs.
func DefaultSource() Source {
	codes := langs.Cultures()
	cultures := make([]Culture, len(codes))
	for i, code := range codes {
		cultures[i] = Culture(code)
	}
	return &builtinSource{cultures: cultures}
}

func (s *builtinSource) Create(culture Culture) *Pack {
	messages, ok := langs.Messages(string(culture))
	if !ok {
		return nil
	}
	return NewPack(culture, messages)
}

func (s *builtinSource) Cultures() []Culture {
	return s.cultures
}
