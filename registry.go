package localize

import (
	"fmt"
	"sync"
	"sync/atomic"

	"golang.org/x/sync/singleflight"
)

// DefaultCulture is the fallback culture used when no default culture option
// is provided.
const DefaultCulture Culture = "en"

// store holds the state shared between a registry and its WithCulture views:
// one pack cache, one fallback pack, one enabled toggle.
type store struct {
	mu sync.RWMutex
	// packs caches resolution results per canonical culture code. A nil value
	// records that the source has no pack for the code, so doomed factory
	// calls are not repeated. Entries are only removed by Clear.
	packs          map[Culture]*Pack
	group          singleflight.Group
	source         Source
	fallback       *Pack
	defaultCulture Culture
	enabled        atomic.Bool
}

// seedEntry is a construction-time translation overlay collected by options
// and applied once the source and fallback pack exist.
type seedEntry struct {
	culture  Culture
	messages map[string]string
}

// Registry resolves message keys against lazily constructed language packs,
// walking one level up the culture hierarchy when the exact culture has no
// pack and falling back to a default pack that is always present. Missing
// keys, cultures, and packs are normal outcomes answered with an empty
// string, never with an error.
//
// All methods are safe for concurrent use. The zero value is not usable;
// construct with New.
type Registry struct {
	store    *store
	seeds    []seedEntry
	override Culture
}

// New creates a Registry. Without options it serves the built-in language
// packs with "en" as the default culture.
func New(opts ...Option) (*Registry, error) {
	r := &Registry{
		store: &store{
			packs:          make(map[Culture]*Pack),
			defaultCulture: DefaultCulture,
		},
	}
	r.store.enabled.Store(true)

	for _, opt := range opts {
		if err := opt(r); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}

	if r.store.source == nil {
		r.store.source = DefaultSource()
	}

	// The fallback pack must exist even when the source does not know the
	// default culture; lookups rely on it being non-nil.
	fallback := r.store.source.Create(r.store.defaultCulture)
	if fallback == nil {
		fallback = NewPack(r.store.defaultCulture, nil)
	}
	r.store.fallback = fallback
	r.store.packs[r.store.defaultCulture] = fallback

	for _, seed := range r.seeds {
		r.applySeed(seed)
	}
	r.seeds = nil

	return r, nil
}

// applySeed overlays seeded translations onto the culture's pack, warming the
// built-in pack first so partial seeds keep the remaining built-in messages.
func (r *Registry) applySeed(seed seedEntry) {
	st := r.store

	pack := st.packs[seed.culture]
	if pack == nil {
		pack = st.source.Create(seed.culture)
		if pack == nil {
			pack = NewPack(seed.culture, nil)
		}
		st.packs[seed.culture] = pack
	}

	for key, message := range seed.messages {
		pack.Set(key, message)
	}
}

// GetString returns the translation for key in the requested culture,
// resolved through the fallback chain: exact culture, its immediate parent,
// then the default pack, both for a missing pack and for a key missing from
// the resolved pack. Returns "" when the key is unknown everywhere.
//
// Optional args are applied to the found template as positional fmt
// arguments; a verb/argument mismatch surfaces fmt's %! markers in the
// returned string rather than an error.
func (r *Registry) GetString(key, culture string, args ...any) string {
	st := r.store

	if !st.enabled.Load() {
		return formatMessage(st.fallback.Translation(key), args)
	}

	pack := r.resolvePack(r.lookupCulture(culture))
	if pack == nil {
		pack = st.fallback
	}

	message := pack.Translation(key)
	if message == "" && pack != st.fallback {
		message = st.fallback.Translation(key)
	}

	return formatMessage(message, args)
}

// GetAllStrings returns every known key paired with its translation for the
// culture, valued through GetString so per-key fallback applies. With
// includeParentCultures the key set is the union over the culture's full
// ancestor chain; without it, only the resolved pack's own keys are listed.
func (r *Registry) GetAllStrings(includeParentCultures bool, culture string) map[string]string {
	st := r.store

	if !st.enabled.Load() {
		return r.collect(st.fallback.Keys(), culture)
	}

	target := r.lookupCulture(culture)

	if !includeParentCultures {
		pack := r.resolvePack(target)
		if pack == nil {
			pack = st.fallback
		}
		return r.collect(pack.Keys(), culture)
	}

	var keys []string
	seen := make(map[string]struct{})
	for _, level := range target.Chain() {
		pack := r.getOrCreate(level)
		if pack == nil {
			continue
		}
		for _, key := range pack.Keys() {
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}
			keys = append(keys, key)
		}
	}
	return r.collect(keys, culture)
}

func (r *Registry) collect(keys []string, culture string) map[string]string {
	result := make(map[string]string, len(keys))
	for _, key := range keys {
		result[key] = r.GetString(key, culture)
	}
	return result
}

// AddTranslation registers or overwrites a single translation for the
// culture. When a pack is already cached for it, built-in or ad-hoc, the
// translation is inserted into that pack in place. When none is cached, a
// fresh empty pack is registered under the exact canonical code without
// consulting the Source; for a built-in culture this shadows the built-in
// pack until Clear, so translations extending a built-in culture are best
// registered after a warming lookup or through WithTranslations.
func (r *Registry) AddTranslation(culture, key, message string) error {
	if culture == "" {
		return ErrEmptyCulture
	}
	if key == "" {
		return ErrEmptyKey
	}
	if message == "" {
		return ErrEmptyMessage
	}

	st := r.store
	c := ParseCulture(culture)

	st.mu.Lock()
	pack := st.packs[c]
	if pack == nil {
		pack = NewPack(c, nil)
		st.packs[c] = pack
	}
	st.mu.Unlock()

	pack.Set(key, message)
	return nil
}

// Clear empties the pack cache, discarding ad-hoc packs and runtime
// customizations. Built-in packs, the default culture's included, are
// reconstructed through the Source on their next lookup. The fallback pack
// object itself survives and keeps serving terminal fallback.
func (r *Registry) Clear() {
	st := r.store
	st.mu.Lock()
	st.packs = make(map[Culture]*Pack)
	st.mu.Unlock()
}

// SetEnabled toggles localization. While disabled, every lookup is answered
// by the default pack alone. The toggle is shared with WithCulture views.
func (r *Registry) SetEnabled(enabled bool) {
	r.store.enabled.Store(enabled)
}

// Enabled reports whether localized lookups are active.
func (r *Registry) Enabled() bool {
	return r.store.enabled.Load()
}

// DefaultCulture returns the culture of the fallback pack.
func (r *Registry) DefaultCulture() Culture {
	return r.store.defaultCulture
}

// Cultures returns the Source's fixed culture domain.
func (r *Registry) Cultures() []Culture {
	return r.store.source.Cultures()
}

// WithCulture returns a view of the registry that resolves every lookup
// against the given culture, ignoring per-call culture arguments. The view
// shares the cache, fallback pack, and enabled toggle with the original by
// reference; nothing is copied. An empty code clears the override.
func (r *Registry) WithCulture(culture string) *Registry {
	return &Registry{store: r.store, override: ParseCulture(culture)}
}

// Translator returns a fixed-culture view for hosts that pass translation
// callbacks around, such as validation engines. An explicit culture wins over
// a WithCulture override on the receiver; an empty culture binds to the
// override when one is set, else the default culture.
func (r *Registry) Translator(culture string) *Translator {
	c := ParseCulture(culture)
	if c == "" {
		c = r.lookupCulture("")
	}
	return &Translator{registry: &Registry{store: r.store}, culture: c}
}

// lookupCulture picks the culture a lookup runs against: the view override
// wins, then the caller's culture, then the default.
func (r *Registry) lookupCulture(culture string) Culture {
	if r.override != "" {
		return r.override
	}
	if c := ParseCulture(culture); c != "" {
		return c
	}
	return r.store.defaultCulture
}

// resolvePack returns the cached pack for the culture, constructing it
// through the source on first use, and retries once with the parent culture
// when the exact code has none. A nil return means neither level has a pack.
// The full chain walk belongs to GetAllStrings, not here.
func (r *Registry) resolvePack(culture Culture) *Pack {
	if pack := r.getOrCreate(culture); pack != nil {
		return pack
	}
	if parent := culture.Parent(); parent != culture {
		return r.getOrCreate(parent)
	}
	return nil
}

// getOrCreate returns the cache entry for the culture, consulting the source
// and recording the result, nil included, on first use. Concurrent first
// lookups of one code share a single construction; a slot already claimed by
// AddTranslation wins over the constructed pack, which is discarded.
func (r *Registry) getOrCreate(culture Culture) *Pack {
	st := r.store

	st.mu.RLock()
	pack, ok := st.packs[culture]
	st.mu.RUnlock()
	if ok {
		return pack
	}

	v, _, _ := st.group.Do(string(culture), func() (any, error) {
		st.mu.RLock()
		cached, ok := st.packs[culture]
		st.mu.RUnlock()
		if ok {
			return cached, nil
		}

		created := st.source.Create(culture)

		st.mu.Lock()
		if cached, ok := st.packs[culture]; ok {
			created = cached
		} else {
			st.packs[culture] = created
		}
		st.mu.Unlock()

		return created, nil
	})

	pack, _ = v.(*Pack)
	return pack
}
