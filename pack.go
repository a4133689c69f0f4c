package localize

import (
	"maps"
	"sort"
	"sync"
)

// Pack holds the translations of a single culture. Built-in and ad-hoc packs
// share this one type; built-in packs are read-only by convention only. All
// methods are safe for concurrent use, and readers never observe a partially
// inserted entry.
type Pack struct {
	mu       sync.RWMutex
	messages map[string]string
	culture  Culture
}

// NewPack creates a pack for the culture, copying the provided messages.
// A nil map yields an empty pack.
func NewPack(culture Culture, messages map[string]string) *Pack {
	p := &Pack{
		culture:  culture,
		messages: make(map[string]string, len(messages)),
	}
	maps.Copy(p.messages, messages)
	return p
}

// Translation returns the message template for key, or the empty string when
// the pack does not carry it. A miss is a normal outcome, not an error.
func (p *Pack) Translation(key string) string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.messages[key]
}

// Set inserts or overwrites the message for key.
func (p *Pack) Set(key, message string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.messages[key] = message
}

// Keys returns a sorted snapshot of the keys the pack carries.
func (p *Pack) Keys() []string {
	p.mu.RLock()
	defer p.mu.RUnlock()

	keys := make([]string, 0, len(p.messages))
	for key := range p.messages {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// Len returns the number of translations in the pack.
func (p *Pack) Len() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return len(p.messages)
}

// Culture returns the culture the pack serves.
func (p *Pack) Culture() Culture {
	return p.culture
}
