// Package translator wraps the external batch-translation provider with a
// process-wide memoizing cache, request deduplication, and a skip-list for
// text that must never be machine-translated.
package translator

import (
	"context"
	"log"
	"strings"
	"sync"

	"tafseel/backend/internal/models"
)

// SourceAuto asks the provider to detect the source language itself.
const SourceAuto = "auto"

// Provider is the external machine-translation collaborator. Implementations
// must return one translation per input text, in input order.
type Provider interface {
	TranslateBatch(ctx context.Context, texts []string, source string, target models.Language) ([]string, error)
}

type cacheKey struct {
	Source string
	Target models.Language
	Text   string
}

// Cache memoizes completed translations for the lifetime of the process. It
// is append-only: entries are written once per unique key and never evicted.
// Volume is small (proposal documents, not bulk text), so unbounded growth is
// acceptable. Construct one per application and inject it, so tests can start
// from a fresh empty cache.
type Cache struct {
	mu      sync.RWMutex
	entries map[cacheKey]string
}

// NewCache creates an empty translation cache.
func NewCache() *Cache {
	return &Cache{entries: make(map[cacheKey]string)}
}

// Get returns the cached translation for the key, if present.
func (c *Cache) Get(source string, target models.Language, text string) (string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	v, ok := c.entries[cacheKey{Source: source, Target: target, Text: text}]
	return v, ok
}

// Put stores a completed translation. Re-translating the same text yields the
// same value, so overwrites are idempotent.
func (c *Cache) Put(source string, target models.Language, text, translated string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[cacheKey{Source: source, Target: target, Text: text}] = translated
}

// Len returns the number of cached entries.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Service is the translation front door used by the preview resolver and the
// translate endpoint.
type Service struct {
	provider Provider
	cache    *Cache
}

// NewService creates a translation service over the given provider and cache.
func NewService(provider Provider, cache *Cache) *Service {
	return &Service{provider: provider, cache: cache}
}

// TranslateMany translates a batch of texts. The output always has the same
// length and order as the input, under every skip, cache, and network outcome,
// and no error ever escapes to the caller.
//
// Skipped texts (blank, phone numbers, emails, URLs, known brand names) are
// returned unchanged. Remaining texts are served from the cache where
// possible; the rest go out in exactly one provider call. If that call fails
// in any way, every uncached member falls back to its original text and a
// warning is logged.
func (s *Service) TranslateMany(ctx context.Context, texts []string, source string, target models.Language) []string {
	out := make([]string, len(texts))

	// Deduplicated fetch list: pendingTexts preserves first-seen order,
	// pendingIdx maps each unique text to every output slot that needs it.
	var pendingTexts []string
	pendingIdx := make(map[string][]int)

	for i, text := range texts {
		if shouldSkip(text) {
			out[i] = text
			continue
		}
		if cached, ok := s.cache.Get(source, target, text); ok {
			out[i] = cached
			continue
		}
		if _, seen := pendingIdx[text]; !seen {
			pendingTexts = append(pendingTexts, text)
		}
		pendingIdx[text] = append(pendingIdx[text], i)
	}

	if len(pendingTexts) == 0 {
		return out
	}

	results, err := s.provider.TranslateBatch(ctx, pendingTexts, source, target)
	if err != nil || len(results) != len(pendingTexts) {
		// Any failure of the batch call causes all its members to fall back
		// to the original text; partial success is not distinguished.
		log.Printf("WARN: translation batch of %d texts failed, returning originals: %v", len(pendingTexts), err)
		for text, slots := range pendingIdx {
			for _, i := range slots {
				out[i] = text
			}
		}
		return out
	}

	for j, text := range pendingTexts {
		translated := results[j]
		if strings.TrimSpace(translated) == "" {
			translated = text
		}
		s.cache.Put(source, target, text, translated)
		for _, i := range pendingIdx[text] {
			out[i] = translated
		}
	}
	return out
}

// Translate translates a single text. When the target is English the call is
// a no-op returning the input unchanged; on-demand translation only runs
// toward Arabic on this path (English gaps are covered by the dictionary
// heuristic in the resolver).
func (s *Service) Translate(ctx context.Context, text, source string, target models.Language) string {
	if target == models.LanguageEnglish {
		return text
	}
	return s.TranslateMany(ctx, []string{text}, source, target)[0]
}
