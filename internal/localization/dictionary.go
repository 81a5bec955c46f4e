// Package localization implements the bilingual text resolution core: the
// Arabic-script heuristic, the static phrase dictionary, and the total
// Resolve function that turns a LocalizedValue into a single display string.
package localization

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// Dictionary maps known Arabic phrases to their English equivalents. It ships
// with a built-in set of common proposal vocabulary and can be extended by
// loading JSON files (flat string-to-string maps) from a locales directory.
type Dictionary struct {
	phrases map[string]string
	mu      sync.RWMutex
}

// NewDictionary creates a dictionary pre-filled with the built-in phrases.
func NewDictionary() *Dictionary {
	d := &Dictionary{phrases: make(map[string]string, len(defaultPhrases))}
	for ar, en := range defaultPhrases {
		d.phrases[ar] = en
	}
	return d
}

// LoadDir merges every *.json file in the given directory into the
// dictionary. Each file must contain a flat object of Arabic phrase to
// English phrase. Later files override earlier entries.
func (d *Dictionary) LoadDir(path string) error {
	files, err := os.ReadDir(path)
	if err != nil {
		return fmt.Errorf("failed to read locales directory: %w", err)
	}

	for _, file := range files {
		if file.IsDir() || !strings.HasSuffix(file.Name(), ".json") {
			continue
		}

		data, err := os.ReadFile(filepath.Join(path, file.Name()))
		if err != nil {
			return fmt.Errorf("failed to read locale file %s: %w", file.Name(), err)
		}

		var phrases map[string]string
		if err := json.Unmarshal(data, &phrases); err != nil {
			return fmt.Errorf("failed to parse locale file %s: %w", file.Name(), err)
		}

		d.mu.Lock()
		for ar, en := range phrases {
			d.phrases[strings.TrimSpace(ar)] = en
		}
		d.mu.Unlock()
	}

	return nil
}

// Lookup returns the English phrase for a known Arabic phrase. Whitespace
// around the input is ignored.
func (d *Dictionary) Lookup(phrase string) (string, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	en, ok := d.phrases[strings.TrimSpace(phrase)]
	if !ok || en == "" {
		return "", false
	}
	return en, true
}

// Add registers a single phrase pair. Used by tests and the admin CLI.
func (d *Dictionary) Add(ar, en string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.phrases[strings.TrimSpace(ar)] = en
}
