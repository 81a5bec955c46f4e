package translator

import (
	"regexp"
	"strings"

	"tafseel/backend/internal/config"
)

// Texts matching any of these shapes are never sent for translation: blank
// strings, phone-number-shaped strings, emails, URLs, and the fixed brand-name
// set from config. Brand names outside that set get translated like ordinary
// text; the list is intentionally not expanded here.
var (
	phoneRe = regexp.MustCompile(`^\+?[0-9][0-9\s\-().]{5,}$`)
	emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

func shouldSkip(text string) bool {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return true
	}
	if phoneRe.MatchString(trimmed) || emailRe.MatchString(trimmed) {
		return true
	}
	if isURL(trimmed) {
		return true
	}
	for _, brand := range config.BrandNames {
		if strings.EqualFold(trimmed, brand) {
			return true
		}
	}
	return false
}

func isURL(text string) bool {
	lower := strings.ToLower(text)
	return strings.HasPrefix(lower, "http://") ||
		strings.HasPrefix(lower, "https://") ||
		strings.HasPrefix(lower, "www.")
}
