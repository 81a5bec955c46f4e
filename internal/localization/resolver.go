package localization

import (
	"strings"

	"tafseel/backend/internal/models"
)

// arabicRanges are the Unicode blocks treated as Arabic script: the base
// block, its supplements, and the presentation forms.
var arabicRanges = [][2]rune{
	{0x0600, 0x06FF},
	{0x0750, 0x077F},
	{0x08A0, 0x08FF},
	{0xFB50, 0xFDFF},
	{0xFE70, 0xFEFF},
}

// IsArabicScript reports whether the text contains at least one Arabic code
// point. It is a deliberate heuristic, not language detection: a single Arabic
// character marks the whole string as Arabic, mixed-script strings included.
func IsArabicScript(text string) bool {
	for _, r := range text {
		for _, rng := range arabicRanges {
			if r >= rng[0] && r <= rng[1] {
				return true
			}
		}
	}
	return false
}

// Resolver turns localized values into single display strings. It is pure
// aside from reading the (append-only) phrase dictionary.
type Resolver struct {
	dict *Dictionary
}

// NewResolver creates a resolver over the given phrase dictionary.
func NewResolver(dict *Dictionary) *Resolver {
	return &Resolver{dict: dict}
}

// Resolve returns the display string for the value in the requested language.
// The function is total: it always returns a string (possibly empty) and never
// an object, so the view layer can never be handed a raw {ar, en} record.
//
// Legacy bare strings have no language tag; when English is requested and the
// string is Arabic script, the phrase dictionary is consulted and the original
// returned unchanged on a miss. Object values prefer their requested side and
// fall back to the opposite side, with the same dictionary heuristic applied
// to an Arabic fallback requested in English.
func (r *Resolver) Resolve(v models.LocalizedValue, lang models.Language) string {
	if v.IsPlain {
		return r.resolveText(v.Plain, lang)
	}

	if primary := v.Side(lang); strings.TrimSpace(primary) != "" {
		return primary
	}

	fallback := v.Side(lang.Other())
	if strings.TrimSpace(fallback) == "" {
		return ""
	}
	return r.resolveText(fallback, lang)
}

// resolveText applies the Arabic-detection plus dictionary heuristic to an
// untagged string. It never fails; unknown phrases pass through unchanged.
func (r *Resolver) resolveText(text string, lang models.Language) string {
	if lang == models.LanguageEnglish && IsArabicScript(text) {
		if en, ok := r.dict.Lookup(text); ok {
			return en
		}
	}
	return text
}
