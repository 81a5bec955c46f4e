package models

import "strings"

// Language is the canonical two-value language enumeration used by all core
// logic. Raw tags from the outside world (cookies, query params, UI state) are
// funneled through CanonicalLanguage before they reach any resolver.
type Language string

const (
	LanguageArabic  Language = "ar"
	LanguageEnglish Language = "en"
)

// DefaultRawLanguage is what the HTTP boundary assumes when no source supplies
// a language tag at all. The product is Arabic-first.
const DefaultRawLanguage = "ar"

// CanonicalLanguage maps an arbitrary raw language tag onto the canonical
// enumeration. Any tag starting with "ar" (case-insensitive, so "AR", "ar-SA",
// "arabic" all qualify) maps to Arabic; everything else, including the empty
// string, maps to English.
func CanonicalLanguage(raw string) Language {
	if strings.HasPrefix(strings.ToLower(strings.TrimSpace(raw)), "ar") {
		return LanguageArabic
	}
	return LanguageEnglish
}

// Other returns the opposite language.
func (l Language) Other() Language {
	if l == LanguageArabic {
		return LanguageEnglish
	}
	return LanguageArabic
}
