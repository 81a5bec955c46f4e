package config

import "time"

const (
	// Store
	SpecCacheTTL     = 10 * time.Minute
	MaxDocumentBytes = 1 << 20

	// Translation provider
	DefaultTranslateEndpoint = "http://localhost:5000/translate"
	TranslateTimeout         = 15 * time.Second

	// Auth
	EditorTokenTTL = 72 * time.Hour
	TokenIssuer    = "tafseel-service"

	// Pricing
	DefaultCurrency = "SAR"
)

// SupportedCurrencies is the fixed set of 3-letter codes the pricing section
// accepts. Anything else is replaced with DefaultCurrency at save time.
var SupportedCurrencies = map[string]bool{
	"SAR": true,
	"AED": true,
	"USD": true,
	"EUR": true,
	"KWD": true,
	"QAR": true,
	"BHD": true,
	"EGP": true,
}

// BrandNames are proper nouns that must never be sent to the translator.
// The set is a fixed heuristic; brand names outside it are indistinguishable
// from ordinary text and will be translated like any other string.
var BrandNames = []string{
	"WhatsApp",
	"Instagram",
	"Facebook",
	"LinkedIn",
	"TikTok",
	"Snapchat",
	"Twitter",
	"YouTube",
	"Telegram",
	"Google",
	"Google Ads",
	"SEO",
}
