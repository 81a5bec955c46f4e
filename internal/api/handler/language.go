package handler

import (
	"tafseel/backend/internal/models"

	"github.com/gin-gonic/gin"
)

// RequestLanguage reconciles the three places a language tag can arrive from.
// Precedence, highest first: the ?lang query parameter, the "lang" cookie,
// then the Arabic-first default. The UI toggle is expected to write the
// cookie, so it participates indirectly.
func RequestLanguage(c *gin.Context) models.Language {
	raw := c.Query("lang")
	if raw == "" {
		raw, _ = c.Cookie("lang")
	}
	if raw == "" {
		raw = models.DefaultRawLanguage
	}
	return models.CanonicalLanguage(raw)
}
