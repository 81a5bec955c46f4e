package handler

import (
	"encoding/json"
	"net/http"

	"tafseel/backend/internal/models"
	"tafseel/backend/internal/translator"

	"github.com/gin-gonic/gin"
)

// translateRequest mirrors the LibreTranslate wire shape: q is either a
// single string or an array of strings.
type translateRequest struct {
	Q      json.RawMessage `json:"q"`
	Source string          `json:"source"`
	Target string          `json:"target"`
	Format string          `json:"format"`
}

// Translate proxies translation requests from the builder UI through the
// shared cache and skip-list, so the UI gets the same dedup and fallback
// behavior as server-side preview resolution.
func (h *Handler) Translate(c *gin.Context) {
	var req translateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	source := req.Source
	if source == "" {
		source = translator.SourceAuto
	}
	target := models.CanonicalLanguage(req.Target)
	ctx := c.Request.Context()

	var single string
	if err := json.Unmarshal(req.Q, &single); err == nil {
		c.JSON(http.StatusOK, gin.H{"translatedText": h.Translator.Translate(ctx, single, source, target)})
		return
	}

	var batch []string
	if err := json.Unmarshal(req.Q, &batch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "q must be a string or an array of strings"})
		return
	}

	translated := h.Translator.TranslateMany(ctx, batch, source, target)
	results := make([]gin.H, len(translated))
	for i, text := range translated {
		results[i] = gin.H{"translatedText": text}
	}
	c.JSON(http.StatusOK, results)
}
