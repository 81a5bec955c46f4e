package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"tafseel/backend/internal/config"
	"tafseel/backend/internal/models"
	"tafseel/backend/internal/normalize"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/lib/pq"
)

// GetSpec returns the raw stored document for a slug, exactly as the builder
// saved it, or 404 when the slug is unknown.
func (h *Handler) GetSpec(c *gin.Context) {
	slug := c.Param("slug")

	rec, err := h.Storage.GetSpec(slug)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load spec"})
		return
	}
	if rec == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Spec not found"})
		return
	}

	c.Data(http.StatusOK, "application/json", rec.Document)
}

// SaveSpec upserts a document under its slug. The body is the full
// SpecDocument JSON. Legacy plain-string services are normalized to bilingual
// records, missing list-item ids are backfilled, and pricing invariants are
// sanitized; nothing about the payload's shape is ever a reason to reject it.
func (h *Handler) SaveSpec(c *gin.Context) {
	tokenString, ok := bearerToken(c)
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization token missing"})
		return
	}
	if _, err := validateAndGetEditorID(tokenString); err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token or expired"})
		return
	}

	slug := c.Param("slug")

	body, err := c.GetRawData()
	if err != nil || len(body) == 0 || len(body) > config.MaxDocumentBytes {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	// Decoding is tolerant by construction: unknown shapes inside the
	// document degrade to empty values rather than failing the save.
	var doc models.SpecDocument
	if err := json.Unmarshal(body, &doc); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Body must be a JSON object"})
		return
	}

	doc.Services = normalize.Services(h.Dictionary, doc.Services)
	backfillIDs(&doc)
	doc.Pricing.Sanitize()

	stored, err := json.Marshal(&doc)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to encode spec"})
		return
	}

	rec := &models.SpecRecord{
		Slug:     slug,
		Document: stored,
		Tags:     pq.StringArray(doc.Tags),
	}
	if err := h.Storage.SaveSpec(rec); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save spec"})
		return
	}

	if err := h.Storage.PublishSpecUpdate(models.SpecUpdate{
		Slug:      slug,
		UpdatedAt: time.Now(),
		Document:  stored,
	}); err != nil {
		// Live previews miss this save; the document itself is safe.
		c.Error(err)
	}

	if h.Notifier != nil {
		clientName := ""
		if doc.Client != nil {
			clientName = doc.Client.Name.Plain
			if name := doc.Client.Name.Side(models.LanguageEnglish); name != "" {
				clientName = name
			}
		}
		go h.Notifier.SpecPublished(slug, clientName)
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "slug": slug})
}

// PreviewSpec returns the fully-resolved plain-string view of a document in
// the requested language. This is what the public rendering page consumes;
// it never contains raw {ar, en} objects.
func (h *Handler) PreviewSpec(c *gin.Context) {
	slug := c.Param("slug")

	rec, err := h.Storage.GetSpec(slug)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load spec"})
		return
	}
	if rec == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Spec not found"})
		return
	}

	// A malformed stored document degrades to an empty one; a broken field
	// must not blank the whole proposal page.
	var doc models.SpecDocument
	_ = json.Unmarshal(rec.Document, &doc)

	lang := RequestLanguage(c)
	view := h.Preview.Render(c.Request.Context(), &doc, lang)

	c.JSON(http.StatusOK, view)
}

// backfillIDs assigns a UUID to every list entry missing one. Ids are
// reconciliation keys for the builder UI, unique within their list.
func backfillIDs(doc *models.SpecDocument) {
	for i := range doc.Services {
		if doc.Services[i].ID == "" {
			doc.Services[i].ID = uuid.New().String()
		}
		for j := range doc.Services[i].Items {
			if doc.Services[i].Items[j].ID == "" {
				doc.Services[i].Items[j].ID = uuid.New().String()
			}
		}
	}
	if doc.Support != nil {
		for i := range doc.Support.Items {
			if doc.Support.Items[i].ID == "" {
				doc.Support.Items[i].ID = uuid.New().String()
			}
		}
	}
	if doc.Pricing != nil {
		for i := range doc.Pricing.AdditionalItems {
			if doc.Pricing.AdditionalItems[i].ID == "" {
				doc.Pricing.AdditionalItems[i].ID = uuid.New().String()
			}
		}
	}
}
