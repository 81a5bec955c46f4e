package models

import (
	"encoding/json"
	"time"

	"github.com/lib/pq" // required for pq.StringArray
)

// SpecRecord is the persisted row for a specification document. The document
// body is stored as opaque JSON; the store performs no schema enforcement.
type SpecRecord struct {
	// Slug is the unique, URL-safe key under which the proposal is published.
	Slug string `gorm:"primaryKey" json:"slug"`
	// Document is the raw SpecDocument JSON exactly as the builder saved it.
	Document json.RawMessage `gorm:"type:jsonb" json:"document"`
	// Tags are free-form keywords the builder attaches for listing/search.
	Tags pq.StringArray `gorm:"type:text[]" json:"tags,omitempty"`
	// CreatedAt is the timestamp of the first save.
	CreatedAt time.Time `json:"created_at"`
	// UpdatedAt is the timestamp of the latest upsert.
	UpdatedAt time.Time `json:"updated_at"`
}
