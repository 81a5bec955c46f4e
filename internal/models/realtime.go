package models

import (
	"encoding/json"
	"time"
)

// SpecUpdate is the event published on the per-slug pub/sub channel whenever a
// specification is saved. Live preview clients subscribed to the slug receive
// it and re-render.
type SpecUpdate struct {
	Slug      string          `json:"slug"`
	UpdatedAt time.Time       `json:"updated_at"`
	Document  json.RawMessage `json:"document,omitempty"`
}
