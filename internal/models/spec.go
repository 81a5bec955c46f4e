package models

import (
	"encoding/json"
	"strconv"

	"tafseel/backend/internal/config"
)

// SpecDocument is the persisted unit: a full service-specification proposal,
// keyed by an opaque URL-safe slug. The store treats it as opaque JSON; every
// structural assumption is enforced here, defensively, at decode time.
type SpecDocument struct {
	Client   *ClientInfo     `json:"client,omitempty"`
	Services []ServiceRecord `json:"services,omitempty"`
	Support  *SupportSection `json:"support,omitempty"`
	Pricing  *Pricing        `json:"pricing,omitempty"`
	Contact  *ContactInfo    `json:"contact,omitempty"`
	Tags     []string        `json:"tags,omitempty"`
}

// ClientInfo describes the client the proposal is addressed to.
type ClientInfo struct {
	Name        LocalizedValue `json:"name,omitempty"`
	Company     LocalizedValue `json:"company,omitempty"`
	Email       string         `json:"email,omitempty"`
	Phone       string         `json:"phone,omitempty"`
	Description LocalizedValue `json:"description,omitempty"`
}

// ServiceRecord is one offered service with its sub-items.
type ServiceRecord struct {
	ID          string         `json:"id,omitempty"`
	Name        LocalizedValue `json:"name,omitempty"`
	Description LocalizedValue `json:"description,omitempty"`
	Icon        string         `json:"icon,omitempty"`
	Items       []ServiceItem  `json:"items,omitempty"`
}

// ServiceItem is a single deliverable inside a service.
type ServiceItem struct {
	ID          string         `json:"id,omitempty"`
	Text        LocalizedValue `json:"name,omitempty"`
	Description LocalizedValue `json:"description,omitempty"`
}

// SupportSection lists post-delivery support entries.
type SupportSection struct {
	Items []SupportItem `json:"items,omitempty"`
}

// SupportItem is a single support entry.
type SupportItem struct {
	ID          string         `json:"id,omitempty"`
	Title       LocalizedValue `json:"title,omitempty"`
	Description LocalizedValue `json:"description,omitempty"`
}

// Pricing carries the commercial terms of the proposal.
type Pricing struct {
	BasePrice       float64        `json:"basePrice"`
	Currency        string         `json:"currency,omitempty"`
	AdditionalItems []PriceItem    `json:"additionalItems,omitempty"`
	Notes           LocalizedValue `json:"notes,omitempty"`
}

// PriceItem is one additional billable line.
type PriceItem struct {
	ID          string         `json:"id,omitempty"`
	Description LocalizedValue `json:"description,omitempty"`
	Amount      float64        `json:"amount"`
}

// ContactInfo holds the vendor's contact details. Plain strings only; these
// are never translated.
type ContactInfo struct {
	Email   string `json:"email,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Website string `json:"website,omitempty"`
}

// UnmarshalJSON decodes a service record while applying the field alias
// tables: the display name may arrive as "name" or "title", the sub-items as
// "items" or "subServices". Malformed records decode to the zero value.
func (s *ServiceRecord) UnmarshalJSON(data []byte) error {
	*s = ServiceRecord{}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil
	}

	s.ID = stringOrNumber(raw["id"])
	s.Name = ServiceNameAliases.pickLocalized(raw)
	_ = s.Description.UnmarshalJSON(orNull(raw["description"]))
	s.Icon = stringFromRaw(raw["icon"])

	if itemsRaw := ServiceItemsAliases.pickRaw(raw); itemsRaw != nil {
		var items []ServiceItem
		if err := json.Unmarshal(itemsRaw, &items); err == nil {
			s.Items = items
		}
	}
	return nil
}

// UnmarshalJSON decodes a sub-item, resolving its display text through the
// "name"/"text"/"label" alias table.
func (i *ServiceItem) UnmarshalJSON(data []byte) error {
	*i = ServiceItem{}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil
	}

	i.ID = stringOrNumber(raw["id"])
	i.Text = ItemTextAliases.pickLocalized(raw)
	_ = i.Description.UnmarshalJSON(orNull(raw["description"]))
	return nil
}

// Sanitize enforces the pricing invariants in place: negative amounts are
// clamped to zero and an unsupported currency code falls back to the default.
// Broken pricing must not block saving or rendering a proposal.
func (p *Pricing) Sanitize() {
	if p == nil {
		return
	}
	if p.BasePrice < 0 {
		p.BasePrice = 0
	}
	if !config.SupportedCurrencies[p.Currency] {
		p.Currency = config.DefaultCurrency
	}
	for idx := range p.AdditionalItems {
		if p.AdditionalItems[idx].Amount < 0 {
			p.AdditionalItems[idx].Amount = 0
		}
	}
}

// Clone returns a deep copy of the document. The preview resolver writes
// translations into a clone so the caller's document is never mutated.
func (d *SpecDocument) Clone() *SpecDocument {
	if d == nil {
		return nil
	}
	out := &SpecDocument{}

	if d.Client != nil {
		client := *d.Client
		out.Client = &client
	}
	if d.Services != nil {
		out.Services = make([]ServiceRecord, len(d.Services))
		for i, svc := range d.Services {
			cloned := svc
			if svc.Items != nil {
				cloned.Items = make([]ServiceItem, len(svc.Items))
				copy(cloned.Items, svc.Items)
			}
			out.Services[i] = cloned
		}
	}
	if d.Support != nil {
		section := SupportSection{}
		if d.Support.Items != nil {
			section.Items = make([]SupportItem, len(d.Support.Items))
			copy(section.Items, d.Support.Items)
		}
		out.Support = &section
	}
	if d.Pricing != nil {
		pricing := *d.Pricing
		if d.Pricing.AdditionalItems != nil {
			pricing.AdditionalItems = make([]PriceItem, len(d.Pricing.AdditionalItems))
			copy(pricing.AdditionalItems, d.Pricing.AdditionalItems)
		}
		out.Pricing = &pricing
	}
	if d.Contact != nil {
		contact := *d.Contact
		out.Contact = &contact
	}
	if d.Tags != nil {
		out.Tags = make([]string, len(d.Tags))
		copy(out.Tags, d.Tags)
	}
	return out
}

// IsEmpty reports whether the document has no content sections at all.
func (d *SpecDocument) IsEmpty() bool {
	return d == nil ||
		(d.Client == nil && len(d.Services) == 0 && d.Support == nil &&
			d.Pricing == nil && d.Contact == nil)
}

// stringOrNumber reads an id field that legacy documents stored either as a
// string or as a bare number.
func stringOrNumber(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	var n float64
	if err := json.Unmarshal(raw, &n); err == nil {
		return strconv.FormatFloat(n, 'f', -1, 64)
	}
	return ""
}

// orNull substitutes an explicit JSON null for absent fragments so tolerant
// decoders can run unconditionally.
func orNull(raw json.RawMessage) json.RawMessage {
	if len(raw) == 0 {
		return json.RawMessage("null")
	}
	return raw
}
