package preview

import (
	"context"

	"tafseel/backend/internal/models"
)

// The view types mirror the document structure with every localized field
// collapsed to a single display string. Rendering components consume these
// and never see a LocalizedValue.

type DocumentView struct {
	Lang     models.Language     `json:"lang"`
	Client   *ClientView         `json:"client,omitempty"`
	Services []ServiceView       `json:"services,omitempty"`
	Support  []SupportView       `json:"support,omitempty"`
	Pricing  *PricingView        `json:"pricing,omitempty"`
	Contact  *models.ContactInfo `json:"contact,omitempty"`
}

type ClientView struct {
	Name        string `json:"name,omitempty"`
	Company     string `json:"company,omitempty"`
	Email       string `json:"email,omitempty"`
	Phone       string `json:"phone,omitempty"`
	Description string `json:"description,omitempty"`
}

type ServiceView struct {
	ID          string     `json:"id,omitempty"`
	Name        string     `json:"name"`
	Description string     `json:"description,omitempty"`
	Icon        string     `json:"icon,omitempty"`
	Items       []ItemView `json:"items,omitempty"`
}

type ItemView struct {
	ID          string `json:"id,omitempty"`
	Text        string `json:"text"`
	Description string `json:"description,omitempty"`
}

type SupportView struct {
	ID          string `json:"id,omitempty"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
}

type PricingView struct {
	BasePrice       float64         `json:"basePrice"`
	Currency        string          `json:"currency,omitempty"`
	AdditionalItems []PriceItemView `json:"additionalItems,omitempty"`
	Notes           string          `json:"notes,omitempty"`
}

type PriceItemView struct {
	ID          string  `json:"id,omitempty"`
	Description string  `json:"description,omitempty"`
	Amount      float64 `json:"amount"`
}

// Render resolves the document's translation gaps and flattens it into a
// plain-string view for the given language. Malformed or missing sections
// degrade to empty fields; Render never fails.
func (r *Resolver) Render(ctx context.Context, doc *models.SpecDocument, lang models.Language) *DocumentView {
	view := &DocumentView{Lang: lang}
	if doc == nil {
		return view
	}

	resolved := r.ResolveDocument(ctx, doc, lang)

	if resolved.Client != nil {
		view.Client = &ClientView{
			Name:        r.text.Resolve(resolved.Client.Name, lang),
			Company:     r.text.Resolve(resolved.Client.Company, lang),
			Email:       resolved.Client.Email,
			Phone:       resolved.Client.Phone,
			Description: r.text.Resolve(resolved.Client.Description, lang),
		}
	}

	for _, svc := range resolved.Services {
		sv := ServiceView{
			ID:          svc.ID,
			Name:        r.text.Resolve(svc.Name, lang),
			Description: r.text.Resolve(svc.Description, lang),
			Icon:        svc.Icon,
		}
		for _, item := range svc.Items {
			sv.Items = append(sv.Items, ItemView{
				ID:          item.ID,
				Text:        r.text.Resolve(item.Text, lang),
				Description: r.text.Resolve(item.Description, lang),
			})
		}
		view.Services = append(view.Services, sv)
	}

	if resolved.Support != nil {
		for _, item := range resolved.Support.Items {
			view.Support = append(view.Support, SupportView{
				ID:          item.ID,
				Title:       r.text.Resolve(item.Title, lang),
				Description: r.text.Resolve(item.Description, lang),
			})
		}
	}

	if resolved.Pricing != nil {
		pricing := &PricingView{
			BasePrice: resolved.Pricing.BasePrice,
			Currency:  resolved.Pricing.Currency,
			Notes:     r.text.Resolve(resolved.Pricing.Notes, lang),
		}
		for _, item := range resolved.Pricing.AdditionalItems {
			pricing.AdditionalItems = append(pricing.AdditionalItems, PriceItemView{
				ID:          item.ID,
				Description: r.text.Resolve(item.Description, lang),
				Amount:      item.Amount,
			})
		}
		view.Pricing = pricing
	}

	if resolved.Contact != nil {
		contact := *resolved.Contact
		view.Contact = &contact
	}

	return view
}
