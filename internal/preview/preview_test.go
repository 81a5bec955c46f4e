package preview_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"tafseel/backend/internal/localization"
	"tafseel/backend/internal/models"
	"tafseel/backend/internal/preview"
	"tafseel/backend/internal/translator"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockProvider is a testify mock of the external translation collaborator.
type MockProvider struct {
	mock.Mock
}

func (m *MockProvider) TranslateBatch(ctx context.Context, texts []string, source string, target models.Language) ([]string, error) {
	args := m.Called(ctx, texts, source, target)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func newResolver(provider translator.Provider, enabled bool) *preview.Resolver {
	dict := localization.NewDictionary()
	svc := translator.NewService(provider, translator.NewCache())
	return preview.New(localization.NewResolver(dict), svc, enabled)
}

// TestResolveDocumentImmutability verifies the caller's document is never
// mutated: translations land only in the returned copy.
func TestResolveDocumentImmutability(t *testing.T) {
	provider := new(MockProvider)
	provider.On("TranslateBatch", mock.Anything, []string{"Design"}, translator.SourceAuto, models.LanguageArabic).
		Return([]string{"تصميم"}, nil).Once()
	resolver := newResolver(provider, true)

	original := &models.SpecDocument{
		Services: []models.ServiceRecord{{Name: models.BilingualValue("", "Design")}},
	}

	resolved := resolver.ResolveDocument(context.Background(), original, models.LanguageArabic)

	// The original still has no Arabic side; the copy does, additively.
	assert.Empty(t, original.Services[0].Name.Side(models.LanguageArabic))
	require.NotSame(t, original, resolved)
	assert.Equal(t, "تصميم", resolved.Services[0].Name.Side(models.LanguageArabic))
	assert.Equal(t, "Design", resolved.Services[0].Name.Side(models.LanguageEnglish))
	provider.AssertExpectations(t)
}

// TestResolveDocumentNoOpShortcut verifies a fully-bilingual document is
// returned by reference with zero network calls.
func TestResolveDocumentNoOpShortcut(t *testing.T) {
	provider := new(MockProvider)
	resolver := newResolver(provider, true)

	doc := &models.SpecDocument{
		Client: &models.ClientInfo{
			Name:        models.BilingualValue("شركة", "Acme"),
			Company:     models.BilingualValue("شركة", "Acme Inc"),
			Description: models.BilingualValue("وصف", "Summary"),
		},
		Services: []models.ServiceRecord{{
			Name:  models.BilingualValue("تصميم", "Design"),
			Items: []models.ServiceItem{{Text: models.BilingualValue("شعار", "Logo")}},
		}},
	}

	resolved := resolver.ResolveDocument(context.Background(), doc, models.LanguageArabic)

	assert.Same(t, doc, resolved)
	provider.AssertNumberOfCalls(t, "TranslateBatch", 0)
}

// TestResolveDocumentDisabled verifies the feature flag turns resolution into
// the identity function even when gaps exist.
func TestResolveDocumentDisabled(t *testing.T) {
	provider := new(MockProvider)
	resolver := newResolver(provider, false)

	doc := &models.SpecDocument{
		Services: []models.ServiceRecord{{Name: models.BilingualValue("", "Design")}},
	}

	assert.Same(t, doc, resolver.ResolveDocument(context.Background(), doc, models.LanguageArabic))
	provider.AssertNumberOfCalls(t, "TranslateBatch", 0)
}

// TestResolveDocumentSingleBatchCall verifies all gaps across the document go
// out in exactly one provider call, in walk order.
func TestResolveDocumentSingleBatchCall(t *testing.T) {
	provider := new(MockProvider)
	provider.On("TranslateBatch", mock.Anything, []string{"Acme", "Design", "Logo"}, translator.SourceAuto, models.LanguageArabic).
		Return([]string{"أكمي", "تصميم", "شعار"}, nil).Once()
	resolver := newResolver(provider, true)

	doc := &models.SpecDocument{
		Client: &models.ClientInfo{Name: models.BilingualValue("", "Acme")},
		Services: []models.ServiceRecord{{
			Name:  models.BilingualValue("", "Design"),
			Items: []models.ServiceItem{{Text: models.BilingualValue("", "Logo")}},
		}},
	}

	resolved := resolver.ResolveDocument(context.Background(), doc, models.LanguageArabic)

	assert.Equal(t, "أكمي", resolved.Client.Name.Side(models.LanguageArabic))
	assert.Equal(t, "تصميم", resolved.Services[0].Name.Side(models.LanguageArabic))
	assert.Equal(t, "شعار", resolved.Services[0].Items[0].Text.Side(models.LanguageArabic))
	provider.AssertNumberOfCalls(t, "TranslateBatch", 1)
	provider.AssertExpectations(t)
}

// TestRenderEndToEndWithNetworkDown replays the legacy-document scenario: a
// plain-Arabic service rendered in English while the provider is unreachable.
// The dictionary covers the title; the unknown item falls back to its Arabic
// original. Nothing fails.
func TestRenderEndToEndWithNetworkDown(t *testing.T) {
	provider := new(MockProvider)
	provider.On("TranslateBatch", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(nil, errors.New("connection refused"))
	resolver := newResolver(provider, true)

	var doc models.SpecDocument
	require.NoError(t, json.Unmarshal([]byte(`{
		"services": [{"title": "التسويق", "items": [{"text": "حملات"}]}]
	}`), &doc))

	view := resolver.Render(context.Background(), &doc, models.LanguageEnglish)

	require.Len(t, view.Services, 1)
	assert.Equal(t, "Marketing", view.Services[0].Name)
	require.Len(t, view.Services[0].Items, 1)
	assert.Equal(t, "حملات", view.Services[0].Items[0].Text)
}

// TestRenderFlattensToStrings verifies the rendered view carries plain
// strings only, with pricing and contact passed through.
func TestRenderFlattensToStrings(t *testing.T) {
	provider := new(MockProvider)
	resolver := newResolver(provider, true)

	doc := &models.SpecDocument{
		Client: &models.ClientInfo{
			Name:  models.BilingualValue("عميل", "Client"),
			Email: "client@acme.com",
		},
		Support: &models.SupportSection{Items: []models.SupportItem{{
			Title:       models.BilingualValue("الدعم الفني", "Technical Support"),
			Description: models.BilingualValue("وصف", "Around the clock"),
		}}},
		Pricing: &models.Pricing{
			BasePrice:       1500,
			Currency:        "SAR",
			AdditionalItems: []models.PriceItem{{Description: models.BilingualValue("إضافي", "Extra"), Amount: 200}},
			Notes:           models.BilingualValue("ملاحظة", "Half upfront"),
		},
		Contact: &models.ContactInfo{Website: "https://acme.com"},
	}

	view := resolver.Render(context.Background(), doc, models.LanguageEnglish)

	require.NotNil(t, view.Client)
	assert.Equal(t, "Client", view.Client.Name)
	assert.Equal(t, "client@acme.com", view.Client.Email)

	require.Len(t, view.Support, 1)
	assert.Equal(t, "Technical Support", view.Support[0].Title)

	require.NotNil(t, view.Pricing)
	assert.Equal(t, float64(1500), view.Pricing.BasePrice)
	assert.Equal(t, "Half upfront", view.Pricing.Notes)
	require.Len(t, view.Pricing.AdditionalItems, 1)
	assert.Equal(t, "Extra", view.Pricing.AdditionalItems[0].Description)

	require.NotNil(t, view.Contact)
	assert.Equal(t, "https://acme.com", view.Contact.Website)

	// Fully bilingual: the provider is never consulted.
	provider.AssertNumberOfCalls(t, "TranslateBatch", 0)
}

// TestRenderNilDocument verifies Render degrades to an empty view.
func TestRenderNilDocument(t *testing.T) {
	resolver := newResolver(new(MockProvider), true)

	view := resolver.Render(context.Background(), nil, models.LanguageArabic)

	require.NotNil(t, view)
	assert.Equal(t, models.LanguageArabic, view.Lang)
	assert.Nil(t, view.Client)
	assert.Empty(t, view.Services)
}
