package models_test

import (
	"encoding/json"
	"testing"

	"tafseel/backend/internal/config"
	"tafseel/backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestServiceRecordAliasPriority fixes the alias order as a contract: when a
// record carries both "name" and "title", "name" wins.
func TestServiceRecordAliasPriority(t *testing.T) {
	var svc models.ServiceRecord
	require.NoError(t, json.Unmarshal([]byte(`{"name":"First","title":"Second"}`), &svc))
	assert.Equal(t, "First", svc.Name.Plain)

	var titled models.ServiceRecord
	require.NoError(t, json.Unmarshal([]byte(`{"title":"OnlyTitle"}`), &titled))
	assert.Equal(t, "OnlyTitle", titled.Name.Plain)
}

// TestServiceRecordAliasSkipsEmptyValues verifies a later alias wins over an
// earlier one that holds no usable text.
func TestServiceRecordAliasSkipsEmptyValues(t *testing.T) {
	var svc models.ServiceRecord
	require.NoError(t, json.Unmarshal([]byte(`{"name":"","title":"Fallback"}`), &svc))

	assert.Equal(t, "Fallback", svc.Name.Plain)
}

// TestServiceRecordItemsAliases verifies "items" is preferred and
// "subServices" still decodes, including the item-level text aliases.
func TestServiceRecordItemsAliases(t *testing.T) {
	var legacy models.ServiceRecord
	require.NoError(t, json.Unmarshal([]byte(`{
		"title": "التسويق",
		"subServices": [
			{"text": "حملات"},
			{"label": "تقارير"},
			{"name": "إعلانات"}
		]
	}`), &legacy))

	require.Len(t, legacy.Items, 3)
	assert.Equal(t, "حملات", legacy.Items[0].Text.Plain)
	assert.Equal(t, "تقارير", legacy.Items[1].Text.Plain)
	assert.Equal(t, "إعلانات", legacy.Items[2].Text.Plain)

	var modern models.ServiceRecord
	require.NoError(t, json.Unmarshal([]byte(`{
		"name": {"ar":"التسويق","en":"Marketing"},
		"items": [{"name": {"en":"Campaigns"}}],
		"subServices": [{"name": "ignored"}]
	}`), &modern))

	require.Len(t, modern.Items, 1)
	assert.Equal(t, "Campaigns", modern.Items[0].Text.Side(models.LanguageEnglish))
}

// TestServiceRecordToleratesMalformedJSON verifies garbage records decode to
// the zero value instead of failing the whole document.
func TestServiceRecordToleratesMalformedJSON(t *testing.T) {
	var doc models.SpecDocument
	err := json.Unmarshal([]byte(`{"services":["not-an-object",42,{"name":"ok"}]}`), &doc)

	assert.NoError(t, err)
	require.Len(t, doc.Services, 3)
	assert.True(t, doc.Services[0].Name.IsZero())
	assert.True(t, doc.Services[1].Name.IsZero())
	assert.Equal(t, "ok", doc.Services[2].Name.Plain)
}

// TestServiceRecordNumericIDs verifies legacy numeric ids decode as strings.
func TestServiceRecordNumericIDs(t *testing.T) {
	var svc models.ServiceRecord
	require.NoError(t, json.Unmarshal([]byte(`{"id":7,"name":"x"}`), &svc))

	assert.Equal(t, "7", svc.ID)
}

// TestPricingSanitize verifies the pricing invariants are enforced in place.
func TestPricingSanitize(t *testing.T) {
	pricing := &models.Pricing{
		BasePrice: -100,
		Currency:  "XYZ",
		AdditionalItems: []models.PriceItem{
			{Amount: -5},
			{Amount: 250},
		},
	}

	pricing.Sanitize()

	assert.Equal(t, float64(0), pricing.BasePrice)
	assert.Equal(t, config.DefaultCurrency, pricing.Currency)
	assert.Equal(t, float64(0), pricing.AdditionalItems[0].Amount)
	assert.Equal(t, float64(250), pricing.AdditionalItems[1].Amount)

	// Nil receiver and supported currency both pass through untouched.
	var nilPricing *models.Pricing
	nilPricing.Sanitize()

	ok := &models.Pricing{BasePrice: 10, Currency: "USD"}
	ok.Sanitize()
	assert.Equal(t, "USD", ok.Currency)
}

// TestSpecDocumentClone verifies the clone is deep: mutating it never touches
// the original.
func TestSpecDocumentClone(t *testing.T) {
	original := &models.SpecDocument{
		Client: &models.ClientInfo{Name: models.PlainValue("Acme")},
		Services: []models.ServiceRecord{
			{
				Name:  models.BilingualValue("", "Design"),
				Items: []models.ServiceItem{{Text: models.PlainValue("Logo")}},
			},
		},
		Pricing: &models.Pricing{
			BasePrice:       100,
			AdditionalItems: []models.PriceItem{{Amount: 10}},
		},
		Tags: []string{"agency"},
	}

	clone := original.Clone()
	clone.Client.Name = models.PlainValue("Changed")
	clone.Services[0].Name.SetSide(models.LanguageArabic, "تصميم")
	clone.Services[0].Items[0].Text = models.PlainValue("Changed")
	clone.Pricing.AdditionalItems[0].Amount = 99
	clone.Tags[0] = "changed"

	assert.Equal(t, "Acme", original.Client.Name.Plain)
	assert.Empty(t, original.Services[0].Name.Side(models.LanguageArabic))
	assert.Equal(t, "Logo", original.Services[0].Items[0].Text.Plain)
	assert.Equal(t, float64(10), original.Pricing.AdditionalItems[0].Amount)
	assert.Equal(t, "agency", original.Tags[0])
}

// TestSpecDocumentIsEmpty covers the empty-document shortcut.
func TestSpecDocumentIsEmpty(t *testing.T) {
	var nilDoc *models.SpecDocument
	assert.True(t, nilDoc.IsEmpty())
	assert.True(t, (&models.SpecDocument{}).IsEmpty())
	assert.False(t, (&models.SpecDocument{Contact: &models.ContactInfo{}}).IsEmpty())
}
