package models_test

import (
	"encoding/json"
	"testing"

	"tafseel/backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLocalizedValueDecode_BareString verifies legacy bare strings keep their
// shape through a decode/encode round trip.
func TestLocalizedValueDecode_BareString(t *testing.T) {
	var v models.LocalizedValue
	require.NoError(t, json.Unmarshal([]byte(`"التسويق"`), &v))

	assert.True(t, v.IsPlain)
	assert.Equal(t, "التسويق", v.Plain)

	encoded, err := json.Marshal(v)
	require.NoError(t, err)
	assert.JSONEq(t, `"التسويق"`, string(encoded))
}

// TestLocalizedValueDecode_Object verifies bilingual objects decode into
// their two sides and empty sides are omitted when encoding.
func TestLocalizedValueDecode_Object(t *testing.T) {
	var v models.LocalizedValue
	require.NoError(t, json.Unmarshal([]byte(`{"ar":"تصميم","en":"Design"}`), &v))

	assert.False(t, v.IsPlain)
	assert.Equal(t, "تصميم", v.Side(models.LanguageArabic))
	assert.Equal(t, "Design", v.Side(models.LanguageEnglish))

	v.Ar = ""
	encoded, err := json.Marshal(v)
	require.NoError(t, err)
	assert.JSONEq(t, `{"en":"Design"}`, string(encoded))
}

// TestLocalizedValueDecode_ToleratesArbitraryJSON verifies the totality
// contract: no JSON shape may fail decoding, everything unknown degrades to
// the zero value.
func TestLocalizedValueDecode_ToleratesArbitraryJSON(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"null", `null`},
		{"number", `42`},
		{"float", `3.14`},
		{"bool", `true`},
		{"array", `["ar","en"]`},
		{"nested object", `{"ar":{"deep":"value"}}`},
		{"non-string sides", `{"ar":1,"en":false}`},
		{"foreign keys", `{"fr":"bonjour"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var v models.LocalizedValue
			err := json.Unmarshal([]byte(tt.data), &v)

			assert.NoError(t, err)
			assert.True(t, v.IsZero(), "shape %s should degrade to the zero value", tt.data)
		})
	}
}

// TestLocalizedValueSetSide_PromotesPlain verifies that writing a side onto a
// bare string keeps the original text under the opposite side.
func TestLocalizedValueSetSide_PromotesPlain(t *testing.T) {
	v := models.PlainValue("حملات")

	v.SetSide(models.LanguageEnglish, "Campaigns")

	assert.False(t, v.IsPlain)
	assert.Equal(t, "حملات", v.Side(models.LanguageArabic))
	assert.Equal(t, "Campaigns", v.Side(models.LanguageEnglish))
}

// TestLocalizedValueIsZero covers blank detection for both shapes.
func TestLocalizedValueIsZero(t *testing.T) {
	assert.True(t, models.LocalizedValue{}.IsZero())
	assert.True(t, models.PlainValue("   ").IsZero())
	assert.True(t, models.BilingualValue(" ", "").IsZero())
	assert.False(t, models.PlainValue("x").IsZero())
	assert.False(t, models.BilingualValue("", "x").IsZero())
}
