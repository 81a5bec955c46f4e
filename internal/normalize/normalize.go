// Package normalize upgrades legacy plain-string content into bilingual
// records at data-entry time, so old single-language documents are
// progressively migrated without a destructive migration step.
package normalize

import (
	"strings"

	"tafseel/backend/internal/localization"
	"tafseel/backend/internal/models"
)

// Services returns a copy of the given services with every legacy bare-string
// display field upgraded to a bilingual record: Arabic text becomes
// {ar: original, en: dictionary match or ""}, anything else becomes
// {en: original}. Already-bilingual fields pass through unchanged, which makes
// the operation idempotent. The input slice and its records are never mutated.
func Services(dict *localization.Dictionary, services []models.ServiceRecord) []models.ServiceRecord {
	if services == nil {
		return nil
	}

	out := make([]models.ServiceRecord, len(services))
	for i, svc := range services {
		cloned := svc
		cloned.Name = bilingual(dict, svc.Name)

		if svc.Items != nil {
			cloned.Items = make([]models.ServiceItem, len(svc.Items))
			for j, item := range svc.Items {
				itemClone := item
				itemClone.Text = bilingual(dict, item.Text)
				cloned.Items[j] = itemClone
			}
		}
		out[i] = cloned
	}
	return out
}

// bilingual upgrades a single legacy value. Blank plain strings collapse to
// the empty bilingual record; object values are returned as-is.
func bilingual(dict *localization.Dictionary, v models.LocalizedValue) models.LocalizedValue {
	if !v.IsPlain {
		return v
	}
	text := v.Plain
	if strings.TrimSpace(text) == "" {
		return models.LocalizedValue{}
	}
	if localization.IsArabicScript(text) {
		en, _ := dict.Lookup(text)
		return models.BilingualValue(text, en)
	}
	return models.BilingualValue("", text)
}
