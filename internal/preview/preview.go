// Package preview orchestrates document resolution for rendering: it walks a
// specification document, batch-translates the fields missing their
// target-language side, and produces a fully-resolved copy without ever
// mutating the caller's document.
package preview

import (
	"context"
	"strings"

	"tafseel/backend/internal/localization"
	"tafseel/backend/internal/models"
	"tafseel/backend/internal/translator"
)

// Resolver fills translation gaps in documents and renders them to plain
// strings. The enabled flag is a feature switch: when off, ResolveDocument is
// the identity function and no network calls are ever made.
type Resolver struct {
	text       *localization.Resolver
	translator *translator.Service
	enabled    bool
}

// New creates a preview resolver.
func New(text *localization.Resolver, svc *translator.Service, enabled bool) *Resolver {
	return &Resolver{text: text, translator: svc, enabled: enabled}
}

// collectFields gathers pointers to every field eligible for auto-translation,
// in a fixed order. This is a declared allowlist (client name, company and
// description; each service's name; each service item's text; each support
// item's title and description), not a generic deep walk.
func collectFields(doc *models.SpecDocument) []*models.LocalizedValue {
	var fields []*models.LocalizedValue

	if doc.Client != nil {
		fields = append(fields, &doc.Client.Name, &doc.Client.Company, &doc.Client.Description)
	}
	for i := range doc.Services {
		fields = append(fields, &doc.Services[i].Name)
		for j := range doc.Services[i].Items {
			fields = append(fields, &doc.Services[i].Items[j].Text)
		}
	}
	if doc.Support != nil {
		for i := range doc.Support.Items {
			fields = append(fields, &doc.Support.Items[i].Title, &doc.Support.Items[i].Description)
		}
	}
	return fields
}

// pendingSource returns the text to translate for a field whose
// target-language side is missing while the opposite side is present. Bare
// strings have no sides; the script heuristic decides which language they
// already carry.
func pendingSource(v *models.LocalizedValue, target models.Language) (string, bool) {
	if v.IsPlain {
		text := strings.TrimSpace(v.Plain)
		if text == "" {
			return "", false
		}
		hasArabic := localization.IsArabicScript(v.Plain)
		if target == models.LanguageArabic && !hasArabic {
			return v.Plain, true
		}
		if target == models.LanguageEnglish && hasArabic {
			return v.Plain, true
		}
		return "", false
	}

	if strings.TrimSpace(v.Side(target)) != "" {
		return "", false
	}
	source := v.Side(target.Other())
	if strings.TrimSpace(source) == "" {
		return "", false
	}
	return source, true
}

// ResolveDocument returns a copy of the document with every allowlisted
// translation gap filled in additively (the source-language side is kept, only
// the target side is written). When resolution is disabled, the document is
// empty, or there is nothing to translate, the input is returned as-is, by
// reference, and no copy is made and no network call is issued.
func (r *Resolver) ResolveDocument(ctx context.Context, doc *models.SpecDocument, target models.Language) *models.SpecDocument {
	if !r.enabled || doc.IsEmpty() {
		return doc
	}

	pending := 0
	for _, f := range collectFields(doc) {
		if _, ok := pendingSource(f, target); ok {
			pending++
		}
	}
	if pending == 0 {
		return doc
	}

	clone := doc.Clone()

	var texts []string
	var targets []*models.LocalizedValue
	for _, f := range collectFields(clone) {
		if source, ok := pendingSource(f, target); ok {
			texts = append(texts, source)
			targets = append(targets, f)
		}
	}

	// Exactly one batched call for all pending jobs; the service dedups
	// repeated texts internally and falls back to the source text on failure.
	translated := r.translator.TranslateMany(ctx, texts, translator.SourceAuto, target)

	for i, f := range targets {
		// A result equal to its source means the text was skipped or the
		// batch fell back after a failure. Leaving the gap open lets the
		// resolver apply its dictionary fallback at render time instead of
		// shadowing it with untranslated text.
		if translated[i] == texts[i] {
			continue
		}
		f.SetSide(target, translated[i])
	}
	return clone
}
