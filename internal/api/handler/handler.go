package handler

import (
	"tafseel/backend/internal/localization"
	"tafseel/backend/internal/notify"
	"tafseel/backend/internal/preview"
	"tafseel/backend/internal/previewhub"
	"tafseel/backend/internal/storage"
	"tafseel/backend/internal/translator"
)

// Handler holds the dependencies shared by all HTTP endpoints.
type Handler struct {
	Storage    storage.Storage
	Preview    *preview.Resolver
	Translator *translator.Service
	Dictionary *localization.Dictionary
	Hub        *previewhub.Hub
	Notifier   *notify.Service // nil when Telegram notifications are disabled
}

func NewHandler(s storage.Storage, p *preview.Resolver, t *translator.Service, d *localization.Dictionary, hub *previewhub.Hub, n *notify.Service) *Handler {
	return &Handler{
		Storage:    s,
		Preview:    p,
		Translator: t,
		Dictionary: d,
		Hub:        hub,
		Notifier:   n,
	}
}
