// Package notify pushes a Telegram message to the sales channel whenever a
// specification document is published or updated.
package notify

import (
	"fmt"
	"log"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Service sends publish notifications through a Telegram bot. A nil *Service
// is valid and silently does nothing, so callers don't need to guard for the
// feature being disabled.
type Service struct {
	bot    *tgbotapi.BotAPI
	chatID int64
}

// NewService creates a notifier for the given bot token and target chat.
func NewService(token string, chatID int64) (*Service, error) {
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("failed to start telegram bot: %w", err)
	}
	log.Printf("INFO: Telegram notifier authorized as @%s", bot.Self.UserName)
	return &Service{bot: bot, chatID: chatID}, nil
}

// SpecPublished announces a saved proposal. Failures are logged, never
// returned; notification is best-effort and must not fail a save.
func (s *Service) SpecPublished(slug, clientName string) {
	if s == nil {
		return
	}

	text := fmt.Sprintf("📄 *Proposal updated:* `%s`", slug)
	if clientName != "" {
		text += fmt.Sprintf("\nClient: %s", clientName)
	}

	msg := tgbotapi.NewMessage(s.chatID, text)
	msg.ParseMode = tgbotapi.ModeMarkdown
	if _, err := s.bot.Send(msg); err != nil {
		log.Printf("ERROR: Failed to send Telegram notification for spec %s: %v", slug, err)
	}
}
