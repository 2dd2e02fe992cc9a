package notifier

import (
	"github.com/pfrederiksen/nsaa-volleyball/internal/result"
	"github.com/pfrederiksen/nsaa-volleyball/internal/telegram"
)

// TelegramNotifier sends result summaries to a Telegram chat
type TelegramNotifier struct {
	client *telegram.Client
}

// NewTelegramNotifier creates a new Telegram notifier using environment variables
// Required environment variables:
// - TELEGRAM_BOT_TOKEN
// - TELEGRAM_CHAT_ID
func NewTelegramNotifier() (*TelegramNotifier, error) {
	client, err := telegram.NewClientFromEnv()
	if err != nil {
		return nil, err
	}

	return &TelegramNotifier{client: client}, nil
}

// Notify sends an HTML summary message for the results document
func (n *TelegramNotifier) Notify(doc *result.Document) error {
	return n.client.SendMessage(telegram.FormatSummary(doc))
}
