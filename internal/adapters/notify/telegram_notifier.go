package notify

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// TelegramNotifier delivers departure alerts to the installer's Telegram chat.
//
// Permission maps onto the channel being usable: the notifier is granted once
// the bot has authenticated and a chat ID is configured. RequestPermission
// re-verifies the bot credentials against the API.
type TelegramNotifier struct {
	bot    *tgbotapi.BotAPI
	chatID int64
}

func NewTelegramNotifier(token string, chatID int64) (*TelegramNotifier, error) {
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("telegram notifier: authenticate bot: %w", err)
	}
	return &TelegramNotifier{bot: bot, chatID: chatID}, nil
}

func (t *TelegramNotifier) IsGranted() bool {
	return t.bot != nil && t.chatID != 0
}

func (t *TelegramNotifier) RequestPermission(ctx context.Context) (bool, error) {
	if !t.IsGranted() {
		return false, nil
	}
	if _, err := t.bot.GetMe(); err != nil {
		return false, fmt.Errorf("telegram notifier: verify bot: %w", err)
	}
	return true, nil
}

func (t *TelegramNotifier) Notify(title, body string) error {
	msg := tgbotapi.NewMessage(t.chatID, fmt.Sprintf("*%s*\n%s", title, body))
	msg.ParseMode = "Markdown"
	if _, err := t.bot.Send(msg); err != nil {
		return fmt.Errorf("telegram notifier: send: %w", err)
	}
	return nil
}
